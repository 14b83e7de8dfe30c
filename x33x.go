package djb

import "encoding/binary"

// X33x is the 64 bit form of Bernstein's later hash, h = (h*33) ^ c.
// Mixing with XOR breaks the "Ez"/"FY" collision of X33a: they hash to
// 5861786 and 5861914.
type X33x uint64

// NewX33x returns an X33x starting from Seed.
func NewX33x() *X33x {
	return NewX33xWithSalt(Seed)
}

// NewX33xWithSalt returns an X33x starting from salt. See NewX33aWithSalt
// for choosing one.
func NewX33xWithSalt(salt uint64) *X33x {
	h := X33x(salt)
	return &h
}

// Write adds p to the hash. It always returns len(p), nil.
func (h *X33x) Write(p []byte) (int, error) {
	*h = xorBytes(*h, p)
	return len(p), nil
}

func (h *X33x) WriteString(s string) (int, error) {
	*h = xorBytes(*h, s)
	return len(s), nil
}

func (h *X33x) WriteByte(c byte) error {
	*h = ((*h << 5) + *h) ^ X33x(c)
	return nil
}

func (h *X33x) Sum64() uint64 {
	return uint64(*h)
}

func (h *X33x) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, uint64(*h))
}

func (h *X33x) Size() int      { return 8 }
func (h *X33x) BlockSize() int { return 1 }
