package djb

import "encoding/binary"

// X33aU32 is X33a with 32 bits of state. Inputs short enough not to overflow
// 32 bits hash to the same value as X33a; "abcEzpie" does not, and gives
// 1686394568.
type X33aU32 uint32

// NewX33aU32 returns an X33aU32 starting from Seed.
func NewX33aU32() *X33aU32 {
	return NewX33aU32WithSalt(Seed)
}

// NewX33aU32WithSalt returns an X33aU32 starting from salt. See
// NewX33aWithSalt for choosing one.
func NewX33aU32WithSalt(salt uint32) *X33aU32 {
	h := X33aU32(salt)
	return &h
}

// Write adds p to the hash. It always returns len(p), nil.
func (h *X33aU32) Write(p []byte) (int, error) {
	*h = addBytes(*h, p)
	return len(p), nil
}

func (h *X33aU32) WriteString(s string) (int, error) {
	*h = addBytes(*h, s)
	return len(s), nil
}

func (h *X33aU32) WriteByte(c byte) error {
	*h = (*h << 5) + *h + X33aU32(c)
	return nil
}

func (h *X33aU32) Sum32() uint32 {
	return uint32(*h)
}

func (h *X33aU32) Sum64() uint64 {
	return uint64(*h)
}

func (h *X33aU32) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, uint32(*h))
}

func (h *X33aU32) Size() int      { return 4 }
func (h *X33aU32) BlockSize() int { return 1 }
