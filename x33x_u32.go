package djb

import "encoding/binary"

// X33xU32 is X33x with 32 bits of state. It is the hash used by cdb, the
// constant database format.
type X33xU32 uint32

func NewX33xU32() *X33xU32 {
	return NewX33xU32WithSalt(Seed)
}

func NewX33xU32WithSalt(salt uint32) *X33xU32 {
	h := X33xU32(salt)
	return &h
}

func (h *X33xU32) Write(p []byte) (int, error) {
	*h = xorBytes(*h, p)
	return len(p), nil
}

func (h *X33xU32) WriteString(s string) (int, error) {
	*h = xorBytes(*h, s)
	return len(s), nil
}

func (h *X33xU32) WriteByte(c byte) error {
	*h = ((*h << 5) + *h) ^ X33xU32(c)
	return nil
}

func (h *X33xU32) Sum32() uint32 {
	return uint32(*h)
}

func (h *X33xU32) Sum64() uint64 {
	return uint64(*h)
}

func (h *X33xU32) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, uint32(*h))
}

func (h *X33xU32) Size() int      { return 4 }
func (h *X33xU32) BlockSize() int { return 1 }
