package djb

import "encoding/binary"

// X33aU32Php is X33aU32 as PHP computes it for array keys: the high bit of
// the result is always set. PHP stores zero to mean the hash has not been
// computed yet, so no real hash may be zero.
//
// Only the result is forced. The state itself is plain X33aU32 state, so
// further writes continue from the unforced value.
type X33aU32Php uint32

// NewX33aU32Php returns an X33aU32Php starting from Seed.
func NewX33aU32Php() *X33aU32Php {
	return NewX33aU32PhpWithSalt(Seed)
}

// NewX33aU32PhpWithSalt returns an X33aU32Php starting from salt.
func NewX33aU32PhpWithSalt(salt uint32) *X33aU32Php {
	h := X33aU32Php(salt)
	return &h
}

func (h *X33aU32Php) Write(p []byte) (int, error) {
	*h = addBytes(*h, p)
	return len(p), nil
}

func (h *X33aU32Php) WriteString(s string) (int, error) {
	*h = addBytes(*h, s)
	return len(s), nil
}

func (h *X33aU32Php) WriteByte(c byte) error {
	*h = (*h << 5) + *h + X33aU32Php(c)
	return nil
}

// Sum32 returns the hash with bit 31 set.
func (h *X33aU32Php) Sum32() uint32 {
	return uint32(*h) | highBit
}

// Sum64 returns Sum32 zero-extended.
func (h *X33aU32Php) Sum64() uint64 {
	return uint64(h.Sum32())
}

func (h *X33aU32Php) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, h.Sum32())
}

func (h *X33aU32Php) Size() int      { return 4 }
func (h *X33aU32Php) BlockSize() int { return 1 }
