package djb

import "encoding/binary"

// X33a is the 64 bit form of Bernstein's original hash, h = h*33 + c.
//
// The additive combine makes collisions easy to build: "Ez" and "FY" both
// hash to 5862308, and they keep colliding under any salt and inside any
// common prefix or suffix ("abcEzpie" and "abcFYpie").
type X33a uint64

// NewX33a returns an X33a starting from Seed.
func NewX33a() *X33a {
	return NewX33aWithSalt(Seed)
}

// NewX33aWithSalt returns an X33a starting from salt instead of Seed.
//
// The salt should be a prime with bits above the low byte. Bits past half the
// width of the hash are of limited use: they are shifted out quickly for long
// inputs and stay nearly static for short ones. Primes of 16 to 32 bits work
// best for the 64 bit hashes, 16 to 24 bits for the 32 bit ones. Nothing is
// checked, a salt of 0 included.
func NewX33aWithSalt(salt uint64) *X33a {
	h := X33a(salt)
	return &h
}

// Write adds p to the hash, one byte at a time in order. It always returns
// len(p), nil.
func (h *X33a) Write(p []byte) (int, error) {
	*h = addBytes(*h, p)
	return len(p), nil
}

// WriteString adds the bytes of s to the hash.
func (h *X33a) WriteString(s string) (int, error) {
	*h = addBytes(*h, s)
	return len(s), nil
}

func (h *X33a) WriteByte(c byte) error {
	*h = (*h << 5) + *h + X33a(c)
	return nil
}

func (h *X33a) Sum64() uint64 {
	return uint64(*h)
}

func (h *X33a) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, uint64(*h))
}

func (h *X33a) Size() int      { return 8 }
func (h *X33a) BlockSize() int { return 1 }
