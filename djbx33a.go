package djb

import "encoding/binary"

// Djbx33a is the minimal form of X33a: same arithmetic, but it can only start
// from Seed.
type Djbx33a uint64

func NewDjbx33a() *Djbx33a {
	h := Djbx33a(Seed)
	return &h
}

func (h *Djbx33a) Write(p []byte) (int, error) {
	*h = addBytes(*h, p)
	return len(p), nil
}

func (h *Djbx33a) WriteString(s string) (int, error) {
	*h = addBytes(*h, s)
	return len(s), nil
}

func (h *Djbx33a) WriteByte(c byte) error {
	*h = (*h << 5) + *h + Djbx33a(c)
	return nil
}

func (h *Djbx33a) Sum64() uint64 {
	return uint64(*h)
}

func (h *Djbx33a) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, uint64(*h))
}

func (h *Djbx33a) Size() int      { return 8 }
func (h *Djbx33a) BlockSize() int { return 1 }
