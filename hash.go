package djb

import (
	"io"

	"golang.org/x/exp/constraints"
)

// Seed is the starting value Bernstein used for every variant.
const Seed = 5381

// highBit is ORed into PHP hashes so that a computed hash is never zero.
const highBit uint32 = 0x80000000

// Hasher is the streaming interface shared by every hash in this package.
// Writes never fail; the error results exist only to satisfy the io
// interfaces and are always nil.
type Hasher interface {
	io.Writer
	io.StringWriter
	io.ByteWriter

	// Sum64 returns the hash of everything written so far. Hashes with 32 bit
	// state are zero-extended.
	Sum64() uint64

	// Sum appends the big-endian hash to b, using the native width of the
	// state (4 or 8 bytes).
	Sum(b []byte) []byte

	Size() int
	BlockSize() int
}

// Hasher32 is implemented by the hashes that keep 32 bits of state. Sum32
// returns the native value, which is what callers with 32 bit tables want.
type Hasher32 interface {
	Hasher
	Sum32() uint32
}

// The loops below take both strings and byte slices so WriteString does not
// have to copy. Wraparound is the unsigned overflow of T.

func addBytes[T constraints.Unsigned, S ~string | ~[]byte](h T, p S) T {
	for i := 0; i < len(p); i++ {
		h = (h << 5) + h + T(p[i])
	}
	return h
}

func xorBytes[T constraints.Unsigned, S ~string | ~[]byte](h T, p S) T {
	for i := 0; i < len(p); i++ {
		h = ((h << 5) + h) ^ T(p[i])
	}
	return h
}
