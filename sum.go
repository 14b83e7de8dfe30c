package djb

// One-shot helpers for callers that have the whole key in hand. Each equals
// writing data to a freshly constructed hasher and reading the sum.

var (
	_ Hasher   = (*X33a)(nil)
	_ Hasher   = (*Djbx33a)(nil)
	_ Hasher   = (*X33x)(nil)
	_ Hasher32 = (*X33aU32)(nil)
	_ Hasher32 = (*X33aU32Php)(nil)
	_ Hasher32 = (*X33xU32)(nil)
)

// Sum64 returns the X33a hash of data.
func Sum64(data []byte) uint64 {
	return addBytes(uint64(Seed), data)
}

// Sum32 returns the X33aU32 hash of data.
func Sum32(data []byte) uint32 {
	return addBytes(uint32(Seed), data)
}

// SumPhp returns the X33aU32Php hash of data.
func SumPhp(data []byte) uint32 {
	return addBytes(uint32(Seed), data) | highBit
}

// SumCDB returns the X33xU32 hash of data. It has the signature cdb readers
// and writers take for their hash function, and is the default cdb uses.
func SumCDB(data []byte) uint32 {
	return xorBytes(uint32(Seed), data)
}
