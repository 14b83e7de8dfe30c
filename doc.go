/*
Package djb provides streaming implementations of the simple multiplicative
string hashes posted by Daniel J. Bernstein, in the exact bit-level form used
by other runtimes, so hash values can be shared with Java, PHP, Python or cdb
files written elsewhere.

None of these are safe to expose to untrusted keys. "Ez" and "FY" collide
under the additive variants for every seed, and any string containing one can
be turned into a colliding string by swapping in the other.

Names describe the arithmetic. In "X33a", X33 is the multiplier: the running
hash is multiplied by 33 before each byte is mixed in, computed as
(h << 5) + h. The trailing "a" means the byte is added; "x" means it is
XORed. A "U32" suffix means the state is a uint32 instead of a uint64; those
types also implement Hasher32 and return their native value from Sum32
without a round trip through uint64. The "Php" suffix forces the high bit of
the result, as PHP does to keep zero free as its "not yet hashed" marker.

For more information on the original hashes, see http://www.cse.yorku.ca/~oz/hash.html.
*/
package djb
