package crypto

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// HashBytes returns the Keccak-256 (original padding, not NIST SHA3) digest
// of the concatenation of its inputs.
func HashBytes(data ...[]byte) (h Hash) {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	copy(h[:], d.Sum(nil))
	return
}

// HashUint64 hashes a little-endian varint-style encoding of n alongside
// the given prefix, the pattern used for H(derivation || varint(output_index)).
func HashUint64(prefix []byte, n uint64) Hash {
	var buf [binary.MaxVarintLen64]byte
	sz := binary.PutUvarint(buf[:], n)
	return HashBytes(prefix, buf[:sz])
}

// HashToScalar reduces the Keccak-256 digest of data modulo the curve
// order, the "H_s" construction used for ephemeral key derivation.
func HashToScalar(data ...[]byte) SecretKey {
	h := HashBytes(data...)
	return ScalarReduce64(h[:])
}
