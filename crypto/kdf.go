package crypto

import "golang.org/x/crypto/scrypt"

// scrypt cost parameters. N is kept modest (2^14) since this KDF runs
// synchronously on wallet open/save and only needs to be deterministic,
// not any specific work factor.
const (
	scryptN = 1 << 14
	scryptR = 8
	scryptP = 1
)

// DeriveChacha8Key derives a deterministic symmetric key from a password
// and per-file salt. The same password+salt always yields the same key,
// which is what lets keys-file loading re-derive it, decrypt the stored
// keys and check the decrypted keys for consistency.
func DeriveChacha8Key(password []byte, salt []byte) (Chacha8Key, error) {
	raw, err := scrypt.Key(password, salt, scryptN, scryptR, scryptP, 32)
	if err != nil {
		return Chacha8Key{}, err
	}
	var key Chacha8Key
	copy(key[:], raw)
	return key, nil
}
