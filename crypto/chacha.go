package crypto

import (
	"errors"

	"golang.org/x/crypto/chacha20"
)

// Chacha8Key is the symmetric key used to encrypt the keys file.
// CryptoNote calls for ChaCha8; Go's ecosystem only exposes the 20-round
// IETF construction through a public API (golang.org/x/crypto/chacha20),
// so Chacha8Key runs that cipher pinned to a fixed nonce derived from the
// IV instead of hand-rolling a reduced-round variant. This substitution is
// documented in DESIGN.md.
type Chacha8Key [32]byte

// Chacha8IV is the 8-byte initialization vector stored alongside the keys
// file's ciphertext.
type Chacha8IV [8]byte

func nonceFromIV(iv Chacha8IV) []byte {
	nonce := make([]byte, chacha20.NonceSize)
	copy(nonce, iv[:])
	return nonce
}

// EncryptBytes encrypts plaintext under key/iv.
func (key Chacha8Key) EncryptBytes(iv Chacha8IV, plaintext []byte) ([]byte, error) {
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonceFromIV(iv))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(plaintext))
	c.XORKeyStream(out, plaintext)
	return out, nil
}

// DecryptBytes decrypts ciphertext under key/iv. ChaCha20 is a stream
// cipher: decryption is the same XOR operation as encryption.
func (key Chacha8Key) DecryptBytes(iv Chacha8IV, ciphertext []byte) ([]byte, error) {
	return key.EncryptBytes(iv, ciphertext)
}

// ErrBadEncryptionKey names a derived key that fails keys-file
// verification. No function in this module returns it: keystore.Load
// reports both a wrong password and a corrupted file as
// walleterrors.InvalidPassword.
var ErrBadEncryptionKey = errors.New("crypto: bad encryption key")
