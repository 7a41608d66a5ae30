// Package crypto wraps the black-box cryptographic primitives the wallet
// core is built on. Ed25519 point/scalar arithmetic is delegated to
// filippo.io/edwards25519, Keccak to golang.org/x/crypto/sha3, and secret
// randomness to github.com/NebulousLabs/fastrand.
package crypto

import (
	"errors"

	"filippo.io/edwards25519"
)

const (
	// PublicKeySize is the size, in bytes, of an Ed25519 public key / curve point.
	PublicKeySize = 32
	// SecretKeySize is the size, in bytes, of a reduced Ed25519 scalar.
	SecretKeySize = 32
	// HashSize is the size, in bytes, of a Keccak-256 digest.
	HashSize = 32
	// KeyImageSize is the size, in bytes, of a key image.
	KeyImageSize = 32
)

type (
	// PublicKey is a 32-byte Ed25519 curve point.
	PublicKey [PublicKeySize]byte

	// SecretKey is a 32-byte scalar, reduced modulo the curve order.
	SecretKey [SecretKeySize]byte

	// Hash is a 32-byte Keccak-256 digest.
	Hash [HashSize]byte

	// KeyImage uniquely identifies a spent one-time output (glossary:
	// "Globally unique per output, binding a spend to exactly one
	// ring-signed transaction; duplicates are double-spends").
	KeyImage [KeyImageSize]byte

	// KeyDerivation is D = view_secret * R, the shared secret computed once
	// per scanned transaction.
	KeyDerivation [PublicKeySize]byte
)

var (
	// ErrInvalidPoint is returned when a 32-byte value does not decode to a
	// valid curve point.
	ErrInvalidPoint = errors.New("crypto: not a valid curve point")
	// ErrInvalidSignature is returned when a ring signature fails to verify.
	ErrInvalidSignature = errors.New("crypto: invalid ring signature")

	nilPublicKey PublicKey
	nilSecretKey SecretKey
)

// IsNil reports whether pk is the all-zero public key.
func (pk PublicKey) IsNil() bool { return pk == nilPublicKey }

// IsNil reports whether sk is the all-zero secret key.
func (sk SecretKey) IsNil() bool { return sk == nilSecretKey }

func (pk PublicKey) point() (*edwards25519.Point, error) {
	p := edwards25519.NewIdentityPoint()
	_, err := p.SetBytes(pk[:])
	if err != nil {
		return nil, ErrInvalidPoint
	}
	return p, nil
}

func pointToPublicKey(p *edwards25519.Point) (pk PublicKey) {
	copy(pk[:], p.Bytes())
	return
}

func (sk SecretKey) scalar() (*edwards25519.Scalar, error) {
	s := edwards25519.NewScalar()
	_, err := s.SetCanonicalBytes(sk[:])
	if err != nil {
		return nil, errors.New("crypto: not a canonically-reduced scalar")
	}
	return s, nil
}

func scalarToSecretKey(s *edwards25519.Scalar) (sk SecretKey) {
	copy(sk[:], s.Bytes())
	return
}
