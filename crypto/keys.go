package crypto

import (
	"github.com/NebulousLabs/fastrand"
	"filippo.io/edwards25519"
)

// GenerateKeyPair creates a fresh random (secret, public) keypair.
func GenerateKeyPair() (sk SecretKey, pk PublicKey) {
	var seed [64]byte
	fastrand.Read(seed[:])
	return deriveKeyPairFromWideSeed(seed[:])
}

// GenerateKeyPairDeterministic derives a (secret, public) keypair from 32
// bytes of entropy, used by recoverable accounts.
func GenerateKeyPairDeterministic(entropy [32]byte) (sk SecretKey, pk PublicKey) {
	var wide [64]byte
	copy(wide[:], entropy[:])
	return deriveKeyPairFromWideSeed(wide[:])
}

func deriveKeyPairFromWideSeed(wide []byte) (sk SecretKey, pk PublicKey) {
	sk = ScalarReduce64(wide)
	pk = PublicFromSecret(sk)
	return
}

// PublicFromSecret derives the public key P = sk*G corresponding to a
// secret scalar. Key-store loading re-derives this on every unlock to
// verify the password: a mismatch means InvalidPassword.
func PublicFromSecret(sk SecretKey) PublicKey {
	s, err := sk.scalar()
	if err != nil {
		return PublicKey{}
	}
	p := edwards25519.NewIdentityPoint().ScalarBaseMult(s)
	return pointToPublicKey(p)
}

// AddPublicKeys returns a+b as curve points (used to add the stealth-address
// offset to the recipient's base spend key).
func AddPublicKeys(a, b PublicKey) (PublicKey, error) {
	pa, err := a.point()
	if err != nil {
		return PublicKey{}, err
	}
	pb, err := b.point()
	if err != nil {
		return PublicKey{}, err
	}
	sum := edwards25519.NewIdentityPoint().Add(pa, pb)
	return pointToPublicKey(sum), nil
}

// ScalarMultKey returns sk*P for an arbitrary point P, the building block of
// both Diffie-Hellman key derivation (sk=view_secret, P=R) and key-image
// construction (sk=one-time secret, P=H_p(P')).
func ScalarMultKey(sk SecretKey, p PublicKey) (PublicKey, error) {
	s, err := sk.scalar()
	if err != nil {
		return PublicKey{}, err
	}
	pt, err := p.point()
	if err != nil {
		return PublicKey{}, err
	}
	res := edwards25519.NewIdentityPoint().ScalarMult(s, pt)
	return pointToPublicKey(res), nil
}

// HashToPoint maps an arbitrary byte string onto a curve point. CryptoNote's
// original construction (ge_fromfe_frombytes_vartime, an Elligator-style map
// straight onto Curve25519) is one of the primitives treats as an
// opaque black box; this wallet core uses the simpler, equally black-box
// H_p(x) = Hs(x)*G stand-in documented in DESIGN.md.
func HashToPoint(data ...[]byte) PublicKey {
	s := HashToScalar(data...)
	return PublicFromSecret(s)
}
