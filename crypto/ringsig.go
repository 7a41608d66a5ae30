package crypto

import (
	"errors"

	"github.com/NebulousLabs/fastrand"
)

// RingEntry is one (c, r) pair of a ring signature, one per candidate
// public key in the ring (glossary: "Ring signature ... proving knowledge
// of the secret for exactly one of them without revealing which").
type RingEntry struct {
	C SecretKey
	R SecretKey
}

// RingSignature is the full signature over one transaction input: one
// RingEntry per decoy-plus-real candidate key.
type RingSignature []RingEntry

var errRingMismatch = errors.New("crypto: ring signature does not match the number of ring members")

func randomScalar() SecretKey {
	var wide [64]byte
	fastrand.Read(wide[:])
	return ScalarReduce64(wide[:])
}

// GenerateRingSignature produces a traceable ring signature proving
// knowledge of the secret key behind exactly one of pubKeys (at
// secretIndex) without revealing which, binding the proof to keyImage and
// prefixHash.
func GenerateRingSignature(prefixHash Hash, keyImage KeyImage, pubKeys []PublicKey, secretIndex int, secretKey SecretKey) (RingSignature, error) {
	n := len(pubKeys)
	if secretIndex < 0 || secretIndex >= n {
		return nil, errors.New("crypto: secretIndex out of range")
	}

	sig := make(RingSignature, n)
	lPoints := make([]PublicKey, n)
	rPoints := make([]PublicKey, n)

	var k SecretKey
	var sumOthers SecretKey

	for j := 0; j < n; j++ {
		hp := HashToPoint(pubKeys[j][:])
		if j == secretIndex {
			k = randomScalar()
			lPoints[j] = PublicFromSecret(k)
			rp, err := ScalarMultKey(k, hp)
			if err != nil {
				return nil, err
			}
			rPoints[j] = rp
			continue
		}

		cj := randomScalar()
		rj := randomScalar()
		sig[j] = RingEntry{C: cj, R: rj}

		rjG := PublicFromSecret(rj)
		cjPj, err := ScalarMultKey(cj, pubKeys[j])
		if err != nil {
			return nil, err
		}
		lj, err := AddPublicKeys(rjG, cjPj)
		if err != nil {
			return nil, err
		}
		lPoints[j] = lj

		rjHp, err := ScalarMultKey(rj, hp)
		if err != nil {
			return nil, err
		}
		cjI, err := ScalarMultKey(cj, PublicKey(keyImage))
		if err != nil {
			return nil, err
		}
		rp, err := AddPublicKeys(rjHp, cjI)
		if err != nil {
			return nil, err
		}
		rPoints[j] = rp

		sum, err := ScalarAdd(sumOthers, cj)
		if err != nil {
			return nil, err
		}
		sumOthers = sum
	}

	c := challengeHash(prefixHash, lPoints, rPoints)
	cSecret, err := ScalarSub(c, sumOthers)
	if err != nil {
		return nil, err
	}
	csk, err := ScalarMul(cSecret, secretKey)
	if err != nil {
		return nil, err
	}
	rSecret, err := ScalarSub(k, csk)
	if err != nil {
		return nil, err
	}
	sig[secretIndex] = RingEntry{C: cSecret, R: rSecret}
	return sig, nil
}

// VerifyRingSignature checks a ring signature produced by
// GenerateRingSignature, without learning which ring member signed.
func VerifyRingSignature(prefixHash Hash, keyImage KeyImage, pubKeys []PublicKey, sig RingSignature) error {
	n := len(pubKeys)
	if len(sig) != n {
		return errRingMismatch
	}

	lPoints := make([]PublicKey, n)
	rPoints := make([]PublicKey, n)
	var sumC SecretKey

	for j := 0; j < n; j++ {
		hp := HashToPoint(pubKeys[j][:])

		rjG := PublicFromSecret(sig[j].R)
		cjPj, err := ScalarMultKey(sig[j].C, pubKeys[j])
		if err != nil {
			return err
		}
		lj, err := AddPublicKeys(rjG, cjPj)
		if err != nil {
			return err
		}
		lPoints[j] = lj

		rjHp, err := ScalarMultKey(sig[j].R, hp)
		if err != nil {
			return err
		}
		cjI, err := ScalarMultKey(sig[j].C, PublicKey(keyImage))
		if err != nil {
			return err
		}
		rp, err := AddPublicKeys(rjHp, cjI)
		if err != nil {
			return err
		}
		rPoints[j] = rp

		sum, err := ScalarAdd(sumC, sig[j].C)
		if err != nil {
			return err
		}
		sumC = sum
	}

	c := challengeHash(prefixHash, lPoints, rPoints)
	if c != sumC {
		return ErrInvalidSignature
	}
	return nil
}

func challengeHash(prefixHash Hash, lPoints, rPoints []PublicKey) SecretKey {
	parts := make([][]byte, 0, 1+2*len(lPoints))
	parts = append(parts, prefixHash[:])
	for i := range lPoints {
		l := lPoints[i]
		r := rPoints[i]
		parts = append(parts, l[:], r[:])
	}
	return HashToScalar(parts...)
}
