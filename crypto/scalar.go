package crypto

import "filippo.io/edwards25519"

// ScalarReduce64 reduces a byte string of up to 64 bytes, interpreted as a
// little-endian integer, modulo the curve order; bytes past the 64th are
// ignored. Secret keys throughout the
// wallet core are always stored in this reduced canonical form.
func ScalarReduce64(b []byte) SecretKey {
	wide := make([]byte, 64)
	copy(wide, b)
	s, err := edwards25519.NewScalar().SetUniformBytes(wide)
	if err != nil {
		// SetUniformBytes only fails if the input isn't 64 bytes, which
		// cannot happen given the fixed-size buffer above.
		panic(err)
	}
	return scalarToSecretKey(s)
}

// ScalarAdd returns a+b mod l.
func ScalarAdd(a, b SecretKey) (SecretKey, error) {
	sa, err := a.scalar()
	if err != nil {
		return SecretKey{}, err
	}
	sb, err := b.scalar()
	if err != nil {
		return SecretKey{}, err
	}
	return scalarToSecretKey(edwards25519.NewScalar().Add(sa, sb)), nil
}

// ScalarSub returns a-b mod l.
func ScalarSub(a, b SecretKey) (SecretKey, error) {
	sa, err := a.scalar()
	if err != nil {
		return SecretKey{}, err
	}
	sb, err := b.scalar()
	if err != nil {
		return SecretKey{}, err
	}
	return scalarToSecretKey(edwards25519.NewScalar().Subtract(sa, sb)), nil
}

// ScalarMul returns a*b mod l.
func ScalarMul(a, b SecretKey) (SecretKey, error) {
	sa, err := a.scalar()
	if err != nil {
		return SecretKey{}, err
	}
	sb, err := b.scalar()
	if err != nil {
		return SecretKey{}, err
	}
	return scalarToSecretKey(edwards25519.NewScalar().Multiply(sa, sb)), nil
}

// ScalarMulAdd returns a*b+c mod l.
func ScalarMulAdd(a, b, c SecretKey) (SecretKey, error) {
	sa, err := a.scalar()
	if err != nil {
		return SecretKey{}, err
	}
	sb, err := b.scalar()
	if err != nil {
		return SecretKey{}, err
	}
	sc, err := c.scalar()
	if err != nil {
		return SecretKey{}, err
	}
	return scalarToSecretKey(edwards25519.NewScalar().MultiplyAdd(sa, sb, sc)), nil
}
