package crypto

// GenerateKeyDerivation computes D = view_secret * R, the shared secret
// between a transaction's ephemeral public key R and the recipient's view
// keypair.
func GenerateKeyDerivation(txPublicKey PublicKey, viewSecret SecretKey) (KeyDerivation, error) {
	d, err := ScalarMultKey(viewSecret, txPublicKey)
	if err != nil {
		return KeyDerivation{}, err
	}
	return KeyDerivation(d), nil
}

// derivationHash computes H_s(D || varint(index)), the scalar shared by
// DerivePublicKey and DeriveSecretKey.
func derivationHash(d KeyDerivation, index uint64) SecretKey {
	h := HashUint64(d[:], index)
	return ScalarReduce64(h[:])
}

// DerivePublicKey computes the one-time output key P' = H_s(D‖i)·G + base
// for output index i, and reports whether it matches the stealth key
// actually published on-chain.
func DerivePublicKey(d KeyDerivation, index uint64, base PublicKey) (PublicKey, error) {
	hs := derivationHash(d, index)
	hsG := PublicFromSecret(hs)
	return AddPublicKeys(hsG, base)
}

// DeriveSecretKey computes the one-time ephemeral secret x = H_s(D‖i) +
// base_secret (mod l), usable only by the holder of the account's spend
// secret.
func DeriveSecretKey(d KeyDerivation, index uint64, base SecretKey) (SecretKey, error) {
	hs := derivationHash(d, index)
	return ScalarAdd(hs, base)
}

// DeriveKeyImage computes I = x·H_p(P'), binding a one-time output to a
// single ring-signed spend (glossary: "Key image").
func DeriveKeyImage(secret SecretKey, pub PublicKey) (KeyImage, error) {
	hp := HashToPoint(pub[:])
	i, err := ScalarMultKey(secret, hp)
	if err != nil {
		return KeyImage{}, err
	}
	return KeyImage(i), nil
}
