// Package account implements the wallet core's account-keys component:
// spend/view keypairs, address rendering, and the recoverable-seed
// lifecycle. It is grounded on seed handling in modules/wallet/seed.go and
// modules/wallet/encrypt.go (createEncryptedSeed/initEncryptedPrimarySeed),
// generalized from a single "primary seed" that derives addresses-by-index
// to the spend/view keypair model a CryptoNote account actually uses.
package account

import (
	"github.com/cnwallet/walletcore/crypto"
)

// Keys holds the spend and view keypairs of one account.
type Keys struct {
	SpendPublic crypto.PublicKey
	SpendSecret crypto.SecretKey
	ViewPublic  crypto.PublicKey
	ViewSecret  crypto.SecretKey
}

// Account is the core account data persisted in the keys file.
type Account struct {
	Keys Keys
	// CreationTimestamp is Unix seconds. Accounts recovered from a seed
	// are pinned to NetworkGenesisEpoch: "timestamp
	// pinned to a fixed early date") so a restore always performs a full
	// chain scan rather than trusting the clock the restore happened on.
	CreationTimestamp int64
}

// NetworkGenesisEpoch is the configurable network parameter recover()
// pins a recovered account's creation timestamp to. Callers embedding
// this package for a specific network may override it before calling
// Recover.
var NetworkGenesisEpoch int64 = 1397818193 // 2014-04-18T10:49:53Z, this network's genesis era

// CreateUnrecoverable creates an account with independently random spend
// and view keypairs. The resulting
// account has no recovery seed: its spend and view secrets are
// unrelated, so losing the keys file loses the funds.
func CreateUnrecoverable(now int64) Account {
	spendSecret, spendPublic := crypto.GenerateKeyPair()
	viewSecret, viewPublic := crypto.GenerateKeyPair()
	return Account{
		Keys: Keys{
			SpendPublic: spendPublic,
			SpendSecret: spendSecret,
			ViewPublic:  viewPublic,
			ViewSecret:  viewSecret,
		},
		CreationTimestamp: now,
	}
}

// CreateRecoverable creates an account whose view keypair is
// deterministically derived from the spend secret key; view keypair
// deterministically derived from view_seed"), and returns the spend
// secret key as the seed a user can write down and later hand to
// Recover.
func CreateRecoverable(now int64) (acc Account, seed [32]byte) {
	spendSecret, spendPublic := crypto.GenerateKeyPair()
	viewSecret, viewPublic := deriveViewKeys(spendSecret)
	acc = Account{
		Keys: Keys{
			SpendPublic: spendPublic,
			SpendSecret: spendSecret,
			ViewPublic:  viewPublic,
			ViewSecret:  viewSecret,
		},
		CreationTimestamp: now,
	}
	return acc, [32]byte(spendSecret)
}

// Recover rebuilds an account from a seed previously returned by
// CreateRecoverable or GetSeed). The creation
// timestamp is pinned to NetworkGenesisEpoch so the scanner performs a
// full rescan.
func Recover(seed [32]byte) Account {
	spendSecret := crypto.ScalarReduce64(seed[:])
	spendPublic := crypto.PublicFromSecret(spendSecret)
	viewSecret, viewPublic := deriveViewKeys(spendSecret)
	return Account{
		Keys: Keys{
			SpendPublic: spendPublic,
			SpendSecret: spendSecret,
			ViewPublic:  viewPublic,
			ViewSecret:  viewSecret,
		},
		CreationTimestamp: NetworkGenesisEpoch,
	}
}

// GetSeed returns the recovery seed for this account, satisfying testable
// property 9 (recover(get_seed(A)) == A) for any account created via
// CreateRecoverable or Recover. Accounts created via CreateUnrecoverable
// have no seed; GetSeed on those simply returns the (useless, unrelated)
// spend secret, same as the original wallet2's GetSeed behavior.
func (a Account) GetSeed() [32]byte {
	return [32]byte(a.Keys.SpendSecret)
}

// deriveViewKeys computes view_secret = reduce(Keccak(spend_secret)) and
// its corresponding public key)").
func deriveViewKeys(spendSecret crypto.SecretKey) (crypto.SecretKey, crypto.PublicKey) {
	h := crypto.HashBytes(spendSecret[:])
	viewSecret := crypto.ScalarReduce64(h[:])
	viewPublic := crypto.PublicFromSecret(viewSecret)
	return viewSecret, viewPublic
}
