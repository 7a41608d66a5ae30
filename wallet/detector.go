package wallet

import (
	"errors"

	"github.com/cnwallet/walletcore/account"
	"github.com/cnwallet/walletcore/chain"
	"github.com/cnwallet/walletcore/crypto"
)

// ErrMissingPubKey mirrors chain.ErrMissingPubKey at the detector boundary
//.
var ErrMissingPubKey = chain.ErrMissingPubKey

// ErrUnsupportedOutputType is returned when validating (not scanning) a tx
// that carries an output target variant other than to_key.
var ErrUnsupportedOutputType = errors.New("wallet: unsupported output target type")

// OwnedOutput is one output of a scanned transaction identified as
// belonging to the account, together with the data needed to later spend
// it.
type OwnedOutput struct {
	Index           int
	Amount          uint64
	EphemeralSecret crypto.SecretKey
	KeyImage        crypto.KeyImage
}

// DetectOwnedOutputs runs the output-detector algorithm over
// tx for the given account, returning every output this account owns. A
// transaction whose extra field carries no per-tx public key yields
// ErrMissingPubKey; the caller is expected to treat that as "skip and
// record a skipped-transaction callback", not abort the whole scan.
func DetectOwnedOutputs(acc account.Account, tx chain.Transaction) ([]OwnedOutput, uint64, error) {
	txPubKey, err := chain.ExtractPubKey(tx.Extra)
	if err != nil {
		return nil, 0, ErrMissingPubKey
	}

	derivation, err := crypto.GenerateKeyDerivation(txPubKey, acc.Keys.ViewSecret)
	if err != nil {
		return nil, 0, err
	}

	var owned []OwnedOutput
	var sum uint64
	for i, out := range tx.Outs {
		if out.TargetType != chain.TxOutToKey {
			// Scanning (not validating): skip unsupported variants rather
			// than treating them as fatal.
			continue
		}
		if out.Amount == 0 {
			continue
		}

		candidate, err := crypto.DerivePublicKey(derivation, uint64(i), acc.Keys.SpendPublic)
		if err != nil {
			return nil, 0, err
		}
		if candidate != out.Key {
			continue
		}

		ephemeralSecret, err := crypto.DeriveSecretKey(derivation, uint64(i), acc.Keys.SpendSecret)
		if err != nil {
			return nil, 0, err
		}
		keyImage, err := crypto.DeriveKeyImage(ephemeralSecret, candidate)
		if err != nil {
			return nil, 0, err
		}

		owned = append(owned, OwnedOutput{
			Index:           i,
			Amount:          out.Amount,
			EphemeralSecret: ephemeralSecret,
			KeyImage:        keyImage,
		})
		sum += out.Amount
	}

	return owned, sum, nil
}

// ValidateOutputTypes returns ErrUnsupportedOutputType if tx carries any
// output target variant other than to_key, for callers building (rather
// than scanning) a transaction, where the stricter fatal behavior applies
//.
func ValidateOutputTypes(tx chain.Transaction) error {
	for _, out := range tx.Outs {
		if out.TargetType != chain.TxOutToKey {
			return ErrUnsupportedOutputType
		}
	}
	return nil
}
