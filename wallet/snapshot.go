package wallet

import (
	"github.com/cnwallet/walletcore/account"
	"github.com/cnwallet/walletcore/chain"
	"github.com/cnwallet/walletcore/crypto"
	"github.com/cnwallet/walletcore/persist"
)

// snapshotVersion is the highest version this build writes:
// "v>=5: blockchain, transfers, account_public_address, key_images; v>=6:
// +unconfirmed_txs; v>=7: +payments". Every earlier version this constant
// lists must still be readable; only the highest is ever written.
const snapshotVersion = 7

const (
	versionTransfers   = 5
	versionUnconfirmed = 6
	versionPayments    = 7
)

// saveSnapshot serializes state and the account's public address to path
// using the version-gated binary codec.
func saveSnapshot(path string, state *State, addr account.Address) error {
	enc := persist.NewEncoder(snapshotVersion)

	blockchain := state.Blockchain
	enc.WriteUint64(uint64(len(blockchain)))
	for _, h := range blockchain {
		enc.WriteFixed(h[:])
	}

	transfers := state.Transfers()
	enc.WriteUint64(uint64(len(transfers)))
	for _, td := range transfers {
		writeTransferDetail(enc, td)
	}

	enc.WriteFixed([]byte{addr.Network})
	enc.WriteFixed(addr.SpendPublic[:])
	enc.WriteFixed(addr.ViewPublic[:])

	state.mu.RLock()
	keyImages := make([]crypto.KeyImage, 0, len(state.keyImages))
	for ki := range state.keyImages {
		keyImages = append(keyImages, ki)
	}
	state.mu.RUnlock()
	enc.WriteUint64(uint64(len(keyImages)))
	for _, ki := range keyImages {
		enc.WriteFixed(ki[:])
	}

	state.mu.RLock()
	unconfirmed := make(map[chain.Hash]UnconfirmedTransferDetail, len(state.unconfirmed))
	for k, v := range state.unconfirmed {
		unconfirmed[k] = v
	}
	state.mu.RUnlock()
	enc.WriteUint64(uint64(len(unconfirmed)))
	for hash, u := range unconfirmed {
		enc.WriteFixed(hash[:])
		writeTransaction(enc, u.Tx)
		enc.WriteUint64(u.ChangeAmount)
		enc.WriteInt64(u.SentTime)
	}

	state.mu.RLock()
	payments := make(map[[32]byte][]PaymentDetail, len(state.payments))
	for id, pds := range state.payments {
		payments[id] = append([]PaymentDetail{}, pds...)
	}
	state.mu.RUnlock()
	enc.WriteUint64(uint64(len(payments)))
	for id, pds := range payments {
		enc.WriteFixed(id[:])
		enc.WriteUint64(uint64(len(pds)))
		for _, pd := range pds {
			enc.WriteFixed(pd.TxHash[:])
			enc.WriteUint64(pd.Amount)
			enc.WriteUint64(pd.BlockHeight)
			enc.WriteUint64(pd.UnlockTime)
		}
	}

	return persist.AtomicWriteFile(path, enc.Bytes())
}

// loadSnapshot deserializes a snapshot written by any version between 5
// and snapshotVersion, filling in only the fields that version carries.
func loadSnapshot(path string) (*State, account.Address, error) {
	raw, err := readSnapshotFile(path)
	if err != nil {
		return nil, account.Address{}, err
	}

	dec, err := persist.NewDecoder(raw)
	if err != nil {
		return nil, account.Address{}, err
	}
	if dec.Version < versionTransfers {
		return nil, account.Address{}, errUnsupportedSnapshotVersion(dec.Version)
	}

	n, err := dec.ReadUint64()
	if err != nil {
		return nil, account.Address{}, err
	}
	blockchain := make([]chain.Hash, n)
	for i := range blockchain {
		b, err := dec.ReadFixed(crypto.HashSize)
		if err != nil {
			return nil, account.Address{}, err
		}
		copy(blockchain[i][:], b)
	}

	m, err := dec.ReadUint64()
	if err != nil {
		return nil, account.Address{}, err
	}
	transfers := make([]TransferDetail, m)
	for i := range transfers {
		td, err := readTransferDetail(dec)
		if err != nil {
			return nil, account.Address{}, err
		}
		transfers[i] = td
	}

	var addr account.Address
	networkByte, err := dec.ReadFixed(1)
	if err != nil {
		return nil, account.Address{}, err
	}
	addr.Network = networkByte[0]
	spendPub, err := dec.ReadFixed(crypto.PublicKeySize)
	if err != nil {
		return nil, account.Address{}, err
	}
	copy(addr.SpendPublic[:], spendPub)
	viewPub, err := dec.ReadFixed(crypto.PublicKeySize)
	if err != nil {
		return nil, account.Address{}, err
	}
	copy(addr.ViewPublic[:], viewPub)

	// The key-image set is fully redundant with transfers (each transfer
	// carries its own key image); it is still consumed from the stream to
	// stay positioned for the fields that follow, and re-derived below
	// instead of trusted as written.
	keyImageCount, err := dec.ReadUint64()
	if err != nil {
		return nil, account.Address{}, err
	}
	for i := uint64(0); i < keyImageCount; i++ {
		if _, err := dec.ReadFixed(crypto.KeyImageSize); err != nil {
			return nil, account.Address{}, err
		}
	}

	state := &State{
		Blockchain:  blockchain,
		transfers:   transfers,
		keyImages:   make(map[crypto.KeyImage]int, len(transfers)),
		payments:    make(map[[32]byte][]PaymentDetail),
		unconfirmed: make(map[chain.Hash]UnconfirmedTransferDetail),
	}
	for i, td := range transfers {
		state.keyImages[td.KeyImage] = i
	}

	if dec.Version >= versionUnconfirmed {
		uc, err := dec.ReadUint64()
		if err != nil {
			return nil, account.Address{}, err
		}
		for i := uint64(0); i < uc; i++ {
			hashBytes, err := dec.ReadFixed(crypto.HashSize)
			if err != nil {
				return nil, account.Address{}, err
			}
			var hash chain.Hash
			copy(hash[:], hashBytes)

			tx, err := readTransaction(dec)
			if err != nil {
				return nil, account.Address{}, err
			}
			changeAmount, err := dec.ReadUint64()
			if err != nil {
				return nil, account.Address{}, err
			}
			sentTime, err := dec.ReadInt64()
			if err != nil {
				return nil, account.Address{}, err
			}
			state.unconfirmed[hash] = UnconfirmedTransferDetail{Tx: tx, ChangeAmount: changeAmount, SentTime: sentTime}
		}
	}

	if dec.Version >= versionPayments {
		pc, err := dec.ReadUint64()
		if err != nil {
			return nil, account.Address{}, err
		}
		for i := uint64(0); i < pc; i++ {
			idBytes, err := dec.ReadFixed(32)
			if err != nil {
				return nil, account.Address{}, err
			}
			var id [32]byte
			copy(id[:], idBytes)

			entries, err := dec.ReadUint64()
			if err != nil {
				return nil, account.Address{}, err
			}
			pds := make([]PaymentDetail, entries)
			for j := range pds {
				txHashBytes, err := dec.ReadFixed(crypto.HashSize)
				if err != nil {
					return nil, account.Address{}, err
				}
				var pd PaymentDetail
				copy(pd.TxHash[:], txHashBytes)
				if pd.Amount, err = dec.ReadUint64(); err != nil {
					return nil, account.Address{}, err
				}
				if pd.BlockHeight, err = dec.ReadUint64(); err != nil {
					return nil, account.Address{}, err
				}
				if pd.UnlockTime, err = dec.ReadUint64(); err != nil {
					return nil, account.Address{}, err
				}
				pds[j] = pd
			}
			state.payments[id] = pds
		}
	}

	return state, addr, nil
}

func writeTransferDetail(enc *persist.Encoder, td TransferDetail) {
	enc.WriteUint64(td.BlockHeight)
	writeTransaction(enc, td.Tx)
	enc.WriteUint64(uint64(td.InternalOutputIndex))
	enc.WriteUint64(td.GlobalOutputIndex)
	enc.WriteBool(td.Spent)
	enc.WriteFixed(td.KeyImage[:])
}

func readTransferDetail(dec *persist.Decoder) (TransferDetail, error) {
	var td TransferDetail
	var err error
	if td.BlockHeight, err = dec.ReadUint64(); err != nil {
		return td, err
	}
	if td.Tx, err = readTransaction(dec); err != nil {
		return td, err
	}
	internalIndex, err := dec.ReadUint64()
	if err != nil {
		return td, err
	}
	td.InternalOutputIndex = int(internalIndex)
	if td.GlobalOutputIndex, err = dec.ReadUint64(); err != nil {
		return td, err
	}
	if td.Spent, err = dec.ReadBool(); err != nil {
		return td, err
	}
	ki, err := dec.ReadFixed(crypto.KeyImageSize)
	if err != nil {
		return td, err
	}
	copy(td.KeyImage[:], ki)
	return td, nil
}

func writeTransaction(enc *persist.Encoder, tx chain.Transaction) {
	enc.WriteBytes(chain.Marshal(tx))
}

func readTransaction(dec *persist.Decoder) (chain.Transaction, error) {
	raw, err := dec.ReadBytes()
	if err != nil {
		return chain.Transaction{}, err
	}
	return chain.Unmarshal(raw)
}

func readSnapshotFile(path string) ([]byte, error) {
	return persist.ReadFile(path)
}

func errUnsupportedSnapshotVersion(v uint32) error {
	return &unsupportedSnapshotVersionError{version: v}
}

type unsupportedSnapshotVersionError struct {
	version uint32
}

func (e *unsupportedSnapshotVersionError) Error() string {
	return "wallet: snapshot version too old to read"
}
