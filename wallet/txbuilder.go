package wallet

import (
	"context"
	"encoding/hex"
	"errors"
	"sort"
	"time"

	"github.com/NebulousLabs/fastrand"
	"github.com/cnwallet/walletcore/account"
	"github.com/cnwallet/walletcore/chain"
	"github.com/cnwallet/walletcore/crypto"
	"github.com/cnwallet/walletcore/rpc"
	"github.com/cnwallet/walletcore/walleterrors"
)

// MaxSplitAttempts bounds the split-and-retry outer loop.
const MaxSplitAttempts = 30

// Destination is one requested payment.
type Destination struct {
	Address account.Address
	Amount  uint64
}

// PendingTx is the builder's output: a fully-constructed, not-yet-relayed
// transaction plus the bookkeeping commit needs.
type PendingTx struct {
	Tx                   chain.Transaction
	Dust                 uint64
	Fee                  uint64
	ChangeDestination    account.Address
	SelectedInputHandles []int // stable indices into State.transfers
	KeyImagesString      string
}

// Builder is the transaction-construction component (C6). It reads the
// transfer state to pick inputs, asks the node for decoys, and produces
// PendingTx values Commit later relays.
type Builder struct {
	state       *State
	node        rpc.Client
	account     account.Account
	network     byte
	sizeLimit   int
	dustPolicy  DustPolicy
	splitPolicy SplitStrategy
}

// NewBuilder returns a Builder over state using node as the node
// collaborator, with the given upper_transaction_size_limit.
func NewBuilder(state *State, node rpc.Client, acc account.Account, network byte, sizeLimit int, dustPolicy DustPolicy) *Builder {
	return &Builder{
		state:       state,
		node:        node,
		account:     acc,
		network:     network,
		sizeLimit:   sizeLimit,
		dustPolicy:  dustPolicy,
		splitPolicy: DigitSplit,
	}
}

// CreateTransactions implements create_transactions: the split-and-retry outer loop wrapped around a single-shot
// transfer() that may raise ErrTxTooBig.
func (b *Builder) CreateTransactions(ctx context.Context, destinations []Destination, mixinCount int, unlockTime uint64, fee uint64, extra []byte) ([]PendingTx, error) {
	if len(destinations) == 0 {
		return nil, walleterrors.New(walleterrors.ZeroDestination, "wallet.Builder.CreateTransactions", "no destinations")
	}
	for _, d := range destinations {
		if d.Amount == 0 {
			return nil, walleterrors.New(walleterrors.ZeroDestination, "wallet.Builder.CreateTransactions", "zero-amount destination")
		}
	}

	for n := 1; n <= MaxSplitAttempts; n++ {
		slices := splitDestinations(destinations, n)
		feeSlices := splitAmount(fee, n)

		var built []PendingTx
		var usedHandles []int
		ok := true
		for i := 0; i < n; i++ {
			pending, handles, err := b.transfer(ctx, slices[i], mixinCount, unlockTime, feeSlices[i], extra)
			if err != nil {
				if errors.Is(err, ErrTxTooBig) {
					ok = false
					break
				}
				b.rollback(usedHandles)
				return nil, err
			}
			built = append(built, pending)
			usedHandles = append(usedHandles, handles...)
		}
		if ok {
			return built, nil
		}
		b.rollback(usedHandles)
	}
	return nil, walleterrors.New(walleterrors.TxTooBig, "wallet.Builder.CreateTransactions",
		"exceeded MAX_SPLIT_ATTEMPTS without producing a transaction under the size limit")
}

func (b *Builder) rollback(handles []int) {
	for _, h := range handles {
		b.state.SetSpentAt(h, false)
	}
}

// splitDestinations partitions every destination amount into n near-equal
// parts, the last part absorbing the remainder.
func splitDestinations(destinations []Destination, n int) [][]Destination {
	slices := make([][]Destination, n)
	for _, d := range destinations {
		parts := splitAmount(d.Amount, n)
		for i, part := range parts {
			if part == 0 {
				continue
			}
			slices[i] = append(slices[i], Destination{Address: d.Address, Amount: part})
		}
	}
	return slices
}

func splitAmount(amount uint64, n int) []uint64 {
	parts := make([]uint64, n)
	base := amount / uint64(n)
	for i := 0; i < n-1; i++ {
		parts[i] = base
	}
	parts[n-1] = amount - base*uint64(n-1)
	return parts
}

// ErrTxTooBig is returned by transfer() when the built transaction's
// serialized size meets or exceeds the configured upper size limit.
var ErrTxTooBig = walleterrors.New(walleterrors.TxTooBig, "", "")

// transfer is the single-shot builder: select inputs, fetch decoys,
// decompose amounts, construct and sign the transaction.
func (b *Builder) transfer(ctx context.Context, destinations []Destination, mixinCount int, unlockTime uint64, fee uint64, extra []byte) (PendingTx, []int, error) {
	needed := fee
	for _, d := range destinations {
		prev := needed
		needed += d.Amount
		if needed < prev {
			return PendingTx{}, nil, walleterrors.New(walleterrors.TxSumOverflow, "wallet.Builder.transfer", "needed_money overflowed")
		}
	}

	selected, handles, total, err := b.selectInputs(needed, mixinCount)
	if err != nil {
		return PendingTx{}, nil, err
	}
	change := total - needed

	ins, err := b.buildInputs(ctx, selected, mixinCount)
	if err != nil {
		b.rollback(handles)
		return PendingTx{}, nil, err
	}

	outs, extraOut, dust, err := b.buildOutputs(destinations, change)
	if err != nil {
		b.rollback(handles)
		return PendingTx{}, nil, err
	}

	tx := chain.Transaction{
		Version:    1,
		UnlockTime: unlockTime,
		Ins:        ins,
		Outs:       outs,
		Extra:      append(append([]byte{}, extra...), extraOut...),
	}

	if b.sizeLimit > 0 && len(chain.Marshal(tx)) >= b.sizeLimit {
		b.rollback(handles)
		return PendingTx{}, nil, ErrTxTooBig
	}

	signed, err := b.signInputs(tx, selected)
	if err != nil {
		b.rollback(handles)
		return PendingTx{}, nil, walleterrors.Wrap(walleterrors.TxNotConstructed, "wallet.Builder.transfer", err)
	}

	var keyImages string
	for _, in := range signed.Ins {
		if in.Type == chain.TxInToKey {
			keyImages += hex.EncodeToString(in.KeyImage[:]) + ","
		}
	}

	return PendingTx{
		Tx:                   signed,
		Dust:                 dust,
		Fee:                  fee,
		ChangeDestination:    b.account.Address(b.network),
		SelectedInputHandles: handles,
		KeyImagesString:      keyImages,
	}, handles, nil
}

// selectInputs implements input selection: partition into
// non-dust/dust, repeatedly pop a uniformly random entry (swap-with-last-
// then-pop) until the accumulated amount covers needed.
func (b *Builder) selectInputs(needed uint64, mixinCount int) (selected []TransferDetail, handles []int, total uint64, err error) {
	now := time.Now().Unix()
	transfers := b.state.Transfers()

	var nonDust, dust []int
	for i, td := range transfers {
		if !b.state.IsSpendable(td, now) {
			continue
		}
		if td.Amount() > b.dustPolicy.Threshold {
			nonDust = append(nonDust, i)
		} else {
			dust = append(dust, i)
		}
	}

	pools := [][]int{nonDust}
	if mixinCount == 0 {
		pools = append(pools, dust)
	}

	for _, pool := range pools {
		for total < needed && len(pool) > 0 {
			pick := fastrand.Intn(len(pool))
			idx := pool[pick]
			pool[pick] = pool[len(pool)-1]
			pool = pool[:len(pool)-1]

			td := transfers[idx]
			selected = append(selected, td)
			handles = append(handles, idx)
			total += td.Amount()
			b.state.SetSpentAt(idx, true)
		}
	}

	if total < needed {
		b.rollback(handles)
		return nil, nil, 0, walleterrors.New(walleterrors.NotEnoughMoney, "wallet.Builder.selectInputs", "insufficient spendable balance")
	}
	return selected, handles, total, nil
}

// buildInputs fetches decoys for each selected transfer and assembles the
// input list with relative (delta-encoded) key offsets.
func (b *Builder) buildInputs(ctx context.Context, selected []TransferDetail, mixinCount int) ([]chain.TxIn, error) {
	ins := make([]chain.TxIn, len(selected))
	for i, td := range selected {
		offsets, err := b.fetchDecoyOffsets(ctx, td, mixinCount)
		if err != nil {
			return nil, err
		}
		ins[i] = chain.TxIn{
			Type:       chain.TxInToKey,
			Amount:     td.Amount(),
			KeyOffsets: absoluteToRelative(offsets),
			KeyImage:   td.KeyImage,
		}
	}
	return ins, nil
}

// fetchDecoyOffsets requests mixinCount+1 random outputs of td's amount
// from the node, filters and sorts them, and interleaves the real output
// at its sorted position"). The
// real output's position within the returned, sorted offsets is recovered
// independently by signInputs, which needs it alongside the ring keys.
func (b *Builder) fetchDecoyOffsets(ctx context.Context, td TransferDetail, mixinCount int) ([]uint64, error) {
	if mixinCount == 0 {
		return []uint64{td.GlobalOutputIndex}, nil
	}

	resp, err := b.node.GetRandomOuts(ctx, []uint64{td.Amount()}, mixinCount+1)
	if err != nil {
		return nil, err
	}

	var candidates []indexedKey
	for _, group := range resp.Outs {
		if group.Amount != td.Amount() {
			continue
		}
		for _, o := range group.Outs {
			if o.GlobalAmountIndex == td.GlobalOutputIndex {
				continue
			}
			candidates = append(candidates, indexedKey{GlobalIndex: o.GlobalAmountIndex, Key: o.OutKey})
		}
	}
	sortByGlobalIndex(candidates)

	if len(candidates) > mixinCount {
		candidates = candidates[:mixinCount]
	}
	if len(candidates) < mixinCount {
		return nil, walleterrors.New(walleterrors.NotEnoughOutsToMix, "wallet.Builder.fetchDecoyOffsets", "node returned too few decoys")
	}

	all := append(candidates, indexedKey{GlobalIndex: td.GlobalOutputIndex})
	sortByGlobalIndex(all)

	offsets := make([]uint64, len(all))
	for i, c := range all {
		offsets[i] = c.GlobalIndex
	}
	return offsets, nil
}

// absoluteToRelative implements absolute_to_relative
// for a sorted non-empty offset list: delta-encode each element against
// its predecessor.
func absoluteToRelative(offsets []uint64) []uint64 {
	out := make([]uint64, len(offsets))
	var prev uint64
	for i, o := range offsets {
		if i == 0 {
			out[i] = o
		} else {
			out[i] = o - prev
		}
		prev = o
	}
	return out
}

// RelativeToAbsolute is the inverse of absoluteToRelative, used by
// signInputs and exported for callers that need to recover absolute
// offsets from the wire form.
func RelativeToAbsolute(offsets []uint64) []uint64 {
	out := make([]uint64, len(offsets))
	var acc uint64
	for i, o := range offsets {
		acc += o
		out[i] = acc
	}
	return out
}

// buildOutputs splits every destination under the builder's split
// strategy and digit-splits the change amount, sorts the outputs by amount
// ascending, and generates a fresh one-time stealth key per output from
// its position in the sorted list, the index the receiver's detector uses.
func (b *Builder) buildOutputs(destinations []Destination, change uint64) ([]chain.TxOut, []byte, uint64, error) {
	txSecret, txPublic := crypto.GenerateKeyPair()

	type pending struct {
		amount uint64
		addr   account.Address
	}
	var plan []pending
	var totalDust uint64

	addOutputs := func(amount uint64, addr account.Address, strategy SplitStrategy) {
		splits, dust := ApplySplitStrategy(amount, addr, strategy, b.dustPolicy)
		totalDust += dust
		for _, s := range splits {
			plan = append(plan, pending{amount: s.Amount, addr: s.Address})
		}
	}

	for _, d := range destinations {
		if d.Amount == 0 {
			return nil, nil, 0, walleterrors.New(walleterrors.ZeroDestination, "wallet.Builder.buildOutputs", "zero-amount destination")
		}
		addOutputs(d.Amount, d.Address, b.splitPolicy)
	}
	if change > 0 {
		addOutputs(change, b.account.Address(b.network), DigitSplit)
	}

	sort.Slice(plan, func(i, j int) bool { return plan[i].amount < plan[j].amount })

	outs := make([]chain.TxOut, len(plan))
	for i, p := range plan {
		stealthKey, err := deriveOutputKey(txSecret, p.addr, uint64(i))
		if err != nil {
			return nil, nil, 0, err
		}
		outs[i] = chain.TxOut{Amount: p.amount, TargetType: chain.TxOutToKey, Key: stealthKey}
	}

	return outs, chain.BuildExtra(txPublic, nil), totalDust, nil
}

// deriveOutputKey computes P = H(r·V_dest‖idx)·G + S_dest for a fresh
// per-tx secret r already generated by the caller.
func deriveOutputKey(txSecret crypto.SecretKey, dest account.Address, index uint64) (crypto.PublicKey, error) {
	derivation, err := crypto.GenerateKeyDerivation(dest.ViewPublic, txSecret)
	if err != nil {
		return crypto.PublicKey{}, err
	}
	return crypto.DerivePublicKey(derivation, index, dest.SpendPublic)
}

// signInputs computes the prefix hash and produces a ring signature for
// every input.
func (b *Builder) signInputs(tx chain.Transaction, selected []TransferDetail) (chain.Transaction, error) {
	prefixHash := tx.PrefixHash()

	for i := range tx.Ins {
		if tx.Ins[i].Type != chain.TxInToKey {
			continue
		}
		td := selected[i]
		offsets := RelativeToAbsolute(tx.Ins[i].KeyOffsets)

		ringKeys := make([]crypto.PublicKey, len(offsets))
		realIndex := -1
		for j, off := range offsets {
			if off == td.GlobalOutputIndex {
				ringKeys[j] = td.Tx.Outs[td.InternalOutputIndex].Key
				realIndex = j
			}
		}
		if realIndex == -1 {
			return tx, errors.New("wallet: real output missing from its own ring")
		}

		ephemeralSecret, err := ownedEphemeralSecret(b.account, td)
		if err != nil {
			return tx, err
		}

		sig, err := crypto.GenerateRingSignature(prefixHash, td.KeyImage, ringKeys, realIndex, ephemeralSecret)
		if err != nil {
			return tx, err
		}
		tx.Ins[i].RingSignature = sig
	}

	return tx, nil
}

// ownedEphemeralSecret re-derives the one-time secret for td under the
// sender's own keys").
func ownedEphemeralSecret(acc account.Account, td TransferDetail) (crypto.SecretKey, error) {
	txPubKey, err := chain.ExtractPubKey(td.Tx.Extra)
	if err != nil {
		return crypto.SecretKey{}, err
	}
	derivation, err := crypto.GenerateKeyDerivation(txPubKey, acc.Keys.ViewSecret)
	if err != nil {
		return crypto.SecretKey{}, err
	}
	return crypto.DeriveSecretKey(derivation, uint64(td.InternalOutputIndex), acc.Keys.SpendSecret)
}

// Commit relays tx to the node; on success it records an unconfirmed
// transfer and marks every selected input spent.
func (b *Builder) Commit(ctx context.Context, pending PendingTx, txHex string) error {
	resp, err := b.node.SendRawTransaction(ctx, txHex)
	if err != nil {
		return err
	}
	if resp.Status != rpc.StatusOK {
		return walleterrors.New(walleterrors.TxRejected, "wallet.Builder.Commit", string(resp.Status))
	}

	b.state.addUnconfirmed(pending.Tx.Hash(), UnconfirmedTransferDetail{
		Tx:           pending.Tx,
		ChangeAmount: changeAmount(pending),
		SentTime:     time.Now().Unix(),
	})
	for _, h := range pending.SelectedInputHandles {
		b.state.SetSpentAt(h, true)
	}
	return nil
}

func changeAmount(pending PendingTx) uint64 {
	var total uint64
	for _, out := range pending.Tx.Outs {
		total += out.Amount
	}
	return total - pending.Fee - pending.Dust
}
