package wallet

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/NebulousLabs/threadgroup"
	"github.com/google/uuid"

	"github.com/cnwallet/walletcore/account"
	"github.com/cnwallet/walletcore/chain"
	"github.com/cnwallet/walletcore/keystore"
	"github.com/cnwallet/walletcore/persist"
	"github.com/cnwallet/walletcore/rpc"
	"github.com/cnwallet/walletcore/walleterrors"
)

var (
	errNilNode     = errors.New("wallet cannot initialize with a nil node client")
	errLocked      = errors.New("wallet: account is locked")
	errAlreadyOpen = errors.New("wallet: an account is already unlocked in this wallet")
)

const (
	keysFileName     = "wallet.keys"
	snapshotFileName = "wallet.snapshot"
	logFileName      = "wallet.log"
)

// Wallet ties together the transfer state (C5), the chain scanner (C4),
// and the transaction builder (C6) into the single mutex-guarded,
// long-lived object an application embeds. It is grounded on modules/wallet.Wallet:
// persistDir + persist.Logger + threadgroup.ThreadGroup fields, a
// scanLock preventing concurrent rescans, and an unlocked flag gating
// every operation that needs the account's secret keys.
type Wallet struct {
	// ID identifies this Wallet instance for log correlation across a
	// process that may hold more than one open at once.
	ID uuid.UUID

	mu       sync.RWMutex
	scanLock tryMutex
	tg       threadgroup.ThreadGroup

	node    rpc.Client
	network byte

	persistDir string
	log        *persist.Logger

	unlocked bool
	account  account.Account

	state   *State
	scanner *Scanner
	builder *Builder

	callbacks  Callbacks
	dustPolicy DustPolicy
	sizeLimit  int
}

// New creates a Wallet rooted at persistDir, talking to node for chain
// data. The wallet remains locked (no account loaded, no state
// available) until Unlock is called.
func New(node rpc.Client, persistDir string, network byte, callbacks Callbacks, dustPolicy DustPolicy, sizeLimit int) (*Wallet, error) {
	if node == nil {
		return nil, errNilNode
	}

	log, err := persist.NewFileLogger("wallet", filepath.Join(persistDir, logFileName))
	if err != nil {
		return nil, err
	}

	return &Wallet{
		ID:         uuid.New(),
		scanLock:   make(tryMutex, 1),
		node:       node,
		network:    network,
		persistDir: persistDir,
		log:        log,
		callbacks:  callbacks,
		dustPolicy: dustPolicy,
		sizeLimit:  sizeLimit,
	}, nil
}

func (w *Wallet) keysPath() string     { return filepath.Join(w.persistDir, keysFileName) }
func (w *Wallet) snapshotPath() string { return filepath.Join(w.persistDir, snapshotFileName) }

// CreateAndUnlock creates a brand-new account,
// persists it encrypted under password, and unlocks the wallet with it.
// recoverable selects create_recoverable over create_unrecoverable; the
// recovery seed, when one exists, is returned for the caller to display.
func (w *Wallet) CreateAndUnlock(password []byte, recoverable bool) (seed [32]byte, err error) {
	if err := w.tg.Add(); err != nil {
		return seed, err
	}
	defer w.tg.Done()

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.unlocked {
		return seed, errAlreadyOpen
	}

	now := time.Now().Unix()
	var acc account.Account
	if recoverable {
		acc, seed = account.CreateRecoverable(now)
	} else {
		acc = account.CreateUnrecoverable(now)
	}

	if err := keystore.Save(w.keysPath(), acc, password); err != nil {
		return seed, err
	}

	w.openAccountLocked(acc)
	w.log.WithField("recoverable", recoverable).Info("account created")
	return seed, nil
}

// RecoverAndUnlock rebuilds an account from seed,
// persists it encrypted under password, and unlocks the wallet with it.
func (w *Wallet) RecoverAndUnlock(password []byte, seed [32]byte) error {
	if err := w.tg.Add(); err != nil {
		return err
	}
	defer w.tg.Done()

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.unlocked {
		return errAlreadyOpen
	}

	acc := account.Recover(seed)
	if err := keystore.Save(w.keysPath(), acc, password); err != nil {
		return err
	}

	w.openAccountLocked(acc)
	w.log.Info("account recovered from seed")
	return nil
}

// Unlock decrypts the keys file at this wallet's persist directory with
// password, loading any existing snapshot from disk, or starting from
// genesis if none exists yet.
func (w *Wallet) Unlock(password []byte) error {
	if err := w.tg.Add(); err != nil {
		return err
	}
	defer w.tg.Done()

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.unlocked {
		return nil
	}

	acc, err := keystore.Load(w.keysPath(), password)
	if err != nil {
		return err
	}

	w.openAccountLocked(acc)
	w.log.Info("wallet unlocked")
	return nil
}

// openAccountLocked wires state/scanner/builder around acc, loading a
// snapshot from disk if one exists. Caller must hold w.mu.
func (w *Wallet) openAccountLocked(acc account.Account) {
	var genesis chain.Hash
	state := NewState(genesis)

	if loaded, _, err := loadSnapshot(w.snapshotPath()); err == nil {
		state = loaded
	} else if !errNotFound(err) {
		w.log.WithError(err).Warn("snapshot present but unreadable; starting from genesis")
	}

	w.account = acc
	w.state = state
	w.scanner = NewScanner(state, w.node, acc, w.callbacks, &w.tg)
	w.builder = NewBuilder(state, w.node, acc, w.network, w.sizeLimit, w.dustPolicy)
	w.unlocked = true
}

// Lock forgets the in-memory account and its derived components. The
// persisted keys file and snapshot on disk are untouched; Unlock can
// reopen them later.
func (w *Wallet) Lock() error {
	if err := w.tg.Add(); err != nil {
		return err
	}
	defer w.tg.Done()

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.unlocked {
		return nil
	}
	if err := w.saveSnapshotLocked(); err != nil {
		return err
	}

	w.account = account.Account{}
	w.state = nil
	w.scanner = nil
	w.builder = nil
	w.unlocked = false
	return nil
}

// Close stops all tracked background operations, flushes the snapshot to
// disk if the wallet is currently unlocked, and closes the log file
//.
func (w *Wallet) Close() error {
	if err := w.tg.Stop(); err != nil {
		return err
	}

	w.mu.Lock()
	if w.unlocked {
		if err := w.saveSnapshotLocked(); err != nil {
			w.mu.Unlock()
			return fmt.Errorf("wallet: flushing snapshot on close: %w", err)
		}
	}
	w.mu.Unlock()

	return w.log.Close()
}

func (w *Wallet) saveSnapshotLocked() error {
	addr := AccountAddress(w.account, w.network)
	return saveSnapshot(w.snapshotPath(), w.state, addr)
}

// Refresh pulls and processes new blocks from the node, starting from the
// wallet's current local height. Concurrent Refresh calls are
// serialized by scanLock: a call that finds one already in flight returns
// immediately rather than racing it, mirroring Rescanning
// guard (modules/wallet.Wallet.scanLock).
func (w *Wallet) Refresh(ctx context.Context, stopFlag *StopFlag) error {
	if err := w.tg.Add(); err != nil {
		return err
	}
	defer w.tg.Done()

	if !w.scanLock.TryLock() {
		return nil
	}
	defer w.scanLock.Unlock()

	w.mu.RLock()
	if !w.unlocked {
		w.mu.RUnlock()
		return errLocked
	}
	scanner := w.scanner
	startHeight := w.state.Height() + 1
	w.mu.RUnlock()

	if err := scanner.Refresh(ctx, startHeight, stopFlag); err != nil {
		return err
	}

	w.mu.Lock()
	err := w.saveSnapshotLocked()
	w.mu.Unlock()
	return err
}

// Rescanning reports whether a Refresh call is currently in flight.
func (w *Wallet) Rescanning() bool {
	rescanning := !w.scanLock.TryLock()
	if !rescanning {
		w.scanLock.Unlock()
	}
	return rescanning
}

// Balance returns the wallet's current balance: every unspent transfer,
// spendable yet or not, plus the change of unconfirmed sends.
func (w *Wallet) Balance() (uint64, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if !w.unlocked {
		return 0, errLocked
	}
	return w.state.Balance(), nil
}

// Address returns the wallet's public address.
func (w *Wallet) Address() (account.Address, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if !w.unlocked {
		return account.Address{}, errLocked
	}
	return w.account.Address(w.network), nil
}

// GetSeed returns the recovery seed of the currently unlocked account
//.
func (w *Wallet) GetSeed() ([32]byte, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if !w.unlocked {
		return [32]byte{}, errLocked
	}
	return w.account.GetSeed(), nil
}

// CreateTransactions builds (but does not relay) one or more transactions
// paying destinations.
func (w *Wallet) CreateTransactions(ctx context.Context, destinations []Destination, mixinCount int, unlockTime uint64, fee uint64, extra []byte) ([]PendingTx, error) {
	w.mu.RLock()
	if !w.unlocked {
		w.mu.RUnlock()
		return nil, errLocked
	}
	builder := w.builder
	w.mu.RUnlock()

	return builder.CreateTransactions(ctx, destinations, mixinCount, unlockTime, fee, extra)
}

// Commit serializes pending's transaction and relays it through the node,
// persisting the resulting snapshot on success.
func (w *Wallet) Commit(ctx context.Context, pending PendingTx) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.unlocked {
		return errLocked
	}

	txHex := hexEncodeTx(pending.Tx)
	if err := w.builder.Commit(ctx, pending, txHex); err != nil {
		return err
	}
	w.callbacks.pendingTxCommitted(pending.Tx, changeAmount(pending))
	return w.saveSnapshotLocked()
}

// GetPayments returns every payment recorded under id.
func (w *Wallet) GetPayments(id [32]byte) ([]PaymentDetail, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if !w.unlocked {
		return nil, errLocked
	}
	return w.state.GetPayments(id), nil
}

// hexEncodeTx renders tx as the hex string the node's sendrawtransaction
// RPC expects.
func hexEncodeTx(tx chain.Transaction) string {
	return hex.EncodeToString(chain.Marshal(tx))
}

// tryMutex is a non-blocking mutex: TryLock reports false immediately
// instead of blocking when the lock is already held, reimplemented here
// as a small channel-backed semaphore rather than pulled in as a
// separate dependency. The zero value is not ready to use; New
// allocates it.
type tryMutex chan struct{}

func (t tryMutex) TryLock() bool {
	select {
	case t <- struct{}{}:
		return true
	default:
		return false
	}
}

func (t tryMutex) Unlock() {
	select {
	case <-t:
	default:
	}
}

func errNotFound(err error) bool {
	if kind, ok := walleterrors.Of(err); ok {
		return kind == walleterrors.FileNotFound
	}
	return errors.Is(err, os.ErrNotExist)
}
