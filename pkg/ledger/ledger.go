// Package ledger defines the value-transfer collaborator consumed by the
// settlement engine, plus an in-memory implementation used by the CLI and
// tests.
package ledger

import (
	"errors"
	"sort"
	"sync"

	"github.com/helixgrid/medex/pkg/types"
)

// Ledger is the atomic value-transfer primitive. A transfer either fully
// succeeds or fully fails; the engine treats any error as total operation
// failure and retries nothing.
type Ledger interface {
	Transfer(from, to types.AccountID, amount types.Money) error
}

// Transfer errors returned by the in-memory Bank.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownAccount    = errors.New("unknown account")
	ErrInvalidTransfer   = errors.New("invalid transfer")
)

// Bank is an in-memory Ledger holding account balances. It is safe for
// concurrent use, though the engine serializes all calls anyway.
type Bank struct {
	mu       sync.Mutex
	balances map[types.AccountID]types.Money
}

// NewBank creates an empty Bank.
func NewBank() *Bank {
	return &Bank{balances: make(map[types.AccountID]types.Money)}
}

// Deposit credits an account, creating it if needed.
func (b *Bank) Deposit(account types.AccountID, amount types.Money) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[account] += amount
}

// Balance returns the current balance of an account. Unknown accounts have
// a zero balance.
func (b *Bank) Balance(account types.AccountID) types.Money {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances[account]
}

// Transfer moves amount from one account to another, all-or-nothing.
// Returns ErrUnknownAccount if the source has never been funded and
// ErrInsufficientFunds if its balance is too low.
func (b *Bank) Transfer(from, to types.AccountID, amount types.Money) error {
	if from == "" || to == "" || from == to {
		return ErrInvalidTransfer
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	balance, ok := b.balances[from]
	if !ok {
		return ErrUnknownAccount
	}
	if balance < amount {
		return ErrInsufficientFunds
	}
	b.balances[from] -= amount
	b.balances[to] += amount
	return nil
}

// Snapshot returns a copy of all balances, for persistence.
func (b *Bank) Snapshot() map[types.AccountID]types.Money {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make(map[types.AccountID]types.Money, len(b.balances))
	for k, v := range b.balances {
		out[k] = v
	}
	return out
}

// Restore replaces all balances with the given snapshot.
func (b *Bank) Restore(balances map[types.AccountID]types.Money) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.balances = make(map[types.AccountID]types.Money, len(balances))
	for k, v := range balances {
		b.balances[k] = v
	}
}

// Accounts returns all account ids with a nonzero balance, sorted.
func (b *Bank) Accounts() []types.AccountID {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]types.AccountID, 0, len(b.balances))
	for k, v := range b.balances {
		if v > 0 {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
