package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixgrid/medex/pkg/types"
)

func TestBankTransfer(t *testing.T) {
	bank := NewBank()
	bank.Deposit("alice", 100)

	require.NoError(t, bank.Transfer("alice", "bob", 60))
	assert.Equal(t, types.Money(40), bank.Balance("alice"))
	assert.Equal(t, types.Money(60), bank.Balance("bob"))
}

func TestBankTransferRejections(t *testing.T) {
	bank := NewBank()
	bank.Deposit("alice", 100)

	tests := []struct {
		name    string
		from    types.AccountID
		to      types.AccountID
		amount  types.Money
		wantErr error
	}{
		{"insufficient funds", "alice", "bob", 101, ErrInsufficientFunds},
		{"unknown source", "nobody", "bob", 1, ErrUnknownAccount},
		{"empty source", "", "bob", 1, ErrInvalidTransfer},
		{"empty destination", "alice", "", 1, ErrInvalidTransfer},
		{"self transfer", "alice", "alice", 1, ErrInvalidTransfer},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, bank.Transfer(tc.from, tc.to, tc.amount), tc.wantErr)
		})
	}

	// Nothing moved.
	assert.Equal(t, types.Money(100), bank.Balance("alice"))
	assert.Zero(t, bank.Balance("bob"))
}

func TestBankSnapshotRestore(t *testing.T) {
	bank := NewBank()
	bank.Deposit("alice", 100)
	bank.Deposit("bob", 50)

	snap := bank.Snapshot()
	snap["alice"] = 1 // detached copy

	assert.Equal(t, types.Money(100), bank.Balance("alice"))

	fresh := NewBank()
	fresh.Restore(bank.Snapshot())
	assert.Equal(t, types.Money(100), fresh.Balance("alice"))
	assert.Equal(t, types.Money(50), fresh.Balance("bob"))
	assert.Equal(t, []types.AccountID{"alice", "bob"}, fresh.Accounts())
}
