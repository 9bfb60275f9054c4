// Package sqlite provides the public API for the SQLite medex state store.
// It exposes the factory function while keeping implementation details
// internal.
package sqlite

import (
	"github.com/helixgrid/medex/internal/sqlite"
)

// Backend persists engine state, ledger balances, and the chain height.
type Backend = sqlite.Backend

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	backend := sqlite.NewBackend()
//	err := backend.Attach(types.Config{
//	    Backend:  types.BackendSQLite,
//	    DataDir:  ".medex-db",
//	    Operator: "medex-operator",
//	    Vault:    types.DefaultVault,
//	})
//	defer backend.Detach()
func NewBackend() *Backend {
	return sqlite.NewBackend()
}
