// Package sqlite persists medex engine state, ledger balances, and the
// chain height in a SQLite database so they survive across CLI
// invocations. Each save writes the whole snapshot in one transaction.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/helixgrid/medex/pkg/types"
)

// Backend holds an open database handle. It is not attached until Attach
// succeeds; all operations on a detached backend return ErrDetached.
type Backend struct {
	mu       sync.Mutex
	attached bool
	db       *sql.DB
}

// Backend lifecycle errors.
var (
	ErrDetached        = fmt.Errorf("backend is detached")
	ErrAlreadyAttached = fmt.Errorf("backend is already attached")
)

// dbFileName is the database file created inside the data directory.
const dbFileName = "medex.db"

// NewBackend creates a detached backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach opens (creating if needed) the database under cfg.DataDir and
// ensures the schema exists. Returns ErrAlreadyAttached on a second call.
func (b *Backend) Attach(cfg types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return ErrAlreadyAttached
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return err
	}
	for _, ddl := range allSchemas {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	b.db = db
	b.attached = true
	return nil
}

// Detach closes the database. Idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	return nil
}

// Height returns the stored chain height, 0 when no platform row exists
// yet.
func (b *Backend) Height() (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return 0, ErrDetached
	}

	var height uint64
	err := b.db.QueryRow("SELECT height FROM platform WHERE id = 1").Scan(&height)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading height: %w", err)
	}
	return height, nil
}

// SetHeight stores the chain height. The platform row is created on first
// use.
func (b *Backend) SetHeight(height uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return ErrDetached
	}

	_, err := b.db.Exec(`INSERT INTO platform (id, next_record_id, next_request_id, total_distributed, platform_revenue, paused, height)
		VALUES (1, 1, 1, 0, 0, 0, ?)
		ON CONFLICT (id) DO UPDATE SET height = excluded.height`, height)
	if err != nil {
		return fmt.Errorf("storing height: %w", err)
	}
	return nil
}

// LoadAccounts reads all ledger balances.
func (b *Backend) LoadAccounts() (map[types.AccountID]types.Money, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, ErrDetached
	}

	rows, err := b.db.Query("SELECT account, balance FROM accounts")
	if err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}
	defer rows.Close()

	balances := make(map[types.AccountID]types.Money)
	for rows.Next() {
		var account string
		var balance int64
		if err := rows.Scan(&account, &balance); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}
		balances[types.AccountID(account)] = types.Money(balance)
	}
	return balances, rows.Err()
}

// SaveAccounts replaces all ledger balances in one transaction.
func (b *Backend) SaveAccounts(balances map[types.AccountID]types.Money) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return ErrDetached
	}

	tx, err := b.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM accounts"); err != nil {
		return fmt.Errorf("clearing accounts: %w", err)
	}
	for account, balance := range balances {
		if _, err := tx.Exec("INSERT INTO accounts (account, balance) VALUES (?, ?)",
			string(account), int64(balance)); err != nil {
			return fmt.Errorf("saving account %s: %w", account, err)
		}
	}
	return tx.Commit()
}
