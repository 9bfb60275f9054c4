// Package integration exercises the settlement engine together with the
// SQLite backend and the in-memory ledger, cycling full state through
// persistence between operations the way the CLI does.
package integration

import (
	"strings"
	"testing"

	"github.com/helixgrid/medex/internal/sqlite"
	"github.com/helixgrid/medex/pkg/engine"
	"github.com/helixgrid/medex/pkg/ledger"
	"github.com/helixgrid/medex/pkg/types"
)

const (
	operator = types.AccountID("medex-operator")
	vault    = types.AccountID("medex-vault")
	patient  = types.AccountID("alice.patient")
	research = types.AccountID("bob.research")
)

var fingerprint = strings.Repeat("9f", 32)

func marketConfig(dataDir string) types.Config {
	return types.Config{
		Backend:  types.BackendSQLite,
		DataDir:  dataDir,
		Operator: operator,
		Vault:    vault,
	}
}

// market bundles one persistence-backed deployment: every session opens
// the same database, hydrates the engine, and commits on success.
type market struct {
	t   *testing.T
	cfg types.Config
}

// session is one hydrated engine over the persisted state, mirroring a
// single CLI invocation.
type session struct {
	backend *sqlite.Backend
	bank    *ledger.Bank
	clock   *types.FixedClock
	engine  *engine.Exchange
}

func newMarket(t *testing.T) *market {
	t.Helper()
	return &market{t: t, cfg: marketConfig(t.TempDir())}
}

// open attaches the backend, bumps the stored height by advance, and
// hydrates a fresh engine from the persisted snapshot.
func (m *market) open(advance uint64) *session {
	m.t.Helper()

	backend := sqlite.NewBackend()
	if err := backend.Attach(m.cfg); err != nil {
		m.t.Fatalf("Attach: %v", err)
	}

	height, err := backend.Height()
	if err != nil {
		m.t.Fatalf("Height: %v", err)
	}
	clock := &types.FixedClock{H: height + advance}

	state, err := backend.LoadState()
	if err != nil {
		m.t.Fatalf("LoadState: %v", err)
	}
	balances, err := backend.LoadAccounts()
	if err != nil {
		m.t.Fatalf("LoadAccounts: %v", err)
	}

	bank := ledger.NewBank()
	bank.Restore(balances)

	e := engine.New(m.cfg, clock, bank, nil)
	e.Restore(state)

	return &session{backend: backend, bank: bank, clock: clock, engine: e}
}

// commit persists the engine snapshot, balances, and clock height, then
// detaches.
func (m *market) commit(s *session) {
	m.t.Helper()

	if err := s.backend.SaveState(s.engine.Snapshot()); err != nil {
		m.t.Fatalf("SaveState: %v", err)
	}
	if err := s.backend.SaveAccounts(s.bank.Snapshot()); err != nil {
		m.t.Fatalf("SaveAccounts: %v", err)
	}
	if err := s.backend.SetHeight(s.clock.Height()); err != nil {
		m.t.Fatalf("SetHeight: %v", err)
	}
	if err := s.backend.Detach(); err != nil {
		m.t.Fatalf("Detach: %v", err)
	}
}

// discard detaches without persisting, mirroring a failed CLI invocation.
func (m *market) discard(s *session) {
	m.t.Helper()
	if err := s.backend.Detach(); err != nil {
		m.t.Fatalf("Detach: %v", err)
	}
}
