// Shared helpers for medex CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/helixgrid/medex/internal/sqlite"
	"github.com/helixgrid/medex/pkg/engine"
	"github.com/helixgrid/medex/pkg/ledger"
	"github.com/helixgrid/medex/pkg/types"
)

// app bundles the attached backend with a hydrated engine and bank. Every
// command opens an app, runs its operation, and commits on success;
// nothing is persisted when the operation fails.
type app struct {
	backend *sqlite.Backend
	bank    *ledger.Bank
	clock   *types.FixedClock
	eng     *engine.Exchange
}

// openApp attaches the backend and hydrates engine state, balances, and
// the chain height. Mutating commands pass advance=1 so each transition
// lands on a fresh height; queries pass 0. The caller must defer
// a.close().
func openApp(advance uint64) (*app, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := appConfig
	cfg.DataDir = dataDir

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	height, err := backend.Height()
	if err != nil {
		backend.Detach()
		return nil, err
	}
	clock := &types.FixedClock{H: height + advance}

	state, err := backend.LoadState()
	if err != nil {
		backend.Detach()
		return nil, err
	}
	balances, err := backend.LoadAccounts()
	if err != nil {
		backend.Detach()
		return nil, err
	}

	bank := ledger.NewBank()
	bank.Restore(balances)

	eng := engine.New(cfg, clock, bank, nil)
	eng.Restore(state)

	return &app{backend: backend, bank: bank, clock: clock, eng: eng}, nil
}

// commit persists engine state, balances, and the advanced height.
func (a *app) commit() error {
	if err := a.backend.SaveState(a.eng.Snapshot()); err != nil {
		return err
	}
	if err := a.backend.SaveAccounts(a.bank.Snapshot()); err != nil {
		return err
	}
	return a.backend.SetHeight(a.clock.H)
}

// close detaches the backend, ignoring detach errors on the way out.
func (a *app) close() {
	_ = a.backend.Detach()
}

// caller returns the --as account, failing when the command requires one.
func caller() (types.AccountID, error) {
	if flagCaller == "" {
		return "", fmt.Errorf("missing --as: this command needs a caller account")
	}
	return types.AccountID(flagCaller), nil
}

// parseID parses a decimal entity id argument.
func parseID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", arg, err)
	}
	return id, nil
}

// parseMoney parses an amount in smallest currency units.
func parseMoney(arg string) (types.Money, error) {
	n, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", arg, err)
	}
	return types.Money(n), nil
}

// parseScore parses a 0-100 quality score argument.
func parseScore(arg string) (uint8, error) {
	n, err := strconv.ParseUint(arg, 10, 8)
	if err != nil || n > uint64(types.MaxQualityScore) {
		return 0, fmt.Errorf("invalid score %q: must be 0-100", arg)
	}
	return uint8(n), nil
}

// parseCategory validates a category argument.
func parseCategory(arg string) (types.Category, error) {
	c := types.Category(arg)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", types.ErrInvalidCategory, arg)
	}
	return c, nil
}

// printResult writes v as indented JSON in --json mode, or using the
// fallback plain formatter otherwise.
func printResult(v any, plain func()) error {
	if !flagJSON {
		plain()
		return nil
	}
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(output))
	return nil
}
