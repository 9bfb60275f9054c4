package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/helixgrid/medex/pkg/ledger"
	"github.com/helixgrid/medex/pkg/types"
)

const (
	testOperator = types.AccountID("medex-operator")
	testVault    = types.AccountID("medex-vault")
	owner1       = types.AccountID("alice.owner")
	owner2       = types.AccountID("carol.owner")
	consumer1    = types.AccountID("bob.research")
)

// testFingerprint is a well-formed 64-char hex digest.
var testFingerprint = strings.Repeat("9f", 32)

func testConfig() types.Config {
	return types.Config{
		Backend:  types.BackendSQLite,
		Operator: testOperator,
		Vault:    testVault,
	}
}

func newTestExchange(height uint64) (*Exchange, *ledger.Bank, *types.FixedClock) {
	clock := &types.FixedClock{H: height}
	bank := ledger.NewBank()
	return New(testConfig(), clock, bank, nil), bank, clock
}

// grantAndRegister grants EHR consent for the owner and registers a record
// at the given price.
func grantAndRegister(t *testing.T, e *Exchange, owner types.AccountID, price types.Money) uint64 {
	t.Helper()
	_, err := e.GrantConsent(owner, types.CategoryEHR, []string{"oncology"}, []string{"EU"}, false)
	require.NoError(t, err)

	id, err := e.Register(owner, types.CategoryEHR, testFingerprint, price, "cohort 2024")
	require.NoError(t, err)
	return id
}

// assessAvailable submits the (80, 70, 90, 60) assessment, making the
// record available with final score 75.
func assessAvailable(t *testing.T, e *Exchange, recordID uint64) {
	t.Helper()
	score, err := e.Assess(testOperator, recordID, 80, 70, 90, 60, "")
	require.NoError(t, err)
	require.Equal(t, uint8(75), score)
}

// fundAndOpen deposits the budget for the consumer and opens a single-EHR
// request with it.
func fundAndOpen(t *testing.T, e *Exchange, bank *ledger.Bank, consumer types.AccountID, maxPrice types.Money, maxRecords uint32, budget types.Money) uint64 {
	t.Helper()
	bank.Deposit(consumer, budget)

	id, err := e.OpenRequest(consumer, types.ResearchRequest{
		Title:             "chemo outcomes",
		Purpose:           "oncology",
		Institution:       "inst",
		Categories:        []types.Category{types.CategoryEHR},
		MaxPricePerRecord: maxPrice,
		MinQuality:        types.QualityThreshold,
		MaxRecords:        maxRecords,
	}, budget)
	require.NoError(t, err)
	return id
}
