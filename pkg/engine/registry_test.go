package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixgrid/medex/pkg/types"
)

func TestRegister(t *testing.T) {
	e, _, _ := newTestExchange(100)

	expires, err := e.GrantConsent(owner1, types.CategoryEHR, nil, nil, false)
	require.NoError(t, err)

	id, err := e.Register(owner1, types.CategoryEHR, testFingerprint, 10_000_000, "cohort 2024")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)

	record, ok := e.Record(id)
	require.True(t, ok)
	assert.Equal(t, owner1, record.Owner)
	assert.Equal(t, types.CategoryEHR, record.Category)
	assert.Equal(t, types.Money(10_000_000), record.Price)
	assert.Equal(t, uint64(100), record.CreatedAt)
	assert.Equal(t, expires, record.ConsentExpires)
	assert.False(t, record.Available, "unassessed records are unavailable")
	assert.Zero(t, record.QualityScore)

	profile, ok := e.OwnerProfile(owner1)
	require.True(t, ok)
	assert.Equal(t, uint32(1), profile.RecordsListed)
}

func TestRegisterAllocatesSequentialIDs(t *testing.T) {
	e, _, _ := newTestExchange(100)
	_, err := e.GrantConsent(owner1, types.CategoryEHR, nil, nil, false)
	require.NoError(t, err)

	for want := uint64(1); want <= 3; want++ {
		id, err := e.Register(owner1, types.CategoryEHR, testFingerprint, types.MinRecordPrice, "")
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}
}

func TestRegisterRejections(t *testing.T) {
	e, _, clock := newTestExchange(100)
	expires, err := e.GrantConsent(owner1, types.CategoryEHR, nil, nil, false)
	require.NoError(t, err)

	tests := []struct {
		name        string
		caller      types.AccountID
		category    types.Category
		fingerprint string
		price       types.Money
		setup       func()
		wantErr     error
	}{
		{
			name:     "unknown category",
			caller:   owner1,
			category: types.Category("dental"),
			wantErr:  types.ErrInvalidCategory,
		},
		{
			name:    "price below floor",
			caller:  owner1,
			price:   types.MinRecordPrice - 1,
			wantErr: types.ErrInvalidAmount,
		},
		{
			name:        "short fingerprint",
			caller:      owner1,
			fingerprint: "abc123",
			wantErr:     types.ErrInvalidData,
		},
		{
			name:    "no consent for caller",
			caller:  owner2,
			wantErr: types.ErrConsentRequired,
		},
		{
			name:    "consent expired",
			caller:  owner1,
			setup:   func() { clock.H = expires },
			wantErr: types.ErrConsentRequired,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			category := tc.category
			if category == "" {
				category = types.CategoryEHR
			}
			fingerprint := tc.fingerprint
			if fingerprint == "" {
				fingerprint = testFingerprint
			}
			price := tc.price
			if price == 0 {
				price = types.MinRecordPrice
			}
			if tc.setup != nil {
				tc.setup()
			}

			_, err := e.Register(tc.caller, category, fingerprint, price, "")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	// No rejected attempt allocated an id.
	assert.Zero(t, e.Stats().Records)
}

func TestAssess(t *testing.T) {
	e, _, _ := newTestExchange(100)
	id := grantAndRegister(t, e, owner1, 10_000_000)

	score, err := e.Assess(testOperator, id, 80, 70, 90, 60, "clean extract")
	require.NoError(t, err)
	assert.Equal(t, uint8(75), score, "(80+70+90+60)/4 truncates to 75")

	record, ok := e.Record(id)
	require.True(t, ok)
	assert.Equal(t, uint8(75), record.QualityScore)
	assert.True(t, record.Available)

	assessment, ok := e.Assessment(id)
	require.True(t, ok)
	assert.Equal(t, testOperator, assessment.Assessor)
	assert.Equal(t, uint8(75), assessment.FinalScore)
	assert.Equal(t, "clean extract", assessment.Notes)

	profile, ok := e.OwnerProfile(owner1)
	require.True(t, ok)
	assert.Equal(t, uint8(75), profile.QualityRating)
	assert.Equal(t, []types.Category{types.CategoryEHR}, profile.AvailableCategories)
}

func TestAssessBelowThreshold(t *testing.T) {
	e, _, _ := newTestExchange(100)
	id := grantAndRegister(t, e, owner1, 10_000_000)

	score, err := e.Assess(testOperator, id, 50, 50, 50, 50, "")
	require.NoError(t, err)
	assert.Equal(t, uint8(50), score)

	record, _ := e.Record(id)
	assert.False(t, record.Available)
}

func TestReassessmentReplacesPrior(t *testing.T) {
	e, _, _ := newTestExchange(100)
	id := grantAndRegister(t, e, owner1, 10_000_000)
	assessAvailable(t, e, id)

	// A worse reassessment flips availability back off.
	score, err := e.Assess(testOperator, id, 40, 40, 40, 40, "stale source")
	require.NoError(t, err)
	assert.Equal(t, uint8(40), score)

	record, _ := e.Record(id)
	assert.False(t, record.Available)
	assert.Equal(t, uint8(40), record.QualityScore)

	assessment, _ := e.Assessment(id)
	assert.Equal(t, "stale source", assessment.Notes)
}

func TestAssessRejections(t *testing.T) {
	e, _, _ := newTestExchange(100)
	id := grantAndRegister(t, e, owner1, 10_000_000)

	_, err := e.Assess(owner1, id, 80, 80, 80, 80, "")
	assert.ErrorIs(t, err, types.ErrUnauthorized, "only the assessor capability may score")

	_, err = e.Assess(testOperator, 404, 80, 80, 80, 80, "")
	assert.ErrorIs(t, err, types.ErrNotFound)

	record, _ := e.Record(id)
	assert.False(t, record.Available, "failed assessments leave the record untouched")
}
