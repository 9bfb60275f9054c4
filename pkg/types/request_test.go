package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() ResearchRequest {
	return ResearchRequest{
		ID:                1,
		Consumer:          "bob.research",
		Title:             "chemo outcomes",
		Institution:       "inst",
		Categories:        []Category{CategoryEHR},
		MaxPricePerRecord: 10_000_000,
		MinQuality:        60,
		MaxRecords:        2,
		CreatedAt:         100,
		ExpiresAt:         200,
		Status:            RequestStatusActive,
		BudgetAllocated:   20_000_000,
	}
}

func TestResearchRequestValidate(t *testing.T) {
	valid := validRequest()
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(r *ResearchRequest)
		wantErr error
	}{
		{"empty title", func(r *ResearchRequest) { r.Title = "" }, ErrInvalidData},
		{"no categories", func(r *ResearchRequest) { r.Categories = nil }, ErrInvalidData},
		{"unknown category", func(r *ResearchRequest) { r.Categories = []Category{"dental"} }, ErrInvalidCategory},
		{"price below floor", func(r *ResearchRequest) { r.MaxPricePerRecord = MinRecordPrice - 1 }, ErrInvalidAmount},
		{"quality over 100", func(r *ResearchRequest) { r.MinQuality = 101 }, ErrInvalidData},
		{"zero capacity", func(r *ResearchRequest) { r.MaxRecords = 0 }, ErrInvalidData},
		{"insolvent budget", func(r *ResearchRequest) { r.BudgetAllocated = 19_999_999 }, ErrInsufficientBalance},
		{
			// maxRecords * maxPrice wraps uint64 here; the solvency
			// check must still reject the budget.
			name: "solvency product wraps uint64",
			mutate: func(r *ResearchRequest) {
				r.MaxPricePerRecord = 1 << 63
				r.MaxRecords = 2
				r.BudgetAllocated = 1_000_000
			},
			wantErr: ErrInsufficientBalance,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := validRequest()
			tc.mutate(&r)
			assert.ErrorIs(t, r.Validate(), tc.wantErr)
		})
	}
}

func TestResearchRequestActive(t *testing.T) {
	r := validRequest()
	assert.True(t, r.Active(199))
	assert.False(t, r.Active(200), "expiry height is exclusive")

	r.Status = RequestStatusCancelled
	assert.False(t, r.Active(150))
}

func TestResearchRequestTransitions(t *testing.T) {
	r := validRequest()
	require.NoError(t, r.Complete())
	assert.Equal(t, RequestStatusCompleted, r.Status)
	assert.ErrorIs(t, r.Complete(), ErrInvalidState)
	assert.ErrorIs(t, r.Cancel(), ErrInvalidState)

	r = validRequest()
	require.NoError(t, r.Cancel())
	assert.Equal(t, RequestStatusCancelled, r.Status)
	assert.ErrorIs(t, r.Cancel(), ErrInvalidState)
	assert.ErrorIs(t, r.Complete(), ErrInvalidState)
}

func TestResearchRequestRemaining(t *testing.T) {
	r := validRequest()
	assert.Equal(t, Money(20_000_000), r.Remaining())

	r.BudgetSpent = 10_000_000
	assert.Equal(t, Money(10_000_000), r.Remaining())
}
