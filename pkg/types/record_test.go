package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataRecordValidate(t *testing.T) {
	valid := DataRecord{
		Owner:       "alice",
		Category:    CategoryEHR,
		Fingerprint: strings.Repeat("9f", 32),
		Price:       MinRecordPrice,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(r *DataRecord)
		wantErr error
	}{
		{"unknown category", func(r *DataRecord) { r.Category = "dental" }, ErrInvalidCategory},
		{"price below floor", func(r *DataRecord) { r.Price = MinRecordPrice - 1 }, ErrInvalidAmount},
		{"fingerprint too short", func(r *DataRecord) { r.Fingerprint = "abc" }, ErrInvalidData},
		{"fingerprint too long", func(r *DataRecord) { r.Fingerprint += "00" }, ErrInvalidData},
		{"oversized metadata", func(r *DataRecord) { r.Metadata = strings.Repeat("x", MaxLongTextLen+1) }, ErrInvalidData},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := valid
			tc.mutate(&r)
			assert.ErrorIs(t, r.Validate(), tc.wantErr)
		})
	}
}

func TestCategoryBasePrices(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid())
		assert.NotZero(t, c.BasePrice(), "category %s", c)
	}
	assert.False(t, Category("dental").Valid())
	assert.Zero(t, Category("dental").BasePrice())
}
