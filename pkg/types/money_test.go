package types

import (
	"math"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoneyFee(t *testing.T) {
	tests := []struct {
		name   string
		amount Money
		bips   uint64
		want   Money
	}{
		{"exact split", 10_000_000, 2000, 2_000_000},
		{"truncates down", 1_000_003, 2000, 200_000},
		{"zero amount", 0, 2000, 0},
		{"zero bips", 10_000_000, 0, 0},
		{"full amount at 10000 bips", 7, 10000, 7},
		{"small amount rounds to zero", 4, 2000, 0},
		{"large price stays exact", 10_000_000_000_000_000, 2000, 2_000_000_000_000_000},
		{"max uint64 stays exact", math.MaxUint64, 2000, 3_689_348_814_741_910_323},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.amount.Fee(tc.bips))
		})
	}
}

// TestMoneyFeeMatchesWideMultiply checks the fee against a 128-bit
// intermediate computed independently with math/bits.
func TestMoneyFeeMatchesWideMultiply(t *testing.T) {
	prices := []Money{
		MinRecordPrice,
		1_000_003,
		1 << 40,
		10_000_000_000_000_000,
		math.MaxUint64,
	}
	for _, price := range prices {
		hi, lo := bits.Mul64(uint64(price), FeeBips)
		want, _ := bits.Div64(hi, lo, 10000)
		assert.Equal(t, Money(want), price.Fee(FeeBips), "price %d", price)
	}
}

func TestMoneyMulDiv(t *testing.T) {
	assert.Equal(t, Money(15), Money(5).Mul(3))
	assert.Equal(t, Money(3), Money(10).Div(3), "division truncates")
}
