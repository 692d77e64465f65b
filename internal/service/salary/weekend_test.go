package salary

import (
	"testing"

	"github.com/peoplekit/hrms-backend-go/internal/domain/policy"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTiers() []policy.WeekendDeductionTier {
	return []policy.WeekendDeductionTier{
		{MinExcessDays: 0, MaxExcessDays: 2, SundaysDeducted: 0},
		{MinExcessDays: 3, MaxExcessDays: 5, SundaysDeducted: 1},
		{MinExcessDays: 6, MaxExcessDays: 8, SundaysDeducted: 2},
		{MinExcessDays: 9, MaxExcessDays: 9999, SundaysDeducted: 4},
	}
}

func TestResolveWeekendDeduction_TierSelection(t *testing.T) {
	perDay := decimal.NewFromInt(1000)

	tests := []struct {
		excess    float64
		sundays   int
		deduction int64
	}{
		{0, 4, 0},
		{2, 4, 0},
		{3, 4, 1000},
		{5, 4, 1000},
		{6, 4, 2000},
		{9, 4, 4000},
		{50, 4, 4000},
	}

	for _, tt := range tests {
		_, d := ResolveWeekendDeduction(tt.excess, defaultTiers(), perDay, tt.sundays, false)
		assert.True(t, decimal.NewFromInt(tt.deduction).Equal(d),
			"excess %v: want %d, got %s", tt.excess, tt.deduction, d)
	}
}

func TestResolveWeekendDeduction_CapsAtSundaysInMonth(t *testing.T) {
	perDay := decimal.NewFromInt(1000)

	matched, d := ResolveWeekendDeduction(12, defaultTiers(), perDay, 3, false)

	require.NotNil(t, matched)
	assert.Equal(t, 4, matched.SundaysDeducted)
	// Only 3 Sundays exist in the month.
	assert.True(t, decimal.NewFromInt(3000).Equal(d))
}

func TestResolveWeekendDeduction_NoMatchingTier(t *testing.T) {
	tiers := []policy.WeekendDeductionTier{
		{MinExcessDays: 3, MaxExcessDays: 5, SundaysDeducted: 1},
	}

	matched, d := ResolveWeekendDeduction(1, tiers, decimal.NewFromInt(1000), 4, false)

	assert.Nil(t, matched)
	assert.True(t, d.IsZero())
}

func TestResolveWeekendDeduction_Probation(t *testing.T) {
	matched, d := ResolveWeekendDeduction(10, defaultTiers(), decimal.NewFromInt(1000), 4, true)

	assert.Nil(t, matched)
	assert.True(t, d.IsZero())
}

func TestResolveWeekendDeduction_FractionalExcessFallsInBand(t *testing.T) {
	// 2.5 excess days still sits inside the 0-2 band's neighbor gap; the
	// bands are integer-bounded so 2.5 matches no tier.
	matched, d := ResolveWeekendDeduction(2.5, defaultTiers(), decimal.NewFromInt(1000), 4, false)

	assert.Nil(t, matched)
	assert.True(t, d.IsZero())
}
