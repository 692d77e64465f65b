package salary

import (
	"github.com/peoplekit/hrms-backend-go/internal/domain/policy"
	"github.com/shopspring/decimal"
)

// ResolveWeekendDeduction selects the first tier whose band contains the
// excess leave count and prices the configured number of Sundays at the
// per-day rate, capped at the Sundays actually in the month. No matching tier
// or probation means no deduction.
func ResolveWeekendDeduction(excessDays float64, tiers []policy.WeekendDeductionTier, perDayRate decimal.Decimal, sundaysInMonth int, probationary bool) (matched *policy.WeekendDeductionTier, deduction decimal.Decimal) {
	if probationary {
		return nil, decimal.Zero
	}
	for i := range tiers {
		t := tiers[i]
		if excessDays >= float64(t.MinExcessDays) && excessDays <= float64(t.MaxExcessDays) {
			sundays := t.SundaysDeducted
			if sundays > sundaysInMonth {
				sundays = sundaysInMonth
			}
			return &t, perDayRate.Mul(decimal.NewFromInt(int64(sundays)))
		}
	}
	return nil, decimal.Zero
}
