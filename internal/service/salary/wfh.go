package salary

import (
	"github.com/peoplekit/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplekit/hrms-backend-go/internal/domain/policy"
	"github.com/shopspring/decimal"
)

// WFHBreakdown holds the work-from-home salary deductions and the
// missed-punch discipline penalty.
type WFHBreakdown struct {
	EmergencyDays         int
	CasualDays            int
	EmergencyDeduction    decimal.Decimal
	CasualDeduction       decimal.Decimal
	MissedPunchCount      int
	MissedPunchPenalty    decimal.Decimal
}

// ComputeWFHAndDiscipline classifies WFH days as emergency or casual from the
// record remarks and prices both against the per-day salary, then counts
// missed punches and applies the flat penalty.
func ComputeWFHAndDiscipline(records []attendance.Attendance, cfg policy.EffectiveConfig, perDayRate decimal.Decimal) WFHBreakdown {
	var b WFHBreakdown

	for _, rec := range records {
		if rec.Status == attendance.StatusWFH {
			if rec.IsEmergencyWFH() {
				b.EmergencyDays++
			} else {
				b.CasualDays++
			}
		}
		if rec.HasMissedPunch() {
			b.MissedPunchCount++
		}
	}

	b.EmergencyDeduction = perDayRate.
		Mul(decimal.NewFromInt(int64(b.EmergencyDays))).
		Mul(decimal.NewFromFloat(cfg.EmergencyWFHDeductionPct))
	b.CasualDeduction = perDayRate.
		Mul(decimal.NewFromInt(int64(b.CasualDays))).
		Mul(decimal.NewFromFloat(cfg.CasualWFHDeductionPct))
	b.MissedPunchPenalty = cfg.MissedPunchPenalty.Mul(decimal.NewFromInt(int64(b.MissedPunchCount)))

	return b
}
