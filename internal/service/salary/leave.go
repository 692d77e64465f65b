package salary

import (
	"time"

	"github.com/peoplekit/hrms-backend-go/internal/domain/leave"
	"github.com/peoplekit/hrms-backend-go/internal/domain/policy"
)

// LeaveUsage is the per-type count of approved leave days falling inside the
// month.
type LeaveUsage struct {
	Sick       float64
	Earned     float64
	Special    float64
	Additional float64
}

// SumLeaveUsage clips each approved leave span to [monthStart, monthEnd] and
// accumulates inclusive day counts per type.
func SumLeaveUsage(records []leave.LeaveRecord, monthStart, monthEnd time.Time) LeaveUsage {
	var usage LeaveUsage
	for _, rec := range records {
		if rec.Status != leave.StatusApproved {
			continue
		}
		days := clippedDays(rec.StartDate, rec.EndDate, monthStart, monthEnd)
		if days <= 0 {
			continue
		}
		switch rec.Type {
		case leave.TypeSick:
			usage.Sick += days
		case leave.TypeEarned:
			usage.Earned += days
		case leave.TypeSpecial:
			usage.Special += days
		case leave.TypeAdditional:
			usage.Additional += days
		}
	}
	return usage
}

func clippedDays(start, end, lo, hi time.Time) float64 {
	if start.Before(lo) {
		start = lo
	}
	if end.After(hi) {
		end = hi
	}
	if end.Before(start) {
		return 0
	}
	return float64(int(end.Sub(start).Hours()/24)) + 1
}

// LeaveAllowances are the free monthly allowances the usage is credited
// against. Earned leave allowance stays at zero until a balance ledger
// exists, so all earned usage currently counts as excess.
type LeaveAllowances struct {
	Sick   float64
	Earned float64
}

func AvailableAllowances(cfg policy.EffectiveConfig) LeaveAllowances {
	if cfg.IsProbationary {
		return LeaveAllowances{}
	}
	return LeaveAllowances{
		Sick:   cfg.SickLeavePerMonth,
		Earned: 0,
	}
}

// ExcessLeave is the usage beyond the free allowances; it feeds the weekend
// deduction tiers.
func ExcessLeave(usage LeaveUsage, allow LeaveAllowances) float64 {
	excess := 0.0
	if over := usage.Sick - allow.Sick; over > 0 {
		excess += over
	}
	if over := usage.Earned - allow.Earned; over > 0 {
		excess += over
	}
	return excess
}
