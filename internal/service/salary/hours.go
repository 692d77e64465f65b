package salary

import (
	"time"

	"github.com/peoplekit/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplekit/hrms-backend-go/internal/domain/policy"
	"github.com/peoplekit/hrms-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
)

// BiWeeklyBreakdown is the result of the half-month hour accounting. The rule
// is period-local: a surplus in the first half never offsets a shortfall in
// the second.
type BiWeeklyBreakdown struct {
	FirstHalf      salary.BiWeeklyPeriodSummary
	SecondHalf     salary.BiWeeklyPeriodSummary
	TotalDeduction decimal.Decimal
}

// ComputeBiWeeklyHours splits the month into the fixed periods 1-15 and
// 16-end, counts working days and worked hours per period and prices the
// shortfall beyond the grace buffer. Probation suppresses the deduction but
// the hour accounting itself is still reported.
func ComputeBiWeeklyHours(year int, month time.Month, nonWorking map[string]struct{}, records []attendance.Attendance, cfg policy.EffectiveConfig) BiWeeklyBreakdown {
	eom := daysIn(year, month)
	first := accountPeriod(year, month, 1, 15, nonWorking, records, cfg)
	second := accountPeriod(year, month, 16, eom, nonWorking, records, cfg)

	return BiWeeklyBreakdown{
		FirstHalf:      first,
		SecondHalf:     second,
		TotalDeduction: first.Deduction.Add(second.Deduction),
	}
}

func accountPeriod(year int, month time.Month, startDay, endDay int, nonWorking map[string]struct{}, records []attendance.Attendance, cfg policy.EffectiveConfig) salary.BiWeeklyPeriodSummary {
	workingDays := 0
	for day := startDay; day <= endDay; day++ {
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if _, off := nonWorking[d.Format(dateKeyLayout)]; !off {
			workingDays++
		}
	}

	actual := 0.0
	for _, rec := range records {
		if !rec.Status.CountsAsWorked() {
			continue
		}
		if rec.Date.Day() < startDay || rec.Date.Day() > endDay {
			continue
		}
		actual += rec.HoursWorked
	}

	expected := float64(workingDays) * cfg.DailyWorkHours
	shortfall := expected - actual
	if shortfall < 0 {
		shortfall = 0
	}

	deduction := decimal.Zero
	if !cfg.IsProbationary && shortfall > cfg.GracePeriodHours {
		billable := shortfall - cfg.GracePeriodHours
		deduction = decimal.NewFromFloat(billable).Mul(cfg.HourlyDeductionRate)
	}

	return salary.BiWeeklyPeriodSummary{
		StartDay:      startDay,
		EndDay:        endDay,
		WorkingDays:   workingDays,
		ExpectedHours: expected,
		ActualHours:   actual,
		ShortfallHrs:  shortfall,
		Deduction:     deduction,
	}
}
