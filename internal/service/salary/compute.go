package salary

import (
	"time"

	"github.com/peoplekit/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplekit/hrms-backend-go/internal/domain/employee"
	"github.com/peoplekit/hrms-backend-go/internal/domain/holiday"
	"github.com/peoplekit/hrms-backend-go/internal/domain/leave"
	"github.com/peoplekit/hrms-backend-go/internal/domain/policy"
	"github.com/peoplekit/hrms-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
)

// Inputs bundles the already-fetched records one salary computation needs.
// Compute is a pure function of these inputs: replaying it with the stored
// configuration snapshot reproduces the financial fields exactly.
type Inputs struct {
	Employee               employee.Employee
	Config                 policy.EffectiveConfig
	Attendance             []attendance.Attendance
	Leaves                 []leave.LeaveRecord
	PublicHolidays         []holiday.Holiday
	RestrictedHolidayDates []time.Time
}

// Compute runs the full salary pipeline for one employee and one calendar
// month. It performs no I/O and cannot fail on well-formed input; negative
// intermediate values are clamped to zero.
func Compute(in Inputs, month, year int) salary.SalaryRecord {
	m := time.Month(month)
	cfg := in.Config

	monthStart := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(year, m, daysIn(year, m), 0, 0, 0, 0, time.UTC)
	numDays := daysIn(year, m)

	// Calendar classification
	sundays := SundaysInMonth(year, m)
	offSaturdays := SaturdaysOffByPattern(year, m, cfg.SaturdayOffPattern)
	holidayDates := make([]time.Time, 0, len(in.PublicHolidays))
	for _, h := range in.PublicHolidays {
		holidayDates = append(holidayDates, h.Date)
	}
	nonWorking := NonWorkingDates(year, m, cfg.SaturdayOffPattern, holidayDates, in.RestrictedHolidayDates)
	workingDays := numDays - len(nonWorking)

	// Presence and hour totals
	daysPresent, daysAbsent := 0, 0
	hoursWorked, overtime := 0.0, 0.0
	for _, rec := range in.Attendance {
		switch {
		case rec.Status.CountsAsWorked():
			daysPresent++
			hoursWorked += rec.HoursWorked
			overtime += rec.OvertimeHours
		case rec.Status == attendance.StatusAbsent, rec.Status == attendance.StatusAbsentNoPunch:
			daysAbsent++
		}
	}

	// Bi-weekly shortfall
	biweekly := ComputeBiWeeklyHours(year, m, nonWorking, in.Attendance, cfg)

	// Leave accounting
	usage := SumLeaveUsage(in.Leaves, monthStart, monthEnd)
	allow := AvailableAllowances(cfg)
	excess := ExcessLeave(usage, allow)

	// Pay basis. Gross multiplies the unrounded quotient so salaries that
	// do not divide evenly never drift by a unit; the 2dp figure is kept
	// only for the stored per-day rate.
	perDayExact := decimal.Zero
	if numDays > 0 {
		perDayExact = cfg.SalaryOffered.Div(decimal.NewFromInt(int64(numDays)))
	}
	perDay := perDayExact.Round(2)

	paidDays := PayableDays(daysPresent, usage, allow,
		countInMonth(holidayDates, year, m), countInMonth(in.RestrictedHolidayDates, year, m),
		len(offSaturdays), len(sundays), cfg)
	gross := perDayExact.Mul(decimal.NewFromInt(int64(paidDays))).Round(0)

	// Excess-leave weekend deduction
	_, weekendDeduction := ResolveWeekendDeduction(excess, cfg.WeekendDeductionTiers, perDay, len(sundays), cfg.IsProbationary)

	// WFH and discipline
	wfh := ComputeWFHAndDiscipline(in.Attendance, cfg, perDay)

	// Statutory withholdings, suppressed during probation
	pf, esi, profTax := decimal.Zero, decimal.Zero, decimal.Zero
	if !cfg.IsProbationary {
		if cfg.PFEnabled {
			// PF is taken on an assumed basic of 50% of gross.
			basic := gross.Mul(decimal.NewFromFloat(0.5))
			pf = basic.Mul(decimal.NewFromFloat(cfg.PFPercent / 100)).Round(2)
		}
		if cfg.ESIEnabled && gross.LessThanOrEqual(cfg.ESIWageThreshold) {
			esi = gross.Mul(decimal.NewFromFloat(cfg.ESIPercent / 100)).Round(2)
		}
		if cfg.ProfessionalTaxEnabled {
			profTax = cfg.ProfessionalTaxAmount
		}
	}

	totalDeductions := biweekly.TotalDeduction.
		Add(weekendDeduction).
		Add(wfh.EmergencyDeduction).
		Add(wfh.CasualDeduction).
		Add(wfh.MissedPunchPenalty).
		Add(pf).
		Add(esi).
		Add(profTax)

	additions := decimal.Zero
	net := gross.Sub(totalDeductions).Add(additions)

	return salary.SalaryRecord{
		EmployeeID:   in.Employee.ID,
		EmployeeName: in.Employee.FullName,
		Month:        month,
		Year:         year,

		DaysInMonth:     numDays,
		WorkingDays:     workingDays,
		DaysPresent:     daysPresent,
		DaysAbsent:      daysAbsent,
		DaysToBePaidFor: paidDays,

		SickLeaveUsed:       usage.Sick,
		EarnedLeaveUsed:     usage.Earned,
		SpecialLeaveUsed:    usage.Special,
		AdditionalLeaveUsed: usage.Additional,
		ExcessLeaveDays:     excess,

		SundaysInMonth:     len(sundays),
		OffSaturdays:       len(offSaturdays),
		PublicHolidays:     countInMonth(holidayDates, year, m),
		RestrictedHolidays: countInMonth(in.RestrictedHolidayDates, year, m),

		HoursWorked:   hoursWorked,
		OvertimeHours: overtime,
		FirstHalf:     biweekly.FirstHalf,
		SecondHalf:    biweekly.SecondHalf,

		PerDaySalary: perDay,
		GrossSalary:  gross,

		HourlyShortfallDeduction: biweekly.TotalDeduction,
		WeekendDeduction:         weekendDeduction,
		EmergencyWFHDays:         wfh.EmergencyDays,
		CasualWFHDays:            wfh.CasualDays,
		EmergencyWFHDeduction:    wfh.EmergencyDeduction,
		CasualWFHDeduction:       wfh.CasualDeduction,
		MissedPunchCount:         wfh.MissedPunchCount,
		MissedPunchPenalty:       wfh.MissedPunchPenalty,
		PFDeduction:              pf,
		ESIDeduction:             esi,
		ProfessionalTax:          profTax,
		TotalDeductions:          totalDeductions,

		Additions:  additions,
		NetPayable: net,

		Status: salary.StatusCalculated,

		ConfigurationUsed: cfg,
		SundayDates:       formatDates(sundays),
		OffSaturdayDates:  formatDates(offSaturdays),
		HolidayDates:      formatDates(holidayDates),
	}
}

func countInMonth(dates []time.Time, year int, month time.Month) int {
	n := 0
	for _, d := range dates {
		if d.Year() == year && d.Month() == month {
			n++
		}
	}
	return n
}

func formatDates(dates []time.Time) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format(dateKeyLayout))
	}
	return out
}
