package salary

import (
	"testing"
	"time"

	"github.com/peoplekit/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplekit/hrms-backend-go/internal/domain/employee"
	"github.com/peoplekit/hrms-backend-go/internal/domain/holiday"
	"github.com/peoplekit/hrms-backend-go/internal/domain/leave"
	dompolicy "github.com/peoplekit/hrms-backend-go/internal/domain/policy"
	"github.com/peoplekit/hrms-backend-go/internal/domain/salary"
	policyservice "github.com/peoplekit/hrms-backend-go/internal/service/policy"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullMonthConfig() dompolicy.EffectiveConfig {
	cfg := policyservice.Defaults()
	cfg.SalaryOffered = decimal.NewFromInt(30000)
	return cfg
}

// fullAttendance returns 9h present records for every working day of
// September 2025 under the 1st/3rd Saturday pattern.
func fullAttendance() []attendance.Attendance {
	nonWorking := NonWorkingDates(2025, time.September, dompolicy.SaturdayPattern1st3rd, nil, nil)
	var records []attendance.Attendance
	for day := 1; day <= 30; day++ {
		d := time.Date(2025, time.September, day, 0, 0, 0, 0, time.UTC)
		if _, off := nonWorking[d.Format("2006-01-02")]; off {
			continue
		}
		records = append(records, presentDay(day, 9))
	}
	return records
}

func testEmployee() employee.Employee {
	joined := time.Date(2023, time.January, 9, 0, 0, 0, 0, time.UTC)
	return employee.Employee{
		ID:          "emp-1",
		FullName:    "Asha Verma",
		JoiningDate: &joined,
		IsActive:    true,
	}
}

func TestCompute_FullMonthNoShortfall(t *testing.T) {
	in := Inputs{
		Employee:   testEmployee(),
		Config:     fullMonthConfig(),
		Attendance: fullAttendance(),
	}

	rec := Compute(in, 9, 2025)

	assert.Equal(t, 30, rec.DaysInMonth)
	assert.Equal(t, 24, rec.WorkingDays)
	assert.Equal(t, 24, rec.DaysPresent)
	assert.Equal(t, 0, rec.DaysAbsent)
	assert.Equal(t, 4, rec.SundaysInMonth)
	assert.Equal(t, 2, rec.OffSaturdays)
	// Present plus all paid off days covers the whole month.
	assert.Equal(t, 30, rec.DaysToBePaidFor)

	assert.True(t, decimal.NewFromInt(1000).Equal(rec.PerDaySalary), "got %s", rec.PerDaySalary)
	assert.True(t, decimal.NewFromInt(30000).Equal(rec.GrossSalary), "got %s", rec.GrossSalary)

	assert.Equal(t, 0.0, rec.FirstHalf.ShortfallHrs)
	assert.Equal(t, 0.0, rec.SecondHalf.ShortfallHrs)
	assert.True(t, rec.HourlyShortfallDeduction.IsZero())
	assert.True(t, rec.WeekendDeduction.IsZero())

	// PF on an assumed basic of half of gross: 15000 x 12%.
	assert.True(t, decimal.NewFromInt(1800).Equal(rec.PFDeduction), "got %s", rec.PFDeduction)
	// Gross above the ESI wage threshold.
	assert.True(t, rec.ESIDeduction.IsZero())
	assert.True(t, decimal.NewFromInt(200).Equal(rec.ProfessionalTax))

	assert.True(t, decimal.NewFromInt(2000).Equal(rec.TotalDeductions), "got %s", rec.TotalDeductions)
	assert.True(t, decimal.NewFromInt(28000).Equal(rec.NetPayable), "got %s", rec.NetPayable)
	assert.Equal(t, salary.StatusCalculated, rec.Status)
}

func TestCompute_Idempotent(t *testing.T) {
	in := Inputs{
		Employee:   testEmployee(),
		Config:     fullMonthConfig(),
		Attendance: fullAttendance(),
		Leaves: []leave.LeaveRecord{
			{Type: leave.TypeSick, Status: leave.StatusApproved,
				StartDate: time.Date(2025, time.September, 3, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2025, time.September, 5, 0, 0, 0, 0, time.UTC)},
		},
		PublicHolidays: []holiday.Holiday{
			{Name: "Gandhi Jayanti observed", Date: time.Date(2025, time.September, 17, 0, 0, 0, 0, time.UTC)},
		},
	}

	first := Compute(in, 9, 2025)
	second := Compute(in, 9, 2025)

	assert.Equal(t, first, second)
}

func TestCompute_ProbationSuppressesStatutoryAndShortfall(t *testing.T) {
	cfg := fullMonthConfig()
	cfg.IsProbationary = true

	// Ten worked days only: a large shortfall that would normally bill.
	var records []attendance.Attendance
	for day := 1; day <= 12; day++ {
		d := time.Date(2025, time.September, day, 0, 0, 0, 0, time.UTC)
		if d.Weekday() == time.Sunday || d.Weekday() == time.Saturday {
			continue
		}
		records = append(records, presentDay(day, 9))
	}

	in := Inputs{Employee: testEmployee(), Config: cfg, Attendance: records}
	rec := Compute(in, 9, 2025)

	require.Greater(t, rec.FirstHalf.ShortfallHrs+rec.SecondHalf.ShortfallHrs, 0.0)
	assert.True(t, rec.HourlyShortfallDeduction.IsZero())
	assert.True(t, rec.PFDeduction.IsZero())
	assert.True(t, rec.ESIDeduction.IsZero())
	assert.True(t, rec.ProfessionalTax.IsZero())
	// Probation pays presence only.
	assert.Equal(t, rec.DaysPresent, rec.DaysToBePaidFor)
}

func TestCompute_ESIAppliesBelowThreshold(t *testing.T) {
	cfg := fullMonthConfig()
	cfg.SalaryOffered = decimal.NewFromInt(18000)

	in := Inputs{Employee: testEmployee(), Config: cfg, Attendance: fullAttendance()}
	rec := Compute(in, 9, 2025)

	// perDay 600, full month paid: gross 18000, within the 21000 threshold.
	assert.True(t, decimal.NewFromInt(18000).Equal(rec.GrossSalary), "got %s", rec.GrossSalary)
	// 18000 x 0.75%.
	assert.True(t, decimal.NewFromInt(135).Equal(rec.ESIDeduction), "got %s", rec.ESIDeduction)
}

func TestCompute_ExcessLeaveTriggersWeekendDeduction(t *testing.T) {
	cfg := fullMonthConfig()

	// Four approved sick days against an allowance of one: 3 excess, the
	// 3-5 band deducts one Sunday at the per-day rate.
	in := Inputs{
		Employee:   testEmployee(),
		Config:     cfg,
		Attendance: fullAttendance(),
		Leaves: []leave.LeaveRecord{
			{Type: leave.TypeSick, Status: leave.StatusApproved,
				StartDate: time.Date(2025, time.September, 8, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2025, time.September, 11, 0, 0, 0, 0, time.UTC)},
		},
	}

	rec := Compute(in, 9, 2025)

	assert.Equal(t, 4.0, rec.SickLeaveUsed)
	assert.Equal(t, 3.0, rec.ExcessLeaveDays)
	assert.True(t, decimal.NewFromInt(1000).Equal(rec.WeekendDeduction), "got %s", rec.WeekendDeduction)
}

func TestCompute_GrossFromUnroundedPerDayRate(t *testing.T) {
	// 30999 over October's 31 days is 999.96774..., which stores as
	// 999.97. Ten worked days plus two off Saturdays and four Sundays pay
	// 16 days: the exact product is 15999.48, so gross must land on 15999
	// rather than the 16000 the rounded rate would give.
	cfg := fullMonthConfig()
	cfg.SalaryOffered = decimal.NewFromInt(30999)

	var records []attendance.Attendance
	for _, day := range []int{1, 2, 3, 6, 7, 8, 9, 10, 13, 14} {
		in := time.Date(2025, time.October, day, 9, 0, 0, 0, time.UTC)
		out := in.Add(9 * time.Hour)
		records = append(records, attendance.Attendance{
			Date:        time.Date(2025, time.October, day, 0, 0, 0, 0, time.UTC),
			Status:      attendance.StatusPresent,
			HoursWorked: 9,
			ClockIn:     &in,
			ClockOut:    &out,
		})
	}

	in := Inputs{Employee: testEmployee(), Config: cfg, Attendance: records}
	rec := Compute(in, 10, 2025)

	require.Equal(t, 16, rec.DaysToBePaidFor)
	assert.True(t, decimal.RequireFromString("999.97").Equal(rec.PerDaySalary), "got %s", rec.PerDaySalary)
	assert.True(t, decimal.NewFromInt(15999).Equal(rec.GrossSalary), "got %s", rec.GrossSalary)
}

func TestCompute_SnapshotRecordsCalendarAndConfig(t *testing.T) {
	in := Inputs{
		Employee:   testEmployee(),
		Config:     fullMonthConfig(),
		Attendance: fullAttendance(),
		PublicHolidays: []holiday.Holiday{
			{Name: "Onam", Date: time.Date(2025, time.September, 5, 0, 0, 0, 0, time.UTC)},
		},
	}

	rec := Compute(in, 9, 2025)

	assert.Equal(t, []string{"2025-09-07", "2025-09-14", "2025-09-21", "2025-09-28"}, rec.SundayDates)
	assert.Equal(t, []string{"2025-09-06", "2025-09-20"}, rec.OffSaturdayDates)
	assert.Equal(t, []string{"2025-09-05"}, rec.HolidayDates)
	assert.Equal(t, in.Config, rec.ConfigurationUsed)
}
