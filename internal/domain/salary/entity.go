package salary

import (
	"time"

	"github.com/peoplekit/hrms-backend-go/internal/domain/policy"
	"github.com/shopspring/decimal"
)

type SalaryStatus string

const (
	StatusCalculated SalaryStatus = "calculated"
	StatusApproved   SalaryStatus = "approved"
	StatusPaid       SalaryStatus = "paid"
)

// BiWeeklyPeriodSummary is one half of the bi-weekly hour accounting: days
// 1-15 or day 16 through end of month.
type BiWeeklyPeriodSummary struct {
	StartDay      int             `json:"start_day"`
	EndDay        int             `json:"end_day"`
	WorkingDays   int             `json:"working_days"`
	ExpectedHours float64         `json:"expected_hours"`
	ActualHours   float64         `json:"actual_hours"`
	ShortfallHrs  float64         `json:"shortfall_hours"`
	Deduction     decimal.Decimal `json:"deduction"`
}

// SalaryRecord is the engine output for one employee and one calendar month,
// keyed uniquely by (employee_id, month, year). Every intermediate figure is
// kept so the record is auditable, and ConfigurationUsed snapshots the exact
// effective configuration so the financial fields can be reproduced by
// replaying the computation. Approval and payment workflows only move Status
// forward; they never touch the computed figures.
type SalaryRecord struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Month        int
	Year         int

	// Day accounting
	DaysInMonth     int
	WorkingDays     int
	DaysPresent     int
	DaysAbsent      int
	DaysToBePaidFor int

	// Leave usage
	SickLeaveUsed       float64
	EarnedLeaveUsed     float64
	SpecialLeaveUsed    float64
	AdditionalLeaveUsed float64
	ExcessLeaveDays     float64

	// Calendar accounting
	SundaysInMonth     int
	OffSaturdays       int
	PublicHolidays     int
	RestrictedHolidays int

	// Hour accounting
	HoursWorked   float64
	OvertimeHours float64
	FirstHalf     BiWeeklyPeriodSummary
	SecondHalf    BiWeeklyPeriodSummary

	// Pay
	PerDaySalary decimal.Decimal
	GrossSalary  decimal.Decimal

	// Deductions
	HourlyShortfallDeduction decimal.Decimal
	WeekendDeduction         decimal.Decimal
	EmergencyWFHDays         int
	CasualWFHDays            int
	EmergencyWFHDeduction    decimal.Decimal
	CasualWFHDeduction       decimal.Decimal
	MissedPunchCount         int
	MissedPunchPenalty       decimal.Decimal
	PFDeduction              decimal.Decimal
	ESIDeduction             decimal.Decimal
	ProfessionalTax          decimal.Decimal
	TotalDeductions          decimal.Decimal

	// Additions are applied later by manual adjustment workflows.
	Additions  decimal.Decimal
	NetPayable decimal.Decimal

	Status SalaryStatus

	// Audit: the exact configuration and calendar sets the computation used.
	ConfigurationUsed policy.EffectiveConfig
	SundayDates       []string
	OffSaturdayDates  []string
	HolidayDates      []string

	CalculatedBy string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
