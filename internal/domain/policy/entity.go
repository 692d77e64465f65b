package policy

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaturdayPattern selects which Saturdays of a month are off days.
type SaturdayPattern string

const (
	SaturdayPattern1st3rd SaturdayPattern = "1st_3rd"
	SaturdayPattern2nd4th SaturdayPattern = "2nd_4th"
	SaturdayPatternAll    SaturdayPattern = "all"
	SaturdayPatternNone   SaturdayPattern = "none"
)

// WeekendDeductionTier maps a band of excess leave days to a number of Sundays
// deducted from pay. Tier tables must be disjoint, ascending and exhaustive
// over [0, inf); the topmost tier carries a large sentinel MaxExcessDays.
type WeekendDeductionTier struct {
	MinExcessDays   int    `json:"min_excess_days"`
	MaxExcessDays   int    `json:"max_excess_days"`
	SundaysDeducted int    `json:"sundays_deducted"`
	Description     string `json:"description,omitempty"`
}

// PolicyConfig is the global payroll policy. Exactly one row is active at a
// time. All knobs are nullable: a nil field leaves the engine default in
// place during resolution. Mutated only by the admin settings endpoint and
// read-only to the calculation engine.
type PolicyConfig struct {
	ID       string
	IsActive bool

	// Working hours
	DailyWorkHours      *float64
	BiWeeklyTargetHours *float64
	GracePeriodHours    *float64
	HourlyDeductionRate *decimal.Decimal

	SaturdayOffPattern *SaturdayPattern

	// Monthly free leave allowances
	SickLeavePerMonth   *float64
	EarnedLeavePerMonth *float64
	SpecialLeavePerYear *float64

	// Work-from-home salary deductions (fraction of per-day salary)
	EmergencyWFHDeductionPct *float64
	CasualWFHDeductionPct    *float64

	MissedPunchPenalty  *decimal.Decimal
	ProbationPeriodDays *int

	AttendanceBonusEnabled *bool
	AttendanceBonusAmount  *decimal.Decimal

	// Statutory withholdings
	PFEnabled              *bool
	PFPercent              *float64
	ESIEnabled             *bool
	ESIPercent             *float64
	ESIWageThreshold       *decimal.Decimal
	ProfessionalTaxEnabled *bool
	ProfessionalTaxAmount  *decimal.Decimal

	WeekendDeductionTiers []WeekendDeductionTier

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmployeePolicy is the per-employee override of PolicyConfig, one-to-one with
// Employee by employee_id. When UseGlobalSettings is true only the allow-listed
// fields override the resolved global values; when false every defined field
// overrides unconditionally.
type EmployeePolicy struct {
	ID                string
	EmployeeID        string
	UseGlobalSettings bool
	SalaryOffered     *decimal.Decimal

	DailyWorkHours      *float64
	BiWeeklyTargetHours *float64
	GracePeriodHours    *float64
	HourlyDeductionRate *decimal.Decimal

	SaturdayOffPattern *SaturdayPattern

	SickLeavePerMonth   *float64
	EarnedLeavePerMonth *float64
	SpecialLeavePerYear *float64

	EmergencyWFHDeductionPct *float64
	CasualWFHDeductionPct    *float64

	MissedPunchPenalty  *decimal.Decimal
	ProbationPeriodDays *int

	AttendanceBonusEnabled *bool
	AttendanceBonusAmount  *decimal.Decimal

	PFEnabled              *bool
	PFPercent              *float64
	ESIEnabled             *bool
	ESIPercent             *float64
	ESIWageThreshold       *decimal.Decimal
	ProfessionalTaxEnabled *bool
	ProfessionalTaxAmount  *decimal.Decimal

	WeekendDeductionTiers []WeekendDeductionTier

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveConfig is the fully resolved, flat configuration for one employee:
// engine defaults overlaid by the active PolicyConfig, the EmployeePolicy and
// any call-time overrides, with IsProbationary recomputed last. It is stored
// verbatim on every salary record so the computation can be replayed.
type EffectiveConfig struct {
	SalaryOffered decimal.Decimal `json:"salary_offered"`

	DailyWorkHours      float64         `json:"daily_work_hours"`
	BiWeeklyTargetHours float64         `json:"bi_weekly_target_hours"`
	GracePeriodHours    float64         `json:"grace_period_hours"`
	HourlyDeductionRate decimal.Decimal `json:"hourly_deduction_rate"`

	SaturdayOffPattern SaturdayPattern `json:"saturday_off_pattern"`

	SickLeavePerMonth   float64 `json:"sick_leave_per_month"`
	EarnedLeavePerMonth float64 `json:"earned_leave_per_month"`
	SpecialLeavePerYear float64 `json:"special_leave_per_year"`

	EmergencyWFHDeductionPct float64 `json:"emergency_wfh_deduction_pct"`
	CasualWFHDeductionPct    float64 `json:"casual_wfh_deduction_pct"`

	MissedPunchPenalty  decimal.Decimal `json:"missed_punch_penalty"`
	ProbationPeriodDays int             `json:"probation_period_days"`

	AttendanceBonusEnabled bool            `json:"attendance_bonus_enabled"`
	AttendanceBonusAmount  decimal.Decimal `json:"attendance_bonus_amount"`

	PFEnabled              bool            `json:"pf_enabled"`
	PFPercent              float64         `json:"pf_percent"`
	ESIEnabled             bool            `json:"esi_enabled"`
	ESIPercent             float64         `json:"esi_percent"`
	ESIWageThreshold       decimal.Decimal `json:"esi_wage_threshold"`
	ProfessionalTaxEnabled bool            `json:"professional_tax_enabled"`
	ProfessionalTaxAmount  decimal.Decimal `json:"professional_tax_amount"`

	WeekendDeductionTiers []WeekendDeductionTier `json:"weekend_deduction_tiers"`

	IsProbationary bool `json:"is_probationary"`
}
