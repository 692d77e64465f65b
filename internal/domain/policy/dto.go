package policy

import (
	"github.com/peoplekit/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Overrides is the call-time override layer of config resolution. Fields set
// here are applied verbatim on top of the resolved global and employee policy
// values; it backs the "preview with changed parameters" endpoint.
type Overrides struct {
	SalaryOffered *decimal.Decimal `json:"salary_offered,omitempty"`

	DailyWorkHours      *float64         `json:"daily_work_hours,omitempty"`
	BiWeeklyTargetHours *float64         `json:"bi_weekly_target_hours,omitempty"`
	GracePeriodHours    *float64         `json:"grace_period_hours,omitempty"`
	HourlyDeductionRate *decimal.Decimal `json:"hourly_deduction_rate,omitempty"`

	SaturdayOffPattern *SaturdayPattern `json:"saturday_off_pattern,omitempty"`

	SickLeavePerMonth   *float64 `json:"sick_leave_per_month,omitempty"`
	EarnedLeavePerMonth *float64 `json:"earned_leave_per_month,omitempty"`
	SpecialLeavePerYear *float64 `json:"special_leave_per_year,omitempty"`

	EmergencyWFHDeductionPct *float64 `json:"emergency_wfh_deduction_pct,omitempty"`
	CasualWFHDeductionPct    *float64 `json:"casual_wfh_deduction_pct,omitempty"`

	MissedPunchPenalty  *decimal.Decimal `json:"missed_punch_penalty,omitempty"`
	ProbationPeriodDays *int             `json:"probation_period_days,omitempty"`

	PFEnabled              *bool            `json:"pf_enabled,omitempty"`
	PFPercent              *float64         `json:"pf_percent,omitempty"`
	ESIEnabled             *bool            `json:"esi_enabled,omitempty"`
	ESIPercent             *float64         `json:"esi_percent,omitempty"`
	ESIWageThreshold       *decimal.Decimal `json:"esi_wage_threshold,omitempty"`
	ProfessionalTaxEnabled *bool            `json:"professional_tax_enabled,omitempty"`
	ProfessionalTaxAmount  *decimal.Decimal `json:"professional_tax_amount,omitempty"`

	WeekendDeductionTiers []WeekendDeductionTier `json:"weekend_deduction_tiers,omitempty"`
}

// UpdateSettingsRequest is a partial update of the global PolicyConfig.
type UpdateSettingsRequest struct {
	DailyWorkHours      *float64         `json:"daily_work_hours,omitempty"`
	BiWeeklyTargetHours *float64         `json:"bi_weekly_target_hours,omitempty"`
	GracePeriodHours    *float64         `json:"grace_period_hours,omitempty"`
	HourlyDeductionRate *decimal.Decimal `json:"hourly_deduction_rate,omitempty"`

	SaturdayOffPattern *SaturdayPattern `json:"saturday_off_pattern,omitempty"`

	SickLeavePerMonth   *float64 `json:"sick_leave_per_month,omitempty"`
	EarnedLeavePerMonth *float64 `json:"earned_leave_per_month,omitempty"`
	SpecialLeavePerYear *float64 `json:"special_leave_per_year,omitempty"`

	EmergencyWFHDeductionPct *float64 `json:"emergency_wfh_deduction_pct,omitempty"`
	CasualWFHDeductionPct    *float64 `json:"casual_wfh_deduction_pct,omitempty"`

	MissedPunchPenalty  *decimal.Decimal `json:"missed_punch_penalty,omitempty"`
	ProbationPeriodDays *int             `json:"probation_period_days,omitempty"`

	AttendanceBonusEnabled *bool            `json:"attendance_bonus_enabled,omitempty"`
	AttendanceBonusAmount  *decimal.Decimal `json:"attendance_bonus_amount,omitempty"`

	PFEnabled              *bool            `json:"pf_enabled,omitempty"`
	PFPercent              *float64         `json:"pf_percent,omitempty"`
	ESIEnabled             *bool            `json:"esi_enabled,omitempty"`
	ESIPercent             *float64         `json:"esi_percent,omitempty"`
	ESIWageThreshold       *decimal.Decimal `json:"esi_wage_threshold,omitempty"`
	ProfessionalTaxEnabled *bool            `json:"professional_tax_enabled,omitempty"`
	ProfessionalTaxAmount  *decimal.Decimal `json:"professional_tax_amount,omitempty"`

	WeekendDeductionTiers []WeekendDeductionTier `json:"weekend_deduction_tiers,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DailyWorkHours != nil && *r.DailyWorkHours <= 0 {
		errs = append(errs, validator.ValidationError{Field: "daily_work_hours", Message: "must be positive"})
	}
	if r.GracePeriodHours != nil && *r.GracePeriodHours < 0 {
		errs = append(errs, validator.ValidationError{Field: "grace_period_hours", Message: "must be non-negative"})
	}
	if r.HourlyDeductionRate != nil && r.HourlyDeductionRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_deduction_rate", Message: "must be non-negative"})
	}
	if r.SaturdayOffPattern != nil && !r.SaturdayOffPattern.Valid() {
		errs = append(errs, validator.ValidationError{Field: "saturday_off_pattern", Message: "must be one of 1st_3rd, 2nd_4th, all, none"})
	}
	if r.EmergencyWFHDeductionPct != nil && (*r.EmergencyWFHDeductionPct < 0 || *r.EmergencyWFHDeductionPct > 1) {
		errs = append(errs, validator.ValidationError{Field: "emergency_wfh_deduction_pct", Message: "must be between 0 and 1"})
	}
	if r.CasualWFHDeductionPct != nil && (*r.CasualWFHDeductionPct < 0 || *r.CasualWFHDeductionPct > 1) {
		errs = append(errs, validator.ValidationError{Field: "casual_wfh_deduction_pct", Message: "must be between 0 and 1"})
	}
	if r.MissedPunchPenalty != nil && r.MissedPunchPenalty.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "missed_punch_penalty", Message: "must be non-negative"})
	}
	if r.ProbationPeriodDays != nil && *r.ProbationPeriodDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "probation_period_days", Message: "must be non-negative"})
	}
	if len(r.WeekendDeductionTiers) > 0 {
		if err := ValidateTiers(r.WeekendDeductionTiers); err != nil {
			errs = append(errs, validator.ValidationError{Field: "weekend_deduction_tiers", Message: err.Error()})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpsertEmployeePolicyRequest replaces the employee's policy record.
type UpsertEmployeePolicyRequest struct {
	UseGlobalSettings *bool            `json:"use_global_settings,omitempty"`
	SalaryOffered     *decimal.Decimal `json:"salary_offered,omitempty"`
	Overrides
}

func (r *UpsertEmployeePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.SalaryOffered != nil && r.SalaryOffered.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary_offered", Message: "must be non-negative"})
	}
	if len(r.WeekendDeductionTiers) > 0 {
		if err := ValidateTiers(r.WeekendDeductionTiers); err != nil {
			errs = append(errs, validator.ValidationError{Field: "weekend_deduction_tiers", Message: err.Error()})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (p SaturdayPattern) Valid() bool {
	switch p {
	case SaturdayPattern1st3rd, SaturdayPattern2nd4th, SaturdayPatternAll, SaturdayPatternNone:
		return true
	}
	return false
}

// ValidateTiers checks the tier table is ascending and disjoint.
func ValidateTiers(tiers []WeekendDeductionTier) error {
	prevMax := -1
	for _, t := range tiers {
		if t.MinExcessDays <= prevMax || t.MaxExcessDays < t.MinExcessDays {
			return ErrInvalidTierTable
		}
		prevMax = t.MaxExcessDays
	}
	return nil
}
