package policy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/peoplekit/hrms-backend-go/internal/domain/employee"
	"github.com/peoplekit/hrms-backend-go/internal/domain/policy"
	"github.com/shopspring/decimal"
)

// Defaults returns the hardcoded engine defaults, the base layer of config
// resolution. Every resolution starts here so a missing global config or
// employee policy can never fail a calculation.
func Defaults() policy.EffectiveConfig {
	return policy.EffectiveConfig{
		SalaryOffered: decimal.Zero,

		DailyWorkHours:      9,
		BiWeeklyTargetHours: 99,
		GracePeriodHours:    2,
		HourlyDeductionRate: decimal.NewFromInt(500),

		SaturdayOffPattern: policy.SaturdayPattern1st3rd,

		SickLeavePerMonth:   1,
		EarnedLeavePerMonth: 1.5,
		SpecialLeavePerYear: 3,

		EmergencyWFHDeductionPct: 0.25,
		CasualWFHDeductionPct:    0.5,

		MissedPunchPenalty:  decimal.NewFromInt(200),
		ProbationPeriodDays: 90,

		AttendanceBonusEnabled: false,
		AttendanceBonusAmount:  decimal.NewFromInt(1000),

		PFEnabled:              true,
		PFPercent:              12,
		ESIEnabled:             true,
		ESIPercent:             0.75,
		ESIWageThreshold:       decimal.NewFromInt(21000),
		ProfessionalTaxEnabled: true,
		ProfessionalTaxAmount:  decimal.NewFromInt(200),

		WeekendDeductionTiers: []policy.WeekendDeductionTier{
			{MinExcessDays: 0, MaxExcessDays: 2, SundaysDeducted: 0, Description: "within allowance"},
			{MinExcessDays: 3, MaxExcessDays: 5, SundaysDeducted: 1, Description: "1 Sunday deducted"},
			{MinExcessDays: 6, MaxExcessDays: 8, SundaysDeducted: 2, Description: "2 Sundays deducted"},
			{MinExcessDays: 9, MaxExcessDays: 9999, SundaysDeducted: 4, Description: "all Sundays deducted"},
		},
	}
}

// Resolver merges the three configuration tiers into one flat effective
// configuration: engine defaults, the active global PolicyConfig, the
// per-employee policy, then any call-time overrides. Probation status is
// recomputed last from the employee's joining date and the effective
// probation window, superseding anything inherited.
type Resolver struct {
	policyRepo   policy.PolicyRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewResolver(policyRepo policy.PolicyRepository, employeeRepo employee.EmployeeRepository) *Resolver {
	return &Resolver{
		policyRepo:   policyRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// Resolve returns the effective configuration for the employee along with the
// employee record itself. It fails only when the employee does not exist.
func (r *Resolver) Resolve(ctx context.Context, employeeID string, overrides *policy.Overrides) (policy.EffectiveConfig, employee.Employee, error) {
	emp, err := r.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return policy.EffectiveConfig{}, employee.Employee{}, err
		}
		return policy.EffectiveConfig{}, employee.Employee{}, fmt.Errorf("resolve config: %w", err)
	}

	cfg := Defaults()

	global, err := r.policyRepo.GetActiveConfig(ctx)
	if err == nil {
		applyGlobal(&cfg, global)
	} else if !errors.Is(err, policy.ErrPolicyConfigNotFound) {
		return policy.EffectiveConfig{}, employee.Employee{}, fmt.Errorf("resolve config: %w", err)
	}

	emplPolicy, err := r.policyRepo.GetEmployeePolicy(ctx, employeeID)
	if err == nil {
		applyEmployeePolicy(&cfg, emplPolicy)
	} else if !errors.Is(err, policy.ErrEmployeePolicyNotFound) {
		return policy.EffectiveConfig{}, employee.Employee{}, fmt.Errorf("resolve config: %w", err)
	}

	if overrides != nil {
		ApplyOverrides(&cfg, *overrides)
	}

	cfg.IsProbationary = policy.InProbation(emp.JoiningDate, cfg.ProbationPeriodDays, r.now())

	return cfg, emp, nil
}

func overlay[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// applyGlobal overlays every provided field of the active global config.
func applyGlobal(cfg *policy.EffectiveConfig, g policy.PolicyConfig) {
	overlay(&cfg.DailyWorkHours, g.DailyWorkHours)
	overlay(&cfg.BiWeeklyTargetHours, g.BiWeeklyTargetHours)
	overlay(&cfg.GracePeriodHours, g.GracePeriodHours)
	overlay(&cfg.HourlyDeductionRate, g.HourlyDeductionRate)
	overlay(&cfg.SaturdayOffPattern, g.SaturdayOffPattern)
	overlay(&cfg.SickLeavePerMonth, g.SickLeavePerMonth)
	overlay(&cfg.EarnedLeavePerMonth, g.EarnedLeavePerMonth)
	overlay(&cfg.SpecialLeavePerYear, g.SpecialLeavePerYear)
	overlay(&cfg.EmergencyWFHDeductionPct, g.EmergencyWFHDeductionPct)
	overlay(&cfg.CasualWFHDeductionPct, g.CasualWFHDeductionPct)
	overlay(&cfg.MissedPunchPenalty, g.MissedPunchPenalty)
	overlay(&cfg.ProbationPeriodDays, g.ProbationPeriodDays)
	overlay(&cfg.AttendanceBonusEnabled, g.AttendanceBonusEnabled)
	overlay(&cfg.AttendanceBonusAmount, g.AttendanceBonusAmount)
	overlay(&cfg.PFEnabled, g.PFEnabled)
	overlay(&cfg.PFPercent, g.PFPercent)
	overlay(&cfg.ESIEnabled, g.ESIEnabled)
	overlay(&cfg.ESIPercent, g.ESIPercent)
	overlay(&cfg.ESIWageThreshold, g.ESIWageThreshold)
	overlay(&cfg.ProfessionalTaxEnabled, g.ProfessionalTaxEnabled)
	overlay(&cfg.ProfessionalTaxAmount, g.ProfessionalTaxAmount)
	if len(g.WeekendDeductionTiers) > 0 {
		cfg.WeekendDeductionTiers = g.WeekendDeductionTiers
	}
}

// applyEmployeePolicy overlays the employee policy. With UseGlobalSettings
// set, only the allow-listed fields may override; otherwise every defined
// field overrides unconditionally. The allow-list is deliberately an explicit
// field list so it stays auditable.
func applyEmployeePolicy(cfg *policy.EffectiveConfig, p policy.EmployeePolicy) {
	// Allow-listed in both modes.
	overlay(&cfg.SalaryOffered, p.SalaryOffered)
	overlay(&cfg.DailyWorkHours, p.DailyWorkHours)
	overlay(&cfg.BiWeeklyTargetHours, p.BiWeeklyTargetHours)
	overlay(&cfg.GracePeriodHours, p.GracePeriodHours)
	overlay(&cfg.HourlyDeductionRate, p.HourlyDeductionRate)
	overlay(&cfg.SickLeavePerMonth, p.SickLeavePerMonth)
	overlay(&cfg.EarnedLeavePerMonth, p.EarnedLeavePerMonth)
	overlay(&cfg.SpecialLeavePerYear, p.SpecialLeavePerYear)
	overlay(&cfg.EmergencyWFHDeductionPct, p.EmergencyWFHDeductionPct)
	overlay(&cfg.CasualWFHDeductionPct, p.CasualWFHDeductionPct)
	overlay(&cfg.MissedPunchPenalty, p.MissedPunchPenalty)
	overlay(&cfg.ProbationPeriodDays, p.ProbationPeriodDays)
	overlay(&cfg.PFEnabled, p.PFEnabled)
	overlay(&cfg.PFPercent, p.PFPercent)
	overlay(&cfg.ESIEnabled, p.ESIEnabled)
	overlay(&cfg.ESIPercent, p.ESIPercent)
	overlay(&cfg.ESIWageThreshold, p.ESIWageThreshold)
	overlay(&cfg.ProfessionalTaxEnabled, p.ProfessionalTaxEnabled)
	overlay(&cfg.ProfessionalTaxAmount, p.ProfessionalTaxAmount)

	// Tiers override only when the employee record defines a non-empty list.
	if len(p.WeekendDeductionTiers) > 0 {
		cfg.WeekendDeductionTiers = p.WeekendDeductionTiers
	}

	if !p.UseGlobalSettings {
		// Full-override mode unlocks the remaining fields.
		overlay(&cfg.SaturdayOffPattern, p.SaturdayOffPattern)
		overlay(&cfg.AttendanceBonusEnabled, p.AttendanceBonusEnabled)
		overlay(&cfg.AttendanceBonusAmount, p.AttendanceBonusAmount)
	}
}

// ApplyOverrides applies the call-time override layer verbatim. Exported for
// the preview endpoint.
func ApplyOverrides(cfg *policy.EffectiveConfig, o policy.Overrides) {
	overlay(&cfg.SalaryOffered, o.SalaryOffered)
	overlay(&cfg.DailyWorkHours, o.DailyWorkHours)
	overlay(&cfg.BiWeeklyTargetHours, o.BiWeeklyTargetHours)
	overlay(&cfg.GracePeriodHours, o.GracePeriodHours)
	overlay(&cfg.HourlyDeductionRate, o.HourlyDeductionRate)
	overlay(&cfg.SaturdayOffPattern, o.SaturdayOffPattern)
	overlay(&cfg.SickLeavePerMonth, o.SickLeavePerMonth)
	overlay(&cfg.EarnedLeavePerMonth, o.EarnedLeavePerMonth)
	overlay(&cfg.SpecialLeavePerYear, o.SpecialLeavePerYear)
	overlay(&cfg.EmergencyWFHDeductionPct, o.EmergencyWFHDeductionPct)
	overlay(&cfg.CasualWFHDeductionPct, o.CasualWFHDeductionPct)
	overlay(&cfg.MissedPunchPenalty, o.MissedPunchPenalty)
	overlay(&cfg.ProbationPeriodDays, o.ProbationPeriodDays)
	overlay(&cfg.PFEnabled, o.PFEnabled)
	overlay(&cfg.PFPercent, o.PFPercent)
	overlay(&cfg.ESIEnabled, o.ESIEnabled)
	overlay(&cfg.ESIPercent, o.ESIPercent)
	overlay(&cfg.ESIWageThreshold, o.ESIWageThreshold)
	overlay(&cfg.ProfessionalTaxEnabled, o.ProfessionalTaxEnabled)
	overlay(&cfg.ProfessionalTaxAmount, o.ProfessionalTaxAmount)
	if len(o.WeekendDeductionTiers) > 0 {
		cfg.WeekendDeductionTiers = o.WeekendDeductionTiers
	}
}
