package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/peoplekit/hrms-backend-go/internal/domain/employee"
	"github.com/peoplekit/hrms-backend-go/internal/domain/policy"
)

// Service is the administrative surface over the global PolicyConfig and the
// per-employee policies. The calculation engine never goes through it; the
// engine reads config through the Resolver only.
type Service struct {
	policyRepo   policy.PolicyRepository
	employeeRepo employee.EmployeeRepository
	resolver     *Resolver
}

func NewService(policyRepo policy.PolicyRepository, employeeRepo employee.EmployeeRepository, resolver *Resolver) *Service {
	return &Service{
		policyRepo:   policyRepo,
		employeeRepo: employeeRepo,
		resolver:     resolver,
	}
}

// GetSettings returns the active global config, or an empty shell when none
// has been created yet (the engine falls back to defaults either way).
func (s *Service) GetSettings(ctx context.Context) (policy.PolicyConfig, error) {
	cfg, err := s.policyRepo.GetActiveConfig(ctx)
	if err != nil {
		if errors.Is(err, policy.ErrPolicyConfigNotFound) {
			return policy.PolicyConfig{IsActive: true}, nil
		}
		return policy.PolicyConfig{}, err
	}
	return cfg, nil
}

// UpdateSettings applies a partial update onto the active config and upserts
// it as the active singleton.
func (s *Service) UpdateSettings(ctx context.Context, req policy.UpdateSettingsRequest) (policy.PolicyConfig, error) {
	if err := req.Validate(); err != nil {
		return policy.PolicyConfig{}, err
	}

	current, err := s.policyRepo.GetActiveConfig(ctx)
	if err != nil {
		if !errors.Is(err, policy.ErrPolicyConfigNotFound) {
			return policy.PolicyConfig{}, err
		}
		current = policy.PolicyConfig{ID: uuid.NewString(), IsActive: true}
	}

	mergeSettings(&current, req)

	updated, err := s.policyRepo.UpsertConfig(ctx, current)
	if err != nil {
		return policy.PolicyConfig{}, fmt.Errorf("update policy settings: %w", err)
	}
	return updated, nil
}

func (s *Service) GetEmployeePolicy(ctx context.Context, employeeID string) (policy.EmployeePolicy, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return policy.EmployeePolicy{}, err
	}
	return s.policyRepo.GetEmployeePolicy(ctx, employeeID)
}

func (s *Service) UpsertEmployeePolicy(ctx context.Context, employeeID string, req policy.UpsertEmployeePolicyRequest) (policy.EmployeePolicy, error) {
	if err := req.Validate(); err != nil {
		return policy.EmployeePolicy{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return policy.EmployeePolicy{}, err
	}

	useGlobal := true
	if req.UseGlobalSettings != nil {
		useGlobal = *req.UseGlobalSettings
	}

	p := policy.EmployeePolicy{
		ID:                uuid.NewString(),
		EmployeeID:        employeeID,
		UseGlobalSettings: useGlobal,
		SalaryOffered:     req.SalaryOffered,

		DailyWorkHours:      req.DailyWorkHours,
		BiWeeklyTargetHours: req.BiWeeklyTargetHours,
		GracePeriodHours:    req.GracePeriodHours,
		HourlyDeductionRate: req.HourlyDeductionRate,

		SaturdayOffPattern: req.SaturdayOffPattern,

		SickLeavePerMonth:   req.SickLeavePerMonth,
		EarnedLeavePerMonth: req.EarnedLeavePerMonth,
		SpecialLeavePerYear: req.SpecialLeavePerYear,

		EmergencyWFHDeductionPct: req.EmergencyWFHDeductionPct,
		CasualWFHDeductionPct:    req.CasualWFHDeductionPct,

		MissedPunchPenalty:  req.MissedPunchPenalty,
		ProbationPeriodDays: req.ProbationPeriodDays,

		PFEnabled:              req.PFEnabled,
		PFPercent:              req.PFPercent,
		ESIEnabled:             req.ESIEnabled,
		ESIPercent:             req.ESIPercent,
		ESIWageThreshold:       req.ESIWageThreshold,
		ProfessionalTaxEnabled: req.ProfessionalTaxEnabled,
		ProfessionalTaxAmount:  req.ProfessionalTaxAmount,

		WeekendDeductionTiers: req.WeekendDeductionTiers,
	}

	return s.policyRepo.UpsertEmployeePolicy(ctx, p)
}

// PreviewEffectiveConfig resolves the employee's effective configuration with
// optional call-time overrides, without writing anything.
func (s *Service) PreviewEffectiveConfig(ctx context.Context, employeeID string, overrides *policy.Overrides) (policy.EffectiveConfig, error) {
	cfg, _, err := s.resolver.Resolve(ctx, employeeID, overrides)
	return cfg, err
}

func mergeSettings(cfg *policy.PolicyConfig, req policy.UpdateSettingsRequest) {
	if req.DailyWorkHours != nil {
		cfg.DailyWorkHours = req.DailyWorkHours
	}
	if req.BiWeeklyTargetHours != nil {
		cfg.BiWeeklyTargetHours = req.BiWeeklyTargetHours
	}
	if req.GracePeriodHours != nil {
		cfg.GracePeriodHours = req.GracePeriodHours
	}
	if req.HourlyDeductionRate != nil {
		cfg.HourlyDeductionRate = req.HourlyDeductionRate
	}
	if req.SaturdayOffPattern != nil {
		cfg.SaturdayOffPattern = req.SaturdayOffPattern
	}
	if req.SickLeavePerMonth != nil {
		cfg.SickLeavePerMonth = req.SickLeavePerMonth
	}
	if req.EarnedLeavePerMonth != nil {
		cfg.EarnedLeavePerMonth = req.EarnedLeavePerMonth
	}
	if req.SpecialLeavePerYear != nil {
		cfg.SpecialLeavePerYear = req.SpecialLeavePerYear
	}
	if req.EmergencyWFHDeductionPct != nil {
		cfg.EmergencyWFHDeductionPct = req.EmergencyWFHDeductionPct
	}
	if req.CasualWFHDeductionPct != nil {
		cfg.CasualWFHDeductionPct = req.CasualWFHDeductionPct
	}
	if req.MissedPunchPenalty != nil {
		cfg.MissedPunchPenalty = req.MissedPunchPenalty
	}
	if req.ProbationPeriodDays != nil {
		cfg.ProbationPeriodDays = req.ProbationPeriodDays
	}
	if req.AttendanceBonusEnabled != nil {
		cfg.AttendanceBonusEnabled = req.AttendanceBonusEnabled
	}
	if req.AttendanceBonusAmount != nil {
		cfg.AttendanceBonusAmount = req.AttendanceBonusAmount
	}
	if req.PFEnabled != nil {
		cfg.PFEnabled = req.PFEnabled
	}
	if req.PFPercent != nil {
		cfg.PFPercent = req.PFPercent
	}
	if req.ESIEnabled != nil {
		cfg.ESIEnabled = req.ESIEnabled
	}
	if req.ESIPercent != nil {
		cfg.ESIPercent = req.ESIPercent
	}
	if req.ESIWageThreshold != nil {
		cfg.ESIWageThreshold = req.ESIWageThreshold
	}
	if req.ProfessionalTaxEnabled != nil {
		cfg.ProfessionalTaxEnabled = req.ProfessionalTaxEnabled
	}
	if req.ProfessionalTaxAmount != nil {
		cfg.ProfessionalTaxAmount = req.ProfessionalTaxAmount
	}
	if len(req.WeekendDeductionTiers) > 0 {
		cfg.WeekendDeductionTiers = req.WeekendDeductionTiers
	}
}
