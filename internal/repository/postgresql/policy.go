package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peoplekit/hrms-backend-go/internal/domain/policy"
	"github.com/peoplekit/hrms-backend-go/internal/pkg/database"
)

type policyRepository struct {
	db *database.DB
}

func NewPolicyRepository(db *database.DB) policy.PolicyRepository {
	return &policyRepository{db: db}
}

func (r *policyRepository) GetActiveConfig(ctx context.Context) (policy.PolicyConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, is_active, daily_work_hours, bi_weekly_target_hours, grace_period_hours,
			   hourly_deduction_rate, saturday_off_pattern,
			   sick_leave_per_month, earned_leave_per_month, special_leave_per_year,
			   emergency_wfh_deduction_pct, casual_wfh_deduction_pct,
			   missed_punch_penalty, probation_period_days,
			   attendance_bonus_enabled, attendance_bonus_amount,
			   pf_enabled, pf_percent, esi_enabled, esi_percent, esi_wage_threshold,
			   professional_tax_enabled, professional_tax_amount,
			   weekend_deduction_tiers, created_at, updated_at
		FROM policy_configs
		WHERE is_active = true
	`

	var c policy.PolicyConfig
	var tiers []byte
	err := q.QueryRow(ctx, query).Scan(
		&c.ID, &c.IsActive, &c.DailyWorkHours, &c.BiWeeklyTargetHours, &c.GracePeriodHours,
		&c.HourlyDeductionRate, &c.SaturdayOffPattern,
		&c.SickLeavePerMonth, &c.EarnedLeavePerMonth, &c.SpecialLeavePerYear,
		&c.EmergencyWFHDeductionPct, &c.CasualWFHDeductionPct,
		&c.MissedPunchPenalty, &c.ProbationPeriodDays,
		&c.AttendanceBonusEnabled, &c.AttendanceBonusAmount,
		&c.PFEnabled, &c.PFPercent, &c.ESIEnabled, &c.ESIPercent, &c.ESIWageThreshold,
		&c.ProfessionalTaxEnabled, &c.ProfessionalTaxAmount,
		&tiers, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.PolicyConfig{}, policy.ErrPolicyConfigNotFound
		}
		return policy.PolicyConfig{}, fmt.Errorf("failed to get policy config: %w", err)
	}
	if len(tiers) > 0 {
		if err := json.Unmarshal(tiers, &c.WeekendDeductionTiers); err != nil {
			return policy.PolicyConfig{}, fmt.Errorf("failed to decode tier table: %w", err)
		}
	}
	return c, nil
}

func (r *policyRepository) UpsertConfig(ctx context.Context, cfg policy.PolicyConfig) (policy.PolicyConfig, error) {
	q := GetQuerier(ctx, r.db)

	tiers, err := json.Marshal(cfg.WeekendDeductionTiers)
	if err != nil {
		return policy.PolicyConfig{}, fmt.Errorf("failed to encode tier table: %w", err)
	}

	// Single active config: the id carries the conflict key.
	query := `
		INSERT INTO policy_configs (
			id, is_active, daily_work_hours, bi_weekly_target_hours, grace_period_hours,
			hourly_deduction_rate, saturday_off_pattern,
			sick_leave_per_month, earned_leave_per_month, special_leave_per_year,
			emergency_wfh_deduction_pct, casual_wfh_deduction_pct,
			missed_punch_penalty, probation_period_days,
			attendance_bonus_enabled, attendance_bonus_amount,
			pf_enabled, pf_percent, esi_enabled, esi_percent, esi_wage_threshold,
			professional_tax_enabled, professional_tax_amount, weekend_deduction_tiers
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
				  $17, $18, $19, $20, $21, $22, $23, $24)
		ON CONFLICT (id) DO UPDATE SET
			daily_work_hours = EXCLUDED.daily_work_hours,
			bi_weekly_target_hours = EXCLUDED.bi_weekly_target_hours,
			grace_period_hours = EXCLUDED.grace_period_hours,
			hourly_deduction_rate = EXCLUDED.hourly_deduction_rate,
			saturday_off_pattern = EXCLUDED.saturday_off_pattern,
			sick_leave_per_month = EXCLUDED.sick_leave_per_month,
			earned_leave_per_month = EXCLUDED.earned_leave_per_month,
			special_leave_per_year = EXCLUDED.special_leave_per_year,
			emergency_wfh_deduction_pct = EXCLUDED.emergency_wfh_deduction_pct,
			casual_wfh_deduction_pct = EXCLUDED.casual_wfh_deduction_pct,
			missed_punch_penalty = EXCLUDED.missed_punch_penalty,
			probation_period_days = EXCLUDED.probation_period_days,
			attendance_bonus_enabled = EXCLUDED.attendance_bonus_enabled,
			attendance_bonus_amount = EXCLUDED.attendance_bonus_amount,
			pf_enabled = EXCLUDED.pf_enabled,
			pf_percent = EXCLUDED.pf_percent,
			esi_enabled = EXCLUDED.esi_enabled,
			esi_percent = EXCLUDED.esi_percent,
			esi_wage_threshold = EXCLUDED.esi_wage_threshold,
			professional_tax_enabled = EXCLUDED.professional_tax_enabled,
			professional_tax_amount = EXCLUDED.professional_tax_amount,
			weekend_deduction_tiers = EXCLUDED.weekend_deduction_tiers,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		cfg.ID, cfg.IsActive, cfg.DailyWorkHours, cfg.BiWeeklyTargetHours, cfg.GracePeriodHours,
		cfg.HourlyDeductionRate, cfg.SaturdayOffPattern,
		cfg.SickLeavePerMonth, cfg.EarnedLeavePerMonth, cfg.SpecialLeavePerYear,
		cfg.EmergencyWFHDeductionPct, cfg.CasualWFHDeductionPct,
		cfg.MissedPunchPenalty, cfg.ProbationPeriodDays,
		cfg.AttendanceBonusEnabled, cfg.AttendanceBonusAmount,
		cfg.PFEnabled, cfg.PFPercent, cfg.ESIEnabled, cfg.ESIPercent, cfg.ESIWageThreshold,
		cfg.ProfessionalTaxEnabled, cfg.ProfessionalTaxAmount, tiers,
	).Scan(&cfg.CreatedAt, &cfg.UpdatedAt)
	if err != nil {
		return policy.PolicyConfig{}, fmt.Errorf("failed to upsert policy config: %w", err)
	}
	return cfg, nil
}

func (r *policyRepository) GetEmployeePolicy(ctx context.Context, employeeID string) (policy.EmployeePolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, use_global_settings, salary_offered,
			   daily_work_hours, bi_weekly_target_hours, grace_period_hours,
			   hourly_deduction_rate, saturday_off_pattern,
			   sick_leave_per_month, earned_leave_per_month, special_leave_per_year,
			   emergency_wfh_deduction_pct, casual_wfh_deduction_pct,
			   missed_punch_penalty, probation_period_days,
			   attendance_bonus_enabled, attendance_bonus_amount,
			   pf_enabled, pf_percent, esi_enabled, esi_percent, esi_wage_threshold,
			   professional_tax_enabled, professional_tax_amount,
			   weekend_deduction_tiers, created_at, updated_at
		FROM employee_policies
		WHERE employee_id = $1
	`

	var p policy.EmployeePolicy
	var tiers []byte
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&p.ID, &p.EmployeeID, &p.UseGlobalSettings, &p.SalaryOffered,
		&p.DailyWorkHours, &p.BiWeeklyTargetHours, &p.GracePeriodHours,
		&p.HourlyDeductionRate, &p.SaturdayOffPattern,
		&p.SickLeavePerMonth, &p.EarnedLeavePerMonth, &p.SpecialLeavePerYear,
		&p.EmergencyWFHDeductionPct, &p.CasualWFHDeductionPct,
		&p.MissedPunchPenalty, &p.ProbationPeriodDays,
		&p.AttendanceBonusEnabled, &p.AttendanceBonusAmount,
		&p.PFEnabled, &p.PFPercent, &p.ESIEnabled, &p.ESIPercent, &p.ESIWageThreshold,
		&p.ProfessionalTaxEnabled, &p.ProfessionalTaxAmount,
		&tiers, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.EmployeePolicy{}, policy.ErrEmployeePolicyNotFound
		}
		return policy.EmployeePolicy{}, fmt.Errorf("failed to get employee policy: %w", err)
	}
	if len(tiers) > 0 {
		if err := json.Unmarshal(tiers, &p.WeekendDeductionTiers); err != nil {
			return policy.EmployeePolicy{}, fmt.Errorf("failed to decode tier table: %w", err)
		}
	}
	return p, nil
}

func (r *policyRepository) UpsertEmployeePolicy(ctx context.Context, p policy.EmployeePolicy) (policy.EmployeePolicy, error) {
	q := GetQuerier(ctx, r.db)

	tiers, err := json.Marshal(p.WeekendDeductionTiers)
	if err != nil {
		return policy.EmployeePolicy{}, fmt.Errorf("failed to encode tier table: %w", err)
	}

	query := `
		INSERT INTO employee_policies (
			id, employee_id, use_global_settings, salary_offered,
			daily_work_hours, bi_weekly_target_hours, grace_period_hours,
			hourly_deduction_rate, saturday_off_pattern,
			sick_leave_per_month, earned_leave_per_month, special_leave_per_year,
			emergency_wfh_deduction_pct, casual_wfh_deduction_pct,
			missed_punch_penalty, probation_period_days,
			attendance_bonus_enabled, attendance_bonus_amount,
			pf_enabled, pf_percent, esi_enabled, esi_percent, esi_wage_threshold,
			professional_tax_enabled, professional_tax_amount, weekend_deduction_tiers
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
				  $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
		ON CONFLICT (employee_id) DO UPDATE SET
			use_global_settings = EXCLUDED.use_global_settings,
			salary_offered = EXCLUDED.salary_offered,
			daily_work_hours = EXCLUDED.daily_work_hours,
			bi_weekly_target_hours = EXCLUDED.bi_weekly_target_hours,
			grace_period_hours = EXCLUDED.grace_period_hours,
			hourly_deduction_rate = EXCLUDED.hourly_deduction_rate,
			saturday_off_pattern = EXCLUDED.saturday_off_pattern,
			sick_leave_per_month = EXCLUDED.sick_leave_per_month,
			earned_leave_per_month = EXCLUDED.earned_leave_per_month,
			special_leave_per_year = EXCLUDED.special_leave_per_year,
			emergency_wfh_deduction_pct = EXCLUDED.emergency_wfh_deduction_pct,
			casual_wfh_deduction_pct = EXCLUDED.casual_wfh_deduction_pct,
			missed_punch_penalty = EXCLUDED.missed_punch_penalty,
			probation_period_days = EXCLUDED.probation_period_days,
			attendance_bonus_enabled = EXCLUDED.attendance_bonus_enabled,
			attendance_bonus_amount = EXCLUDED.attendance_bonus_amount,
			pf_enabled = EXCLUDED.pf_enabled,
			pf_percent = EXCLUDED.pf_percent,
			esi_enabled = EXCLUDED.esi_enabled,
			esi_percent = EXCLUDED.esi_percent,
			esi_wage_threshold = EXCLUDED.esi_wage_threshold,
			professional_tax_enabled = EXCLUDED.professional_tax_enabled,
			professional_tax_amount = EXCLUDED.professional_tax_amount,
			weekend_deduction_tiers = EXCLUDED.weekend_deduction_tiers,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		p.ID, p.EmployeeID, p.UseGlobalSettings, p.SalaryOffered,
		p.DailyWorkHours, p.BiWeeklyTargetHours, p.GracePeriodHours,
		p.HourlyDeductionRate, p.SaturdayOffPattern,
		p.SickLeavePerMonth, p.EarnedLeavePerMonth, p.SpecialLeavePerYear,
		p.EmergencyWFHDeductionPct, p.CasualWFHDeductionPct,
		p.MissedPunchPenalty, p.ProbationPeriodDays,
		p.AttendanceBonusEnabled, p.AttendanceBonusAmount,
		p.PFEnabled, p.PFPercent, p.ESIEnabled, p.ESIPercent, p.ESIWageThreshold,
		p.ProfessionalTaxEnabled, p.ProfessionalTaxAmount, tiers,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return policy.EmployeePolicy{}, fmt.Errorf("failed to upsert employee policy: %w", err)
	}
	return p, nil
}
