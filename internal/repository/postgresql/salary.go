package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/peoplekit/hrms-backend-go/internal/domain/policy"
	"github.com/peoplekit/hrms-backend-go/internal/domain/salary"
	"github.com/peoplekit/hrms-backend-go/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepository{db: db}
}

const salaryColumns = `
	id, employee_id, employee_name, month, year,
	days_in_month, working_days, days_present, days_absent, days_to_be_paid_for,
	sick_leave_used, earned_leave_used, special_leave_used, additional_leave_used, excess_leave_days,
	sundays_in_month, off_saturdays, public_holidays, restricted_holidays,
	hours_worked, overtime_hours, first_half, second_half,
	per_day_salary, gross_salary,
	hourly_shortfall_deduction, weekend_deduction,
	emergency_wfh_days, casual_wfh_days, emergency_wfh_deduction, casual_wfh_deduction,
	missed_punch_count, missed_punch_penalty,
	pf_deduction, esi_deduction, professional_tax, total_deductions,
	additions, net_payable, status,
	configuration_used, sunday_dates, off_saturday_dates, holiday_dates,
	calculated_by, created_at, updated_at
`

func (r *salaryRepository) Upsert(ctx context.Context, rec salary.SalaryRecord) (salary.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	firstHalf, err := json.Marshal(rec.FirstHalf)
	if err != nil {
		return salary.SalaryRecord{}, fmt.Errorf("encode first half: %w", err)
	}
	secondHalf, err := json.Marshal(rec.SecondHalf)
	if err != nil {
		return salary.SalaryRecord{}, fmt.Errorf("encode second half: %w", err)
	}
	cfgUsed, err := json.Marshal(rec.ConfigurationUsed)
	if err != nil {
		return salary.SalaryRecord{}, fmt.Errorf("encode configuration snapshot: %w", err)
	}
	sundays, _ := json.Marshal(rec.SundayDates)
	offSats, _ := json.Marshal(rec.OffSaturdayDates)
	holidays, _ := json.Marshal(rec.HolidayDates)

	// Re-invocation for the same (employee_id, month, year) overwrites the
	// prior record in full; only the row id survives.
	query := `
		INSERT INTO salary_records (
			id, employee_id, employee_name, month, year,
			days_in_month, working_days, days_present, days_absent, days_to_be_paid_for,
			sick_leave_used, earned_leave_used, special_leave_used, additional_leave_used, excess_leave_days,
			sundays_in_month, off_saturdays, public_holidays, restricted_holidays,
			hours_worked, overtime_hours, first_half, second_half,
			per_day_salary, gross_salary,
			hourly_shortfall_deduction, weekend_deduction,
			emergency_wfh_days, casual_wfh_days, emergency_wfh_deduction, casual_wfh_deduction,
			missed_punch_count, missed_punch_penalty,
			pf_deduction, esi_deduction, professional_tax, total_deductions,
			additions, net_payable, status,
			configuration_used, sunday_dates, off_saturday_dates, holiday_dates, calculated_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35, $36, $37, $38, $39, $40,
			$41, $42, $43, $44, $45
		)
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			employee_name = EXCLUDED.employee_name,
			days_in_month = EXCLUDED.days_in_month,
			working_days = EXCLUDED.working_days,
			days_present = EXCLUDED.days_present,
			days_absent = EXCLUDED.days_absent,
			days_to_be_paid_for = EXCLUDED.days_to_be_paid_for,
			sick_leave_used = EXCLUDED.sick_leave_used,
			earned_leave_used = EXCLUDED.earned_leave_used,
			special_leave_used = EXCLUDED.special_leave_used,
			additional_leave_used = EXCLUDED.additional_leave_used,
			excess_leave_days = EXCLUDED.excess_leave_days,
			sundays_in_month = EXCLUDED.sundays_in_month,
			off_saturdays = EXCLUDED.off_saturdays,
			public_holidays = EXCLUDED.public_holidays,
			restricted_holidays = EXCLUDED.restricted_holidays,
			hours_worked = EXCLUDED.hours_worked,
			overtime_hours = EXCLUDED.overtime_hours,
			first_half = EXCLUDED.first_half,
			second_half = EXCLUDED.second_half,
			per_day_salary = EXCLUDED.per_day_salary,
			gross_salary = EXCLUDED.gross_salary,
			hourly_shortfall_deduction = EXCLUDED.hourly_shortfall_deduction,
			weekend_deduction = EXCLUDED.weekend_deduction,
			emergency_wfh_days = EXCLUDED.emergency_wfh_days,
			casual_wfh_days = EXCLUDED.casual_wfh_days,
			emergency_wfh_deduction = EXCLUDED.emergency_wfh_deduction,
			casual_wfh_deduction = EXCLUDED.casual_wfh_deduction,
			missed_punch_count = EXCLUDED.missed_punch_count,
			missed_punch_penalty = EXCLUDED.missed_punch_penalty,
			pf_deduction = EXCLUDED.pf_deduction,
			esi_deduction = EXCLUDED.esi_deduction,
			professional_tax = EXCLUDED.professional_tax,
			total_deductions = EXCLUDED.total_deductions,
			additions = EXCLUDED.additions,
			net_payable = EXCLUDED.net_payable,
			status = EXCLUDED.status,
			configuration_used = EXCLUDED.configuration_used,
			sunday_dates = EXCLUDED.sunday_dates,
			off_saturday_dates = EXCLUDED.off_saturday_dates,
			holiday_dates = EXCLUDED.holiday_dates,
			calculated_by = EXCLUDED.calculated_by,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.EmployeeName, rec.Month, rec.Year,
		rec.DaysInMonth, rec.WorkingDays, rec.DaysPresent, rec.DaysAbsent, rec.DaysToBePaidFor,
		rec.SickLeaveUsed, rec.EarnedLeaveUsed, rec.SpecialLeaveUsed, rec.AdditionalLeaveUsed, rec.ExcessLeaveDays,
		rec.SundaysInMonth, rec.OffSaturdays, rec.PublicHolidays, rec.RestrictedHolidays,
		rec.HoursWorked, rec.OvertimeHours, firstHalf, secondHalf,
		rec.PerDaySalary, rec.GrossSalary,
		rec.HourlyShortfallDeduction, rec.WeekendDeduction,
		rec.EmergencyWFHDays, rec.CasualWFHDays, rec.EmergencyWFHDeduction, rec.CasualWFHDeduction,
		rec.MissedPunchCount, rec.MissedPunchPenalty,
		rec.PFDeduction, rec.ESIDeduction, rec.ProfessionalTax, rec.TotalDeductions,
		rec.Additions, rec.NetPayable, rec.Status,
		cfgUsed, sundays, offSats, holidays, rec.CalculatedBy,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "chk_salary_") || strings.Contains(err.Error(), "violates check constraint") {
			return salary.SalaryRecord{}, fmt.Errorf("%w: %v", salary.ErrRecordValidation, err)
		}
		return salary.SalaryRecord{}, fmt.Errorf("failed to upsert salary record: %w", err)
	}
	return rec, nil
}

func (r *salaryRepository) GetByID(ctx context.Context, id string) (salary.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + salaryColumns + ` FROM salary_records WHERE id = $1`
	return scanSalaryRow(q.QueryRow(ctx, query, id))
}

func (r *salaryRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (salary.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + salaryColumns + ` FROM salary_records WHERE employee_id = $1 AND month = $2 AND year = $3`
	return scanSalaryRow(q.QueryRow(ctx, query, employeeID, month, year))
}

func (r *salaryRepository) ListByPeriod(ctx context.Context, month, year int) ([]salary.SalaryRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryColumns + ` FROM salary_records WHERE month = $1 AND year = $2 ORDER BY employee_name`
	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	var result []salary.SalaryRecord
	for rows.Next() {
		rec, err := scanSalaryRows(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

func (r *salaryRepository) CountByPeriod(ctx context.Context, month, year int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM salary_records WHERE month = $1 AND year = $2`, month, year).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count salary records: %w", err)
	}
	return count, nil
}

func (r *salaryRepository) UpdateStatus(ctx context.Context, ids []string, status salary.SalaryStatus, actorID string) error {
	// Check-then-update runs in one transaction so a concurrent payment
	// cannot slip between the paid guard and the write.
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		// Paid records are terminal; the status transition never touches the
		// computed financial columns.
		var paid int
		err := q.QueryRow(ctx, `SELECT COUNT(*) FROM salary_records WHERE id = ANY($1) AND status = $2`, ids, salary.StatusPaid).Scan(&paid)
		if err != nil {
			return fmt.Errorf("failed to check record status: %w", err)
		}
		if paid > 0 {
			return salary.ErrRecordAlreadyPaid
		}

		tag, err := q.Exec(ctx, `
			UPDATE salary_records
			SET status = $1, status_changed_by = $2, updated_at = NOW()
			WHERE id = ANY($3)
		`, status, actorID, ids)
		if err != nil {
			return fmt.Errorf("failed to update salary status: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return salary.ErrSalaryRecordNotFound
		}
		return nil
	})
}

func (r *salaryRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM salary_records WHERE id = $1 AND status = $2`, id, salary.StatusCalculated)
	if err != nil {
		return fmt.Errorf("failed to delete salary record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrSalaryRecordNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSalaryRow(row pgx.Row) (salary.SalaryRecord, error) {
	rec, err := scanSalary(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.SalaryRecord{}, salary.ErrSalaryRecordNotFound
		}
		return salary.SalaryRecord{}, fmt.Errorf("failed to get salary record: %w", err)
	}
	return rec, nil
}

func scanSalaryRows(rows pgx.Rows) (salary.SalaryRecord, error) {
	rec, err := scanSalary(rows)
	if err != nil {
		return salary.SalaryRecord{}, fmt.Errorf("failed to scan salary record: %w", err)
	}
	return rec, nil
}

func scanSalary(s rowScanner) (salary.SalaryRecord, error) {
	var rec salary.SalaryRecord
	var firstHalf, secondHalf, cfgUsed, sundays, offSats, holidays []byte

	err := s.Scan(
		&rec.ID, &rec.EmployeeID, &rec.EmployeeName, &rec.Month, &rec.Year,
		&rec.DaysInMonth, &rec.WorkingDays, &rec.DaysPresent, &rec.DaysAbsent, &rec.DaysToBePaidFor,
		&rec.SickLeaveUsed, &rec.EarnedLeaveUsed, &rec.SpecialLeaveUsed, &rec.AdditionalLeaveUsed, &rec.ExcessLeaveDays,
		&rec.SundaysInMonth, &rec.OffSaturdays, &rec.PublicHolidays, &rec.RestrictedHolidays,
		&rec.HoursWorked, &rec.OvertimeHours, &firstHalf, &secondHalf,
		&rec.PerDaySalary, &rec.GrossSalary,
		&rec.HourlyShortfallDeduction, &rec.WeekendDeduction,
		&rec.EmergencyWFHDays, &rec.CasualWFHDays, &rec.EmergencyWFHDeduction, &rec.CasualWFHDeduction,
		&rec.MissedPunchCount, &rec.MissedPunchPenalty,
		&rec.PFDeduction, &rec.ESIDeduction, &rec.ProfessionalTax, &rec.TotalDeductions,
		&rec.Additions, &rec.NetPayable, &rec.Status,
		&cfgUsed, &sundays, &offSats, &holidays,
		&rec.CalculatedBy, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return salary.SalaryRecord{}, err
	}

	if err := json.Unmarshal(firstHalf, &rec.FirstHalf); err != nil {
		return salary.SalaryRecord{}, fmt.Errorf("decode first half: %w", err)
	}
	if err := json.Unmarshal(secondHalf, &rec.SecondHalf); err != nil {
		return salary.SalaryRecord{}, fmt.Errorf("decode second half: %w", err)
	}
	var cfg policy.EffectiveConfig
	if err := json.Unmarshal(cfgUsed, &cfg); err != nil {
		return salary.SalaryRecord{}, fmt.Errorf("decode configuration snapshot: %w", err)
	}
	rec.ConfigurationUsed = cfg
	_ = json.Unmarshal(sundays, &rec.SundayDates)
	_ = json.Unmarshal(offSats, &rec.OffSaturdayDates)
	_ = json.Unmarshal(holidays, &rec.HolidayDates)

	return rec, nil
}
