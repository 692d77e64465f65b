package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	domsalary "github.com/peoplekit/hrms-backend-go/internal/domain/salary"
	salarysvc "github.com/peoplekit/hrms-backend-go/internal/service/salary"
)

const payrollActor = "system:scheduled-payroll"

// PayrollJobs runs the month-end payroll batch. The job ticks hourly but
// only acts on the first day of a month, and only when no salary records
// exist yet for the closed month, so restarts never double-run a period.
type PayrollJobs struct {
	salarySvc  *salarysvc.Service
	salaryRepo domsalary.SalaryRepository
	now        func() time.Time
}

func NewPayrollJobs(salarySvc *salarysvc.Service, salaryRepo domsalary.SalaryRepository) *PayrollJobs {
	return &PayrollJobs{
		salarySvc:  salarySvc,
		salaryRepo: salaryRepo,
		now:        time.Now,
	}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("monthly_payroll_run", interval, 30*time.Minute, j.RunMonthlyPayroll)
}

func (j *PayrollJobs) RunMonthlyPayroll(ctx context.Context) error {
	now := j.now().UTC()
	if now.Day() != 1 {
		return nil
	}

	prev := now.AddDate(0, 0, -1)
	month, year := int(prev.Month()), prev.Year()

	count, err := j.salaryRepo.CountByPeriod(ctx, month, year)
	if err != nil {
		return fmt.Errorf("failed to check existing payroll run: %w", err)
	}
	if count > 0 {
		slog.Debug("Cron: payroll already generated for period", "month", month, "year", year, "records", count)
		return nil
	}

	slog.Info("Cron: starting monthly payroll run", "month", month, "year", year)

	result, err := j.salarySvc.CalculateForAllEmployees(ctx, month, year, payrollActor)
	if err != nil {
		return fmt.Errorf("monthly payroll run failed: %w", err)
	}

	slog.Info("Cron: monthly payroll run finished",
		"month", month,
		"year", year,
		"calculated", len(result.Calculated),
		"failed", len(result.Failures),
	)
	return nil
}
