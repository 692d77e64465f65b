package salary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/peoplekit/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplekit/hrms-backend-go/internal/domain/employee"
	"github.com/peoplekit/hrms-backend-go/internal/domain/holiday"
	"github.com/peoplekit/hrms-backend-go/internal/domain/leave"
	dompolicy "github.com/peoplekit/hrms-backend-go/internal/domain/policy"
	"github.com/peoplekit/hrms-backend-go/internal/domain/salary"
	policyservice "github.com/peoplekit/hrms-backend-go/internal/service/policy"
)

// Service orchestrates the salary pipeline: resolve the effective
// configuration, fetch the month's input records, run the pure computation
// and upsert the result. Each employee's computation touches only that
// employee's rows, so a batch may run the per-employee step in any order.
type Service struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	holidayRepo    holiday.HolidayRepository
	salaryRepo     salary.SalaryRepository
	resolver       *policyservice.Resolver
}

func NewService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	holidayRepo holiday.HolidayRepository,
	salaryRepo salary.SalaryRepository,
	resolver *policyservice.Resolver,
) *Service {
	return &Service{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		holidayRepo:    holidayRepo,
		salaryRepo:     salaryRepo,
		resolver:       resolver,
	}
}

// CalculateEmployeeSalary computes and persists the salary record for one
// employee and one calendar month. Re-invocation with the same key overwrites
// the previous record in full.
func (s *Service) CalculateEmployeeSalary(ctx context.Context, employeeID string, month, year int, actorID string, overrides *dompolicy.Overrides) (salary.SalaryRecord, error) {
	if month < 1 || month > 12 || year < 2000 || year > 2100 {
		return salary.SalaryRecord{}, salary.ErrInvalidPeriod
	}

	cfg, emp, err := s.resolver.Resolve(ctx, employeeID, overrides)
	if err != nil {
		return salary.SalaryRecord{}, err
	}

	inputs, err := s.fetchInputs(ctx, employeeID, month, year)
	if err != nil {
		return salary.SalaryRecord{}, err
	}
	inputs.Employee = emp
	inputs.Config = cfg

	record := Compute(inputs, month, year)
	record.ID = uuid.NewString()
	record.CalculatedBy = actorID

	saved, err := s.salaryRepo.Upsert(ctx, record)
	if err != nil {
		return salary.SalaryRecord{}, fmt.Errorf("persist salary record: %w", err)
	}
	return saved, nil
}

// CalculateForAllEmployees runs the monthly calculation for every active
// employee. A failure for one employee is recorded and never aborts the
// batch.
func (s *Service) CalculateForAllEmployees(ctx context.Context, month, year int, actorID string) (salary.BatchResult, error) {
	if month < 1 || month > 12 || year < 2000 || year > 2100 {
		return salary.BatchResult{}, salary.ErrInvalidPeriod
	}

	employees, err := s.employeeRepo.GetAllActive(ctx)
	if err != nil {
		return salary.BatchResult{}, fmt.Errorf("list active employees: %w", err)
	}

	result := salary.BatchResult{Month: month, Year: year}
	for _, emp := range employees {
		record, err := s.CalculateEmployeeSalary(ctx, emp.ID, month, year, actorID, nil)
		if err != nil {
			slog.Error("salary calculation failed",
				"employee_id", emp.ID,
				"month", month,
				"year", year,
				"error", err,
			)
			result.Failures = append(result.Failures, salary.CalculationFailure{
				EmployeeID: emp.ID,
				Error:      err.Error(),
			})
			continue
		}
		result.Calculated = append(result.Calculated, record)
	}

	slog.Info("salary batch finished",
		"month", month,
		"year", year,
		"calculated", len(result.Calculated),
		"failed", len(result.Failures),
	)
	return result, nil
}

func (s *Service) GetRecord(ctx context.Context, id string) (salary.SalaryRecord, error) {
	return s.salaryRepo.GetByID(ctx, id)
}

func (s *Service) ListRecords(ctx context.Context, month, year int) ([]salary.SalaryRecord, error) {
	if month < 1 || month > 12 || year < 2000 || year > 2100 {
		return nil, salary.ErrInvalidPeriod
	}
	return s.salaryRepo.ListByPeriod(ctx, month, year)
}

// Approve moves calculated records to approved. Financial fields stay
// untouched.
func (s *Service) Approve(ctx context.Context, req salary.StatusUpdateRequest, actorID string) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.salaryRepo.UpdateStatus(ctx, req.RecordIDs, salary.StatusApproved, actorID)
}

// MarkPaid moves approved records to paid.
func (s *Service) MarkPaid(ctx context.Context, req salary.StatusUpdateRequest, actorID string) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.salaryRepo.UpdateStatus(ctx, req.RecordIDs, salary.StatusPaid, actorID)
}

// DeleteRecord removes a record that is still in the calculated state.
func (s *Service) DeleteRecord(ctx context.Context, id string) error {
	return s.salaryRepo.Delete(ctx, id)
}

func (s *Service) fetchInputs(ctx context.Context, employeeID string, month, year int) (Inputs, error) {
	m := time.Month(month)
	monthStart := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(year, m, daysIn(year, m), 0, 0, 0, 0, time.UTC)

	att, err := s.attendanceRepo.GetByEmployeeAndMonth(ctx, employeeID, month, year)
	if err != nil {
		return Inputs{}, fmt.Errorf("fetch attendance: %w", err)
	}
	leaves, err := s.leaveRepo.GetApprovedOverlapping(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return Inputs{}, fmt.Errorf("fetch leave records: %w", err)
	}
	holidays, err := s.holidayRepo.GetPublicInRange(ctx, monthStart, monthEnd)
	if err != nil {
		return Inputs{}, fmt.Errorf("fetch holidays: %w", err)
	}
	restricted, err := s.holidayRepo.GetApprovedRestrictedDates(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return Inputs{}, fmt.Errorf("fetch restricted holidays: %w", err)
	}

	return Inputs{
		Attendance:             att,
		Leaves:                 leaves,
		PublicHolidays:         holidays,
		RestrictedHolidayDates: restricted,
	}, nil
}
