package salary

import (
	"context"
	"fmt"
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

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmployeeCode(_ context.Context, code string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.EmployeeCode == code {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetAllActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.IsActive {
			out = append(out, emp)
		}
	}
	return out, nil
}

type fakeAttendanceRepo struct {
	records map[string][]attendance.Attendance
	err     map[string]error
}

func (f *fakeAttendanceRepo) GetByEmployeeAndMonth(_ context.Context, employeeID string, _, _ int) ([]attendance.Attendance, error) {
	if err := f.err[employeeID]; err != nil {
		return nil, err
	}
	return f.records[employeeID], nil
}

type fakeLeaveRepo struct {
	records map[string][]leave.LeaveRecord
}

func (f *fakeLeaveRepo) GetApprovedOverlapping(_ context.Context, employeeID string, _, _ time.Time) ([]leave.LeaveRecord, error) {
	return f.records[employeeID], nil
}

type fakeHolidayRepo struct {
	public     []holiday.Holiday
	restricted map[string][]time.Time
}

func (f *fakeHolidayRepo) GetPublicInRange(_ context.Context, _, _ time.Time) ([]holiday.Holiday, error) {
	return f.public, nil
}

func (f *fakeHolidayRepo) GetApprovedRestrictedDates(_ context.Context, employeeID string, _, _ time.Time) ([]time.Time, error) {
	return f.restricted[employeeID], nil
}

type fakePolicyRepo struct {
	global   *dompolicy.PolicyConfig
	employee map[string]dompolicy.EmployeePolicy
}

func (f *fakePolicyRepo) GetActiveConfig(_ context.Context) (dompolicy.PolicyConfig, error) {
	if f.global == nil {
		return dompolicy.PolicyConfig{}, dompolicy.ErrPolicyConfigNotFound
	}
	return *f.global, nil
}

func (f *fakePolicyRepo) UpsertConfig(_ context.Context, cfg dompolicy.PolicyConfig) (dompolicy.PolicyConfig, error) {
	f.global = &cfg
	return cfg, nil
}

func (f *fakePolicyRepo) GetEmployeePolicy(_ context.Context, employeeID string) (dompolicy.EmployeePolicy, error) {
	p, ok := f.employee[employeeID]
	if !ok {
		return dompolicy.EmployeePolicy{}, dompolicy.ErrEmployeePolicyNotFound
	}
	return p, nil
}

func (f *fakePolicyRepo) UpsertEmployeePolicy(_ context.Context, p dompolicy.EmployeePolicy) (dompolicy.EmployeePolicy, error) {
	if f.employee == nil {
		f.employee = make(map[string]dompolicy.EmployeePolicy)
	}
	f.employee[p.EmployeeID] = p
	return p, nil
}

type fakeSalaryRepo struct {
	byPeriod map[string]salary.SalaryRecord
	statuses map[string]salary.SalaryStatus
}

func periodKey(employeeID string, month, year int) string {
	return fmt.Sprintf("%s/%d-%d", employeeID, year, month)
}

func newFakeSalaryRepo() *fakeSalaryRepo {
	return &fakeSalaryRepo{
		byPeriod: make(map[string]salary.SalaryRecord),
		statuses: make(map[string]salary.SalaryStatus),
	}
}

func (f *fakeSalaryRepo) Upsert(_ context.Context, rec salary.SalaryRecord) (salary.SalaryRecord, error) {
	key := periodKey(rec.EmployeeID, rec.Month, rec.Year)
	if prev, ok := f.byPeriod[key]; ok {
		rec.ID = prev.ID
	}
	f.byPeriod[key] = rec
	f.statuses[rec.ID] = rec.Status
	return rec, nil
}

func (f *fakeSalaryRepo) GetByID(_ context.Context, id string) (salary.SalaryRecord, error) {
	for _, rec := range f.byPeriod {
		if rec.ID == id {
			return rec, nil
		}
	}
	return salary.SalaryRecord{}, salary.ErrSalaryRecordNotFound
}

func (f *fakeSalaryRepo) GetByEmployeePeriod(_ context.Context, employeeID string, month, year int) (salary.SalaryRecord, error) {
	rec, ok := f.byPeriod[periodKey(employeeID, month, year)]
	if !ok {
		return salary.SalaryRecord{}, salary.ErrSalaryRecordNotFound
	}
	return rec, nil
}

func (f *fakeSalaryRepo) ListByPeriod(_ context.Context, month, year int) ([]salary.SalaryRecord, error) {
	var out []salary.SalaryRecord
	for _, rec := range f.byPeriod {
		if rec.Month == month && rec.Year == year {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeSalaryRepo) CountByPeriod(_ context.Context, month, year int) (int64, error) {
	recs, _ := f.ListByPeriod(context.Background(), month, year)
	return int64(len(recs)), nil
}

func (f *fakeSalaryRepo) UpdateStatus(_ context.Context, ids []string, status salary.SalaryStatus, _ string) error {
	for _, id := range ids {
		if f.statuses[id] == salary.StatusPaid {
			return salary.ErrRecordAlreadyPaid
		}
	}
	for _, id := range ids {
		f.statuses[id] = status
	}
	return nil
}

func (f *fakeSalaryRepo) Delete(_ context.Context, id string) error {
	for key, rec := range f.byPeriod {
		if rec.ID == id {
			delete(f.byPeriod, key)
			delete(f.statuses, id)
			return nil
		}
	}
	return salary.ErrSalaryRecordNotFound
}

func newTestService(empRepo *fakeEmployeeRepo, attRepo *fakeAttendanceRepo, polRepo *fakePolicyRepo, salRepo *fakeSalaryRepo) *Service {
	resolver := policyservice.NewResolver(polRepo, empRepo)
	return NewService(
		empRepo,
		attRepo,
		&fakeLeaveRepo{},
		&fakeHolidayRepo{},
		salRepo,
		resolver,
	)
}

func seededEmployee(id string) employee.Employee {
	joined := time.Date(2022, time.June, 1, 0, 0, 0, 0, time.UTC)
	return employee.Employee{
		ID:           id,
		EmployeeCode: "EMP-" + id,
		FullName:     "Employee " + id,
		JoiningDate:  &joined,
		IsActive:     true,
	}
}

func salaryPolicy(employeeID string, offered int64) dompolicy.EmployeePolicy {
	amount := decimal.NewFromInt(offered)
	return dompolicy.EmployeePolicy{
		EmployeeID:        employeeID,
		UseGlobalSettings: true,
		SalaryOffered:     &amount,
	}
}

func TestCalculateEmployeeSalary_PersistsRecord(t *testing.T) {
	ctx := context.Background()
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{"e1": seededEmployee("e1")}}
	attRepo := &fakeAttendanceRepo{records: map[string][]attendance.Attendance{"e1": fullAttendance()}}
	polRepo := &fakePolicyRepo{employee: map[string]dompolicy.EmployeePolicy{"e1": salaryPolicy("e1", 30000)}}
	salRepo := newFakeSalaryRepo()
	svc := newTestService(empRepo, attRepo, polRepo, salRepo)

	rec, err := svc.CalculateEmployeeSalary(ctx, "e1", 9, 2025, "admin-1", nil)

	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "admin-1", rec.CalculatedBy)
	assert.True(t, decimal.NewFromInt(30000).Equal(rec.GrossSalary), "got %s", rec.GrossSalary)

	stored, err := salRepo.GetByEmployeePeriod(ctx, "e1", 9, 2025)
	require.NoError(t, err)
	assert.Equal(t, rec, stored)
}

func TestCalculateEmployeeSalary_RecalculationOverwrites(t *testing.T) {
	ctx := context.Background()
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{"e1": seededEmployee("e1")}}
	attRepo := &fakeAttendanceRepo{records: map[string][]attendance.Attendance{"e1": fullAttendance()}}
	polRepo := &fakePolicyRepo{employee: map[string]dompolicy.EmployeePolicy{"e1": salaryPolicy("e1", 30000)}}
	salRepo := newFakeSalaryRepo()
	svc := newTestService(empRepo, attRepo, polRepo, salRepo)

	first, err := svc.CalculateEmployeeSalary(ctx, "e1", 9, 2025, "admin-1", nil)
	require.NoError(t, err)

	// A raise lands, then the period is recalculated.
	polRepo.employee["e1"] = salaryPolicy("e1", 33000)
	second, err := svc.CalculateEmployeeSalary(ctx, "e1", 9, 2025, "admin-1", nil)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, decimal.NewFromInt(33000).Equal(second.GrossSalary), "got %s", second.GrossSalary)

	count, err := salRepo.CountByPeriod(ctx, 9, 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCalculateEmployeeSalary_InvalidPeriod(t *testing.T) {
	svc := newTestService(&fakeEmployeeRepo{}, &fakeAttendanceRepo{}, &fakePolicyRepo{}, newFakeSalaryRepo())

	_, err := svc.CalculateEmployeeSalary(context.Background(), "e1", 13, 2025, "admin-1", nil)
	assert.ErrorIs(t, err, salary.ErrInvalidPeriod)

	_, err = svc.CalculateEmployeeSalary(context.Background(), "e1", 1, 1999, "admin-1", nil)
	assert.ErrorIs(t, err, salary.ErrInvalidPeriod)
}

func TestCalculateEmployeeSalary_UnknownEmployee(t *testing.T) {
	svc := newTestService(&fakeEmployeeRepo{employees: map[string]employee.Employee{}}, &fakeAttendanceRepo{}, &fakePolicyRepo{}, newFakeSalaryRepo())

	_, err := svc.CalculateEmployeeSalary(context.Background(), "ghost", 9, 2025, "admin-1", nil)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCalculateForAllEmployees_FailureDoesNotAbortBatch(t *testing.T) {
	ctx := context.Background()
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"e1": seededEmployee("e1"),
		"e2": seededEmployee("e2"),
		"e3": seededEmployee("e3"),
	}}
	attRepo := &fakeAttendanceRepo{
		records: map[string][]attendance.Attendance{
			"e1": fullAttendance(),
			"e3": fullAttendance(),
		},
		err: map[string]error{"e2": fmt.Errorf("import feed corrupted")},
	}
	polRepo := &fakePolicyRepo{employee: map[string]dompolicy.EmployeePolicy{
		"e1": salaryPolicy("e1", 30000),
		"e2": salaryPolicy("e2", 30000),
		"e3": salaryPolicy("e3", 45000),
	}}
	salRepo := newFakeSalaryRepo()
	svc := newTestService(empRepo, attRepo, polRepo, salRepo)

	result, err := svc.CalculateForAllEmployees(ctx, 9, 2025, "admin-1")

	require.NoError(t, err)
	assert.Len(t, result.Calculated, 2)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "e2", result.Failures[0].EmployeeID)
	assert.Contains(t, result.Failures[0].Error, "import feed corrupted")
}

func TestApproveAndMarkPaid_WorkflowGuards(t *testing.T) {
	ctx := context.Background()
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{"e1": seededEmployee("e1")}}
	attRepo := &fakeAttendanceRepo{records: map[string][]attendance.Attendance{"e1": fullAttendance()}}
	polRepo := &fakePolicyRepo{employee: map[string]dompolicy.EmployeePolicy{"e1": salaryPolicy("e1", 30000)}}
	salRepo := newFakeSalaryRepo()
	svc := newTestService(empRepo, attRepo, polRepo, salRepo)

	rec, err := svc.CalculateEmployeeSalary(ctx, "e1", 9, 2025, "admin-1", nil)
	require.NoError(t, err)

	req := salary.StatusUpdateRequest{RecordIDs: []string{rec.ID}}
	require.NoError(t, svc.Approve(ctx, req, "admin-1"))
	require.NoError(t, svc.MarkPaid(ctx, req, "admin-1"))

	// Paid records are terminal.
	err = svc.Approve(ctx, req, "admin-1")
	assert.ErrorIs(t, err, salary.ErrRecordAlreadyPaid)
}

func TestStatusUpdate_EmptyIDsRejected(t *testing.T) {
	svc := newTestService(&fakeEmployeeRepo{}, &fakeAttendanceRepo{}, &fakePolicyRepo{}, newFakeSalaryRepo())

	err := svc.Approve(context.Background(), salary.StatusUpdateRequest{}, "admin-1")
	assert.Error(t, err)
}
