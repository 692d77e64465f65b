package salary

import "context"

type SalaryRepository interface {
	// Upsert writes the record keyed by (employee_id, month, year),
	// overwriting any previous record in full.
	Upsert(ctx context.Context, record SalaryRecord) (SalaryRecord, error)
	GetByID(ctx context.Context, id string) (SalaryRecord, error)
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (SalaryRecord, error)
	ListByPeriod(ctx context.Context, month, year int) ([]SalaryRecord, error)
	CountByPeriod(ctx context.Context, month, year int) (int64, error)
	// UpdateStatus moves records through the approval/payment workflow. It
	// never touches the computed financial columns.
	UpdateStatus(ctx context.Context, ids []string, status SalaryStatus, actorID string) error
	Delete(ctx context.Context, id string) error
}
