package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeCode(ctx context.Context, code string) (Employee, error)
	GetAllActive(ctx context.Context) ([]Employee, error)
}
