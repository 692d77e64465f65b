package employee

import (
	"time"
)

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Email        string
	Designation  *string
	// JoiningDate drives probation evaluation. A nil joining date is treated
	// as probationary by the policy resolver.
	JoiningDate *time.Time
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
