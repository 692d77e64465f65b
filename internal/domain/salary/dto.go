package salary

import (
	"github.com/peoplekit/hrms-backend-go/internal/domain/policy"
	"github.com/peoplekit/hrms-backend-go/internal/pkg/validator"
)

type CalculateRequest struct {
	EmployeeID string            `json:"employee_id"`
	Month      int               `json:"month"`
	Year       int               `json:"year"`
	Overrides  *policy.Overrides `json:"overrides,omitempty"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CalculateAllRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *CalculateAllRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StatusUpdateRequest struct {
	RecordIDs []string `json:"record_ids"`
}

func (r *StatusUpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.RecordIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "record_ids", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CalculationFailure records a single employee's failure inside a batch run.
// Failures never abort the batch.
type CalculationFailure struct {
	EmployeeID string `json:"employee_id"`
	Error      string `json:"error"`
}

type BatchResult struct {
	Month      int                  `json:"month"`
	Year       int                  `json:"year"`
	Calculated []SalaryRecord       `json:"calculated"`
	Failures   []CalculationFailure `json:"failures"`
}
