package response

import (
	"errors"
	"net/http"

	"github.com/peoplekit/hrms-backend-go/internal/domain/employee"
	"github.com/peoplekit/hrms-backend-go/internal/domain/policy"
	"github.com/peoplekit/hrms-backend-go/internal/domain/salary"
	"github.com/peoplekit/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Policy domain errors
	case errors.Is(err, policy.ErrPolicyConfigNotFound):
		NotFound(w, "Policy configuration not found")
	case errors.Is(err, policy.ErrEmployeePolicyNotFound):
		NotFound(w, "Employee policy not found")
	case errors.Is(err, policy.ErrInvalidTierTable):
		BadRequest(w, "Weekend deduction tiers are invalid", nil)

	// Salary domain errors
	case errors.Is(err, salary.ErrSalaryRecordNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, salary.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, salary.ErrRecordValidation):
		ValidationError(w, map[string]string{"record": "Salary record failed validation"})
	case errors.Is(err, salary.ErrRecordAlreadyPaid):
		Conflict(w, "Salary record already marked as paid")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
