package salary

import "errors"

var (
	ErrSalaryRecordNotFound = errors.New("salary record not found")
	ErrInvalidPeriod        = errors.New("invalid payroll period")
	ErrRecordValidation     = errors.New("salary record failed persistence validation")
	ErrRecordAlreadyPaid    = errors.New("salary record already paid, cannot modify")
)
