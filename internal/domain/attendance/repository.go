package attendance

import "context"

type AttendanceRepository interface {
	// GetByEmployeeAndMonth returns every attendance record for the employee
	// within the given calendar month, ordered by date.
	GetByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) ([]Attendance, error)
}
