package postgresql

import (
	"context"
	"fmt"

	"github.com/peoplekit/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplekit/hrms-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID string, month, year int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, raw_status, hours_worked, overtime_hours,
			   clock_in, clock_out, remarks, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1
		  AND EXTRACT(MONTH FROM date) = $2
		  AND EXTRACT(YEAR FROM date) = $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.RawStatus, &a.HoursWorked, &a.OvertimeHours,
			&a.ClockIn, &a.ClockOut, &a.Remarks, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, a)
	}
	return result, rows.Err()
}
