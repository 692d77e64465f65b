package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplekit/hrms-backend-go/internal/domain/leave"
	"github.com/peoplekit/hrms-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) GetApprovedOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	// Span overlap: starts on or before the window end and ends on or after
	// the window start.
	query := `
		SELECT id, employee_id, type, start_date, end_date, status, reason, created_at, updated_at
		FROM leave_records
		WHERE employee_id = $1
		  AND status = $2
		  AND start_date <= $3
		  AND end_date >= $4
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID, leave.StatusApproved, end, start)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave records: %w", err)
	}
	defer rows.Close()

	var result []leave.LeaveRecord
	for rows.Next() {
		var l leave.LeaveRecord
		if err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.Type, &l.StartDate, &l.EndDate, &l.Status, &l.Reason,
			&l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave record: %w", err)
		}
		result = append(result, l)
	}
	return result, rows.Err()
}
