package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	// GetApprovedOverlapping returns approved leave records whose span
	// overlaps [start, end] for the employee.
	GetApprovedOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]LeaveRecord, error)
}
