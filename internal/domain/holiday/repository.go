package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	// GetPublicInRange returns PUBLIC holidays dated within [start, end].
	GetPublicInRange(ctx context.Context, start, end time.Time) ([]Holiday, error)
	// GetApprovedRestrictedDates returns the dates of RESTRICTED holidays
	// within [start, end] for which the employee has an approved request.
	GetApprovedRestrictedDates(ctx context.Context, employeeID string, start, end time.Time) ([]time.Time, error)
}
