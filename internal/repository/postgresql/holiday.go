package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplekit/hrms-backend-go/internal/domain/holiday"
	"github.com/peoplekit/hrms-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) GetPublicInRange(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, type, date, created_at, updated_at
		FROM holidays
		WHERE type = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, holiday.TypePublic, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	var result []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Type, &h.Date, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		result = append(result, h)
	}
	return result, rows.Err()
}

func (r *holidayRepository) GetApprovedRestrictedDates(ctx context.Context, employeeID string, start, end time.Time) ([]time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT h.date
		FROM holidays h
		JOIN restricted_holiday_requests rhr ON rhr.holiday_id = h.id
		WHERE h.type = $1
		  AND rhr.employee_id = $2
		  AND rhr.status = $3
		  AND h.date BETWEEN $4 AND $5
		ORDER BY h.date
	`

	rows, err := q.Query(ctx, query, holiday.TypeRestricted, employeeID, holiday.RequestApproved, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query restricted holidays: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan restricted holiday date: %w", err)
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}
