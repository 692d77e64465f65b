package salary

import (
	"time"

	"github.com/peoplekit/hrms-backend-go/internal/domain/policy"
)

const dateKeyLayout = "2006-01-02"

// DatesInMonth returns every calendar date of the month in order, normalized
// to midnight UTC.
func DatesInMonth(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	n := daysIn(year, month)
	dates := make([]time.Time, 0, n)
	for d := 0; d < n; d++ {
		dates = append(dates, first.AddDate(0, 0, d))
	}
	return dates
}

// SundaysInMonth returns every Sunday of the month.
func SundaysInMonth(year int, month time.Month) []time.Time {
	var sundays []time.Time
	for _, d := range DatesInMonth(year, month) {
		if d.Weekday() == time.Sunday {
			sundays = append(sundays, d)
		}
	}
	return sundays
}

// NthWeekday returns the nth occurrence (1-based) of the weekday in the month.
// ok is false when the occurrence does not exist, e.g. a fifth Saturday in a
// four-Saturday month.
func NthWeekday(year int, month time.Month, weekday time.Weekday, n int) (time.Time, bool) {
	if n < 1 {
		return time.Time{}, false
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	day := 1 + offset + (n-1)*7
	if day > daysIn(year, month) {
		return time.Time{}, false
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
}

// SaturdaysOffByPattern resolves the configured Saturday-off pattern to
// concrete dates.
func SaturdaysOffByPattern(year int, month time.Month, pattern policy.SaturdayPattern) []time.Time {
	switch pattern {
	case policy.SaturdayPattern1st3rd:
		return nthSaturdays(year, month, 1, 3)
	case policy.SaturdayPattern2nd4th:
		return nthSaturdays(year, month, 2, 4)
	case policy.SaturdayPatternAll:
		var all []time.Time
		for _, d := range DatesInMonth(year, month) {
			if d.Weekday() == time.Saturday {
				all = append(all, d)
			}
		}
		return all
	default:
		return nil
	}
}

func nthSaturdays(year int, month time.Month, ns ...int) []time.Time {
	var dates []time.Time
	for _, n := range ns {
		if d, ok := NthWeekday(year, month, time.Saturday, n); ok {
			dates = append(dates, d)
		}
	}
	return dates
}

// NonWorkingDates is the set of unpaid-when-absent calendar dates for working
// day counting: Sundays, pattern off-Saturdays, public holidays and the
// employee's approved restricted holidays. Dates outside the month are
// dropped; overlaps (a holiday on a Sunday) collapse into one entry. Keys use
// the ISO date format.
func NonWorkingDates(year int, month time.Month, pattern policy.SaturdayPattern, holidayDates []time.Time, restrictedDates []time.Time) map[string]struct{} {
	set := make(map[string]struct{})
	for _, d := range SundaysInMonth(year, month) {
		set[d.Format(dateKeyLayout)] = struct{}{}
	}
	for _, d := range SaturdaysOffByPattern(year, month, pattern) {
		set[d.Format(dateKeyLayout)] = struct{}{}
	}
	for _, d := range holidayDates {
		if d.Year() == year && d.Month() == month {
			set[d.Format(dateKeyLayout)] = struct{}{}
		}
	}
	for _, d := range restrictedDates {
		if d.Year() == year && d.Month() == month {
			set[d.Format(dateKeyLayout)] = struct{}{}
		}
	}
	return set
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
