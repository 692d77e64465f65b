package salary

import (
	"testing"
	"time"

	"github.com/peoplekit/hrms-backend-go/internal/domain/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatesInMonth_CoversWholeMonth(t *testing.T) {
	dates := DatesInMonth(2025, time.September)

	require.Len(t, dates, 30)
	assert.Equal(t, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC), dates[29])
}

func TestDatesInMonth_LeapFebruary(t *testing.T) {
	assert.Len(t, DatesInMonth(2024, time.February), 29)
	assert.Len(t, DatesInMonth(2025, time.February), 28)
}

func TestSundaysInMonth(t *testing.T) {
	// September 2025 starts on a Monday.
	sundays := SundaysInMonth(2025, time.September)

	require.Len(t, sundays, 4)
	days := []int{sundays[0].Day(), sundays[1].Day(), sundays[2].Day(), sundays[3].Day()}
	assert.Equal(t, []int{7, 14, 21, 28}, days)
}

func TestNthWeekday_MissingOccurrence(t *testing.T) {
	// September 2025 has only four Saturdays.
	_, ok := NthWeekday(2025, time.September, time.Saturday, 5)
	assert.False(t, ok)

	d, ok := NthWeekday(2025, time.September, time.Saturday, 1)
	require.True(t, ok)
	assert.Equal(t, 6, d.Day())
}

func TestNthWeekday_RejectsNonPositiveN(t *testing.T) {
	_, ok := NthWeekday(2025, time.September, time.Saturday, 0)
	assert.False(t, ok)
}

func TestSaturdaysOffByPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern policy.SaturdayPattern
		days    []int
	}{
		{"first and third", policy.SaturdayPattern1st3rd, []int{6, 20}},
		{"second and fourth", policy.SaturdayPattern2nd4th, []int{13, 27}},
		{"all", policy.SaturdayPatternAll, []int{6, 13, 20, 27}},
		{"none", policy.SaturdayPatternNone, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := SaturdaysOffByPattern(2025, time.September, tt.pattern)
			var days []int
			for _, d := range dates {
				days = append(days, d.Day())
			}
			assert.Equal(t, tt.days, days)
		})
	}
}

func TestNonWorkingDates_DeduplicatesAndClips(t *testing.T) {
	// A public holiday landing on a Sunday must not count twice, and a
	// holiday outside the month must be dropped.
	holidayOnSunday := time.Date(2025, time.September, 7, 0, 0, 0, 0, time.UTC)
	holidayOutside := time.Date(2025, time.October, 2, 0, 0, 0, 0, time.UTC)

	set := NonWorkingDates(2025, time.September, policy.SaturdayPattern1st3rd,
		[]time.Time{holidayOnSunday, holidayOutside}, nil)

	// 4 Sundays + 2 off-Saturdays, holiday collapsed into Sunday.
	assert.Len(t, set, 6)
	_, ok := set["2025-09-07"]
	assert.True(t, ok)
	_, ok = set["2025-10-02"]
	assert.False(t, ok)
}
