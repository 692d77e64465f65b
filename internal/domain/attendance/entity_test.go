package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
	}{
		{"Present", StatusPresent},
		{"present", StatusPresent},
		{"WeeklyOff Present", StatusPresent},
		{"WFH", StatusWFH},
		{"WFH Present", StatusWFH},
		{"Work From Home", StatusWFH},
		{"Absent", StatusAbsent},
		{"Absent (No OutPunch)", StatusAbsentNoPunch},
		{"Absent (No InPunch)", StatusAbsentNoPunch},
		{"Leave", StatusLeave},
		{"Sick Leave", StatusLeave},
		{"Holiday", StatusHoliday},
		{"WeeklyOff", StatusWeeklyOff},
		{"Week Off", StatusWeeklyOff},
		{"", StatusAbsent},
		{"garbage value", StatusAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStatus(tt.raw), "raw %q", tt.raw)
		})
	}
}

func TestStatus_CountsAsWorked(t *testing.T) {
	assert.True(t, StatusPresent.CountsAsWorked())
	assert.True(t, StatusWFH.CountsAsWorked())
	assert.False(t, StatusLeave.CountsAsWorked())
	assert.False(t, StatusAbsent.CountsAsWorked())
	assert.False(t, StatusHoliday.CountsAsWorked())
	assert.False(t, StatusWeeklyOff.CountsAsWorked())
	assert.False(t, StatusAbsentNoPunch.CountsAsWorked())
}

func TestIsEmergencyWFH(t *testing.T) {
	emergency := "Emergency - internet down at office"
	casual := "planned remote day"

	assert.True(t, Attendance{Status: StatusWFH, Remarks: &emergency}.IsEmergencyWFH())
	assert.False(t, Attendance{Status: StatusWFH, Remarks: &casual}.IsEmergencyWFH())
	assert.False(t, Attendance{Status: StatusWFH}.IsEmergencyWFH())
	// Remarks on a non-WFH day do not count.
	assert.False(t, Attendance{Status: StatusPresent, Remarks: &emergency}.IsEmergencyWFH())
}

func TestHasMissedPunch(t *testing.T) {
	now := time.Now()

	assert.True(t, Attendance{Status: StatusAbsentNoPunch}.HasMissedPunch())
	assert.True(t, Attendance{Status: StatusPresent}.HasMissedPunch())
	assert.False(t, Attendance{Status: StatusPresent, ClockIn: &now}.HasMissedPunch())
	assert.False(t, Attendance{Status: StatusPresent, ClockIn: &now, ClockOut: &now}.HasMissedPunch())
	// Leave or absence without punches is not a punch violation.
	assert.False(t, Attendance{Status: StatusLeave}.HasMissedPunch())
	assert.False(t, Attendance{Status: StatusAbsent}.HasMissedPunch())
}
