package attendance

import (
	"strings"
	"time"
)

// Status is the closed attendance classification. Raw status strings coming
// from the punch-import layer are free text ("Present", "WeeklyOff Present",
// "Absent (No OutPunch)"); ClassifyStatus decides the enum once at ingestion
// and everything downstream matches on the enum.
type Status string

const (
	StatusPresent       Status = "present"
	StatusAbsent        Status = "absent"
	StatusLeave         Status = "leave"
	StatusWFH           Status = "wfh"
	StatusHoliday       Status = "holiday"
	StatusWeeklyOff     Status = "weekly_off"
	StatusAbsentNoPunch Status = "absent_no_punch"
)

// ClassifyStatus maps a raw attendance status string to a Status. The order of
// the checks preserves the legacy substring semantics: "wfh" wins over
// "present" ("WFH Present"), and a missing-punch absence is distinguished from
// a plain absence.
func ClassifyStatus(raw string) Status {
	s := strings.ToLower(raw)
	switch {
	case strings.Contains(s, "wfh"), strings.Contains(s, "work from home"):
		return StatusWFH
	case strings.Contains(s, "present"):
		return StatusPresent
	case strings.Contains(s, "absent") && strings.Contains(s, "punch"):
		return StatusAbsentNoPunch
	case strings.Contains(s, "absent"):
		return StatusAbsent
	case strings.Contains(s, "leave"):
		return StatusLeave
	case strings.Contains(s, "holiday"):
		return StatusHoliday
	case strings.Contains(s, "weeklyoff"), strings.Contains(s, "weekly off"), strings.Contains(s, "week off"):
		return StatusWeeklyOff
	default:
		return StatusAbsent
	}
}

// CountsAsWorked reports whether the day contributes presence and worked hours.
func (s Status) CountsAsWorked() bool {
	return s == StatusPresent || s == StatusWFH
}

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	// RawStatus keeps the original import string for audit.
	RawStatus     string
	HoursWorked   float64
	OvertimeHours float64
	ClockIn       *time.Time
	ClockOut      *time.Time
	Remarks       *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsEmergencyWFH reports whether a WFH day was flagged as emergency in the
// remarks. Anything else counts as casual WFH.
func (a Attendance) IsEmergencyWFH() bool {
	if a.Status != StatusWFH || a.Remarks == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*a.Remarks), "emergency")
}

// HasMissedPunch reports a worked day with neither clock-in nor clock-out, or
// a status that explicitly flags the missing punch.
func (a Attendance) HasMissedPunch() bool {
	if a.Status == StatusAbsentNoPunch {
		return true
	}
	if !a.Status.CountsAsWorked() {
		return false
	}
	return a.ClockIn == nil && a.ClockOut == nil
}
