package leave

import "time"

type LeaveType string

const (
	TypeEarned     LeaveType = "earned"
	TypeSick       LeaveType = "sick"
	TypeAdditional LeaveType = "additional"
	TypeSpecial    LeaveType = "special"
)

type LeaveStatus string

const (
	StatusApproved LeaveStatus = "approved"
	StatusPending  LeaveStatus = "pending"
	StatusRejected LeaveStatus = "rejected"
)

// LeaveRecord covers an inclusive date span. Only approved records count
// toward monthly usage.
type LeaveRecord struct {
	ID         string
	EmployeeID string
	Type       LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Status     LeaveStatus
	Reason     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
