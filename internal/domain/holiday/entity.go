package holiday

import "time"

type HolidayType string

const (
	TypePublic     HolidayType = "PUBLIC"
	TypeRestricted HolidayType = "RESTRICTED"
)

// Holiday is a single-day holiday. PUBLIC holidays apply to everyone;
// RESTRICTED holidays apply only to employees with an approved request.
type Holiday struct {
	ID        string
	Name      string
	Type      HolidayType
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RequestStatus string

const (
	RequestApproved RequestStatus = "approved"
	RequestPending  RequestStatus = "pending"
	RequestRejected RequestStatus = "rejected"
)

type RestrictedHolidayRequest struct {
	ID         string
	EmployeeID string
	HolidayID  string
	Status     RequestStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
