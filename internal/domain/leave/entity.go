package leave

import "time"

type LeaveType string

const (
	LeaveTypeAnnual         LeaveType = "annual"
	LeaveTypeSick           LeaveType = "sick"
	LeaveTypeMaternity      LeaveType = "maternity"
	LeaveTypePaternity      LeaveType = "paternity"
	LeaveTypeMarriage       LeaveType = "marriage"
	LeaveTypeBereavement    LeaveType = "bereavement"
	LeaveTypeUnpaid         LeaveType = "unpaid"
	LeaveTypeAdministrative LeaveType = "administrative"
	LeaveTypeOther          LeaveType = "other"
)

var leaveTypes = map[LeaveType]bool{
	LeaveTypeAnnual:         true,
	LeaveTypeSick:           true,
	LeaveTypeMaternity:      true,
	LeaveTypePaternity:      true,
	LeaveTypeMarriage:       true,
	LeaveTypeBereavement:    true,
	LeaveTypeUnpaid:         true,
	LeaveTypeAdministrative: true,
	LeaveTypeOther:          true,
}

func (t LeaveType) Valid() bool {
	return leaveTypes[t]
}

// HasBalance reports whether the type is charged against a yearly
// entitlement. All other types are granted without a balance check.
func (t LeaveType) HasBalance() bool {
	return t == LeaveTypeAnnual || t == LeaveTypeSick
}

type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "pending"
	LeaveStatusApproved  LeaveStatus = "approved"
	LeaveStatusRejected  LeaveStatus = "rejected"
	LeaveStatusCancelled LeaveStatus = "cancelled"
	LeaveStatusWithdrawn LeaveStatus = "withdrawn"
)

// CanTransitionTo enforces the one-directional status machine: a pending
// request may be approved, rejected, cancelled or withdrawn; an approved
// request may only be cancelled. All other statuses are terminal.
func (s LeaveStatus) CanTransitionTo(next LeaveStatus) bool {
	switch s {
	case LeaveStatusPending:
		return next == LeaveStatusApproved || next == LeaveStatusRejected ||
			next == LeaveStatusCancelled || next == LeaveStatusWithdrawn
	case LeaveStatusApproved:
		return next == LeaveStatusCancelled
	default:
		return false
	}
}

type HalfDayPeriod string

const (
	HalfDayMorning   HalfDayPeriod = "morning"
	HalfDayAfternoon HalfDayPeriod = "afternoon"
)

// LeaveRequest entity
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType

	StartDate time.Time
	EndDate   time.Time

	// Chargeable days counted against the balance: weekdays in the inclusive
	// range, or exactly 1 for a half-day request.
	TotalDays int

	Reason        string
	IsHalfDay     bool
	HalfDayPeriod *HalfDayPeriod
	SubstituteID  *string

	Status          LeaveStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joins (for responses)
	EmployeeName *string
}

// LeaveBalance is the derived ledger view for one leave type and year:
// available = entitlement - used, where used is the sum of chargeable days of
// currently approved requests.
type LeaveBalance struct {
	LeaveType   LeaveType `json:"leave_type"`
	Year        int       `json:"year"`
	Entitlement int       `json:"entitlement"`
	Used        int       `json:"used"`
	Pending     int       `json:"pending"`
	Available   int       `json:"available"`
}
