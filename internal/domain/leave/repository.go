package leave

import (
	"context"
	"time"
)

// StatusUpdate carries a status transition for persistence. Fields other than
// ID and Status are written only when non-nil.
type StatusUpdate struct {
	ID              string
	Status          LeaveStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
}

// LeaveRequestRepository - interface for the leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID string, filter MyLeaveRequestFilter) ([]LeaveRequest, int64, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	UpdateStatus(ctx context.Context, update StatusUpdate) error

	// HasOverlapping reports whether the employee has a pending or approved
	// request whose inclusive date range intersects [startDate, endDate].
	HasOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error)

	// SumDaysByStatus totals chargeable days of the employee's requests of
	// the given type and status whose start date falls in year.
	SumDaysByStatus(ctx context.Context, employeeID string, leaveType LeaveType, status LeaveStatus, year int) (int, error)
}
