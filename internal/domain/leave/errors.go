package leave

import (
	"errors"
	"fmt"
)

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidDateRange     = errors.New("end date cannot be before start date")
	ErrOverlappingRequest   = errors.New("you already have a leave request for these dates")
	ErrSubstituteNotFound   = errors.New("substitute employee not found")

	ErrNotOwner           = errors.New("you can only modify your own leave requests")
	ErrUnauthorizedAccess = errors.New("you don't have access to this leave request")
	ErrApprovalNotAllowed = errors.New("you are not allowed to decide on this leave request")

	ErrAlreadyProcessed    = errors.New("leave request already processed")
	ErrNotCancellable      = errors.New("this leave request cannot be cancelled")
	ErrLeaveAlreadyStarted = errors.New("cannot cancel leave that has already started")
	ErrNotWithdrawable     = errors.New("only pending leave requests can be withdrawn")
)

// InsufficientBalanceError carries the numeric available balance so the
// caller can surface it.
type InsufficientBalanceError struct {
	LeaveType LeaveType
	Requested int
	Available int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient leave balance. Available: %d days", e.Available)
}
