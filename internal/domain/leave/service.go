package leave

import "context"

type LeaveService interface {
	CreateLeaveRequest(ctx context.Context, employeeID string, req CreateLeaveRequestRequest) (LeaveRequest, error)
	GetLeaveRequest(ctx context.Context, viewerID, requestID string) (LeaveRequest, error)
	CancelLeaveRequest(ctx context.Context, employeeID, requestID string) (LeaveRequest, error)
	WithdrawLeaveRequest(ctx context.Context, employeeID, requestID string) (LeaveRequest, error)
	ApproveLeaveRequest(ctx context.Context, approverID, requestID string) (LeaveRequest, error)
	RejectLeaveRequest(ctx context.Context, approverID, requestID, reason string) (LeaveRequest, error)
	ListMyLeaveRequests(ctx context.Context, employeeID string, filter MyLeaveRequestFilter) ([]LeaveRequest, int64, error)
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	GetBalances(ctx context.Context, employeeID string, year int) ([]LeaveBalance, error)
}
