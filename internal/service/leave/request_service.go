package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/saliheu/KAMU-AKYS/internal/domain/employee"
	"github.com/saliheu/KAMU-AKYS/internal/domain/leave"
	"github.com/saliheu/KAMU-AKYS/internal/pkg/database"
)

type RequestService struct {
	tx database.Transactor
	leave.LeaveRequestRepository
	employee.EmployeeRepository
}

func NewRequestService(tx database.Transactor, leaveRequestRepository leave.LeaveRequestRepository, employeeRepository employee.EmployeeRepository) *RequestService {
	return &RequestService{
		tx:                     tx,
		LeaveRequestRepository: leaveRequestRepository,
		EmployeeRepository:     employeeRepository,
	}
}

var _ leave.LeaveService = (*RequestService)(nil)

func (s *RequestService) CreateLeaveRequest(ctx context.Context, employeeID string, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get employee: %w", err)
	}

	startDate, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to parse start date: %w", err)
	}

	endDate, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	if endDate.Before(startDate) {
		return leave.LeaveRequest{}, leave.ErrInvalidDateRange
	}

	if req.SubstituteID != nil {
		if _, err := s.EmployeeRepository.GetByID(ctx, *req.SubstituteID); err != nil {
			return leave.LeaveRequest{}, leave.ErrSubstituteNotFound
		}
	}

	leaveType := leave.LeaveType(req.LeaveType)
	totalDays := ChargeableDays(startDate, endDate, req.IsHalfDay)

	request := leave.LeaveRequest{
		EmployeeID:   emp.ID,
		LeaveType:    leaveType,
		StartDate:    startDate,
		EndDate:      endDate,
		TotalDays:    totalDays,
		Reason:       req.Reason,
		IsHalfDay:    req.IsHalfDay,
		SubstituteID: req.SubstituteID,
		Status:       leave.LeaveStatusPending,
	}
	if req.IsHalfDay && req.HalfDayPeriod != nil {
		period := leave.HalfDayPeriod(*req.HalfDayPeriod)
		request.HalfDayPeriod = &period
	}

	// The overlap check, the balance check and the insert run in one
	// serializable transaction so two concurrent requests for overlapping
	// dates cannot both pass the checks.
	var created leave.LeaveRequest
	err = s.tx.InSerializableTx(ctx, func(txCtx context.Context) error {
		hasOverlap, err := s.LeaveRequestRepository.HasOverlapping(txCtx, emp.ID, startDate, endDate)
		if err != nil {
			return fmt.Errorf("failed to check overlapping leave requests: %w", err)
		}
		if hasOverlap {
			return leave.ErrOverlappingRequest
		}

		if leaveType.HasBalance() {
			available, err := s.availableBalance(txCtx, emp, leaveType, startDate.Year())
			if err != nil {
				return err
			}
			if totalDays > available {
				return &leave.InsufficientBalanceError{
					LeaveType: leaveType,
					Requested: totalDays,
					Available: available,
				}
			}
		}

		created, err = s.LeaveRequestRepository.Create(txCtx, request)
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return created, nil
}

func (s *RequestService) GetLeaveRequest(ctx context.Context, viewerID, requestID string) (leave.LeaveRequest, error) {
	viewer, err := s.EmployeeRepository.GetByID(ctx, viewerID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get viewer: %w", err)
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if request.EmployeeID == viewer.ID || viewer.IsHR() {
		return request, nil
	}

	// Direct manager of the owner may view; the check is single level only.
	owner, err := s.EmployeeRepository.GetByID(ctx, request.EmployeeID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get request owner: %w", err)
	}
	if viewer.IsManagerOf(&owner) {
		return request, nil
	}

	return leave.LeaveRequest{}, leave.ErrUnauthorizedAccess
}

func (s *RequestService) CancelLeaveRequest(ctx context.Context, employeeID, requestID string) (leave.LeaveRequest, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if request.EmployeeID != employeeID {
		return leave.LeaveRequest{}, leave.ErrNotOwner
	}

	if !request.Status.CanTransitionTo(leave.LeaveStatusCancelled) {
		return leave.LeaveRequest{}, leave.ErrNotCancellable
	}

	// Leave that has begun, or begins today, cannot be cancelled.
	if !request.StartDate.After(startOfToday(request.StartDate.Location())) {
		return leave.LeaveRequest{}, leave.ErrLeaveAlreadyStarted
	}

	update := leave.StatusUpdate{
		ID:     request.ID,
		Status: leave.LeaveStatusCancelled,
	}
	if err := s.LeaveRequestRepository.UpdateStatus(ctx, update); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	request.Status = leave.LeaveStatusCancelled
	return request, nil
}

func (s *RequestService) WithdrawLeaveRequest(ctx context.Context, employeeID, requestID string) (leave.LeaveRequest, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if request.EmployeeID != employeeID {
		return leave.LeaveRequest{}, leave.ErrNotOwner
	}

	if request.Status != leave.LeaveStatusPending {
		return leave.LeaveRequest{}, leave.ErrNotWithdrawable
	}

	update := leave.StatusUpdate{
		ID:     request.ID,
		Status: leave.LeaveStatusWithdrawn,
	}
	if err := s.LeaveRequestRepository.UpdateStatus(ctx, update); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	request.Status = leave.LeaveStatusWithdrawn
	return request, nil
}

func (s *RequestService) ApproveLeaveRequest(ctx context.Context, approverID, requestID string) (leave.LeaveRequest, error) {
	request, approver, err := s.loadForDecision(ctx, approverID, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	approvedAt := time.Now()
	update := leave.StatusUpdate{
		ID:         request.ID,
		Status:     leave.LeaveStatusApproved,
		ApprovedBy: &approver.ID,
		ApprovedAt: &approvedAt,
	}
	if err := s.LeaveRequestRepository.UpdateStatus(ctx, update); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	request.Status = leave.LeaveStatusApproved
	request.ApprovedBy = &approver.ID
	request.ApprovedAt = &approvedAt
	return request, nil
}

func (s *RequestService) RejectLeaveRequest(ctx context.Context, approverID, requestID, reason string) (leave.LeaveRequest, error) {
	request, approver, err := s.loadForDecision(ctx, approverID, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	rejectedAt := time.Now()
	update := leave.StatusUpdate{
		ID:              request.ID,
		Status:          leave.LeaveStatusRejected,
		ApprovedBy:      &approver.ID,
		ApprovedAt:      &rejectedAt,
		RejectionReason: &reason,
	}
	if err := s.LeaveRequestRepository.UpdateStatus(ctx, update); err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	request.Status = leave.LeaveStatusRejected
	request.ApprovedBy = &approver.ID
	request.ApprovedAt = &rejectedAt
	request.RejectionReason = &reason
	return request, nil
}

// loadForDecision fetches a pending request and verifies the approver may
// decide on it: HR and admin always, a manager only for direct reports.
func (s *RequestService) loadForDecision(ctx context.Context, approverID, requestID string) (leave.LeaveRequest, employee.Employee, error) {
	approver, err := s.EmployeeRepository.GetByID(ctx, approverID)
	if err != nil {
		return leave.LeaveRequest{}, employee.Employee{}, fmt.Errorf("failed to get approver: %w", err)
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, employee.Employee{}, err
	}

	if !approver.CanApprove() {
		return leave.LeaveRequest{}, employee.Employee{}, leave.ErrApprovalNotAllowed
	}
	if !approver.IsHR() {
		owner, err := s.EmployeeRepository.GetByID(ctx, request.EmployeeID)
		if err != nil {
			return leave.LeaveRequest{}, employee.Employee{}, fmt.Errorf("failed to get request owner: %w", err)
		}
		if !approver.IsManagerOf(&owner) {
			return leave.LeaveRequest{}, employee.Employee{}, leave.ErrApprovalNotAllowed
		}
	}

	if request.Status != leave.LeaveStatusPending {
		return leave.LeaveRequest{}, employee.Employee{}, leave.ErrAlreadyProcessed
	}

	return request, approver, nil
}

func (s *RequestService) ListMyLeaveRequests(ctx context.Context, employeeID string, filter leave.MyLeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	return s.LeaveRequestRepository.ListByEmployee(ctx, employeeID, filter)
}

func (s *RequestService) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	return s.LeaveRequestRepository.List(ctx, filter)
}

func (s *RequestService) GetBalances(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	balances := make([]leave.LeaveBalance, 0, 2)
	for _, leaveType := range []leave.LeaveType{leave.LeaveTypeAnnual, leave.LeaveTypeSick} {
		used, err := s.LeaveRequestRepository.SumDaysByStatus(ctx, emp.ID, leaveType, leave.LeaveStatusApproved, year)
		if err != nil {
			return nil, fmt.Errorf("failed to sum approved days: %w", err)
		}
		pending, err := s.LeaveRequestRepository.SumDaysByStatus(ctx, emp.ID, leaveType, leave.LeaveStatusPending, year)
		if err != nil {
			return nil, fmt.Errorf("failed to sum pending days: %w", err)
		}

		entitlement := s.entitlement(emp, leaveType)
		balances = append(balances, leave.LeaveBalance{
			LeaveType:   leaveType,
			Year:        year,
			Entitlement: entitlement,
			Used:        used,
			Pending:     pending,
			Available:   entitlement - used,
		})
	}

	return balances, nil
}

// availableBalance derives the balance from the ledger: entitlement minus the
// sum of chargeable days across currently approved requests for the year.
func (s *RequestService) availableBalance(ctx context.Context, emp employee.Employee, leaveType leave.LeaveType, year int) (int, error) {
	used, err := s.LeaveRequestRepository.SumDaysByStatus(ctx, emp.ID, leaveType, leave.LeaveStatusApproved, year)
	if err != nil {
		return 0, fmt.Errorf("failed to sum approved days: %w", err)
	}
	return s.entitlement(emp, leaveType) - used, nil
}

func (s *RequestService) entitlement(emp employee.Employee, leaveType leave.LeaveType) int {
	switch leaveType {
	case leave.LeaveTypeAnnual:
		return emp.AnnualLeaveEntitlement
	case leave.LeaveTypeSick:
		return emp.SickLeaveEntitlement
	default:
		return 0
	}
}

func startOfToday(loc *time.Location) time.Time {
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
}
