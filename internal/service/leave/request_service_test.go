package leave

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saliheu/KAMU-AKYS/internal/domain/employee"
	"github.com/saliheu/KAMU-AKYS/internal/domain/leave"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range employees {
		repo.employees[e.ID] = e
	}
	return repo
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	r.employees[e.ID] = e
	return e, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, e := range r.employees {
		if e.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEmployeeRepo) ExistsByTCNo(_ context.Context, tcNo string) (bool, error) {
	for _, e := range r.employees {
		if e.TCNo == tcNo {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEmployeeRepo) ExistsByEmployeeCode(_ context.Context, code string) (bool, error) {
	for _, e := range r.employees {
		if e.EmployeeCode == code {
			return true, nil
		}
	}
	return false, nil
}

type fakeLeaveRequestRepo struct {
	requests map[string]leave.LeaveRequest
	nextID   int
}

func newFakeLeaveRequestRepo(requests ...leave.LeaveRequest) *fakeLeaveRequestRepo {
	repo := &fakeLeaveRequestRepo{requests: make(map[string]leave.LeaveRequest)}
	for _, r := range requests {
		repo.requests[r.ID] = r
	}
	return repo
}

func (r *fakeLeaveRequestRepo) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.nextID++
	request.ID = fmt.Sprintf("request-%d", r.nextID)
	request.SubmittedAt = time.Now()
	r.requests[request.ID] = request
	return request, nil
}

func (r *fakeLeaveRequestRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (r *fakeLeaveRequestRepo) ListByEmployee(_ context.Context, employeeID string, _ leave.MyLeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	var result []leave.LeaveRequest
	for _, request := range r.requests {
		if request.EmployeeID == employeeID {
			result = append(result, request)
		}
	}
	return result, int64(len(result)), nil
}

func (r *fakeLeaveRequestRepo) List(_ context.Context, _ leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	var result []leave.LeaveRequest
	for _, request := range r.requests {
		result = append(result, request)
	}
	return result, int64(len(result)), nil
}

func (r *fakeLeaveRequestRepo) UpdateStatus(_ context.Context, update leave.StatusUpdate) error {
	request, ok := r.requests[update.ID]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	request.Status = update.Status
	if update.ApprovedBy != nil {
		request.ApprovedBy = update.ApprovedBy
	}
	if update.ApprovedAt != nil {
		request.ApprovedAt = update.ApprovedAt
	}
	if update.RejectionReason != nil {
		request.RejectionReason = update.RejectionReason
	}
	r.requests[update.ID] = request
	return nil
}

func (r *fakeLeaveRequestRepo) HasOverlapping(_ context.Context, employeeID string, startDate, endDate time.Time) (bool, error) {
	for _, request := range r.requests {
		if request.EmployeeID != employeeID {
			continue
		}
		if request.Status != leave.LeaveStatusPending && request.Status != leave.LeaveStatusApproved {
			continue
		}
		if !request.StartDate.After(endDate) && !request.EndDate.Before(startDate) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLeaveRequestRepo) SumDaysByStatus(_ context.Context, employeeID string, leaveType leave.LeaveType, status leave.LeaveStatus, year int) (int, error) {
	total := 0
	for _, request := range r.requests {
		if request.EmployeeID == employeeID && request.LeaveType == leaveType &&
			request.Status == status && request.StartDate.Year() == year {
			total += request.TotalDays
		}
	}
	return total, nil
}

// fakeTransactor runs the function directly, without a database transaction.
type fakeTransactor struct{}

func (fakeTransactor) InSerializableTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testEmployee(id string, role employee.Role) employee.Employee {
	return employee.Employee{
		ID:                     id,
		Email:                  id + "@example.gov.tr",
		FirstName:              "Test",
		LastName:               "Employee",
		Role:                   role,
		AnnualLeaveEntitlement: employee.DefaultAnnualLeaveEntitlement,
		SickLeaveEntitlement:   employee.DefaultSickLeaveEntitlement,
		IsActive:               true,
	}
}

func newTestService(leaveRepo *fakeLeaveRequestRepo, employeeRepo *fakeEmployeeRepo) *RequestService {
	return NewRequestService(fakeTransactor{}, leaveRepo, employeeRepo)
}

func TestCreateLeaveRequest(t *testing.T) {
	ctx := context.Background()
	emp := testEmployee("emp-1", employee.RoleEmployee)

	t.Run("creates pending request with weekday count", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRequestRepo(), newFakeEmployeeRepo(emp))

		created, err := svc.CreateLeaveRequest(ctx, emp.ID, leave.CreateLeaveRequestRequest{
			LeaveType: string(leave.LeaveTypeAnnual),
			StartDate: "2030-06-03",
			EndDate:   "2030-06-07",
			Reason:    "family visit",
		})

		require.NoError(t, err)
		assert.Equal(t, leave.LeaveStatusPending, created.Status)
		assert.Equal(t, 5, created.TotalDays)
		assert.Equal(t, emp.ID, created.EmployeeID)
		assert.NotEmpty(t, created.ID)
	})

	t.Run("half day charges one day", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRequestRepo(), newFakeEmployeeRepo(emp))
		period := string(leave.HalfDayMorning)

		created, err := svc.CreateLeaveRequest(ctx, emp.ID, leave.CreateLeaveRequestRequest{
			LeaveType:     string(leave.LeaveTypeAnnual),
			StartDate:     "2030-06-03",
			EndDate:       "2030-06-03",
			Reason:        "appointment",
			IsHalfDay:     true,
			HalfDayPeriod: &period,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, created.TotalDays)
		require.NotNil(t, created.HalfDayPeriod)
		assert.Equal(t, leave.HalfDayMorning, *created.HalfDayPeriod)
	})

	t.Run("rejects end date before start date", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRequestRepo(), newFakeEmployeeRepo(emp))

		_, err := svc.CreateLeaveRequest(ctx, emp.ID, leave.CreateLeaveRequestRequest{
			LeaveType: string(leave.LeaveTypeAnnual),
			StartDate: "2030-06-07",
			EndDate:   "2030-06-03",
			Reason:    "typo",
		})

		assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
	})

	t.Run("rejects overlap with pending request", func(t *testing.T) {
		existing := leave.LeaveRequest{
			ID:         "request-existing",
			EmployeeID: emp.ID,
			LeaveType:  leave.LeaveTypeAnnual,
			StartDate:  date("2030-06-05"),
			EndDate:    date("2030-06-10"),
			TotalDays:  4,
			Status:     leave.LeaveStatusPending,
		}
		svc := newTestService(newFakeLeaveRequestRepo(existing), newFakeEmployeeRepo(emp))

		_, err := svc.CreateLeaveRequest(ctx, emp.ID, leave.CreateLeaveRequestRequest{
			LeaveType: string(leave.LeaveTypeSick),
			StartDate: "2030-06-03",
			EndDate:   "2030-06-05",
			Reason:    "flu",
		})

		assert.ErrorIs(t, err, leave.ErrOverlappingRequest)
	})

	t.Run("ignores overlap with rejected request", func(t *testing.T) {
		existing := leave.LeaveRequest{
			ID:         "request-existing",
			EmployeeID: emp.ID,
			LeaveType:  leave.LeaveTypeAnnual,
			StartDate:  date("2030-06-03"),
			EndDate:    date("2030-06-07"),
			TotalDays:  5,
			Status:     leave.LeaveStatusRejected,
		}
		svc := newTestService(newFakeLeaveRequestRepo(existing), newFakeEmployeeRepo(emp))

		_, err := svc.CreateLeaveRequest(ctx, emp.ID, leave.CreateLeaveRequestRequest{
			LeaveType: string(leave.LeaveTypeAnnual),
			StartDate: "2030-06-03",
			EndDate:   "2030-06-07",
			Reason:    "retry after rejection",
		})

		assert.NoError(t, err)
	})

	t.Run("rejects request exceeding available balance", func(t *testing.T) {
		// 10 of the 14 annual days already approved this year.
		used := leave.LeaveRequest{
			ID:         "request-used",
			EmployeeID: emp.ID,
			LeaveType:  leave.LeaveTypeAnnual,
			StartDate:  date("2030-03-04"),
			EndDate:    date("2030-03-15"),
			TotalDays:  10,
			Status:     leave.LeaveStatusApproved,
		}
		svc := newTestService(newFakeLeaveRequestRepo(used), newFakeEmployeeRepo(emp))

		_, err := svc.CreateLeaveRequest(ctx, emp.ID, leave.CreateLeaveRequestRequest{
			LeaveType: string(leave.LeaveTypeAnnual),
			StartDate: "2030-06-03",
			EndDate:   "2030-06-07",
			Reason:    "five days, four available",
		})

		var balanceErr *leave.InsufficientBalanceError
		require.ErrorAs(t, err, &balanceErr)
		assert.Equal(t, 4, balanceErr.Available)
		assert.Equal(t, 5, balanceErr.Requested)
	})

	t.Run("allows request equal to available balance", func(t *testing.T) {
		used := leave.LeaveRequest{
			ID:         "request-used",
			EmployeeID: emp.ID,
			LeaveType:  leave.LeaveTypeAnnual,
			StartDate:  date("2030-03-04"),
			EndDate:    date("2030-03-15"),
			TotalDays:  10,
			Status:     leave.LeaveStatusApproved,
		}
		svc := newTestService(newFakeLeaveRequestRepo(used), newFakeEmployeeRepo(emp))

		created, err := svc.CreateLeaveRequest(ctx, emp.ID, leave.CreateLeaveRequestRequest{
			LeaveType: string(leave.LeaveTypeAnnual),
			StartDate: "2030-06-03",
			EndDate:   "2030-06-06",
			Reason:    "exactly four days",
		})

		require.NoError(t, err)
		assert.Equal(t, 4, created.TotalDays)
	})

	t.Run("skips balance check for unpaid leave", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRequestRepo(), newFakeEmployeeRepo(emp))

		created, err := svc.CreateLeaveRequest(ctx, emp.ID, leave.CreateLeaveRequestRequest{
			LeaveType: string(leave.LeaveTypeUnpaid),
			StartDate: "2030-06-03",
			EndDate:   "2030-07-12",
			Reason:    "long unpaid leave",
		})

		require.NoError(t, err)
		assert.Equal(t, 30, created.TotalDays)
	})

	t.Run("rejects unknown substitute", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRequestRepo(), newFakeEmployeeRepo(emp))
		substitute := "emp-missing"

		_, err := svc.CreateLeaveRequest(ctx, emp.ID, leave.CreateLeaveRequestRequest{
			LeaveType:    string(leave.LeaveTypeAnnual),
			StartDate:    "2030-06-03",
			EndDate:      "2030-06-04",
			Reason:       "with substitute",
			SubstituteID: &substitute,
		})

		assert.ErrorIs(t, err, leave.ErrSubstituteNotFound)
	})

	t.Run("rejects unknown employee", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRequestRepo(), newFakeEmployeeRepo(emp))

		_, err := svc.CreateLeaveRequest(ctx, "emp-missing", leave.CreateLeaveRequestRequest{
			LeaveType: string(leave.LeaveTypeAnnual),
			StartDate: "2030-06-03",
			EndDate:   "2030-06-04",
			Reason:    "no such employee",
		})

		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestGetLeaveRequest(t *testing.T) {
	ctx := context.Background()

	managerID := "emp-manager"
	owner := testEmployee("emp-owner", employee.RoleEmployee)
	owner.ManagerID = &managerID
	manager := testEmployee(managerID, employee.RoleManager)
	otherManager := testEmployee("emp-other-manager", employee.RoleManager)
	hr := testEmployee("emp-hr", employee.RoleHR)
	admin := testEmployee("emp-admin", employee.RoleAdmin)
	colleague := testEmployee("emp-colleague", employee.RoleEmployee)

	request := leave.LeaveRequest{
		ID:         "request-1",
		EmployeeID: owner.ID,
		LeaveType:  leave.LeaveTypeAnnual,
		StartDate:  date("2030-06-03"),
		EndDate:    date("2030-06-07"),
		TotalDays:  5,
		Status:     leave.LeaveStatusPending,
	}

	svc := newTestService(
		newFakeLeaveRequestRepo(request),
		newFakeEmployeeRepo(owner, manager, otherManager, hr, admin, colleague),
	)

	tests := []struct {
		name     string
		viewerID string
		allowed  bool
	}{
		{"owner", owner.ID, true},
		{"direct manager", manager.ID, true},
		{"hr", hr.ID, true},
		{"admin", admin.ID, true},
		{"manager of another team", otherManager.ID, false},
		{"unrelated colleague", colleague.ID, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetLeaveRequest(ctx, tt.viewerID, request.ID)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, request.ID, got.ID)
			} else {
				assert.ErrorIs(t, err, leave.ErrUnauthorizedAccess)
			}
		})
	}

	t.Run("unknown request", func(t *testing.T) {
		_, err := svc.GetLeaveRequest(ctx, owner.ID, "request-missing")
		assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
	})
}

func TestCancelLeaveRequest(t *testing.T) {
	ctx := context.Background()
	emp := testEmployee("emp-1", employee.RoleEmployee)
	other := testEmployee("emp-2", employee.RoleEmployee)

	futureRequest := func(status leave.LeaveStatus, startOffsetDays int) leave.LeaveRequest {
		start := time.Now().AddDate(0, 0, startOffsetDays)
		return leave.LeaveRequest{
			ID:         "request-1",
			EmployeeID: emp.ID,
			LeaveType:  leave.LeaveTypeAnnual,
			StartDate:  time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location()),
			EndDate:    time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location()).AddDate(0, 0, 2),
			TotalDays:  3,
			Status:     status,
		}
	}

	t.Run("cancels pending request before start", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRequestRepo(futureRequest(leave.LeaveStatusPending, 7)), newFakeEmployeeRepo(emp))

		cancelled, err := svc.CancelLeaveRequest(ctx, emp.ID, "request-1")

		require.NoError(t, err)
		assert.Equal(t, leave.LeaveStatusCancelled, cancelled.Status)
	})

	t.Run("cancels approved request before start", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRequestRepo(futureRequest(leave.LeaveStatusApproved, 7)), newFakeEmployeeRepo(emp))

		cancelled, err := svc.CancelLeaveRequest(ctx, emp.ID, "request-1")

		require.NoError(t, err)
		assert.Equal(t, leave.LeaveStatusCancelled, cancelled.Status)
	})

	t.Run("rejects cancel on start day", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRequestRepo(futureRequest(leave.LeaveStatusApproved, 0)), newFakeEmployeeRepo(emp))

		_, err := svc.CancelLeaveRequest(ctx, emp.ID, "request-1")

		assert.ErrorIs(t, err, leave.ErrLeaveAlreadyStarted)
	})

	t.Run("rejects cancel after start", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRequestRepo(futureRequest(leave.LeaveStatusApproved, -1)), newFakeEmployeeRepo(emp))

		_, err := svc.CancelLeaveRequest(ctx, emp.ID, "request-1")

		assert.ErrorIs(t, err, leave.ErrLeaveAlreadyStarted)
	})

	t.Run("rejects cancel of rejected request", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRequestRepo(futureRequest(leave.LeaveStatusRejected, 7)), newFakeEmployeeRepo(emp))

		_, err := svc.CancelLeaveRequest(ctx, emp.ID, "request-1")

		assert.ErrorIs(t, err, leave.ErrNotCancellable)
	})

	t.Run("rejects cancel by non-owner", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRequestRepo(futureRequest(leave.LeaveStatusPending, 7)), newFakeEmployeeRepo(emp, other))

		_, err := svc.CancelLeaveRequest(ctx, other.ID, "request-1")

		assert.ErrorIs(t, err, leave.ErrNotOwner)
	})
}

func TestWithdrawLeaveRequest(t *testing.T) {
	ctx := context.Background()
	emp := testEmployee("emp-1", employee.RoleEmployee)
	other := testEmployee("emp-2", employee.RoleEmployee)

	request := func(status leave.LeaveStatus) leave.LeaveRequest {
		return leave.LeaveRequest{
			ID:         "request-1",
			EmployeeID: emp.ID,
			LeaveType:  leave.LeaveTypeAnnual,
			StartDate:  date("2030-06-03"),
			EndDate:    date("2030-06-07"),
			TotalDays:  5,
			Status:     status,
		}
	}

	t.Run("withdraws pending request", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRequestRepo(request(leave.LeaveStatusPending)), newFakeEmployeeRepo(emp))

		withdrawn, err := svc.WithdrawLeaveRequest(ctx, emp.ID, "request-1")

		require.NoError(t, err)
		assert.Equal(t, leave.LeaveStatusWithdrawn, withdrawn.Status)
	})

	t.Run("rejects withdrawal of approved request", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRequestRepo(request(leave.LeaveStatusApproved)), newFakeEmployeeRepo(emp))

		_, err := svc.WithdrawLeaveRequest(ctx, emp.ID, "request-1")

		assert.ErrorIs(t, err, leave.ErrNotWithdrawable)
	})

	t.Run("rejects withdrawal by non-owner", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRequestRepo(request(leave.LeaveStatusPending)), newFakeEmployeeRepo(emp, other))

		_, err := svc.WithdrawLeaveRequest(ctx, other.ID, "request-1")

		assert.ErrorIs(t, err, leave.ErrNotOwner)
	})
}

func TestApproveLeaveRequest(t *testing.T) {
	ctx := context.Background()

	managerID := "emp-manager"
	owner := testEmployee("emp-owner", employee.RoleEmployee)
	owner.ManagerID = &managerID
	manager := testEmployee(managerID, employee.RoleManager)
	otherManager := testEmployee("emp-other-manager", employee.RoleManager)
	hr := testEmployee("emp-hr", employee.RoleHR)
	colleague := testEmployee("emp-colleague", employee.RoleEmployee)

	pending := func() leave.LeaveRequest {
		return leave.LeaveRequest{
			ID:         "request-1",
			EmployeeID: owner.ID,
			LeaveType:  leave.LeaveTypeAnnual,
			StartDate:  date("2030-06-03"),
			EndDate:    date("2030-06-07"),
			TotalDays:  5,
			Status:     leave.LeaveStatusPending,
		}
	}

	repo := func(r leave.LeaveRequest) (*fakeLeaveRequestRepo, *fakeEmployeeRepo) {
		return newFakeLeaveRequestRepo(r), newFakeEmployeeRepo(owner, manager, otherManager, hr, colleague)
	}

	t.Run("hr approves any request", func(t *testing.T) {
		svc := newTestService(repo(pending()))

		approved, err := svc.ApproveLeaveRequest(ctx, hr.ID, "request-1")

		require.NoError(t, err)
		assert.Equal(t, leave.LeaveStatusApproved, approved.Status)
		require.NotNil(t, approved.ApprovedBy)
		assert.Equal(t, hr.ID, *approved.ApprovedBy)
		assert.NotNil(t, approved.ApprovedAt)
	})

	t.Run("direct manager approves report's request", func(t *testing.T) {
		svc := newTestService(repo(pending()))

		approved, err := svc.ApproveLeaveRequest(ctx, manager.ID, "request-1")

		require.NoError(t, err)
		assert.Equal(t, leave.LeaveStatusApproved, approved.Status)
	})

	t.Run("manager of another team cannot approve", func(t *testing.T) {
		svc := newTestService(repo(pending()))

		_, err := svc.ApproveLeaveRequest(ctx, otherManager.ID, "request-1")

		assert.ErrorIs(t, err, leave.ErrApprovalNotAllowed)
	})

	t.Run("regular employee cannot approve", func(t *testing.T) {
		svc := newTestService(repo(pending()))

		_, err := svc.ApproveLeaveRequest(ctx, colleague.ID, "request-1")

		assert.ErrorIs(t, err, leave.ErrApprovalNotAllowed)
	})

	t.Run("already approved request cannot be approved again", func(t *testing.T) {
		processed := pending()
		processed.Status = leave.LeaveStatusApproved
		svc := newTestService(repo(processed))

		_, err := svc.ApproveLeaveRequest(ctx, hr.ID, "request-1")

		assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
	})
}

func TestRejectLeaveRequest(t *testing.T) {
	ctx := context.Background()

	owner := testEmployee("emp-owner", employee.RoleEmployee)
	hr := testEmployee("emp-hr", employee.RoleHR)

	pending := leave.LeaveRequest{
		ID:         "request-1",
		EmployeeID: owner.ID,
		LeaveType:  leave.LeaveTypeAnnual,
		StartDate:  date("2030-06-03"),
		EndDate:    date("2030-06-07"),
		TotalDays:  5,
		Status:     leave.LeaveStatusPending,
	}

	t.Run("rejects with reason", func(t *testing.T) {
		svc := newTestService(newFakeLeaveRequestRepo(pending), newFakeEmployeeRepo(owner, hr))

		rejected, err := svc.RejectLeaveRequest(ctx, hr.ID, "request-1", "staffing shortage")

		require.NoError(t, err)
		assert.Equal(t, leave.LeaveStatusRejected, rejected.Status)
		require.NotNil(t, rejected.RejectionReason)
		assert.Equal(t, "staffing shortage", *rejected.RejectionReason)
	})

	t.Run("withdrawn request cannot be rejected", func(t *testing.T) {
		withdrawn := pending
		withdrawn.Status = leave.LeaveStatusWithdrawn
		svc := newTestService(newFakeLeaveRequestRepo(withdrawn), newFakeEmployeeRepo(owner, hr))

		_, err := svc.RejectLeaveRequest(ctx, hr.ID, "request-1", "too late")

		assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
	})
}

func TestGetBalances(t *testing.T) {
	ctx := context.Background()
	emp := testEmployee("emp-1", employee.RoleEmployee)

	approved := leave.LeaveRequest{
		ID:         "request-approved",
		EmployeeID: emp.ID,
		LeaveType:  leave.LeaveTypeAnnual,
		StartDate:  date("2030-03-04"),
		EndDate:    date("2030-03-08"),
		TotalDays:  5,
		Status:     leave.LeaveStatusApproved,
	}
	pending := leave.LeaveRequest{
		ID:         "request-pending",
		EmployeeID: emp.ID,
		LeaveType:  leave.LeaveTypeAnnual,
		StartDate:  date("2030-06-03"),
		EndDate:    date("2030-06-05"),
		TotalDays:  3,
		Status:     leave.LeaveStatusPending,
	}
	lastYear := leave.LeaveRequest{
		ID:         "request-last-year",
		EmployeeID: emp.ID,
		LeaveType:  leave.LeaveTypeAnnual,
		StartDate:  date("2029-06-04"),
		EndDate:    date("2029-06-08"),
		TotalDays:  5,
		Status:     leave.LeaveStatusApproved,
	}

	svc := newTestService(newFakeLeaveRequestRepo(approved, pending, lastYear), newFakeEmployeeRepo(emp))

	balances, err := svc.GetBalances(ctx, emp.ID, 2030)
	require.NoError(t, err)
	require.Len(t, balances, 2)

	byType := make(map[leave.LeaveType]leave.LeaveBalance)
	for _, b := range balances {
		byType[b.LeaveType] = b
	}

	annual := byType[leave.LeaveTypeAnnual]
	assert.Equal(t, 14, annual.Entitlement)
	assert.Equal(t, 5, annual.Used)
	assert.Equal(t, 3, annual.Pending)
	assert.Equal(t, 9, annual.Available)

	sick := byType[leave.LeaveTypeSick]
	assert.Equal(t, 10, sick.Entitlement)
	assert.Equal(t, 0, sick.Used)
	assert.Equal(t, 0, sick.Pending)
	assert.Equal(t, 10, sick.Available)
}

func TestCreateLeaveRequest_TransactionFailure(t *testing.T) {
	ctx := context.Background()
	emp := testEmployee("emp-1", employee.RoleEmployee)

	failure := errors.New("serialization failure")
	svc := NewRequestService(failingTransactor{err: failure}, newFakeLeaveRequestRepo(), newFakeEmployeeRepo(emp))

	_, err := svc.CreateLeaveRequest(ctx, emp.ID, leave.CreateLeaveRequestRequest{
		LeaveType: string(leave.LeaveTypeAnnual),
		StartDate: "2030-06-03",
		EndDate:   "2030-06-04",
		Reason:    "doomed",
	})

	assert.ErrorIs(t, err, failure)
}

type failingTransactor struct {
	err error
}

func (t failingTransactor) InSerializableTx(context.Context, func(ctx context.Context) error) error {
	return t.err
}
