package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/saliheu/KAMU-AKYS/internal/domain/leave"
	"github.com/saliheu/KAMU-AKYS/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if request.ID == "" {
		request.ID = uuid.NewString()
	}

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type,
			start_date, end_date, total_days,
			reason, is_half_day, half_day_period, substitute_id,
			status, submitted_at,
			created_at, updated_at
		) VALUES (
			$1, $2, $3,
			$4, $5, $6,
			$7, $8, $9, $10,
			$11, NOW(),
			NOW(), NOW()
		) RETURNING submitted_at, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.LeaveType,
		request.StartDate, request.EndDate, request.TotalDays,
		request.Reason, request.IsHalfDay, request.HalfDayPeriod, request.SubstituteID,
		request.Status,
	).Scan(&request.SubmittedAt, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type,
	lr.start_date, lr.end_date, lr.total_days,
	lr.reason, lr.is_half_day, lr.half_day_period, lr.substitute_id,
	lr.status, lr.approved_by, lr.approved_at, lr.rejection_reason,
	lr.submitted_at, lr.created_at, lr.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name
`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.LeaveType,
		&req.StartDate, &req.EndDate, &req.TotalDays,
		&req.Reason, &req.IsHalfDay, &req.HalfDayPeriod, &req.SubstituteID,
		&req.Status, &req.ApprovedBy, &req.ApprovedAt, &req.RejectionReason,
		&req.SubmittedAt, &req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return req, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		WHERE lr.id = $1
	`
	return scanLeaveRequest(q.QueryRow(ctx, query, id))
}

func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, filter leave.MyLeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{"lr.employee_id = $1"}
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.Status != nil && *filter.Status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.LeaveType != nil && *filter.LeaveType != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.leave_type = $%d", argIdx))
		args = append(args, *filter.LeaveType)
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.start_date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil && *filter.EndDate != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.end_date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	whereClause := strings.Join(whereClauses, " AND ")

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM leave_requests lr
		WHERE %s
	`, whereClause)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, leaveRequestColumns, whereClause, orderByClause(filter.SortBy, filter.SortOrder), argIdx, argIdx+1)

	args = append(args, limit, offset)

	return r.queryRequests(ctx, q, query, args, total)
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.EmployeeName != nil && *filter.EmployeeName != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("(e.first_name || ' ' || e.last_name) ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.EmployeeName+"%")
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.LeaveType != nil && *filter.LeaveType != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.leave_type = $%d", argIdx))
		args = append(args, *filter.LeaveType)
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.start_date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil && *filter.EndDate != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("lr.end_date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	whereClause := strings.Join(whereClauses, " AND ")

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		WHERE %s
	`, whereClause)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, leaveRequestColumns, whereClause, orderByClause(filter.SortBy, filter.SortOrder), argIdx, argIdx+1)

	args = append(args, limit, offset)

	return r.queryRequests(ctx, q, query, args, total)
}

func (r *leaveRequestRepositoryImpl) queryRequests(ctx context.Context, q database.Querier, query string, args []interface{}, total int64) ([]leave.LeaveRequest, int64, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, total, nil
}

func orderByClause(sortBy, sortOrder string) string {
	var column string
	switch sortBy {
	case "start_date":
		column = "lr.start_date"
	case "end_date":
		column = "lr.end_date"
	case "status":
		column = "lr.status"
	default:
		column = "lr.submitted_at"
	}

	if strings.EqualFold(sortOrder, "asc") {
		return column + " ASC"
	}
	return column + " DESC"
}

func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, update leave.StatusUpdate) error {
	q := GetQuerier(ctx, r.db)

	updates := []string{"status = $1", "updated_at = $2"}
	args := []interface{}{update.Status, time.Now()}
	argIdx := 3

	if update.ApprovedBy != nil {
		updates = append(updates, fmt.Sprintf("approved_by = $%d", argIdx))
		args = append(args, *update.ApprovedBy)
		argIdx++
	}
	if update.ApprovedAt != nil {
		updates = append(updates, fmt.Sprintf("approved_at = $%d", argIdx))
		args = append(args, *update.ApprovedAt)
		argIdx++
	}
	if update.RejectionReason != nil {
		updates = append(updates, fmt.Sprintf("rejection_reason = $%d", argIdx))
		args = append(args, *update.RejectionReason)
		argIdx++
	}

	args = append(args, update.ID)

	query := "UPDATE leave_requests SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING id", argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveRequestNotFound
		}
		return fmt.Errorf("failed to update leave request %s: %w", update.ID, err)
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) HasOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	// Inclusive interval intersection: existing.start <= candidate.end AND
	// existing.end >= candidate.start.
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM leave_requests
			WHERE employee_id = $1
			AND status IN ('pending', 'approved')
			AND start_date <= $3
			AND end_date >= $2
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, startDate, endDate).Scan(&exists)

	return exists, err
}

func (r *leaveRequestRepositoryImpl) SumDaysByStatus(ctx context.Context, employeeID string, leaveType leave.LeaveType, status leave.LeaveStatus, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(total_days), 0)
		FROM leave_requests
		WHERE employee_id = $1
		AND leave_type = $2
		AND status = $3
		AND EXTRACT(YEAR FROM start_date) = $4
	`

	var total int
	err := q.QueryRow(ctx, query, employeeID, leaveType, status, year).Scan(&total)
	return total, err
}
