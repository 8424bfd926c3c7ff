package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/saliheu/KAMU-AKYS/internal/domain/employee"
	"github.com/saliheu/KAMU-AKYS/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}

	query := `
		INSERT INTO employees (
			id, tc_no, email, password_hash, first_name, last_name,
			employee_code, role, department, manager_id, phone, position,
			hire_date, annual_leave_entitlement, sick_leave_entitlement,
			is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11, $12,
			$13, $14, $15,
			$16, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.TCNo, emp.Email, emp.PasswordHash, emp.FirstName, emp.LastName,
		emp.EmployeeCode, emp.Role, emp.Department, emp.ManagerID, emp.Phone, emp.Position,
		emp.HireDate, emp.AnnualLeaveEntitlement, emp.SickLeaveEntitlement,
		emp.IsActive,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

const employeeColumns = `
	id, tc_no, email, password_hash, first_name, last_name,
	employee_code, role, department, manager_id, phone, position,
	hire_date, annual_leave_entitlement, sick_leave_entitlement,
	is_active, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.TCNo, &emp.Email, &emp.PasswordHash, &emp.FirstName, &emp.LastName,
		&emp.EmployeeCode, &emp.Role, &emp.Department, &emp.ManagerID, &emp.Phone, &emp.Position,
		&emp.HireDate, &emp.AnnualLeaveEntitlement, &emp.SickLeaveEntitlement,
		&emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return scanEmployee(q.QueryRow(ctx, query, id))
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1`
	return scanEmployee(q.QueryRow(ctx, query, email))
}

func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE email = $1)`, email)
}

func (r *employeeRepositoryImpl) ExistsByTCNo(ctx context.Context, tcNo string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE tc_no = $1)`, tcNo)
}

func (r *employeeRepositoryImpl) ExistsByEmployeeCode(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE employee_code = $1)`, code)
}

func (r *employeeRepositoryImpl) exists(ctx context.Context, query string, arg interface{}) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, query, arg).Scan(&exists)
	return exists, err
}
