package employee

import "context"

// EmployeeRepository - interface for the employees table
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByTCNo(ctx context.Context, tcNo string) (bool, error)
	ExistsByEmployeeCode(ctx context.Context, code string) (bool, error)
}
