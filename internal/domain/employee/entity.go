package employee

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // Regular employee
	RoleManager  Role = "manager"  // Can approve leave for direct reports
	RoleHR       Role = "hr"       // Full access to leave administration
	RoleAdmin    Role = "admin"    // Full access
)

type Employee struct {
	ID           string
	TCNo         string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	EmployeeCode string
	Role         Role
	Department   *string
	ManagerID    *string
	Phone        *string
	Position     *string
	HireDate     time.Time

	// Yearly entitlements in days. Consumed days are never stored; they are
	// derived from approved leave requests.
	AnnualLeaveEntitlement int
	SickLeaveEntitlement   int

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Default yearly entitlements for newly registered employees.
const (
	DefaultAnnualLeaveEntitlement = 14
	DefaultSickLeaveEntitlement   = 10
)

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// IsHR checks if employee has HR-level access (HR or admin)
func (e *Employee) IsHR() bool {
	return e.Role == RoleHR || e.Role == RoleAdmin
}

// CanApprove checks if employee can approve leave requests
func (e *Employee) CanApprove() bool {
	return e.Role == RoleManager || e.IsHR()
}

// IsManagerOf reports whether e is the direct manager of other. The check is
// single level only, not transitive up the reporting chain.
func (e *Employee) IsManagerOf(other *Employee) bool {
	return other.ManagerID != nil && *other.ManagerID == e.ID
}
