package employee

import "time"

type EmployeeResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	EmployeeCode string  `json:"employee_code"`
	Role         string  `json:"role"`
	Department   *string `json:"department,omitempty"`
	ManagerID    *string `json:"manager_id,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Position     *string `json:"position,omitempty"`
	HireDate     string  `json:"hire_date"`
	IsActive     bool    `json:"is_active"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		Email:        e.Email,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		EmployeeCode: e.EmployeeCode,
		Role:         string(e.Role),
		Department:   e.Department,
		ManagerID:    e.ManagerID,
		Phone:        e.Phone,
		Position:     e.Position,
		HireDate:     e.HireDate.Format(time.DateOnly),
		IsActive:     e.IsActive,
	}
}
