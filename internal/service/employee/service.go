package employee

import (
	"context"
	"fmt"

	"github.com/saliheu/KAMU-AKYS/internal/domain/employee"
)

type Service struct {
	employeeRepository employee.EmployeeRepository
}

func NewService(employeeRepository employee.EmployeeRepository) *Service {
	return &Service{employeeRepository: employeeRepository}
}

func (s *Service) GetProfile(ctx context.Context, employeeID string) (employee.Employee, error) {
	emp, err := s.employeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}
