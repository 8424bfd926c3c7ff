package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/saliheu/KAMU-AKYS/internal/domain/auth"
	"github.com/saliheu/KAMU-AKYS/internal/domain/employee"
	"github.com/saliheu/KAMU-AKYS/internal/pkg/jwt"
)

type Service struct {
	employeeRepository employee.EmployeeRepository
	jwtService         jwt.Service
}

func NewService(employeeRepository employee.EmployeeRepository, jwtService jwt.Service) *Service {
	return &Service{
		employeeRepository: employeeRepository,
		jwtService:         jwtService,
	}
}

var _ auth.AuthService = (*Service)(nil)

func (s *Service) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	exists, err := s.employeeRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return auth.AuthResponse{}, employee.ErrEmailExists
	}

	exists, err = s.employeeRepository.ExistsByTCNo(ctx, req.TCNo)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to check identity number: %w", err)
	}
	if exists {
		return auth.AuthResponse{}, employee.ErrTCNoExists
	}

	exists, err = s.employeeRepository.ExistsByEmployeeCode(ctx, req.EmployeeCode)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to check employee code: %w", err)
	}
	if exists {
		return auth.AuthResponse{}, employee.ErrEmployeeCodeExists
	}

	if req.ManagerID != nil {
		if _, err := s.employeeRepository.GetByID(ctx, *req.ManagerID); err != nil {
			return auth.AuthResponse{}, fmt.Errorf("failed to get manager: %w", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	hireDate, err := time.Parse(time.DateOnly, req.HireDate)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to parse hire date: %w", err)
	}

	emp := employee.Employee{
		TCNo:                   req.TCNo,
		Email:                  req.Email,
		PasswordHash:           string(hash),
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		EmployeeCode:           req.EmployeeCode,
		Role:                   employee.RoleEmployee,
		Department:             req.Department,
		ManagerID:              req.ManagerID,
		Phone:                  req.Phone,
		Position:               req.Position,
		HireDate:               hireDate,
		AnnualLeaveEntitlement: employee.DefaultAnnualLeaveEntitlement,
		SickLeaveEntitlement:   employee.DefaultSickLeaveEntitlement,
		IsActive:               true,
	}

	created, err := s.employeeRepository.Create(ctx, emp)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return s.tokenResponse(created)
}

func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	emp, err := s.employeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	if !emp.IsActive {
		return auth.AuthResponse{}, auth.ErrAccountDisabled
	}

	return s.tokenResponse(emp)
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (auth.AuthResponse, error) {
	employeeID, err := s.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidToken
	}

	emp, err := s.employeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.AuthResponse{}, auth.ErrInvalidToken
		}
		return auth.AuthResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if !emp.IsActive {
		return auth.AuthResponse{}, auth.ErrAccountDisabled
	}

	return s.tokenResponse(emp)
}

func (s *Service) tokenResponse(emp employee.Employee) (auth.AuthResponse, error) {
	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(emp)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := s.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    expiresAt,
		Employee:     employee.ToResponse(emp),
	}, nil
}
