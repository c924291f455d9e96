package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/leave_tracker_app/internal/apperrors"
	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/leave_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/leave_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/leave_tracker_app/internal/dto"
	"github.com/google/uuid"
)

const employeeNotFoundMessage = "Temsilci bulunamadı"

type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
	roster       []domain.Employee
}

// NewEmployeeService creates a new employee service seeding roster on first boot
func NewEmployeeService(repo portsrepo.EmployeeRepositoryFacade, roster []domain.Employee, options ...ServiceOption) portssvc.EmployeeSvcFacade {
	svc := &employeeService{
		employeeRepo: repo,
		roster:       roster,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}
	return employees, nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	employee := domain.Employee{
		ID:        uuid.NewString(),
		Name:      req.Name,
		ShortName: req.ShortName,
		Position:  domain.PositionAgent,
		WorkType:  domain.WorkTypeOffice,
		Color:     req.Color,
		CreatedAt: s.Now(),
	}
	if req.Position != "" {
		employee.Position = domain.Position(req.Position)
	}
	if req.WorkType != "" {
		employee.WorkType = domain.WorkType(req.WorkType)
	}
	if employee.Color == "" {
		count, err := s.employeeRepo.CountEmployees(ctx)
		if err != nil {
			s.LogError(ctx, err, "Failed to count employees for palette colour")
			return nil, fmt.Errorf("failed to pick employee colour: %w", err)
		}
		employee.Color = domain.PaletteColor(count)
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to save employee", slog.String("employee_id", employee.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Employee created", slog.String("employee_id", employee.ID))
	return &employee, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	changes := req.ToChanges()
	if changes.IsEmpty() {
		return nil, apperrors.EmptyUpdate()
	}

	updated, err := s.employeeRepo.UpdateEmployee(ctx, employeeID, changes)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound(employeeNotFoundMessage)
		}
		s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Employee updated", slog.String("employee_id", employeeID))
	return updated, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	dependents, err := s.employeeRepo.CountDependents(ctx, employeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count employee dependents", slog.String("employee_id", employeeID))
		return err
	}
	if len(dependents) > 0 {
		appErr := apperrors.HasDependentRecords(dependents)
		s.LogWarn(ctx, appErr, "Employee still referenced", slog.String("employee_id", employeeID))
		return appErr
	}

	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFound(employeeNotFoundMessage)
		}
		if apperrors.KindOf(err) != apperrors.KindHasDependentRecords {
			s.LogError(ctx, err, "Failed to delete employee", slog.String("employee_id", employeeID))
		}
		return err
	}

	s.LogInfo(ctx, "Employee deleted", slog.String("employee_id", employeeID))
	return nil
}

// SeedDefaultRoster inserts the configured roster when no employee exists yet.
func (s *employeeService) SeedDefaultRoster(ctx context.Context) (int, error) {
	if len(s.roster) == 0 {
		return 0, nil
	}

	now := s.Now()
	employees := make([]domain.Employee, len(s.roster))
	for i, e := range s.roster {
		// Distinct timestamps keep the roster order in listings.
		e.CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
		employees[i] = e
	}

	inserted, err := s.employeeRepo.SeedEmployees(ctx, employees)
	if err != nil {
		s.LogError(ctx, err, "Failed to seed default roster")
		return 0, fmt.Errorf("failed to seed default roster: %w", err)
	}
	if inserted > 0 {
		s.LogInfo(ctx, "Default roster seeded", slog.Int("employees", inserted))
	}
	return inserted, nil
}
