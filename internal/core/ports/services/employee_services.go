package services

import (
	"context"

	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	"github.com/SscSPs/leave_tracker_app/internal/dto"
)

// EmployeeReaderSvc defines read operations for employees
type EmployeeReaderSvc interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for employees
type EmployeeWriterSvc interface {
	// CreateEmployee stores a new employee, filling defaults and a palette colour.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)

	// UpdateEmployee applies a partial update.
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)

	// DeleteEmployee removes an employee that no record references.
	DeleteEmployee(ctx context.Context, employeeID string) error
}

// RosterSeederSvc seeds the default team on first boot
type RosterSeederSvc interface {
	SeedDefaultRoster(ctx context.Context) (int, error)
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
	RosterSeederSvc
}
