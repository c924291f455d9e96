package repositories

import (
	"context"

	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves one employee, or apperrors.ErrNotFound.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves all employees in creation order.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)

	// CountEmployees returns the number of stored employees.
	CountEmployees(ctx context.Context) (int, error)

	// CountDependents returns, per record kind, how many rows reference the employee.
	// Kinds without rows are omitted.
	CountDependents(ctx context.Context, employeeID string) (map[string]int, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee inserts a new employee.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateEmployee applies changes and returns the stored row, or apperrors.ErrNotFound.
	UpdateEmployee(ctx context.Context, employeeID string, changes domain.EmployeeChanges) (*domain.Employee, error)

	// DeleteEmployee hard-deletes an employee, or returns apperrors.ErrNotFound.
	DeleteEmployee(ctx context.Context, employeeID string) error

	// SeedEmployees inserts employees only when the collection is empty and
	// returns how many were inserted.
	SeedEmployees(ctx context.Context, employees []domain.Employee) (int, error)
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
