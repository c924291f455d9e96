package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/leave_tracker_app/internal/apperrors"
	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/leave_tracker_app/internal/core/ports/repositories"
)

type employeeRepository struct {
	store *Store
}

var _ portsrepo.EmployeeRepositoryFacade = (*employeeRepository)(nil)

func (r *employeeRepository) FindEmployeeByID(_ context.Context, employeeID string) (*domain.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	e, ok := r.store.employees[employeeID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &e, nil
}

func (r *employeeRepository) ListEmployees(_ context.Context) ([]domain.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return sortedValues(r.store.employees, func(a, b domain.Employee) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	}), nil
}

func (r *employeeRepository) CountEmployees(_ context.Context) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return len(r.store.employees), nil
}

func (r *employeeRepository) CountDependents(_ context.Context, employeeID string) (map[string]int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.dependentsLocked(employeeID), nil
}

func (r *employeeRepository) SaveEmployee(_ context.Context, employee domain.Employee) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.employees[employee.ID]; exists {
		return fmt.Errorf("employee %s: %w", employee.ID, apperrors.ErrDuplicate)
	}
	r.store.employees[employee.ID] = employee
	return nil
}

func (r *employeeRepository) UpdateEmployee(_ context.Context, employeeID string, changes domain.EmployeeChanges) (*domain.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	e, ok := r.store.employees[employeeID]
	if !ok {
		return nil, fmt.Errorf("employee %s: %w", employeeID, apperrors.ErrNotFound)
	}
	e = changes.Apply(e)
	r.store.employees[employeeID] = e
	return &e, nil
}

func (r *employeeRepository) DeleteEmployee(_ context.Context, employeeID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.employees[employeeID]; !ok {
		return fmt.Errorf("employee %s: %w", employeeID, apperrors.ErrNotFound)
	}
	if deps := r.store.dependentsLocked(employeeID); len(deps) > 0 {
		return apperrors.HasDependentRecords(deps)
	}
	delete(r.store.employees, employeeID)
	return nil
}

func (r *employeeRepository) SeedEmployees(_ context.Context, employees []domain.Employee) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if len(r.store.employees) > 0 {
		return 0, nil
	}
	inserted := 0
	for _, e := range employees {
		if _, exists := r.store.employees[e.ID]; exists {
			continue
		}
		r.store.employees[e.ID] = e
		inserted++
	}
	return inserted, nil
}
