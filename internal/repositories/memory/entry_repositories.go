package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/leave_tracker_app/internal/apperrors"
	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/leave_tracker_app/internal/core/ports/repositories"
)

type overtimeRepository struct {
	store *Store
}

var _ portsrepo.OvertimeRepositoryFacade = (*overtimeRepository)(nil)

func (r *overtimeRepository) SaveOvertime(_ context.Context, entry domain.OvertimeEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.employees[entry.EmployeeID]; !ok {
		return apperrors.InvalidEmployee()
	}
	r.store.overtime[entry.ID] = entry
	return nil
}

func (r *overtimeRepository) ListOvertime(_ context.Context) ([]domain.OvertimeEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return sortedValues(r.store.overtime, func(a, b domain.OvertimeEntry) bool {
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.CreatedAt.Before(b.CreatedAt)
	}), nil
}

func (r *overtimeRepository) DeleteOvertime(_ context.Context, overtimeID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.overtime[overtimeID]; !ok {
		return fmt.Errorf("overtime %s: %w", overtimeID, apperrors.ErrNotFound)
	}
	delete(r.store.overtime, overtimeID)
	return nil
}

type leaveTypeRepository struct {
	store *Store
}

var _ portsrepo.LeaveTypeRepositoryFacade = (*leaveTypeRepository)(nil)

func (r *leaveTypeRepository) SaveLeaveType(_ context.Context, entry domain.LeaveTypeEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.employees[entry.EmployeeID]; !ok {
		return apperrors.InvalidEmployee()
	}
	r.store.leaveTypes[entry.ID] = entry
	return nil
}

func (r *leaveTypeRepository) ListLeaveTypes(_ context.Context) ([]domain.LeaveTypeEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return sortedValues(r.store.leaveTypes, func(a, b domain.LeaveTypeEntry) bool {
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.CreatedAt.Before(b.CreatedAt)
	}), nil
}

func (r *leaveTypeRepository) DeleteLeaveType(_ context.Context, leaveTypeID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.leaveTypes[leaveTypeID]; !ok {
		return fmt.Errorf("leave type %s: %w", leaveTypeID, apperrors.ErrNotFound)
	}
	delete(r.store.leaveTypes, leaveTypeID)
	return nil
}
