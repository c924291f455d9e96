package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/leave_tracker_app/internal/apperrors"
	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/leave_tracker_app/internal/core/ports/repositories"
)

type leaveRepository struct {
	store *Store
}

var _ portsrepo.LeaveRepositoryFacade = (*leaveRepository)(nil)

func (r *leaveRepository) ScheduleLeave(_ context.Context, entry domain.LeaveEntry, admit portsrepo.AdmitFunc) error {
	if _, err := domain.ParseDate(entry.Date); err != nil {
		return apperrors.ValidationFailed(err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	day := domain.DaySnapshot{Date: entry.Date}
	for _, l := range r.store.leaves {
		if l.Date == entry.Date {
			day.EmployeeIDs = append(day.EmployeeIDs, l.EmployeeID)
		}
	}
	if err := admit(day); err != nil {
		return err
	}

	// Constraints the database enforces on insert.
	if _, ok := r.store.employees[entry.EmployeeID]; !ok {
		return apperrors.InvalidEmployee()
	}
	if day.Has(entry.EmployeeID) {
		return apperrors.DuplicateEntry()
	}
	r.store.leaves[entry.ID] = entry
	return nil
}

func (r *leaveRepository) ListLeaves(_ context.Context, filter domain.LeaveFilter) ([]domain.LeaveEntry, error) {
	if filter.WeekStart != "" {
		if _, err := domain.ParseDate(filter.WeekStart); err != nil {
			return nil, apperrors.ValidationFailed(err)
		}
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	all := sortedValues(r.store.leaves, func(a, b domain.LeaveEntry) bool {
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Slot != b.Slot {
			return a.Slot < b.Slot
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	if filter.WeekStart == "" {
		return all, nil
	}
	out := all[:0]
	for _, l := range all {
		if l.WeekStart == filter.WeekStart {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *leaveRepository) DeleteLeave(_ context.Context, leaveID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.leaves[leaveID]; !ok {
		return fmt.Errorf("leave %s: %w", leaveID, apperrors.ErrNotFound)
	}
	delete(r.store.leaves, leaveID)
	return nil
}
