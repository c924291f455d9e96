package repositories

import (
	"context"

	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
)

// AdmitFunc decides whether a new leave entry may be stored given the
// current state of its date. A non-nil error rejects the entry.
type AdmitFunc func(day domain.DaySnapshot) error

// LeaveReader defines read operations for leave data
type LeaveReader interface {
	// ListLeaves retrieves leave entries matching filter.
	ListLeaves(ctx context.Context, filter domain.LeaveFilter) ([]domain.LeaveEntry, error)
}

// LeaveWriter defines write operations for leave data
type LeaveWriter interface {
	// ScheduleLeave snapshots entry.Date, calls admit and inserts entry when
	// admit returns nil. Concurrent calls for the same date are serialized.
	ScheduleLeave(ctx context.Context, entry domain.LeaveEntry, admit AdmitFunc) error

	// DeleteLeave hard-deletes a leave entry, or returns apperrors.ErrNotFound.
	DeleteLeave(ctx context.Context, leaveID string) error
}

// LeaveRepositoryFacade combines all leave-related repository interfaces
type LeaveRepositoryFacade interface {
	LeaveReader
	LeaveWriter
}
