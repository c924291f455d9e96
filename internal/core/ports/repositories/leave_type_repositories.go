package repositories

import (
	"context"

	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
)

// LeaveTypeRepositoryFacade defines persistence for leave-type entries
type LeaveTypeRepositoryFacade interface {
	SaveLeaveType(ctx context.Context, entry domain.LeaveTypeEntry) error
	ListLeaveTypes(ctx context.Context) ([]domain.LeaveTypeEntry, error)
	// DeleteLeaveType returns apperrors.ErrNotFound when no row matched.
	DeleteLeaveType(ctx context.Context, leaveTypeID string) error
}
