package services

import (
	"context"

	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	"github.com/SscSPs/leave_tracker_app/internal/dto"
)

// LeaveSvcFacade defines leave scheduling operations
type LeaveSvcFacade interface {
	// CreateLeave admits and stores a leave entry, or returns the rule that rejected it.
	CreateLeave(ctx context.Context, req dto.CreateLeaveRequest) (*domain.LeaveEntry, error)

	// ListLeaves retrieves leave entries, optionally for one week.
	ListLeaves(ctx context.Context, params dto.ListLeavesParams) ([]domain.LeaveEntry, error)

	DeleteLeave(ctx context.Context, leaveID string) error
}
