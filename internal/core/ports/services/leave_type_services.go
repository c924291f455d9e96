package services

import (
	"context"

	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	"github.com/SscSPs/leave_tracker_app/internal/dto"
)

// LeaveTypeSvcFacade defines leave-type allotment operations
type LeaveTypeSvcFacade interface {
	CreateLeaveType(ctx context.Context, req dto.CreateLeaveTypeRequest) (*domain.LeaveTypeEntry, error)
	ListLeaveTypes(ctx context.Context) ([]domain.LeaveTypeEntry, error)
	DeleteLeaveType(ctx context.Context, leaveTypeID string) error
}
