package services

import (
	"context"

	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	"github.com/SscSPs/leave_tracker_app/internal/dto"
)

// OvertimeSvcFacade defines overtime operations
type OvertimeSvcFacade interface {
	CreateOvertime(ctx context.Context, req dto.CreateOvertimeRequest) (*domain.OvertimeEntry, error)
	ListOvertime(ctx context.Context) ([]domain.OvertimeEntry, error)
	DeleteOvertime(ctx context.Context, overtimeID string) error
}
