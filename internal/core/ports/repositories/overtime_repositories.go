package repositories

import (
	"context"

	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
)

// OvertimeRepositoryFacade defines persistence for overtime entries
type OvertimeRepositoryFacade interface {
	SaveOvertime(ctx context.Context, entry domain.OvertimeEntry) error
	ListOvertime(ctx context.Context) ([]domain.OvertimeEntry, error)
	// DeleteOvertime returns apperrors.ErrNotFound when no row matched.
	DeleteOvertime(ctx context.Context, overtimeID string) error
}
