package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/leave_tracker_app/internal/apperrors"
	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/leave_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/leave_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/leave_tracker_app/internal/dto"
	"github.com/google/uuid"
)

type overtimeService struct {
	BaseService
	overtimeRepo portsrepo.OvertimeRepositoryFacade
	employeeRepo portsrepo.EmployeeReader
}

func NewOvertimeService(overtimeRepo portsrepo.OvertimeRepositoryFacade, employeeRepo portsrepo.EmployeeReader, options ...ServiceOption) portssvc.OvertimeSvcFacade {
	svc := &overtimeService{
		overtimeRepo: overtimeRepo,
		employeeRepo: employeeRepo,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.OvertimeSvcFacade = (*overtimeService)(nil)

func (s *overtimeService) CreateOvertime(ctx context.Context, req dto.CreateOvertimeRequest) (*domain.OvertimeEntry, error) {
	exists, err := employeeExists(ctx, s.employeeRepo, req.EmployeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up employee", slog.String("employee_id", req.EmployeeID))
		return nil, err
	}
	if !exists {
		return nil, apperrors.InvalidEmployee()
	}

	entry := domain.OvertimeEntry{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Hours:      *req.Hours,
		CreatedAt:  s.Now(),
	}
	if err := s.overtimeRepo.SaveOvertime(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save overtime", slog.String("employee_id", entry.EmployeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Overtime recorded",
		slog.String("overtime_id", entry.ID),
		slog.String("hours", entry.Hours.String()))
	return &entry, nil
}

func (s *overtimeService) ListOvertime(ctx context.Context) ([]domain.OvertimeEntry, error) {
	entries, err := s.overtimeRepo.ListOvertime(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list overtime")
		return nil, fmt.Errorf("failed to list overtime: %w", err)
	}
	if entries == nil {
		return []domain.OvertimeEntry{}, nil
	}
	return entries, nil
}

func (s *overtimeService) DeleteOvertime(ctx context.Context, overtimeID string) error {
	if err := s.overtimeRepo.DeleteOvertime(ctx, overtimeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFound("Fazla çalışma kaydı bulunamadı")
		}
		s.LogError(ctx, err, "Failed to delete overtime", slog.String("overtime_id", overtimeID))
		return err
	}
	return nil
}
