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

type leaveTypeService struct {
	BaseService
	leaveTypeRepo portsrepo.LeaveTypeRepositoryFacade
	employeeRepo  portsrepo.EmployeeReader
}

func NewLeaveTypeService(leaveTypeRepo portsrepo.LeaveTypeRepositoryFacade, employeeRepo portsrepo.EmployeeReader, options ...ServiceOption) portssvc.LeaveTypeSvcFacade {
	svc := &leaveTypeService{
		leaveTypeRepo: leaveTypeRepo,
		employeeRepo:  employeeRepo,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.LeaveTypeSvcFacade = (*leaveTypeService)(nil)

func (s *leaveTypeService) CreateLeaveType(ctx context.Context, req dto.CreateLeaveTypeRequest) (*domain.LeaveTypeEntry, error) {
	exists, err := employeeExists(ctx, s.employeeRepo, req.EmployeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up employee", slog.String("employee_id", req.EmployeeID))
		return nil, err
	}
	if !exists {
		return nil, apperrors.InvalidEmployee()
	}

	entry := domain.LeaveTypeEntry{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		LeaveType:  domain.LeaveKind(req.LeaveType),
		Hours:      req.Hours,
		CreatedAt:  s.Now(),
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := s.leaveTypeRepo.SaveLeaveType(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save leave type", slog.String("employee_id", entry.EmployeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Leave type recorded",
		slog.String("leave_type_id", entry.ID),
		slog.String("leave_type", string(entry.LeaveType)))
	return &entry, nil
}

func (s *leaveTypeService) ListLeaveTypes(ctx context.Context) ([]domain.LeaveTypeEntry, error) {
	entries, err := s.leaveTypeRepo.ListLeaveTypes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list leave types")
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	if entries == nil {
		return []domain.LeaveTypeEntry{}, nil
	}
	return entries, nil
}

func (s *leaveTypeService) DeleteLeaveType(ctx context.Context, leaveTypeID string) error {
	if err := s.leaveTypeRepo.DeleteLeaveType(ctx, leaveTypeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFound("İzin türü kaydı bulunamadı")
		}
		s.LogError(ctx, err, "Failed to delete leave type", slog.String("leave_type_id", leaveTypeID))
		return err
	}
	return nil
}
