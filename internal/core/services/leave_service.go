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

type leaveService struct {
	BaseService
	leaveRepo    portsrepo.LeaveRepositoryFacade
	employeeRepo portsrepo.EmployeeReader
	policy       domain.SchedulingPolicy
}

// NewLeaveService creates a leave service admitting entries against policy
func NewLeaveService(leaveRepo portsrepo.LeaveRepositoryFacade, employeeRepo portsrepo.EmployeeReader, policy domain.SchedulingPolicy, options ...ServiceOption) portssvc.LeaveSvcFacade {
	svc := &leaveService{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		policy:       policy,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.LeaveSvcFacade = (*leaveService)(nil)

// findEmployee returns the employee, or nil if employeeID is unknown; other lookup failures are returned.
func findEmployee(ctx context.Context, repo portsrepo.EmployeeReader, employeeID string) (*domain.Employee, error) {
	employee, err := repo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return employee, nil
}

// employeeExists reports whether employeeID is known; other lookup failures are returned.
func employeeExists(ctx context.Context, repo portsrepo.EmployeeReader, employeeID string) (bool, error) {
	employee, err := findEmployee(ctx, repo, employeeID)
	return employee != nil, err
}

// pairNames collects display names of employee and its exclusive-pair partners.
// Partners that cannot be resolved are left out and shown by id.
func (s *leaveService) pairNames(ctx context.Context, employee *domain.Employee) map[string]string {
	partners := s.policy.Partners(employee.ID)
	if len(partners) == 0 {
		return nil
	}

	names := map[string]string{employee.ID: domain.DisplayName(employee.Name)}
	for _, partnerID := range partners {
		partner, err := findEmployee(ctx, s.employeeRepo, partnerID)
		if err != nil {
			s.LogWarn(ctx, err, "Failed to resolve pair partner", slog.String("employee_id", partnerID))
			continue
		}
		if partner != nil {
			names[partnerID] = domain.DisplayName(partner.Name)
		}
	}
	return names
}

func (s *leaveService) CreateLeave(ctx context.Context, req dto.CreateLeaveRequest) (*domain.LeaveEntry, error) {
	employee, err := findEmployee(ctx, s.employeeRepo, req.EmployeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up employee", slog.String("employee_id", req.EmployeeID))
		return nil, err
	}
	if employee == nil {
		return nil, apperrors.InvalidEmployee()
	}

	entry := domain.LeaveEntry{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		WeekStart:  req.WeekStart,
		Slot:       *req.Slot,
		CreatedAt:  s.Now(),
	}
	proposal := domain.LeaveProposal{
		EmployeeID: entry.EmployeeID,
		Date:       entry.Date,
		Names:      s.pairNames(ctx, employee),
	}
	today := s.Today()

	err = s.leaveRepo.ScheduleLeave(ctx, entry, func(day domain.DaySnapshot) error {
		return s.policy.Admit(proposal, true, today, day)
	})
	if err != nil {
		if apperrors.KindOf(err).Status() < 500 {
			s.LogWarn(ctx, err, "Leave rejected",
				slog.String("employee_id", entry.EmployeeID),
				slog.String("date", entry.Date))
		} else {
			s.LogError(ctx, err, "Failed to schedule leave",
				slog.String("employee_id", entry.EmployeeID),
				slog.String("date", entry.Date))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Leave scheduled",
		slog.String("leave_id", entry.ID),
		slog.String("employee_id", entry.EmployeeID),
		slog.String("date", entry.Date))
	return &entry, nil
}

func (s *leaveService) ListLeaves(ctx context.Context, params dto.ListLeavesParams) ([]domain.LeaveEntry, error) {
	leaves, err := s.leaveRepo.ListLeaves(ctx, domain.LeaveFilter{WeekStart: params.WeekStart})
	if err != nil {
		s.LogError(ctx, err, "Failed to list leaves", slog.String("week_start", params.WeekStart))
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	if leaves == nil {
		return []domain.LeaveEntry{}, nil
	}
	return leaves, nil
}

func (s *leaveService) DeleteLeave(ctx context.Context, leaveID string) error {
	if err := s.leaveRepo.DeleteLeave(ctx, leaveID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFound("İzin kaydı bulunamadı")
		}
		s.LogError(ctx, err, "Failed to delete leave", slog.String("leave_id", leaveID))
		return err
	}
	s.LogInfo(ctx, "Leave deleted", slog.String("leave_id", leaveID))
	return nil
}
