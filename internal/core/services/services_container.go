package services

import (
	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/leave_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/leave_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/leave_tracker_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	opts := append([]ServiceOption{WithLocation(cfg.Location)}, options...)

	return &portssvc.ServiceContainer{
		Employee:  NewEmployeeService(repos.EmployeeRepo, domain.DefaultRoster, opts...),
		Leave:     NewLeaveService(repos.LeaveRepo, repos.EmployeeRepo, cfg.Policy, opts...),
		Overtime:  NewOvertimeService(repos.OvertimeRepo, repos.EmployeeRepo, opts...),
		LeaveType: NewLeaveTypeService(repos.LeaveTypeRepo, repos.EmployeeRepo, opts...),
	}
}
