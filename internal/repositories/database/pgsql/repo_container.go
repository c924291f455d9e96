package pgsql

import (
	portsrepo "github.com/SscSPs/leave_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EmployeeRepo:  newPgxEmployeeRepository(dbPool),
		LeaveRepo:     newPgxLeaveRepository(dbPool),
		OvertimeRepo:  newPgxOvertimeRepository(dbPool),
		LeaveTypeRepo: newPgxLeaveTypeRepository(dbPool),
	}
}
