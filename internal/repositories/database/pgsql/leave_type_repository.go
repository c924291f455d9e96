package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/leave_tracker_app/internal/apperrors"
	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/leave_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/leave_tracker_app/internal/models"
	"github.com/SscSPs/leave_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLeaveTypeRepository struct {
	BaseRepository
}

func newPgxLeaveTypeRepository(pool *pgxpool.Pool) portsrepo.LeaveTypeRepositoryFacade {
	return &PgxLeaveTypeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LeaveTypeRepositoryFacade = (*PgxLeaveTypeRepository)(nil)

func (r *PgxLeaveTypeRepository) SaveLeaveType(ctx context.Context, entry domain.LeaveTypeEntry) error {
	m, err := mapping.ToModelLeaveType(entry)
	if err != nil {
		return apperrors.ValidationFailed(err)
	}
	query := `
		INSERT INTO leave_types (id, employee_id, date, leave_type, hours, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = r.Pool.Exec(ctx, query, m.ID, m.EmployeeID, m.Date, m.LeaveType, m.Hours, m.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return apperrors.InvalidEmployee()
		}
		return wrapDBError(err, "failed to save leave type "+m.ID)
	}
	return nil
}

func (r *PgxLeaveTypeRepository) ListLeaveTypes(ctx context.Context) ([]domain.LeaveTypeEntry, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, employee_id, date, leave_type, hours, created_at FROM leave_types ORDER BY date, created_at;`)
	if err != nil {
		return nil, wrapDBError(err, "failed to query leave types")
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LeaveType, error) {
		var lt models.LeaveType
		err := row.Scan(&lt.ID, &lt.EmployeeID, &lt.Date, &lt.LeaveType, &lt.Hours, &lt.CreatedAt)
		return lt, err
	})
	if err != nil {
		return nil, wrapDBError(err, "failed to scan leave types")
	}
	return mapping.ToDomainLeaveTypeSlice(modelEntries), nil
}

func (r *PgxLeaveTypeRepository) DeleteLeaveType(ctx context.Context, leaveTypeID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM leave_types WHERE id = $1;`, leaveTypeID)
	if err != nil {
		return wrapDBError(err, "failed to delete leave type "+leaveTypeID)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("leave type %s: %w", leaveTypeID, apperrors.ErrNotFound)
	}
	return nil
}
