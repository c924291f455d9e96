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

type PgxLeaveRepository struct {
	BaseRepository
}

// newPgxLeaveRepository creates a new repository for leave data.
func newPgxLeaveRepository(pool *pgxpool.Pool) portsrepo.LeaveRepositoryFacade {
	return &PgxLeaveRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LeaveRepositoryFacade = (*PgxLeaveRepository)(nil)

// ScheduleLeave runs admit and the insert in one transaction holding an
// advisory lock on the date, so the count, pair and duplicate checks cannot
// race with another booking for the same day.
func (r *PgxLeaveRepository) ScheduleLeave(ctx context.Context, entry domain.LeaveEntry, admit portsrepo.AdmitFunc) error {
	modelLeave, err := mapping.ToModelLeave(entry)
	if err != nil {
		return apperrors.ValidationFailed(err)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, "leaves:"+entry.Date); err != nil {
		return wrapDBError(err, "failed to lock leave date "+entry.Date)
	}

	rows, err := tx.Query(ctx, `SELECT employee_id FROM leaves WHERE date = $1;`, modelLeave.Date)
	if err != nil {
		return wrapDBError(err, "failed to query leaves on "+entry.Date)
	}
	employeeIDs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return wrapDBError(err, "failed to scan leaves on "+entry.Date)
	}

	if err := admit(domain.DaySnapshot{Date: entry.Date, EmployeeIDs: employeeIDs}); err != nil {
		return err
	}

	query := `
		INSERT INTO leaves (id, employee_id, date, week_start, slot, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, query,
		modelLeave.ID,
		modelLeave.EmployeeID,
		modelLeave.Date,
		modelLeave.WeekStart,
		modelLeave.Slot,
		modelLeave.CreatedAt,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return apperrors.DuplicateEntry()
		case pgForeignKeyViolation:
			return apperrors.InvalidEmployee()
		}
		return wrapDBError(err, "failed to insert leave "+modelLeave.ID)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxLeaveRepository) ListLeaves(ctx context.Context, filter domain.LeaveFilter) ([]domain.LeaveEntry, error) {
	query := `SELECT id, employee_id, date, week_start, slot, created_at FROM leaves`
	var args []any
	if filter.WeekStart != "" {
		weekStart, err := domain.ParseDate(filter.WeekStart)
		if err != nil {
			return nil, apperrors.ValidationFailed(err)
		}
		query += ` WHERE week_start = $1`
		args = append(args, weekStart)
	}
	query += ` ORDER BY date, slot, created_at;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err, "failed to query leaves")
	}
	defer rows.Close()

	modelLeaves, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Leave, error) {
		var l models.Leave
		err := row.Scan(&l.ID, &l.EmployeeID, &l.Date, &l.WeekStart, &l.Slot, &l.CreatedAt)
		return l, err
	})
	if err != nil {
		return nil, wrapDBError(err, "failed to scan leaves")
	}
	return mapping.ToDomainLeaveSlice(modelLeaves), nil
}

func (r *PgxLeaveRepository) DeleteLeave(ctx context.Context, leaveID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM leaves WHERE id = $1;`, leaveID)
	if err != nil {
		return wrapDBError(err, "failed to delete leave "+leaveID)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("leave %s: %w", leaveID, apperrors.ErrNotFound)
	}
	return nil
}
