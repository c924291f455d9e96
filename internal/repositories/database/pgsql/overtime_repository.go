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

type PgxOvertimeRepository struct {
	BaseRepository
}

func newPgxOvertimeRepository(pool *pgxpool.Pool) portsrepo.OvertimeRepositoryFacade {
	return &PgxOvertimeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.OvertimeRepositoryFacade = (*PgxOvertimeRepository)(nil)

func (r *PgxOvertimeRepository) SaveOvertime(ctx context.Context, entry domain.OvertimeEntry) error {
	m, err := mapping.ToModelOvertime(entry)
	if err != nil {
		return apperrors.ValidationFailed(err)
	}
	query := `
		INSERT INTO overtime (id, employee_id, date, hours, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err = r.Pool.Exec(ctx, query, m.ID, m.EmployeeID, m.Date, m.Hours, m.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return apperrors.InvalidEmployee()
		}
		return wrapDBError(err, "failed to save overtime "+m.ID)
	}
	return nil
}

func (r *PgxOvertimeRepository) ListOvertime(ctx context.Context) ([]domain.OvertimeEntry, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, employee_id, date, hours, created_at FROM overtime ORDER BY date, created_at;`)
	if err != nil {
		return nil, wrapDBError(err, "failed to query overtime")
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Overtime, error) {
		var o models.Overtime
		err := row.Scan(&o.ID, &o.EmployeeID, &o.Date, &o.Hours, &o.CreatedAt)
		return o, err
	})
	if err != nil {
		return nil, wrapDBError(err, "failed to scan overtime")
	}
	return mapping.ToDomainOvertimeSlice(modelEntries), nil
}

func (r *PgxOvertimeRepository) DeleteOvertime(ctx context.Context, overtimeID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM overtime WHERE id = $1;`, overtimeID)
	if err != nil {
		return wrapDBError(err, "failed to delete overtime "+overtimeID)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("overtime %s: %w", overtimeID, apperrors.ErrNotFound)
	}
	return nil
}
