package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/leave_tracker_app/internal/apperrors"
	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/leave_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/leave_tracker_app/internal/models"
	"github.com/SscSPs/leave_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Dependent record kinds reported by CountDependents.
const (
	DependentLeaves     = "leaves"
	DependentOvertime   = "overtime"
	DependentLeaveTypes = "leave_types"
)

const employeeColumns = `id, name, short_name, position, work_type, color, created_at`

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for employee data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var e models.Employee
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.ShortName,
		&e.Position,
		&e.WorkType,
		&e.Color,
		&e.CreatedAt,
	)
	return e, err
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	modelEmp := mapping.ToModelEmployee(employee)
	query := `
		INSERT INTO employees (id, name, short_name, position, work_type, color, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelEmp.ID,
		modelEmp.Name,
		modelEmp.ShortName,
		modelEmp.Position,
		modelEmp.WorkType,
		modelEmp.Color,
		modelEmp.CreatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return fmt.Errorf("employee %s: %w", modelEmp.ID, apperrors.ErrDuplicate)
		}
		return wrapDBError(err, "failed to save employee "+modelEmp.ID)
	}
	return nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1;`
	modelEmp, err := scanEmployee(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapDBError(err, "failed to find employee by ID "+employeeID)
	}
	domainEmp := mapping.ToDomainEmployee(modelEmp)
	return &domainEmp, nil
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at, id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, wrapDBError(err, "failed to query employees")
	}
	defer rows.Close()

	modelEmps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Employee, error) {
		return scanEmployee(row)
	})
	if err != nil {
		return nil, wrapDBError(err, "failed to scan employees")
	}
	return mapping.ToDomainEmployeeSlice(modelEmps), nil
}

func (r *PgxEmployeeRepository) CountEmployees(ctx context.Context) (int, error) {
	var count int
	if err := r.Pool.QueryRow(ctx, `SELECT count(*) FROM employees;`).Scan(&count); err != nil {
		return 0, wrapDBError(err, "failed to count employees")
	}
	return count, nil
}

func (r *PgxEmployeeRepository) CountDependents(ctx context.Context, employeeID string) (map[string]int, error) {
	query := `
		SELECT
			(SELECT count(*) FROM leaves WHERE employee_id = $1),
			(SELECT count(*) FROM overtime WHERE employee_id = $1),
			(SELECT count(*) FROM leave_types WHERE employee_id = $1);
	`
	var leaves, overtime, leaveTypes int
	if err := r.Pool.QueryRow(ctx, query, employeeID).Scan(&leaves, &overtime, &leaveTypes); err != nil {
		return nil, wrapDBError(err, "failed to count dependents of employee "+employeeID)
	}

	dependents := map[string]int{}
	for kind, n := range map[string]int{DependentLeaves: leaves, DependentOvertime: overtime, DependentLeaveTypes: leaveTypes} {
		if n > 0 {
			dependents[kind] = n
		}
	}
	return dependents, nil
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employeeID string, changes domain.EmployeeChanges) (*domain.Employee, error) {
	var position, workType *string
	if changes.Position != nil {
		p := string(*changes.Position)
		position = &p
	}
	if changes.WorkType != nil {
		w := string(*changes.WorkType)
		workType = &w
	}

	query := `
		UPDATE employees
		SET name = COALESCE($2, name),
			short_name = COALESCE($3, short_name),
			position = COALESCE($4, position),
			work_type = COALESCE($5, work_type),
			color = COALESCE($6, color)
		WHERE id = $1
		RETURNING ` + employeeColumns + `;
	`
	modelEmp, err := scanEmployee(r.Pool.QueryRow(ctx, query,
		employeeID,
		changes.Name,
		changes.ShortName,
		position,
		workType,
		changes.Color,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("employee %s: %w", employeeID, apperrors.ErrNotFound)
		}
		return nil, wrapDBError(err, "failed to update employee "+employeeID)
	}
	domainEmp := mapping.ToDomainEmployee(modelEmp)
	return &domainEmp, nil
}

func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM employees WHERE id = $1;`, employeeID)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			// A record was added between the dependents check and the delete.
			return apperrors.HasDependentRecords(nil)
		}
		return wrapDBError(err, "failed to delete employee "+employeeID)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee %s: %w", employeeID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEmployeeRepository) SeedEmployees(ctx context.Context, employees []domain.Employee) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	// Serializes concurrent boots so only one of them seeds.
	if _, err := tx.Exec(ctx, `LOCK TABLE employees IN SHARE ROW EXCLUSIVE MODE;`); err != nil {
		return 0, wrapDBError(err, "failed to lock employees table")
	}

	var count int
	if err := tx.QueryRow(ctx, `SELECT count(*) FROM employees;`).Scan(&count); err != nil {
		return 0, wrapDBError(err, "failed to count employees")
	}
	if count > 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO employees (id, name, short_name, position, work_type, color, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING;
	`
	for _, e := range employees {
		m := mapping.ToModelEmployee(e)
		batch.Queue(query, m.ID, m.Name, m.ShortName, m.Position, m.WorkType, m.Color, m.CreatedAt)
	}

	inserted := 0
	br := tx.SendBatch(ctx, batch)
	for range employees {
		cmdTag, err := br.Exec()
		if err != nil {
			br.Close()
			return 0, wrapDBError(err, "failed to seed employee")
		}
		inserted += int(cmdTag.RowsAffected())
	}
	if err := br.Close(); err != nil {
		return 0, wrapDBError(err, "failed to close seed batch")
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return inserted, nil
}
