package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/employees/internal/database"
	"github.com/allisson/employees/internal/employee/domain"
	apperrors "github.com/allisson/employees/internal/errors"
	"github.com/allisson/employees/internal/query"
)

// PostgreSQLEmployeeRepository implements employee persistence for PostgreSQL. It
// serves both the lib/pq and the pgx stdlib drivers.
type PostgreSQLEmployeeRepository struct {
	db *sql.DB
}

// NewPostgreSQLEmployeeRepository creates a new PostgreSQLEmployeeRepository.
func NewPostgreSQLEmployeeRepository(db *sql.DB) *PostgreSQLEmployeeRepository {
	return &PostgreSQLEmployeeRepository{db: db}
}

func pgCastText(column string) string {
	return "CAST(" + column + " AS TEXT)"
}

// FindByID returns domain.ErrEmployeeNotFound when no row matches.
func (p *PostgreSQLEmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	return p.findByID(ctx, id, "")
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
func (p *PostgreSQLEmployeeRepository) FindByIDForUpdate(
	ctx context.Context,
	id string,
) (*domain.Employee, error) {
	return p.findByID(ctx, id, " FOR UPDATE")
}

func (p *PostgreSQLEmployeeRepository) findByID(
	ctx context.Context,
	id string,
	suffix string,
) (*domain.Employee, error) {
	querier := database.GetTx(ctx, p.db)

	sqlText, args := database.NewSelect(database.Dollar, selectColumns...).
		From(domain.TableName).
		Where("id = ?", id).
		Build()

	employee, err := scanEmployee(querier.QueryRowContext(ctx, sqlText+suffix, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get employee by id")
	}
	return employee, nil
}

// FindPage returns at most limit employees matching filter, ordered by order and
// skipping offset rows.
func (p *PostgreSQLEmployeeRepository) FindPage(
	ctx context.Context,
	filter query.Filter,
	order []query.Order,
	limit, offset int,
) ([]*domain.Employee, error) {
	querier := database.GetTx(ctx, p.db)

	b := database.NewSelect(database.Dollar, selectColumns...).From(domain.TableName)
	if err := applyFilter(b, filter, pgCastText); err != nil {
		return nil, apperrors.Wrap(err, "failed to build employee filter")
	}
	applyOrder(b, order)
	sqlText, args := b.Limit(limit).Offset(offset).Build()

	rows, err := querier.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list employees")
	}
	defer func() {
		_ = rows.Close()
	}()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan employee row")
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "error iterating employee rows")
	}

	return employees, nil
}

// ExistsByEmail reports whether an employee uses email, ignoring case.
func (p *PostgreSQLEmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	querier := database.GetTx(ctx, p.db)

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE LOWER(email) = LOWER($1))`
	if err := querier.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check employee email")
	}
	return exists, nil
}

// ExistsByID reports whether id resolves to an employee.
func (p *PostgreSQLEmployeeRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	querier := database.GetTx(ctx, p.db)

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1)`
	if err := querier.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check employee id")
	}
	return exists, nil
}

// Insert stores a new employee. Unique violations are returned as
// domain.ErrEmailAlreadyExists or domain.ErrDuplicateKey.
func (p *PostgreSQLEmployeeRepository) Insert(ctx context.Context, employee *domain.Employee) error {
	querier := database.GetTx(ctx, p.db)

	_, err := querier.ExecContext(ctx, pgInsertQuery, writeArgs(employee)...)
	if err != nil {
		if classified := classifyWriteError(err); classified != nil {
			return classified
		}
		return apperrors.Wrap(err, "failed to create employee")
	}
	return nil
}

// Update overwrites every column of an existing employee.
func (p *PostgreSQLEmployeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	querier := database.GetTx(ctx, p.db)

	res, err := querier.ExecContext(ctx, pgUpdateQuery, updateArgs(employee)...)
	if err != nil {
		if classified := classifyWriteError(err); classified != nil {
			return classified
		}
		return apperrors.Wrap(err, "failed to update employee")
	}
	return requireAffected(res, "failed to update employee")
}

// Delete removes an employee. The manager_id foreign key clears the manager link of
// their reports.
func (p *PostgreSQLEmployeeRepository) Delete(ctx context.Context, id string) error {
	querier := database.GetTx(ctx, p.db)

	res, err := querier.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete employee")
	}
	return requireAffected(res, "failed to delete employee")
}

var (
	pgInsertQuery = database.Rebind(database.Dollar, insertStatement())
	pgUpdateQuery = database.Rebind(database.Dollar, updateStatement())
)
