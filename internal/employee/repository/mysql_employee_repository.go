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

// MySQLEmployeeRepository implements employee persistence for MySQL. The DSN must
// set parseTime=true so DATE and DATETIME columns scan into time.Time.
type MySQLEmployeeRepository struct {
	db *sql.DB
}

// NewMySQLEmployeeRepository creates a new MySQLEmployeeRepository.
func NewMySQLEmployeeRepository(db *sql.DB) *MySQLEmployeeRepository {
	return &MySQLEmployeeRepository{db: db}
}

// mysqlBoolColumns are TINYINT(1) columns that render as 'true'/'false', matching the
// PostgreSQL text form of BOOLEAN.
var mysqlBoolColumns = map[string]struct{}{
	"is_active": {},
}

func mysqlCastText(column string) string {
	if _, ok := mysqlBoolColumns[column]; ok {
		return "IF(" + column + ", 'true', 'false')"
	}
	return "CAST(" + column + " AS CHAR)"
}

// FindByID returns domain.ErrEmployeeNotFound when no row matches.
func (m *MySQLEmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	return m.findByID(ctx, id, "")
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
func (m *MySQLEmployeeRepository) FindByIDForUpdate(ctx context.Context, id string) (*domain.Employee, error) {
	return m.findByID(ctx, id, " FOR UPDATE")
}

func (m *MySQLEmployeeRepository) findByID(ctx context.Context, id, suffix string) (*domain.Employee, error) {
	querier := database.GetTx(ctx, m.db)

	sqlText, args := database.NewSelect(database.Question, selectColumns...).
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
func (m *MySQLEmployeeRepository) FindPage(
	ctx context.Context,
	filter query.Filter,
	order []query.Order,
	limit, offset int,
) ([]*domain.Employee, error) {
	querier := database.GetTx(ctx, m.db)

	b := database.NewSelect(database.Question, selectColumns...).From(domain.TableName)
	if err := applyFilter(b, filter, mysqlCastText); err != nil {
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
func (m *MySQLEmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	querier := database.GetTx(ctx, m.db)

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE LOWER(email) = LOWER(?))`
	if err := querier.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check employee email")
	}
	return exists, nil
}

// ExistsByID reports whether id resolves to an employee.
func (m *MySQLEmployeeRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	querier := database.GetTx(ctx, m.db)

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE id = ?)`
	if err := querier.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check employee id")
	}
	return exists, nil
}

// Insert stores a new employee. Unique violations are returned as
// domain.ErrEmailAlreadyExists or domain.ErrDuplicateKey.
func (m *MySQLEmployeeRepository) Insert(ctx context.Context, employee *domain.Employee) error {
	querier := database.GetTx(ctx, m.db)

	_, err := querier.ExecContext(ctx, insertStatement(), writeArgs(employee)...)
	if err != nil {
		if classified := classifyWriteError(err); classified != nil {
			return classified
		}
		return apperrors.Wrap(err, "failed to create employee")
	}
	return nil
}

// Update overwrites every column of an existing employee. MySQL reports zero
// affected rows for an unchanged row, so existence is not derived from the result.
func (m *MySQLEmployeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	querier := database.GetTx(ctx, m.db)

	_, err := querier.ExecContext(ctx, updateStatement(), updateArgs(employee)...)
	if err != nil {
		if classified := classifyWriteError(err); classified != nil {
			return classified
		}
		return apperrors.Wrap(err, "failed to update employee")
	}
	return nil
}

// Delete removes an employee. The manager_id foreign key clears the manager link of
// their reports.
func (m *MySQLEmployeeRepository) Delete(ctx context.Context, id string) error {
	querier := database.GetTx(ctx, m.db)

	res, err := querier.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete employee")
	}
	return requireAffected(res, "failed to delete employee")
}
