// Package repository implements employee persistence for PostgreSQL (lib/pq or pgx)
// and MySQL with transaction support via database.GetTx().
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/allisson/employees/internal/database"
	"github.com/allisson/employees/internal/employee/domain"
	apperrors "github.com/allisson/employees/internal/errors"
	"github.com/allisson/employees/internal/query"
)

const (
	pgUniqueViolation    = "23505"
	mysqlDuplicateEntry  = 1062
	emailConstraintToken = "email"
)

// selectColumns lists the employee columns in scan order.
var selectColumns = domain.Schema.Columns()

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (*domain.Employee, error) {
	var (
		e           domain.Employee
		phoneNumber sql.NullString
		dob         sql.NullTime
		designation sql.NullString
		managerID   sql.NullString
		address     sql.NullString
		createdBy   sql.NullString
		updatedBy   sql.NullString
	)

	// Order follows domain.Schema.
	err := row.Scan(
		&e.ID,
		&e.Email,
		&e.Password,
		&e.FullName,
		&phoneNumber,
		&dob,
		&e.IsActive,
		&designation,
		&managerID,
		&address,
		&e.CreatedAt,
		&e.UpdatedAt,
		&createdBy,
		&updatedBy,
	)
	if err != nil {
		return nil, err
	}

	e.PhoneNumber = phoneNumber.String
	e.Designation = designation.String
	e.Address = address.String
	e.CreatedBy = createdBy.String
	e.UpdatedBy = updatedBy.String
	if dob.Valid {
		d := dob.Time
		e.Dob = &d
	}
	if managerID.Valid {
		m := managerID.String
		e.ManagerID = &m
	}

	return &e, nil
}

// writeArgs returns the column values of e in domain.Schema order.
func writeArgs(e *domain.Employee) []any {
	return []any{
		e.ID,
		e.Email,
		e.Password,
		e.FullName,
		nullString(e.PhoneNumber),
		nullTime(e.Dob),
		e.IsActive,
		nullString(e.Designation),
		nullStringPtr(e.ManagerID),
		nullString(e.Address),
		e.CreatedAt,
		e.UpdatedAt,
		nullString(e.CreatedBy),
		nullString(e.UpdatedBy),
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullStringPtr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return nullString(*s)
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// insertStatement inserts every column in schema order.
func insertStatement() string {
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		domain.TableName,
		strings.Join(selectColumns, ", "),
		placeholders(len(selectColumns)),
	)
}

// placeholders returns n comma separated "?" markers.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// updateStatement sets every column but id, in schema order, then matches id.
func updateStatement() string {
	sets := make([]string, 0, len(selectColumns)-1)
	for _, column := range selectColumns[1:] {
		sets = append(sets, column+" = ?")
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", domain.TableName, strings.Join(sets, ", "))
}

// updateArgs moves id from the first to the last argument for the WHERE clause.
func updateArgs(e *domain.Employee) []any {
	args := writeArgs(e)
	return append(args[1:], args[0])
}

func requireAffected(res sql.Result, message string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, message)
	}
	if affected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

// applyFilter translates filter into case-insensitive LIKE conditions. castText
// renders a column as text in the target dialect.
func applyFilter(b *database.SelectBuilder, filter query.Filter, castText func(string) string) error {
	for _, c := range filter {
		column, ok := domain.Schema.Column(c.Field)
		if !ok {
			return fmt.Errorf("unknown filter field %q", c.Field)
		}
		switch c.Op {
		case query.OpContainsCI:
			pattern := "%" + database.EscapeLike(strings.ToLower(c.Value)) + "%"
			b.Where(fmt.Sprintf("LOWER(%s) LIKE ?", castText(column)), pattern)
		default:
			return fmt.Errorf("unsupported filter operator %q", c.Op)
		}
	}
	return nil
}

func applyOrder(b *database.SelectBuilder, order []query.Order) {
	for _, o := range order {
		b.OrderBy(o.Column, o.Descending)
	}
}

// classifyWriteError maps unique violations to domain errors and leaves every
// other error to the caller.
func classifyWriteError(err error) error {
	key, ok := uniqueViolationKey(err)
	if !ok {
		return nil
	}
	if strings.Contains(strings.ToLower(key), emailConstraintToken) {
		return fmt.Errorf("%w: %v", domain.ErrEmailAlreadyExists, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrDuplicateKey, err)
}

// uniqueViolationKey reports whether err is a unique constraint violation and, if
// so, the name of the violated key.
func uniqueViolationKey(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint, pqErr.Code == pgUniqueViolation
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName, pgErr.Code == pgUniqueViolation
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		if myErr.Number != mysqlDuplicateEntry {
			return "", false
		}
		// Duplicate entry 'x' for key 'employees.email'
		msg := myErr.Message
		if i := strings.LastIndex(msg, "for key"); i >= 0 {
			return msg[i:], true
		}
		return msg, true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") {
		return msg, true
	}
	return "", false
}
