package database

import (
	"fmt"
	"strings"
)

// Placeholder selects how bind parameters are written.
type Placeholder int

const (
	// Question writes "?" (MySQL).
	Question Placeholder = iota
	// Dollar writes "$1", "$2", ... (PostgreSQL).
	Dollar
)

// PlaceholderFor returns the placeholder style of driver.
func PlaceholderFor(driver string) Placeholder {
	if IsPostgres(driver) {
		return Dollar
	}
	return Question
}

// SelectBuilder assembles a SELECT statement. Conditions are written with "?" and
// rewritten for the configured placeholder style on Build. Identifiers are inserted
// verbatim and must come from a trusted source such as an entity schema.
type SelectBuilder struct {
	placeholder Placeholder
	columns     []string
	table       string
	where       []string
	args        []any
	orderBy     []string
	limit       *int
	offset      *int
}

// NewSelect starts a SELECT of columns.
func NewSelect(placeholder Placeholder, columns ...string) *SelectBuilder {
	return &SelectBuilder{placeholder: placeholder, columns: columns}
}

// From sets the table.
func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

// Where adds a condition joined to the others with AND.
func (b *SelectBuilder) Where(condition string, args ...any) *SelectBuilder {
	b.where = append(b.where, condition)
	b.args = append(b.args, args...)
	return b
}

// OrderBy appends a sort key; keys apply in call order.
func (b *SelectBuilder) OrderBy(column string, desc bool) *SelectBuilder {
	dir := "ASC"
	if desc {
		dir = "DESC"
	}
	b.orderBy = append(b.orderBy, column+" "+dir)
	return b
}

// Limit sets the row limit.
func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = &limit
	return b
}

// Offset sets the number of skipped rows.
func (b *SelectBuilder) Offset(offset int) *SelectBuilder {
	b.offset = &offset
	return b
}

// Build returns the SQL text and its arguments.
func (b *SelectBuilder) Build() (string, []any) {
	var sb strings.Builder
	args := append([]any(nil), b.args...)

	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(b.columns, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(b.table)

	if len(b.where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(b.where, " AND "))
	}

	if len(b.orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(b.orderBy, ", "))
	}

	if b.limit != nil {
		sb.WriteString(" LIMIT ?")
		args = append(args, *b.limit)
	}

	if b.offset != nil {
		sb.WriteString(" OFFSET ?")
		args = append(args, *b.offset)
	}

	return Rebind(b.placeholder, sb.String()), args
}

// Rebind rewrites "?" markers for the placeholder style.
func Rebind(placeholder Placeholder, query string) string {
	if placeholder == Question {
		return query
	}

	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteString(fmt.Sprintf("$%d", n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// EscapeLike escapes LIKE wildcards so value matches literally. The escape
// character is the backslash, the default of both PostgreSQL and MySQL.
func EscapeLike(value string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(value)
}
