package domain

import (
	"fmt"
	"strings"

	"github.com/allisson/employees/internal/query"
)

// Schema declares the searchable employee attributes and their storage columns.
// Password is stored but never searchable.
var Schema = query.NewSchema("employee",
	query.Field{Name: "id", Column: "id"},
	query.Field{Name: "email", Column: "email"},
	query.Field{Name: "password", Column: "password", Hidden: true},
	query.Field{Name: "fullName", Column: "full_name"},
	query.Field{Name: "phoneNumber", Column: "phone_number"},
	query.Field{Name: "dob", Column: "dob"},
	query.Field{Name: "isActive", Column: "is_active"},
	query.Field{Name: "designation", Column: "designation"},
	query.Field{Name: "managerId", Column: "manager_id"},
	query.Field{Name: "address", Column: "address"},
	query.Field{Name: "createdAt", Column: "created_at"},
	query.Field{Name: "updatedAt", Column: "updated_at"},
	query.Field{Name: "createdBy", Column: "created_by"},
	query.Field{Name: "updatedBy", Column: "updated_by"},
)

// TableName is the employees table.
const TableName = "employees"

// SortField enumerates the sortable employee attributes. The zero value is not a field.
type SortField string

const (
	SortEmail       SortField = "EMAIL"
	SortFullName    SortField = "FULL_NAME"
	SortCreatedAt   SortField = "CREATED_AT"
	SortUpdatedAt   SortField = "UPDATED_AT"
	SortDesignation SortField = "DESIGNATION"
)

// AllSortFields returns every SortField in declaration order.
func AllSortFields() []SortField {
	return []SortField{SortEmail, SortFullName, SortCreatedAt, SortUpdatedAt, SortDesignation}
}

var sortFieldNames = map[SortField]string{
	SortEmail:       "email",
	SortFullName:    "fullName",
	SortCreatedAt:   "createdAt",
	SortUpdatedAt:   "updatedAt",
	SortDesignation: "designation",
}

// sortColumns is filled and checked for completeness at startup.
var sortColumns = make(map[SortField]string, len(sortFieldNames))

func init() {
	for _, f := range AllSortFields() {
		name, ok := sortFieldNames[f]
		if !ok {
			panic(fmt.Sprintf("domain: sort field %s has no schema field", f))
		}
		column, ok := Schema.Column(name)
		if !ok {
			panic(fmt.Sprintf("domain: sort field %s maps to undeclared field %q", f, name))
		}
		sortColumns[f] = column
	}
}

// DefaultSortField orders reads when no sort is requested.
const DefaultSortField = SortCreatedAt

// Column returns the storage column behind f.
func (f SortField) Column() (string, bool) {
	c, ok := sortColumns[f]
	return c, ok
}

// ParseSortField accepts the enum name ("FULL_NAME") or the schema field name
// ("fullName"), ignoring case.
func ParseSortField(s string) (SortField, bool) {
	s = strings.TrimSpace(s)
	for _, f := range AllSortFields() {
		if strings.EqualFold(s, string(f)) || strings.EqualFold(s, sortFieldNames[f]) {
			return f, true
		}
	}
	return "", false
}
