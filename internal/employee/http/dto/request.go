// Package dto provides data transfer objects for employee HTTP requests and responses.
package dto

import (
	"time"

	"github.com/allisson/employees/internal/employee/domain"
	apperrors "github.com/allisson/employees/internal/errors"
	"github.com/allisson/employees/internal/query"
)

// CodeInvalidDate marks a date that is not in YYYY-MM-DD form.
const CodeInvalidDate = "ERR_INVALID_DATE"

// CreateEmployeeRequest contains the parameters for creating an employee.
type CreateEmployeeRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"` //nolint:gosec // hashed by the service
	FullName    string  `json:"fullName"`
	PhoneNumber string  `json:"phoneNumber"`
	Dob         string  `json:"dob"`
	IsActive    *bool   `json:"isActive"`
	Designation string  `json:"designation"`
	ManagerID   *string `json:"managerId"`
	Address     string  `json:"address"`
}

// ToInput converts the request into service input. Field rules are enforced by the
// service; only the date format is checked here.
func (r *CreateEmployeeRequest) ToInput(createdBy string) (*domain.CreateEmployeeInput, error) {
	dob, err := parseDob(r.Dob)
	if err != nil {
		return nil, err
	}
	return &domain.CreateEmployeeInput{
		Email:       r.Email,
		Password:    r.Password,
		FullName:    r.FullName,
		PhoneNumber: r.PhoneNumber,
		Dob:         dob,
		IsActive:    r.IsActive,
		Designation: r.Designation,
		ManagerID:   r.ManagerID,
		Address:     r.Address,
		CreatedBy:   createdBy,
	}, nil
}

// UpdateEmployeeRequest contains the fields of a partial update. Absent fields are
// left untouched; managerId "NULL" removes the manager.
type UpdateEmployeeRequest struct {
	Email       *string `json:"email"`
	Password    *string `json:"password"` //nolint:gosec // hashed by the service
	FullName    *string `json:"fullName"`
	PhoneNumber *string `json:"phoneNumber"`
	Dob         *string `json:"dob"`
	IsActive    *bool   `json:"isActive"`
	Designation *string `json:"designation"`
	ManagerID   *string `json:"managerId"`
	Address     *string `json:"address"`
}

// ToPatch converts the request into an EmployeePatch.
func (r *UpdateEmployeeRequest) ToPatch(updatedBy string) (domain.EmployeePatch, error) {
	patch := domain.EmployeePatch{
		Email:       r.Email,
		Password:    r.Password,
		FullName:    r.FullName,
		PhoneNumber: r.PhoneNumber,
		IsActive:    r.IsActive,
		Designation: r.Designation,
		ManagerID:   r.ManagerID,
		Address:     r.Address,
	}
	if r.Dob != nil {
		dob, err := parseDob(*r.Dob)
		if err != nil {
			return domain.EmployeePatch{}, err
		}
		patch.Dob = dob
	}
	if updatedBy != "" {
		patch.UpdatedBy = &updatedBy
	}
	return patch, nil
}

func parseDob(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	dob, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, apperrors.NewValidationFailure(
			apperrors.NewErrorDetail("dob", "must be a date in YYYY-MM-DD format", CodeInvalidDate),
		).WithCause(err)
	}
	return &dob, nil
}

// SortRequest is one requested ordering.
type SortRequest struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// SearchRequest is the body of an employee query.
type SearchRequest struct {
	Page   *int              `json:"page"`
	Size   *int              `json:"size"`
	Sorts  []SortRequest     `json:"sorts"`
	Search map[string]string `json:"search"`
}

// ToQuery builds the employee query, defaulting page to 0 and size to defaultSize.
// Every invalid page parameter, sort field or sort direction is reported together.
func (r *SearchRequest) ToQuery(defaultSize int) (query.Query[domain.SortField], error) {
	page, size := 0, defaultSize
	if r.Page != nil {
		page = *r.Page
	}
	if r.Size != nil {
		size = *r.Size
	}

	var details []apperrors.ErrorDetail

	pageResult, failure := query.NewPageResult(page, size).Get()
	if failure != nil {
		details = append(details, failure.Details()...)
	}

	sorts, sortDetails := ParseSorts(r.Sorts)
	details = append(details, sortDetails...)

	if len(details) > 0 {
		return query.Query[domain.SortField]{}, apperrors.NewValidationFailure(details...)
	}

	search := query.EmptySearch()
	for field, value := range r.Search {
		search.Add(field, value)
	}

	return query.NewQuery(&pageResult, sorts, search).Unwrap()
}

// ParseSorts converts requested orderings into sort specs. Fields accept the enum
// name or the field name in any case; a missing direction means ascending.
func ParseSorts(requests []SortRequest) ([]query.SortSpec[domain.SortField], []apperrors.ErrorDetail) {
	sorts := make([]query.SortSpec[domain.SortField], 0, len(requests))
	var details []apperrors.ErrorDetail

	for _, req := range requests {
		field, fieldOK := domain.ParseSortField(req.Field)
		if !fieldOK {
			details = append(details, apperrors.NewErrorDetail(
				"sorts", "Invalid sort field: "+req.Field, domain.CodeInvalidSortField))
		}

		direction := query.ASC
		if req.Direction != "" {
			parsed, ok := query.ParseDirection(req.Direction)
			if !ok {
				details = append(details, apperrors.NewErrorDetail(
					"sorts", "Invalid sort direction: "+req.Direction, query.CodeInvalidDirection))
				continue
			}
			direction = parsed
		}
		if !fieldOK {
			continue
		}

		spec, failure := query.NewSortSpec(field, direction).Get()
		if failure != nil {
			details = append(details, failure.Details()...)
			continue
		}
		sorts = append(sorts, spec)
	}

	return sorts, details
}
