package query

import (
	"strings"

	apperrors "github.com/allisson/employees/internal/errors"
	"github.com/allisson/employees/internal/result"
)

// Direction is a sort direction.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// ParseDirection parses "asc"/"desc" in any case.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(strings.ToUpper(strings.TrimSpace(s))) {
	case ASC:
		return ASC, true
	case DESC:
		return DESC, true
	default:
		return "", false
	}
}

// SortSpec is one (field, direction) ordering instruction over a closed field
// enumeration F whose zero value means "no field".
type SortSpec[F comparable] struct {
	field     F
	direction Direction
}

// NewSortSpec validates that both field and direction are set.
func NewSortSpec[F comparable](field F, direction Direction) result.Result[SortSpec[F]] {
	var zero F
	var details []apperrors.ErrorDetail
	if field == zero {
		details = append(details,
			apperrors.NewErrorDetail("field", "Sort field cannot be null", CodeNullField))
	}
	switch direction {
	case ASC, DESC:
	case "":
		details = append(details,
			apperrors.NewErrorDetail("direction", "Sort direction cannot be null", CodeNullDirection))
	default:
		details = append(details,
			apperrors.NewErrorDetail("direction", "Invalid sort direction: "+string(direction), CodeInvalidDirection))
	}
	if len(details) > 0 {
		return result.Fail[SortSpec[F]](apperrors.NewValidationFailure(details...))
	}
	return result.Ok(SortSpec[F]{field: field, direction: direction})
}

// Asc sorts field ascending.
func Asc[F comparable](field F) result.Result[SortSpec[F]] {
	return NewSortSpec(field, ASC)
}

// Desc sorts field descending.
func Desc[F comparable](field F) result.Result[SortSpec[F]] {
	return NewSortSpec(field, DESC)
}

// Field returns the sorted field.
func (s SortSpec[F]) Field() F {
	return s.field
}

// Direction returns the sort direction.
func (s SortSpec[F]) Direction() Direction {
	return s.direction
}

// Descending reports whether the direction is DESC.
func (s SortSpec[F]) Descending() bool {
	return s.direction == DESC
}
