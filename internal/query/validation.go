package query

import (
	apperrors "github.com/allisson/employees/internal/errors"
	"github.com/allisson/employees/internal/result"
)

// ValidateSearch checks every criterion key against known. A nil or empty search is
// returned unchanged. Unknown keys are all reported, one ERR_INVALID_SEARCH_FIELD
// detail each, in lexical key order. On success a defensive copy is returned.
func ValidateSearch(search *Search, known FieldSet) result.Result[*Search] {
	if !search.HasCriteria() {
		return result.Ok(search)
	}

	var details []apperrors.ErrorDetail
	for _, field := range search.Fields() {
		if !known.Contains(field) {
			details = append(details,
				apperrors.NewErrorDetail(field, "Invalid search field", CodeInvalidSearchField))
		}
	}
	if len(details) > 0 {
		return result.Fail[*Search](apperrors.NewValidationFailure(details...))
	}

	return result.Ok(CopyOf(search))
}

// ValidateSearch checks search against the schema's searchable fields.
func (s *Schema) ValidateSearch(search *Search) result.Result[*Search] {
	return ValidateSearch(search, s.searchable)
}
