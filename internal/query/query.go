package query

import (
	apperrors "github.com/allisson/employees/internal/errors"
	"github.com/allisson/employees/internal/result"
)

// Query composes pagination, ordered sorts and search into one validated read request.
// The order of sorts is the tie-break precedence.
type Query[F comparable] struct {
	pageRequest PageResult
	sorts       []SortSpec[F]
	search      *Search
}

// NewQuery validates that pageRequest and sorts are present, reporting both when
// both are missing. An empty (non-nil) sort list is valid. A nil search becomes an
// empty one. The search is copied, so later changes to it are not observed.
func NewQuery[F comparable](pageRequest *PageResult, sorts []SortSpec[F], search *Search) result.Result[Query[F]] {
	var details []apperrors.ErrorDetail
	if pageRequest == nil {
		details = append(details,
			apperrors.NewErrorDetail("pageRequest", "Page request cannot be null", CodeNullPageRequest))
	}
	if sorts == nil {
		details = append(details,
			apperrors.NewErrorDetail("sorts", "Sort list cannot be null", CodeNullSortList))
	}
	if len(details) > 0 {
		return result.Fail[Query[F]](apperrors.NewValidationFailure(details...))
	}

	return result.Ok(Query[F]{
		pageRequest: *pageRequest,
		sorts:       append([]SortSpec[F]{}, sorts...),
		search:      CopyOf(search),
	})
}

// DefaultQuery returns the default page, no sorts and no search.
func DefaultQuery[F comparable]() Query[F] {
	return Query[F]{
		pageRequest: DefaultPage(),
		sorts:       []SortSpec[F]{},
		search:      EmptySearch(),
	}
}

// PageRequest returns the pagination.
func (q Query[F]) PageRequest() PageResult {
	return q.pageRequest
}

// Sorts returns a copy of the sort list.
func (q Query[F]) Sorts() []SortSpec[F] {
	return append([]SortSpec[F]{}, q.sorts...)
}

// Search returns a copy of the search criteria.
func (q Query[F]) Search() *Search {
	return CopyOf(q.search)
}
