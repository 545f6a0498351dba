// Package query provides the validated building blocks of a read request: pagination,
// multi-field sorting and free-field search, composed into a single Query.
package query

import (
	"math"

	apperrors "github.com/allisson/employees/internal/errors"
	"github.com/allisson/employees/internal/result"
)

const (
	// DefaultPageSize is the page size of DefaultPage.
	DefaultPageSize = 20
	// MaxPageSize is the largest accepted page size.
	MaxPageSize = 1000
)

// Error codes reported by the query value objects.
const (
	CodeNegativePage       = "ERR_NEGATIVE_PAGE"
	CodeInvalidPageSize    = "ERR_INVALID_PAGE_SIZE"
	CodePageSizeTooLarge   = "ERR_PAGE_SIZE_TOO_LARGE"
	CodePageTooLarge       = "ERR_PAGE_TOO_LARGE"
	CodeNullPageRequest    = "ERR_NULL_PAGE_REQUEST"
	CodeNullSortList       = "ERR_NULL_SORT_LIST"
	CodeNullField          = "ERR_NULL_FIELD"
	CodeNullDirection      = "ERR_NULL_DIRECTION"
	CodeInvalidDirection   = "ERR_INVALID_SORT_DIRECTION"
	CodeInvalidSearchField = "ERR_INVALID_SEARCH_FIELD"
)

// PageResult is a validated zero-based page index and page size.
type PageResult struct {
	page int
	size int
}

// NewPageResult validates page >= 0, 0 < size <= MaxPageSize and that page*size fits
// in an int, reporting every violated rule in one ValidationFailure.
func NewPageResult(page, size int) result.Result[PageResult] {
	var details []apperrors.ErrorDetail
	if page < 0 {
		details = append(details,
			apperrors.NewErrorDetail("page", "Page index cannot be negative", CodeNegativePage))
	}
	if size <= 0 {
		details = append(details,
			apperrors.NewErrorDetail("size", "Page size must be greater than 0", CodeInvalidPageSize))
	}
	if size > MaxPageSize {
		details = append(details,
			apperrors.NewErrorDetail("size", "Page size too large. Maximum allowed is 1000", CodePageSizeTooLarge))
	}
	if size > 0 && page > math.MaxInt/size {
		details = append(details,
			apperrors.NewErrorDetail("page", "Page index too large for the page size", CodePageTooLarge))
	}
	if len(details) > 0 {
		return result.Fail[PageResult](apperrors.NewValidationFailure(details...))
	}
	return result.Ok(PageResult{page: page, size: size})
}

// DefaultPage returns the first page with DefaultPageSize entries.
func DefaultPage() PageResult {
	return PageResult{page: 0, size: DefaultPageSize}
}

// Page returns the zero-based page index.
func (p PageResult) Page() int {
	return p.page
}

// Size returns the page size.
func (p PageResult) Size() int {
	return p.size
}

// Offset returns page*size.
func (p PageResult) Offset() int {
	return p.page * p.size
}
