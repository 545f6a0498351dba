package httputil

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/employees/internal/errors"
	"github.com/allisson/employees/internal/query"
)

// Request parsing error codes.
const (
	CodeMalformedRequest = "ERR_MALFORMED_REQUEST"
	CodeInvalidNumber    = "ERR_INVALID_NUMBER"
)

// ParsePageRequest reads the "page" and "size" query parameters, defaulting to page 0
// and defaultSize. Every malformed or out-of-range parameter is reported in one
// ValidationFailure.
func ParsePageRequest(c *gin.Context, defaultSize int) (query.PageResult, error) {
	page, pageErr := intParam(c, "page", 0)
	size, sizeErr := intParam(c, "size", defaultSize)

	var details []apperrors.ErrorDetail
	if pageErr != nil {
		details = append(details, *pageErr)
	}
	if sizeErr != nil {
		details = append(details, *sizeErr)
	}
	if len(details) > 0 {
		return query.PageResult{}, apperrors.NewValidationFailure(details...)
	}

	return query.NewPageResult(page, size).Unwrap()
}

func intParam(c *gin.Context, name string, fallback int) (int, *apperrors.ErrorDetail) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		detail := apperrors.NewErrorDetail(name, name+" must be an integer", CodeInvalidNumber)
		return 0, &detail
	}
	return v, nil
}
