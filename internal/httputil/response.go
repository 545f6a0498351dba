// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/employees/internal/errors"
)

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Code         int                     `json:"code"`
	Error        string                  `json:"error"`
	ErrorCode    string                  `json:"error_code"`
	Message      string                  `json:"message"`
	ErrorDetails []apperrors.ErrorDetail `json:"error_details,omitempty"`
}

// StatusCode returns the HTTP status presenting category.
func StatusCode(category apperrors.Category) int {
	switch category {
	case apperrors.CategoryBadInput:
		return http.StatusBadRequest
	case apperrors.CategoryMissingResource:
		return http.StatusNotFound
	case apperrors.CategoryConflict:
		return http.StatusConflict
	case apperrors.CategoryDependencyUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse renders err through the failure mapper. Errors that are not an
// OperationFailure are treated as system failures.
func NewErrorResponse(err error) ErrorResponse {
	mapped := apperrors.MapFailure(apperrors.ToFailure(err))
	return ErrorResponse{
		Code:         StatusCode(mapped.Category),
		Error:        string(mapped.Category),
		ErrorCode:    mapped.ErrorCode,
		Message:      mapped.Message,
		ErrorDetails: mapped.Details,
	}
}

// HandleErrorGin writes the canonical error response for err. The full error,
// including any storage text kept inside the failure, is logged and never sent.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	response := NewErrorResponse(err)

	if logger != nil {
		level := slog.LevelWarn
		if response.Code >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request failed",
			slog.Int("status_code", response.Code),
			slog.String("error", response.Error),
			slog.String("error_code", response.ErrorCode),
			slog.Any("cause", err),
		)
	}

	c.JSON(response.Code, response)
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed JSON or parameters.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	HandleErrorGin(c, apperrors.NewValidationFailure(
		apperrors.NewErrorDetail("", err.Error(), CodeMalformedRequest),
	).WithCause(err), logger)
}
