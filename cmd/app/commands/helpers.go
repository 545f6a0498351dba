// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"

	"github.com/allisson/employees/internal/app"
	"github.com/allisson/employees/internal/employee/domain"
	"github.com/allisson/employees/internal/employee/http/dto"
	apperrors "github.com/allisson/employees/internal/errors"
	"github.com/allisson/employees/internal/query"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// closeMigrate closes the migration instance and logs any errors.
func closeMigrate(migrate *migrate.Migrate, logger *slog.Logger) {
	sourceError, databaseError := migrate.Close()
	if sourceError != nil || databaseError != nil {
		logger.Error(
			"failed to close the migrate",
			slog.Any("source_error", sourceError),
			slog.Any("database_error", databaseError),
		)
	}
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(writer io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(writer, string(jsonBytes))
	return err
}

// parseSortFlags converts "field" or "field,direction" values into sort specs.
func parseSortFlags(values []string) ([]query.SortSpec[domain.SortField], error) {
	requests := make([]dto.SortRequest, 0, len(values))
	for _, value := range values {
		field, direction, _ := strings.Cut(value, ",")
		requests = append(requests, dto.SortRequest{
			Field:     strings.TrimSpace(field),
			Direction: strings.TrimSpace(direction),
		})
	}

	sorts, details := dto.ParseSorts(requests)
	if len(details) > 0 {
		return nil, apperrors.NewValidationFailure(details...)
	}
	return sorts, nil
}

// parseSearchFlags converts "field=value" values into search criteria.
func parseSearchFlags(values []string) (*query.Search, error) {
	search := query.EmptySearch()
	for _, value := range values {
		field, criterion, ok := strings.Cut(value, "=")
		if !ok || strings.TrimSpace(field) == "" {
			return nil, fmt.Errorf("invalid search criterion %q (expected field=value)", value)
		}
		search.Add(strings.TrimSpace(field), criterion)
	}
	return search, nil
}
