package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/allisson/employees/internal/employee/export"
	"github.com/allisson/employees/internal/query"
)

// ExportOptions selects what the export-employees command writes.
type ExportOptions struct {
	Format string
	Output string
	Sorts  []string
	Search []string
	Size   int
}

// RunExportEmployees writes the employee directory as CSV or PDF to opts.Output, or
// to writer when no output file is given.
func RunExportEmployees(
	ctx context.Context,
	exporter *export.Exporter,
	logger *slog.Logger,
	opts ExportOptions,
	writer io.Writer,
) error {
	format, err := export.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	sorts, err := parseSortFlags(opts.Sorts)
	if err != nil {
		return err
	}

	search, err := parseSearchFlags(opts.Search)
	if err != nil {
		return err
	}

	size := opts.Size
	if size <= 0 {
		size = query.MaxPageSize
	}

	page, err := query.NewPageResult(0, size).Unwrap()
	if err != nil {
		return err
	}

	q, err := query.NewQuery(&page, sorts, search).Unwrap()
	if err != nil {
		return err
	}

	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				logger.Error("failed to close output file", slog.Any("error", err))
			}
		}()
		writer = f
	}

	count, err := exporter.Export(ctx, writer, format, q)
	if err != nil {
		return fmt.Errorf("failed to export employees: %w", err)
	}

	if opts.Output != "" {
		logger.Info("employees exported",
			slog.String("file", opts.Output),
			slog.String("format", string(format)),
			slog.Int("count", count),
		)
	}

	return nil
}
