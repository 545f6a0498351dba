// Package export renders the employee directory selected by a query as CSV or PDF.
package export

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/allisson/employees/internal/employee/domain"
	"github.com/allisson/employees/internal/employee/usecase"
	apperrors "github.com/allisson/employees/internal/errors"
	"github.com/allisson/employees/internal/query"
)

// Format is an export file format.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// ErrUnsupportedFormat is returned for a format other than csv or pdf.
var ErrUnsupportedFormat = apperrors.Wrap(apperrors.ErrInvalidInput, "unsupported export format")

// ParseFormat parses "csv" or "pdf" in any case.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", apperrors.Wrapf(ErrUnsupportedFormat, "%q", s)
	}
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "text/csv; charset=utf-8"
}

// renderer writes a set of employees in one format.
type renderer interface {
	Render(w io.Writer, employees []*domain.Employee) error
}

func rendererFor(f Format) (renderer, error) {
	switch f {
	case FormatCSV:
		return csvRenderer{}, nil
	case FormatPDF:
		return pdfRenderer{}, nil
	default:
		return nil, apperrors.Wrapf(ErrUnsupportedFormat, "%q", string(f))
	}
}

// Exporter pages through the employee service and renders every matching record.
type Exporter struct {
	useCase usecase.UseCase
	logger  *slog.Logger
}

// NewExporter creates an Exporter.
func NewExporter(useCase usecase.UseCase, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Exporter{useCase: useCase, logger: logger}
}

// Export writes every employee matched by q, starting at q's page and following
// pages of q's size until none remain. It returns the number of exported records.
func (e *Exporter) Export(ctx context.Context, w io.Writer, format Format, q usecase.EmployeeQuery) (int, error) {
	r, err := rendererFor(format)
	if err != nil {
		return 0, err
	}

	employees, err := e.collect(ctx, q)
	if err != nil {
		return 0, err
	}

	if err := r.Render(w, employees); err != nil {
		return 0, apperrors.Wrapf(err, "failed to render %s export", format)
	}

	e.logger.Info("employees exported",
		slog.String("format", string(format)),
		slog.Int("count", len(employees)),
	)
	return len(employees), nil
}

func (e *Exporter) collect(ctx context.Context, q usecase.EmployeeQuery) ([]*domain.Employee, error) {
	var employees []*domain.Employee
	current := q

	for {
		page, err := e.useCase.ListEmployees(ctx, current)
		if err != nil {
			return nil, err
		}
		employees = append(employees, page.Employees...)
		if !page.HasNext {
			return employees, nil
		}

		next, failure := query.NewPageResult(page.Page+1, page.Size).Get()
		if failure != nil {
			return nil, failure
		}
		current, failure = query.NewQuery(&next, q.Sorts(), q.Search()).Get()
		if failure != nil {
			return nil, failure
		}
	}
}
