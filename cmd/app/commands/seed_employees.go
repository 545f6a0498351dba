package commands

import (
	"context"
	"fmt"
	"log/slog"

	employeeUseCase "github.com/allisson/employees/internal/employee/usecase"
)

// RunSeedEmployees loads employees from the JSON file at path. Existing emails are
// skipped, so the command can be re-run safely.
func RunSeedEmployees(
	ctx context.Context,
	seeder *employeeUseCase.Seeder,
	logger *slog.Logger,
	path string,
	format string,
	io IOTuple,
) error {
	logger.Info("seeding employees", slog.String("file", path))

	report, err := seeder.SeedFile(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to seed employees: %w", err)
	}

	if format == "json" {
		return writeJSON(io.Writer, map[string]int{
			"created": report.Created,
			"skipped": report.Skipped,
			"linked":  report.Linked,
		})
	}

	_, _ = fmt.Fprintln(io.Writer, "\nEmployee seeding completed!")
	_, _ = fmt.Fprintf(io.Writer, "Created: %d\n", report.Created)
	_, _ = fmt.Fprintf(io.Writer, "Skipped: %d\n", report.Skipped)
	_, _ = fmt.Fprintf(io.Writer, "Managers linked: %d\n", report.Linked)
	return nil
}
