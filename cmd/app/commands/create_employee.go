package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/allisson/employees/internal/employee/domain"
	"github.com/allisson/employees/internal/employee/http/dto"
	employeeUseCase "github.com/allisson/employees/internal/employee/usecase"
)

// cliActor is recorded as creator of employees created from the command line.
const cliActor = "cli"

// RunCreateEmployee creates a single employee. When request carries no password it
// is read from io.Reader. Outputs the stored employee in either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateEmployee(
	ctx context.Context,
	useCase employeeUseCase.UseCase,
	logger *slog.Logger,
	request dto.CreateEmployeeRequest,
	format string,
	io IOTuple,
) error {
	logger.Info("creating new employee", slog.String("email", request.Email))

	if request.Password == "" {
		password, err := promptForPassword(io)
		if err != nil {
			return fmt.Errorf("failed to get password: %w", err)
		}
		request.Password = password
	}

	input, err := request.ToInput(cliActor)
	if err != nil {
		return fmt.Errorf("failed to parse employee: %w", err)
	}

	employee, err := useCase.CreateEmployee(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	if format == "json" {
		if err := writeJSON(io.Writer, dto.MapEmployeeToResponse(employee)); err != nil {
			return err
		}
	} else {
		outputEmployeeText(employee, io.Writer)
	}

	logger.Info("employee created successfully",
		slog.String("employee_id", employee.ID),
		slog.String("email", employee.Email),
	)

	return nil
}

// promptForPassword reads one line holding the password.
func promptForPassword(io IOTuple) (string, error) {
	if io.Reader == nil {
		return "", fmt.Errorf("no input available")
	}

	_, _ = fmt.Fprint(io.Writer, "Enter password: ")
	password, err := bufio.NewReader(io.Reader).ReadString('\n')
	if err != nil && password == "" {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	_, _ = fmt.Fprintln(io.Writer)

	password = strings.TrimRight(password, "\r\n")
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}

// outputEmployeeText outputs the employee in human-readable text format.
func outputEmployeeText(employee *domain.Employee, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "\nEmployee created successfully!")
	_, _ = fmt.Fprintf(writer, "Employee ID: %s\n", employee.ID)
	_, _ = fmt.Fprintf(writer, "Email: %s\n", employee.Email)
	_, _ = fmt.Fprintf(writer, "Full name: %s\n", employee.FullName)
	_, _ = fmt.Fprintf(writer, "Designation: %s\n", employee.Designation)
	if employee.ManagerID != nil {
		_, _ = fmt.Fprintf(writer, "Manager ID: %s\n", *employee.ManagerID)
	}
}
