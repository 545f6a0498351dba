package usecase

import (
	"context"
	"time"

	"github.com/allisson/employees/internal/employee/domain"
	apperrors "github.com/allisson/employees/internal/errors"
	"github.com/allisson/employees/internal/metrics"
)

const metricsDomain = "employee"

// employeeUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type employeeUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewEmployeeUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewEmployeeUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &employeeUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// statusOf labels an outcome with "success" or the failure category.
func statusOf(err error) string {
	if err == nil {
		return metrics.StatusSuccess
	}
	return string(apperrors.CategoryOf(apperrors.ToFailure(err)))
}

func (e *employeeUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := statusOf(err)
	e.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	e.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// ListEmployees records metrics for employee listing.
func (e *employeeUseCaseWithMetrics) ListEmployees(ctx context.Context, q EmployeeQuery) (*EmployeePage, error) {
	start := time.Now()
	page, err := e.next.ListEmployees(ctx, q)
	e.record(ctx, "employee_list", start, err)
	return page, err
}

// GetEmployee records metrics for employee retrieval.
func (e *employeeUseCaseWithMetrics) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	start := time.Now()
	employee, err := e.next.GetEmployee(ctx, id)
	e.record(ctx, "employee_get", start, err)
	return employee, err
}

// CreateEmployee records metrics for employee creation.
func (e *employeeUseCaseWithMetrics) CreateEmployee(
	ctx context.Context,
	input *domain.CreateEmployeeInput,
) (*domain.Employee, error) {
	start := time.Now()
	employee, err := e.next.CreateEmployee(ctx, input)
	e.record(ctx, "employee_create", start, err)
	return employee, err
}

// UpdateEmployee records metrics for employee updates.
func (e *employeeUseCaseWithMetrics) UpdateEmployee(
	ctx context.Context,
	id string,
	patch domain.EmployeePatch,
) (*domain.Employee, error) {
	start := time.Now()
	employee, err := e.next.UpdateEmployee(ctx, id, patch)
	e.record(ctx, "employee_update", start, err)
	return employee, err
}

// DeleteEmployee records metrics for employee deletion.
func (e *employeeUseCaseWithMetrics) DeleteEmployee(ctx context.Context, id string) error {
	start := time.Now()
	err := e.next.DeleteEmployee(ctx, id)
	e.record(ctx, "employee_delete", start, err)
	return err
}
