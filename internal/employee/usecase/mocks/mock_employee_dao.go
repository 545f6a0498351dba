package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/employees/internal/employee/domain"
	"github.com/allisson/employees/internal/employee/usecase"
	apperrors "github.com/allisson/employees/internal/errors"
	"github.com/allisson/employees/internal/result"
)

// MockEmployeeDAO is a mock implementation of usecase.EmployeeDAO.
type MockEmployeeDAO struct {
	mock.Mock
}

// NewMockEmployeeDAO creates a MockEmployeeDAO that asserts its expectations on cleanup.
func NewMockEmployeeDAO(t testingT) *MockEmployeeDAO {
	m := &MockEmployeeDAO{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// GetEmployees mocks the GetEmployees method.
func (m *MockEmployeeDAO) GetEmployees(
	ctx context.Context,
	q usecase.EmployeeQuery,
) result.Result[[]*domain.Employee] {
	args := m.Called(ctx, q)
	return args.Get(0).(result.Result[[]*domain.Employee])
}

// GetEmployeesPage mocks the GetEmployeesPage method.
func (m *MockEmployeeDAO) GetEmployeesPage(
	ctx context.Context,
	q usecase.EmployeeQuery,
) result.Result[usecase.EmployeeWindow] {
	args := m.Called(ctx, q)
	return args.Get(0).(result.Result[usecase.EmployeeWindow])
}

// GetEmployeeByID mocks the GetEmployeeByID method.
func (m *MockEmployeeDAO) GetEmployeeByID(
	ctx context.Context,
	id string,
) result.Result[result.Option[*domain.Employee]] {
	args := m.Called(ctx, id)
	return args.Get(0).(result.Result[result.Option[*domain.Employee]])
}

// CreateEmployee mocks the CreateEmployee method.
func (m *MockEmployeeDAO) CreateEmployee(
	ctx context.Context,
	employee *domain.Employee,
) result.Result[*domain.Employee] {
	args := m.Called(ctx, employee)
	return args.Get(0).(result.Result[*domain.Employee])
}

// UpdateEmployee mocks the UpdateEmployee method.
func (m *MockEmployeeDAO) UpdateEmployee(
	ctx context.Context,
	id string,
	patch domain.EmployeePatch,
) result.Result[*domain.Employee] {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(result.Result[*domain.Employee])
}

// DeleteEmployee mocks the DeleteEmployee method.
func (m *MockEmployeeDAO) DeleteEmployee(ctx context.Context, id string) *apperrors.OperationFailure {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*apperrors.OperationFailure)
}
