package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/employees/internal/employee/domain"
	"github.com/allisson/employees/internal/employee/usecase"
)

// MockUseCase is a mock implementation of usecase.UseCase.
type MockUseCase struct {
	mock.Mock
}

// NewMockUseCase creates a MockUseCase that asserts its expectations on cleanup.
func NewMockUseCase(t testingT) *MockUseCase {
	m := &MockUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// ListEmployees mocks the ListEmployees method.
func (m *MockUseCase) ListEmployees(ctx context.Context, q usecase.EmployeeQuery) (*usecase.EmployeePage, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.EmployeePage), args.Error(1)
}

// GetEmployee mocks the GetEmployee method.
func (m *MockUseCase) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

// CreateEmployee mocks the CreateEmployee method.
func (m *MockUseCase) CreateEmployee(
	ctx context.Context,
	input *domain.CreateEmployeeInput,
) (*domain.Employee, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

// UpdateEmployee mocks the UpdateEmployee method.
func (m *MockUseCase) UpdateEmployee(
	ctx context.Context,
	id string,
	patch domain.EmployeePatch,
) (*domain.Employee, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

// DeleteEmployee mocks the DeleteEmployee method.
func (m *MockUseCase) DeleteEmployee(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
