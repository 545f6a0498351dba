// Package mocks provides testify mocks for the employee usecase interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/employees/internal/employee/domain"
	"github.com/allisson/employees/internal/query"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockEmployeeRepository is a mock implementation of usecase.EmployeeRepository.
type MockEmployeeRepository struct {
	mock.Mock
}

// NewMockEmployeeRepository creates a MockEmployeeRepository that asserts its
// expectations on cleanup.
func NewMockEmployeeRepository(t testingT) *MockEmployeeRepository {
	m := &MockEmployeeRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// FindByID mocks the FindByID method.
func (m *MockEmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

// FindByIDForUpdate mocks the FindByIDForUpdate method.
func (m *MockEmployeeRepository) FindByIDForUpdate(ctx context.Context, id string) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

// FindPage mocks the FindPage method.
func (m *MockEmployeeRepository) FindPage(
	ctx context.Context,
	filter query.Filter,
	order []query.Order,
	limit, offset int,
) ([]*domain.Employee, error) {
	args := m.Called(ctx, filter, order, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Employee), args.Error(1)
}

// ExistsByEmail mocks the ExistsByEmail method.
func (m *MockEmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// ExistsByID mocks the ExistsByID method.
func (m *MockEmployeeRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// Insert mocks the Insert method.
func (m *MockEmployeeRepository) Insert(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

// Update mocks the Update method.
func (m *MockEmployeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

// Delete mocks the Delete method.
func (m *MockEmployeeRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
