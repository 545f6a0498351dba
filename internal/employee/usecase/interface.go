// Package usecase implements the employee query execution engine and the employee
// service built on top of it.
package usecase

import (
	"context"

	"github.com/allisson/employees/internal/employee/domain"
	apperrors "github.com/allisson/employees/internal/errors"
	outboxDomain "github.com/allisson/employees/internal/outbox/domain"
	"github.com/allisson/employees/internal/query"
	"github.com/allisson/employees/internal/result"
)

// EmployeeQuery is a validated read request over employees.
type EmployeeQuery = query.Query[domain.SortField]

// EmployeeRepository is the storage collaborator of the engine. Implementations must
// join the transaction carried by ctx.
type EmployeeRepository interface {
	// FindByID returns domain.ErrEmployeeNotFound when id does not resolve.
	FindByID(ctx context.Context, id string) (*domain.Employee, error)

	// FindByIDForUpdate is FindByID holding a row lock until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id string) (*domain.Employee, error)

	FindPage(
		ctx context.Context,
		filter query.Filter,
		order []query.Order,
		limit, offset int,
	) ([]*domain.Employee, error)

	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByID(ctx context.Context, id string) (bool, error)

	// Insert returns domain.ErrEmailAlreadyExists or domain.ErrDuplicateKey on a
	// unique violation.
	Insert(ctx context.Context, employee *domain.Employee) error
	Update(ctx context.Context, employee *domain.Employee) error

	// Delete returns domain.ErrEmployeeNotFound when no row was removed.
	Delete(ctx context.Context, id string) error
}

// OutboxEventRepository stores lifecycle events in the caller's transaction.
type OutboxEventRepository interface {
	Create(ctx context.Context, event *outboxDomain.OutboxEvent) error
}

// PasswordHasher hashes plaintext passwords for storage.
type PasswordHasher interface {
	Hash(password []byte) (string, error)
}

// EmployeeDAO turns validated queries and commands into storage calls. Every
// expected outcome is a value: no method returns a Go error.
type EmployeeDAO interface {
	// GetEmployees returns one page of employees. Unknown search fields fail the whole
	// read with a ValidationFailure before storage is touched.
	GetEmployees(ctx context.Context, q EmployeeQuery) result.Result[[]*domain.Employee]

	// GetEmployeesPage is GetEmployees that also reports whether a further page exists.
	GetEmployeesPage(ctx context.Context, q EmployeeQuery) result.Result[EmployeeWindow]

	// GetEmployeeByID returns an absent option, not a failure, for an unknown id.
	GetEmployeeByID(ctx context.Context, id string) result.Result[result.Option[*domain.Employee]]

	// CreateEmployee fails with ERR_EMAIL_EXISTS when the email is taken.
	CreateEmployee(ctx context.Context, employee *domain.Employee) result.Result[*domain.Employee]

	// UpdateEmployee merges patch into the stored record atomically.
	UpdateEmployee(
		ctx context.Context,
		id string,
		patch domain.EmployeePatch,
	) result.Result[*domain.Employee]

	// DeleteEmployee returns nil on success.
	DeleteEmployee(ctx context.Context, id string) *apperrors.OperationFailure
}

// EmployeeWindow is one page of employees and whether more follow.
type EmployeeWindow struct {
	Employees []*domain.Employee
	HasNext   bool
}

// EmployeePage is a listed page with its position.
type EmployeePage struct {
	Employees []*domain.Employee
	Page      int
	Size      int
	HasNext   bool
}

// UseCase is the employee service. Returned errors are *apperrors.OperationFailure.
type UseCase interface {
	ListEmployees(ctx context.Context, q EmployeeQuery) (*EmployeePage, error)

	// GetEmployee fails with ERR_EMPLOYEE_NOT_FOUND for an unknown id.
	GetEmployee(ctx context.Context, id string) (*domain.Employee, error)

	CreateEmployee(ctx context.Context, input *domain.CreateEmployeeInput) (*domain.Employee, error)

	// UpdateEmployee applies a partial update; a plaintext password in patch is hashed.
	UpdateEmployee(ctx context.Context, id string, patch domain.EmployeePatch) (*domain.Employee, error)

	DeleteEmployee(ctx context.Context, id string) error
}
