package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/allisson/employees/internal/database"
	"github.com/allisson/employees/internal/employee/domain"
	apperrors "github.com/allisson/employees/internal/errors"
	"github.com/allisson/employees/internal/query"
	"github.com/allisson/employees/internal/result"
)

// employeeDAO runs employee queries and commands against an EmployeeRepository.
type employeeDAO struct {
	txManager    database.TxManager
	employeeRepo EmployeeRepository
	now          func() time.Time
}

// NewEmployeeDAO creates the employee query execution engine.
func NewEmployeeDAO(txManager database.TxManager, employeeRepo EmployeeRepository) EmployeeDAO {
	return &employeeDAO{
		txManager:    txManager,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// GetEmployees returns the page of employees selected by q.
func (d *employeeDAO) GetEmployees(ctx context.Context, q EmployeeQuery) result.Result[[]*domain.Employee] {
	page := q.PageRequest()
	return d.findPage(ctx, q, page.Size(), page.Offset())
}

// GetEmployeesPage fetches one row beyond the page to learn whether another page exists.
func (d *employeeDAO) GetEmployeesPage(ctx context.Context, q EmployeeQuery) result.Result[EmployeeWindow] {
	page := q.PageRequest()
	return result.Map(d.findPage(ctx, q, page.Size()+1, page.Offset()),
		func(employees []*domain.Employee) EmployeeWindow {
			if len(employees) > page.Size() {
				return EmployeeWindow{Employees: employees[:page.Size()], HasNext: true}
			}
			return EmployeeWindow{Employees: employees}
		})
}

func (d *employeeDAO) findPage(
	ctx context.Context,
	q EmployeeQuery,
	limit, offset int,
) result.Result[[]*domain.Employee] {
	order, failure := orderFor(q.Sorts())
	if failure != nil {
		return result.Fail[[]*domain.Employee](failure)
	}

	search, failure := domain.Schema.ValidateSearch(q.Search()).Get()
	if failure != nil {
		return result.Fail[[]*domain.Employee](failure)
	}

	employees, err := d.employeeRepo.FindPage(ctx, query.FilterFromSearch(search), order, limit, offset)
	if err != nil {
		return result.Fail[[]*domain.Employee](domain.DatabaseFailure(err))
	}
	if employees == nil {
		employees = []*domain.Employee{}
	}
	return result.Ok(employees)
}

// tieBreakColumn is appended to every ordering so offset pages are stable when the
// requested sort keys are not unique.
const tieBreakColumn = "id"

// orderFor maps sorts to columns in precedence order, then id ascending. No sorts
// means created_at ascending.
func orderFor(sorts []query.SortSpec[domain.SortField]) ([]query.Order, *apperrors.OperationFailure) {
	if len(sorts) == 0 {
		column, _ := domain.DefaultSortField.Column()
		return []query.Order{{Column: column}, {Column: tieBreakColumn}}, nil
	}

	order := make([]query.Order, 0, len(sorts)+1)
	for _, s := range sorts {
		column, ok := s.Field().Column()
		if !ok {
			return nil, domain.InvalidSortFieldFailure(string(s.Field()))
		}
		order = append(order, query.Order{Column: column, Descending: s.Descending()})
	}
	return append(order, query.Order{Column: tieBreakColumn}), nil
}

// GetEmployeeByID looks up one employee.
func (d *employeeDAO) GetEmployeeByID(
	ctx context.Context,
	id string,
) result.Result[result.Option[*domain.Employee]] {
	employee, err := d.employeeRepo.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, domain.ErrEmployeeNotFound) {
			return result.Ok(result.None[*domain.Employee]())
		}
		return result.Fail[result.Option[*domain.Employee]](domain.DatabaseFailure(err))
	}
	return result.Ok(result.Some(employee))
}

// CreateEmployee inserts employee after checking its email and manager. The email
// check is not atomic with the insert; a racing insert is caught by the unique
// constraint and reported the same way.
func (d *employeeDAO) CreateEmployee(
	ctx context.Context,
	employee *domain.Employee,
) result.Result[*domain.Employee] {
	taken, err := d.employeeRepo.ExistsByEmail(ctx, employee.Email)
	if err != nil {
		return result.Fail[*domain.Employee](domain.DatabaseFailure(err))
	}
	if taken {
		return result.Fail[*domain.Employee](domain.EmailExistsFailure())
	}

	if employee.HasManager() {
		if failure := d.checkManager(ctx, employee.ID, *employee.ManagerID); failure != nil {
			return result.Fail[*domain.Employee](failure)
		}
	}

	if err := d.employeeRepo.Insert(ctx, employee); err != nil {
		return result.Fail[*domain.Employee](writeFailure(err))
	}
	return result.Ok(employee)
}

// UpdateEmployee locks the record, merges patch and writes it back in one transaction.
func (d *employeeDAO) UpdateEmployee(
	ctx context.Context,
	id string,
	patch domain.EmployeePatch,
) result.Result[*domain.Employee] {
	var updated *domain.Employee

	err := d.txManager.WithTx(ctx, func(ctx context.Context) error {
		current, err := d.employeeRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			if apperrors.Is(err, domain.ErrEmployeeNotFound) {
				return domain.EmployeeNotFoundFailure()
			}
			return domain.DatabaseFailure(err)
		}

		if patch.Email != nil && !strings.EqualFold(*patch.Email, current.Email) {
			taken, err := d.employeeRepo.ExistsByEmail(ctx, *patch.Email)
			if err != nil {
				return domain.DatabaseFailure(err)
			}
			if taken {
				return domain.EmailExistsFailure()
			}
		}

		managerID := current.ManagerID
		switch patch.ManagerChange() {
		case domain.ManagerCleared:
			managerID = nil
		case domain.ManagerAssigned:
			candidate := strings.TrimSpace(*patch.ManagerID)
			if failure := d.checkManager(ctx, current.ID, candidate); failure != nil {
				return failure
			}
			managerID = &candidate
		}

		patch.ApplyTo(current)
		current.ManagerID = managerID
		current.UpdatedAt = d.now().UTC()

		if err := d.employeeRepo.Update(ctx, current); err != nil {
			return writeFailure(err)
		}
		updated = current
		return nil
	})
	if err != nil {
		return result.Fail[*domain.Employee](failureOf(err))
	}
	return result.Ok(updated)
}

// DeleteEmployee checks existence and deletes in one transaction.
func (d *employeeDAO) DeleteEmployee(ctx context.Context, id string) *apperrors.OperationFailure {
	err := d.txManager.WithTx(ctx, func(ctx context.Context) error {
		exists, err := d.employeeRepo.ExistsByID(ctx, id)
		if err != nil {
			return domain.DatabaseFailure(err)
		}
		if !exists {
			return domain.EmployeeNotFoundFailure()
		}
		if err := d.employeeRepo.Delete(ctx, id); err != nil {
			return writeFailure(err)
		}
		return nil
	})
	if err != nil {
		return failureOf(err)
	}
	return nil
}

// checkManager validates that managerID may manage the employee with id.
func (d *employeeDAO) checkManager(ctx context.Context, id, managerID string) *apperrors.OperationFailure {
	if managerID == id {
		return domain.SelfManagerFailure()
	}
	exists, err := d.employeeRepo.ExistsByID(ctx, managerID)
	if err != nil {
		return domain.DatabaseFailure(err)
	}
	if !exists {
		return domain.ManagerNotFoundFailure()
	}
	return nil
}

// writeFailure classifies a repository write error.
func writeFailure(err error) *apperrors.OperationFailure {
	switch {
	case apperrors.Is(err, domain.ErrEmailAlreadyExists):
		return domain.EmailExistsFailure().WithCause(err)
	case apperrors.Is(err, domain.ErrDuplicateKey):
		return domain.DuplicateKeyFailure(err)
	case apperrors.Is(err, domain.ErrEmployeeNotFound):
		return domain.EmployeeNotFoundFailure()
	default:
		return domain.DatabaseFailure(err)
	}
}

// failureOf keeps a failure returned from a transaction body; anything else came from
// the transaction itself.
func failureOf(err error) *apperrors.OperationFailure {
	if failure, ok := apperrors.AsFailure(err); ok {
		return failure
	}
	return domain.DatabaseFailure(err)
}
