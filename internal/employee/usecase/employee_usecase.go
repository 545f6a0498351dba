package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	"github.com/allisson/employees/internal/database"
	"github.com/allisson/employees/internal/employee/domain"
	apperrors "github.com/allisson/employees/internal/errors"
	outboxDomain "github.com/allisson/employees/internal/outbox/domain"
	appValidation "github.com/allisson/employees/internal/validation"
)

var passwordRule = appValidation.PasswordStrength{MinLength: 6}

// employeeUseCase implements UseCase on top of an EmployeeDAO.
type employeeUseCase struct {
	txManager  database.TxManager
	dao        EmployeeDAO
	outboxRepo OutboxEventRepository
	hasher     PasswordHasher
	now        func() time.Time
	newID      func() string
}

// NewEmployeeUseCase creates the employee service. A nil outboxRepo disables
// lifecycle events.
func NewEmployeeUseCase(
	txManager database.TxManager,
	dao EmployeeDAO,
	outboxRepo OutboxEventRepository,
	hasher PasswordHasher,
) UseCase {
	return &employeeUseCase{
		txManager:  txManager,
		dao:        dao,
		outboxRepo: outboxRepo,
		hasher:     hasher,
		now:        time.Now,
		newID: func() string {
			return uuid.Must(uuid.NewV7()).String()
		},
	}
}

// ListEmployees returns one page of employees and whether a next page exists.
func (uc *employeeUseCase) ListEmployees(ctx context.Context, q EmployeeQuery) (*EmployeePage, error) {
	window, err := uc.dao.GetEmployeesPage(ctx, q).Unwrap()
	if err != nil {
		return nil, err
	}

	page := q.PageRequest()
	return &EmployeePage{
		Employees: window.Employees,
		Page:      page.Page(),
		Size:      page.Size(),
		HasNext:   window.HasNext,
	}, nil
}

// GetEmployee returns the employee with id.
func (uc *employeeUseCase) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	found, err := uc.dao.GetEmployeeByID(ctx, id).Unwrap()
	if err != nil {
		return nil, err
	}

	employee, ok := found.Get()
	if !ok {
		return nil, domain.EmployeeNotFoundFailure()
	}
	return employee, nil
}

func validateCreateEmployeeInput(input *domain.CreateEmployeeInput) error {
	err := validation.ValidateStruct(input,
		validation.Field(&input.Email,
			validation.Required,
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255),
		),
		validation.Field(&input.Password,
			validation.Required,
			passwordRule,
			validation.Length(6, 128),
		),
		validation.Field(&input.FullName,
			validation.Required,
			appValidation.NotBlank,
			validation.Length(3, 50),
		),
		validation.Field(&input.PhoneNumber,
			validation.Required,
			appValidation.NotBlank,
			appValidation.PhoneNumber,
			validation.Length(1, 32),
		),
		validation.Field(&input.Dob, appValidation.NotInFuture{}),
		validation.Field(&input.Designation,
			validation.Required,
			appValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&input.Address, validation.Length(0, 1024)),
	)
	return appValidation.WrapValidationError(err)
}

func validateEmployeePatch(patch *domain.EmployeePatch) error {
	err := validation.ValidateStruct(patch,
		validation.Field(&patch.Email,
			validation.NilOrNotEmpty,
			appValidation.Email,
			validation.Length(5, 255),
		),
		validation.Field(&patch.Password,
			validation.NilOrNotEmpty,
			passwordRule,
			validation.Length(6, 128),
		),
		validation.Field(&patch.FullName,
			validation.NilOrNotEmpty,
			appValidation.NotBlank,
			validation.Length(3, 50),
		),
		validation.Field(&patch.PhoneNumber, appValidation.PhoneNumber, validation.Length(0, 32)),
		validation.Field(&patch.Dob, appValidation.NotInFuture{}),
		validation.Field(&patch.Designation, validation.Length(0, 255)),
		validation.Field(&patch.Address, validation.Length(0, 1024)),
	)
	return appValidation.WrapValidationError(err)
}

// CreateEmployee validates input, hashes the password and stores the employee
// together with an employee.created event.
func (uc *employeeUseCase) CreateEmployee(
	ctx context.Context,
	input *domain.CreateEmployeeInput,
) (*domain.Employee, error) {
	normalized := *input
	normalized.Email = domain.NormalizeEmail(normalized.Email)
	normalized.FullName = strings.TrimSpace(normalized.FullName)
	if err := validateCreateEmployeeInput(&normalized); err != nil {
		return nil, err
	}

	hashedPassword, err := uc.hasher.Hash([]byte(normalized.Password))
	if err != nil {
		return nil, apperrors.NewSystemFailure(apperrors.Wrap(err, "failed to hash password"))
	}

	now := uc.now().UTC()
	employee := normalized.ToEmployee(uc.newID(), now)
	employee.Password = hashedPassword

	var created *domain.Employee
	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		stored, err := uc.dao.CreateEmployee(ctx, employee).Unwrap()
		if err != nil {
			return err
		}
		created = stored
		return uc.emit(ctx, domain.EventEmployeeCreated, domain.NewEventPayload(stored, now))
	})
	if err != nil {
		return nil, failureOf(err)
	}
	return created, nil
}

// UpdateEmployee validates patch, hashes a new password and applies the update
// together with an employee.updated event.
func (uc *employeeUseCase) UpdateEmployee(
	ctx context.Context,
	id string,
	patch domain.EmployeePatch,
) (*domain.Employee, error) {
	if patch.Email != nil {
		email := domain.NormalizeEmail(*patch.Email)
		patch.Email = &email
	}
	if patch.FullName != nil {
		fullName := strings.TrimSpace(*patch.FullName)
		patch.FullName = &fullName
	}
	if err := validateEmployeePatch(&patch); err != nil {
		return nil, err
	}
	if patch.Password != nil {
		hashedPassword, err := uc.hasher.Hash([]byte(*patch.Password))
		if err != nil {
			return nil, apperrors.NewSystemFailure(apperrors.Wrap(err, "failed to hash password"))
		}
		patch.Password = &hashedPassword
	}

	var updated *domain.Employee
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		stored, err := uc.dao.UpdateEmployee(ctx, id, patch).Unwrap()
		if err != nil {
			return err
		}
		updated = stored
		return uc.emit(ctx, domain.EventEmployeeUpdated, domain.NewEventPayload(stored, stored.UpdatedAt))
	})
	if err != nil {
		return nil, failureOf(err)
	}
	return updated, nil
}

// DeleteEmployee removes the employee with id and records an employee.deleted event.
func (uc *employeeUseCase) DeleteEmployee(ctx context.Context, id string) error {
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if failure := uc.dao.DeleteEmployee(ctx, id); failure != nil {
			return failure
		}
		return uc.emit(ctx, domain.EventEmployeeDeleted, domain.EventPayload{
			ID:         id,
			OccurredAt: uc.now().UTC(),
		})
	})
	if err != nil {
		return failureOf(err)
	}
	return nil
}

// emit stores a lifecycle event in the current transaction.
func (uc *employeeUseCase) emit(ctx context.Context, eventType string, payload domain.EventPayload) error {
	if uc.outboxRepo == nil {
		return nil
	}

	event, err := outboxDomain.NewOutboxEvent(eventType, payload)
	if err != nil {
		return apperrors.Wrap(err, "failed to build outbox event")
	}
	if err := uc.outboxRepo.Create(ctx, event); err != nil {
		return apperrors.Wrap(err, "failed to create outbox event")
	}
	return nil
}
