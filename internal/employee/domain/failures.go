package domain

import (
	apperrors "github.com/allisson/employees/internal/errors"
)

// Error codes raised by employee operations.
const (
	CodeEmailExists      = "ERR_EMAIL_EXISTS"
	CodeEmployeeNotFound = "ERR_EMPLOYEE_NOT_FOUND"
	CodeSelfManager      = "ERR_SELF_MANAGER"
	CodeManagerNotFound  = "ERR_MANAGER_NOT_FOUND"
	CodeDatabase         = "ERR_DB"
	CodeDuplicateKey     = "ERR_DUPLICATE_KEY"
	CodeInvalidSortField = "ERR_INVALID_SORT_FIELD"
)

// Storage errors returned by employee repositories.
var (
	// ErrEmployeeNotFound indicates no row has the requested id.
	ErrEmployeeNotFound = apperrors.Wrap(apperrors.ErrNotFound, "employee not found")

	// ErrEmailAlreadyExists indicates the email unique constraint rejected a write.
	ErrEmailAlreadyExists = apperrors.Wrap(apperrors.ErrConflict, "email already exists")

	// ErrDuplicateKey indicates any other unique constraint rejected a write.
	ErrDuplicateKey = apperrors.Wrap(apperrors.ErrConflict, "duplicate key")
)

// EmailExistsFailure reports a taken email.
func EmailExistsFailure() *apperrors.OperationFailure {
	return apperrors.NewResourceConflictFailure(
		apperrors.NewErrorDetail("email", "Email already exists", CodeEmailExists),
	).WithMessage("Email already exists")
}

// EmployeeNotFoundFailure reports an id that does not resolve.
func EmployeeNotFoundFailure() *apperrors.OperationFailure {
	return apperrors.NewResourceNotFoundFailure(
		apperrors.NewErrorDetail("id", "Employee not found", CodeEmployeeNotFound),
	).WithMessage("Employee not found")
}

// SelfManagerFailure reports an employee assigned as their own manager.
func SelfManagerFailure() *apperrors.OperationFailure {
	return apperrors.NewValidationFailure(
		apperrors.NewErrorDetail("managerId", "Employee cannot manage themselves", CodeSelfManager),
	)
}

// ManagerNotFoundFailure reports a managerId that does not resolve.
func ManagerNotFoundFailure() *apperrors.OperationFailure {
	return apperrors.NewValidationFailure(
		apperrors.NewErrorDetail("managerId", "Manager not found", CodeManagerNotFound),
	)
}

// DatabaseFailure wraps an unexpected storage error, keeping its text.
func DatabaseFailure(err error) *apperrors.OperationFailure {
	return apperrors.NewInfrastructureFailure(err,
		apperrors.NewErrorDetail("database", errorText(err), CodeDatabase),
	)
}

// DuplicateKeyFailure reports a unique constraint other than email rejecting a write.
func DuplicateKeyFailure(err error) *apperrors.OperationFailure {
	return apperrors.NewValidationFailure(
		apperrors.NewErrorDetail("key", errorText(err), CodeDuplicateKey),
	).WithCause(err)
}

// InvalidSortFieldFailure reports a sort field outside SortField.
func InvalidSortFieldFailure(value string) *apperrors.OperationFailure {
	return apperrors.NewValidationFailure(
		apperrors.NewErrorDetail("sorts", "Invalid sort field: "+value, CodeInvalidSortField),
	)
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
