package errors

import (
	"fmt"
	"strings"
)

// Kind identifies one variant of the closed OperationFailure set.
type Kind int

const (
	// KindValidation marks malformed or rule-violating input.
	KindValidation Kind = iota + 1
	// KindResourceNotFound marks a reference that does not resolve.
	KindResourceNotFound
	// KindResourceConflict marks a clash with existing data.
	KindResourceConflict
	// KindInfrastructure marks an unexpected failure of a dependency such as storage.
	KindInfrastructure
	// KindSystem marks anything not otherwise classified.
	KindSystem
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindResourceNotFound:
		return "resource_not_found"
	case KindResourceConflict:
		return "resource_conflict"
	case KindInfrastructure:
		return "infrastructure"
	case KindSystem:
		return "system"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) defaultMessage() string {
	switch k {
	case KindValidation:
		return "Validation failure occurred."
	case KindResourceNotFound:
		return "Resource not found failure occurred."
	case KindResourceConflict:
		return "Resource conflict failure occurred."
	case KindInfrastructure:
		return "Infrastructure failure occurred."
	default:
		return "System failure occurred."
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrInvalidInput
	case KindResourceNotFound:
		return ErrNotFound
	case KindResourceConflict:
		return ErrConflict
	case KindInfrastructure:
		return ErrUnavailable
	default:
		return ErrInternal
	}
}

// ErrorDetail is one field-level or contextual annotation of a failure.
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// NewErrorDetail creates an ErrorDetail.
func NewErrorDetail(field, message, code string) ErrorDetail {
	return ErrorDetail{Field: field, Message: message, Code: code}
}

// OperationFailure is an expected domain failure returned as a value.
// Instances are immutable; the With* methods return modified copies.
// Only the constructors in this package can create one, so Kind is always valid.
type OperationFailure struct {
	kind    Kind
	details []ErrorDetail
	cause   error
	message string
}

func newFailure(kind Kind, cause error, details []ErrorDetail) *OperationFailure {
	return &OperationFailure{
		kind:    kind,
		details: append([]ErrorDetail(nil), details...),
		cause:   cause,
		message: kind.defaultMessage(),
	}
}

// NewValidationFailure reports bad input.
func NewValidationFailure(details ...ErrorDetail) *OperationFailure {
	return newFailure(KindValidation, nil, details)
}

// NewResourceNotFoundFailure reports an unresolved reference.
func NewResourceNotFoundFailure(details ...ErrorDetail) *OperationFailure {
	return newFailure(KindResourceNotFound, nil, details)
}

// NewResourceConflictFailure reports a clash with existing data.
func NewResourceConflictFailure(details ...ErrorDetail) *OperationFailure {
	return newFailure(KindResourceConflict, nil, details)
}

// NewInfrastructureFailure reports an unexpected dependency error. The cause is kept
// for diagnostics.
func NewInfrastructureFailure(cause error, details ...ErrorDetail) *OperationFailure {
	return newFailure(KindInfrastructure, cause, details)
}

// NewSystemFailure reports an unclassified error.
func NewSystemFailure(cause error, details ...ErrorDetail) *OperationFailure {
	return newFailure(KindSystem, cause, details)
}

// Kind returns the failure variant.
func (f *OperationFailure) Kind() Kind {
	return f.kind
}

// Details returns a copy of the ordered error details.
func (f *OperationFailure) Details() []ErrorDetail {
	return append([]ErrorDetail(nil), f.details...)
}

// Cause returns the underlying error, if any.
func (f *OperationFailure) Cause() error {
	return f.cause
}

// Message returns the human readable summary.
func (f *OperationFailure) Message() string {
	return f.message
}

// Codes returns the detail codes in order.
func (f *OperationFailure) Codes() []string {
	codes := make([]string, 0, len(f.details))
	for _, d := range f.details {
		codes = append(codes, d.Code)
	}
	return codes
}

// HasCode reports whether any detail carries code.
func (f *OperationFailure) HasCode(code string) bool {
	for _, d := range f.details {
		if d.Code == code {
			return true
		}
	}
	return false
}

// WithMessage returns a copy with the summary message replaced.
func (f *OperationFailure) WithMessage(message string) *OperationFailure {
	cp := *f
	cp.details = f.Details()
	cp.message = message
	return &cp
}

// WithCause returns a copy with the underlying error replaced.
func (f *OperationFailure) WithCause(cause error) *OperationFailure {
	cp := *f
	cp.details = f.Details()
	cp.cause = cause
	return &cp
}

// Error implements error.
func (f *OperationFailure) Error() string {
	if len(f.details) == 0 {
		return fmt.Sprintf("%s: %s", f.kind, f.message)
	}
	parts := make([]string, 0, len(f.details))
	for _, d := range f.details {
		if d.Field != "" {
			parts = append(parts, fmt.Sprintf("%s(%s): %s", d.Code, d.Field, d.Message))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", d.Code, d.Message))
	}
	return fmt.Sprintf("%s: %s [%s]", f.kind, f.message, strings.Join(parts, "; "))
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (f *OperationFailure) Unwrap() error {
	return f.cause
}

// Is matches the category sentinel of the failure kind, so errors.Is(f, ErrNotFound)
// holds for a ResourceNotFound failure.
func (f *OperationFailure) Is(target error) bool {
	return target == f.kind.sentinel()
}

// AsFailure extracts an OperationFailure from err's tree.
func AsFailure(err error) (*OperationFailure, bool) {
	var f *OperationFailure
	if As(err, &f) {
		return f, true
	}
	return nil, false
}

// ToFailure returns the OperationFailure inside err, or a SystemFailure wrapping err.
// A nil err yields nil.
func ToFailure(err error) *OperationFailure {
	if err == nil {
		return nil
	}
	if f, ok := AsFailure(err); ok {
		return f
	}
	return NewSystemFailure(err)
}

// Visitor handles every OperationFailure variant. Adding a variant adds a method
// here, which breaks every implementation until it is handled.
type Visitor[T any] interface {
	Validation(f *OperationFailure) T
	ResourceNotFound(f *OperationFailure) T
	ResourceConflict(f *OperationFailure) T
	Infrastructure(f *OperationFailure) T
	System(f *OperationFailure) T
}

// Fold dispatches f to the visitor method for its variant.
func Fold[T any](f *OperationFailure, v Visitor[T]) T {
	switch f.kind {
	case KindValidation:
		return v.Validation(f)
	case KindResourceNotFound:
		return v.ResourceNotFound(f)
	case KindResourceConflict:
		return v.ResourceConflict(f)
	case KindInfrastructure:
		return v.Infrastructure(f)
	case KindSystem:
		return v.System(f)
	default:
		panic(fmt.Sprintf("errors: unhandled failure kind %s", f.kind))
	}
}
