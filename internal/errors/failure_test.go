package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationFailure_Constructors(t *testing.T) {
	cause := errors.New("connection refused")
	detail := NewErrorDetail("email", "Email already exists", "ERR_EMAIL_EXISTS")

	tests := []struct {
		name     string
		failure  *OperationFailure
		kind     Kind
		message  string
		sentinel error
	}{
		{"validation", NewValidationFailure(detail), KindValidation, "Validation failure occurred.", ErrInvalidInput},
		{
			"not found",
			NewResourceNotFoundFailure(detail),
			KindResourceNotFound,
			"Resource not found failure occurred.",
			ErrNotFound,
		},
		{
			"conflict",
			NewResourceConflictFailure(detail),
			KindResourceConflict,
			"Resource conflict failure occurred.",
			ErrConflict,
		},
		{
			"infrastructure",
			NewInfrastructureFailure(cause, detail),
			KindInfrastructure,
			"Infrastructure failure occurred.",
			ErrUnavailable,
		},
		{"system", NewSystemFailure(cause, detail), KindSystem, "System failure occurred.", ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.failure.Kind())
			assert.Equal(t, tt.message, tt.failure.Message())
			assert.Equal(t, []ErrorDetail{detail}, tt.failure.Details())
			assert.True(t, errors.Is(tt.failure, tt.sentinel))
			assert.True(t, tt.failure.HasCode("ERR_EMAIL_EXISTS"))
		})
	}
}

func TestOperationFailure_IsOnlyMatchesOwnCategory(t *testing.T) {
	f := NewResourceNotFoundFailure()

	assert.True(t, errors.Is(f, ErrNotFound))
	assert.False(t, errors.Is(f, ErrConflict))
	assert.False(t, errors.Is(f, ErrInvalidInput))
}

func TestOperationFailure_UnwrapsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	f := NewInfrastructureFailure(cause, NewErrorDetail("database", cause.Error(), "ERR_DB"))

	assert.True(t, errors.Is(f, cause))
	assert.Equal(t, cause, f.Cause())

	wrapped := Wrap(f, "list employees")
	got, ok := AsFailure(wrapped)
	require.True(t, ok)
	assert.Same(t, f, got)
}

func TestOperationFailure_DetailsAreCopied(t *testing.T) {
	details := []ErrorDetail{NewErrorDetail("page", "Page index cannot be negative", "ERR_NEGATIVE_PAGE")}
	f := NewValidationFailure(details...)

	details[0].Code = "CHANGED"
	got := f.Details()
	got[0].Code = "CHANGED_AGAIN"

	assert.Equal(t, []string{"ERR_NEGATIVE_PAGE"}, f.Codes())
}

func TestOperationFailure_WithMessageAndCause(t *testing.T) {
	original := NewValidationFailure(NewErrorDetail("size", "Page size must be greater than 0", "ERR_INVALID_PAGE_SIZE"))
	cause := errors.New("boom")

	changed := original.WithMessage("Invalid page").WithCause(cause)

	assert.Equal(t, "Validation failure occurred.", original.Message())
	assert.Nil(t, original.Cause())
	assert.Equal(t, "Invalid page", changed.Message())
	assert.Equal(t, cause, changed.Cause())
	assert.Equal(t, original.Details(), changed.Details())
}

func TestOperationFailure_Error(t *testing.T) {
	t.Run("Success_WithDetails", func(t *testing.T) {
		f := NewValidationFailure(
			NewErrorDetail("page", "Page index cannot be negative", "ERR_NEGATIVE_PAGE"),
			NewErrorDetail("", "Page size must be greater than 0", "ERR_INVALID_PAGE_SIZE"),
		)
		assert.Equal(
			t,
			"validation: Validation failure occurred. [ERR_NEGATIVE_PAGE(page): Page index cannot be negative; "+
				"ERR_INVALID_PAGE_SIZE: Page size must be greater than 0]",
			f.Error(),
		)
	})

	t.Run("Success_WithoutDetails", func(t *testing.T) {
		f := NewSystemFailure(nil)
		assert.Equal(t, "system: System failure occurred.", f.Error())
	})
}

func TestToFailure(t *testing.T) {
	t.Run("Success_Nil", func(t *testing.T) {
		assert.Nil(t, ToFailure(nil))
	})

	t.Run("Success_ExistingFailure", func(t *testing.T) {
		f := NewResourceConflictFailure()
		assert.Same(t, f, ToFailure(Wrap(f, "context")))
	})

	t.Run("Success_PlainErrorBecomesSystemFailure", func(t *testing.T) {
		err := errors.New("unexpected")
		f := ToFailure(err)
		require.NotNil(t, f)
		assert.Equal(t, KindSystem, f.Kind())
		assert.Equal(t, err, f.Cause())
	})
}

type kindNamer struct{}

func (kindNamer) Validation(*OperationFailure) string       { return "validation" }
func (kindNamer) ResourceNotFound(*OperationFailure) string { return "not_found" }
func (kindNamer) ResourceConflict(*OperationFailure) string { return "conflict" }
func (kindNamer) Infrastructure(*OperationFailure) string   { return "infrastructure" }
func (kindNamer) System(*OperationFailure) string           { return "system" }

func TestFold(t *testing.T) {
	assert.Equal(t, "validation", Fold[string](NewValidationFailure(), kindNamer{}))
	assert.Equal(t, "not_found", Fold[string](NewResourceNotFoundFailure(), kindNamer{}))
	assert.Equal(t, "conflict", Fold[string](NewResourceConflictFailure(), kindNamer{}))
	assert.Equal(t, "infrastructure", Fold[string](NewInfrastructureFailure(nil), kindNamer{}))
	assert.Equal(t, "system", Fold[string](NewSystemFailure(nil), kindNamer{}))

	assert.Panics(t, func() {
		Fold[string](&OperationFailure{kind: Kind(99)}, kindNamer{})
	})
}
