package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/employees/internal/errors"
)

func TestFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *apperrors.OperationFailure
		kind    apperrors.Kind
		field   string
		code    string
	}{
		{"EmailExists", EmailExistsFailure(), apperrors.KindResourceConflict, "email", CodeEmailExists},
		{"EmployeeNotFound", EmployeeNotFoundFailure(), apperrors.KindResourceNotFound, "id", CodeEmployeeNotFound},
		{"SelfManager", SelfManagerFailure(), apperrors.KindValidation, "managerId", CodeSelfManager},
		{"ManagerNotFound", ManagerNotFoundFailure(), apperrors.KindValidation, "managerId", CodeManagerNotFound},
		{"InvalidSortField", InvalidSortFieldFailure("AGE"), apperrors.KindValidation, "sorts", CodeInvalidSortField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.failure.Kind())
			details := tt.failure.Details()
			require.Len(t, details, 1)
			assert.Equal(t, tt.field, details[0].Field)
			assert.Equal(t, tt.code, details[0].Code)
		})
	}
}

func TestDatabaseFailure_KeepsOriginalText(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	f := DatabaseFailure(apperrors.Wrap(cause, "failed to list employees"))

	assert.Equal(t, apperrors.KindInfrastructure, f.Kind())
	details := f.Details()
	require.Len(t, details, 1)
	assert.Equal(t, "database", details[0].Field)
	assert.Equal(t, CodeDatabase, details[0].Code)
	assert.Contains(t, details[0].Message, cause.Error())
	assert.ErrorIs(t, f, cause)
	assert.ErrorIs(t, f, apperrors.ErrUnavailable)
}

func TestDuplicateKeyFailure(t *testing.T) {
	cause := apperrors.Wrap(ErrDuplicateKey, "pq: duplicate key value violates unique constraint")
	f := DuplicateKeyFailure(cause)

	assert.Equal(t, apperrors.KindValidation, f.Kind())
	assert.True(t, f.HasCode(CodeDuplicateKey))
	assert.Equal(t, "key", f.Details()[0].Field)
	assert.ErrorIs(t, f, ErrDuplicateKey)
}

func TestStorageErrors(t *testing.T) {
	assert.ErrorIs(t, ErrEmployeeNotFound, apperrors.ErrNotFound)
	assert.ErrorIs(t, ErrEmailAlreadyExists, apperrors.ErrConflict)
	assert.ErrorIs(t, ErrDuplicateKey, apperrors.ErrConflict)
}
