package result

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/employees/internal/errors"
)

func TestResult_OkAndFail(t *testing.T) {
	t.Run("Success_Ok", func(t *testing.T) {
		r := Ok(42)
		assert.True(t, r.IsOk())
		assert.Nil(t, r.Failure())

		v, err := r.Unwrap()
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("Success_Fail", func(t *testing.T) {
		f := apperrors.NewResourceNotFoundFailure()
		r := Fail[int](f)
		assert.False(t, r.IsOk())
		assert.Same(t, f, r.Failure())

		v, err := r.Unwrap()
		assert.Equal(t, 0, v)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Equal(t, 7, r.OrElse(7))
	})

	t.Run("Success_FailNilBecomesSystemFailure", func(t *testing.T) {
		r := Fail[int](nil)
		require.False(t, r.IsOk())
		assert.Equal(t, apperrors.KindSystem, r.Failure().Kind())
	})
}

func TestFrom(t *testing.T) {
	assert.True(t, From("x", nil).IsOk())

	f := apperrors.NewValidationFailure()
	assert.Same(t, f, From("", f).Failure())

	plain := errors.New("boom")
	r := From("", plain)
	require.False(t, r.IsOk())
	assert.Equal(t, apperrors.KindSystem, r.Failure().Kind())
	assert.ErrorIs(t, r.Failure(), plain)
}

func TestMapAndThen(t *testing.T) {
	double := func(v int) int { return v * 2 }

	assert.Equal(t, 8, Map(Ok(4), double).OrElse(0))

	f := apperrors.NewValidationFailure()
	mapped := Map(Fail[int](f), double)
	assert.Same(t, f, mapped.Failure())

	parse := func(s string) Result[int] {
		v, err := strconv.Atoi(s)
		if err != nil {
			return Fail[int](apperrors.NewValidationFailure(apperrors.NewErrorDetail("value", err.Error(), "ERR_NAN")))
		}
		return Ok(v)
	}

	assert.Equal(t, 12, AndThen(Ok("12"), parse).OrElse(0))
	assert.True(t, AndThen(Ok("x"), parse).Failure().HasCode("ERR_NAN"))

	called := false
	AndThen(Fail[string](f), func(string) Result[int] {
		called = true
		return Ok(1)
	})
	assert.False(t, called)
}

func TestMatch(t *testing.T) {
	onOk := func(v int) string { return "ok:" + strconv.Itoa(v) }
	onFail := func(f *apperrors.OperationFailure) string { return "fail:" + f.Kind().String() }

	assert.Equal(t, "ok:3", Match(Ok(3), onOk, onFail))
	assert.Equal(t, "fail:resource_conflict", Match(Fail[int](apperrors.NewResourceConflictFailure()), onOk, onFail))
}

func TestOption(t *testing.T) {
	some := Some("a")
	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	assert.True(t, some.IsPresent())

	none := None[string]()
	assert.False(t, none.IsPresent())
	assert.Equal(t, "b", none.OrElse("b"))
}
