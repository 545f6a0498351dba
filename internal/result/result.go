// Package result provides a generic success-or-failure value used by the employee core
// instead of panics or sentinel returns for expected outcomes.
package result

import (
	apperrors "github.com/allisson/employees/internal/errors"
)

// Result holds either a value or an OperationFailure, never both.
type Result[T any] struct {
	value   T
	failure *apperrors.OperationFailure
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail wraps a failure. A nil failure is replaced by a SystemFailure so the result
// is never ambiguous.
func Fail[T any](failure *apperrors.OperationFailure) Result[T] {
	if failure == nil {
		failure = apperrors.NewSystemFailure(apperrors.New("nil failure"))
	}
	return Result[T]{failure: failure}
}

// From converts a Go (value, error) pair. A non-failure error becomes a SystemFailure.
func From[T any](value T, err error) Result[T] {
	if err != nil {
		return Fail[T](apperrors.ToFailure(err))
	}
	return Ok(value)
}

// IsOk reports whether the result holds a value.
func (r Result[T]) IsOk() bool {
	return r.failure == nil
}

// Failure returns the failure, or nil on success.
func (r Result[T]) Failure() *apperrors.OperationFailure {
	return r.failure
}

// Get returns the value and failure.
func (r Result[T]) Get() (T, *apperrors.OperationFailure) {
	return r.value, r.failure
}

// Unwrap returns the value and the failure as an error, for callers that use Go's
// error convention.
func (r Result[T]) Unwrap() (T, error) {
	if r.failure != nil {
		var zero T
		return zero, r.failure
	}
	return r.value, nil
}

// OrElse returns the value, or fallback on failure.
func (r Result[T]) OrElse(fallback T) T {
	if r.failure != nil {
		return fallback
	}
	return r.value
}

// Map transforms the value of a successful result.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.failure != nil {
		return Fail[U](r.failure)
	}
	return Ok(fn(r.value))
}

// AndThen chains an operation that may itself fail.
func AndThen[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.failure != nil {
		return Fail[U](r.failure)
	}
	return fn(r.value)
}

// Match folds the result into a single value.
func Match[T, U any](r Result[T], onOk func(T) U, onFail func(*apperrors.OperationFailure) U) U {
	if r.failure != nil {
		return onFail(r.failure)
	}
	return onOk(r.value)
}
