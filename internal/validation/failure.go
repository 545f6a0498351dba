package validation

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/employees/internal/errors"
)

// CodeInvalidInput is reported for validation errors not tied to a field.
const CodeInvalidInput = "ERR_INVALID_INPUT"

// WrapValidationError converts a jellydator validation error into a ValidationFailure.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return ToFailure(err)
}

// ToFailure turns validation errors into one ValidationFailure with a detail per
// invalid field, ordered by field path. Nested fields are joined with ".".
func ToFailure(err error) *apperrors.OperationFailure {
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if errors.As(err, &errs) {
		details := flatten("", errs)
		if len(details) > 0 {
			return apperrors.NewValidationFailure(details...).WithCause(err)
		}
	}

	return apperrors.NewValidationFailure(
		apperrors.NewErrorDetail("", err.Error(), codeOf(err)),
	).WithCause(err)
}

func flatten(prefix string, errs validation.Errors) []apperrors.ErrorDetail {
	fields := make([]string, 0, len(errs))
	for field, err := range errs {
		if err != nil {
			fields = append(fields, field)
		}
	}
	sort.Strings(fields)

	var details []apperrors.ErrorDetail
	for _, field := range fields {
		path := field
		if prefix != "" {
			path = prefix + "." + field
		}

		var nested validation.Errors
		if errors.As(errs[field], &nested) {
			details = append(details, flatten(path, nested)...)
			continue
		}
		details = append(details, apperrors.NewErrorDetail(path, errs[field].Error(), codeOf(errs[field])))
	}
	return details
}

// codeOf derives an ERR_ code from a rule code, "validation_email_format" becoming
// "ERR_EMAIL_FORMAT".
func codeOf(err error) string {
	var ve validation.Error
	if errors.As(err, &ve) && ve.Code() != "" {
		return "ERR_" + strings.ToUpper(strings.TrimPrefix(ve.Code(), "validation_"))
	}
	return CodeInvalidInput
}
