package error

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationMessage is the message returned to callers for every rejected input.
const ValidationMessage = "Validation failed"

// ValidationError carries the per-field messages of a rejected request.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError builds a ValidationError holding a single field message.
func NewValidationError(field, message string) ValidationError {
	return ValidationError{Fields: map[string][]string{field: {message}}}
}

// FromOzzo converts the result of an ozzo-validation run into a ValidationError.
// Errors that are not field errors are reported under the "request" key.
func FromOzzo(err error) ValidationError {
	fields := make(map[string][]string)

	var errs validation.Errors
	if errors.As(err, &errs) {
		for field, fieldErr := range errs {
			if fieldErr == nil {
				continue
			}
			fields[field] = append(fields[field], fieldErr.Error())
		}
		return ValidationError{Fields: fields}
	}

	fields["request"] = []string{err.Error()}
	return ValidationError{Fields: fields}
}

func (err ValidationError) Error() string {
	keys := make([]string, 0, len(err.Fields))
	for k := range err.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(err.Fields[k], ", "))
	}
	return ValidationMessage + ": " + strings.Join(parts, "; ")
}

func (err ValidationError) ErrCode() string {
	return "VALIDATION_ERROR"
}

func (err ValidationError) StatusCode() int {
	return http.StatusBadRequest
}
