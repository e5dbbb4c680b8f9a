// Package apperr defines the error taxonomy shared across the service layers.
package apperr

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

// Stable machine-readable validation codes.
const (
	CodeMoveFileSameProject = "cannot-move-file-to-same-project"
	CodeMoveProjectSameTeam = "cannot-move-project-to-same-team"
	CodeEmptyFileSet        = "empty-file-set"
)

// ValidationError is returned when an operation is rejected before any
// mutation. Code is stable and safe to match on by API clients.
type ValidationError struct {
	Code string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Code
}

// Validation builds a ValidationError with the given code.
func Validation(code string) *ValidationError {
	return &ValidationError{Code: code}
}

// IsValidation reports whether err is a ValidationError and returns it.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
