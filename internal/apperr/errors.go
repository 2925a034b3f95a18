// Package apperr holds the application error types the HTTP layer knows how
// to translate into responses.
package apperr

// ValidationError marks request input the API cannot work with, such as a
// non-numeric size parameter. The global error handler maps it to a 400.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// NewValidationWrap keeps the cause available to errors.Is/As while the
// message stays the client-facing text.
func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}
