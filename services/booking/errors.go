package booking

import "fmt"

// BookingError is a typed failure with a stable code for the HTTP layer.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	// CodeValidation covers missing/invalid selection fields and intake data.
	CodeValidation = "validationError"
	// CodeNotFound covers lookups that yield nothing (session, specialist).
	CodeNotFound = "notFoundError"
	// CodeConflict covers a submission attempted while one is in flight.
	CodeConflict = "conflictError"
)

func NewValidationError(format string, args ...any) error {
	return &BookingError{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...any) error {
	return &BookingError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(format string, args ...any) error {
	return &BookingError{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}
