package apperrors

import "errors"

// Common errors
var (
	ErrBadRequest       = errors.New("bad request")
	ErrValidationFailed = errors.New("validation failed")

	// Catalog errors
	ErrCourseNotFound  = errors.New("course not found")
	ErrCatalogNotReady = errors.New("course catalog not loaded yet")

	// Student errors
	ErrStudentNotFound  = errors.New("student not found")
	ErrInvalidStudentID = errors.New("invalid student ID format")

	// Discipline errors
	ErrDisciplineNotFound = errors.New("discipline not found")

	// Gate errors: a status change was rejected before reaching the backend
	ErrMissingPrerequisites = errors.New("prerequisite disciplines not completed")
	ErrInsufficientCredits  = errors.New("completed credits below the course credit lock")

	// Upstream errors
	ErrBackendUnavailable = errors.New("progress backend unreachable")
)

// CustomError carries a human-readable message on top of a sentinel error so
// callers can match with errors.Is while the API returns the full reason.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel.
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}
