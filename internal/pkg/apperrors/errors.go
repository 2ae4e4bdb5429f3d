package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// State conflicts: a lifecycle transition or uniqueness invariant
	// rejected the operation. Distinct from permission and validation
	// failures in the error taxonomy.
	ErrStateConflict = errors.New("state conflict")
)

// User errors
var (
	ErrUserNotFound          = newNotFound("user not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")
)

// Room errors
var (
	ErrRoomNotFound         = newNotFound("room not found")
	ErrRoomAlreadyExists    = errors.New("room with this number already exists")
	ErrRoomCapacityExceeded = newStateConflict("room capacity exceeded")
	ErrRoomUnderMaintenance = newStateConflict("room is under maintenance")
	ErrRoomHasOccupants     = newStateConflict("room has assigned students and cannot be deleted")
)

// Student errors
var (
	ErrStudentNotFound      = newNotFound("student not found")
	ErrStudentAlreadyExists = newStateConflict("student profile already exists for this user")
)

// Fee errors
var (
	ErrFeeNotFound       = newNotFound("fee not found")
	ErrFeeAlreadySettled = newStateConflict("fee already settled")
)

// Attendance errors
var (
	ErrAttendanceNotFound      = newNotFound("attendance record not found")
	ErrAttendanceAlreadyMarked = newStateConflict("attendance already marked for this student and date")
)

// Visitor errors
var (
	ErrVisitorNotFound    = newNotFound("visitor not found")
	ErrVisitorAlreadyLeft = newStateConflict("visitor already checked out")
)

// Complaint errors
var (
	ErrComplaintNotFound        = newNotFound("complaint not found")
	ErrComplaintAlreadyResolved = newStateConflict("complaint already resolved")
)

// Mess menu errors
var (
	ErrMenuNotFound      = newNotFound("mess menu not found")
	ErrMenuAlreadyExists = errors.New("mess menu for this date already exists")
)

// Contact message errors
var (
	ErrContactMessageNotFound = newNotFound("contact message not found")
)

// newStateConflict builds a sentinel that matches ErrStateConflict under
// errors.Is while keeping its own message.
func newStateConflict(message string) error {
	return &CustomError{Err: ErrStateConflict, Message: message}
}

// newNotFound builds a sentinel that matches ErrResourceNotFound under
// errors.Is while keeping its own message.
func newNotFound(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// CustomError wraps a sentinel with a caller-facing message so that
// errors.Is still matches the sentinel.
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewValidationError creates a new custom error for validation failures with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}
