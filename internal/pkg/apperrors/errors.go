package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrRollNumberExists   = errors.New("roll number already exists")
)

// Leave application errors
var (
	ErrLeaveNotFound      = errors.New("leave application not found")
	ErrLeaveNotPending    = errors.New("leave application has already been decided")
	ErrLeaveNotApproved   = errors.New("leave application is not approved")
	ErrLeaveNotOwned      = errors.New("leave application belongs to another student")
	ErrAdminCommentsEmpty = errors.New("admin comments are required when rejecting")
)

// Gate pass errors
var (
	ErrPassTokenInvalid = errors.New("invalid or tampered gate pass token")
	ErrPassWrongPurpose = errors.New("wrong gate pass type")
	ErrPassNotYetValid  = errors.New("gate pass is not yet valid")
	ErrPassExpired      = errors.New("gate pass has expired")
	ErrPassAlreadyUsed  = errors.New("gate pass has already been used")
	ErrPassNotFound     = errors.New("gate pass not found")
)

// Room errors
var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomAlreadyExists = errors.New("room with this number already exists")
	ErrRoomFull          = errors.New("room has no free beds")
	ErrNotAssignedToRoom = errors.New("student is not assigned to a room")
)

// Student/admission errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrStudentNotPending  = errors.New("admission has already been decided")
	ErrStudentNotAdmitted = errors.New("student is not admitted")
)

// Complaint errors
var (
	ErrComplaintNotFound = errors.New("complaint not found")
)

// Forum errors
var (
	ErrPostNotFound    = errors.New("forum post not found")
	ErrCommentNotFound = errors.New("comment not found")
)

// Menu errors
var (
	ErrMenuNotFound = errors.New("menu entry not found")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) *CustomError {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) *CustomError {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) *CustomError {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) *CustomError {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
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

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// DetailsOf extracts the detail map from an error chain, if any
func DetailsOf(err error) map[string]interface{} {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Details
	}
	return nil
}
