package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidTitle       = 4001
	CodeInvalidProjectName = 4002
	CodeInvalidEmail       = 4003
	CodeInvalidRole        = 4004
	CodeLastOwner          = 4005
	CodeNotProjectMember   = 4006
	CodeDuplicateMember    = 4007
	CodeTodoNotFound       = 4040
	CodeProjectNotFound    = 4041
	CodeUserNotFound       = 4042
	CodeMemberNotFound     = 4043

	// 5xxx - Server errors
	CodeInternalServer    = 5000
	CodeUnexpectedStorage = 5001
)

// Base error types
var (
	// ErrInvalidTitle is returned when a todo title is empty or too long
	ErrInvalidTitle = errors.New("todo title must be between 1 and 200 characters")

	// ErrInvalidProjectName is returned when a project name is empty or too long
	ErrInvalidProjectName = errors.New("project name must be between 1 and 100 characters")

	// ErrInvalidEmail is returned when a user email is malformed
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidName is returned when a user display name is empty
	ErrInvalidName = errors.New("name cannot be empty")

	// ErrInvalidRole is returned when a membership role is not one of the allowed values
	ErrInvalidRole = errors.New("invalid member role")

	// ErrInvalidStatus is returned when a todo status is not one of the allowed values
	ErrInvalidStatus = errors.New("invalid todo status")

	// ErrLastOwner is returned when removing a member would leave the project without an owner
	ErrLastOwner = errors.New("cannot remove the last owner of a project")

	// ErrNotProjectMember is returned when an operation requires project membership
	ErrNotProjectMember = errors.New("user is not a member of this project")

	// ErrDuplicateMember is returned when adding a user that is already a project member
	ErrDuplicateMember = errors.New("user is already a member of this project")

	// ErrTodoNotFound is returned when the requested todo doesn't exist
	ErrTodoNotFound = errors.New("todo not found")

	// ErrProjectNotFound is returned when the requested project doesn't exist
	ErrProjectNotFound = errors.New("project not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrMemberNotFound is returned when the requested membership doesn't exist
	ErrMemberNotFound = errors.New("project member not found")

	// ErrUnexpectedStorage is returned for any storage provider fault (network,
	// throughput, transaction conflict). Callers are not expected to
	// distinguish provider-specific fault codes.
	ErrUnexpectedStorage = errors.New("unexpected storage error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidTitle):
		return CodeInvalidTitle
	case errors.Is(err, ErrInvalidProjectName):
		return CodeInvalidProjectName
	case errors.Is(err, ErrInvalidEmail):
		return CodeInvalidEmail
	case errors.Is(err, ErrInvalidRole):
		return CodeInvalidRole
	case errors.Is(err, ErrLastOwner):
		return CodeLastOwner
	case errors.Is(err, ErrNotProjectMember):
		return CodeNotProjectMember
	case errors.Is(err, ErrDuplicateMember):
		return CodeDuplicateMember
	case errors.Is(err, ErrTodoNotFound):
		return CodeTodoNotFound
	case errors.Is(err, ErrProjectNotFound):
		return CodeProjectNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrMemberNotFound):
		return CodeMemberNotFound
	case errors.Is(err, ErrUnexpectedStorage):
		return CodeUnexpectedStorage
	default:
		return CodeInternalServer
	}
}

// StorageError wraps a provider fault with the operation and table it
// occurred on. It always matches ErrUnexpectedStorage.
type StorageError struct {
	Operation string
	Table     string
	Err       error
}

// Error implements the error interface for StorageError
func (e *StorageError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("storage error during %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("storage error during %s on table %q: %v", e.Operation, e.Table, e.Err)
}

// Unwrap returns the underlying error
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrUnexpectedStorage
func (e *StorageError) Is(target error) bool {
	return target == ErrUnexpectedStorage
}

// LogFields returns a map of fields for structured logging
func (e *StorageError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "storage_error",
		"operation":  e.Operation,
		"table":      e.Table,
		"error":      e.Err.Error(),
		"error_code": CodeUnexpectedStorage,
	}
}

// NewStorageError creates a StorageError for the given operation and table
func NewStorageError(operation, table string, err error) error {
	return &StorageError{
		Operation: operation,
		Table:     table,
		Err:       err,
	}
}

// MembershipError represents a failed membership change on a project
type MembershipError struct {
	ProjectID string
	UserID    string
	Reason    string
	Err       error
}

// Error implements the error interface for MembershipError
func (e *MembershipError) Error() string {
	return fmt.Sprintf("membership change failed for user %s on project %s: %s - %v",
		e.UserID, e.ProjectID, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *MembershipError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *MembershipError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "membership_error",
		"project_id": e.ProjectID,
		"user_id":    e.UserID,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewMembershipError creates a detailed membership error
func NewMembershipError(projectID, userID, reason string, err error) error {
	return &MembershipError{
		ProjectID: projectID,
		UserID:    userID,
		Reason:    reason,
		Err:       err,
	}
}
