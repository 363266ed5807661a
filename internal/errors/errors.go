package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// StateConflictError is returned when a job transition is requested from a
// status that does not match the job's current status.
type StateConflictError struct {
	JobID   string
	Current string
	Event   string
}

func (e *StateConflictError) Error() string {
	if e.JobID == "" {
		return fmt.Sprintf("cannot %s a job in status %s", e.Event, e.Current)
	}
	return fmt.Sprintf("cannot %s job %s in status %s", e.Event, e.JobID, e.Current)
}

// InvalidCandidateError is returned when a manual assignment targets a user
// that is not an active clerk.
type InvalidCandidateError struct {
	ClerkID string
	Reason  string
}

func (e *InvalidCandidateError) Error() string {
	return fmt.Sprintf("user %s cannot be assigned: %s", e.ClerkID, e.Reason)
}

// Entity Not Found Errors
var (
	ErrJobNotFound          = &NotFoundError{Entity: "job"}
	ErrPropertyNotFound     = &NotFoundError{Entity: "property"}
	ErrClerkNotFound        = &NotFoundError{Entity: "clerk"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrAvailabilityNotFound = &NotFoundError{Entity: "availability record"}
)

// Authorization Errors
var (
	ErrNotAssignedClerk   = &AuthorizationError{Message: "you are not assigned to this job"}
	ErrActorNotPermitted  = &AuthorizationError{Message: "your role is not permitted to perform this action"}
	ErrNotSelf            = &AuthorizationError{Message: "you can only modify your own clerk profile"}
	ErrNotSelfOrAdmin     = &AuthorizationError{Message: "you can only modify your own profile"}
	ErrMissingActor       = &AuthenticationError{Message: "authenticated user not found in context"}
	ErrInvalidRoleInToken = &AuthenticationError{Message: "token carries an unknown role"}
)

// Business Logic Errors
var (
	ErrShiftAddressIncomplete = &ValidationError{
		Field:   "is_on_shift",
		Message: "address line 1, city, postcode and proof of address are required before going on shift",
	}
	ErrInvalidCoordinates      = &ValidationError{Field: "lat/lng", Message: "coordinates out of range"}
	ErrUserHasActiveJobs       = &ValidationError{Field: "id", Message: "user still has active jobs assigned"}
	ErrCannotDeleteSelf        = &ValidationError{Field: "id", Message: "you cannot delete your own account"}
	ErrStatusNotEditable       = &ValidationError{Field: "status", Message: "status changes go through the job action endpoints"}
	ErrClerkNotEditable        = &ValidationError{Field: "assigned_clerk_id", Message: "clerk changes go through the assign endpoint"}
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrInvalidTimeRange        = errors.New("invalid time range")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsStateConflict checks if an error is a StateConflictError
func IsStateConflict(err error) bool {
	var conflictErr *StateConflictError
	return errors.As(err, &conflictErr)
}

// IsInvalidCandidate checks if an error is an InvalidCandidateError
func IsInvalidCandidate(err error) bool {
	var candidateErr *InvalidCandidateError
	return errors.As(err, &candidateErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewStateConflictError creates a StateConflictError for the given job, current status and event
func NewStateConflictError(jobID, current, event string) error {
	return &StateConflictError{JobID: jobID, Current: current, Event: event}
}

// NewInvalidCandidateError creates an InvalidCandidateError
func NewInvalidCandidateError(clerkID, reason string) error {
	return &InvalidCandidateError{ClerkID: clerkID, Reason: reason}
}
