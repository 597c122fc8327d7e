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

// ValidationError represents a business-rule or input violation that maps
// to a 400 response: invalid state transitions, bad date ranges, missing
// required linkage.
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

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field && e.Message == t.Message
}

// ConflictError represents a clash with existing state that maps to a 409
// response: overlapping shift intervals, duplicate active shifts.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// AuthorizationError represents a caller lacking the capability for an
// operation; maps to a 403 response.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for AuthorizationError
func (e *AuthorizationError) Is(target error) bool {
	t, ok := target.(*AuthorizationError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrShiftNotFound            = &NotFoundError{Entity: "leadership shift"}
	ErrPerformanceNotFound      = &NotFoundError{Entity: "performance"}
	ErrPerformanceSongNotFound  = &NotFoundError{Entity: "performance song"}
	ErrRehearsalNotFound        = &NotFoundError{Entity: "rehearsal"}
	ErrRehearsalSongNotFound    = &NotFoundError{Entity: "rehearsal song"}
	ErrMemberNotFound           = &NotFoundError{Entity: "choir member"}
	ErrSongNotFound             = &NotFoundError{Entity: "song"}
	ErrActiveShiftNotFound      = &NotFoundError{Entity: "active shift"}
	ErrUpcomingShiftNotFound    = &NotFoundError{Entity: "upcoming shift"}
)

// Conflict Errors
var (
	ErrShiftLeaderOverlap   = &ConflictError{Message: "leader already has a shift overlapping this interval"}
	ErrShiftIntervalOverlap = &ConflictError{Message: "another live shift overlaps this interval"}
	ErrMultipleActiveShifts = &ConflictError{Message: "more than one active shift detected"}
	ErrShiftActiveDelete    = &ConflictError{Message: "an active shift cannot be deleted"}
)

// Validation / Business Rule Errors
var (
	ErrInvalidDateRange        = &ValidationError{Message: "start date must be before end date"}
	ErrNoActiveShift           = &ValidationError{Message: "no active leadership shift; operation requires one"}
	ErrPerformanceNotPreparing = &ValidationError{Message: "performance must be in 'in_preparation' status"}
	ErrPerformanceNotUpcoming  = &ValidationError{Message: "performance must be in 'upcoming' status"}
	ErrPerformanceNotReady     = &ValidationError{Message: "performance must be in 'ready' status"}
	ErrRehearsalMismatch       = &ValidationError{Message: "rehearsal does not belong to this performance"}
	ErrSongReferenceImmutable  = &ValidationError{Message: "song reference of a rehearsal song cannot be changed"}
)

// Authorization Errors
var (
	ErrLeadCategoryRequired = &AuthorizationError{Message: "caller must hold the LEAD category"}
	ErrNotOnActiveShift     = &AuthorizationError{Message: "caller is not the leader of the active shift"}
	ErrNoShiftCurrentlyLive = &AuthorizationError{Message: "no shift is currently active"}
	ErrNotResourceOwner     = &AuthorizationError{Message: "only the creator or an admin may modify this resource"}
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

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}
