// Package errors provides centralized error definitions for teamgen.
// It defines sentinel errors for each failure class, typed errors that carry
// context for user-facing messages, and helpers for classifying errors at the
// CLI boundary.
//
// The failure taxonomy is deliberately small: configuration files either fail
// to load (ConfigError), fail field-level validation (handled in the config
// package), or describe an assignment that cannot be satisfied
// (AssignmentError wrapping ErrInsufficientLeaders or ErrInvalidTeamCount).
// Every failure is fatal; nothing in a single-shot batch run is retryable.
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrInsufficientLeaders) { ... }
//
//	var assignErr *errors.AssignmentError
//	if errors.As(err, &assignErr) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience, so callers can import
// only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Assignment sentinel errors.
var (
	// ErrInsufficientLeaders indicates fewer leader-eligible attendees than teams.
	ErrInsufficientLeaders = New("not enough leader-eligible attendees")
	// ErrInvalidTeamCount indicates a team count outside [1, attendee count].
	ErrInvalidTeamCount = New("invalid team count")
)

// Configuration sentinel errors.
var (
	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = New("configuration file not found")
	// ErrConfigMalformed indicates the configuration file could not be parsed.
	ErrConfigMalformed = New("configuration file is malformed")
)

// baseError provides common functionality for the typed errors below.
type baseError struct {
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Unwrap() error {
	return e.cause
}

func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// ConfigError represents a failure to load or parse a configuration file.
//
// Example:
//
//	err := errors.NewConfigError("reading settings", errors.ErrConfigNotFound).
//		WithPath("team.toml")
type ConfigError struct {
	baseError
	Path string
}

// NewConfigError creates a new ConfigError wrapping the underlying cause.
func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{
		baseError: baseError{
			message: message,
			cause:   cause,
		},
	}
}

// WithPath adds the configuration file path to the error context.
func (e *ConfigError) WithPath(path string) *ConfigError {
	e.Path = path
	return e
}

// Error returns the formatted error message.
func (e *ConfigError) Error() string {
	prefix := "config error"
	if e.Path != "" {
		prefix = fmt.Sprintf("config error [path=%s]", e.Path)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ConfigError) Is(target error) bool {
	if _, ok := target.(*ConfigError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// AssignmentError represents a configuration whose semantic invariants cannot
// be satisfied by the assigner. Observed and Required carry the values that
// violated the constraint, for display to the user.
//
// Example:
//
//	err := errors.NewAssignmentError("leader candidates", errors.ErrInsufficientLeaders).
//		WithObserved(2).
//		WithRequired(3)
type AssignmentError struct {
	baseError
	Observed int
	Required int

	hasObserved bool
	hasRequired bool
}

// NewAssignmentError creates a new AssignmentError wrapping a sentinel cause.
func NewAssignmentError(message string, cause error) *AssignmentError {
	return &AssignmentError{
		baseError: baseError{
			message: message,
			cause:   cause,
		},
	}
}

// WithObserved records the value the configuration actually provided.
func (e *AssignmentError) WithObserved(n int) *AssignmentError {
	e.Observed = n
	e.hasObserved = true
	return e
}

// WithRequired records the value the constraint demanded.
func (e *AssignmentError) WithRequired(n int) *AssignmentError {
	e.Required = n
	e.hasRequired = true
	return e
}

// Error returns the formatted error message.
func (e *AssignmentError) Error() string {
	var parts []string
	if e.hasObserved {
		parts = append(parts, fmt.Sprintf("observed=%d", e.Observed))
	}
	if e.hasRequired {
		parts = append(parts, fmt.Sprintf("required=%d", e.Required))
	}

	prefix := "assignment error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("assignment error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *AssignmentError) Is(target error) bool {
	if _, ok := target.(*AssignmentError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// IsUserFacing returns true if the error message is safe to display verbatim
// to end users. ConfigError and AssignmentError are always user-facing.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var configErr *ConfigError
	var assignErr *AssignmentError
	return As(err, &configErr) || As(err, &assignErr)
}

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
