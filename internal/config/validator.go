package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a single schema validation failure.
type ValidationError struct {
	Field   string // The config field path (e.g., "attendees[2].name")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Validate checks the Config for schema-level problems and returns all
// validation errors found. It covers required fields and well-formedness
// only; whether the assignment is satisfiable is the assigner's concern.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	errs = append(errs, c.validateAttendees()...)

	return errs
}

// validateAttendees checks the attendees table.
func (c *Config) validateAttendees() []ValidationError {
	var errs []ValidationError

	if len(c.Attendees) == 0 {
		errs = append(errs, ValidationError{
			Field:   "attendees",
			Value:   nil,
			Message: "at least one attendee is required",
		})
		return errs
	}

	seen := make(map[string]int, len(c.Attendees))
	for i, a := range c.Attendees {
		name := strings.TrimSpace(a.Name)
		if name == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("attendees[%d].name", i),
				Value:   a.Name,
				Message: "name must not be empty",
			})
			continue
		}
		if first, dup := seen[name]; dup {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("attendees[%d].name", i),
				Value:   a.Name,
				Message: fmt.Sprintf("duplicate of attendees[%d]", first),
			})
			continue
		}
		seen[name] = i
	}

	return errs
}
