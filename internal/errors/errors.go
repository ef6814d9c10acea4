// Package errors provides centralized error definitions and error handling utilities
// for facetdrawer. It defines sentinel errors, domain error types with context
// wrapping, and classification helpers.
//
// The filter state machine itself (package facet) never fails. Errors only
// arise at the edges: reading a catalog file, parsing selectors given on the
// command line, and validating configuration.
//
// # Error Types
//
// Domain-specific errors:
//   - CatalogError: problems loading, parsing or validating a catalog file
//   - SelectorError: a malformed or unknown --select expression
//
// Semantic errors:
//   - NotFoundError: resource not found
//   - ValidationError: invalid input or state
//
// # Usage
//
//	err := errors.NewCatalogError("parse failed", yamlErr).WithPath("catalog.yaml")
//
//	if errors.Is(err, errors.ErrCatalogInvalid) { ... }
//
//	var selErr *errors.SelectorError
//	if errors.As(err, &selErr) && selErr.Suggestion != "" { ... }
//
//	if errors.IsUserFacing(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is   = errors.Is
	As   = errors.As
	New  = errors.New
	Join = errors.Join
)

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Catalog-related sentinel errors
var (
	// ErrCatalogNotFound indicates that the catalog file does not exist.
	ErrCatalogNotFound = New("catalog not found")
	// ErrCatalogInvalid indicates that the catalog failed validation.
	ErrCatalogInvalid = New("catalog is invalid")
	// ErrCatalogEmpty indicates that the catalog defines no categories.
	ErrCatalogEmpty = New("catalog has no categories")
)

// Selector-related sentinel errors
var (
	// ErrInvalidSelector indicates a selector that is not of the form id=value[,value].
	ErrInvalidSelector = New("invalid selector")
	// ErrUnknownCategory indicates a selector naming a category the catalog lacks.
	ErrUnknownCategory = New("unknown category")
	// ErrUnknownOption indicates a selector naming an option the category lacks.
	ErrUnknownOption = New("unknown option")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// FacetError is the base interface for all facetdrawer errors.
type FacetError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// IsUserFacing returns true if the error message is written for the
	// person running the command rather than for a log.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types. Every error
// built here describes a problem with the user's input, so all of them are
// user-facing.
type baseError struct {
	message string
	cause   error
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return true
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// CatalogError represents a failure to load or validate a catalog.
//
// Example:
//
//	err := errors.NewCatalogError("duplicate category id", errors.ErrCatalogInvalid)
//	err = err.WithPath("catalog.yaml")
//	fmt.Println(err) // "catalog error [path=catalog.yaml]: duplicate category id: catalog is invalid"
type CatalogError struct {
	baseError
	Path string
}

// NewCatalogError creates a new CatalogError.
func NewCatalogError(message string, cause error) *CatalogError {
	return &CatalogError{
		baseError: baseError{
			message: message,
			cause:   cause,
		},
	}
}

// WithPath adds the catalog file path to the error context.
func (e *CatalogError) WithPath(path string) *CatalogError {
	e.Path = path
	return e
}

// Error returns the formatted error message.
func (e *CatalogError) Error() string {
	prefix := "catalog error"
	if e.Path != "" {
		prefix = fmt.Sprintf("catalog error [path=%s]", e.Path)
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *CatalogError) Is(target error) bool {
	if _, ok := target.(*CatalogError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// SelectorError represents a --select expression that could not be applied.
//
// Example:
//
//	err := errors.NewSelectorError("colr=Red", errors.ErrUnknownCategory).WithSuggestion("color")
//	fmt.Println(err) // `selector "colr=Red": unknown category (did you mean "color"?)`
type SelectorError struct {
	baseError
	Input      string
	Suggestion string
}

// NewSelectorError creates a new SelectorError for the given input.
func NewSelectorError(input string, cause error) *SelectorError {
	return &SelectorError{
		baseError: baseError{
			message: fmt.Sprintf("selector %q", input),
			cause:   cause,
		},
		Input: input,
	}
}

// WithSuggestion records the closest known name.
func (e *SelectorError) WithSuggestion(s string) *SelectorError {
	e.Suggestion = s
	return e
}

// Error returns the formatted error message.
func (e *SelectorError) Error() string {
	msg := e.baseError.Error()
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// Is checks if this error matches the target.
func (e *SelectorError) Is(target error) bool {
	if _, ok := target.(*SelectorError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("theme", "solarized")
//	fmt.Println(err) // "theme 'solarized' not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message: fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	return e.message
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError represents invalid input or state.
//
// Example:
//
//	err := errors.NewValidationError("option appears twice")
//	err = err.WithField("categories[0].options").WithValue("Red")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message: message,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// IsUserFacing returns true if err's chain holds an error written for the
// person running the command.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var facetErr FacetError
	if As(err, &facetErr) {
		return facetErr.IsUserFacing()
	}

	return false
}

// UserMessage returns the message of the first user-facing error in err's
// chain, dropping the context that callers wrapped around it. Other errors
// are returned whole.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var facetErr FacetError
	if As(err, &facetErr) && facetErr.IsUserFacing() {
		return facetErr.Error()
	}
	return err.Error()
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
