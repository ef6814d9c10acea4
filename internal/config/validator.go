package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "tui.drawer_width")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
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

// Drawer width bounds in columns
const (
	MinDrawerWidth = 24
	MaxDrawerWidth = 80
)

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateCatalog()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// ValidateErr returns the validation failures as a single error, or nil.
func (c *Config) ValidateErr() error {
	errs := c.Validate()
	if len(errs) == 0 {
		return nil
	}
	return ValidationErrors(errs)
}

func (c *Config) validateCatalog() []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(c.Catalog.Path) == "" {
		errors = append(errors, ValidationError{
			Field:   "catalog.path",
			Value:   c.Catalog.Path,
			Message: "must not be empty",
		})
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidThemes(), c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	if !slices.Contains(ValidPlacements(), c.TUI.Placement) {
		errors = append(errors, ValidationError{
			Field:   "tui.placement",
			Value:   c.TUI.Placement,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidPlacements(), ", ")),
		})
	}

	if c.TUI.DrawerWidth < MinDrawerWidth || c.TUI.DrawerWidth > MaxDrawerWidth {
		errors = append(errors, ValidationError{
			Field:   "tui.drawer_width",
			Value:   c.TUI.DrawerWidth,
			Message: fmt.Sprintf("must be between %d and %d", MinDrawerWidth, MaxDrawerWidth),
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
