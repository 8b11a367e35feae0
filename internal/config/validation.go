package config

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, c.validateInput()...)
	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateInput() ValidationErrors {
	var errors ValidationErrors

	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		errors = append(errors, ValidationError{
			Field:   "input.delimiter",
			Message: "delimiter must be exactly one character",
		})
	} else if r := c.Input.DelimiterRune(); r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		errors = append(errors, ValidationError{
			Field:   "input.delimiter",
			Message: fmt.Sprintf("delimiter %q is not allowed", c.Input.Delimiter),
		})
	}

	if c.Input.IDColumn < 0 {
		errors = append(errors, ValidationError{
			Field:   "input.id_column",
			Message: "id_column cannot be negative",
		})
	}

	if c.Input.NameColumn < 0 {
		errors = append(errors, ValidationError{
			Field:   "input.name_column",
			Message: "name_column cannot be negative",
		})
	}

	if c.Input.IDColumn == c.Input.NameColumn {
		errors = append(errors, ValidationError{
			Field:   "input.name_column",
			Message: "name_column must differ from id_column",
		})
	}

	return errors
}

func (c *Config) validateOutput() ValidationErrors {
	var errors ValidationErrors

	validModes := map[string]bool{"auto": true, "always": true, "never": true, "": true}
	if !validModes[c.Output.Color] {
		errors = append(errors, ValidationError{
			Field:   "output.color",
			Message: "color must be 'auto', 'always', or 'never'",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
