package config

import (
	"bytes"
	"fmt"
	"strconv"
)

// ValidationError represents a config validation error with context.
type ValidationError struct {
	Field      string // config path (e.g. "gcovr.html-high-threshold")
	Message    string
	Suggestion string // helpful suggestion (optional)
}

// Error returns a formatted error message.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("validation error at %s: %s", e.Field, e.Message)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(". Suggestion: %s", e.Suggestion)
	}
	return msg
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error returns all validation errors formatted with clear separation.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("found %d validation errors:\n", len(e)))
	for i, err := range e {
		buf.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return buf.String()
}

var whenNoPrototypesValues = []string{":ignore", ":warn", ":error"}

var sortValues = []string{"filename", "uncovered-number", "uncovered-percent"}

// Validate checks the loaded config for values the external tools would
// reject. It never normalizes: threshold values stay exactly as written,
// including "0.0" versus "0".
func (c *Config) Validate() ValidationErrors {
	var errs ValidationErrors

	if v, err := c.cmock.String("when_no_prototypes"); err == nil {
		if !contains(whenNoPrototypesValues, v) {
			errs = append(errs, ValidationError{
				Field:      "cmock.when_no_prototypes",
				Message:    fmt.Sprintf("unknown policy %q", v),
				Suggestion: "use :ignore, :warn, or :error",
			})
		}
	}

	for _, key := range []string{"html-high-threshold", "html-medium-threshold"} {
		v, err := c.gcovr.String(key)
		if err != nil {
			continue
		}
		n, convErr := strconv.Atoi(v)
		if convErr != nil || n < 0 || n > 100 {
			errs = append(errs, ValidationError{
				Field:   "gcovr." + key,
				Message: fmt.Sprintf("%q is not a percentage between 0 and 100", v),
			})
		}
	}

	for _, key := range []string{"fail-under-line", "fail-under-branch", "fail-under-function", "fail-under-decision"} {
		v, err := c.gcovr.String(key)
		if err != nil {
			continue
		}
		n, convErr := strconv.ParseFloat(v, 64)
		if convErr != nil || n < 0 || n > 100 {
			errs = append(errs, ValidationError{
				Field:   "gcovr." + key,
				Message: fmt.Sprintf("%q is not a percentage between 0 and 100", v),
			})
		}
	}

	if v, err := c.gcovr.String("sort"); err == nil {
		if !contains(sortValues, v) {
			errs = append(errs, ValidationError{
				Field:      "gcovr.sort",
				Message:    fmt.Sprintf("unknown sort order %q", v),
				Suggestion: "use filename, uncovered-number, or uncovered-percent",
			})
		}
	}

	return errs
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
