package analysis

import "fmt"

// ValidationError reports invalid input to an analysis operation: an empty
// player population, or a traded-away player that is not on the roster.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ConfigError reports a normalization request for a category the baseline
// does not cover.
type ConfigError struct {
	Category string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration: category %q not present in baseline", e.Category)
}
