package datetime

import (
	"errors"
	"fmt"
)

var (
	// ErrNotCanonical is returned when text does not have the
	// YYYY-MM-DD HH:MM:SS shape.
	ErrNotCanonical = errors.New("datetime: value is not in YYYY-MM-DD HH:MM:SS form")

	// ErrIncompleteValue is returned when a conversion needs a date and the
	// value has none.
	ErrIncompleteValue = errors.New("datetime: value has no date part")
)

// ConfigError reports an invalid picker configuration.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e == nil {
		return "datetime: invalid configuration"
	}
	if e.Field == "" {
		return fmt.Sprintf("datetime: invalid configuration: %s", e.Reason)
	}
	return fmt.Sprintf("datetime: options.%s %s", e.Field, e.Reason)
}
