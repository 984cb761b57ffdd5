package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured indicates a key that no layer defines.
	ErrNotConfigured = errors.New("settings: not configured")
	// ErrInvalidConfiguration indicates a Configure source that could not be
	// harvested into key/value pairs.
	ErrInvalidConfiguration = errors.New("settings: invalid configuration")
)

// NotConfiguredError reports the key a lookup failed to resolve.
type NotConfiguredError struct {
	Key string
}

func (e *NotConfiguredError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("settings: key %q not configured", e.Key)
}

func (e *NotConfiguredError) Unwrap() error {
	return ErrNotConfigured
}

// InvalidConfigurationError captures why a source rejected harvesting.
type InvalidConfigurationError struct {
	Source string
	Err    error
}

func (e *InvalidConfigurationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("settings: invalid configuration source %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("settings: invalid configuration source %s", e.Source)
}

func (e *InvalidConfigurationError) Unwrap() []error {
	if e == nil {
		return nil
	}
	if e.Err == nil {
		return []error{ErrInvalidConfiguration}
	}
	return []error{ErrInvalidConfiguration, e.Err}
}

func invalidSource(source string, format string, args ...any) error {
	return &InvalidConfigurationError{
		Source: source,
		Err:    fmt.Errorf(format, args...),
	}
}
