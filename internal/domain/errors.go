package domain

import "fmt"

// ConversionError indicates a cast was rejected by the engine or requested an
// unsupported type/category combination. The failed column and target type
// are carried so callers can report the exact request.
type ConversionError struct {
	Column     string
	TargetType string
	Message    string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("column %s cannot be converted to %s: %s", e.Column, e.TargetType, e.Message)
}

// VersionError indicates a cast requires a minimum engine version that the
// connected engine does not meet. It is surfaced before any probe is issued.
type VersionError struct {
	Required Version
	Actual   Version
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("engine version %s does not meet the required minimum %s", e.Actual, e.Required)
}

// ParameterError indicates invalid configuration or an invalid request
// parameter (bad DSN section, unknown column, malformed option value).
type ParameterError struct {
	Message string
}

func (e *ParameterError) Error() string { return e.Message }

// ErrConversion creates a ConversionError for the given column and target
// type, carrying the underlying engine error text.
func ErrConversion(column, target string, cause error) *ConversionError {
	return &ConversionError{Column: column, TargetType: target, Message: cause.Error()}
}

// ErrParameter creates a ParameterError with a formatted message.
func ErrParameter(format string, args ...interface{}) *ParameterError {
	return &ParameterError{Message: fmt.Sprintf(format, args...)}
}
