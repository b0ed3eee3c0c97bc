package manifest

import "fmt"

// NotFoundError occurs when a manifest file cannot be read.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("manifest not found at '%s': %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// ParseError occurs when a manifest cannot be parsed as valid YAML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse manifest at '%s': %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError occurs when a manifest fails validation.
type ValidationError struct {
	Path    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("manifest validation failed at '%s': %s (field: %s)",
			e.Path, e.Message, e.Field)
	}
	return fmt.Sprintf("manifest validation failed at '%s': %s", e.Path, e.Message)
}

// AlreadyRegisteredError occurs when registering a duplicate command name.
type AlreadyRegisteredError struct {
	CommandName string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("command '%s' is already registered", e.CommandName)
}

// NotRegisteredError occurs when a command is not found in the registry.
type NotRegisteredError struct {
	CommandName string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("command '%s' not found", e.CommandName)
}
