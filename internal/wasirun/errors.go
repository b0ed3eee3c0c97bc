package wasirun

import (
	"fmt"
	"time"
)

// CompilationError occurs when wasm module compilation fails.
type CompilationError struct {
	ModuleName string
	Err        error
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("failed to compile wasm module '%s': %v", e.ModuleName, e.Err)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

// InstantiationError occurs when module instantiation fails.
type InstantiationError struct {
	ModuleName string
	Err        error
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("failed to instantiate module '%s': %v", e.ModuleName, e.Err)
}

func (e *InstantiationError) Unwrap() error {
	return e.Err
}

// GuestExitError occurs when the guest program exits with a non-zero code.
type GuestExitError struct {
	ModuleName string
	Code       uint32
}

func (e *GuestExitError) Error() string {
	return fmt.Sprintf("module '%s' exited with code %d", e.ModuleName, e.Code)
}

// TimeoutError occurs when guest execution exceeds the configured timeout.
type TimeoutError struct {
	Duration time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("wasm execution timed out after %v", e.Duration)
}
