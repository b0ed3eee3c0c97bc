//go:build !js

package host

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// NativeHost reads the process argument vector and writes to stdio streams.
//
// The streams and the exit function are injectable so tests can observe
// terminating behavior without forking a process.
type NativeHost struct {
	args   []string
	stdout io.Writer
	stderr io.Writer
	exit   func(int)
	logger *zap.Logger
}

// NativeOption configures a NativeHost.
type NativeOption func(*NativeHost)

// WithStdout overrides the success sink.
func WithStdout(w io.Writer) NativeOption {
	return func(h *NativeHost) { h.stdout = w }
}

// WithStderr overrides the error sink.
func WithStderr(w io.Writer) NativeOption {
	return func(h *NativeHost) { h.stderr = w }
}

// WithExit overrides the exit function.
func WithExit(exit func(int)) NativeOption {
	return func(h *NativeHost) { h.exit = exit }
}

// WithArgs overrides the argument vector (program name excluded).
func WithArgs(args []string) NativeOption {
	return func(h *NativeHost) { h.args = args }
}

// WithLogger attaches a logger for sink diagnostics.
func WithLogger(logger *zap.Logger) NativeOption {
	return func(h *NativeHost) { h.logger = logger.With(zap.String("component", "host")) }
}

// Native creates a host backed by os.Args, os.Stdout, os.Stderr and os.Exit.
func Native(opts ...NativeOption) *NativeHost {
	h := &NativeHost{
		args:   os.Args[1:],
		stdout: os.Stdout,
		stderr: os.Stderr,
		exit:   os.Exit,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Default returns the host for the current build target.
func Default() Host {
	return Native()
}

// Args returns the process argument vector without the program name.
func (h *NativeHost) Args() []string {
	return h.args
}

// Print writes msg and a trailing newline to the success sink.
func (h *NativeHost) Print(msg string) error {
	_, err := fmt.Fprintln(h.stdout, msg)
	return err
}

// PrintError writes msg and a trailing newline to the error sink.
func (h *NativeHost) PrintError(msg string) error {
	_, err := fmt.Fprintln(h.stderr, msg)
	return err
}

// Exit ends the process with code.
func (h *NativeHost) Exit(code int) {
	h.logger.Debug("Exiting", zap.Int("code", code))
	h.exit(code)
}
