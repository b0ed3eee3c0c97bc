// Package host abstracts where command-line arguments come from and where
// user-facing text goes.
//
// A Host bundles an argument source with a success sink, an error sink, and a
// way to end the program. The native implementation reads the process argument
// vector and writes to stdout/stderr; the browser implementation (js/wasm
// builds) derives arguments from the page URL's query string and writes to the
// browser console or an alert popup. Default returns whichever matches the
// build target, so code written against Host runs unchanged on both.
package host

// Host is the target-dependent environment a command runs in.
type Host interface {
	// Args returns the argument vector, without the program name.
	Args() []string

	// Print writes a message to the success sink.
	Print(msg string) error

	// PrintError writes a message to the error sink.
	PrintError(msg string) error

	// Exit ends the program. Implementations for environments where exit
	// codes are unobservable may ignore code.
	Exit(code int)
}

// OutputMode selects the browser output sink.
type OutputMode int

const (
	// ModeConsole routes messages to console.log / console.error.
	ModeConsole OutputMode = iota

	// ModeAlert routes messages to a popup alert.
	ModeAlert
)
