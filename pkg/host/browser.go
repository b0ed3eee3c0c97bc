//go:build js && wasm

package host

import (
	"os"
	"syscall/js"

	"github.com/wecli/weflag/pkg/urlargs"
	"go.uber.org/zap"
)

// BrowserHost derives the argument vector from the page URL's query string and
// writes messages to the browser console or an alert popup.
type BrowserHost struct {
	mode   OutputMode
	logger *zap.Logger
}

// BrowserOption configures a BrowserHost.
type BrowserOption func(*BrowserHost)

// WithAlert routes messages to a popup alert instead of the console.
func WithAlert() BrowserOption {
	return func(h *BrowserHost) { h.mode = ModeAlert }
}

// WithLogger attaches a logger for sink diagnostics.
func WithLogger(logger *zap.Logger) BrowserOption {
	return func(h *BrowserHost) { h.logger = logger.With(zap.String("component", "host")) }
}

// Browser creates a host backed by window.location and the browser console.
func Browser(opts ...BrowserOption) *BrowserHost {
	h := &BrowserHost{
		mode:   ModeConsole,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Default returns the host for the current build target.
func Default() Host {
	return Browser()
}

// Args tokenizes window.location.search into an argument vector.
//
// A malformed query yields an empty vector rather than an error: there is no
// caller-visible failure path for reading argv on the native target either.
func (h *BrowserHost) Args() []string {
	location := js.Global().Get("location")
	if location.IsUndefined() || location.IsNull() {
		return nil
	}
	search := location.Get("search")
	if search.IsUndefined() || search.IsNull() {
		return nil
	}
	args, err := urlargs.Parse(search.String())
	if err != nil {
		h.logger.Warn("Failed to tokenize query string", zap.Error(err))
		return nil
	}
	return args
}

// Print writes msg to console.log, or an alert popup in alert mode.
// It never fails.
func (h *BrowserHost) Print(msg string) error {
	switch h.mode {
	case ModeAlert:
		js.Global().Call("alert", msg)
	default:
		js.Global().Get("console").Call("log", msg)
	}
	return nil
}

// PrintError writes msg to console.error, or an alert popup in alert mode.
// It never fails.
func (h *BrowserHost) PrintError(msg string) error {
	switch h.mode {
	case ModeAlert:
		js.Global().Call("alert", msg)
	default:
		js.Global().Get("console").Call("error", msg)
	}
	return nil
}

// Exit ends the wasm program. The requested code is ignored: exit codes are
// unobservable in a browser, so every termination reports 0.
func (h *BrowserHost) Exit(code int) {
	h.logger.Debug("Exiting", zap.Int("requested_code", code))
	os.Exit(0)
}
