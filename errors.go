package weflag

import "fmt"

// ErrorKind classifies a parse failure for sink routing.
type ErrorKind int

const (
	// KindUsage covers malformed arguments: unknown flags, bad values,
	// missing required values. Routed to the error sink.
	KindUsage ErrorKind = iota

	// KindDisplayHelp means the user asked for help. Routed to the
	// success sink.
	KindDisplayHelp

	// KindDisplayVersion means the user asked for the version. Routed to
	// the success sink.
	KindDisplayVersion
)

func (k ErrorKind) String() string {
	switch k {
	case KindDisplayHelp:
		return "display-help"
	case KindDisplayVersion:
		return "display-version"
	default:
		return "usage"
	}
}

// ParseError is the structured result of a failed parse attempt.
//
// Message holds the fully rendered user-facing text (help screen, version
// line, or error report); Err holds the underlying pflag error when one
// exists.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsDisplay reports whether the failure is a help or version request, which
// belongs on the success sink.
func (e *ParseError) IsDisplay() bool {
	return e.Kind == KindDisplayHelp || e.Kind == KindDisplayVersion
}

// DecodeError occurs when parsed flag values cannot be decoded into the
// caller's options struct.
type DecodeError struct {
	Target string // Go type of the options struct
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode flags into %s: %v", e.Target, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
