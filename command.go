package weflag

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/wecli/weflag/pkg/host"
	"go.uber.org/zap"
)

// Command wraps a pflag flag set with the metadata needed to render help and
// version screens, and a Host that supplies arguments and receives output.
//
// The flag set is created with ContinueOnError and a discarded output writer:
// pflag never prints on its own, the adapter routes every message through the
// host's sinks.
type Command struct {
	// Name is the program name shown in usage lines.
	Name string

	// Version, when non-empty, enables a -V/--version flag unless the
	// grammar already defines one.
	Version string

	// About is a one-line description shown in help output.
	About string

	// LongAbout, when non-empty, replaces About in long help output.
	LongAbout string

	// Flags is the wrapped grammar. Callers register flags here directly;
	// pflag owns all parsing and validation.
	Flags *pflag.FlagSet

	host        host.Host
	logger      *zap.Logger
	autoVersion bool
}

// New creates a command with an empty grammar.
func New(name string) *Command {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return &Command{
		Name:   name,
		Flags:  fs,
		logger: zap.NewNop(),
	}
}

// WithVersion sets the version string and returns the command.
func (c *Command) WithVersion(version string) *Command {
	c.Version = version
	return c
}

// WithAbout sets the one-line description and returns the command.
func (c *Command) WithAbout(about string) *Command {
	c.About = about
	return c
}

// WithLongAbout sets the long description and returns the command.
func (c *Command) WithLongAbout(longAbout string) *Command {
	c.LongAbout = longAbout
	return c
}

// WithHost injects the host. When unset, host.Default() for the build target
// is used.
func (c *Command) WithHost(h host.Host) *Command {
	c.host = h
	return c
}

// WithLogger attaches a logger for parse diagnostics.
func (c *Command) WithLogger(logger *zap.Logger) *Command {
	c.logger = logger.With(zap.String("component", "command"))
	return c
}

// GetMatches parses the host's argument vector. On failure the rendered
// message is routed to the appropriate sink and the program ends through the
// host; help and version requests exit 0, anything else exits 2.
func (c *Command) GetMatches() *Matches {
	return c.GetMatchesFrom(c.hostOrDefault().Args())
}

// GetMatchesFrom is GetMatches with an explicit argument vector.
func (c *Command) GetMatchesFrom(args []string) *Matches {
	m, err := c.TryGetMatchesFrom(args)
	if err != nil {
		c.fail(err)
		// Only reachable with a host whose Exit returns (tests).
		return nil
	}
	return m
}

// TryGetMatches parses the host's argument vector and never ends the program:
// failures come back as a *ParseError for the caller to handle.
func (c *Command) TryGetMatches() (*Matches, error) {
	return c.TryGetMatchesFrom(c.hostOrDefault().Args())
}

// TryGetMatchesFrom is TryGetMatches with an explicit argument vector.
func (c *Command) TryGetMatchesFrom(args []string) (*Matches, error) {
	c.ensureVersionFlag()

	if err := c.Flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, &ParseError{
				Kind:    KindDisplayHelp,
				Message: c.renderHelp(false),
				Err:     err,
			}
		}
		c.logger.Debug("Parse failed",
			zap.String("command", c.Name),
			zap.Error(err),
		)
		return nil, &ParseError{
			Kind:    KindUsage,
			Message: c.renderUsageError(err),
			Err:     err,
		}
	}

	if c.versionRequested() {
		return nil, &ParseError{
			Kind:    KindDisplayVersion,
			Message: c.renderVersion(),
		}
	}

	return &Matches{flags: c.Flags}, nil
}

// PrintHelp writes the help screen to the success sink. The returned error is
// the sink write error; the browser host never fails.
func (c *Command) PrintHelp() error {
	c.ensureVersionFlag()
	return c.hostOrDefault().Print(c.renderHelp(false))
}

// PrintLongHelp is PrintHelp with the long description.
func (c *Command) PrintLongHelp() error {
	c.ensureVersionFlag()
	return c.hostOrDefault().Print(c.renderHelp(true))
}

func (c *Command) hostOrDefault() host.Host {
	if c.host != nil {
		return c.host
	}
	return host.Default()
}

// ensureVersionFlag registers -V/--version through pflag when a version is
// set and the grammar hasn't claimed the name. Safe to call repeatedly.
func (c *Command) ensureVersionFlag() {
	if c.Version == "" || c.Flags.Lookup("version") != nil {
		return
	}
	shorthand := "V"
	if c.Flags.ShorthandLookup(shorthand) != nil {
		shorthand = ""
	}
	c.Flags.BoolP("version", shorthand, false, "Print version information and exit")
	c.autoVersion = true
}

func (c *Command) versionRequested() bool {
	if !c.autoVersion {
		return false
	}
	requested, err := c.Flags.GetBool("version")
	return err == nil && requested
}

// fail routes a parse failure to the right sink and ends the program through
// the host. Exit codes: 0 for help/version displays, 2 for usage errors. The
// browser host normalizes both to 0.
func (c *Command) fail(err error) {
	var perr *ParseError
	if !errors.As(err, &perr) {
		perr = &ParseError{
			Kind:    KindUsage,
			Message: fmt.Sprintf("error: %v", err),
			Err:     err,
		}
	}

	h := c.hostOrDefault()
	c.logger.Debug("Routing parse failure",
		zap.String("command", c.Name),
		zap.Stringer("kind", perr.Kind),
	)

	if perr.IsDisplay() {
		if sinkErr := h.Print(perr.Message); sinkErr != nil {
			c.logger.Warn("Failed to write to success sink", zap.Error(sinkErr))
		}
		h.Exit(0)
		return
	}

	if sinkErr := h.PrintError(perr.Message); sinkErr != nil {
		c.logger.Warn("Failed to write to error sink", zap.Error(sinkErr))
	}
	h.Exit(2)
}

func (c *Command) renderHelp(long bool) string {
	var b strings.Builder

	if c.Version != "" {
		fmt.Fprintf(&b, "%s %s\n", c.Name, c.Version)
	} else {
		fmt.Fprintf(&b, "%s\n", c.Name)
	}

	about := c.About
	if long && c.LongAbout != "" {
		about = c.LongAbout
	}
	if about != "" {
		fmt.Fprintf(&b, "%s\n", about)
	}

	fmt.Fprintf(&b, "\nUsage:\n  %s [flags] [args]\n", c.Name)

	if c.Flags.HasAvailableFlags() {
		b.WriteString("\nFlags:\n")
		b.WriteString(c.Flags.FlagUsages())
	}

	return strings.TrimRight(b.String(), "\n")
}

func (c *Command) renderVersion() string {
	return fmt.Sprintf("%s %s", c.Name, c.Version)
}

func (c *Command) renderUsageError(err error) string {
	return fmt.Sprintf("error: %v\n\nUsage:\n  %s [flags] [args]\n\nFor more information, try '--help'.", err, c.Name)
}
