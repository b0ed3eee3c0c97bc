// Command demo is a small two-command program that parses the same way
// everywhere: build it natively and pass flags on the command line, or build
// it with GOOS=js GOARCH=wasm and pass them in the page URL:
//
//	demo greet --name Alice -v
//	https://example.com/demo/?greet&--name+Alice&-v
//
// Grammar is declared in embedded manifests; parsing is plain pflag under the
// weflag adapters, so help, version and error output land on stdout/stderr
// natively and on the browser console on the web.
package main

import (
	"fmt"
	"strings"

	"github.com/wecli/weflag"
	"github.com/wecli/weflag/pkg/host"
	"github.com/wecli/weflag/pkg/manifest"
	"go.uber.org/zap"
)

var version = "0.1.0"

const greetManifest = `
name: greet
about: Greets somebody
flags:
  - name: name
    shorthand: n
    type: string
    default: world
    usage: who to greet
  - name: value
    type: float
    usage: an optional value to show off typed flags
  - name: verbose
    shorthand: v
    type: bool
    usage: enable verbose output
`

const waveManifest = `
name: wave
about: Waves instead of speaking
flags:
  - name: times
    shorthand: t
    type: int
    default: "1"
    usage: how many times to wave
`

type greetOpts struct {
	Name    string  `mapstructure:"name"`
	Value   float64 `mapstructure:"value"`
	Verbose bool    `mapstructure:"verbose"`
}

type waveOpts struct {
	Times int `mapstructure:"times"`
}

func main() {
	logger := zap.NewNop()
	h := host.Default()

	registry := manifest.NewRegistry(logger)
	for _, raw := range []string{greetManifest, waveManifest} {
		m, err := manifest.Parse([]byte(raw))
		if err != nil {
			h.PrintError("bad embedded manifest: " + err.Error())
			h.Exit(1)
			return
		}
		if err := registry.Register(m); err != nil {
			h.PrintError(err.Error())
			h.Exit(1)
			return
		}
	}

	// First positional word selects the subcommand; default is greet.
	args := h.Args()
	sub := "greet"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		name := args[0]
		if _, ok := registry.Get(name); !ok {
			h.PrintError(fmt.Sprintf("unknown command %q (have: %s)",
				name, strings.Join(registry.Names(), ", ")))
			h.Exit(2)
			return
		}
		sub = name
		args = args[1:]
	}

	m, _ := registry.Get(sub)
	cmd, err := m.Command()
	if err != nil {
		h.PrintError(err.Error())
		h.Exit(1)
		return
	}
	cmd.WithVersion(version).WithHost(h)

	switch sub {
	case "wave":
		opts := weflag.ParseFrom[waveOpts](cmd, args)
		if opts.Times < 1 {
			opts.Times = 1
		}
		h.Print(strings.TrimSpace(strings.Repeat("👋 ", opts.Times)))
	default:
		opts := weflag.ParseFrom[greetOpts](cmd, args)
		msg := fmt.Sprintf("Hello, %s!", opts.Name)
		if opts.Value != 0 {
			msg = fmt.Sprintf("%s Your value is %g.", msg, opts.Value)
		}
		if opts.Verbose {
			msg += " (parsed happily on " + targetName + ")"
		}
		h.Print(msg)
	}
}
