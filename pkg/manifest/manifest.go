// Package manifest loads declarative command grammars from YAML.
//
// A manifest names a command and lists its flags; Build compiles the list
// into a pflag flag set, so the grammar semantics still belong entirely to
// pflag. Manifests are how multi-command programs ship their grammars without
// hand-writing registration code for each one.
package manifest

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/wecli/weflag"
)

// Manifest describes one command: its metadata and flag grammar.
type Manifest struct {
	Name      string     `yaml:"name"`
	Version   string     `yaml:"version"`
	About     string     `yaml:"about"`
	LongAbout string     `yaml:"long_about"`
	Flags     []FlagSpec `yaml:"flags"`

	// Source file, empty when parsed from memory.
	path string
}

// FlagSpec describes a single flag.
type FlagSpec struct {
	Name      string `yaml:"name"`
	Shorthand string `yaml:"shorthand"`
	Type      string `yaml:"type"`
	Default   string `yaml:"default"`
	Usage     string `yaml:"usage"`
	Hidden    bool   `yaml:"hidden"`
}

// Flag types accepted in a manifest.
var validTypes = map[string]bool{
	"bool":        true,
	"string":      true,
	"int":         true,
	"float":       true,
	"duration":    true,
	"stringSlice": true,
}

// Parse reads a manifest from YAML and validates it.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &ParseError{Path: "<memory>", Err: err}
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	m.path = path

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks manifest fields.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return &ValidationError{
			Path:    m.Path(),
			Field:   "name",
			Message: "name is required",
		}
	}

	seenNames := map[string]bool{}
	seenShorthands := map[string]bool{}

	for _, f := range m.Flags {
		if f.Name == "" {
			return &ValidationError{
				Path:    m.Path(),
				Field:   "flags.name",
				Message: "flag name is required",
			}
		}
		if seenNames[f.Name] {
			return &ValidationError{
				Path:    m.Path(),
				Field:   "flags.name",
				Message: fmt.Sprintf("duplicate flag: %s", f.Name),
			}
		}
		seenNames[f.Name] = true

		if !validTypes[f.Type] {
			return &ValidationError{
				Path:    m.Path(),
				Field:   "flags.type",
				Message: fmt.Sprintf("unknown flag type: %q (must be one of: bool, string, int, float, duration, stringSlice)", f.Type),
			}
		}

		if len(f.Shorthand) > 1 {
			return &ValidationError{
				Path:    m.Path(),
				Field:   "flags.shorthand",
				Message: fmt.Sprintf("shorthand for --%s must be a single character", f.Name),
			}
		}
		if f.Shorthand != "" {
			if seenShorthands[f.Shorthand] {
				return &ValidationError{
					Path:    m.Path(),
					Field:   "flags.shorthand",
					Message: fmt.Sprintf("duplicate shorthand: -%s", f.Shorthand),
				}
			}
			seenShorthands[f.Shorthand] = true
		}

		if f.Default != "" {
			if err := checkDefault(f); err != nil {
				return &ValidationError{
					Path:    m.Path(),
					Field:   "flags.default",
					Message: fmt.Sprintf("bad default for --%s: %v", f.Name, err),
				}
			}
		}
	}

	return nil
}

// Build compiles the manifest's flag list into a pflag flag set. The set is
// configured the way weflag.New configures one: ContinueOnError with pflag's
// own output discarded.
func (m *Manifest) Build() (*pflag.FlagSet, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	fs := pflag.NewFlagSet(m.Name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	for _, f := range m.Flags {
		if err := registerFlag(fs, f); err != nil {
			return nil, err
		}
		if f.Hidden {
			// Registered name, cannot fail.
			_ = fs.MarkHidden(f.Name)
		}
	}

	return fs, nil
}

// Command builds a ready-to-parse weflag command from the manifest.
func (m *Manifest) Command() (*weflag.Command, error) {
	fs, err := m.Build()
	if err != nil {
		return nil, err
	}

	cmd := weflag.New(m.Name).
		WithVersion(m.Version).
		WithAbout(m.About).
		WithLongAbout(m.LongAbout)
	cmd.Flags = fs
	return cmd, nil
}

// Path returns the manifest source path, or "<memory>".
func (m *Manifest) Path() string {
	if m.path == "" {
		return "<memory>"
	}
	return m.path
}

func checkDefault(f FlagSpec) error {
	switch f.Type {
	case "bool":
		_, err := strconv.ParseBool(f.Default)
		return err
	case "int":
		_, err := strconv.Atoi(f.Default)
		return err
	case "float":
		_, err := strconv.ParseFloat(f.Default, 64)
		return err
	case "duration":
		_, err := time.ParseDuration(f.Default)
		return err
	default:
		// string and stringSlice accept anything.
		return nil
	}
}

func registerFlag(fs *pflag.FlagSet, f FlagSpec) error {
	switch f.Type {
	case "bool":
		def := false
		if f.Default != "" {
			def, _ = strconv.ParseBool(f.Default)
		}
		fs.BoolP(f.Name, f.Shorthand, def, f.Usage)
	case "string":
		fs.StringP(f.Name, f.Shorthand, f.Default, f.Usage)
	case "int":
		def := 0
		if f.Default != "" {
			def, _ = strconv.Atoi(f.Default)
		}
		fs.IntP(f.Name, f.Shorthand, def, f.Usage)
	case "float":
		def := 0.0
		if f.Default != "" {
			def, _ = strconv.ParseFloat(f.Default, 64)
		}
		fs.Float64P(f.Name, f.Shorthand, def, f.Usage)
	case "duration":
		var def time.Duration
		if f.Default != "" {
			def, _ = time.ParseDuration(f.Default)
		}
		fs.DurationP(f.Name, f.Shorthand, def, f.Usage)
	case "stringSlice":
		var def []string
		if f.Default != "" {
			def = strings.Split(f.Default, ",")
		}
		fs.StringSliceP(f.Name, f.Shorthand, def, f.Usage)
	default:
		return &ValidationError{
			Field:   "flags.type",
			Message: fmt.Sprintf("unknown flag type: %q", f.Type),
		}
	}
	return nil
}
