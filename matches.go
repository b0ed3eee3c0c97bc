package weflag

import (
	"time"

	"github.com/spf13/pflag"
)

// Matches is the queryable result of a successful parse. Lookups delegate to
// the parsed flag set, keeping pflag's typed-getter contract: asking for a
// flag that doesn't exist or has another type returns pflag's error.
type Matches struct {
	flags *pflag.FlagSet
}

// GetString returns the value of a string flag.
func (m *Matches) GetString(name string) (string, error) {
	return m.flags.GetString(name)
}

// GetBool returns the value of a bool flag.
func (m *Matches) GetBool(name string) (bool, error) {
	return m.flags.GetBool(name)
}

// GetInt returns the value of an int flag.
func (m *Matches) GetInt(name string) (int, error) {
	return m.flags.GetInt(name)
}

// GetFloat64 returns the value of a float64 flag.
func (m *Matches) GetFloat64(name string) (float64, error) {
	return m.flags.GetFloat64(name)
}

// GetDuration returns the value of a duration flag.
func (m *Matches) GetDuration(name string) (time.Duration, error) {
	return m.flags.GetDuration(name)
}

// GetStringSlice returns the value of a string-slice flag.
func (m *Matches) GetStringSlice(name string) ([]string, error) {
	return m.flags.GetStringSlice(name)
}

// Changed reports whether the flag was set on the command line, as opposed to
// holding its default.
func (m *Matches) Changed(name string) bool {
	return m.flags.Changed(name)
}

// Args returns the positional arguments left after flag parsing.
func (m *Matches) Args() []string {
	return m.flags.Args()
}

// Arg returns the i'th positional argument, or "" when out of range.
func (m *Matches) Arg(i int) string {
	return m.flags.Arg(i)
}

// NArg returns the number of positional arguments.
func (m *Matches) NArg() int {
	return m.flags.NArg()
}

// Lookup returns the underlying pflag flag definition, or nil.
func (m *Matches) Lookup(name string) *pflag.Flag {
	return m.flags.Lookup(name)
}
