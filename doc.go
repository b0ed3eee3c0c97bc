// Package weflag makes pflag-based command lines run natively or in the
// browser.
//
// The same parsing code works in both targets: on native builds arguments come
// from the process argument vector and messages go to stdout/stderr; on
// js/wasm builds arguments come from the page URL's query string and messages
// go to the browser console or a popup alert. All flag grammar — syntax,
// validation, help detection, usage rendering — belongs to
// github.com/spf13/pflag; this package only redirects the argument source and
// the output sink.
//
// Two adapters are provided. Command wraps a pflag.FlagSet and yields a
// queryable Matches:
//
//	cmd := weflag.New("greet").WithVersion("1.0.0")
//	cmd.Flags.BoolP("verbose", "v", false, "enable verbose output")
//	matches := cmd.GetMatches()
//
// The typed-options adapter fills a struct through mapstructure tags instead:
//
//	type Opts struct {
//		Value float64 `mapstructure:"value"`
//	}
//
//	cmd := weflag.New("demo")
//	cmd.Flags.Float64("value", 0, "an optional value")
//	opts := weflag.Parse[Opts](cmd)
//
// Each operation comes in a terminating form (GetMatches, Parse), which prints
// and ends the program on failure the way pflag-based tools do, and a
// non-terminating form (TryGetMatches, TryParse), which returns the structured
// error so the caller decides. Help and version requests are written to the
// success sink; every other failure goes to the error sink.
package weflag
