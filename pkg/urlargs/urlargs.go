// Package urlargs turns a URL query string into a command-line argument
// vector.
//
// The query is read as a whitespace-separated command line: '&' and '+' act as
// separators, percent-escapes are decoded, and shell-style quoting groups
// words. So these all tokenize to ["--value=3.14", "-v", "hello world"]:
//
//	?--value=3.14&-v&%22hello%20world%22
//	?--value=3.14+-v+"hello+world"
//
// Flag grammar is not interpreted here; the tokens are handed to the parsing
// library exactly as a native shell would hand over argv.
package urlargs

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/shlex"
)

// Parse tokenizes a URL query string into an argument vector. A leading '?'
// is accepted and ignored. An empty query yields an empty vector.
func Parse(query string) ([]string, error) {
	q := strings.TrimPrefix(query, "?")
	if q == "" {
		return nil, nil
	}

	// '&' separates words exactly like '+'. QueryUnescape handles '+'.
	decoded, err := url.QueryUnescape(strings.ReplaceAll(q, "&", " "))
	if err != nil {
		return nil, fmt.Errorf("malformed query string: %w", err)
	}

	args, err := shlex.Split(decoded)
	if err != nil {
		return nil, fmt.Errorf("malformed query string: %w", err)
	}
	return args, nil
}

// FromRawURL extracts and tokenizes the query string of a full URL.
func FromRawURL(raw string) ([]string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("malformed url: %w", err)
	}
	return Parse(u.RawQuery)
}
