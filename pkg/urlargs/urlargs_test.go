package urlargs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseEmpty(t *testing.T) {
	for _, query := range []string{"", "?"} {
		args, err := Parse(query)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", query, err)
		}
		if len(args) != 0 {
			t.Errorf("Parse(%q) = %v, want empty", query, args)
		}
	}
}

func TestParseSeparators(t *testing.T) {
	args, err := Parse("?--value=3.14&-v&positional")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []string{"--value=3.14", "-v", "positional"}
	if diff := cmp.Diff(want, args); diff != "" {
		t.Errorf("argument vector mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePlusAndEscapes(t *testing.T) {
	args, err := Parse("--name+%22hello%20world%22")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []string{"--name", "hello world"}
	if diff := cmp.Diff(want, args); diff != "" {
		t.Errorf("argument vector mismatch (-want +got):\n%s", diff)
	}
}

func TestParseQuotingGroupsWords(t *testing.T) {
	args, err := Parse(`?greet&"two words"&'also grouped'`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []string{"greet", "two words", "also grouped"}
	if diff := cmp.Diff(want, args); diff != "" {
		t.Errorf("argument vector mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMalformedEscape(t *testing.T) {
	if _, err := Parse("?--bad=%zz"); err == nil {
		t.Fatal("Parse should reject malformed percent escapes")
	}
}

func TestParseUnbalancedQuote(t *testing.T) {
	if _, err := Parse(`?--msg="unterminated`); err == nil {
		t.Fatal("Parse should reject unbalanced quotes")
	}
}

func TestFromRawURL(t *testing.T) {
	args, err := FromRawURL("https://example.com/app/?--verbose&run")
	if err != nil {
		t.Fatalf("FromRawURL failed: %v", err)
	}

	want := []string{"--verbose", "run"}
	if diff := cmp.Diff(want, args); diff != "" {
		t.Errorf("argument vector mismatch (-want +got):\n%s", diff)
	}
}

func TestFromRawURLNoQuery(t *testing.T) {
	args, err := FromRawURL("https://example.com/app/")
	if err != nil {
		t.Fatalf("FromRawURL failed: %v", err)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}
