package markup

import (
	"strings"
	"testing"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"\n",
		"# Title\n\nBody",
		"###### deep\n####### too deep",
		"***a*** and *b* and **c**",
		"- item\n* item\n1. one\n> quote\n---",
		"`code` and ``empty``",
		"windows\r\nlines\r\n",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		doc := Parse(src)
		if got := doc.Markup(); got != src {
			t.Fatalf("round trip mismatch: got %q want %q", got, src)
		}

		lines := strings.Count(src, "\n") + 1
		if doc.TrailingNewline {
			lines--
		}
		if src != "" && len(doc.Blocks) != lines {
			t.Fatalf("got %d blocks for %d lines", len(doc.Blocks), lines)
		}

		for _, b := range doc.Blocks {
			var sb strings.Builder
			for _, span := range Tokenize(b.Text) {
				sb.WriteString(span.Text)
			}
			if sb.String() != PlainText(b.Text) {
				t.Fatalf("tokenize and plain text disagree for %q", b.Text)
			}
		}
	})
}
