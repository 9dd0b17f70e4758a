package markup

import "strings"

// emphasisMarkers is ordered longest first so "***x***" is never read as
// "*" + "**x**" + "*".
var emphasisMarkers = [...]struct {
	marker string
	style  SpanStyle
}{
	{marker: "***", style: SpanBoldItalic},
	{marker: "**", style: SpanBold},
	{marker: "*", style: SpanItalic},
}

// Tokenize splits text into emphasis spans. Code spans are unwrapped first
// (code styling is not kept). Emphasis content is non-empty, stays on one
// line and ends at the first matching closing marker. Text between matches
// becomes plain spans.
func Tokenize(text string) []Span {
	text = StripCode(text)

	var spans []Span
	plainFrom := 0
	for i := 0; i < len(text); {
		if text[i] != '*' {
			i++
			continue
		}

		style, inner, end, ok := matchEmphasis(text, i)
		if !ok {
			i++
			continue
		}

		if plainFrom < i {
			spans = append(spans, Span{Style: SpanPlain, Text: text[plainFrom:i]})
		}
		spans = append(spans, Span{Style: style, Text: inner})
		i = end
		plainFrom = end
	}

	if plainFrom < len(text) {
		spans = append(spans, Span{Style: SpanPlain, Text: text[plainFrom:]})
	}

	return spans
}

// matchEmphasis tries each marker at position i and returns the style, the
// inner text and the index just past the closing marker.
func matchEmphasis(text string, i int) (SpanStyle, string, int, bool) {
	for _, m := range emphasisMarkers {
		if !strings.HasPrefix(text[i:], m.marker) {
			continue
		}

		open := i + len(m.marker)
		for k := open + 1; k+len(m.marker) <= len(text); k++ {
			if text[k-1] == '\n' {
				break
			}
			if strings.HasPrefix(text[k:], m.marker) {
				return m.style, text[open:k], k + len(m.marker), true
			}
		}
	}

	return "", "", 0, false
}

// StripCode replaces single-backtick code spans with their content.
// A lone or empty pair of backticks is left as is.
func StripCode(text string) string {
	if !strings.Contains(text, "`") {
		return text
	}

	var sb strings.Builder
	for i := 0; i < len(text); {
		if text[i] != '`' {
			sb.WriteByte(text[i])
			i++
			continue
		}

		closing := strings.IndexByte(text[i+1:], '`')
		if closing <= 0 {
			sb.WriteByte('`')
			i++
			continue
		}

		sb.WriteString(text[i+1 : i+1+closing])
		i += closing + 2
	}

	return sb.String()
}

// PlainText returns the text of all spans with emphasis markers removed.
func PlainText(text string) string {
	spans := Tokenize(text)

	var sb strings.Builder
	for _, span := range spans {
		sb.WriteString(span.Text)
	}
	return sb.String()
}

// HasCode reports whether text contains a code span that Tokenize unwraps.
func HasCode(text string) bool {
	return StripCode(text) != text
}
