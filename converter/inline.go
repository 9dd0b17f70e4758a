package converter

import (
	"strings"

	"github.com/rgonek/docrebuild/markup"
)

// spans tokenizes the inline text of a block and records what the
// tokenizer could not carry into a styled rendition.
func (s *state) spans(block markup.Block, line int) []markup.Span {
	if markup.HasCode(block.Text) {
		s.addWarning(WarningDroppedFeature, block, line, "code span styling dropped")
	}

	spans := markup.Tokenize(block.Text)
	for _, span := range spans {
		if span.Style == markup.SpanPlain && strings.Contains(span.Text, "*") {
			s.addWarning(WarningUnbalancedMarker, block, line, "unmatched emphasis marker kept as text")
			break
		}
	}

	return spans
}

// inlineText is the marker-free text of a block.
func (s *state) inlineText(block markup.Block, line int) string {
	var sb strings.Builder
	for _, span := range s.spans(block, line) {
		sb.WriteString(span.Text)
	}
	return sb.String()
}
