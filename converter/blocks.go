package converter

import (
	"strconv"
	"strings"

	"github.com/rgonek/docrebuild/markup"
)

// renderPlain writes the summary header followed by exactly one line per
// block.
func (s *state) renderPlain(doc markup.Document) []byte {
	var sb strings.Builder
	sb.WriteString(s.config.SummaryLabel)
	sb.WriteString(": ")
	sb.WriteString(s.summary)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(string(s.config.SeparatorChar), s.config.SeparatorWidth))
	sb.WriteString("\n\n")

	numbers := newOrdinals(s.config.OrderedListStyle)
	for i, block := range doc.Blocks {
		sb.WriteString(s.plainLine(block, i+1, numbers.observe(block.Kind)))
		sb.WriteByte('\n')
	}

	return []byte(sb.String())
}

// plainLine renders one block without markers. ordinal is the item number
// for ordered blocks.
func (s *state) plainLine(block markup.Block, line, ordinal int) string {
	switch block.Kind {
	case markup.BlockRule, markup.BlockBlank:
		return ""
	case markup.BlockBullet:
		return string(s.config.BulletMarker) + " " + s.inlineText(block, line)
	case markup.BlockOrdered:
		return strconv.Itoa(ordinal) + ". " + s.inlineText(block, line)
	default:
		// Headings, quotes and paragraphs keep only their text.
		return s.inlineText(block, line)
	}
}
