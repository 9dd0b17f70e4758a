// Package markup parses the line-oriented markup dialect returned by the
// rewriting step into a Document of typed blocks.
//
// Parsing never fails: a line that matches no block syntax becomes a
// paragraph. Inline emphasis is tokenized separately by Tokenize, so block
// classification and inline scanning stay independent.
package markup

import (
	"strings"
)

const maxHeadingLevel = 6

// Parse splits src into lines and classifies each one. The document keeps
// every raw line, so Document.Markup returns src unchanged.
func Parse(src string) Document {
	if src == "" {
		return Document{}
	}

	lines := strings.Split(src, "\n")
	doc := Document{}
	if lines[len(lines)-1] == "" {
		doc.TrailingNewline = true
		lines = lines[:len(lines)-1]
	}

	doc.Blocks = make([]Block, 0, len(lines))
	for _, line := range lines {
		doc.Blocks = append(doc.Blocks, ParseLine(line))
	}

	return doc
}

// ParseLine classifies a single line. Headings are checked from level 6
// down so "###### x" never matches a shorter prefix. Markers are matched
// after leading indentation, and a marker with nothing after it still
// selects its kind.
func ParseLine(raw string) Block {
	line := strings.TrimLeft(strings.TrimRight(raw, "\r"), " \t")
	trimmed := strings.TrimSpace(line)

	if level, text, ok := parseHeading(line); ok {
		return Block{Kind: BlockHeading, Level: level, Text: text, Raw: raw}
	}
	if isRule(trimmed) {
		return Block{Kind: BlockRule, Raw: raw}
	}
	if text, ok := strings.CutPrefix(line, "> "); ok {
		return Block{Kind: BlockQuote, Text: strings.TrimSpace(text), Raw: raw}
	}
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return Block{Kind: BlockBullet, Text: strings.TrimSpace(line[2:]), Raw: raw}
	}
	if text, ok := cutOrderedMarker(line); ok {
		return Block{Kind: BlockOrdered, Text: text, Raw: raw}
	}
	if trimmed == "" {
		return Block{Kind: BlockBlank, Raw: raw}
	}

	return Block{Kind: BlockParagraph, Text: trimmed, Raw: raw}
}

func parseHeading(line string) (int, string, bool) {
	for level := maxHeadingLevel; level >= 1; level-- {
		prefix := strings.Repeat("#", level) + " "
		if text, ok := strings.CutPrefix(line, prefix); ok {
			return level, strings.TrimSpace(text), true
		}
	}
	return 0, "", false
}

// isRule matches a line made only of three or more '-', '*' or '_'.
func isRule(line string) bool {
	if len(line) < 3 {
		return false
	}

	marker := line[0]
	if marker != '-' && marker != '*' && marker != '_' {
		return false
	}
	for i := 1; i < len(line); i++ {
		if line[i] != marker {
			return false
		}
	}
	return true
}

// cutOrderedMarker strips a leading "<digits>.<space>" marker. The number
// itself is dropped; renderers renumber sequentially.
func cutOrderedMarker(line string) (string, bool) {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || i+1 >= len(line) || line[i] != '.' {
		return "", false
	}
	switch line[i+1] {
	case ' ', '\t', '\v', '\f':
	default:
		return "", false
	}

	return strings.TrimSpace(line[i+2:]), true
}
