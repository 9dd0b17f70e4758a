package markup

import "strings"

// BlockKind identifies the line-level structure of a Block.
type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockRule      BlockKind = "rule"
	BlockQuote     BlockKind = "quote"
	BlockBullet    BlockKind = "bulletItem"
	BlockOrdered   BlockKind = "orderedItem"
	BlockParagraph BlockKind = "paragraph"
	BlockBlank     BlockKind = "blank"
)

// Block is one classified source line.
type Block struct {
	Kind BlockKind `json:"kind"`

	// Level is the heading level (1-6); zero for other kinds.
	Level int `json:"level,omitempty"`

	// Text is the line content with the block marker removed. Inline
	// emphasis markers are still present; see Tokenize.
	Text string `json:"text,omitempty"`

	// Raw is the source line exactly as it appeared.
	Raw string `json:"raw"`
}

// Document is the ordered block sequence of one markup source.
type Document struct {
	Blocks []Block `json:"blocks"`

	// TrailingNewline records whether the source ended with "\n".
	TrailingNewline bool `json:"trailingNewline,omitempty"`
}

// Markup reassembles the source the document was parsed from.
func (d Document) Markup() string {
	var sb strings.Builder
	for i, b := range d.Blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.Raw)
	}
	if d.TrailingNewline {
		sb.WriteByte('\n')
	}
	return sb.String()
}

// SpanStyle is the emphasis applied to an inline span.
type SpanStyle string

const (
	SpanPlain      SpanStyle = "plain"
	SpanItalic     SpanStyle = "italic"
	SpanBold       SpanStyle = "bold"
	SpanBoldItalic SpanStyle = "boldItalic"
)

// Span is a run of text sharing one emphasis style.
type Span struct {
	Style SpanStyle `json:"style"`
	Text  string    `json:"text"`
}

// IsBold reports whether the span renders bold.
func (s Span) IsBold() bool {
	return s.Style == SpanBold || s.Style == SpanBoldItalic
}

// IsItalic reports whether the span renders italic.
func (s Span) IsItalic() bool {
	return s.Style == SpanItalic || s.Style == SpanBoldItalic
}

// InlineText returns the block text with code and emphasis markers removed.
func (b Block) InlineText() string {
	return PlainText(b.Text)
}

// Lines returns the inline text of every block, one entry per block.
func (d Document) Lines() []string {
	lines := make([]string, len(d.Blocks))
	for i, b := range d.Blocks {
		lines[i] = b.InlineText()
	}
	return lines
}
