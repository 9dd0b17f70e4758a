package converter

import (
	"fmt"
	"strings"
	"unicode"
)

// Format names an output rendition.
type Format string

const (
	// FormatPlain is marker-free text under a summary header.
	FormatPlain Format = "plain"
	// FormatMarkdown is the source markup under a YAML preamble.
	FormatMarkdown Format = "markdown"
	// FormatDocx is an Office Open XML word-processing package.
	FormatDocx Format = "docx"
	// FormatHTML is a sanitised standalone HTML page.
	FormatHTML Format = "html"
)

// Formats lists every supported rendition in a stable order.
func Formats() []Format {
	return []Format{FormatPlain, FormatMarkdown, FormatDocx, FormatHTML}
}

// Extension returns the conventional file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatPlain:
		return ".txt"
	case FormatMarkdown:
		return ".md"
	case FormatDocx:
		return ".docx"
	case FormatHTML:
		return ".html"
	default:
		return ""
	}
}

func (f Format) valid() bool {
	switch f {
	case FormatPlain, FormatMarkdown, FormatDocx, FormatHTML:
		return true
	default:
		return false
	}
}

// ParseFormat resolves a format name. Common aliases such as "txt", "md"
// and "word" are accepted.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "plain", "text", "txt", "plaintext":
		return FormatPlain, nil
	case "markdown", "md", "lightmarkup":
		return FormatMarkdown, nil
	case "docx", "word", "richdocument":
		return FormatDocx, nil
	case "html", "htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// OrderedListStyle controls how plain text numbers ordered items.
type OrderedListStyle string

const (
	// OrderedRestart starts every run of ordered items at 1.
	OrderedRestart OrderedListStyle = "restart"
	// OrderedContinue numbers ordered items across the whole document.
	OrderedContinue OrderedListStyle = "continue"
)

// Config holds all converter configuration options.
type Config struct {
	Format           Format           `json:"format,omitempty" toml:"format"`
	SummaryLabel     string           `json:"summaryLabel,omitempty" toml:"summary_label"`
	SeparatorChar    rune             `json:"separatorChar,omitempty" toml:"-"`
	SeparatorWidth   int              `json:"separatorWidth,omitempty" toml:"separator_width"`
	BulletMarker     rune             `json:"bulletMarker,omitempty" toml:"-"`
	OrderedListStyle OrderedListStyle `json:"orderedListStyle,omitempty" toml:"ordered_list_style"`
	Creator          string           `json:"creator,omitempty" toml:"creator"`
	QuoteIndent      int              `json:"quoteIndent,omitempty" toml:"quote_indent"`
	HTMLTitle        string           `json:"htmlTitle,omitempty" toml:"html_title"`
}

func (c Config) applyDefaults() Config {
	if c.Format == "" {
		c.Format = FormatMarkdown
	}
	if c.SummaryLabel == "" {
		c.SummaryLabel = "SUMMARY"
	}
	if c.SeparatorChar == 0 {
		c.SeparatorChar = '='
	}
	if c.SeparatorWidth == 0 {
		c.SeparatorWidth = 80
	}
	if c.BulletMarker == 0 {
		c.BulletMarker = '-'
	}
	if c.OrderedListStyle == "" {
		c.OrderedListStyle = OrderedRestart
	}
	if c.Creator == "" {
		c.Creator = "docrebuild"
	}
	if c.QuoteIndent == 0 {
		c.QuoteIndent = 720
	}

	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if !c.Format.valid() {
		return fmt.Errorf("invalid format %q: %w", c.Format, ErrUnsupportedFormat)
	}
	if strings.TrimSpace(c.SummaryLabel) == "" {
		return fmt.Errorf("summaryLabel must be non-empty")
	}
	if unicode.IsSpace(c.SeparatorChar) || !unicode.IsPrint(c.SeparatorChar) {
		return fmt.Errorf("invalid separatorChar %q: must be a printable non-space character", c.SeparatorChar)
	}
	if c.SeparatorWidth < 1 || c.SeparatorWidth > 400 {
		return fmt.Errorf("separatorWidth must be between 1 and 400, got %d", c.SeparatorWidth)
	}
	if c.BulletMarker != '-' && c.BulletMarker != '*' && c.BulletMarker != '+' {
		return fmt.Errorf("invalid bulletMarker %q: must be one of -, *, +", c.BulletMarker)
	}
	if c.OrderedListStyle != OrderedRestart && c.OrderedListStyle != OrderedContinue {
		return fmt.Errorf("invalid orderedListStyle %q", c.OrderedListStyle)
	}
	if c.QuoteIndent < 0 || c.QuoteIndent > 7200 {
		return fmt.Errorf("quoteIndent must be between 0 and 7200 twips, got %d", c.QuoteIndent)
	}

	return nil
}
