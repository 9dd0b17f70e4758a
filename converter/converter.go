// Package converter serializes a parsed markup document into plain text,
// light markup with a YAML preamble, a word-processing package or a
// sanitised HTML page.
package converter

import (
	"errors"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rgonek/docrebuild/markup"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// ErrUnsupportedFormat is returned for a format name the converter does not
// render.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Converter renders markup documents. It holds no per-call state and is
// safe for concurrent use.
type Converter struct {
	config   Config
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

type state struct {
	config   Config
	summary  string
	warnings []Warning
}

// New creates a new Converter with the given config.
func New(config Config) (*Converter, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Converter{
		config: cfg,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
		policy: bluemonday.UGCPolicy(),
	}, nil
}

// Config returns the effective configuration, defaults applied.
func (c *Converter) Config() Config {
	return c.config
}

// Convert renders doc in the requested format. An empty format selects the
// configured default. The summary goes into the format's metadata slot.
func (c *Converter) Convert(doc markup.Document, format Format, summary string) (Result, error) {
	if format == "" {
		format = c.config.Format
	}

	s := &state{
		config:  c.config,
		summary: summary,
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatPlain:
		data = s.renderPlain(doc)
	case FormatMarkdown:
		data, err = s.renderMarkdown(doc)
	case FormatDocx:
		data, err = s.renderDocx(doc)
	case FormatHTML:
		data, err = s.renderHTML(doc, c.markdown, c.policy)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return Result{}, fmt.Errorf("failed to render %s: %w", format, err)
	}

	return Result{
		Data:     data,
		Format:   format,
		Warnings: s.warnings,
	}, nil
}

// ConvertString parses src and renders it in the requested format.
func (c *Converter) ConvertString(src string, format Format, summary string) (Result, error) {
	return c.Convert(markup.Parse(src), format, summary)
}

func (s *state) addWarning(warnType WarningType, block markup.Block, line int, message string) {
	s.warnings = append(s.warnings, Warning{
		Type:      warnType,
		BlockKind: string(block.Kind),
		Line:      line,
		Message:   message,
	})
}
