// Package engine wires table normalization, the external rewriting step,
// markup parsing and rendering into one pipeline.
//
// Usage:
//
//	eng, err := engine.New(engine.DefaultConfig())
//	out, err := eng.Process(ctx, engine.Input{Text: raw}, rewriter, converter.FormatDocx, summary)
//	os.WriteFile("report.docx", out.Result.Data, 0o644)
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rgonek/docrebuild/converter"
	"github.com/rgonek/docrebuild/markup"
	"github.com/rgonek/docrebuild/tables"
)

// Engine runs the reconstruction pipeline. It is safe for concurrent use.
type Engine struct {
	cfg       Config
	logger    *slog.Logger
	converter *converter.Converter
}

// Input is one source document.
type Input struct {
	Text string `json:"text"`
	// HTML marks Text as an HTML fragment.
	HTML bool `json:"html,omitempty"`
}

// Normalized is source text with its tables rewritten as lists.
type Normalized struct {
	Text       string             `json:"text"`
	Regions    []tables.Region    `json:"regions,omitempty"`
	HTMLTables []tables.HTMLTable `json:"htmlTables,omitempty"`
}

// TableCount is the number of tables rewritten.
func (n Normalized) TableCount() int {
	return len(n.Regions) + len(n.HTMLTables)
}

// Output is everything one pipeline run produced.
type Output struct {
	Normalized Normalized       `json:"normalized"`
	Markup     string           `json:"markup"`
	Result     converter.Result `json:"result"`
}

// New creates an Engine with the given configuration.
func New(cfg Config) (*Engine, error) {
	cfg.defaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	conv, err := converter.New(cfg.Converter)
	if err != nil {
		return nil, fmt.Errorf("converter: %w", err)
	}
	cfg.Converter = conv.Config()

	return &Engine{
		cfg:       cfg,
		logger:    cfg.Logger,
		converter: conv,
	}, nil
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// NormalizeText rewrites the tabular regions of raw text in place.
func (e *Engine) NormalizeText(text string) Normalized {
	rewritten, regions := tables.Rewrite(text, e.cfg.Tables)
	e.logger.Debug("text normalized",
		"lines", strings.Count(text, "\n")+1,
		"regions", len(regions),
	)
	return Normalized{Text: rewritten, Regions: regions}
}

// NormalizeHTML replaces every table of an HTML fragment with its list and
// converts the remaining markup to light markup.
func (e *Engine) NormalizeHTML(fragment string) (Normalized, error) {
	rewritten, found, err := tables.RewriteHTML(fragment, e.cfg.Tables)
	if err != nil {
		return Normalized{}, fmt.Errorf("normalize html: %w", err)
	}
	e.logger.Debug("html normalized", "tables", len(found))
	return Normalized{Text: rewritten, HTMLTables: found}, nil
}

// Normalize dispatches on the input kind.
func (e *Engine) Normalize(in Input) (Normalized, error) {
	if in.HTML {
		return e.NormalizeHTML(in.Text)
	}
	return e.NormalizeText(in.Text), nil
}

// Convert parses markup and renders it. An empty format selects the
// configured default.
func (e *Engine) Convert(src string, format converter.Format, summary string) (converter.Result, error) {
	doc := markup.Parse(src)
	result, err := e.converter.Convert(doc, format, summary)
	if err != nil {
		return converter.Result{}, err
	}

	e.logger.Debug("document rendered",
		"format", result.Format,
		"blocks", len(doc.Blocks),
		"bytes", len(result.Data),
		"warnings", len(result.Warnings),
	)
	return result, nil
}

// Process runs the full pipeline: normalize, rewrite, parse and render.
// A nil rewriter behaves as Identity.
func (e *Engine) Process(ctx context.Context, in Input, rw Rewriter, format converter.Format, summary string) (Output, error) {
	if err := ctx.Err(); err != nil {
		return Output{}, err
	}
	if rw == nil {
		rw = Identity
	}

	normalized, err := e.Normalize(in)
	if err != nil {
		return Output{}, err
	}

	rewritten, err := rw.Rewrite(ctx, normalized.Text)
	if err != nil {
		return Output{}, fmt.Errorf("rewrite: %w", err)
	}

	result, err := e.Convert(rewritten, format, summary)
	if err != nil {
		return Output{}, err
	}

	return Output{
		Normalized: normalized,
		Markup:     rewritten,
		Result:     result,
	}, nil
}
