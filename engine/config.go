package engine

import (
	"fmt"
	"log/slog"

	"github.com/rgonek/docrebuild/converter"
	"github.com/rgonek/docrebuild/tables"
)

// Config configures the reconstruction engine.
type Config struct {
	// Tables holds the detector and transcoder thresholds.
	Tables tables.Config `json:"tables" toml:"tables"`

	// Converter holds the rendition options.
	Converter converter.Config `json:"converter" toml:"converter"`

	// BatchLimit bounds concurrent conversions in ConvertBatch when the
	// caller passes no limit (default: 4).
	BatchLimit int `json:"batchLimit,omitempty" toml:"batch_limit"`

	// RewriteRate caps rewriter calls per second across a batch; zero
	// leaves calls unthrottled.
	RewriteRate float64 `json:"rewriteRate,omitempty" toml:"rewrite_rate"`

	// RewriteBurst is the number of calls allowed at once before the rate
	// applies (default: 1 when RewriteRate is set).
	RewriteBurst int `json:"rewriteBurst,omitempty" toml:"rewrite_burst"`

	// Logger for debug messages.
	Logger *slog.Logger `json:"-" toml:"-"`
}

// DefaultConfig returns the configuration used for rewriting-model input:
// default thresholds with sentinel-bounded tables.
func DefaultConfig() Config {
	cfg := Config{Tables: tables.DefaultConfig()}
	cfg.Tables.Sentinels = true
	cfg.defaults()
	return cfg
}

func (c *Config) defaults() {
	if c.BatchLimit <= 0 {
		c.BatchLimit = 4
	}
	if c.RewriteRate > 0 && c.RewriteBurst <= 0 {
		c.RewriteBurst = 1
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Validate checks the nested configurations.
func (c Config) Validate() error {
	if err := c.Tables.Validate(); err != nil {
		return fmt.Errorf("tables: %w", err)
	}
	if c.BatchLimit < 0 {
		return fmt.Errorf("batchLimit must be non-negative, got %d", c.BatchLimit)
	}
	if c.RewriteRate < 0 {
		return fmt.Errorf("rewriteRate must be non-negative, got %g", c.RewriteRate)
	}
	if c.RewriteBurst < 0 {
		return fmt.Errorf("rewriteBurst must be non-negative, got %d", c.RewriteBurst)
	}
	return nil
}
