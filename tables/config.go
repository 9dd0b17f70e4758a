package tables

import "fmt"

const (
	DefaultStartSentinel = "[TABLE START]"
	DefaultEndSentinel   = "[TABLE END]"
)

// Config holds the detection and transcoding thresholds.
// Zero values fall back to the defaults listed on each field.
type Config struct {
	// MinRows is the number of tabular lines a run needs before it is
	// reported as a region (default 2).
	MinRows int `json:"minRows,omitempty" toml:"min_rows"`

	// MinTabs is the tab count that makes a line tabular (default 2).
	MinTabs int `json:"minTabs,omitempty" toml:"min_tabs"`

	// MinPipes is the pipe count that makes a line tabular (default 2).
	MinPipes int `json:"minPipes,omitempty" toml:"min_pipes"`

	// MinSpaceRun is the length of a space run treated as a column gap (default 3).
	MinSpaceRun int `json:"minSpaceRun,omitempty" toml:"min_space_run"`

	// MinSpaceFields is the field count a space-aligned line needs (default 3).
	MinSpaceFields int `json:"minSpaceFields,omitempty" toml:"min_space_fields"`

	// HeaderLengthRatio: row 0 is a header when its average cell length is
	// below this fraction of row 1's average (default 0.7).
	HeaderLengthRatio float64 `json:"headerLengthRatio,omitempty" toml:"header_length_ratio"`

	// MaxHeaderCellLen bounds header cell length in runes (default 50).
	MaxHeaderCellLen int `json:"maxHeaderCellLen,omitempty" toml:"max_header_cell_len"`

	// MaxTitleLen bounds the joined header title before it degrades to
	// "Data Table" (default 50).
	MaxTitleLen int `json:"maxTitleLen,omitempty" toml:"max_title_len"`

	// Sentinels wraps rewritten regions in StartSentinel/EndSentinel lines.
	Sentinels     bool   `json:"sentinels,omitempty" toml:"sentinels"`
	StartSentinel string `json:"startSentinel,omitempty" toml:"start_sentinel"`
	EndSentinel   string `json:"endSentinel,omitempty" toml:"end_sentinel"`
}

// DefaultConfig returns the configuration used when no thresholds are set.
func DefaultConfig() Config {
	return Config{}.applyDefaults()
}

func (c Config) applyDefaults() Config {
	if c.MinRows == 0 {
		c.MinRows = 2
	}
	if c.MinTabs == 0 {
		c.MinTabs = 2
	}
	if c.MinPipes == 0 {
		c.MinPipes = 2
	}
	if c.MinSpaceRun == 0 {
		c.MinSpaceRun = 3
	}
	if c.MinSpaceFields == 0 {
		c.MinSpaceFields = 3
	}
	if c.HeaderLengthRatio == 0 {
		c.HeaderLengthRatio = 0.7
	}
	if c.MaxHeaderCellLen == 0 {
		c.MaxHeaderCellLen = 50
	}
	if c.MaxTitleLen == 0 {
		c.MaxTitleLen = 50
	}
	if c.StartSentinel == "" {
		c.StartSentinel = DefaultStartSentinel
	}
	if c.EndSentinel == "" {
		c.EndSentinel = DefaultEndSentinel
	}

	return c
}

// Validate checks that config values are usable. Zero values are accepted
// and replaced by defaults.
func (c Config) Validate() error {
	c = c.applyDefaults()

	if c.MinRows < 1 {
		return fmt.Errorf("minRows must be at least 1, got %d", c.MinRows)
	}
	if c.MinTabs < 1 {
		return fmt.Errorf("minTabs must be at least 1, got %d", c.MinTabs)
	}
	if c.MinPipes < 1 {
		return fmt.Errorf("minPipes must be at least 1, got %d", c.MinPipes)
	}
	if c.MinSpaceRun < 2 {
		return fmt.Errorf("minSpaceRun must be at least 2, got %d", c.MinSpaceRun)
	}
	if c.MinSpaceFields < 2 {
		return fmt.Errorf("minSpaceFields must be at least 2, got %d", c.MinSpaceFields)
	}
	if c.HeaderLengthRatio <= 0 || c.HeaderLengthRatio > 1 {
		return fmt.Errorf("headerLengthRatio must be in (0, 1], got %g", c.HeaderLengthRatio)
	}
	if c.MaxHeaderCellLen < 1 {
		return fmt.Errorf("maxHeaderCellLen must be positive, got %d", c.MaxHeaderCellLen)
	}
	if c.MaxTitleLen < 1 {
		return fmt.Errorf("maxTitleLen must be positive, got %d", c.MaxTitleLen)
	}
	if c.StartSentinel == c.EndSentinel {
		return fmt.Errorf("startSentinel and endSentinel must differ, both are %q", c.StartSentinel)
	}

	return nil
}
