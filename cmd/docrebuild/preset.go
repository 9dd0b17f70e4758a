package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rgonek/docrebuild/engine"
	"github.com/rgonek/docrebuild/tables"
)

const (
	presetBalanced = "balanced"
	presetStrict   = "strict"
	presetLenient  = "lenient"
)

// presetConfig returns the thresholds for a named preset. Every preset
// bounds rewritten tables with sentinels.
func presetConfig(preset string) (engine.Config, error) {
	cfg := engine.Config{
		Tables: tables.Config{Sentinels: true},
	}

	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "", presetBalanced:
		return cfg, nil
	case presetStrict:
		cfg.Tables.MinRows = 3
		cfg.Tables.MinTabs = 2
		cfg.Tables.MinPipes = 3
		cfg.Tables.MinSpaceRun = 4
		cfg.Tables.MinSpaceFields = 4
		cfg.Tables.HeaderLengthRatio = 0.5
		return cfg, nil
	case presetLenient:
		cfg.Tables.MinRows = 2
		cfg.Tables.MinTabs = 1
		cfg.Tables.MinPipes = 2
		cfg.Tables.MinSpaceRun = 2
		cfg.Tables.MinSpaceFields = 2
		cfg.Tables.HeaderLengthRatio = 0.8
		cfg.Tables.MaxTitleLen = 80
		return cfg, nil
	default:
		return engine.Config{}, fmt.Errorf("unknown preset %q (allowed: balanced, strict, lenient)", preset)
	}
}

// fileRunes carries the rune options, which TOML spells as strings.
type fileRunes struct {
	Converter struct {
		SeparatorChar string `toml:"separator_char"`
		BulletMarker  string `toml:"bullet_marker"`
	} `toml:"converter"`
}

// applyConfigFile overlays a TOML file onto cfg. Keys missing from the
// file keep the preset's values.
func applyConfigFile(cfg engine.Config, path string) (engine.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return engine.Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return engine.Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	var runes fileRunes
	if err := toml.Unmarshal(data, &runes); err != nil {
		return engine.Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Converter.SeparatorChar, err = singleRune("separator_char", runes.Converter.SeparatorChar, cfg.Converter.SeparatorChar); err != nil {
		return engine.Config{}, err
	}
	if cfg.Converter.BulletMarker, err = singleRune("bullet_marker", runes.Converter.BulletMarker, cfg.Converter.BulletMarker); err != nil {
		return engine.Config{}, err
	}

	return cfg, nil
}

func singleRune(key, value string, fallback rune) (rune, error) {
	if value == "" {
		return fallback, nil
	}
	r := []rune(value)
	if len(r) != 1 {
		return 0, fmt.Errorf("converter.%s must be a single character, got %q", key, value)
	}
	return r[0], nil
}

func resolveConfig(preset, configPath string) (engine.Config, error) {
	cfg, err := presetConfig(preset)
	if err != nil {
		return engine.Config{}, err
	}
	if configPath == "" {
		return cfg, nil
	}
	return applyConfigFile(cfg, configPath)
}
