package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rgonek/docrebuild/converter"
	"github.com/rgonek/docrebuild/engine"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "docrebuild",
	Short: "Rebuild structured documents from extracted text",
	Long: `Detects tables in extracted text or HTML, rewrites them as enumerated
lists, and renders light markup as plain text, markdown, docx or HTML.`,
	SilenceUsage: true,
}

// Global flags.
var (
	configPath string
	presetName string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML file overriding preset thresholds")
	rootCmd.PersistentFlags().StringVar(&presetName, "preset", presetBalanced, "Preset: balanced|strict|lenient")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newEngine(cmd *cobra.Command) (*engine.Engine, error) {
	cfg, err := resolveConfig(presetName, configPath)
	if err != nil {
		return nil, err
	}
	cfg.Logger = newLogger(cmd.ErrOrStderr())

	eng, err := engine.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return eng, nil
}

// readInput reads the named file, or stdin when no file or "-" is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// writeOutput writes to path, or stdout when path is empty. Binary
// formats are not written to a terminal.
func writeOutput(cmd *cobra.Command, path string, format converter.Format, data []byte) error {
	if path == "" {
		out := cmd.OutOrStdout()
		if format == converter.FormatDocx && isTerminal(out) {
			return fmt.Errorf("refusing to write docx to a terminal, use --out")
		}
		_, err := out.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// parseFormatFlag resolves --format; empty selects the configured default.
func parseFormatFlag(name string) (converter.Format, error) {
	if name == "" {
		return "", nil
	}
	return converter.ParseFormat(name)
}

func logWarnings(logger *slog.Logger, warnings []converter.Warning) {
	for _, w := range warnings {
		logger.Warn(w.Message, "type", w.Type, "block", w.BlockKind, "line", w.Line)
	}
}
