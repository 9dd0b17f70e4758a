package main

import (
	"encoding/json"
	"fmt"

	"github.com/rgonek/docrebuild/engine"
	"github.com/rgonek/docrebuild/tables"
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Rewrite tables as enumerated lists",
	Long: `Rewrites every table in the input as an enumerated list, bounded by
sentinel lines. With --html the input is an HTML fragment and the rest of
the markup is converted to markdown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNormalize,
}

var tablesCmd = &cobra.Command{
	Use:   "tables [file]",
	Short: "Print detected tables as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTables,
}

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render light markup in an output format",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRender,
}

var processCmd = &cobra.Command{
	Use:   "process [file]",
	Short: "Normalize and render in one step",
	Long: `Runs the whole pipeline with the identity rewriter: tables are
normalized and the result is parsed as light markup and rendered.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProcess,
}

// Command flags.
var (
	htmlInput  bool
	formatName string
	summary    string
	outPath    string
)

func init() {
	normalizeCmd.Flags().BoolVar(&htmlInput, "html", false, "Treat input as an HTML fragment")
	tablesCmd.Flags().BoolVar(&htmlInput, "html", false, "Treat input as an HTML fragment")
	processCmd.Flags().BoolVar(&htmlInput, "html", false, "Treat input as an HTML fragment")

	for _, cmd := range []*cobra.Command{renderCmd, processCmd} {
		cmd.Flags().StringVarP(&formatName, "format", "f", "", "Output format: plain|markdown|docx|html (default from config)")
		cmd.Flags().StringVarP(&summary, "summary", "s", "", "One-line document summary")
		cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")
	}

	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(processCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	normalized, err := eng.Normalize(engine.Input{Text: input, HTML: htmlInput})
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), normalized.Text)
	return err
}

// tableReport is one entry of the tables command output.
type tableReport struct {
	StartLine *int       `json:"startLine,omitempty"`
	EndLine   *int       `json:"endLine,omitempty"`
	HasHeader bool       `json:"hasHeader"`
	Rows      [][]string `json:"rows"`
	List      string     `json:"list"`
}

func runTables(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	cfg := eng.Config().Tables

	reports := []tableReport{}
	if htmlInput {
		found, err := tables.ParseHTMLTables(input)
		if err != nil {
			return err
		}
		for _, t := range found {
			header := tables.InferHeader(t.Rows, cfg)
			reports = append(reports, tableReport{
				HasHeader: header,
				Rows:      t.Rows,
				List:      tables.RowsToList(t.Rows, header, cfg),
			})
		}
	} else {
		for _, region := range eng.NormalizeText(input).Regions {
			start, end := region.StartLine+1, region.EndLine+1
			reports = append(reports, tableReport{
				StartLine: &start,
				EndLine:   &end,
				HasHeader: region.HasHeader,
				Rows:      region.Rows,
				List:      tables.RowsToList(region.Rows, region.HasHeader, cfg),
			})
		}
	}

	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format tables: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func runRender(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}
	format, err := parseFormatFlag(formatName)
	if err != nil {
		return err
	}
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	result, err := eng.Convert(input, format, summary)
	if err != nil {
		return err
	}
	logWarnings(eng.Config().Logger, result.Warnings)

	return writeOutput(cmd, outPath, result.Format, result.Data)
}

func runProcess(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}
	format, err := parseFormatFlag(formatName)
	if err != nil {
		return err
	}
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	out, err := eng.Process(cmd.Context(), engine.Input{Text: input, HTML: htmlInput}, engine.Identity, format, summary)
	if err != nil {
		return err
	}
	logWarnings(eng.Config().Logger, out.Result.Warnings)

	return writeOutput(cmd, outPath, out.Result.Format, out.Result.Data)
}
