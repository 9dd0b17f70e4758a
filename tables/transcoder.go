package tables

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// SplitCells splits one table line into whitespace-collapsed cells.
// Tab separated lines split on tabs, pipe tables on pipes (outer borders
// dropped), everything else on wide space runs. Empty cells are kept in
// the row; the list rendering drops them.
func SplitCells(line string, cfg Config) []string {
	cfg = cfg.applyDefaults()

	var parts []string
	switch {
	case strings.ContainsRune(line, '\t'):
		parts = strings.Split(strings.Trim(line, "\r\n"), "\t")
	case strings.Count(line, "|") >= cfg.MinPipes:
		trimmed := strings.TrimSpace(line)
		trimmed = strings.TrimPrefix(trimmed, "|")
		trimmed = strings.TrimSuffix(trimmed, "|")
		parts = strings.Split(trimmed, "|")
	default:
		parts = splitSpaceRuns(line, cfg.MinSpaceRun)
	}

	cells := make([]string, len(parts))
	for i, part := range parts {
		cells[i] = collapseWhitespace(part)
	}

	return cells
}

// isAlignmentRow matches markdown separator rows such as |---|:--:|.
func isAlignmentRow(cells []string) bool {
	seen := false
	for _, cell := range cells {
		if cell == "" {
			continue
		}
		if strings.Trim(cell, "-: ") != "" || !strings.Contains(cell, "-") {
			return false
		}
		seen = true
	}
	return seen
}

// InferHeader decides whether rows[0] is a header row.
//
// With two or more rows, row 0 is a header when its average cell length is
// below HeaderLengthRatio of row 1's. Failing that, row 0 is a header when
// every cell is shorter than MaxHeaderCellLen and none ends in sentence
// punctuation.
func InferHeader(rows [][]string, cfg Config) bool {
	cfg = cfg.applyDefaults()

	if len(rows) == 0 || len(rows[0]) == 0 {
		return false
	}

	if len(rows) >= 2 {
		if averageCellLen(rows[0]) < cfg.HeaderLengthRatio*averageCellLen(rows[1]) {
			return true
		}
	}

	for _, cell := range rows[0] {
		if textLen(cell) >= cfg.MaxHeaderCellLen {
			return false
		}
		if strings.HasSuffix(cell, ".") || strings.HasSuffix(cell, "!") || strings.HasSuffix(cell, "?") {
			return false
		}
	}

	return true
}

func averageCellLen(row []string) float64 {
	if len(row) == 0 {
		return 0
	}

	total := 0
	for _, cell := range row {
		total += textLen(cell)
	}

	return float64(total) / float64(len(row))
}

// ToList transcodes a detected region, inferring its header row.
func ToList(region Region, cfg Config) string {
	return RowsToList(region.Rows, InferHeader(region.Rows, cfg), cfg)
}

// RowsToList renders rows as an enumerated list. With a header, the header
// becomes a bold title line and each data row a list of label: value pairs.
// Whitespace-only cells are dropped and rows left empty are skipped.
// Labels pair with values by position among the non-empty cells, so a
// row with a missing cell shifts its later values onto earlier labels.
func RowsToList(rows [][]string, hasHeader bool, cfg Config) string {
	cfg = cfg.applyDefaults()

	var (
		lines  []string
		header []string
		data   = rows
	)

	if hasHeader && len(rows) > 0 {
		header = nonEmptyCells(rows[0])
		data = rows[1:]
		lines = append(lines, "**Table: "+tableTitle(header, cfg)+"**")
	}

	n := 0
	for _, row := range data {
		parts := nonEmptyCells(row)
		if len(parts) == 0 {
			continue
		}
		if hasHeader {
			for i, value := range parts {
				parts[i] = columnLabel(header, i) + ": " + value
			}
		}

		n++
		lines = append(lines, strconv.Itoa(n)+". "+strings.Join(parts, " | "))
	}

	return strings.Join(lines, "\n")
}

func nonEmptyCells(row []string) []string {
	var out []string
	for _, cell := range row {
		if value := collapseWhitespace(cell); value != "" {
			out = append(out, value)
		}
	}
	return out
}

func tableTitle(header []string, cfg Config) string {
	title := strings.Join(header, ", ")
	if title == "" || textLen(title) > cfg.MaxTitleLen {
		return "Data Table"
	}

	return title
}

func columnLabel(header []string, col int) string {
	if col < len(header) {
		return header[col]
	}
	return "Column " + strconv.Itoa(col+1)
}

// Rewrite replaces every detected region of text with its list rendering,
// wrapped in sentinel lines when cfg.Sentinels is set. The returned regions
// carry the inferred HasHeader flag.
func Rewrite(text string, cfg Config) (string, []Region) {
	cfg = cfg.applyDefaults()

	lines := strings.Split(text, "\n")
	regions := Detect(lines, cfg)
	if len(regions) == 0 {
		return text, nil
	}

	out := make([]string, 0, len(lines))
	next := 0
	for i := range regions {
		region := &regions[i]
		region.HasHeader = InferHeader(region.Rows, cfg)

		out = append(out, lines[next:region.StartLine]...)
		out = append(out, wrapList(RowsToList(region.Rows, region.HasHeader, cfg), cfg)...)
		next = region.EndLine + 1
	}
	out = append(out, lines[next:]...)

	return strings.Join(out, "\n"), regions
}

func wrapList(list string, cfg Config) []string {
	var out []string
	if cfg.Sentinels {
		out = append(out, cfg.StartSentinel)
	}
	if list != "" {
		out = append(out, strings.Split(list, "\n")...)
	}
	if cfg.Sentinels {
		out = append(out, cfg.EndSentinel)
	}
	return out
}

// textLen counts characters in NFC form, so a letter typed with a
// combining accent counts once.
func textLen(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
