package tables

import (
	"strings"
)

// Region is a contiguous run of tabular lines.
type Region struct {
	Rows      [][]string `json:"rows"`
	HasHeader bool       `json:"hasHeader"`
	StartLine int        `json:"startLine"`
	EndLine   int        `json:"endLine"`
	Lines     []string   `json:"lines,omitempty"`
}

// Detect returns the tabular regions of lines in source order.
// HasHeader is left unset; the transcoder infers it.
func Detect(lines []string, cfg Config) []Region {
	cfg = cfg.applyDefaults()

	var (
		regions []Region
		inTable bool
		start   int
		last    int
		count   int
	)

	closeRegion := func() {
		if inTable && count >= cfg.MinRows {
			regions = append(regions, newRegion(lines, start, last, cfg))
		}
		inTable = false
		count = 0
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		switch {
		case IsTabular(line, cfg):
			if !inTable {
				inTable = true
				start = i
			}
			last = i
			count++
		case strings.TrimSpace(line) == "":
			// Blank lines may be spacing between rows; the region stays open.
		default:
			closeRegion()
		}
	}
	closeRegion()

	return regions
}

func newRegion(lines []string, start, end int, cfg Config) Region {
	region := Region{
		StartLine: start,
		EndLine:   end,
		Lines:     append([]string(nil), lines[start:end+1]...),
	}

	for _, line := range region.Lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := SplitCells(line, cfg)
		if isAlignmentRow(cells) {
			continue
		}
		region.Rows = append(region.Rows, cells)
	}

	return region
}

// IsTabular reports whether a single line looks like a table row.
func IsTabular(line string, cfg Config) bool {
	cfg = cfg.applyDefaults()

	if isListItem(line) {
		return false
	}
	if strings.Count(line, "\t") >= cfg.MinTabs {
		return true
	}
	if strings.Count(line, "|") >= cfg.MinPipes {
		return true
	}

	return len(splitSpaceRuns(line, cfg.MinSpaceRun)) >= cfg.MinSpaceFields
}

// isListItem matches the items RowsToList emits: "12. " followed by
// whitespace-collapsed text, with no tabs and no runs of spaces. Numbered
// rows that are aligned with tabs or space runs stay tabular.
func isListItem(line string) bool {
	if strings.ContainsRune(line, '\t') {
		return false
	}

	s := strings.TrimLeft(line, " ")
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i+2 >= len(s) || s[i] != '.' || s[i+1] != ' ' {
		return false
	}

	rest := s[i+2:]
	return rest[0] != ' ' && !strings.Contains(rest, "  ")
}

// splitSpaceRuns splits on runs of at least minRun spaces and returns the
// non-empty fields.
func splitSpaceRuns(line string, minRun int) []string {
	var (
		fields    []string
		fieldFrom int
	)

	for i := 0; i < len(line); {
		if line[i] != ' ' {
			i++
			continue
		}

		j := i
		for j < len(line) && line[j] == ' ' {
			j++
		}
		if j-i >= minRun {
			if field := strings.TrimSpace(line[fieldFrom:i]); field != "" {
				fields = append(fields, field)
			}
			fieldFrom = j
		}
		i = j
	}

	if field := strings.TrimSpace(line[fieldFrom:]); field != "" {
		fields = append(fields, field)
	}

	return fields
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
