package tables

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLTable is a table extracted from an HTML fragment.
type HTMLTable struct {
	Rows [][]string `json:"rows"`

	// HeaderCells is true when the first row uses <th> cells. It is
	// informational; header inference does not depend on it.
	HeaderCells bool `json:"headerCells,omitempty"`
}

// ParseHTMLTables returns every <table> in fragment in document order.
// Nested tables are reported as separate entries and do not contribute
// rows or text to their parent.
func ParseHTMLTables(fragment string) ([]HTMLTable, error) {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var tables []HTMLTable
	for _, node := range findTables(doc) {
		tables = append(tables, extractTable(node))
	}

	return tables, nil
}

// HTMLToList transcodes every table of tableMarkup. Lists of separate
// tables are separated by a blank line.
func HTMLToList(tableMarkup string, cfg Config) (string, error) {
	parsed, err := ParseHTMLTables(tableMarkup)
	if err != nil {
		return "", err
	}

	return joinLists(parsed, cfg), nil
}

func joinLists(parsed []HTMLTable, cfg Config) string {
	var lists []string
	for _, table := range parsed {
		if list := RowsToList(table.Rows, InferHeader(table.Rows, cfg), cfg); list != "" {
			lists = append(lists, list)
		}
	}
	return strings.Join(lists, "\n\n")
}

// RewriteHTML converts an HTML fragment to markdown text, replacing each
// top-level table with its list rendering (sentinel wrapped when
// cfg.Sentinels is set). Tables nested in it follow its list inside the
// same block. The remaining markup is converted with html-to-markdown.
// The returned tables are every table of the fragment in document order.
func RewriteHTML(fragment string, cfg Config) (string, []HTMLTable, error) {
	cfg = cfg.applyDefaults()

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var (
		parsed []HTMLTable
		tokens []string
		blocks []string
	)
	for i, node := range topLevelTables(doc) {
		var group []HTMLTable
		for _, t := range findTables(node) {
			group = append(group, extractTable(t))
		}
		parsed = append(parsed, group...)

		token := fmt.Sprintf("DOCREBUILDTABLE%04dX", i)
		tokens = append(tokens, token)
		blocks = append(blocks, strings.Join(wrapList(joinLists(group, cfg), cfg), "\n"))

		placeholder := &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
		placeholder.AppendChild(&html.Node{Type: html.TextNode, Data: token})
		node.Parent.InsertBefore(placeholder, node)
		node.Parent.RemoveChild(node)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", nil, fmt.Errorf("failed to render HTML: %w", err)
	}

	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	markdown, err := conv.ConvertString(buf.String())
	if err != nil {
		return "", nil, fmt.Errorf("failed to convert HTML to markdown: %w", err)
	}

	for i, token := range tokens {
		markdown = substituteBlock(markdown, token, blocks[i])
	}

	return markdown, parsed, nil
}

// substituteBlock replaces token with block. When the token sits inside a
// quote or list item, every following line of block gets the container's
// continuation prefix so the block stays inside it.
func substituteBlock(markdown, token, block string) string {
	idx := strings.Index(markdown, token)
	if idx < 0 {
		return markdown
	}

	lineStart := strings.LastIndexByte(markdown[:idx], '\n') + 1
	prefix := continuationPrefix(markdown[lineStart:idx])

	lines := strings.Split(block, "\n")
	for i := 1; i < len(lines); i++ {
		if lines[i] == "" {
			lines[i] = strings.TrimRight(prefix, " ")
		} else {
			lines[i] = prefix + lines[i]
		}
	}

	return markdown[:idx] + strings.Join(lines, "\n") + markdown[idx+len(token):]
}

// continuationPrefix keeps quote markers and turns list markers into
// indentation of the same width.
func continuationPrefix(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '>' {
			sb.WriteRune(r)
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// findTables returns all table elements, outer tables before the tables
// nested inside them.
func findTables(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Table {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func topLevelTables(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Table {
			out = append(out, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func extractTable(table *html.Node) HTMLTable {
	var out HTMLTable

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Table:
				// nested tables are extracted on their own
			case atom.Tr:
				row, headerOnly := extractRow(c)
				if len(out.Rows) == 0 && headerOnly {
					out.HeaderCells = true
				}
				out.Rows = append(out.Rows, row)
			default:
				walk(c)
			}
		}
	}
	walk(table)

	return out
}

// extractRow returns the cell texts of a <tr> and whether every cell is a <th>.
func extractRow(tr *html.Node) ([]string, bool) {
	var cells []string
	headerOnly := true

	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Td:
			headerOnly = false
			cells = append(cells, cellText(c))
		case atom.Th:
			cells = append(cells, cellText(c))
		}
	}

	return cells, headerOnly && len(cells) > 0
}

func cellText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			sb.WriteString(n.Data)
		case n.Type == html.ElementNode && n.DataAtom == atom.Table:
			return
		case n.Type == html.ElementNode && (n.DataAtom == atom.Br || n.DataAtom == atom.P || n.DataAtom == atom.Li || n.DataAtom == atom.Div):
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return collapseWhitespace(sb.String())
}
