package converter

import (
	"bytes"
	"fmt"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rgonek/docrebuild/markup"
	"github.com/yuin/goldmark"
)

// renderHTML renders the source markup with goldmark, sanitises the body
// and wraps it in a page whose description carries the summary.
func (s *state) renderHTML(doc markup.Document, md goldmark.Markdown, policy *bluemonday.Policy) ([]byte, error) {
	var body bytes.Buffer
	if err := md.Convert([]byte(doc.Markup()), &body); err != nil {
		return nil, fmt.Errorf("failed to render markup: %w", err)
	}
	safe := policy.SanitizeBytes(body.Bytes())

	title := s.config.HTMLTitle
	if title == "" {
		title = documentTitle(doc)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&page, "<meta name=\"description\" content=\"%s\">\n", html.EscapeString(s.summary))
	if title != "" {
		fmt.Fprintf(&page, "<title>%s</title>\n", html.EscapeString(title))
	}
	page.WriteString("</head>\n<body>\n")
	page.Write(safe)
	page.WriteString("</body>\n</html>\n")

	return page.Bytes(), nil
}

// documentTitle is the text of the first heading, if any.
func documentTitle(doc markup.Document) string {
	for _, block := range doc.Blocks {
		if block.Kind == markup.BlockHeading {
			return block.InlineText()
		}
	}
	return ""
}
