package converter

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
	"github.com/rgonek/docrebuild/markup"
	"gopkg.in/yaml.v3"
)

const preambleDelimiter = "---\n"

// Preamble is the metadata block written ahead of light markup.
type Preamble struct {
	Description string `yaml:"description"`
}

// renderMarkdown writes the YAML preamble and then the source lines
// verbatim, so stripping the preamble yields the original markup.
func (s *state) renderMarkdown(doc markup.Document) ([]byte, error) {
	preamble, err := marshalPreamble(Preamble{Description: s.summary})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(preamble)
	buf.WriteString(doc.Markup())
	return buf.Bytes(), nil
}

func marshalPreamble(p Preamble) ([]byte, error) {
	body, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal preamble: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(preambleDelimiter)
	buf.Write(body)
	buf.WriteString(preambleDelimiter)
	return buf.Bytes(), nil
}

// ReadPreamble splits light markup into its preamble and body. Data with
// no preamble yields a zero Preamble and the data unchanged.
func ReadPreamble(data []byte) (Preamble, []byte, error) {
	var p Preamble
	body, err := frontmatter.Parse(bytes.NewReader(data), &p)
	if err != nil {
		return Preamble{}, nil, fmt.Errorf("failed to read preamble: %w", err)
	}
	return p, body, nil
}
