package converter

import (
	"strings"

	"github.com/rgonek/docrebuild/markup"
)

// runs converts the spans of a block into styled runs. forceItalic is set
// for quotes, whose text is italic throughout.
func (s *state) runs(block markup.Block, line int, forceItalic bool) []wRun {
	spans := s.spans(block, line)
	runs := make([]wRun, 0, len(spans))
	for _, span := range spans {
		if span.Text == "" {
			continue
		}
		runs = append(runs, wRun{
			Props: runProps(span, forceItalic),
			Text:  runText(span.Text),
		})
	}
	return runs
}

// runProps maps span emphasis to run properties; nil means unstyled.
func runProps(span markup.Span, forceItalic bool) *wRunProps {
	bold := span.IsBold()
	italic := span.IsItalic() || forceItalic
	if !bold && !italic {
		return nil
	}

	props := &wRunProps{}
	if bold {
		props.Bold = &wEmpty{}
	}
	if italic {
		props.Italic = &wEmpty{}
	}
	return props
}

// runText keeps leading and trailing spaces, which Word trims unless
// xml:space is preserve.
func runText(text string) wText {
	t := wText{Value: text}
	if strings.TrimSpace(text) != text {
		t.Space = "preserve"
	}
	return t
}
