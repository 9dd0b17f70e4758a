package converter

import (
	"strings"
	"testing"

	"github.com/rgonek/docrebuild/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMarkup = "# Title\n\nSome **bold** and *soft* text.\n- one\n- two\n1. first\n7. second\n> quoted `code`\n---\nlast"

func newTestConverter(t *testing.T, cfg Config) *Converter {
	t.Helper()
	conv, err := New(cfg)
	require.NoError(t, err)
	return conv
}

func TestConvertPlain(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result, err := conv.ConvertString(sampleMarkup, FormatPlain, "A summary")
	require.NoError(t, err)
	assert.Equal(t, FormatPlain, result.Format)

	want := "SUMMARY: A summary\n" +
		strings.Repeat("=", 80) + "\n\n" +
		"Title\n" +
		"\n" +
		"Some bold and soft text.\n" +
		"- one\n" +
		"- two\n" +
		"1. first\n" +
		"2. second\n" +
		"quoted code\n" +
		"\n" +
		"last\n"
	assert.Equal(t, want, string(result.Data))
}

func TestConvertPlainOrderedNumbering(t *testing.T) {
	src := "1. a\n\n5. b\npara\n9. c"

	tests := []struct {
		name  string
		style OrderedListStyle
		want  string
	}{
		{name: "restart", style: OrderedRestart, want: "1. a\n\n2. b\npara\n1. c\n"},
		{name: "continue", style: OrderedContinue, want: "1. a\n\n2. b\npara\n3. c\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := newTestConverter(t, Config{OrderedListStyle: tt.style, SeparatorWidth: 3})

			result, err := conv.ConvertString(src, FormatPlain, "")
			require.NoError(t, err)
			assert.Equal(t, "SUMMARY: \n===\n\n"+tt.want, string(result.Data))
		})
	}
}

func TestConvertPlainCustomHeader(t *testing.T) {
	conv := newTestConverter(t, Config{SummaryLabel: "ABSTRACT", SeparatorChar: '-', SeparatorWidth: 5, BulletMarker: '*'})

	result, err := conv.ConvertString("- item", FormatPlain, "short")
	require.NoError(t, err)
	assert.Equal(t, "ABSTRACT: short\n-----\n\n* item\n", string(result.Data))
}

func TestConvertMarkdownRoundTrip(t *testing.T) {
	conv := newTestConverter(t, Config{})
	sources := []string{
		"",
		sampleMarkup,
		sampleMarkup + "\n",
		"windows\r\nline endings\r\n",
		"  leading spaces\n\n\ntrailing blanks\n\n",
		"**unbalanced* markers and `ticks",
	}

	for _, src := range sources {
		result, err := conv.ConvertString(src, FormatMarkdown, "A summary")
		require.NoError(t, err)

		const preamble = "---\ndescription: A summary\n---\n"
		require.True(t, strings.HasPrefix(string(result.Data), preamble), "%q", result.Data)
		assert.Equal(t, src, strings.TrimPrefix(string(result.Data), preamble))
	}
}

func TestConvertMarkdownQuotesSummary(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result, err := conv.ConvertString("body", FormatMarkdown, "Q3: results # final")
	require.NoError(t, err)

	preamble, body, err := ReadPreamble(result.Data)
	require.NoError(t, err)
	assert.Equal(t, "Q3: results # final", preamble.Description)
	assert.Equal(t, "body", strings.TrimSpace(string(body)))
}

func TestReadPreamble(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result, err := conv.ConvertString(sampleMarkup, FormatMarkdown, "A summary")
	require.NoError(t, err)

	preamble, body, err := ReadPreamble(result.Data)
	require.NoError(t, err)
	assert.Equal(t, "A summary", preamble.Description)
	assert.Equal(t, strings.TrimSpace(sampleMarkup), strings.TrimSpace(string(body)))
}

func TestReadPreambleWithoutPreamble(t *testing.T) {
	preamble, body, err := ReadPreamble([]byte("# Just markup\n"))
	require.NoError(t, err)
	assert.Empty(t, preamble.Description)
	assert.Equal(t, "# Just markup", strings.TrimSpace(string(body)))
}

func TestConvertHTML(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result, err := conv.ConvertString("# Title\n\nSome **bold** text.\n\n<script>alert(1)</script>\n", FormatHTML, `Tom & "Jerry"`)
	require.NoError(t, err)
	page := string(result.Data)

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, `<meta name="description" content="Tom &amp; &#34;Jerry&#34;">`)
	assert.Contains(t, page, "<title>Title</title>")
	assert.Contains(t, page, "<h1>Title</h1>")
	assert.Contains(t, page, "<strong>bold</strong>")
	assert.NotContains(t, page, "<script>")
}

func TestConvertHTMLConfiguredTitle(t *testing.T) {
	conv := newTestConverter(t, Config{HTMLTitle: "Fixed"})

	result, err := conv.ConvertString("# Heading", FormatHTML, "")
	require.NoError(t, err)
	assert.Contains(t, string(result.Data), "<title>Fixed</title>")
}

func TestConvertUnsupportedFormat(t *testing.T) {
	conv := newTestConverter(t, Config{})

	_, err := conv.ConvertString("text", Format("pdf"), "s")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), `"pdf"`)
}

func TestConvertDefaultFormat(t *testing.T) {
	conv := newTestConverter(t, Config{Format: FormatPlain})

	result, err := conv.ConvertString("text", "", "s")
	require.NoError(t, err)
	assert.Equal(t, FormatPlain, result.Format)
	assert.Equal(t, FormatPlain, conv.Config().Format)
}

func TestConvertEmptyDocument(t *testing.T) {
	conv := newTestConverter(t, Config{})

	for _, format := range Formats() {
		result, err := conv.Convert(markup.Document{}, format, "")
		require.NoError(t, err, format)
		assert.NotEmpty(t, result.Data, format)
	}
}

func TestConverterIsSafeForConcurrentUse(t *testing.T) {
	conv := newTestConverter(t, Config{})
	doc := markup.Parse(sampleMarkup)

	want, err := conv.Convert(doc, FormatDocx, "s")
	require.NoError(t, err)

	const workers = 8
	results := make(chan []byte, workers)
	for i := 0; i < workers; i++ {
		go func() {
			result, err := conv.Convert(doc, FormatDocx, "s")
			if err != nil {
				results <- nil
				return
			}
			results <- result.Data
		}()
	}
	for i := 0; i < workers; i++ {
		assert.Equal(t, want.Data, <-results)
	}
}
