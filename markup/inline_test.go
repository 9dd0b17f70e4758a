package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Span
	}{
		{
			name: "precedence",
			text: "***a*** and *b* and **c**",
			want: []Span{
				{Style: SpanBoldItalic, Text: "a"},
				{Style: SpanPlain, Text: " and "},
				{Style: SpanItalic, Text: "b"},
				{Style: SpanPlain, Text: " and "},
				{Style: SpanBold, Text: "c"},
			},
		},
		{
			name: "plain only",
			text: "nothing special",
			want: []Span{{Style: SpanPlain, Text: "nothing special"}},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
		{
			name: "non greedy",
			text: "**x** mid **y**",
			want: []Span{
				{Style: SpanBold, Text: "x"},
				{Style: SpanPlain, Text: " mid "},
				{Style: SpanBold, Text: "y"},
			},
		},
		{
			name: "unclosed marker stays plain",
			text: "5 * 3 = 15",
			want: []Span{{Style: SpanPlain, Text: "5 * 3 = 15"}},
		},
		{
			name: "empty emphasis is not a match",
			text: "** x",
			want: []Span{{Style: SpanPlain, Text: "** x"}},
		},
		{
			name: "bold falls back when triple is unclosed",
			text: "***a** b",
			want: []Span{
				{Style: SpanBold, Text: "*a"},
				{Style: SpanPlain, Text: " b"},
			},
		},
		{
			name: "code span unwrapped",
			text: "run `go test` now",
			want: []Span{{Style: SpanPlain, Text: "run go test now"}},
		},
		{
			name: "code inside bold",
			text: "**use `x`**",
			want: []Span{{Style: SpanBold, Text: "use x"}},
		},
		{
			name: "emphasis does not cross lines",
			text: "*a\nb*",
			want: []Span{{Style: SpanPlain, Text: "*a\nb*"}},
		},
		{
			name: "unicode content",
			text: "*héllo* wörld",
			want: []Span{
				{Style: SpanItalic, Text: "héllo"},
				{Style: SpanPlain, Text: " wörld"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text))
		})
	}
}

func TestStripCode(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "no code", want: "no code"},
		{text: "`a` and `b`", want: "a and b"},
		{text: "lone ` tick", want: "lone ` tick"},
		{text: "empty `` pair", want: "empty `` pair"},
		{text: "``x`", want: "`x"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StripCode(tt.text), tt.text)
	}
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "a and b and c", PlainText("***a*** and *b* and **c**"))
	assert.Equal(t, "call f()", PlainText("call `f()`"))
}

func TestHasCode(t *testing.T) {
	assert.True(t, HasCode("use `x`"))
	assert.False(t, HasCode("use x"))
	assert.False(t, HasCode("lone ` tick"))
}

func TestSpanStyleFlags(t *testing.T) {
	assert.True(t, Span{Style: SpanBoldItalic}.IsBold())
	assert.True(t, Span{Style: SpanBoldItalic}.IsItalic())
	assert.True(t, Span{Style: SpanBold}.IsBold())
	assert.False(t, Span{Style: SpanBold}.IsItalic())
	assert.False(t, Span{Style: SpanPlain}.IsBold())
}
