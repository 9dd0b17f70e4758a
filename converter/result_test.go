package converter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertReturnsWarnings(t *testing.T) {
	conv, err := New(Config{})
	require.NoError(t, err)

	result, err := conv.ConvertString("intro\nrun `make` with 5 * 3 workers", FormatPlain, "s")
	require.NoError(t, err)

	require.Len(t, result.Warnings, 2)
	assert.Equal(t, WarningDroppedFeature, result.Warnings[0].Type)
	assert.Equal(t, "paragraph", result.Warnings[0].BlockKind)
	assert.Equal(t, 2, result.Warnings[0].Line)
	assert.Equal(t, WarningUnbalancedMarker, result.Warnings[1].Type)
	assert.Equal(t, 2, result.Warnings[1].Line)
}

func TestMarkdownHasNoWarnings(t *testing.T) {
	conv, err := New(Config{})
	require.NoError(t, err)

	result, err := conv.ConvertString("run `make` with 5 * 3 workers", FormatMarkdown, "s")
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
}

func TestResultJSONSerialization(t *testing.T) {
	in := Result{
		Data:   []byte("hello\n"),
		Format: FormatPlain,
		Warnings: []Warning{
			{Type: WarningDroppedFeature, BlockKind: "paragraph", Line: 3, Message: "dropped"},
		},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Result
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
