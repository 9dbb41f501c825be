// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bip39-filter/pkg/types"
)

func words(texts ...string) []types.Word {
	out := make([]types.Word, len(texts))
	for i, t := range texts {
		out[i] = types.Word{Text: t}
	}
	return out
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]types.OutputFormat{
		"":        types.FormatLines,
		"lines":   types.FormatLines,
		"COLUMNS": types.FormatColumns,
		" json ":  types.FormatJSON,
		"yaml":    types.FormatYAML,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("csv")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, NewResult("length=5", words("apple", "abode")), types.FormatLines))
	assert.Equal(t, "apple\nabode\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, NewResult("pos=noun", nil), types.FormatLines))
	assert.Empty(t, buf.String())
}

func TestWriteColumnsWraps(t *testing.T) {
	assert.Equal(t, "abandon ability\nable about\n", Columns(words("abandon", "ability", "able", "about"), 16))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, NewResult("", words("zoo")), types.FormatColumns))
	assert.Equal(t, "zoo\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, NewResult("", nil), types.FormatColumns))
	assert.Empty(t, buf.String())

	buf.Reset()
	long := make([]types.Word, 40)
	for i := range long {
		long[i] = types.Word{Text: "abstract"}
	}
	require.NoError(t, Write(&buf, NewResult("", long), types.FormatColumns))
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len(line), DefaultWidth)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewResult("length=3", []types.Word{{Text: "zoo", Tag: types.TagNoun}, {Text: "act"}})
	require.NoError(t, Write(&buf, r, types.FormatJSON))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "length=3", got["constraints"])
	assert.Equal(t, float64(2), got["count"])
	assert.Equal(t, []any{
		map[string]any{"word": "zoo", "pos": "noun"},
		map[string]any{"word": "act"},
	}, got["words"])
}

func TestWriteJSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, NewResult("pos=noun", nil), types.FormatJSON))
	assert.Contains(t, buf.String(), `"words": []`)
	assert.Contains(t, buf.String(), `"count": 0`)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	r := NewResult("positions=1=z", []types.Word{{Text: "zoo", Tag: types.TagNoun}})
	require.NoError(t, Write(&buf, r, types.FormatYAML))

	var got Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, r, got)
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, NewResult("", nil), types.OutputFormat("xml"))
	assert.Error(t, err)
}
