// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output renders a filter result for the terminal or for other
// programs.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bip39-filter/pkg/types"
)

// DefaultWidth is the line width used by the columns format.
const DefaultWidth = 80

// Result is a filter result with the constraints that produced it.
type Result struct {
	Constraints string       `json:"constraints" yaml:"constraints"`
	Count       int          `json:"count" yaml:"count"`
	Words       []types.Word `json:"words" yaml:"words"`
}

// NewResult wraps words with their constraint summary.
func NewResult(constraints string, words []types.Word) Result {
	if words == nil {
		words = []types.Word{}
	}
	return Result{Constraints: constraints, Count: len(words), Words: words}
}

// ParseFormat validates a format name. Empty selects FormatLines.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return types.FormatLines, nil
	case types.FormatLines, types.FormatColumns, types.FormatJSON, types.FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use lines, columns, json, or yaml", s)
	}
}

// Write renders r to w. The lines format prints one word per line and
// nothing at all for an empty result.
func Write(w io.Writer, r Result, format types.OutputFormat) error {
	switch format {
	case types.FormatLines, "":
		for _, word := range r.Words {
			if _, err := fmt.Fprintln(w, word.Text); err != nil {
				return err
			}
		}
		return nil
	case types.FormatColumns:
		_, err := io.WriteString(w, Columns(r.Words, DefaultWidth))
		return err
	case types.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case types.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// Columns joins words with spaces, wrapping before width, and ends with a
// newline. It returns "" for no words.
func Columns(words []types.Word, width int) string {
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		switch {
		case i == 0:
		case lineLen+1+word.Len() > width:
			b.WriteByte('\n')
			lineLen = 0
		default:
			b.WriteByte(' ')
			lineLen++
		}
		b.WriteString(word.Text)
		lineLen += word.Len()
	}
	b.WriteByte('\n')
	return b.String()
}
