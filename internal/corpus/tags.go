// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bip39-filter/pkg/types"
)

// Lookup maps a word to its part-of-speech tag. Words absent from the map
// are untagged.
type Lookup map[string]types.POSTag

// Words returns the words covered by the lookup, sorted.
func (l Lookup) Words() []string {
	words := make([]string, 0, len(l))
	for w := range l {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Validate checks that every entry names a lowercase word and a known tag.
func (l Lookup) Validate() error {
	for _, w := range l.Words() {
		if w == "" || !isLowerASCII(w) {
			return fmt.Errorf("word %q is not a lowercase ASCII word", w)
		}
		if tag := l[w]; !tag.Valid() {
			return fmt.Errorf("word %q has unrecognized tag %q", w, tag)
		}
	}
	return nil
}

// ParseLookupYAML decodes a YAML (or JSON) mapping of word to tag. Tag
// aliases such as "n" or "adj" are normalized.
func ParseLookupYAML(data []byte) (Lookup, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing tag lookup: %w", err)
	}

	l := make(Lookup, len(raw))
	for w, name := range raw {
		tag, ok := types.ParseTag(name)
		if !ok {
			tag = types.POSTag(strings.ToLower(strings.TrimSpace(name)))
		}
		l[strings.ToLower(strings.TrimSpace(w))] = tag
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// LoadLookupYAML reads a YAML or JSON tag lookup from path.
func LoadLookupYAML(path string) (Lookup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tagsError(path, err)
	}
	l, err := ParseLookupYAML(data)
	if err != nil {
		return nil, tagsError(path, err)
	}
	return l, nil
}

// IsDatabasePath reports whether path names a SQLite tag store rather than
// a YAML file.
func IsDatabasePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// LoadLookup reads the tag lookup configured by cfg. An empty path yields
// an empty lookup, leaving every word untagged.
func LoadLookup(ctx context.Context, cfg types.TagsConfig) (Lookup, error) {
	if cfg.Path == "" {
		return Lookup{}, nil
	}
	if !IsDatabasePath(cfg.Path) {
		return LoadLookupYAML(cfg.Path)
	}

	if _, err := os.Stat(cfg.Path); err != nil {
		return nil, tagsError(cfg.Path, err)
	}
	store, err := OpenTagStore(cfg.Path)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.Lookup(ctx)
}

// Annotate pairs each word with its tag from l, preserving order.
func Annotate(words []string, l Lookup) []types.Word {
	out := make([]types.Word, len(words))
	for i, w := range words {
		out[i] = types.Word{Text: w, Tag: l[w]}
	}
	return out
}

// Coverage counts how many of words the lookup tags.
func Coverage(words []string, l Lookup) int {
	n := 0
	for _, w := range words {
		if _, ok := l[w]; ok {
			n++
		}
	}
	return n
}
