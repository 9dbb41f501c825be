// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus loads the data a filter run consumes: the BIP39 wordlist
// (from disk, fetching it into a cache when missing) and the word to
// part-of-speech lookup (YAML or SQLite). Every load failure is a
// *DataSourceError; nothing here is partial.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// WordCount is the size of every BIP39 wordlist.
const WordCount = 2048

// ReadWordlist parses one word per line from r. Lines are trimmed and
// blank lines skipped. Every word must be lowercase ASCII letters and
// appear once. When strict is set the list must hold exactly WordCount
// words.
func ReadWordlist(r io.Reader, strict bool) ([]string, error) {
	var words []string
	seen := make(map[string]int)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		if !isLowerASCII(w) {
			return nil, fmt.Errorf("line %d: %q is not a lowercase ASCII word", line, w)
		}
		if prev, dup := seen[w]; dup {
			return nil, fmt.Errorf("line %d: %q duplicates line %d", line, w, prev)
		}
		seen[w] = line
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading wordlist: %w", err)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("wordlist is empty")
	}
	if strict && len(words) != WordCount {
		return nil, fmt.Errorf("wordlist has %d words, want %d", len(words), WordCount)
	}
	return words, nil
}

// LoadWordlist reads and validates the wordlist file at path.
func LoadWordlist(path string, strict bool) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wordlistError(path, err)
	}
	defer f.Close()

	words, err := ReadWordlist(f, strict)
	if err != nil {
		return nil, wordlistError(path, err)
	}
	return words, nil
}

func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
