// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for bip39-filter: corpus
// words, part-of-speech tags, and configuration.
package types

import "strings"

// POSTag is a grammatical category attached to a corpus word by an external
// lookup. The zero value means the word is untagged.
type POSTag string

const (
	TagNone      POSTag = ""
	TagNoun      POSTag = "noun"
	TagVerb      POSTag = "verb"
	TagAdjective POSTag = "adjective"

	// TagUnknown marks a word the lookup covers but could not classify.
	// It never satisfies a POS constraint.
	TagUnknown POSTag = "unknown"
)

// FilterableTags lists the tags a POS constraint may name, in display order.
var FilterableTags = []POSTag{TagNoun, TagVerb, TagAdjective}

var tagAliases = map[string]POSTag{
	"noun":      TagNoun,
	"n":         TagNoun,
	"verb":      TagVerb,
	"v":         TagVerb,
	"adjective": TagAdjective,
	"adj":       TagAdjective,
	"a":         TagAdjective,
}

// ParseTag resolves a tag name or alias (case-insensitive) to a filterable
// tag. The boolean is false for anything else, including "unknown".
func ParseTag(s string) (POSTag, bool) {
	t, ok := tagAliases[strings.ToLower(strings.TrimSpace(s))]
	return t, ok
}

// Valid reports whether t may appear in a tag lookup.
func (t POSTag) Valid() bool {
	switch t {
	case TagNoun, TagVerb, TagAdjective, TagUnknown:
		return true
	}
	return false
}

// Word is a corpus member with its optional POS annotation.
type Word struct {
	// Text is the lowercase word as it appears in the wordlist.
	Text string `json:"word" yaml:"word"`

	// Tag is the part of speech from the lookup, or TagNone when the
	// lookup does not cover the word.
	Tag POSTag `json:"pos,omitempty" yaml:"pos,omitempty"`
}

// Len returns the word length in bytes. BIP39 English words are ASCII, so
// this is also the letter count.
func (w Word) Len() int {
	return len(w.Text)
}

// Tagged reports whether the lookup assigned the word a tag.
func (w Word) Tagged() bool {
	return w.Tag != TagNone
}

// Texts returns the text of each word, preserving order.
func Texts(words []Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Text
	}
	return out
}
