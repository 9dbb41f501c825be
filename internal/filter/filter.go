// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package filter applies a constraint.Set to a corpus of words. Apply is a
// pure function: it never modifies its inputs, preserves corpus order, and
// reports "no matches" as an empty result rather than an error.
package filter

import (
	"slices"

	"github.com/pdiddy/bip39-filter/internal/constraint"
	"github.com/pdiddy/bip39-filter/pkg/types"
)

// Matches reports whether w satisfies every constraint in s. Checks run in
// order (length, positions, POS) and stop at the first failure.
func Matches(w types.Word, s constraint.Set) bool {
	n := w.Len()

	if exact, ok := s.Length(); ok && n != exact {
		return false
	}
	if min, max := s.LengthRange(); (min > 0 && n < min) || (max > 0 && n > max) {
		return false
	}

	for _, p := range s.Pins() {
		if p.Position > n {
			return false
		}
		if w.Text[p.Position-1] != p.Letter {
			return false
		}
	}

	if tags := s.Tags(); len(tags) > 0 {
		if !w.Tagged() || !slices.Contains(tags, w.Tag) {
			return false
		}
	}

	return true
}

// Apply returns the words of corpus that match s, in corpus order. The
// result is never nil, so callers can tell an empty result from a failed
// load.
func Apply(corpus []types.Word, s constraint.Set) []types.Word {
	out := make([]types.Word, 0)
	for _, w := range corpus {
		if Matches(w, s) {
			out = append(out, w)
		}
	}
	return out
}
