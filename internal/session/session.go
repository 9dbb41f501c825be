// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session holds the state of an interactive refinement: the
// original corpus, the constraints given up front, and the constraints
// merged from each refinement so far. Every refinement re-filters the
// original corpus with the merged set, so the result never depends on
// the order refinements arrived in.
package session

import (
	"github.com/pdiddy/bip39-filter/internal/constraint"
	"github.com/pdiddy/bip39-filter/internal/filter"
	"github.com/pdiddy/bip39-filter/pkg/types"
)

// Session tracks one interactive filter session. It is not safe for
// concurrent use.
type Session struct {
	index   *filter.Index
	initial constraint.Set
	current constraint.Set
	result  []types.Word
	steps   int
}

// New starts a session over corpus with the initial constraints.
func New(corpus []types.Word, initial constraint.Set) *Session {
	s := &Session{
		index:   filter.NewIndex(corpus),
		initial: initial,
	}
	s.apply(initial)
	return s
}

func (s *Session) apply(set constraint.Set) {
	s.current = set
	s.result = s.index.Apply(set)
}

// CorpusSize returns the number of words in the original corpus.
func (s *Session) CorpusSize() int {
	return s.index.Len()
}

// Constraints returns the merged constraint set in effect.
func (s *Session) Constraints() constraint.Set {
	return s.current
}

// Result returns the words matching the current constraints.
func (s *Session) Result() []types.Word {
	return s.result
}

// Steps returns how many refinements have been applied since the session
// started or was last reset.
func (s *Session) Steps() int {
	return s.steps
}

// Refine parses in, merges it into the current constraints, and re-filters
// the original corpus. Invalid input leaves the session unchanged and
// returns the *constraint.InvalidConstraintError. Blank input re-applies
// the current constraints.
func (s *Session) Refine(in constraint.Input) ([]types.Word, error) {
	update, err := constraint.Parse(in)
	if err != nil {
		return nil, err
	}
	s.apply(s.current.Merge(update))
	s.steps++
	return s.result, nil
}

// Replace discards the merged constraints and filters by in alone.
func (s *Session) Replace(in constraint.Input) ([]types.Word, error) {
	set, err := constraint.Parse(in)
	if err != nil {
		return nil, err
	}
	s.apply(set)
	s.steps++
	return s.result, nil
}

// Reset returns to the initial constraints.
func (s *Session) Reset() []types.Word {
	s.apply(s.initial)
	s.steps = 0
	return s.result
}
