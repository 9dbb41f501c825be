// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bip39-filter/internal/constraint"
	"github.com/pdiddy/bip39-filter/internal/filter"
	"github.com/pdiddy/bip39-filter/pkg/types"
)

func corpus() []types.Word {
	tags := map[string]types.POSTag{"agent": types.TagNoun, "arena": types.TagNoun, "alert": types.TagAdjective}
	var words []types.Word
	for _, w := range []string{"able", "about", "agent", "ahead", "alert", "area", "arena", "zebra", "zoo"} {
		words = append(words, types.Word{Text: w, Tag: tags[w]})
	}
	return words
}

func TestNewStartsWithInitialResult(t *testing.T) {
	s := New(corpus(), constraint.Set{})
	assert.Equal(t, 9, s.CorpusSize())
	assert.Equal(t, corpus(), s.Result())
	assert.True(t, s.Constraints().IsEmpty())

	initial, err := constraint.Parse(constraint.Input{Length: "5"})
	require.NoError(t, err)
	s = New(corpus(), initial)
	assert.Equal(t, []string{"about", "agent", "ahead", "alert", "arena", "zebra"}, types.Texts(s.Result()))
}

func TestRefineMergesAgainstOriginalCorpus(t *testing.T) {
	s := New(corpus(), constraint.Set{})

	got, err := s.Refine(constraint.Input{Positions: "1=a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"able", "about", "agent", "ahead", "alert", "area", "arena"}, types.Texts(got))

	got, err = s.Refine(constraint.Input{Length: "5"})
	require.NoError(t, err)
	assert.Equal(t, []string{"about", "agent", "ahead", "alert", "arena"}, types.Texts(got))

	// Loosening the length re-admits words an earlier result had dropped,
	// which a filter over the prior result could not do.
	got, err = s.Refine(constraint.Input{Length: "4-"})
	require.NoError(t, err)
	assert.Equal(t, []string{"able", "about", "agent", "ahead", "alert", "area", "arena"}, types.Texts(got))

	got, err = s.Refine(constraint.Input{POS: "noun"})
	require.NoError(t, err)
	assert.Equal(t, []string{"agent", "arena"}, types.Texts(got))
	assert.Equal(t, 4, s.Steps())
	assert.Equal(t, "length=4- positions=1=a pos=noun", s.Constraints().String())
}

func TestRefineMatchesOneShotApply(t *testing.T) {
	steps := []constraint.Input{
		{Positions: "1=a"},
		{Positions: "3=e"},
		{Length: "5"},
	}
	s := New(corpus(), constraint.Set{})
	for _, in := range steps {
		_, err := s.Refine(in)
		require.NoError(t, err)
	}

	all, err := constraint.Parse(constraint.Input{Length: "5", Positions: "1=a,3=e"})
	require.NoError(t, err)
	assert.Equal(t, filter.Apply(corpus(), all), s.Result())
	assert.Equal(t, []string{"agent", "ahead", "alert", "arena"}, types.Texts(s.Result()))
}

func TestRefineInvalidLeavesSessionUnchanged(t *testing.T) {
	s := New(corpus(), constraint.Set{})
	_, err := s.Refine(constraint.Input{Length: "5"})
	require.NoError(t, err)
	before := s.Result()

	_, err = s.Refine(constraint.Input{Positions: "0=a"})
	require.Error(t, err)
	assert.ErrorIs(t, err, constraint.ErrInvalidConstraint)

	assert.Equal(t, before, s.Result())
	assert.Equal(t, "length=5", s.Constraints().String())
	assert.Equal(t, 1, s.Steps())
}

func TestRefineEmptyInputIsIdempotent(t *testing.T) {
	s := New(corpus(), constraint.Set{})
	first, err := s.Refine(constraint.Input{Positions: "1=z"})
	require.NoError(t, err)
	second, err := s.Refine(constraint.Input{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReplaceAndReset(t *testing.T) {
	initial, err := constraint.Parse(constraint.Input{Positions: "1=z"})
	require.NoError(t, err)
	s := New(corpus(), initial)
	assert.Equal(t, []string{"zebra", "zoo"}, types.Texts(s.Result()))

	got, err := s.Replace(constraint.Input{Length: "4"})
	require.NoError(t, err)
	assert.Equal(t, []string{"able", "area"}, types.Texts(got))

	_, err = s.Replace(constraint.Input{POS: "pronoun"})
	assert.ErrorIs(t, err, constraint.ErrInvalidConstraint)
	assert.Equal(t, "length=4", s.Constraints().String())

	got = s.Reset()
	assert.Equal(t, []string{"zebra", "zoo"}, types.Texts(got))
	assert.Zero(t, s.Steps())
}

func TestNoMatchesIsEmptyNotNil(t *testing.T) {
	s := New(corpus(), constraint.Set{})
	got, err := s.Refine(constraint.Input{Positions: "1=q"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}
