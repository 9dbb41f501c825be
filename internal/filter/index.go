// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filter

import (
	"slices"

	"github.com/pdiddy/bip39-filter/internal/constraint"
	"github.com/pdiddy/bip39-filter/pkg/types"
)

// Index buckets corpus positions by word length so length-constrained
// queries skip words that cannot match. Index.Apply returns exactly what
// Apply returns for the same corpus and set.
type Index struct {
	corpus  []types.Word
	buckets map[int][]int // word length → corpus indices, ascending
	longest int
}

// NewIndex builds a length index over corpus. The corpus must not be
// modified while the index is in use.
func NewIndex(corpus []types.Word) *Index {
	idx := &Index{
		corpus:  corpus,
		buckets: make(map[int][]int),
	}
	for i, w := range corpus {
		n := w.Len()
		idx.buckets[n] = append(idx.buckets[n], i)
		idx.longest = max(idx.longest, n)
	}
	return idx
}

// Len returns the number of indexed words.
func (idx *Index) Len() int {
	return len(idx.corpus)
}

// Apply filters the indexed corpus by s.
func (idx *Index) Apply(s constraint.Set) []types.Word {
	if !s.HasLength() {
		return Apply(idx.corpus, s)
	}

	var candidates []int
	if exact, ok := s.Length(); ok {
		candidates = idx.buckets[exact]
	} else {
		lo, hi := s.LengthRange()
		if hi == 0 || hi > idx.longest {
			hi = idx.longest
		}
		for n := max(lo, 1); n <= hi; n++ {
			candidates = append(candidates, idx.buckets[n]...)
		}
		slices.Sort(candidates)
	}

	out := make([]types.Word, 0, len(candidates))
	for _, i := range candidates {
		if w := idx.corpus[i]; Matches(w, s) {
			out = append(out, w)
		}
	}
	return out
}
