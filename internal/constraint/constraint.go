// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package constraint describes which BIP39 words a filter run accepts:
// an exact length or length range, letters pinned at 1-indexed positions,
// and a set of part-of-speech tags. A Set is immutable once built; every
// accessor returns a copy.
package constraint

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pdiddy/bip39-filter/pkg/types"
)

// Pin requires Letter at the 1-indexed Position of a word.
type Pin struct {
	Position int
	Letter   byte
}

func (p Pin) String() string {
	return fmt.Sprintf("%d=%c", p.Position, p.Letter)
}

// Set is a validated, immutable constraint set. The zero value has no
// constraints and matches every word.
type Set struct {
	exact    int
	min, max int
	pins     []Pin
	tags     []types.POSTag
}

// Option configures a Set under construction. Options validate their
// arguments and report failures as *InvalidConstraintError.
type Option func(*builder) error

type builder struct {
	exact    int
	min, max int
	pins     map[int]byte
	tags     map[types.POSTag]bool
}

// New builds a Set from options. Options apply in order; a later length
// option replaces an earlier one, and a later pin at the same position
// replaces the earlier letter.
func New(opts ...Option) (Set, error) {
	b := &builder{
		pins: make(map[int]byte),
		tags: make(map[types.POSTag]bool),
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return Set{}, err
		}
	}
	return b.build(), nil
}

// WithLength requires the word length to equal n.
func WithLength(n int) Option {
	return func(b *builder) error {
		if n < 1 {
			return invalid("length", strconv.Itoa(n), "must be a positive integer")
		}
		b.exact, b.min, b.max = n, 0, 0
		return nil
	}
}

// WithLengthRange requires min <= length <= max. Zero leaves that bound
// open; at least one bound must be set.
func WithLengthRange(min, max int) Option {
	return func(b *builder) error {
		value := formatRange(min, max)
		switch {
		case min < 0 || max < 0:
			return invalid("length", value, "bounds must be positive integers")
		case min == 0 && max == 0:
			return invalid("length", value, "range needs at least one bound")
		case max > 0 && min > max:
			return invalid("length", value, "minimum exceeds maximum")
		}
		b.exact, b.min, b.max = 0, min, max
		return nil
	}
}

// WithPosition pins letter at the 1-indexed position. The letter must be a
// single lowercase ASCII letter.
func WithPosition(position int, letter string) Option {
	return func(b *builder) error {
		value := fmt.Sprintf("%d=%s", position, letter)
		if position < 1 {
			return invalid("positions", value, "position must be >= 1")
		}
		if len(letter) != 1 || letter[0] < 'a' || letter[0] > 'z' {
			return invalid("positions", value, "letter must be exactly one lowercase letter")
		}
		b.pins[position] = letter[0]
		return nil
	}
}

// WithPOS accepts words tagged with any of the named tags. Names may be
// canonical (noun, verb, adjective) or aliases (n, v, adj, a).
func WithPOS(names ...string) Option {
	return func(b *builder) error {
		for _, name := range names {
			tag, ok := types.ParseTag(name)
			if !ok {
				return invalid("pos", name, "must be one of noun, verb, adjective")
			}
			b.tags[tag] = true
		}
		return nil
	}
}

func (b *builder) build() Set {
	s := Set{exact: b.exact, min: b.min, max: b.max}
	for pos, letter := range b.pins {
		s.pins = append(s.pins, Pin{Position: pos, Letter: letter})
	}
	sortPins(s.pins)
	for _, t := range types.FilterableTags {
		if b.tags[t] {
			s.tags = append(s.tags, t)
		}
	}
	return s
}

func sortPins(pins []Pin) {
	slices.SortFunc(pins, func(a, b Pin) int { return a.Position - b.Position })
}

// Length returns the exact length constraint, if any.
func (s Set) Length() (int, bool) {
	return s.exact, s.exact > 0
}

// LengthRange returns the range bounds; zero means unbounded on that side.
// Both are zero when no range is set.
func (s Set) LengthRange() (min, max int) {
	return s.min, s.max
}

// HasLength reports whether any length constraint (exact or range) is set.
func (s Set) HasLength() bool {
	return s.exact > 0 || s.min > 0 || s.max > 0
}

// Pins returns the position constraints in ascending position order.
func (s Set) Pins() []Pin {
	return slices.Clone(s.pins)
}

// Positions returns the position constraints as a map of 1-indexed
// position to letter.
func (s Set) Positions() map[int]string {
	m := make(map[int]string, len(s.pins))
	for _, p := range s.pins {
		m[p.Position] = string(p.Letter)
	}
	return m
}

// Tags returns the accepted POS tags; empty means no POS constraint.
func (s Set) Tags() []types.POSTag {
	return slices.Clone(s.tags)
}

// IsEmpty reports whether s has no constraints (the identity filter).
func (s Set) IsEmpty() bool {
	return !s.HasLength() && len(s.pins) == 0 && len(s.tags) == 0
}

// Merge returns a new Set combining s with a refinement. Categories set in
// update replace those in s, except positions, which are overlaid per key.
// Neither s nor update is modified.
func (s Set) Merge(update Set) Set {
	out := Set{
		exact: s.exact, min: s.min, max: s.max,
		pins: slices.Clone(s.pins),
		tags: slices.Clone(s.tags),
	}
	if update.HasLength() {
		out.exact, out.min, out.max = update.exact, update.min, update.max
	}
	for _, p := range update.pins {
		i := slices.IndexFunc(out.pins, func(q Pin) bool { return q.Position == p.Position })
		if i >= 0 {
			out.pins[i] = p
		} else {
			out.pins = append(out.pins, p)
		}
	}
	sortPins(out.pins)
	if len(update.tags) > 0 {
		out.tags = slices.Clone(update.tags)
	}
	return out
}

// String renders s in the refinement syntax accepted by ParseLine, e.g.
// "length=5 positions=1=a,3=e pos=noun". The empty set renders as "any".
func (s Set) String() string {
	var parts []string
	switch {
	case s.exact > 0:
		parts = append(parts, "length="+strconv.Itoa(s.exact))
	case s.min > 0 || s.max > 0:
		parts = append(parts, "length="+formatRange(s.min, s.max))
	}
	if len(s.pins) > 0 {
		pins := make([]string, len(s.pins))
		for i, p := range s.pins {
			pins[i] = p.String()
		}
		parts = append(parts, "positions="+strings.Join(pins, ","))
	}
	if len(s.tags) > 0 {
		tags := make([]string, len(s.tags))
		for i, t := range s.tags {
			tags[i] = string(t)
		}
		parts = append(parts, "pos="+strings.Join(tags, ","))
	}
	if len(parts) == 0 {
		return "any"
	}
	return strings.Join(parts, " ")
}

func formatRange(min, max int) string {
	var lo, hi string
	if min > 0 {
		lo = strconv.Itoa(min)
	}
	if max > 0 {
		hi = strconv.Itoa(max)
	}
	return lo + "-" + hi
}
