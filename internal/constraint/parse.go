// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package constraint

import (
	"regexp"
	"strconv"
	"strings"
)

// Input carries constraint text as typed on the command line or at a
// prompt. Blank fields are absent.
type Input struct {
	Length    string
	Positions string
	POS       string
}

// IsEmpty reports whether every field is blank.
func (in Input) IsEmpty() bool {
	return strings.TrimSpace(in.Length) == "" &&
		strings.TrimSpace(in.Positions) == "" &&
		strings.TrimSpace(in.POS) == ""
}

var (
	exactRe = regexp.MustCompile(`^\d+$`)
	rangeRe = regexp.MustCompile(`^(\d*)-(\d*)$`)
	pinRe   = regexp.MustCompile(`^(\d+)\s*=\s*([A-Za-z])$`)
)

// Parse validates raw input and builds a Set.
//
// Length accepts "N" (exact), "N-M", "-M" and "N-". Positions accepts
// comma-separated "position=letter" pairs; uppercase letters are folded
// to lowercase and a repeated position keeps its last letter. POS accepts
// comma-separated tag names or aliases.
func Parse(in Input) (Set, error) {
	var opts []Option

	if s := strings.TrimSpace(in.Length); s != "" {
		opt, err := parseLength(s)
		if err != nil {
			return Set{}, err
		}
		opts = append(opts, opt)
	}

	if s := strings.TrimSpace(in.Positions); s != "" {
		pins, err := parsePositions(s)
		if err != nil {
			return Set{}, err
		}
		opts = append(opts, pins...)
	}

	if s := strings.TrimSpace(in.POS); s != "" {
		opts = append(opts, WithPOS(splitList(s)...))
	}

	return New(opts...)
}

func parseLength(s string) (Option, error) {
	if exactRe.MatchString(s) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, invalid("length", s, "out of range")
		}
		return WithLength(n), nil
	}
	m := rangeRe.FindStringSubmatch(s)
	if m == nil {
		return nil, invalid("length", s, "use N, N-M, -M or N-")
	}
	var bounds [2]int
	for i, part := range m[1:] {
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, invalid("length", s, "out of range")
		}
		if n == 0 {
			return nil, invalid("length", s, "bounds must be positive integers")
		}
		bounds[i] = n
	}
	return WithLengthRange(bounds[0], bounds[1]), nil
}

func parsePositions(s string) ([]Option, error) {
	var opts []Option
	for _, part := range splitList(s) {
		m := pinRe.FindStringSubmatch(part)
		if m == nil {
			return nil, invalid("positions", part, "use position=letter, e.g. 1=a")
		}
		pos, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, invalid("positions", part, "position out of range")
		}
		opts = append(opts, WithPosition(pos, strings.ToLower(m[2])))
	}
	return opts, nil
}

// splitList splits a comma-separated list, trimming items and dropping
// empty ones.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseLine splits a one-line refinement such as
// "length=5 positions=1=a,3=e pos=noun" into an Input. Keys are length
// (alias len), positions (alias at) and pos (alias type). Fields may
// repeat; later ones replace earlier ones.
func ParseLine(line string) (Input, error) {
	var in Input
	for _, field := range strings.Fields(line) {
		key, value, ok := strings.Cut(field, "=")
		if !ok || value == "" {
			return Input{}, invalid("input", field, "use key=value with keys length, positions, pos")
		}
		switch strings.ToLower(key) {
		case "length", "len":
			in.Length = value
		case "positions", "at":
			in.Positions = value
		case "pos", "type":
			in.POS = value
		default:
			return Input{}, invalid("input", field, "unknown key "+strconv.Quote(key))
		}
	}
	return in, nil
}
