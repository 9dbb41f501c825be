// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt runs the line-oriented refinement loop used when the
// terminal UI is unavailable or disabled, e.g. when input is piped.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/bip39-filter/internal/constraint"
	"github.com/pdiddy/bip39-filter/internal/output"
	"github.com/pdiddy/bip39-filter/internal/session"
	"github.com/pdiddy/bip39-filter/pkg/types"
)

const (
	promptLength    = "Length (N or N-M or -M or N-, blank to keep) > "
	promptPositions = "Fixed positions (e.g. 1=a,3=e; blank to keep) > "
	promptPOS       = "Word types (comma: noun, verb, adjective; blank to keep) > "
	promptAgain     = "Filter again? [Y/n/r=reset/new] > "
)

// errEnd marks end of input; it ends the session without error.
var errEnd = errors.New("end of input")

// Config wires the loop to its streams.
type Config struct {
	In  io.Reader
	Out io.Writer

	// Format renders each round's matches. Empty selects columns.
	Format types.OutputFormat

	Log *zap.Logger
}

type runner struct {
	cfg     Config
	scanner *bufio.Scanner
	sess    *session.Session

	// fresh makes the next round replace the constraints instead of
	// refining them.
	fresh bool
}

// Run drives sess from cfg.In until the user declines another round, input
// ends, or ctx is cancelled. Invalid constraints are reported on cfg.Out
// and the round is asked again; they do not end the session.
func Run(ctx context.Context, cfg Config, sess *session.Session) error {
	if cfg.Format == "" {
		cfg.Format = types.FormatColumns
	}
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}
	r := &runner{cfg: cfg, scanner: bufio.NewScanner(cfg.In), sess: sess}

	fmt.Fprintf(cfg.Out, "Loaded %d BIP39 words.\n", sess.CorpusSize())
	if !sess.Constraints().IsEmpty() {
		if err := r.show(); err != nil {
			return err
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := r.round()
		if errors.Is(err, errEnd) {
			fmt.Fprintln(cfg.Out)
			return nil
		}
		if err != nil {
			return err
		}

		answer, err := r.ask(promptAgain)
		if errors.Is(err, errEnd) {
			fmt.Fprintln(cfg.Out)
			return nil
		}
		if err != nil {
			return err
		}
		switch strings.ToLower(answer) {
		case "n", "no", "q", "quit":
			return nil
		case "r", "reset":
			sess.Reset()
			fmt.Fprintf(cfg.Out, "Reset to: %s\n", sess.Constraints())
		case "new":
			r.fresh = true
		}
	}
}

// round reads one refinement and prints the new result.
func (r *runner) round() error {
	var in constraint.Input
	var err error
	if in.Length, err = r.ask(promptLength); err != nil {
		return err
	}
	if in.Positions, err = r.ask(promptPositions); err != nil {
		return err
	}
	if in.POS, err = r.ask(promptPOS); err != nil {
		return err
	}

	apply := r.sess.Refine
	if r.fresh {
		apply = r.sess.Replace
	}
	if _, err := apply(in); err != nil {
		var ice *constraint.InvalidConstraintError
		if errors.As(err, &ice) {
			fmt.Fprintf(r.cfg.Out, "Input error: %v\n", err)
			return nil
		}
		return err
	}
	r.fresh = false
	r.cfg.Log.Debug("refined",
		zap.Int("step", r.sess.Steps()),
		zap.Stringer("constraints", r.sess.Constraints()),
		zap.Int("matches", len(r.sess.Result())))
	return r.show()
}

func (r *runner) show() error {
	result := r.sess.Result()
	fmt.Fprintf(r.cfg.Out, "Constraints: %s\n", r.sess.Constraints())
	fmt.Fprintf(r.cfg.Out, "Matches: %d\n", len(result))
	return output.Write(r.cfg.Out, output.NewResult(r.sess.Constraints().String(), result), r.cfg.Format)
}

func (r *runner) ask(prompt string) (string, error) {
	fmt.Fprint(r.cfg.Out, prompt)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", errEnd
	}
	return strings.TrimSpace(r.scanner.Text()), nil
}
