// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/pdiddy/bip39-filter/internal/constraint"
	"github.com/pdiddy/bip39-filter/internal/corpus"
	"github.com/pdiddy/bip39-filter/internal/filter"
	"github.com/pdiddy/bip39-filter/internal/output"
	"github.com/pdiddy/bip39-filter/internal/prompt"
	"github.com/pdiddy/bip39-filter/internal/session"
	"github.com/pdiddy/bip39-filter/internal/tui"
	"github.com/pdiddy/bip39-filter/pkg/types"
)

// filterRequest is one root command invocation.
type filterRequest struct {
	Input          constraint.Input
	NonInteractive bool
	In             io.Reader
	Out            io.Writer
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q: constraints are given with --length, --positions, and --pos", args[0])
	}

	length, _ := cmd.Flags().GetString("length")
	positions, _ := cmd.Flags().GetString("positions")
	pos, _ := cmd.Flags().GetString("pos")
	nonInteractive, _ := cmd.Flags().GetBool("non-interactive")

	return runFilter(cmd.Context(), cfg, filterRequest{
		Input:          constraint.Input{Length: length, Positions: positions, POS: pos},
		NonInteractive: nonInteractive,
		In:             cmd.InOrStdin(),
		Out:            cmd.OutOrStdout(),
	}, logger)
}

// runFilter validates the constraints, loads the corpus, and either prints
// one result or starts an interactive session. Invalid constraints are
// reported before any data is loaded.
func runFilter(ctx context.Context, c types.Config, req filterRequest, log *zap.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	set, err := constraint.Parse(req.Input)
	if err != nil {
		return err
	}

	words, err := corpus.Load(ctx, c, log)
	if err != nil {
		return err
	}
	log.Debug("filtering", zap.Stringer("constraints", set), zap.Int("corpus", len(words)))

	if req.NonInteractive {
		result := filter.Apply(words, set)
		return output.Write(req.Out, output.NewResult(set.String(), result), c.Format)
	}

	sess := session.New(words, set)
	if !useTUI(c.UI, req.In, req.Out) {
		return prompt.Run(ctx, prompt.Config{In: req.In, Out: req.Out, Log: log}, sess)
	}

	final, err := tui.Run(ctx, sess, req.In, req.Out)
	if err != nil {
		return err
	}
	result := final.Result()
	log.Info("session ended",
		zap.Stringer("constraints", final.Constraints()),
		zap.Int("matches", len(result)))
	return output.Write(req.Out, output.NewResult(final.Constraints().String(), result), c.Format)
}

// useTUI resolves the ui setting. auto picks the terminal UI only when both
// streams are terminals.
func useTUI(mode types.UIMode, in io.Reader, out io.Writer) bool {
	switch mode {
	case types.UITUI:
		return true
	case types.UIPlain:
		return false
	default:
		return isTerminal(in) && isTerminal(out)
	}
}

func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
