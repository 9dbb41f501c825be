// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompt

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bip39-filter/internal/constraint"
	"github.com/pdiddy/bip39-filter/internal/session"
	"github.com/pdiddy/bip39-filter/pkg/types"
)

func testSession(t *testing.T, initial constraint.Input) *session.Session {
	t.Helper()
	set, err := constraint.Parse(initial)
	require.NoError(t, err)
	var corpus []types.Word
	for _, w := range []string{"able", "about", "agent", "zoo"} {
		corpus = append(corpus, types.Word{Text: w})
	}
	return session.New(corpus, set)
}

func run(t *testing.T, sess *session.Session, script string) string {
	t.Helper()
	var out bytes.Buffer
	err := Run(context.Background(), Config{In: strings.NewReader(script), Out: &out}, sess)
	require.NoError(t, err)
	return out.String()
}

func TestRunSingleRound(t *testing.T) {
	sess := testSession(t, constraint.Input{})
	out := run(t, sess, "5\n1=a\n\nn\n")

	assert.True(t, strings.HasPrefix(out, "Loaded 4 BIP39 words.\n"+promptLength), out)
	assert.Contains(t, out, "Constraints: length=5 positions=1=a\n")
	assert.Contains(t, out, "Matches: 2\nabout agent\n")
	assert.True(t, strings.HasSuffix(out, promptAgain), out)
}

func TestRunInputErrorAsksAgain(t *testing.T) {
	sess := testSession(t, constraint.Input{})
	out := run(t, sess, "0\n\n\n\n5\n\n\nn\n")

	assert.Contains(t, out, `Input error: invalid length "0": must be a positive integer`)
	assert.Contains(t, out, "Matches: 2\nabout agent\n")
	assert.Equal(t, 2, strings.Count(out, promptLength))
}

func TestRunRoundsMerge(t *testing.T) {
	sess := testSession(t, constraint.Input{})
	out := run(t, sess, "5\n\n\ny\n\n1=g\n\nn\n")

	assert.Contains(t, out, "Constraints: length=5\n")
	assert.Contains(t, out, "Constraints: length=5 positions=1=g\n")
	assert.Contains(t, out, "Matches: 0\n")
}

func TestRunEndOfInputEndsSession(t *testing.T) {
	sess := testSession(t, constraint.Input{})
	out := run(t, sess, "5\n")
	assert.True(t, strings.HasSuffix(out, promptPositions+"\n"), out)
	assert.NotContains(t, out, "Matches")
}

func TestRunInitialConstraintsAndReset(t *testing.T) {
	sess := testSession(t, constraint.Input{Positions: "1=z"})
	out := run(t, sess, "4\n\n\nr\n")

	assert.Contains(t, out, "Constraints: positions=1=z\nMatches: 1\nzoo\n")
	assert.Contains(t, out, "Constraints: length=4 positions=1=z\nMatches: 0\n")
	assert.Contains(t, out, "Reset to: positions=1=z\n")
	assert.Equal(t, "positions=1=z", sess.Constraints().String())
}

func TestRunLinesFormat(t *testing.T) {
	sess := testSession(t, constraint.Input{})
	var out bytes.Buffer
	err := Run(context.Background(), Config{
		In:     strings.NewReader("-4\n\n\nn\n"),
		Out:    &out,
		Format: types.FormatLines,
	}, sess)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Matches: 2\nable\nzoo\n")
}

func TestRunCancelled(t *testing.T) {
	sess := testSession(t, constraint.Input{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := Run(ctx, Config{In: strings.NewReader("5\n"), Out: &out}, sess)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunNewStartsFreshQuery(t *testing.T) {
	sess := testSession(t, constraint.Input{})
	out := run(t, sess, "5\n1=a\n\nnew\n\n2=o\n\nn\n")

	assert.Contains(t, out, "Constraints: length=5 positions=1=a\nMatches: 2\n")
	assert.Contains(t, out, "Constraints: positions=2=o\nMatches: 1\nzoo\n")
	assert.Equal(t, "positions=2=o", sess.Constraints().String())
}
