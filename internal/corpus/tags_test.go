// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/bip39-filter/pkg/types"
)

func TestParseLookupYAML(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Lookup
		errMsg string
	}{
		{
			name:  "canonical tags",
			input: "abandon: verb\nability: noun\nable: adjective\nabout: unknown\n",
			want: Lookup{
				"abandon": types.TagVerb,
				"ability": types.TagNoun,
				"able":    types.TagAdjective,
				"about":   types.TagUnknown,
			},
		},
		{
			name:  "aliases and case are normalized",
			input: "Zoo: N\nabsurd: adj\nabsorb: v\n",
			want: Lookup{
				"zoo":    types.TagNoun,
				"absurd": types.TagAdjective,
				"absorb": types.TagVerb,
			},
		},
		{
			name:  "json is accepted",
			input: `{"zebra": "noun"}`,
			want:  Lookup{"zebra": types.TagNoun},
		},
		{
			name:   "unrecognized tag",
			input:  "quickly: adverb\n",
			errMsg: `unrecognized tag "adverb"`,
		},
		{
			name:   "bad word",
			input:  "two words: noun\n",
			errMsg: "not a lowercase ASCII word",
		},
		{
			name:   "not a mapping",
			input:  "- abandon\n- ability\n",
			errMsg: "parsing tag lookup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLookupYAML([]byte(tt.input))
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadLookup(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("empty path leaves words untagged", func(t *testing.T) {
		l, err := LoadLookup(ctx, types.TagsConfig{})
		require.NoError(t, err)
		assert.Empty(t, l)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := writeFile(t, dir, "tags.yaml", "zoo: noun\n")
		l, err := LoadLookup(ctx, types.TagsConfig{Path: path})
		require.NoError(t, err)
		assert.Equal(t, Lookup{"zoo": types.TagNoun}, l)
	})

	t.Run("missing yaml file", func(t *testing.T) {
		_, err := LoadLookup(ctx, types.TagsConfig{Path: filepath.Join(dir, "nope.yaml")})
		assert.ErrorIs(t, err, ErrDataSource)
	})

	t.Run("missing database is not created", func(t *testing.T) {
		path := filepath.Join(dir, "nope.db")
		_, err := LoadLookup(ctx, types.TagsConfig{Path: path})
		assert.ErrorIs(t, err, ErrDataSource)
		assert.NoFileExists(t, path)
	})

	t.Run("database", func(t *testing.T) {
		path := filepath.Join(dir, "tags.db")
		store, err := OpenTagStore(path)
		require.NoError(t, err)
		_, err = store.Import(ctx, Lookup{"zebra": types.TagNoun, "able": types.TagAdjective}, false)
		require.NoError(t, err)
		require.NoError(t, store.Close())

		l, err := LoadLookup(ctx, types.TagsConfig{Path: path})
		require.NoError(t, err)
		assert.Equal(t, Lookup{"zebra": types.TagNoun, "able": types.TagAdjective}, l)
	})
}

func TestIsDatabasePath(t *testing.T) {
	assert.True(t, IsDatabasePath("tags.db"))
	assert.True(t, IsDatabasePath("/x/TAGS.SQLite"))
	assert.True(t, IsDatabasePath("tags.sqlite3"))
	assert.False(t, IsDatabasePath("tags.yaml"))
	assert.False(t, IsDatabasePath("tags.json"))
	assert.False(t, IsDatabasePath("tags"))
}

func TestAnnotate(t *testing.T) {
	words := []string{"zoo", "abandon", "able"}
	l := Lookup{"zoo": types.TagNoun, "able": types.TagUnknown, "zebra": types.TagNoun}

	got := Annotate(words, l)
	assert.Equal(t, []types.Word{
		{Text: "zoo", Tag: types.TagNoun},
		{Text: "abandon"},
		{Text: "able", Tag: types.TagUnknown},
	}, got)
	assert.Equal(t, 2, Coverage(words, l))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{
		Wordlist: types.WordlistConfig{
			Path:    writeFile(t, dir, "english.txt", "abandon\nability\nzoo\n"),
			Offline: true,
		},
		Tags: types.TagsConfig{Path: writeFile(t, dir, "tags.yaml", "quixotic: adjective\n")},
	}

	core, logs := observer.New(zapcore.DebugLevel)
	words, err := Load(context.Background(), cfg, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, []string{"abandon", "ability", "zoo"}, types.Texts(words))
	for _, w := range words {
		assert.False(t, w.Tagged())
	}
	assert.Equal(t, 1, logs.FilterMessage("tag lookup covers none of the wordlist").Len())

	cfg.Tags.Path = filepath.Join(dir, "absent.yaml")
	_, err = Load(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, ErrDataSource)
}
