// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"

	"go.uber.org/zap"

	"github.com/pdiddy/bip39-filter/pkg/types"
)

// Load reads the wordlist and the tag lookup described by cfg and returns
// the annotated corpus in wordlist order.
func Load(ctx context.Context, cfg types.Config, log *zap.Logger) ([]types.Word, error) {
	if log == nil {
		log = zap.NewNop()
	}

	words, err := NewFetcher(cfg.Wordlist, log).Load(ctx)
	if err != nil {
		return nil, err
	}

	lookup, err := LoadLookup(ctx, cfg.Tags)
	if err != nil {
		return nil, err
	}

	covered := Coverage(words, lookup)
	log.Debug("corpus loaded",
		zap.Int("words", len(words)),
		zap.Int("tagged", covered),
		zap.String("tags", cfg.Tags.Path))
	if cfg.Tags.Path != "" && covered == 0 {
		log.Warn("tag lookup covers none of the wordlist", zap.String("tags", cfg.Tags.Path))
	}

	return Annotate(words, lookup), nil
}
