// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/gofrs/flock"
	"go.uber.org/zap"

	"github.com/pdiddy/bip39-filter/internal/httputil"
	"github.com/pdiddy/bip39-filter/pkg/types"
)

// DefaultURL is the canonical BIP39 English wordlist.
const DefaultURL = "https://raw.githubusercontent.com/bitcoin/bips/master/bip-0039/english.txt"

const (
	cacheRel      = "bip39-filter/english.txt"
	lockRetryWait = 100 * time.Millisecond
)

// CachePath returns the default wordlist location under the XDG cache
// directory, creating parent directories as needed.
func CachePath() (string, error) {
	return xdg.CacheFile(cacheRel)
}

// Fetcher downloads the wordlist into a local file.
type Fetcher struct {
	Client *http.Client
	Config types.WordlistConfig
	Log    *zap.Logger
}

// NewFetcher returns a Fetcher whose HTTP client uses cfg.Timeout.
func NewFetcher(cfg types.WordlistConfig, log *zap.Logger) *Fetcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Fetcher{
		Client: &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
		Log:    log,
	}
}

// Path returns the configured wordlist path, or the cache path when none is
// configured.
func (f *Fetcher) Path() (string, error) {
	if f.Config.Path != "" {
		return f.Config.Path, nil
	}
	p, err := CachePath()
	if err != nil {
		return "", wordlistError(cacheRel, fmt.Errorf("resolving cache path: %w", err))
	}
	return p, nil
}

// Load returns the validated wordlist, fetching it first when the file is
// missing and fetching is allowed.
func (f *Fetcher) Load(ctx context.Context) ([]string, error) {
	path, err := f.Path()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if f.Config.Offline {
			return nil, wordlistError(path, fmt.Errorf("file not found and fetching is disabled"))
		}
		if err := f.Fetch(ctx, path, false); err != nil {
			return nil, err
		}
	}

	return LoadWordlist(path, f.Config.Strict)
}

// Fetch downloads the wordlist to path. It holds a file lock beside path
// for the duration, so concurrent runs download at most once. Unless force
// is set, a file that appeared while waiting for the lock is kept. The
// download is validated before it replaces path.
func (f *Fetcher) Fetch(ctx context.Context, path string, force bool) error {
	url := f.Config.URL
	if url == "" {
		url = DefaultURL
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return wordlistError(path, fmt.Errorf("creating directory: %w", err))
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLockContext(ctx, lockRetryWait)
	if err != nil {
		return wordlistError(path, fmt.Errorf("acquiring lock: %w", err))
	}
	if !locked {
		return wordlistError(path, errors.New("could not acquire lock"))
	}
	defer lock.Unlock()

	if !force {
		if _, err := os.Stat(path); err == nil {
			f.Log.Debug("wordlist fetched by another process", zap.String("path", path))
			return nil
		}
	}

	f.Log.Info("fetching wordlist", zap.String("url", url), zap.String("path", path))
	data, err := httputil.Get(ctx, f.Client, url, f.Config.UserAgent, f.Config.MaxRetries, f.Log)
	if err != nil {
		return wordlistError(url, err)
	}

	words, err := ReadWordlist(bytes.NewReader(data), f.Config.Strict)
	if err != nil {
		return wordlistError(url, fmt.Errorf("validating download: %w", err))
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".wordlist-*")
	if err != nil {
		return wordlistError(path, fmt.Errorf("creating temp file: %w", err))
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return wordlistError(path, fmt.Errorf("writing temp file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		return wordlistError(path, fmt.Errorf("closing temp file: %w", err))
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return wordlistError(path, fmt.Errorf("installing wordlist: %w", err))
	}

	f.Log.Info("wordlist saved", zap.String("path", path), zap.Int("words", len(words)))
	return nil
}
