// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the retrying HTTP GET used to fetch the
// wordlist.
package httputil

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// throttled responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

// maxRetryAfter caps a server-supplied Retry-After so a bad header cannot
// stall the CLI.
const maxRetryAfter = 30 * time.Second

const defaultMaxRetries = 5

// MaxBodySize bounds how much of a response Get will read. A BIP39
// wordlist is about 13 KiB.
const MaxBodySize = 1 << 20

// retryable reports whether a status is worth retrying.
func retryable(code int) bool {
	return code == http.StatusTooManyRequests || code == http.StatusServiceUnavailable
}

// DoWithRetry executes an HTTP request and retries on HTTP 429 and 503 with
// exponential backoff starting at RetryBaseDelay. A Retry-After header
// given in seconds overrides the computed delay, up to 30s.
//
// When maxRetries is 0 the default (5) is used. On each retry the response
// body is drained and closed before sleeping. If the context is cancelled
// during a backoff wait the function returns ctx.Err(). After exhausting
// retries the last throttled response is returned so the caller can
// inspect it.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int, log *zap.Logger) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if log == nil {
		log = zap.NewNop()
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if !retryable(resp.StatusCode) || attempt >= maxRetries {
			return resp, nil
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		if d, ok := retryAfter(resp.Header.Get("Retry-After")); ok {
			backoff = d
		}
		log.Info("server throttled request, retrying",
			zap.String("url", req.URL.String()),
			zap.Int("status", resp.StatusCode),
			zap.Duration("backoff", backoff),
			zap.Int("attempt", attempt+1),
			zap.Int("max_retries", maxRetries))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

func retryAfter(v string) (time.Duration, bool) {
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0, false
	}
	return min(time.Duration(secs)*time.Second, maxRetryAfter), true
}

// Get fetches url with DoWithRetry and returns the body of a 200 response.
// Any other final status is an error.
func Get(ctx context.Context, client *http.Client, url, userAgent string, maxRetries int, log *zap.Logger) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := DoWithRetry(ctx, client, req, maxRetries, log)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if len(data) > MaxBodySize {
		return nil, fmt.Errorf("GET %s: response exceeds %d bytes", url, MaxBodySize)
	}
	return data, nil
}
