package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/creatorlab/canvas/pkg/observability"
)

// maxFetchBytes caps a single asset download. Source images beyond this are
// misconfigured uploads, not canvas material. Variable so tests can shrink
// it.
var maxFetchBytes = 64 << 20

// Fetch performs a single GET and returns the response body. Transient
// failures (network errors, 5xx) come back wrapped as [RetryableError];
// other HTTP error statuses are permanent.
func Fetch(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url %q: %w", rawURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	observability.HTTP().OnRequest(ctx, http.MethodGet, u.Host, u.Path)
	start := time.Now()

	resp, err := client.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, http.MethodGet, u.Host, u.Path, err)
		return nil, Retryable(err)
	}
	defer resp.Body.Close()

	observability.HTTP().OnResponse(ctx, http.MethodGet, u.Host, u.Path, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode >= 500:
		return nil, Retryable(fmt.Errorf("GET %s: status %d", rawURL, resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("GET %s: status %d", rawURL, resp.StatusCode)
	}

	// Read one byte past the cap so an oversized body is rejected here,
	// not hidden as truncated bytes that fail to decode later.
	data, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxFetchBytes)+1))
	if err != nil {
		return nil, Retryable(fmt.Errorf("read body %s: %w", rawURL, err))
	}
	if len(data) > maxFetchBytes {
		return nil, fmt.Errorf("GET %s: body exceeds %d bytes", rawURL, maxFetchBytes)
	}
	return data, nil
}

// FetchWithRetry fetches rawURL, retrying transient failures with backoff.
func FetchWithRetry(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	var data []byte
	err := RetryWithBackoff(ctx, func() error {
		var ferr error
		data, ferr = Fetch(ctx, client, rawURL)
		return ferr
	})
	return data, err
}
