// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	qlog "github.com/pdiddy/quote-context/internal/log"
)

// ErrStatus is wrapped by FetchHTML when the final response is not 2xx.
var ErrStatus = errors.New("unexpected HTTP status")

// ErrTooLarge is returned when a page exceeds FetchOptions.MaxBytes.
var ErrTooLarge = errors.New("response body too large")

// DefaultMaxBytes bounds a fetched page. Distance and diff are quadratic in
// input size, so larger pages are rejected rather than compared.
const DefaultMaxBytes = 5 << 20

// FetchOptions controls FetchHTML.
type FetchOptions struct {
	// UserAgent is sent with the request when non-empty.
	UserAgent string

	// MaxBytes limits the body size; 0 selects DefaultMaxBytes.
	MaxBytes int64

	// MaxRetries is passed to DoWithRetry.
	MaxRetries int

	Logger zerolog.Logger
}

// FetchHTML GETs rawURL and returns the body as a string.
func FetchHTML(ctx context.Context, client *http.Client, rawURL string, opts FetchOptions) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %w", rawURL, err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.5")
	if opts.UserAgent != "" {
		req.Header.Set("User-Agent", opts.UserAgent)
	}

	resp, err := DoWithRetry(ctx, client, req, opts.MaxRetries, opts.Logger)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetching %s: %w: %d", rawURL, ErrStatus, resp.StatusCode)
	}

	limit := opts.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", rawURL, err)
	}
	if int64(len(body)) > limit {
		return "", fmt.Errorf("fetching %s: %w (limit %d bytes)", rawURL, ErrTooLarge, limit)
	}

	opts.Logger.Debug().Str(qlog.FieldURL, rawURL).Int(qlog.FieldBytes, len(body)).Msg("fetched page")
	return string(body), nil
}
