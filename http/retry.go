package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/archmap"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second}
}

type fetchFunc func(ctx context.Context, url string) (string, error)

// fetchWithRetry calls fetch up to len(delays)+1 times. Only EUNAVAILABLE
// errors are retried.
func fetchWithRetry(ctx context.Context, url string, fetch fetchFunc, delays []time.Duration, logger *slog.Logger) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		body, err := fetch(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if archmap.ErrorCode(err) != archmap.EUNAVAILABLE || attempt >= maxAttempts-1 {
			break
		}

		logger.Warn("retrying fetch",
			"url", url,
			"attempt", attempt+2,
			"err", err,
		)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
