package fetcher

import "context"

// Fetcher defines the interface for retrieving remote data.
type Fetcher interface {
	// Get fetches the URL and returns the full response body.
	// A non-2xx status is an error.
	Get(ctx context.Context, url string) ([]byte, error)

	// GetJSON fetches the URL and decodes the JSON response into v.
	GetJSON(ctx context.Context, url string, v any) error
}

// Limiter paces outbound requests. Wait blocks until the next request is
// allowed to proceed. Every outbound call waits exactly once, regardless of
// the response.
type Limiter interface {
	Wait(ctx context.Context) error
}

// NopLimiter is a Limiter that never blocks.
type NopLimiter struct{}

func (NopLimiter) Wait(context.Context) error { return nil }
