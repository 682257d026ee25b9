package fetcher

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

// HTTPOptions configures the HTTP fetcher.
type HTTPOptions struct {
	UserAgent string
	Timeout   time.Duration
	Limiter   Limiter
}

// HTTPFetcher implements Fetcher using net/http. Every request waits on the
// limiter first and carries the configured User-Agent, per the SEC's fair
// access policy. Failed requests are not retried; a failure is final for
// that call.
type HTTPFetcher struct {
	client  *http.Client
	opts    HTTPOptions
	limiter Limiter
}

// NewRateLimiter returns the default token-bucket limiter for SEC endpoints
// at the given requests-per-second.
func NewRateLimiter(rps float64) Limiter {
	return rate.NewLimiter(rate.Limit(rps), 1)
}

// NewHTTPFetcher creates a new HTTPFetcher with the given options.
func NewHTTPFetcher(opts HTTPOptions) *HTTPFetcher {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "edgar-scout/1.0"
	}
	limiter := opts.Limiter
	if limiter == nil {
		limiter = NopLimiter{}
	}
	transport := &http.Transport{
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
	return &HTTPFetcher{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		opts:    opts,
		limiter: limiter,
	}
}

// Get fetches the URL and returns the response body. Non-2xx is an error.
func (f *HTTPFetcher) Get(ctx context.Context, url string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "fetcher: rate limit")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: build request")
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, eris.Errorf("fetcher: %s returned status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: read body")
	}
	return body, nil
}

// GetJSON fetches the URL and decodes the JSON response into v.
func (f *HTTPFetcher) GetJSON(ctx context.Context, url string, v any) error {
	body, err := f.Get(ctx, url)
	if err != nil {
		return err
	}
	if err := DecodeJSON(body, v); err != nil {
		return eris.Wrapf(err, "fetcher: decode %s", url)
	}
	return nil
}
