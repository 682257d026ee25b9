package edgar

import (
	"fmt"

	"github.com/sells-group/edgar-scout/internal/fetcher"
)

const (
	defaultBaseURL     = "https://www.sec.gov"
	defaultDataURL     = "https://data.sec.gov"
	defaultFullTextURL = "https://efts.sec.gov/LATEST/search-index"

	cikWidth = 10
)

// Config configures the EDGAR client.
type Config struct {
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	DataURL     string `yaml:"data_url" mapstructure:"data_url"`
	FullTextURL string `yaml:"full_text_url" mapstructure:"full_text_url"`
}

// Client talks to the SEC EDGAR public endpoints. All calls go through the
// shared fetcher, which paces and identifies every request.
type Client struct {
	fetcher fetcher.Fetcher
	cfg     Config
	cache   DirectoryCache
}

// Option customizes a Client.
type Option func(*Client)

// WithConfig overrides endpoint URLs. Empty fields keep their defaults.
func WithConfig(cfg Config) Option {
	return func(c *Client) {
		if cfg.BaseURL != "" {
			c.cfg.BaseURL = cfg.BaseURL
		}
		if cfg.DataURL != "" {
			c.cfg.DataURL = cfg.DataURL
		}
		if cfg.FullTextURL != "" {
			c.cfg.FullTextURL = cfg.FullTextURL
		}
	}
}

// WithDirectoryCache installs a cache for the ticker directory. Without one,
// every search re-fetches the directory.
func WithDirectoryCache(cache DirectoryCache) Option {
	return func(c *Client) { c.cache = cache }
}

// NewClient creates an EDGAR client backed by the given fetcher.
func NewClient(f fetcher.Fetcher, opts ...Option) *Client {
	c := &Client{
		fetcher: f,
		cfg: Config{
			BaseURL:     defaultBaseURL,
			DataURL:     defaultDataURL,
			FullTextURL: defaultFullTextURL,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PadCIK left-pads a CIK with zeros to the fixed 10-digit width used by the
// submissions endpoint. Inputs longer than the width are truncated to it.
func PadCIK(cik string) string {
	padded := fmt.Sprintf("%010s", cik)
	if len(padded) > cikWidth {
		padded = padded[:cikWidth]
	}
	return padded
}
