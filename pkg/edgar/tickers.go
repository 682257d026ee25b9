package edgar

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

const tickersPath = "/files/company_tickers.json"

// tickerEntry is one record from the company_tickers.json directory.
type tickerEntry struct {
	CIK    json.Number `json:"cik_str"`
	Ticker string      `json:"ticker"`
	Title  string      `json:"title"`
}

// DirectoryEntry is one entity in the public-company directory.
type DirectoryEntry struct {
	CIK    string
	Ticker string
	Title  string
}

// Directory is the full public-company listing in provider order.
type Directory []DirectoryEntry

// fetchDirectory downloads and orders the ticker directory. The JSON object
// is keyed by numeric index strings; sorting keys numerically restores the
// provider's serialization order so matching is deterministic.
func (c *Client) fetchDirectory(ctx context.Context) (Directory, error) {
	url := c.cfg.BaseURL + tickersPath

	var raw map[string]tickerEntry
	if err := c.fetcher.GetJSON(ctx, url, &raw); err != nil {
		return nil, eris.Wrap(err, "edgar: fetch company directory")
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}
		return keys[i] < keys[j]
	})

	dir := make(Directory, 0, len(keys))
	for _, k := range keys {
		entry := raw[k]
		dir = append(dir, DirectoryEntry{
			CIK:    entry.CIK.String(),
			Ticker: entry.Ticker,
			Title:  entry.Title,
		})
	}
	return dir, nil
}

// directory returns the ticker directory, consulting the cache first.
func (c *Client) directory(ctx context.Context) (Directory, error) {
	if c.cache != nil {
		if dir, ok := c.cache.Lookup(); ok {
			return dir, nil
		}
	}

	dir, err := c.fetchDirectory(ctx)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Populate(dir)
	}
	return dir, nil
}

// SearchCompanies matches the query name against the public-company
// directory. An entry matches when the query is a substring of its title or
// ticker, or its title is a substring of the query (queries longer than the
// canonical name). Case-insensitive, no fuzzy matching, no ranking: matches
// come back in directory order.
func (c *Client) SearchCompanies(ctx context.Context, name string) ([]Candidate, error) {
	dir, err := c.directory(ctx)
	if err != nil {
		return nil, err
	}

	nameLower := strings.ToLower(name)

	var matches []Candidate
	for _, entry := range dir {
		titleLower := strings.ToLower(entry.Title)
		tickerLower := strings.ToLower(entry.Ticker)

		if strings.Contains(titleLower, nameLower) ||
			strings.Contains(tickerLower, nameLower) ||
			strings.Contains(nameLower, titleLower) {
			matches = append(matches, Candidate{
				CIK:    PadCIK(entry.CIK),
				Name:   entry.Title,
				Ticker: entry.Ticker,
				Type:   TypePublic,
			})
		}
	}

	zap.L().Debug("company directory search",
		zap.String("query", name),
		zap.Int("matches", len(matches)),
	)
	return matches, nil
}

// LookupCIK resolves a single entity by CIK via the submissions endpoint.
// Works for both public and private companies. Filing content is not
// inspected here; that happens when the candidate's profile is fetched.
func (c *Client) LookupCIK(ctx context.Context, cik string) (*Candidate, error) {
	profile, err := c.fetchSubmissions(ctx, cik)
	if err != nil {
		return nil, err
	}

	cand := &Candidate{
		CIK:  profile.CIK,
		Name: profile.Name,
		Type: profile.CompanyType,
	}
	if len(profile.Tickers) > 0 {
		cand.Ticker = profile.Tickers[0]
	}
	return cand, nil
}
