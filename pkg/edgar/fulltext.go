package edgar

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

const fullTextPageSize = 100

// fullTextResult is the response shape of the EDGAR full-text search API.
type fullTextResult struct {
	Hits struct {
		Hits []struct {
			Source struct {
				CIK        string `json:"entity_cik"`
				EntityName string `json:"entity_name"`
			} `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// FullTextSearch queries EDGAR's full-text search index for filings
// mentioning the query and maps the filing entities to candidates. The
// index covers filers without ticker listings, so the public/private hint
// stays unknown here.
func (c *Client) FullTextSearch(ctx context.Context, query string) ([]Candidate, error) {
	searchURL := fmt.Sprintf("%s?q=%s&from=0&size=%d",
		c.cfg.FullTextURL, url.QueryEscape(query), fullTextPageSize)

	var result fullTextResult
	if err := c.fetcher.GetJSON(ctx, searchURL, &result); err != nil {
		return nil, eris.Wrap(err, "edgar: full-text search")
	}

	candidates := make([]Candidate, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		src := hit.Source
		if src.CIK == "" || src.EntityName == "" {
			continue
		}
		candidates = append(candidates, Candidate{
			CIK:  PadCIK(src.CIK),
			Name: src.EntityName,
			Type: TypeUnknown,
		})
	}

	zap.L().Debug("full-text search",
		zap.String("query", query),
		zap.Int("hits", len(candidates)),
	)
	return candidates, nil
}
