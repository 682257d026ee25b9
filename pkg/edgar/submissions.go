package edgar

import (
	"context"
	"fmt"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// submissionJSON is the shape of a submissions API response. Recent filings
// come as parallel arrays: form[i] and accessionNumber[i] describe the same
// filing, and the Form D scan depends on that alignment.
type submissionJSON struct {
	Name           string   `json:"name"`
	SIC            string   `json:"sic"`
	SICDescription string   `json:"sicDescription"`
	Description    string   `json:"businessDescription"`
	Tickers        []string `json:"tickers"`
	Filings        struct {
		Recent struct {
			AccessionNumber []string `json:"accessionNumber"`
			Form            []string `json:"form"`
		} `json:"recent"`
	} `json:"filings"`
}

// fetchSubmissions retrieves and maps an entity's submissions record.
// The CIK is zero-padded to the endpoint's fixed width.
func (c *Client) fetchSubmissions(ctx context.Context, cik string) (*Profile, error) {
	padded := PadCIK(cik)
	url := fmt.Sprintf("%s/submissions/CIK%s.json", c.cfg.DataURL, padded)

	var sub submissionJSON
	if err := c.fetcher.GetJSON(ctx, url, &sub); err != nil {
		return nil, eris.Wrapf(err, "edgar: fetch submissions for CIK %s", padded)
	}

	recent := sub.Filings.Recent
	filings := make([]Filing, 0, len(recent.Form))
	for i, form := range recent.Form {
		filings = append(filings, Filing{
			Form:            form,
			AccessionNumber: safeIndex(recent.AccessionNumber, i),
		})
	}

	companyType := TypePrivate
	if len(sub.Tickers) > 0 {
		companyType = TypePublic
	}

	return &Profile{
		CIK:            padded,
		Name:           sub.Name,
		Tickers:        sub.Tickers,
		SIC:            sub.SIC,
		SICDescription: sub.SICDescription,
		Description:    sub.Description,
		Filings:        filings,
		CompanyType:    companyType,
	}, nil
}

// FetchProfile retrieves an entity's full disclosure profile. If the recent
// filings contain a Form D, the first one (in filing order) is parsed for an
// industry signal; later Form D filings are ignored. A request failure means
// "skip this candidate", not an error to escalate.
func (c *Client) FetchProfile(ctx context.Context, cik string) (*Profile, error) {
	profile, err := c.fetchSubmissions(ctx, cik)
	if err != nil {
		return nil, err
	}

	for _, filing := range profile.Filings {
		if filing.Form != "D" {
			continue
		}
		if filing.AccessionNumber == "" {
			continue
		}
		signal := c.ParseFormD(ctx, profile.CIK, filing.AccessionNumber)
		profile.FormD = &signal
		zap.L().Debug("parsed Form D filing",
			zap.String("cik", profile.CIK),
			zap.String("accession", filing.AccessionNumber),
			zap.String("industry_category", signal.IndustryCategory),
		)
		break
	}

	return profile, nil
}

// safeIndex returns the string at index i, or empty string if out of bounds.
func safeIndex(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}
