package edgar

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// offeringAmountRe captures the dollar figure following the labeled total
// offering amount in a Form D document. The matched text is kept verbatim,
// thousands separators included.
var offeringAmountRe = regexp.MustCompile(`Total Offering Amount.*?\$([0-9,]+)`)

// formDCandidateURLs returns the document locations to try, in fixed order:
// styled-XML variant, plain-XML variant, then the legacy full-text filing.
// Directory paths use the accession with separators stripped and the CIK
// with leading zeros stripped; the remote service is sensitive to both.
func (c *Client) formDCandidateURLs(cik, accession string) []string {
	cikTrimmed := strings.TrimLeft(cik, "0")
	if cikTrimmed == "" {
		cikTrimmed = "0"
	}
	accClean := strings.ReplaceAll(accession, "-", "")

	return []string{
		fmt.Sprintf("%s/Archives/edgar/data/%s/%s/xslFormDX01/primary_doc.xml", c.cfg.BaseURL, cikTrimmed, accClean),
		fmt.Sprintf("%s/Archives/edgar/data/%s/%s/primary_doc.xml", c.cfg.BaseURL, cikTrimmed, accClean),
		fmt.Sprintf("%s/Archives/edgar/data/%s/%s.txt", c.cfg.BaseURL, cikTrimmed, accession),
	}
}

// ParseFormD scans a Form D filing for an industry category and offering
// amount. It never fails: any transport or content problem yields an
// all-empty signal. The first candidate location that responds wins; later
// ones are not tried even when the winner yields no signal.
func (c *Client) ParseFormD(ctx context.Context, cik, accession string) FormDSignal {
	var signal FormDSignal

	for _, url := range c.formDCandidateURLs(cik, accession) {
		body, err := c.fetcher.Get(ctx, url)
		if err != nil {
			zap.L().Debug("form D candidate unavailable",
				zap.String("url", url),
				zap.Error(err),
			)
			continue
		}

		if strings.HasSuffix(url, ".xml") {
			content := string(body)
			signal.IndustryCategory = matchFormDIndustry(content)

			if m := offeringAmountRe.FindStringSubmatch(content); m != nil {
				signal.OfferingAmount = m[1]
			}
		}
		break
	}

	return signal
}

// matchFormDIndustry checks the raw document text against the documented
// category keywords, first match wins. Order matters: Technology, then
// Financial Services, then Healthcare.
func matchFormDIndustry(content string) string {
	switch {
	case strings.Contains(content, "Technology"):
		return "Technology"
	case strings.Contains(content, "Financial"), strings.Contains(content, "Banking"):
		return "Financial Services"
	case strings.Contains(content, "Health"), strings.Contains(content, "Medical"):
		return "Healthcare"
	default:
		return ""
	}
}
