// Package search composes the candidate resolver, profile fetcher, and
// industry classifier into one sequential pipeline.
package search

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/edgar-scout/internal/classify"
	"github.com/sells-group/edgar-scout/pkg/edgar"
)

// DefaultMaxCandidates caps how many candidates get the full profile +
// classification treatment per query. It bounds the number of sequential
// paced requests, nothing else.
const DefaultMaxCandidates = 5

// CompanyAPI is the EDGAR client surface the pipeline consumes.
type CompanyAPI interface {
	SearchCompanies(ctx context.Context, name string) ([]edgar.Candidate, error)
	LookupCIK(ctx context.Context, cik string) (*edgar.Candidate, error)
	FullTextSearch(ctx context.Context, query string) ([]edgar.Candidate, error)
	FetchProfile(ctx context.Context, cik string) (*edgar.Profile, error)
}

// Result is the externally visible unit: candidate identity merged with the
// derived classification and a filing count.
type Result struct {
	CIK                 string             `json:"cik"`
	Name                string             `json:"name"`
	Ticker              string             `json:"ticker,omitempty"`
	CompanyType         edgar.CompanyType  `json:"company_type"`
	SICCode             string             `json:"sic_code,omitempty"`
	SICDescription      string             `json:"sic_description,omitempty"`
	BusinessDescription string             `json:"business_description,omitempty"`
	IndustryCategory    string             `json:"industry_category,omitempty"`
	Confidence          string             `json:"confidence,omitempty"`
	FormD               *edgar.FormDSignal `json:"form_d_info,omitempty"`
	DataSource          string             `json:"data_source"`
	FilingCount         int                `json:"filing_count"`
}

// Options tunes pipeline behavior.
type Options struct {
	// MaxCandidates caps processed candidates per query; <=0 means the
	// default of 5.
	MaxCandidates int

	// FullText additionally queries the EDGAR full-text index when
	// resolving by name.
	FullText bool
}

// Pipeline runs resolve -> fetch -> classify for one query at a time.
type Pipeline struct {
	api        CompanyAPI
	classifier *classify.Classifier
	opts       Options
}

// New creates a Pipeline. A nil classifier gets the default tables.
func New(api CompanyAPI, classifier *classify.Classifier, opts Options) *Pipeline {
	if classifier == nil {
		classifier = classify.New(nil, nil)
	}
	if opts.MaxCandidates <= 0 {
		opts.MaxCandidates = DefaultMaxCandidates
	}
	return &Pipeline{api: api, classifier: classifier, opts: opts}
}

// Search resolves candidates for the query name (plus an optional direct
// CIK), then fetches and classifies each of the first MaxCandidates.
//
// Resolution failures degrade to an empty candidate list and profile
// failures skip that candidate; neither aborts the query. Candidates are
// deliberately not deduplicated: an entity reachable both by name match and
// by direct CIK appears twice, which keeps multiple-identifier situations
// visible.
func (p *Pipeline) Search(ctx context.Context, name, cik string) ([]Result, error) {
	log := zap.L().With(zap.String("query", name))

	candidates, err := p.api.SearchCompanies(ctx, name)
	if err != nil {
		log.Warn("company directory search failed", zap.Error(err))
		candidates = nil
	}

	if p.opts.FullText {
		ftCandidates, err := p.api.FullTextSearch(ctx, name)
		if err != nil {
			log.Warn("full-text search failed", zap.Error(err))
		} else {
			candidates = append(candidates, ftCandidates...)
		}
	}

	if cik != "" {
		direct, err := p.api.LookupCIK(ctx, cik)
		if err != nil {
			log.Warn("direct CIK lookup failed", zap.String("cik", cik), zap.Error(err))
		} else {
			candidates = append(candidates, *direct)
		}
	}

	if len(candidates) > p.opts.MaxCandidates {
		candidates = candidates[:p.opts.MaxCandidates]
	}

	results := make([]Result, 0, len(candidates))
	for _, cand := range candidates {
		if ctx.Err() != nil {
			return results, ctx.Err()
		}

		profile, err := p.api.FetchProfile(ctx, cand.CIK)
		if err != nil {
			log.Warn("profile fetch failed, skipping candidate",
				zap.String("cik", cand.CIK),
				zap.Error(err),
			)
			continue
		}

		cls := p.classifier.Classify(profile, cand.Name)

		results = append(results, Result{
			CIK:                 cand.CIK,
			Name:                cand.Name,
			Ticker:              cand.Ticker,
			CompanyType:         cls.CompanyType,
			SICCode:             cls.SICCode,
			SICDescription:      cls.SICDescription,
			BusinessDescription: cls.BusinessDescription,
			IndustryCategory:    cls.IndustryCategory,
			Confidence:          cls.Confidence,
			FormD:               cls.FormD,
			DataSource:          cls.Source,
			FilingCount:         len(profile.Filings),
		})
	}

	log.Info("search complete",
		zap.Int("candidates", len(candidates)),
		zap.Int("results", len(results)),
	)
	return results, nil
}
