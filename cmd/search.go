package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/edgar-scout/internal/fetcher"
	"github.com/sells-group/edgar-scout/internal/search"
	"github.com/sells-group/edgar-scout/pkg/edgar"
)

var (
	searchCIK      string
	searchFullText bool
	searchJSON     bool
)

var searchCmd = &cobra.Command{
	Use:   "search <company name>",
	Short: "Search EDGAR for a company and classify its industry",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		name := strings.Join(args, " ")

		f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
			UserAgent: cfg.Edgar.UserAgent,
			Timeout:   time.Duration(cfg.Edgar.TimeoutSecs) * time.Second,
			Limiter:   fetcher.NewRateLimiter(cfg.Edgar.RateLimit),
		})

		client := edgar.NewClient(f,
			edgar.WithConfig(edgar.Config{
				BaseURL:     cfg.Edgar.BaseURL,
				DataURL:     cfg.Edgar.DataURL,
				FullTextURL: cfg.Edgar.FullTextURL,
			}),
			edgar.WithDirectoryCache(edgar.NewMemoryCache()),
		)

		p := search.New(client, nil, search.Options{
			MaxCandidates: cfg.Search.MaxCandidates,
			FullText:      searchFullText,
		})

		results, err := p.Search(cmd.Context(), name, searchCIK)
		if err != nil {
			return eris.Wrap(err, "search")
		}

		if searchJSON {
			return writeJSON(cmd.OutOrStdout(), results)
		}
		formatResults(cmd.OutOrStdout(), name, results)
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchCIK, "cik", "", "also look up this CIK directly (finds private companies)")
	searchCmd.Flags().BoolVar(&searchFullText, "fulltext", false, "also query the EDGAR full-text search index")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "emit results as JSON")
	rootCmd.AddCommand(searchCmd)
}

// writeJSON emits results as indented JSON.
func writeJSON(out io.Writer, results []search.Result) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return eris.Wrap(err, "encode results")
	}
	return nil
}

// formatResults writes one block per result to out.
func formatResults(out io.Writer, query string, results []search.Result) {
	if len(results) == 0 {
		_, _ = fmt.Fprintf(out, "No results found for %q\n", query)
		return
	}

	for i, r := range results {
		if i > 0 {
			_, _ = fmt.Fprintln(out, strings.Repeat("-", 60))
		}
		formatResult(out, r)
	}
}

// formatResult writes a single result block to out.
func formatResult(out io.Writer, r search.Result) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Company:\t%s\n", r.Name)
	_, _ = fmt.Fprintf(w, "CIK:\t%s\n", r.CIK)
	_, _ = fmt.Fprintf(w, "Type:\t%s\n", strings.ToUpper(string(r.CompanyType)))
	_, _ = fmt.Fprintf(w, "Ticker:\t%s\n", orNA(r.Ticker))
	_, _ = fmt.Fprintf(w, "SIC Code:\t%s\n", orNA(r.SICCode))
	_, _ = fmt.Fprintf(w, "SIC Description:\t%s\n", orNA(r.SICDescription))
	_, _ = fmt.Fprintf(w, "Industry Category:\t%s\n", orNA(r.IndustryCategory))
	if r.Confidence != "" {
		_, _ = fmt.Fprintf(w, "Confidence:\t%s\n", r.Confidence)
	}
	_, _ = fmt.Fprintf(w, "Business Description:\t%s\n", orNA(r.BusinessDescription))
	_, _ = fmt.Fprintf(w, "Filing Count:\t%d\n", r.FilingCount)
	_, _ = fmt.Fprintf(w, "Data Source:\t%s\n", r.DataSource)
	if r.FormD != nil {
		_, _ = fmt.Fprintf(w, "Form D Category:\t%s\n", orNA(r.FormD.IndustryCategory))
		_, _ = fmt.Fprintf(w, "Form D Offering:\t%s\n", dollarOrNA(r.FormD.OfferingAmount))
	}
	_ = w.Flush()
}

// orNA substitutes "N/A" for empty values in the report.
func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// dollarOrNA renders an offering amount with a dollar sign, or "N/A".
func dollarOrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return "$" + s
}
