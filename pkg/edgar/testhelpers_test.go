package edgar

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sells-group/edgar-scout/internal/fetcher"
)

// newTestClient starts an httptest server for the handler and returns a
// client with every EDGAR endpoint pointed at it. The fetcher runs without
// pacing.
func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent: "edgar-scout-test test@example.com",
		Timeout:   5 * time.Second,
	})

	opts = append([]Option{WithConfig(Config{
		BaseURL:     srv.URL,
		DataURL:     srv.URL,
		FullTextURL: srv.URL + "/search-index",
	})}, opts...)

	return NewClient(f, opts...)
}

// tickersJSON is a small company directory in provider shape.
const tickersJSON = `{
	"0": {"cik_str": 1318605, "ticker": "TSLA", "title": "Tesla, Inc."},
	"1": {"cik_str": 320193, "ticker": "AAPL", "title": "Apple Inc."},
	"2": {"cik_str": 789019, "ticker": "MSFT", "title": "Microsoft Corp"}
}`

// submissionsJSON builds a minimal submissions response.
func submissionsJSON(name, sic, desc string, tickers []string, forms, accessions []string) string {
	body := `{"name":"` + name + `","sic":"` + sic + `","businessDescription":"` + desc + `","tickers":[`
	for i, tk := range tickers {
		if i > 0 {
			body += ","
		}
		body += `"` + tk + `"`
	}
	body += `],"exchanges":[],"filings":{"recent":{"form":[`
	for i, f := range forms {
		if i > 0 {
			body += ","
		}
		body += `"` + f + `"`
	}
	body += `],"accessionNumber":[`
	for i, a := range accessions {
		if i > 0 {
			body += ","
		}
		body += `"` + a + `"`
	}
	body += `]}}}`
	return body
}
