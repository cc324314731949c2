package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/pyweop/polypulse/config"
)

const cliAggsBody = `{
	"ticker": "AAPL",
	"queryCount": 2,
	"resultsCount": 2,
	"adjusted": true,
	"results": [
		{"v": 70790813, "vw": 131.6292, "o": 130.465, "c": 130.15, "h": 133.41, "l": 129.89, "t": 1673240400000, "n": 645365},
		{"v": 63896155, "vw": 129.822, "o": 130.26, "c": 130.73, "h": 131.2636, "l": 128.12, "t": 1673326800000, "n": 554940}
	],
	"status": "OK",
	"request_id": "6a7e466379af0a71039d60cc78e72282"
}`

type runResult struct {
	stdout string
	stderr string
	codes  []int
}

// captureRun redirects the process indirections, runs fn, and reports the
// captured streams and every exit code requested.
func captureRun(fn func()) runResult {
	var outBuf, errBuf bytes.Buffer
	var codes []int

	oldExit, oldStdout, oldStderr := exit, stdout, stderr
	exit = func(code int) { codes = append(codes, code) }
	stdout = &outBuf
	stderr = &errBuf
	defer func() { exit, stdout, stderr = oldExit, oldStdout, oldStderr }()

	fn()
	return runResult{stdout: outBuf.String(), stderr: errBuf.String(), codes: codes}
}

// sentinelServer fails the run if it is ever reached; hits counts requests.
func sentinelServer(t *testing.T) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusTeapot)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func setTestConfig(t *testing.T, apiKey, baseURL string) {
	t.Helper()
	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig = config.Config{
		Server:  config.ServerConfig{Port: "8080"},
		Polygon: config.PolygonConfig{APIKey: apiKey, BaseURL: baseURL},
	}
}

func defaultFlags() fetchFlags {
	return fetchFlags{format: "dump", timespan: "day", multiplier: 1}
}

func TestRunAggs_WrongArgCount(t *testing.T) {
	srv, hits := sentinelServer(t)
	setTestConfig(t, "test-key", srv.URL)

	cases := [][]string{
		nil,
		{"AAPL"},
		{"AAPL", "2023-01-09"},
		{"AAPL", "2023-01-09", "2023-01-13", "extra"},
	}
	for _, args := range cases {
		res := captureRun(func() { runAggs(context.Background(), args, defaultFlags()) })

		if res.stderr != "Usage: polypulse <ticker> <from> <to>\n" {
			t.Fatalf("args=%v: unexpected stderr: %q", args, res.stderr)
		}
		if len(res.codes) != 1 || res.codes[0] != 1 {
			t.Fatalf("args=%v: expected exit 1, got %v", args, res.codes)
		}
		if res.stdout != "" {
			t.Fatalf("args=%v: stdout not empty: %q", args, res.stdout)
		}
	}
	if hits.Load() != 0 {
		t.Fatalf("expected no requests, got %d", hits.Load())
	}
}

func TestRunAggs_MissingAPIKey(t *testing.T) {
	srv, hits := sentinelServer(t)
	setTestConfig(t, "", srv.URL)

	res := captureRun(func() {
		runAggs(context.Background(), []string{"AAPL", "2023-01-09", "2023-01-13"}, defaultFlags())
	})

	if res.stderr != "Error: API_KEY environment variable not set\n" {
		t.Fatalf("unexpected stderr: %q", res.stderr)
	}
	if len(res.codes) != 1 || res.codes[0] != 1 {
		t.Fatalf("expected exit 1, got %v", res.codes)
	}
	if res.stdout != "" || hits.Load() != 0 {
		t.Fatalf("expected no output and no requests, got stdout=%q hits=%d", res.stdout, hits.Load())
	}
}

func TestRunAggs_UsageReportedBeforeMissingKey(t *testing.T) {
	srv, hits := sentinelServer(t)
	setTestConfig(t, "", srv.URL) // both problems at once

	res := captureRun(func() { runAggs(context.Background(), []string{"AAPL"}, defaultFlags()) })

	if res.stderr != "Usage: polypulse <ticker> <from> <to>\n" {
		t.Fatalf("expected the usage error to win, got: %q", res.stderr)
	}
	if hits.Load() != 0 {
		t.Fatalf("expected no requests, got %d", hits.Load())
	}
}

func TestRunAggs_Success(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotQuery = r.URL.Path, r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(cliAggsBody))
	}))
	defer srv.Close()
	setTestConfig(t, "test-key", srv.URL)

	res := captureRun(func() {
		runAggs(context.Background(), []string{"AAPL", "2023-01-09", "2023-01-13"}, defaultFlags())
	})

	if len(res.codes) != 0 {
		t.Fatalf("expected clean exit, got %v (stderr: %q)", res.codes, res.stderr)
	}
	if gotPath != "/v2/aggs/ticker/AAPL/range/1/day/2023-01-09/2023-01-13" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotQuery != "apiKey=test-key" {
		t.Fatalf("unexpected query: %s", gotQuery)
	}
	for _, want := range []string{"AAPL", "130.15", "Results", "RequestID"} {
		if !strings.Contains(res.stdout, want) {
			t.Fatalf("stdout missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestRunAggs_TableFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(cliAggsBody))
	}))
	defer srv.Close()
	setTestConfig(t, "test-key", srv.URL)

	f := defaultFlags()
	f.format = "table"
	res := captureRun(func() {
		runAggs(context.Background(), []string{"AAPL", "2023-01-09", "2023-01-13"}, f)
	})

	if len(res.codes) != 0 {
		t.Fatalf("expected clean exit, got %v", res.codes)
	}
	for _, want := range []string{"Date", "Close", "2023-01-09", "2023-01-10", "70,790,813.00"} {
		if !strings.Contains(res.stdout, want) {
			t.Fatalf("table output missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestRunAggs_ErrorReplyBody(t *testing.T) {
	// A non-conforming body (here an auth error) must fail the decode and
	// leave stdout empty; the HTTP status itself is not inspected.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"status": "NOT_AUTHORIZED", "request_id": "abc", "message": "unknown API key"}`))
	}))
	defer srv.Close()
	setTestConfig(t, "bad-key", srv.URL)

	res := captureRun(func() {
		runAggs(context.Background(), []string{"AAPL", "2023-01-09", "2023-01-13"}, defaultFlags())
	})

	if len(res.codes) != 1 || res.codes[0] != 1 {
		t.Fatalf("expected exit 1, got %v", res.codes)
	}
	if res.stdout != "" {
		t.Fatalf("stdout not empty: %q", res.stdout)
	}
}

func TestRunAggs_ConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close() // nothing listens anymore

	setTestConfig(t, "test-key", base)

	res := captureRun(func() {
		runAggs(context.Background(), []string{"AAPL", "2023-01-09", "2023-01-13"}, defaultFlags())
	})

	if len(res.codes) != 1 || res.codes[0] != 1 {
		t.Fatalf("expected exit 1, got %v", res.codes)
	}
	if res.stdout != "" {
		t.Fatalf("stdout not empty: %q", res.stdout)
	}
}

func TestRunAggs_FlagValidation(t *testing.T) {
	srv, hits := sentinelServer(t)
	setTestConfig(t, "test-key", srv.URL)

	t.Run("unsupported format", func(t *testing.T) {
		f := defaultFlags()
		f.format = "xml"
		res := captureRun(func() {
			runAggs(context.Background(), []string{"AAPL", "2023-01-09", "2023-01-13"}, f)
		})
		if len(res.codes) != 1 || !strings.Contains(res.stderr, "unsupported format") {
			t.Fatalf("expected format error, got codes=%v stderr=%q", res.codes, res.stderr)
		}
	})

	t.Run("csv is splits-only", func(t *testing.T) {
		f := defaultFlags()
		f.format = "csv"
		res := captureRun(func() {
			runAggs(context.Background(), []string{"AAPL", "2023-01-09", "2023-01-13"}, f)
		})
		if len(res.codes) != 1 || !strings.Contains(res.stderr, "unsupported format") {
			t.Fatalf("expected format error, got codes=%v stderr=%q", res.codes, res.stderr)
		}
	})

	t.Run("invalid adjusted", func(t *testing.T) {
		f := defaultFlags()
		f.adjusted = "maybe"
		res := captureRun(func() {
			runAggs(context.Background(), []string{"AAPL", "2023-01-09", "2023-01-13"}, f)
		})
		if len(res.codes) != 1 || !strings.Contains(res.stderr, "--adjusted must be true or false") {
			t.Fatalf("expected adjusted error, got codes=%v stderr=%q", res.codes, res.stderr)
		}
	})

	if hits.Load() != 0 {
		t.Fatalf("expected no requests, got %d", hits.Load())
	}
}

func TestRunDetails_Success(t *testing.T) {
	var detailsHits, newsHits atomic.Int64
	var newsQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasPrefix(r.URL.Path, "/v3/reference/tickers/"):
			detailsHits.Add(1)
			_, _ = w.Write([]byte(`{"request_id": "r1", "status": "OK", "results": {"ticker": "NVDA", "name": "NVIDIA Corp"}}`))
		case r.URL.Path == "/v2/reference/news":
			newsHits.Add(1)
			newsQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(`{"request_id": "r2", "status": "OK", "count": 1, "results": [{"id": "n1", "title": "chips up"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	setTestConfig(t, "test-key", srv.URL)

	res := captureRun(func() { runDetails(context.Background(), []string{"NVDA"}, defaultFlags()) })

	if len(res.codes) != 0 {
		t.Fatalf("expected clean exit, got %v", res.codes)
	}
	if detailsHits.Load() != 1 || newsHits.Load() != 1 {
		t.Fatalf("expected one request per endpoint, got details=%d news=%d", detailsHits.Load(), newsHits.Load())
	}
	if !strings.Contains(newsQuery, "ticker=NVDA") || !strings.Contains(newsQuery, "limit=3") {
		t.Fatalf("unexpected news query: %s", newsQuery)
	}
	for _, want := range []string{"NVIDIA Corp", "chips up"} {
		if !strings.Contains(res.stdout, want) {
			t.Fatalf("stdout missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestRunDetails_WrongArgCount(t *testing.T) {
	srv, hits := sentinelServer(t)
	setTestConfig(t, "test-key", srv.URL)

	for _, args := range [][]string{nil, {"NVDA", "AMD"}} {
		res := captureRun(func() { runDetails(context.Background(), args, defaultFlags()) })
		if res.stderr != "Usage: polypulse --mode details <ticker>\n" {
			t.Fatalf("args=%v: unexpected stderr: %q", args, res.stderr)
		}
		if len(res.codes) != 1 || res.codes[0] != 1 {
			t.Fatalf("args=%v: expected exit 1, got %v", args, res.codes)
		}
	}
	if hits.Load() != 0 {
		t.Fatalf("expected no requests, got %d", hits.Load())
	}
}

func TestRunDetails_PartialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/v3/reference/tickers/") {
			_, _ = w.Write([]byte(`{"request_id": "r1", "status": "OK", "results": {"ticker": "NVDA"}}`))
			return
		}
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()
	setTestConfig(t, "test-key", srv.URL)

	res := captureRun(func() { runDetails(context.Background(), []string{"NVDA"}, defaultFlags()) })

	if len(res.codes) != 1 || res.codes[0] != 1 {
		t.Fatalf("expected exit 1, got %v", res.codes)
	}
	if res.stdout != "" {
		t.Fatalf("stdout not empty: %q", res.stdout)
	}
}

func TestRunFinancials(t *testing.T) {
	t.Run("success with defaults", func(t *testing.T) {
		var gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(`{"request_id": "r1", "status": "OK", "results": [{"company_name": "Apple Inc.", "fiscal_year": "2023"}]}`))
		}))
		defer srv.Close()
		setTestConfig(t, "test-key", srv.URL)

		res := captureRun(func() { runFinancials(context.Background(), []string{"AAPL"}, defaultFlags()) })

		if len(res.codes) != 0 {
			t.Fatalf("expected clean exit, got %v", res.codes)
		}
		if !strings.Contains(gotQuery, "ticker=AAPL") || !strings.Contains(gotQuery, "limit=30") {
			t.Fatalf("unexpected query: %s", gotQuery)
		}
		if strings.Contains(gotQuery, "timeframe") {
			t.Fatalf("empty timeframe must be omitted: %s", gotQuery)
		}
		if !strings.Contains(res.stdout, "Apple Inc.") {
			t.Fatalf("stdout missing company name:\n%s", res.stdout)
		}
	})

	t.Run("limit out of range", func(t *testing.T) {
		srv, hits := sentinelServer(t)
		setTestConfig(t, "test-key", srv.URL)

		f := defaultFlags()
		f.limit = 101
		res := captureRun(func() { runFinancials(context.Background(), []string{"AAPL"}, f) })
		if len(res.codes) != 1 || !strings.Contains(res.stderr, "between 1 and 100") {
			t.Fatalf("expected limit error, got codes=%v stderr=%q", res.codes, res.stderr)
		}
		if hits.Load() != 0 {
			t.Fatalf("expected no requests, got %d", hits.Load())
		}
	})

	t.Run("invalid timeframe", func(t *testing.T) {
		srv, hits := sentinelServer(t)
		setTestConfig(t, "test-key", srv.URL)

		f := defaultFlags()
		f.timeframe = "monthly"
		res := captureRun(func() { runFinancials(context.Background(), []string{"AAPL"}, f) })
		if len(res.codes) != 1 || !strings.Contains(res.stderr, "annual, quarterly, or ttm") {
			t.Fatalf("expected timeframe error, got codes=%v stderr=%q", res.codes, res.stderr)
		}
		if hits.Load() != 0 {
			t.Fatalf("expected no requests, got %d", hits.Load())
		}
	})
}

func TestRunSplits_CSV(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"request_id": "r1", "status": "OK", "results": [
			{"ticker": "AAPL", "execution_date": "2020-08-31", "split_from": 1, "split_to": 4}
		]}`))
	}))
	defer srv.Close()
	setTestConfig(t, "test-key", srv.URL)

	f := defaultFlags()
	f.format = "csv"
	f.execDateGTE = "2020-01-01"
	res := captureRun(func() { runSplits(context.Background(), []string{"AAPL"}, f) })

	if len(res.codes) != 0 {
		t.Fatalf("expected clean exit, got %v (stderr: %q)", res.codes, res.stderr)
	}
	want := "ticker,execution_date,split_from,split_to,adj_factor\nAAPL,2020-08-31,1,4,0.2500000000\n"
	if res.stdout != want {
		t.Fatalf("unexpected csv:\n%q\nwant:\n%q", res.stdout, want)
	}
	for _, part := range []string{"limit=50", "ticker=AAPL", "execution_date.gte=2020-01-01"} {
		if !strings.Contains(gotQuery, part) {
			t.Fatalf("query missing %q: %s", part, gotQuery)
		}
	}
}

func TestRunSplits_TooManyArgs(t *testing.T) {
	srv, hits := sentinelServer(t)
	setTestConfig(t, "test-key", srv.URL)

	res := captureRun(func() { runSplits(context.Background(), []string{"AAPL", "TSLA"}, defaultFlags()) })
	if res.stderr != "Usage: polypulse --mode splits [ticker]\n" {
		t.Fatalf("unexpected stderr: %q", res.stderr)
	}
	if len(res.codes) != 1 || hits.Load() != 0 {
		t.Fatalf("expected exit 1 and no requests, got codes=%v hits=%d", res.codes, hits.Load())
	}
}

func TestRunDividends(t *testing.T) {
	t.Run("missing ticker", func(t *testing.T) {
		srv, hits := sentinelServer(t)
		setTestConfig(t, "test-key", srv.URL)

		res := captureRun(func() { runDividends(context.Background(), nil, defaultFlags()) })
		if res.stderr != "Usage: polypulse --mode dividends <ticker>\n" {
			t.Fatalf("unexpected stderr: %q", res.stderr)
		}
		if len(res.codes) != 1 || hits.Load() != 0 {
			t.Fatalf("expected exit 1 and no requests, got codes=%v hits=%d", res.codes, hits.Load())
		}
	})

	t.Run("success", func(t *testing.T) {
		var gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(`{"request_id": "r1", "status": "OK", "results": [{"ticker": "AAPL", "cash_amount": 0.24}]}`))
		}))
		defer srv.Close()
		setTestConfig(t, "test-key", srv.URL)

		res := captureRun(func() { runDividends(context.Background(), []string{"AAPL"}, defaultFlags()) })
		if len(res.codes) != 0 {
			t.Fatalf("expected clean exit, got %v", res.codes)
		}
		if !strings.Contains(gotQuery, "ticker=AAPL") || !strings.Contains(gotQuery, "limit=10") {
			t.Fatalf("unexpected query: %s", gotQuery)
		}
		if !strings.Contains(res.stdout, "0.24") {
			t.Fatalf("stdout missing amount:\n%s", res.stdout)
		}
	})
}

func TestRunNews(t *testing.T) {
	newsBody := `{"request_id": "r1", "status": "OK", "count": 1, "results": [{"id": "n1", "title": "markets rally"}]}`

	t.Run("market-wide omits ticker", func(t *testing.T) {
		var gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(newsBody))
		}))
		defer srv.Close()
		setTestConfig(t, "test-key", srv.URL)

		res := captureRun(func() { runNews(context.Background(), nil, defaultFlags()) })
		if len(res.codes) != 0 {
			t.Fatalf("expected clean exit, got %v", res.codes)
		}
		if strings.Contains(gotQuery, "ticker=") {
			t.Fatalf("market-wide query must omit ticker: %s", gotQuery)
		}
		if !strings.Contains(gotQuery, "limit=5") {
			t.Fatalf("expected default limit 5: %s", gotQuery)
		}
		if !strings.Contains(res.stdout, "markets rally") {
			t.Fatalf("stdout missing headline:\n%s", res.stdout)
		}
	})

	t.Run("per ticker with limit", func(t *testing.T) {
		var gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(newsBody))
		}))
		defer srv.Close()
		setTestConfig(t, "test-key", srv.URL)

		f := defaultFlags()
		f.limit = 2
		res := captureRun(func() { runNews(context.Background(), []string{"TSLA"}, f) })
		if len(res.codes) != 0 {
			t.Fatalf("expected clean exit, got %v", res.codes)
		}
		if !strings.Contains(gotQuery, "ticker=TSLA") || !strings.Contains(gotQuery, "limit=2") {
			t.Fatalf("unexpected query: %s", gotQuery)
		}
	})
}
