package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pyweop/polypulse/config"
	"github.com/pyweop/polypulse/internal/domain/models"
	"github.com/pyweop/polypulse/internal/logger"
	"github.com/pyweop/polypulse/internal/polygon"
	"github.com/pyweop/polypulse/internal/render"
)

// Indirections for unit testing; defaults target the real process streams.
// Stubbed exits do not stop execution, so every runner returns right after
// calling exit.
var (
	exit             = os.Exit
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// fetchFlags carries the per-mode flag values main parsed. Unused fields are
// simply ignored by modes they do not apply to.
type fetchFlags struct {
	format      string
	timespan    string
	multiplier  int
	adjusted    string
	limit       int
	timeframe   string
	execDateGT  string
	execDateGTE string
	execDateLT  string
	execDateLTE string
}

// newAPIClient builds the Polygon client from global configuration, failing
// the run when the credential is absent. Argument validation happens before
// this call so that usage errors are reported first.
func newAPIClient() (*polygon.Client, bool) {
	cfg := config.AppConfig.Polygon
	if cfg.APIKey == "" {
		fmt.Fprintln(stderr, "Error: API_KEY environment variable not set")
		exit(1)
		return nil, false
	}

	client := polygon.NewClient(polygon.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
	}, polygon.NewHTTPClient(cfg.Timeout))
	return client, true
}

// validFormat reports whether format is usable in the current mode. Every
// fetch mode accepts dump and json; extra lists mode-specific additions.
func validFormat(format string, extra ...string) bool {
	if format == "dump" || format == "json" {
		return true
	}
	for _, e := range extra {
		if format == e {
			return true
		}
	}
	return false
}

// renderValue renders v in the requested generic format.
func renderValue(v any, format string) (string, error) {
	if format == "json" {
		return render.JSON(v)
	}
	return render.Dump(v), nil
}

// printOut writes s to stdout, newline-terminated exactly once.
func printOut(s string) {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	fmt.Fprint(stdout, s)
}

// modeLimit resolves the --limit flag against the mode's default. A negative
// value fails the run.
func modeLimit(limit, def int) (int, bool) {
	if limit == 0 {
		return def, true
	}
	if limit < 1 {
		fmt.Fprintln(stderr, "Error: --limit must be a positive integer")
		exit(1)
		return 0, false
	}
	return limit, true
}

// runAggs fetches aggregate bars for <ticker> <from> <to> and prints them.
//
// The three positional arguments are substituted into the request URL
// verbatim; no trimming, casing, or date validation is applied. Request
// failures of any kind (network, HTTP error reply, malformed body) are logged
// and exit 1 with nothing on stdout.
func runAggs(ctx context.Context, args []string, f fetchFlags) {
	if len(args) != 3 {
		fmt.Fprintln(stderr, "Usage: polypulse <ticker> <from> <to>")
		exit(1)
		return
	}
	if !validFormat(f.format, "table") {
		fmt.Fprintf(stderr, "Error: unsupported format %q\n", f.format)
		exit(1)
		return
	}

	opts := polygon.AggsOptions{Multiplier: f.multiplier, Timespan: f.timespan}
	switch f.adjusted {
	case "":
	case "true", "false":
		b := f.adjusted == "true"
		opts.Adjusted = &b
	default:
		fmt.Fprintln(stderr, "Error: --adjusted must be true or false")
		exit(1)
		return
	}

	client, ok := newAPIClient()
	if !ok {
		return
	}

	resp, err := client.Aggregates(ctx, args[0], args[1], args[2], opts)
	if err != nil {
		logger.L().Error().Err(err).Msg("request failed")
		exit(1)
		return
	}

	if f.format == "table" {
		printOut(render.AggsTable(resp))
		return
	}
	out, err := renderValue(resp, f.format)
	if err != nil {
		logger.L().Error().Err(err).Msg("render failed")
		exit(1)
		return
	}
	printOut(out)
}

// detailsView bundles the company record with its latest headlines for a
// single render, mirroring the company page of the viewer.
type detailsView struct {
	Details *models.TickerDetailsResponse `json:"details"`
	News    *models.NewsResponse          `json:"news"`
}

// runDetails fetches ticker details and the three most recent related news
// articles concurrently.
func runDetails(ctx context.Context, args []string, f fetchFlags) {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "Usage: polypulse --mode details <ticker>")
		exit(1)
		return
	}
	if !validFormat(f.format) {
		fmt.Fprintf(stderr, "Error: unsupported format %q\n", f.format)
		exit(1)
		return
	}

	client, ok := newAPIClient()
	if !ok {
		return
	}

	var view detailsView
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		view.Details, err = client.TickerDetails(gctx, args[0])
		return err
	})
	g.Go(func() error {
		var err error
		view.News, err = client.News(gctx, polygon.NewsQuery{Ticker: args[0], Limit: 3})
		return err
	})
	if err := g.Wait(); err != nil {
		logger.L().Error().Err(err).Msg("request failed")
		exit(1)
		return
	}

	out, err := renderValue(view, f.format)
	if err != nil {
		logger.L().Error().Err(err).Msg("render failed")
		exit(1)
		return
	}
	printOut(out)
}

// runFinancials fetches fundamental filing data for one ticker.
func runFinancials(ctx context.Context, args []string, f fetchFlags) {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "Usage: polypulse --mode financials <ticker>")
		exit(1)
		return
	}
	if !validFormat(f.format) {
		fmt.Fprintf(stderr, "Error: unsupported format %q\n", f.format)
		exit(1)
		return
	}

	limit, ok := modeLimit(f.limit, 30)
	if !ok {
		return
	}
	if limit > 100 {
		fmt.Fprintln(stderr, "Error: --limit must be between 1 and 100")
		exit(1)
		return
	}
	switch f.timeframe {
	case "", "annual", "quarterly", "ttm":
	default:
		fmt.Fprintln(stderr, "Error: --timeframe must be annual, quarterly, or ttm")
		exit(1)
		return
	}

	client, ok := newAPIClient()
	if !ok {
		return
	}

	resp, err := client.Financials(ctx, polygon.FinancialsQuery{
		Ticker:    args[0],
		Limit:     limit,
		Timeframe: f.timeframe,
	})
	if err != nil {
		logger.L().Error().Err(err).Msg("request failed")
		exit(1)
		return
	}

	out, err := renderValue(resp, f.format)
	if err != nil {
		logger.L().Error().Err(err).Msg("render failed")
		exit(1)
		return
	}
	printOut(out)
}

// runSplits fetches historical stock splits, optionally restricted to one
// ticker, with optional execution date filters.
func runSplits(ctx context.Context, args []string, f fetchFlags) {
	if len(args) > 1 {
		fmt.Fprintln(stderr, "Usage: polypulse --mode splits [ticker]")
		exit(1)
		return
	}
	if !validFormat(f.format, "csv") {
		fmt.Fprintf(stderr, "Error: unsupported format %q\n", f.format)
		exit(1)
		return
	}

	limit, ok := modeLimit(f.limit, 50)
	if !ok {
		return
	}

	q := polygon.SplitsQuery{
		Limit:            limit,
		ExecutionDateGT:  f.execDateGT,
		ExecutionDateGTE: f.execDateGTE,
		ExecutionDateLT:  f.execDateLT,
		ExecutionDateLTE: f.execDateLTE,
	}
	if len(args) == 1 {
		q.Ticker = args[0]
	}

	client, ok := newAPIClient()
	if !ok {
		return
	}

	resp, err := client.Splits(ctx, q)
	if err != nil {
		logger.L().Error().Err(err).Msg("request failed")
		exit(1)
		return
	}

	if f.format == "csv" {
		out, err := render.SplitsCSV(resp.Results)
		if err != nil {
			logger.L().Error().Err(err).Msg("render failed")
			exit(1)
			return
		}
		printOut(out)
		return
	}
	out, err := renderValue(resp, f.format)
	if err != nil {
		logger.L().Error().Err(err).Msg("render failed")
		exit(1)
		return
	}
	printOut(out)
}

// runDividends fetches cash dividend declarations for one ticker.
func runDividends(ctx context.Context, args []string, f fetchFlags) {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "Usage: polypulse --mode dividends <ticker>")
		exit(1)
		return
	}
	if !validFormat(f.format) {
		fmt.Fprintf(stderr, "Error: unsupported format %q\n", f.format)
		exit(1)
		return
	}

	limit, ok := modeLimit(f.limit, 10)
	if !ok {
		return
	}

	client, ok := newAPIClient()
	if !ok {
		return
	}

	resp, err := client.Dividends(ctx, args[0], limit)
	if err != nil {
		logger.L().Error().Err(err).Msg("request failed")
		exit(1)
		return
	}

	out, err := renderValue(resp, f.format)
	if err != nil {
		logger.L().Error().Err(err).Msg("render failed")
		exit(1)
		return
	}
	printOut(out)
}

// runNews fetches recent news articles, market-wide or for one ticker.
func runNews(ctx context.Context, args []string, f fetchFlags) {
	if len(args) > 1 {
		fmt.Fprintln(stderr, "Usage: polypulse --mode news [ticker]")
		exit(1)
		return
	}
	if !validFormat(f.format) {
		fmt.Fprintf(stderr, "Error: unsupported format %q\n", f.format)
		exit(1)
		return
	}

	limit, ok := modeLimit(f.limit, 5)
	if !ok {
		return
	}

	q := polygon.NewsQuery{Limit: limit}
	if len(args) == 1 {
		q.Ticker = args[0]
	}

	client, ok := newAPIClient()
	if !ok {
		return
	}

	resp, err := client.News(ctx, q)
	if err != nil {
		logger.L().Error().Err(err).Msg("request failed")
		exit(1)
		return
	}

	out, err := renderValue(resp, f.format)
	if err != nil {
		logger.L().Error().Err(err).Msg("render failed")
		exit(1)
		return
	}
	printOut(out)
}
