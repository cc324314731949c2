package main

//
//  @title           polypulse API
//  @version         1.0
//  @description     Polygon.io market data fetcher & viewer.
//  @termsOfService  https://github.com/pyweop/polypulse
//  @contact.name    API Support
//  @contact.url     https://github.com/pyweop/polypulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        aggregates
//  @tag.description Endpoints for querying OHLCV aggregate bars
//
//  @tag.name        reference
//  @tag.description Ticker details, news, splits, dividends, and financials
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pyweop/polypulse/config"
	_ "github.com/pyweop/polypulse/docs" // swagger docs
	"github.com/pyweop/polypulse/internal/app"
	"github.com/pyweop/polypulse/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., idle connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the polypulse application.
//
// Modes (selected via --mode flag):
//   - aggs:       Fetches OHLCV aggregate bars (default). Takes <ticker> <from> <to>.
//   - details:    Fetches ticker reference details plus the latest related news.
//   - financials: Fetches fundamental filing data for a ticker.
//   - splits:     Fetches historical stock splits, optionally for one ticker.
//   - dividends:  Fetches cash dividend declarations for a ticker.
//   - news:       Fetches recent news, optionally for one ticker.
//   - serve:      Starts the REST viewer exposing the same data over HTTP.
//
// Flags:
//   - --mode:       Execution mode. Default: "aggs".
//   - --format:     Output rendering: dump, json, table (aggs), csv (splits). Default: "dump".
//   - --timespan:   Bar resolution for aggs mode. Default: "day".
//   - --multiplier: Bar size multiplier for aggs mode. Default: 1.
//   - --adjusted:   Split-adjusted prices for aggs mode: true or false. Unset omits the parameter.
//   - --limit:      Maximum records to fetch. 0 selects the mode default.
//   - --timeframe:  Filing timeframe for financials mode: annual, quarterly, or ttm.
//   - --exec-date-gt/-gte/-lt/-lte: Execution date filters for splits mode.
//   - --port:       Port for serve mode. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "aggs", "Mode: aggs, details, financials, splits, dividends, news, or serve")
	format := flag.String("format", "dump", "Output format: dump, json, table (aggs), or csv (splits)")
	timespan := flag.String("timespan", "day", "Aggregate bar resolution: minute, hour, day, week, month, quarter, or year")
	multiplier := flag.Int("multiplier", 1, "Aggregate bar size multiplier")
	adjusted := flag.String("adjusted", "", "Request split-adjusted prices: true or false (unset omits the parameter)")
	limit := flag.Int("limit", 0, "Maximum records to fetch (0 = mode default)")
	timeframe := flag.String("timeframe", "", "Filing timeframe: annual, quarterly, or ttm")
	execDateGT := flag.String("exec-date-gt", "", "Splits executed after this date (YYYY-MM-DD)")
	execDateGTE := flag.String("exec-date-gte", "", "Splits executed on or after this date (YYYY-MM-DD)")
	execDateLT := flag.String("exec-date-lt", "", "Splits executed before this date (YYYY-MM-DD)")
	execDateLTE := flag.String("exec-date-lte", "", "Splits executed on or before this date (YYYY-MM-DD)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for serve mode")
	flag.Parse()

	flags := fetchFlags{
		format:      *format,
		timespan:    *timespan,
		multiplier:  *multiplier,
		adjusted:    *adjusted,
		limit:       *limit,
		timeframe:   *timeframe,
		execDateGT:  *execDateGT,
		execDateGTE: *execDateGTE,
		execDateLT:  *execDateLT,
		execDateLTE: *execDateLTE,
	}

	switch *mode {
	case "aggs":
		runAggs(ctx, flag.Args(), flags)

	case "details":
		runDetails(ctx, flag.Args(), flags)

	case "financials":
		runFinancials(ctx, flag.Args(), flags)

	case "splits":
		runSplits(ctx, flag.Args(), flags)

	case "dividends":
		runDividends(ctx, flag.Args(), flags)

	case "news":
		runNews(ctx, flag.Args(), flags)

	case "serve":
		// Serve mode: start the HTTP viewer
		logger.L().Info().Msg("starting viewer server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
