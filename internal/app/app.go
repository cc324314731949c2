package app

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/pyweop/polypulse/config"
	"github.com/pyweop/polypulse/internal/api"
	"github.com/pyweop/polypulse/internal/polygon"
	"github.com/pyweop/polypulse/internal/service"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the shared HTTP client with the configured timeout.
//   - Creates the Polygon API client and the market service on top of it.
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (idle connections).
//
// A missing API key is not an initialization error: the server starts and
// reports itself degraded on /readyz until the key is configured.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Shared HTTP client; upstream calls inherit per-request deadlines from
	// the router, the client timeout is the outer bound.
	httpClient := polygon.NewHTTPClient(cfg.Polygon.Timeout)

	// Initialize the Polygon API client
	client := polygon.NewClient(polygon.Config{
		APIKey:  cfg.Polygon.APIKey,
		BaseURL: cfg.Polygon.BaseURL,
	}, httpClient)

	// Initialize service layer (business logic)
	svc := service.NewMarketService(client)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(func() error {
		if cfg.Polygon.APIKey == "" {
			return errors.New("API_KEY not configured")
		}
		return nil
	})
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		httpClient.CloseIdleConnections()
	}

	return router, cleanup, nil
}
