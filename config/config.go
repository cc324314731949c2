package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings and Polygon API access details.
//
// Example YAML/ENV equivalent:
//
//	API_KEY=pk_live_xxx
//	POLYGON_BASE_URL=https://api.polygon.io
//	SERVER_PORT=8080
//	HTTP_TIMEOUT_SECONDS=0
type Config struct {
	Server  ServerConfig  // HTTP server configuration (serve mode)
	Polygon PolygonConfig // Polygon.io API access settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// PolygonConfig defines access details for the Polygon.io REST API.
//
// Fields:
//   - APIKey: the provider credential, sent as the apiKey query parameter.
//     No default and no format validation; operations that reach the network
//     check its presence themselves so that usage errors are reported first.
//   - BaseURL: scheme://host prefix of the API (default https://api.polygon.io).
//     Overriding it points the client at a mock server in tests.
//   - Timeout: overall HTTP client timeout. Zero means no timeout: a fetch
//     blocks until the transport gives up or the response completes.
type PolygonConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all fields that have one. API_KEY has no default:
//     a missing key is a per-operation configuration error, not a startup
//     failure.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure fields with defaults were not blanked out.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("POLYGON_BASE_URL", "https://api.polygon.io")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 0)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Polygon: PolygonConfig{
			APIKey:  viper.GetString("API_KEY"),
			BaseURL: viper.GetString("POLYGON_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("HTTP_TIMEOUT_SECONDS")) * time.Second,
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures defaulted variables were not explicitly blanked and
// terminates the application if they were.
//
// This avoids unexpected runtime failures due to incomplete configuration.
// API_KEY is NOT checked here: wrong argument counts must be reported before
// a missing key, so each mode performs its own key check right before the
// first network call.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Polygon.BaseURL == "" {
		missing = append(missing, "POLYGON_BASE_URL")
	}

	if len(missing) > 0 {
		log.Fatalf("Missing required environment variables: %v\n", missing)
	}
}
