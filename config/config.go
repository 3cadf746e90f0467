package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings and the Yahoo Finance provider connection details.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	YAHOO_BASE_URL=https://query2.finance.yahoo.com
//	YAHOO_TIMEOUT_SECONDS=30
type Config struct {
	Server ServerConfig // HTTP server configuration
	Yahoo  YahooConfig  // Yahoo Finance provider settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// YahooConfig defines connection details for the Yahoo Finance data provider.
//
// Fields:
//   - BaseURL: base URL of the quoteSummary API; overridable so tests can
//     point the client at a local stub server.
//   - TimeoutSeconds: per-request timeout for provider HTTP calls.
type YahooConfig struct {
	BaseURL        string
	TimeoutSeconds int
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
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("YAHOO_BASE_URL", "https://query2.finance.yahoo.com")
	viper.SetDefault("YAHOO_TIMEOUT_SECONDS", 30)

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
		Yahoo: YahooConfig{
			BaseURL:        viper.GetString("YAHOO_BASE_URL"),
			TimeoutSeconds: viper.GetInt("YAHOO_TIMEOUT_SECONDS"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Yahoo.BaseURL == "" {
		missing = append(missing, "YAHOO_BASE_URL")
	}
	if AppConfig.Yahoo.TimeoutSeconds <= 0 {
		missing = append(missing, "YAHOO_TIMEOUT_SECONDS")
	}

	if len(missing) > 0 {
		log.Fatalf("Missing required environment variables: %v\n", missing)
	}
}
