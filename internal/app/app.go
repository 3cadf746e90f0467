package app

import (
	"github.com/gin-gonic/gin"

	"github.com/Mukesh881/financial-analysis-endpoints/config"
	"github.com/Mukesh881/financial-analysis-endpoints/internal/api"
	"github.com/Mukesh881/financial-analysis-endpoints/internal/provider"
	"github.com/Mukesh881/financial-analysis-endpoints/internal/service"
)

// providerCtor is an indirection for creating the market data provider;
// tests can override this to inject a stub.
var providerCtor = func(cfg config.Config) provider.MarketData {
	return provider.NewYahoo(cfg.Yahoo)
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Creates the market data provider (Yahoo Finance client).
//   - Initializes the service layer (validation-free business logic).
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Market data provider (external collaborator)
	data := providerCtor(cfg)

	// Service layer (orchestration and derivation)
	svc := service.NewStockService(data)

	// HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(data.Ping)
	healthHandler.Register(router)

	// No pooled resources to release; kept for symmetry with shutdown flow.
	cleanup := func() {}

	return router, cleanup, nil
}
