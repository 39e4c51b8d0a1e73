// Package server assembles the gin router and its dependencies from a
// loaded Config, shared by the HTTP entrypoint and the CLI's "serve"
// subcommand.
package server

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"powerplant-dispatch/internal/actuation"
	"powerplant-dispatch/internal/api/handlers"
	"powerplant-dispatch/internal/api/middleware"
	"powerplant-dispatch/internal/config"
	"powerplant-dispatch/internal/history"
	"powerplant-dispatch/internal/stream"
	"powerplant-dispatch/internal/tracing"
)

// Run builds the router for cfg and serves until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	otlpEndpoint := ""
	if cfg.Tracing.Enabled {
		otlpEndpoint = cfg.Tracing.OTLPEndpoint
	}
	shutdownTracing, err := tracing.Setup(ctx, otlpEndpoint)
	if err != nil {
		return err
	}
	defer shutdownTracing(context.Background())

	historyStore, err := history.Open(cfg.History.DSN)
	if err != nil {
		return err
	}
	defer historyStore.Close()

	broadcaster := stream.NewBroadcaster()
	actuator := actuation.NewActuator(nil)

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	planHandler := handlers.NewPlanHandler(cfg.Fuels, historyStore, broadcaster, actuator)
	historyHandler := handlers.NewHistoryHandler(historyStore)
	dashboardHandler := handlers.NewDashboardHandler(historyStore)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/productionplan", planHandler.Plan)
	router.GET("/productionplan/defaults", planHandler.GetDefaults)
	router.GET("/productionplan/stream", broadcaster.Handle)

	router.GET("/history", historyHandler.List)
	router.GET("/dashboard", dashboardHandler.Show)

	log.Printf("Starting powerplant-dispatch on %s", cfg.Server.Addr)
	return router.Run(cfg.Server.Addr)
}
