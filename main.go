// File: mindspace/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"mindspace/config"
	"mindspace/handlers"
	"mindspace/middleware"
	"mindspace/platform"
	"mindspace/routes"
	"mindspace/services/booking"
	"mindspace/services/catalog"
	"mindspace/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()
	utils.InitRosterCache()

	platformClient := platform.NewClient(config.AppConfig.PlatformAPIURL, config.AppConfig.PlatformAPITimeout)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	sessionService := &booking.DefaultSessionService{
		Platform:    platformClient,
		Cache:       utils.GetSessionCacheClient(),
		RosterCache: utils.GetRosterCacheClient(),
		SessionTTL:  config.AppConfig.BookingSessionTTL,
		DemoMode:    config.AppConfig.DemoMode,
		Logger:      logger,
	}

	engine := catalog.NewEngine(config.AppConfig.ResourceCatalogPath, logger)
	libraryService := catalog.NewLibraryService(engine, catalog.NewRealClock(), logger)

	bookingHandler := handlers.NewBookingHandler(sessionService, logger)
	catalogHandler := handlers.NewCatalogHandler(libraryService, logger)

	routes.RegisterRoutes(router, bookingHandler, catalogHandler)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionCacheClient(), utils.GetRosterCacheClient()},
		platformClient.Ping,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
