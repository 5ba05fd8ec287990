package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/amitbasuri/numstats-go/internal/api"
	"github.com/amitbasuri/numstats-go/internal/config"
	"github.com/amitbasuri/numstats-go/internal/statistics"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	// Load the dotenv if exists
	_ = godotenv.Load()

	var env config.Server
	err := envconfig.Process("", &env)
	if err != nil {
		log.Fatal("Cannot load env:", err)
	}
	if err := env.Validate(); err != nil {
		log.Fatal("Invalid config:", err)
	}

	// Setup structured logging
	level, _ := env.SlogLevel()
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))

	slog.Info("Starting Statistics API Server")

	gin.SetMode(env.GinMode)

	// Initialize calculators and request parsing
	registry := statistics.DefaultRegistry()
	parser := statistics.NewParser(env.StrictParsing)
	slog.Info("Registered statistics", "operations", registry.List(), "strict_parsing", env.StrictParsing)

	// Initialize API handler and routes
	apiHandler := api.NewHandler(registry, parser, api.NewMetrics())
	r := api.NewRouter(apiHandler)

	srv := &http.Server{
		Addr:              env.Addr(),
		Handler:           api.NormalizePath(r),
		ReadHeaderTimeout: env.ReadHeaderTimeoutDuration(),
	}

	// Start HTTP server in goroutine
	go func() {
		slog.Info("HTTP server listening", "port", env.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error:", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down API server...")

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), env.ShutdownTimeoutDuration())
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	slog.Info("API server exited gracefully")
}
