package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/paintmyrock/crazyfun/internal/api"
	"github.com/paintmyrock/crazyfun/internal/constants"
	"github.com/paintmyrock/crazyfun/internal/engine"
	"github.com/paintmyrock/crazyfun/internal/logging"
	"github.com/paintmyrock/crazyfun/internal/service"
	"github.com/paintmyrock/crazyfun/internal/version"
)

func main() {
	// A .env file is optional; variables may be set directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logging.Warn(".env file not loaded", logging.Fields{"reason": err.Error()})
	}

	env := loadEnvOrExit()
	cfg := loadConfigOrExit(env.ConfigPath)
	if env.Addr != "" {
		cfg.ServerAddress = env.Addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry := setupTelemetry(ctx, env.Telemetry)
	defer shutdownTelemetry()

	registry := createRegistryOrExit(cfg.Entities)
	repo := createRepositoryOrExit(env.DBPath)
	arena := service.NewArena(registry, engine.New(nil), nil, cfg.OpponentCount)
	handler := api.NewHandler(repo, registry, arena)

	router := gin.Default()
	api.RegisterRoutes(router, handler)

	logging.Info("Server started", logging.Fields{
		constants.LogFieldAddr:  cfg.ServerAddress,
		constants.LogFieldCount: registry.Count(),
		"version":               version.Version,
	})
	if err := runServer(ctx, cfg.ServerAddress, router); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
	logging.Info("Server stopped", nil)
}
