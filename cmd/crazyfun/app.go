package main

import (
	"context"
	"time"

	"github.com/paintmyrock/crazyfun/internal/catalog"
	"github.com/paintmyrock/crazyfun/internal/config"
	"github.com/paintmyrock/crazyfun/internal/game"
	"github.com/paintmyrock/crazyfun/internal/logging"
	"github.com/paintmyrock/crazyfun/internal/storage"
	"github.com/paintmyrock/crazyfun/internal/telemetry"
)

func loadEnvOrExit() config.Env {
	env, err := config.LoadEnv()
	if err != nil {
		logging.Fatal("Invalid environment", err, nil)
	}
	return env
}

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid crazyfun configuration", err, logging.Fields{"config_path": path, "hint": "entity_list entries need id, name, category, elemental_type, base_stats{hp,attack,defense,speed} and move{id,name,type,power}"})
	}
	if !cfg.FromFile {
		logging.Info("config file not found, using embedded catalog", logging.Fields{"config_path": path})
	}
	return cfg
}

func createRegistryOrExit(entities []game.BaseEntity) *catalog.Registry {
	reg, err := catalog.NewRegistry(entities)
	if err != nil {
		logging.Fatal("Invalid entity catalog", err, nil)
	}
	return reg
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{"db_path": dbPath})
	}
	return storage.NewSQLiteRepository(db)
}

// setupTelemetry installs OTLP tracing when enabled. The service keeps
// running without traces if the exporter cannot be created.
func setupTelemetry(ctx context.Context, enabled bool) func() {
	if !enabled {
		return func() {}
	}
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logging.Error("telemetry setup failed, running without traces", err, nil)
		return func() {}
	}
	logging.Info("telemetry enabled", nil)
	return func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			logging.Error("telemetry shutdown failed", err, nil)
		}
	}
}
