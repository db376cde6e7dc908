package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/halstrom/app-registry/api"
	"github.com/halstrom/app-registry/config"
	"github.com/halstrom/app-registry/db"
	"github.com/halstrom/app-registry/logging"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Init(cfg.Logging.Level, cfg.Logging.Format)

	database, err := db.Open(cfg.Database.Path, cfg.Database.SeedPath)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	slog.Info("database initialized", "path", cfg.Database.Path)

	server := api.NewServer(cfg, database)

	slog.Info("starting app registry", "version", api.Version)

	if err := server.Run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
