package main

import (
	"flag"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/config"
	"github.com/FallenDelta563/EMOR-OS-V1/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "absolute path to a JSON config file")
	flag.Parse()

	// Load configuration
	var cfg *config.Config
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			panic(err)
		}
		cfg = loaded
	} else {
		cfg = config.DefaultConfig()
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		panic(err)
	}
	defer logger.Info("Server shutting down")

	// Setup and start server
	srv, err := SetupServer(cfg)
	if err != nil {
		logger.Fatal("Failed to setup server", zap.Error(err))
	}

	if err := StartServer(srv); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
