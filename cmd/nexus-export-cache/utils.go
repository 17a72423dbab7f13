package main

import (
	"os"

	"go.uber.org/zap"

	"nexus-export-cache/internal/config"
)

// GetConfigPath returns the config file path from EXPORT_CACHE_CONFIG_FILE or the default
func GetConfigPath() string {
	configPath := os.Getenv("EXPORT_CACHE_CONFIG_FILE")
	if configPath == "" {
		configPath = "/app/export_cache.yaml"
	}
	return configPath
}

// applyEnvOverrides lets the environment override selected config values:
// EXPORT_API_URL for the export URL and EXPORT_CACHE_LISTEN_ADDR for the listen address.
func applyEnvOverrides(cfg *config.Config, logger *zap.Logger) {
	if url := os.Getenv("EXPORT_API_URL"); url != "" {
		logger.Debug("Using export API URL from environment variable")
		cfg.Client.BaseURL = url
	}

	if addr := os.Getenv("EXPORT_CACHE_LISTEN_ADDR"); addr != "" {
		logger.Debug("Using listen address from environment variable", zap.String("addr", addr))
		cfg.Server.ListenAddr = addr
	}
}
