package main

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"nexus-export-cache/internal/cache/export"
	"nexus-export-cache/internal/client/nexus"
	"nexus-export-cache/internal/config"
	"nexus-export-cache/internal/httpserver"
	"nexus-export-cache/internal/refresh"
	"nexus-export-cache/internal/staleness"
)

// CompositionRoot holds all application dependencies and wires them
// together in one place.
type CompositionRoot struct {
	// Configuration
	Config *config.Config
	Logger *zap.Logger

	// Export components
	ExportCache  *export.MemoryRepository
	ExportClient *nexus.Client

	// Services
	Refresher  *refresh.Refresher
	HTTPServer *httpserver.Server
}

// NewCompositionRoot creates and initializes all application dependencies.
//
// Initialization order:
// 1. Logger (needed by all other components)
// 2. Configuration
// 3. Export cache and API client
// 4. Refresher
// 5. HTTP Server
func NewCompositionRoot() (*CompositionRoot, error) {
	root := &CompositionRoot{}

	// Initialize logger first
	if err := root.initLogger(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Load configuration
	if err := root.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	root.initExportComponents()
	root.initServices()

	return root, nil
}

// initLogger initializes the application logger
func (r *CompositionRoot) initLogger() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	r.Logger = logger
	return nil
}

// loadConfig loads the application configuration and applies env overrides
func (r *CompositionRoot) loadConfig() error {
	cfg, err := config.LoadConfig(GetConfigPath(), r.Logger)
	if err != nil {
		return err
	}

	applyEnvOverrides(cfg, r.Logger)

	if err := cfg.Validate(); err != nil {
		return err
	}

	r.Config = cfg
	return nil
}

// initExportComponents initializes the export cache and the API client
func (r *CompositionRoot) initExportComponents() {
	r.ExportCache = export.NewMemoryRepository(staleness.NewPolicy(nil), r.Logger)
	r.ExportClient = nexus.NewClient(&r.Config.Client, &http.Client{}, r.Logger)

	r.Logger.Info("Export cache initialized",
		zap.String("export_url", r.Config.Client.BaseURL),
		zap.Int("stale_minutes", r.Config.Refresh.StaleMinutes))
}

// initServices initializes the refresher and the HTTP server
func (r *CompositionRoot) initServices() {
	r.Refresher = refresh.NewRefresher(
		r.ExportCache,
		r.ExportClient,
		r.Config.Refresh.StaleMinutes,
		r.Config.GetRefreshInterval(),
		r.Logger,
	)

	r.HTTPServer = httpserver.NewServer(
		r.ExportCache,
		r.Config.Refresh.StaleMinutes,
		r.Config.GetReadTimeout(),
		r.Config.GetWriteTimeout(),
		r.Logger,
	)
}

// Cleanup performs cleanup of all resources
func (r *CompositionRoot) Cleanup() error {
	if r.Refresher != nil {
		r.Refresher.Stop()
	}

	// Sync logger
	if r.Logger != nil {
		if err := r.Logger.Sync(); err != nil {
			return fmt.Errorf("failed to sync logger: %w", err)
		}
	}

	return nil
}
