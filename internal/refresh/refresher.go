// Package refresh keeps the export cache in sync with the export API.
//
// The cache repository only answers whether a refresh is worthwhile; the
// Refresher acts on that answer by downloading the export and swapping it
// in, and drops the cached export once it is too old to serve.
package refresh

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"nexus-export-cache/internal/interfaces"
	"nexus-export-cache/internal/metrics"
	"nexus-export-cache/internal/scheduler"
)

// Result is the outcome of a refresh cycle
type Result string

const (
	ResultRefreshed Result = metrics.RefreshRefreshed
	ResultUpToDate  Result = metrics.RefreshUpToDate
	ResultCleared   Result = metrics.RefreshCleared
)

const refreshKey = "export"

// Refresher drives the fetch-and-store cycle for the export cache
type Refresher struct {
	cache        interfaces.ExportCache
	client       interfaces.ExportClient
	staleMinutes int
	logger       *zap.Logger

	group singleflight.Group
	task  *scheduler.PeriodicTask
}

// NewRefresher creates a refresher that runs every interval once started
func NewRefresher(cache interfaces.ExportCache, client interfaces.ExportClient, staleMinutes int, interval time.Duration, logger *zap.Logger) *Refresher {
	r := &Refresher{
		cache:        cache,
		client:       client,
		staleMinutes: staleMinutes,
		logger:       logger,
	}
	r.task = scheduler.New(interval, r.runScheduled, scheduler.WithRunOnStart())
	return r
}

// Refresh runs one refresh cycle. Concurrent calls share a single cycle.
func (r *Refresher) Refresh(ctx context.Context) (Result, error) {
	v, err, shared := r.group.Do(refreshKey, func() (interface{}, error) {
		return r.refresh(ctx)
	})
	if shared {
		r.logger.Debug("Joined in-flight export refresh")
	}
	if err != nil {
		return "", err
	}
	return v.(Result), nil
}

func (r *Refresher) refresh(ctx context.Context) (Result, error) {
	timer := metrics.TimeRefresh()
	defer timer()

	canRefresh, err := r.cache.CanRefreshFrom(ctx, r.client, r.staleMinutes)
	if err != nil {
		metrics.RecordRefresh(metrics.RefreshError)
		return "", fmt.Errorf("failed to check export freshness: %w", err)
	}

	if canRefresh {
		export, err := r.client.FetchFullExport(ctx)
		if err != nil {
			metrics.RecordRefresh(metrics.RefreshError)
			return "", fmt.Errorf("failed to fetch full export: %w", err)
		}

		r.cache.SetData(export)
		metrics.RecordRefresh(metrics.RefreshRefreshed)
		r.logger.Info("Refreshed export cache",
			zap.Int("entries", len(export.Data)),
			zap.Time("last_updated", export.LastUpdated))
		return ResultRefreshed, nil
	}

	if r.cache.IsStale(r.staleMinutes) {
		r.cache.SetData(nil)
		metrics.RecordRefresh(metrics.RefreshCleared)
		r.logger.Warn("Cached export is stale and the export API has nothing newer, clearing cache",
			zap.Int("stale_minutes", r.staleMinutes))
		return ResultCleared, nil
	}

	metrics.RecordRefresh(metrics.RefreshUpToDate)
	r.logger.Debug("Export cache is up to date")
	return ResultUpToDate, nil
}

// runScheduled is the periodic task body; errors are logged and the next tick retries
func (r *Refresher) runScheduled(ctx context.Context) {
	if _, err := r.Refresh(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		r.logger.Error("Export refresh failed", zap.Error(err))
	}
}

// Start begins periodic refreshes, running the first one immediately
func (r *Refresher) Start(ctx context.Context) {
	r.logger.Info("Starting export refresher", zap.Int("stale_minutes", r.staleMinutes))
	r.task.Start(ctx)
}

// Stop stops periodic refreshes and waits for a running cycle to finish
func (r *Refresher) Stop() {
	r.task.Stop()
	r.logger.Info("Stopped export refresher")
}
