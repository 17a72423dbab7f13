package export

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"nexus-export-cache/internal/interfaces"
	"nexus-export-cache/internal/metrics"
	"nexus-export-cache/internal/models"
	"nexus-export-cache/internal/staleness"
)

// Ensure MemoryRepository implements interfaces.ExportCache
var _ interfaces.ExportCache = (*MemoryRepository)(nil)

// MemoryRepository keeps the mod export in memory.
//
// The export is held behind an atomic pointer and replaced as a whole, so
// readers always see either the previous or the new snapshot.
type MemoryRepository struct {
	data   atomic.Pointer[models.FullExport]
	policy *staleness.Policy
	logger *zap.Logger
}

// NewMemoryRepository creates an empty export cache
func NewMemoryRepository(policy *staleness.Policy, logger *zap.Logger) *MemoryRepository {
	if policy == nil {
		policy = staleness.NewPolicy(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemoryRepository{
		policy: policy,
		logger: logger,
	}
}

// IsLoaded returns true if a non-empty export is cached
func (r *MemoryRepository) IsLoaded() bool {
	return isLoaded(r.data.Load())
}

// IsStale returns true if the cached export is older than staleMinutes.
// An empty cache is never stale; use IsLoaded to tell it apart.
func (r *MemoryRepository) IsStale(staleMinutes int) bool {
	data := r.data.Load()
	if data == nil {
		return false
	}
	return r.policy.IsStale(data.LastUpdated, staleMinutes)
}

// CanRefreshFrom fetches the server's last-modified date and returns true if
// the server export is still fresh and newer than the cached one. Client
// errors are returned as-is; the cache is not touched.
func (r *MemoryRepository) CanRefreshFrom(ctx context.Context, client interfaces.ExportClient, staleMinutes int) (bool, error) {
	serverLastModified, err := client.FetchLastModifiedDate(ctx)
	if err != nil {
		return false, err
	}

	if r.policy.IsStale(serverLastModified, staleMinutes) {
		r.logger.Debug("Export API data is stale, skipping refresh",
			zap.Time("server_last_modified", serverLastModified),
			zap.Int("stale_minutes", staleMinutes))
		return false, nil
	}

	data := r.data.Load()
	if !isLoaded(data) {
		return true, nil
	}

	return data.LastUpdated.Before(serverLastModified), nil
}

// TryGetMod returns the cached mod with the given ID
func (r *MemoryRepository) TryGetMod(id uint32) (models.ModExport, bool) {
	data := r.data.Load()
	if data == nil {
		metrics.RecordLookup(false)
		return models.ModExport{}, false
	}

	mod, found := data.Data[id]
	metrics.RecordLookup(found)
	return mod, found
}

// Snapshot returns the cached export if one is loaded
func (r *MemoryRepository) Snapshot() (*models.FullExport, bool) {
	data := r.data.Load()
	if !isLoaded(data) {
		return nil, false
	}
	return data, true
}

// SetData replaces the cached export. A nil export clears the cache.
func (r *MemoryRepository) SetData(export *models.FullExport) {
	r.data.Store(export)

	if export == nil {
		metrics.UpdateSnapshot(0, time.Time{})
		r.logger.Debug("Cleared export cache")
		return
	}

	metrics.UpdateSnapshot(len(export.Data), export.LastUpdated)
	r.logger.Debug("Replaced export cache",
		zap.Int("entries", len(export.Data)),
		zap.Time("last_updated", export.LastUpdated))
}

func isLoaded(data *models.FullExport) bool {
	return data != nil && len(data.Data) > 0
}
