package interfaces

import (
	"context"

	"nexus-export-cache/internal/models"
)

//go:generate mockgen -package=mock -source=export_cache.go -destination=mock/export_cache.go

// ModLookup is the read side of the export cache
type ModLookup interface {
	// IsLoaded returns true if a non-empty export is cached
	IsLoaded() bool
	// IsStale returns true if the cached export is older than staleMinutes.
	// An empty cache is never stale.
	IsStale(staleMinutes int) bool
	// TryGetMod returns the cached mod with the given ID
	TryGetMod(id uint32) (models.ModExport, bool)
	// Snapshot returns the cached export if one is loaded
	Snapshot() (*models.FullExport, bool)
}

// ExportCache defines the contract for the export cache repository
type ExportCache interface {
	ModLookup

	// CanRefreshFrom returns whether the cache should be refreshed from the
	// export API, based on the server's last-modified date.
	CanRefreshFrom(ctx context.Context, client ExportClient, staleMinutes int) (bool, error)
	// SetData replaces the cached export. A nil export clears the cache.
	SetData(export *models.FullExport)
}
