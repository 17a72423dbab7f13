package interfaces

import (
	"context"
	"time"

	"nexus-export-cache/internal/models"
)

//go:generate mockgen -package=mock -source=export_client.go -destination=mock/export_client.go

// ExportClient defines the contract for fetching the mod export from the remote API
type ExportClient interface {
	// FetchLastModifiedDate returns when the remote export was last updated
	FetchLastModifiedDate(ctx context.Context) (time.Time, error)
	// FetchFullExport downloads the complete export
	FetchFullExport(ctx context.Context) (*models.FullExport, error)
}
