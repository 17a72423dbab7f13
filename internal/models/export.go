package models

import "time"

// FullExport is a complete snapshot of the mod export API.
// A snapshot is never mutated after it is handed to the cache.
type FullExport struct {
	// LastUpdated is when the export API produced this snapshot. It comes
	// from the Last-Modified response header, not the body.
	LastUpdated time.Time `json:"-"`

	// Data maps mod IDs to their exported metadata.
	Data map[uint32]ModExport `json:"data"`
}

// ModExport is the metadata published for one mod
type ModExport struct {
	ID         uint32          `json:"mod_id"`
	Name       string          `json:"name"`
	Summary    string          `json:"summary,omitempty"`
	Author     string          `json:"author"`
	Version    string          `json:"version"`
	CategoryID int             `json:"category_id"`
	Adult      bool            `json:"adult"`
	Published  bool            `json:"published"`
	Updated    int64           `json:"updated"` // unix seconds
	Files      []ModFileExport `json:"files,omitempty"`
}

// ModFileExport is a downloadable file attached to a mod
type ModFileExport struct {
	ID         uint64 `json:"file_id"`
	Name       string `json:"name"`
	Version    string `json:"version"`
	CategoryID int    `json:"category_id"`
}

// CacheStatus describes the current cache state for status endpoints
type CacheStatus struct {
	Loaded      bool       `json:"loaded"`
	Stale       bool       `json:"stale"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
	Entries     int        `json:"entries"`
}
