package httpserver

import "nexus-export-cache/internal/models"

// ModResponse represents a mod lookup response
type ModResponse struct {
	Success bool              `json:"success"`
	Found   bool              `json:"found"`
	Mod     *models.ModExport `json:"mod,omitempty"`
	Error   string            `json:"error,omitempty"`
}
