package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"nexus-export-cache/internal/models"
)

// handleGetMod handles mod lookups by ID
func (s *Server) handleGetMod(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		s.writeErrorResponse(w, "Invalid mod ID", http.StatusBadRequest)
		return
	}

	mod, found := s.cache.TryGetMod(uint32(id))
	if !found {
		s.writeStatusResponse(w, &ModResponse{Success: true, Found: false}, http.StatusNotFound)
		return
	}

	s.writeResponse(w, &ModResponse{
		Success: true,
		Found:   true,
		Mod:     &mod,
	})
}

// handleCacheStatus reports whether the export is loaded and how old it is
func (s *Server) handleCacheStatus(w http.ResponseWriter, r *http.Request) {
	status := models.CacheStatus{
		Stale: s.cache.IsStale(s.staleMinutes),
	}

	if snapshot, ok := s.cache.Snapshot(); ok {
		lastUpdated := snapshot.LastUpdated
		status.Loaded = true
		status.LastUpdated = &lastUpdated
		status.Entries = len(snapshot.Data)
	}

	s.writeResponse(w, &status)
}
