package httpserver

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"nexus-export-cache/internal/cache/export"
	"nexus-export-cache/internal/interfaces/mock"
	"nexus-export-cache/internal/models"
)

const testStaleMinutes = 60

func newTestServer(t *testing.T, ctrl *gomock.Controller) (*Server, *mock.MockModLookup) {
	t.Helper()
	cache := mock.NewMockModLookup(ctrl)
	return NewServer(cache, testStaleMinutes, time.Second, time.Second, zaptest.NewLogger(t)), cache
}

func serve(server *Server, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	server.createRouter().ServeHTTP(w, req)
	return w
}

func TestServer_HandleGetMod(t *testing.T) {
	ctrl := gomock.NewController(t)
	server, cache := newTestServer(t, ctrl)

	mod := models.ModExport{ID: 2400, Name: "Content Patcher", Author: "Pathoschild", Version: "2.0.0"}
	cache.EXPECT().TryGetMod(uint32(2400)).Return(mod, true)

	w := serve(server, http.MethodGet, "/mods/2400")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response ModResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.True(t, response.Found)
	require.NotNil(t, response.Mod)
	assert.Equal(t, mod, *response.Mod)
}

func TestServer_HandleGetMod_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	server, cache := newTestServer(t, ctrl)

	cache.EXPECT().TryGetMod(uint32(1)).Return(models.ModExport{}, false)

	w := serve(server, http.MethodGet, "/mods/1")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response ModResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.False(t, response.Found)
	assert.Nil(t, response.Mod)
}

func TestServer_HandleGetMod_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	server, _ := newTestServer(t, ctrl)

	tests := []string{"/mods/abc", "/mods/-1", "/mods/99999999999"}
	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			w := serve(server, http.MethodGet, path)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response ModResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, "Invalid mod ID", response.Error)
		})
	}
}

func TestServer_HandleCacheStatus_Loaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	server, cache := newTestServer(t, ctrl)

	lastUpdated := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	snapshot := &models.FullExport{
		LastUpdated: lastUpdated,
		Data: map[uint32]models.ModExport{
			1: {ID: 1},
			2: {ID: 2},
		},
	}
	cache.EXPECT().IsStale(testStaleMinutes).Return(false)
	cache.EXPECT().Snapshot().Return(snapshot, true)

	w := serve(server, http.MethodGet, "/cache/status")

	assert.Equal(t, http.StatusOK, w.Code)

	var status models.CacheStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.True(t, status.Loaded)
	assert.False(t, status.Stale)
	assert.Equal(t, 2, status.Entries)
	require.NotNil(t, status.LastUpdated)
	assert.True(t, lastUpdated.Equal(*status.LastUpdated))
}

func TestServer_HandleCacheStatus_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	server, cache := newTestServer(t, ctrl)

	cache.EXPECT().IsStale(testStaleMinutes).Return(false)
	cache.EXPECT().Snapshot().Return(nil, false)

	w := serve(server, http.MethodGet, "/cache/status")

	var status models.CacheStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.False(t, status.Loaded)
	assert.Nil(t, status.LastUpdated)
	assert.Equal(t, 0, status.Entries)
}

func TestServer_HandleHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	server, cache := newTestServer(t, ctrl)

	cache.EXPECT().IsLoaded().Return(true)

	w := serve(server, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response["status"])
	assert.Equal(t, true, response["loaded"])
}

func TestServer_Metrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	server, _ := newTestServer(t, ctrl)

	w := serve(server, http.MethodGet, "/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServer_MethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	server, _ := newTestServer(t, ctrl)

	w := serve(server, http.MethodPost, "/mods/1")

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestServer_ServeAndStop(t *testing.T) {
	repo := export.NewMemoryRepository(nil, zap.NewNop())
	repo.SetData(&models.FullExport{
		LastUpdated: time.Now(),
		Data:        map[uint32]models.ModExport{7: {ID: 7, Name: "Test Mod"}},
	})
	server := NewServer(repo, testStaleMinutes, time.Second, time.Second, zaptest.NewLogger(t))

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(listener)
	}()

	url := "http://" + listener.Addr().String() + "/mods/7"
	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(url)
		return err == nil
	}, time.Second, 10*time.Millisecond)
	defer resp.Body.Close()

	var response ModResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	assert.True(t, response.Found)
	assert.Equal(t, "Test Mod", response.Mod.Name)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, server.Stop(ctx))
	assert.NoError(t, <-errCh)
}
