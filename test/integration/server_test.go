package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carboncentrik/footprint/internal/config"
	"github.com/carboncentrik/footprint/internal/engine"
	"github.com/carboncentrik/footprint/internal/history"
	"github.com/carboncentrik/footprint/internal/model"
	"github.com/carboncentrik/footprint/internal/server"
)

// newAPIRouter assembles the full stack the serve command runs: artifacts
// loaded from disk, a file-backed store, the engine, and the gin router.
func newAPIRouter(t *testing.T, kg float64) http.Handler {
	t.Helper()

	scalerPath, modelPath := writeArtifacts(t, t.TempDir(), kg)
	est, err := model.Load(scalerPath, modelPath)
	require.NoError(t, err)

	eng := engine.New(est, history.NewStore(t.TempDir()))
	cfg := config.ServerConfig{
		Addr:            ":0",
		AllowedOrigins:  []string{"*"},
		ShutdownTimeout: time.Second,
	}
	return server.New(eng, cfg, zerolog.Nop()).Router()
}

func postJSON(t *testing.T, h http.Handler, path string, body any, user string) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func getJSON(t *testing.T, h http.Handler, path, user string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// TestAPIEstimateUsesLoadedArtifacts runs a real artifact file through the
// HTTP estimate endpoint.
func TestAPIEstimateUsesLoadedArtifacts(t *testing.T) {
	router := newAPIRouter(t, 2482)

	w := postJSON(t, router, "/api/v1/estimate", surveyForm(), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result engine.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 2482, result.CarbonFootprint)
	assert.Equal(t, 6, result.TreesOwed)
	assert.NotEmpty(t, result.Recommendations)
}

// TestAPISaveThenDashboard saves through the API and reads the dashboard
// back for the same user.
func TestAPISaveThenDashboard(t *testing.T) {
	router := newAPIRouter(t, 2482)

	w := postJSON(t, router, "/api/v1/save", surveyForm(), "alice")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = getJSON(t, router, "/api/v1/dashboard", "alice")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var dashboard engine.Dashboard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dashboard))
	assert.Equal(t, "alice", dashboard.UserID)
	assert.Equal(t, 2482, dashboard.Latest.CarbonFootprint)
	assert.Nil(t, dashboard.FootprintDelta, "single record has no delta")

	w = getJSON(t, router, "/api/v1/dashboard", "bob")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestAPIRejectsBadCategory verifies the validation contract over HTTP.
func TestAPIRejectsBadCategory(t *testing.T) {
	router := newAPIRouter(t, 2482)

	form := surveyForm()
	form.Diet = "carnivore"

	w := postJSON(t, router, "/api/v1/estimate", form, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_category")
}
