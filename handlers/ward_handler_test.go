package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ward_dashboard/config"
	"ward_dashboard/registry"
)

func newTestServer(t *testing.T) (*registry.Registry, *mux.Router) {
	t.Helper()

	config.InitCache()
	reg := registry.NewSeeded(50, 1)
	reg.OnChange(config.ClearAllCaches)

	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()
	New(reg, true).RegisterRoutes(api)

	return reg, router
}

func doRequest(t *testing.T, router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func TestGetAllWards(t *testing.T) {
	_, router := newTestServer(t)

	rec := doRequest(t, router, "GET", "/api/v1/wards", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	payload := decodeBody(t, rec)
	assert.EqualValues(t, 50, payload["count"])
	wards, ok := payload["wards"].([]interface{})
	require.True(t, ok)
	assert.Len(t, wards, 50)
}

func TestGetWardByID(t *testing.T) {
	_, router := newTestServer(t)

	rec := doRequest(t, router, "GET", "/api/v1/wards/001", "")
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	ward := payload["ward"].(map[string]interface{})
	assert.Equal(t, "001", ward["wardId"])
	assert.Equal(t, "WD001", ward["wardCode"])
	assert.NotEmpty(t, payload["aqiClass"])
	assert.NotEmpty(t, payload["scoreClass"])
}

func TestGetWardByIDNotFound(t *testing.T) {
	_, router := newTestServer(t)

	rec := doRequest(t, router, "GET", "/api/v1/wards/999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	payload := decodeBody(t, rec)
	assert.Equal(t, "Ward not found", payload["error"])
	assert.EqualValues(t, http.StatusNotFound, payload["code"])
}

func TestSearchWards(t *testing.T) {
	_, router := newTestServer(t)

	rec := doRequest(t, router, "GET", "/api/v1/wards/search?q=wd001", "")
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	assert.EqualValues(t, 1, payload["count"])

	// Cached second hit returns the same payload
	rec2 := doRequest(t, router, "GET", "/api/v1/wards/search?q=wd001", "")
	require.Equal(t, http.StatusOK, rec2.Code)
	assert.EqualValues(t, 1, decodeBody(t, rec2)["count"])
}

func TestSearchWardsRequiresQuery(t *testing.T) {
	_, router := newTestServer(t)

	rec := doRequest(t, router, "GET", "/api/v1/wards/search", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetWardsByZone(t *testing.T) {
	_, router := newTestServer(t)

	rec := doRequest(t, router, "GET", "/api/v1/wards/zone/central", "")
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	wards := payload["wards"].([]interface{})
	for _, raw := range wards {
		ward := raw.(map[string]interface{})
		assert.Contains(t, strings.ToLower(ward["zone"].(string)), "central")
	}
}

func TestGetTopWards(t *testing.T) {
	_, router := newTestServer(t)

	rec := doRequest(t, router, "GET", "/api/v1/wards/top?limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	wards := payload["wards"].([]interface{})
	require.Len(t, wards, 5)

	prev := 101.0
	for _, raw := range wards {
		score := raw.(map[string]interface{})["pollutionScore"].(float64)
		assert.LessOrEqual(t, score, prev)
		prev = score
	}
}

func TestGetBottomWards(t *testing.T) {
	_, router := newTestServer(t)

	rec := doRequest(t, router, "GET", "/api/v1/wards/bottom?limit=3", "")
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	wards := payload["wards"].([]interface{})
	require.Len(t, wards, 3)

	prev := -1.0
	for _, raw := range wards {
		score := raw.(map[string]interface{})["pollutionScore"].(float64)
		assert.GreaterOrEqual(t, score, prev)
		prev = score
	}
}

func TestLeaderboardCacheFlushedOnMutation(t *testing.T) {
	reg, router := newTestServer(t)

	rec := doRequest(t, router, "GET", "/api/v1/wards/bottom?limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	first := decodeBody(t, rec)["wards"].([]interface{})[0].(map[string]interface{})
	worstID := first["wardId"].(string)

	// Push the worst ward's AQI around until its score moves, then the
	// cached leaderboard must reflect the new score.
	var moved bool
	for i := 0; i < 100 && !moved; i++ {
		reg.UpdateLiveData(worstID)
		ward, _ := reg.GetByID(worstID)
		moved = int(first["pollutionScore"].(float64)) != ward.PollutionScore
	}
	if !moved {
		t.Skip("score never moved under perturbation")
	}

	rec2 := doRequest(t, router, "GET", "/api/v1/wards/bottom?limit=1", "")
	second := decodeBody(t, rec2)["wards"].([]interface{})[0].(map[string]interface{})
	if second["wardId"].(string) == worstID {
		assert.NotEqual(t, first["pollutionScore"], second["pollutionScore"])
	}
}

func TestGetNearbyWards(t *testing.T) {
	_, router := newTestServer(t)

	rec := doRequest(t, router, "GET", "/api/v1/wards/001/nearby?limit=3", "")
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	nearby := payload["nearby"].([]interface{})
	require.Len(t, nearby, 3)

	prev := -1.0
	for _, raw := range nearby {
		entry := raw.(map[string]interface{})
		assert.NotEqual(t, "001", entry["wardId"])
		distance := entry["distance"].(float64)
		assert.GreaterOrEqual(t, distance, prev)
		prev = distance
	}
}

func TestTriggerLiveUpdate(t *testing.T) {
	_, router := newTestServer(t)

	rec := doRequest(t, router, "POST", "/api/v1/wards/001/live-update", "")
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	ward := payload["ward"].(map[string]interface{})
	assert.Equal(t, "001", ward["wardId"])

	rec404 := doRequest(t, router, "POST", "/api/v1/wards/999/live-update", "")
	assert.Equal(t, http.StatusNotFound, rec404.Code)
}

func TestHealthEndpoint(t *testing.T) {
	_, router := newTestServer(t)

	rec := doRequest(t, router, "GET", "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
