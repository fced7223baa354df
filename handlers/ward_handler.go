package handlers

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"ward_dashboard/config"
	"ward_dashboard/models"
	"ward_dashboard/registry"
	"ward_dashboard/utils"
)

const defaultLeaderboardLimit = 10

// GetAllWards returns the full ward list for the map view.
func (h *Handler) GetAllWards(w http.ResponseWriter, r *http.Request) {
	wards := h.registry.GetAll()

	w.Header().Set("Cache-Control", "public, max-age=10")
	sendJSONResponse(w, http.StatusOK, map[string]interface{}{
		"wards":     wards,
		"count":     len(wards),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// GetWardByID returns a single ward with its display classes attached.
func (h *Handler) GetWardByID(w http.ResponseWriter, r *http.Request) {
	wardID := mux.Vars(r)["id"]

	ward, ok := h.registry.GetByID(wardID)
	if !ok {
		sendErrorResponse(w, "Ward not found", http.StatusNotFound)
		return
	}

	sendJSONResponse(w, http.StatusOK, map[string]interface{}{
		"ward":       ward,
		"aqiClass":   registry.AQIClass(ward.Pollution.Air.AQI),
		"scoreClass": registry.ScoreClass(ward.PollutionScore),
		"timestamp":  time.Now().Format(time.RFC3339),
	})
}

// SearchWards matches the query against ward name, code and zone.
func (h *Handler) SearchWards(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		sendErrorResponse(w, "Query parameter 'q' is required", http.StatusBadRequest)
		return
	}

	cacheKey := config.GetCacheKey("search", query)
	if h.cacheEnabled {
		if cached, found := config.SearchCache.Get(cacheKey); found {
			sendJSONResponse(w, http.StatusOK, cached)
			return
		}
	}

	wards := h.registry.Search(query)
	response := map[string]interface{}{
		"wards":     wards,
		"count":     len(wards),
		"query":     query,
		"timestamp": time.Now().Format(time.RFC3339),
	}

	if h.cacheEnabled {
		config.SearchCache.SetDefault(cacheKey, response)
	}
	sendJSONResponse(w, http.StatusOK, response)
}

// GetWardsByZone filters wards by a case-insensitive zone substring.
func (h *Handler) GetWardsByZone(w http.ResponseWriter, r *http.Request) {
	zone := mux.Vars(r)["zone"]

	wards := h.registry.GetByZone(zone)
	sendJSONResponse(w, http.StatusOK, map[string]interface{}{
		"wards":     wards,
		"count":     len(wards),
		"zone":      zone,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// GetTopWards serves the leaderboard's best performers.
func (h *Handler) GetTopWards(w http.ResponseWriter, r *http.Request) {
	h.serveLeaderboard(w, r, "top", h.registry.Top)
}

// GetBottomWards serves the wards needing urgent attention.
func (h *Handler) GetBottomWards(w http.ResponseWriter, r *http.Request) {
	h.serveLeaderboard(w, r, "bottom", h.registry.Bottom)
}

func (h *Handler) serveLeaderboard(w http.ResponseWriter, r *http.Request, name string, fetch func(int) []models.Ward) {
	limit := parseLimit(r, defaultLeaderboardLimit)

	cacheKey := config.GetCacheKey(name, limit)
	if h.cacheEnabled {
		if cached, found := config.LeaderboardCache.Get(cacheKey); found {
			sendJSONResponse(w, http.StatusOK, cached)
			return
		}
	}

	wards := fetch(limit)
	response := map[string]interface{}{
		"wards":     wards,
		"count":     len(wards),
		"timestamp": time.Now().Format(time.RFC3339),
	}

	if h.cacheEnabled {
		config.LeaderboardCache.SetDefault(cacheKey, response)
	}
	sendJSONResponse(w, http.StatusOK, response)
}

type nearbyWard struct {
	WardID   string  `json:"wardId"`
	WardName string  `json:"wardName"`
	Zone     string  `json:"zone"`
	Distance float64 `json:"distance"` // km
	AQI      int     `json:"aqi"`
	Score    int     `json:"pollutionScore"`
}

// GetNearbyWards lists the wards closest to the given one by straight-line
// distance between their coordinates.
func (h *Handler) GetNearbyWards(w http.ResponseWriter, r *http.Request) {
	wardID := mux.Vars(r)["id"]

	origin, ok := h.registry.GetByID(wardID)
	if !ok {
		sendErrorResponse(w, "Ward not found", http.StatusNotFound)
		return
	}

	limit := parseLimit(r, 5)
	neighbours := make([]nearbyWard, 0)
	for _, ward := range h.registry.GetAll() {
		if ward.WardID == origin.WardID {
			continue
		}
		distance := utils.CalculateDistance(
			origin.Coordinates.Lat, origin.Coordinates.Lng,
			ward.Coordinates.Lat, ward.Coordinates.Lng,
		)
		neighbours = append(neighbours, nearbyWard{
			WardID:   ward.WardID,
			WardName: ward.WardName,
			Zone:     ward.Zone,
			Distance: distance,
			AQI:      ward.Pollution.Air.AQI,
			Score:    ward.PollutionScore,
		})
	}

	sort.Slice(neighbours, func(i, j int) bool {
		return neighbours[i].Distance < neighbours[j].Distance
	})
	if limit < len(neighbours) {
		neighbours = neighbours[:limit]
	}

	sendJSONResponse(w, http.StatusOK, map[string]interface{}{
		"ward":      origin.WardID,
		"nearby":    neighbours,
		"count":     len(neighbours),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// TriggerLiveUpdate applies one simulated live reading to the ward, the same
// perturbation the periodic updater runs.
func (h *Handler) TriggerLiveUpdate(w http.ResponseWriter, r *http.Request) {
	wardID := mux.Vars(r)["id"]

	if !h.registry.UpdateLiveData(wardID) {
		sendErrorResponse(w, "Ward not found", http.StatusNotFound)
		return
	}

	ward, _ := h.registry.GetByID(wardID)
	sendJSONResponse(w, http.StatusOK, map[string]interface{}{
		"ward":      ward,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func parseLimit(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return fallback
	}
	return limit
}
