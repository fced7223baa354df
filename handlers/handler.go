// Package handlers exposes the ward registry over the JSON API consumed by
// the dashboard front-end.
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"ward_dashboard/registry"
)

// Handler serves the ward API from an injected registry instance.
type Handler struct {
	registry     *registry.Registry
	cacheEnabled bool
}

func New(reg *registry.Registry, cacheEnabled bool) *Handler {
	return &Handler{registry: reg, cacheEnabled: cacheEnabled}
}

// RegisterRoutes attaches every API route to the given subrouter. Literal
// paths are registered before the {id} routes so mux never shadows them.
func (h *Handler) RegisterRoutes(api *mux.Router) {
	api.HandleFunc("/wards/search", h.SearchWards).Methods("GET")
	api.HandleFunc("/wards/top", h.GetTopWards).Methods("GET")
	api.HandleFunc("/wards/bottom", h.GetBottomWards).Methods("GET")
	api.HandleFunc("/wards/compare", h.CompareWards).Methods("GET")
	api.HandleFunc("/wards/zone/{zone}", h.GetWardsByZone).Methods("GET")
	api.HandleFunc("/wards", h.GetAllWards).Methods("GET")
	api.HandleFunc("/wards/{id}", h.GetWardByID).Methods("GET")
	api.HandleFunc("/wards/{id}/nearby", h.GetNearbyWards).Methods("GET")
	api.HandleFunc("/wards/{id}/live-update", h.TriggerLiveUpdate).Methods("POST")

	api.HandleFunc("/wards/{id}/complaints", h.GetWardComplaints).Methods("GET")
	api.HandleFunc("/wards/{id}/complaints", h.SubmitComplaint).Methods("POST")
	api.HandleFunc("/wards/{id}/complaints/{complaintId}/support", h.SupportComplaint).Methods("POST")

	api.HandleFunc("/stats/overview", h.GetOverviewStats).Methods("GET")
	api.HandleFunc("/stats/achievements", h.GetAchievements).Methods("GET")
	api.HandleFunc("/stats/engagement", h.GetEngagement).Methods("GET")

	api.HandleFunc("/alerts", h.GetAlerts).Methods("GET")

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")
}

func sendErrorResponse(w http.ResponseWriter, message string, code int) {
	log.Printf("Error: %s (Code: %d)", message, code)

	response := map[string]interface{}{
		"error":     message,
		"code":      code,
		"status":    http.StatusText(code),
		"timestamp": time.Now().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func sendJSONResponse(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
