package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/gorilla/mux"

	"ward_dashboard/models"
	"ward_dashboard/registry"
)

// GetWardComplaints lists a ward's complaints newest first, with the counts
// the feedback panel's statistics strip shows.
func (h *Handler) GetWardComplaints(w http.ResponseWriter, r *http.Request) {
	wardID := mux.Vars(r)["id"]

	ward, ok := h.registry.GetByID(wardID)
	if !ok {
		sendErrorResponse(w, "Ward not found", http.StatusNotFound)
		return
	}

	complaints := ward.Complaints
	sort.SliceStable(complaints, func(i, j int) bool {
		return complaints[i].Timestamp > complaints[j].Timestamp
	})

	openCount := 0
	resolvedCount := 0
	for _, c := range complaints {
		switch c.Status {
		case models.StatusOpen:
			openCount++
		case models.StatusResolved:
			resolvedCount++
		}
	}

	sendJSONResponse(w, http.StatusOK, map[string]interface{}{
		"wardId":     ward.WardID,
		"complaints": complaints,
		"stats": map[string]int{
			"total":    len(complaints),
			"open":     openCount,
			"resolved": resolvedCount,
		},
		"citizenReports": ward.CitizenReports,
		"timestamp":      time.Now().Format(time.RFC3339),
	})
}

// SubmitComplaint files a new citizen report against the ward.
func (h *Handler) SubmitComplaint(w http.ResponseWriter, r *http.Request) {
	wardID := mux.Vars(r)["id"]

	var input registry.ComplaintInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if input.Text == "" {
		sendErrorResponse(w, "Complaint description is required", http.StatusBadRequest)
		return
	}

	complaint, ok := h.registry.AddComplaint(wardID, input)
	if !ok {
		sendErrorResponse(w, "Ward not found", http.StatusNotFound)
		return
	}

	log.Printf("Complaint %s filed against ward %s (type=%s)", complaint.ID, wardID, complaint.Type)
	sendJSONResponse(w, http.StatusCreated, map[string]interface{}{
		"complaint": complaint,
		"wardId":    wardID,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// SupportComplaint registers one more citizen backing an existing complaint.
// Repeat supports from the same caller count again; there is no dedup.
func (h *Handler) SupportComplaint(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	wardID := vars["id"]
	complaintID := vars["complaintId"]

	if _, ok := h.registry.GetByID(wardID); !ok {
		sendErrorResponse(w, "Ward not found", http.StatusNotFound)
		return
	}

	supports, found := h.registry.SupportComplaint(wardID, complaintID)
	if !found {
		sendErrorResponse(w, "Complaint not found", http.StatusNotFound)
		return
	}

	sendJSONResponse(w, http.StatusOK, map[string]interface{}{
		"complaintId": complaintID,
		"supports":    supports,
		"timestamp":   time.Now().Format(time.RFC3339),
	})
}
