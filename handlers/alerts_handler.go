package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"ward_dashboard/models"
)

// Alert thresholds for the system-wide scans.
const (
	severeAQIThreshold     = 300
	unfitTDSThreshold      = 900
	worseningWardThreshold = 50
)

// GetAlerts derives the active system-wide alerts from the current ward
// snapshot. Alerts are recomputed per request rather than stored; the data
// refreshes every few seconds anyway.
func (h *Handler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	wards := h.registry.GetAll()

	alerts := make([]models.Alert, 0)

	severeWards := make([]string, 0)
	worseningCount := 0
	waterIssueCount := 0
	for _, ward := range wards {
		if ward.Pollution.Air.AQI > severeAQIThreshold {
			severeWards = append(severeWards, ward.WardName)
		}
		if ward.Pollution.Air.Trend == models.TrendWorsening {
			worseningCount++
		}
		if ward.Pollution.Water.TDS > unfitTDSThreshold {
			waterIssueCount++
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)

	if len(severeWards) > 0 {
		affected := severeWards
		if len(affected) > 5 {
			affected = affected[:5]
		}
		alerts = append(alerts, models.Alert{
			ID:        uuid.NewString(),
			Type:      models.AlertCritical,
			Title:     "Severe Air Quality Alert",
			Message:   fmt.Sprintf("%d wards have AQI levels above 300. Avoid outdoor activities.", len(severeWards)),
			Wards:     affected,
			Timestamp: now,
		})
	}

	if worseningCount > worseningWardThreshold {
		alerts = append(alerts, models.Alert{
			ID:        uuid.NewString(),
			Type:      models.AlertWarning,
			Title:     "Pollution Trend Alert",
			Message:   fmt.Sprintf("Air quality is worsening in %d wards. Take preventive measures.", worseningCount),
			Timestamp: now,
		})
	}

	if waterIssueCount > 0 {
		alerts = append(alerts, models.Alert{
			ID:        uuid.NewString(),
			Type:      models.AlertWarning,
			Title:     "Water Quality Alert",
			Message:   fmt.Sprintf("%d wards have poor water quality. Use water purifiers.", waterIssueCount),
			Timestamp: now,
		})
	}

	sendJSONResponse(w, http.StatusOK, map[string]interface{}{
		"alerts":    alerts,
		"count":     len(alerts),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
