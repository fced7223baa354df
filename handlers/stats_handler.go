package handlers

import (
	"net/http"
	"sort"
	"time"

	"ward_dashboard/config"
	"ward_dashboard/models"
	"ward_dashboard/registry"
)

// GetOverviewStats serves the dashboard's headline numbers.
func (h *Handler) GetOverviewStats(w http.ResponseWriter, r *http.Request) {
	cacheKey := config.GetCacheKey("overview")
	if h.cacheEnabled {
		if cached, found := config.StatsCache.Get(cacheKey); found {
			sendJSONResponse(w, http.StatusOK, cached)
			return
		}
	}

	wards := h.registry.GetAll()
	if len(wards) == 0 {
		sendErrorResponse(w, "No ward data available", http.StatusServiceUnavailable)
		return
	}

	scoreSum := 0
	goodWards := 0
	criticalWards := 0
	for _, ward := range wards {
		scoreSum += ward.PollutionScore
		if ward.Pollution.Air.AQI <= 100 {
			goodWards++
		}
		if ward.Pollution.Air.AQI > 300 {
			criticalWards++
		}
	}

	response := map[string]interface{}{
		"totalWards":    len(wards),
		"avgScore":      scoreSum / len(wards),
		"goodWards":     goodWards,
		"criticalWards": criticalWards,
		"timestamp":     time.Now().Format(time.RFC3339),
	}

	if h.cacheEnabled {
		config.StatsCache.SetDefault(cacheKey, response)
	}
	sendJSONResponse(w, http.StatusOK, response)
}

type achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	WardID      string `json:"wardId"`
	WardName    string `json:"wardName"`
	WardCode    string `json:"wardCode"`
}

// GetAchievements names the best ward in each recognition category.
func (h *Handler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	cacheKey := config.GetCacheKey("achievements")
	if h.cacheEnabled {
		if cached, found := config.StatsCache.Get(cacheKey); found {
			sendJSONResponse(w, http.StatusOK, cached)
			return
		}
	}

	wards := h.registry.GetAll()
	if len(wards) == 0 {
		sendErrorResponse(w, "No ward data available", http.StatusServiceUnavailable)
		return
	}

	bestAir := wards[0]
	bestWater := wards[0]
	bestWaste := wards[0]
	quietest := wards[0]
	mostEngaged := wards[0]
	for _, ward := range wards {
		if ward.Pollution.Air.AQI < bestAir.Pollution.Air.AQI {
			bestAir = ward
		}
		if ward.Pollution.Water.TDS < bestWater.Pollution.Water.TDS {
			bestWater = ward
		}
		if ward.Pollution.Waste.CollectionEfficiency > bestWaste.Pollution.Waste.CollectionEfficiency {
			bestWaste = ward
		}
		if ward.Pollution.Noise.Level < quietest.Pollution.Noise.Level {
			quietest = ward
		}
		if ward.CitizenReports > mostEngaged.CitizenReports {
			mostEngaged = ward
		}
	}

	// First improving-trend ward, or the first ward when none improve.
	risingStar := wards[0]
	for _, ward := range wards {
		if ward.Pollution.Air.Trend == models.TrendImproving {
			risingStar = ward
			break
		}
	}

	achievements := []achievement{
		newAchievement("Clean Air Champion", "Best AQI improvement", bestAir),
		newAchievement("Water Guardian", "Excellent water quality", bestWater),
		newAchievement("Zero Waste Hero", "Highest waste collection rate", bestWaste),
		newAchievement("Silent Zone", "Lowest noise pollution", quietest),
		newAchievement("Most Engaged", "Highest citizen participation", mostEngaged),
		newAchievement("Rising Star", "Best overall improvement", risingStar),
	}

	response := map[string]interface{}{
		"achievements": achievements,
		"timestamp":    time.Now().Format(time.RFC3339),
	}

	if h.cacheEnabled {
		config.StatsCache.SetDefault(cacheKey, response)
	}
	sendJSONResponse(w, http.StatusOK, response)
}

func newAchievement(title, description string, ward models.Ward) achievement {
	return achievement{
		Title:       title,
		Description: description,
		WardID:      ward.WardID,
		WardName:    ward.WardName,
		WardCode:    ward.WardCode,
	}
}

type engagementEntry struct {
	Rank           int    `json:"rank"`
	WardID         string `json:"wardId"`
	WardName       string `json:"wardName"`
	CitizenReports int    `json:"citizenReports"`
	Complaints     int    `json:"complaints"`
}

// GetEngagement ranks the ten wards with the most citizen reports.
func (h *Handler) GetEngagement(w http.ResponseWriter, r *http.Request) {
	wards := h.registry.GetAll()
	sort.SliceStable(wards, func(i, j int) bool {
		return wards[i].CitizenReports > wards[j].CitizenReports
	})
	if len(wards) > 10 {
		wards = wards[:10]
	}

	entries := make([]engagementEntry, 0, len(wards))
	for i, ward := range wards {
		entries = append(entries, engagementEntry{
			Rank:           i + 1,
			WardID:         ward.WardID,
			WardName:       ward.WardName,
			CitizenReports: ward.CitizenReports,
			Complaints:     len(ward.Complaints),
		})
	}

	sendJSONResponse(w, http.StatusOK, map[string]interface{}{
		"engagement": entries,
		"timestamp":  time.Now().Format(time.RFC3339),
	})
}

type comparisonSide struct {
	WardID         string `json:"wardId"`
	WardName       string `json:"wardName"`
	PollutionScore int    `json:"pollutionScore"`
	ScoreClass     string `json:"scoreClass"`
	AQI            int    `json:"aqi"`
	TDS            int    `json:"tds"`
	NoiseLevel     int    `json:"noiseLevel"`
	WasteCollected int    `json:"wasteCollection"`
	Rank           int    `json:"rank"`
	CitizenReports int    `json:"citizenReports"`
}

// CompareWards puts two wards side by side and calls a winner on score.
func (h *Handler) CompareWards(w http.ResponseWriter, r *http.Request) {
	ward1ID := r.URL.Query().Get("ward1")
	ward2ID := r.URL.Query().Get("ward2")
	if ward1ID == "" || ward2ID == "" {
		sendErrorResponse(w, "Query parameters 'ward1' and 'ward2' are required", http.StatusBadRequest)
		return
	}
	if ward1ID == ward2ID {
		sendErrorResponse(w, "Select two different wards to compare", http.StatusBadRequest)
		return
	}

	ward1, ok := h.registry.GetByID(ward1ID)
	if !ok {
		sendErrorResponse(w, "Ward not found: "+ward1ID, http.StatusNotFound)
		return
	}
	ward2, ok := h.registry.GetByID(ward2ID)
	if !ok {
		sendErrorResponse(w, "Ward not found: "+ward2ID, http.StatusNotFound)
		return
	}

	var verdict string
	switch {
	case ward1.PollutionScore > ward2.PollutionScore:
		verdict = ward1.WardName + " has better overall environmental performance"
	case ward2.PollutionScore > ward1.PollutionScore:
		verdict = ward2.WardName + " has better overall environmental performance"
	default:
		verdict = "Both wards have similar environmental performance"
	}

	sendJSONResponse(w, http.StatusOK, map[string]interface{}{
		"ward1":     newComparisonSide(ward1),
		"ward2":     newComparisonSide(ward2),
		"verdict":   verdict,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func newComparisonSide(ward models.Ward) comparisonSide {
	return comparisonSide{
		WardID:         ward.WardID,
		WardName:       ward.WardName,
		PollutionScore: ward.PollutionScore,
		ScoreClass:     registry.ScoreClass(ward.PollutionScore),
		AQI:            ward.Pollution.Air.AQI,
		TDS:            ward.Pollution.Water.TDS,
		NoiseLevel:     ward.Pollution.Noise.Level,
		WasteCollected: ward.Pollution.Waste.CollectionEfficiency,
		Rank:           ward.Rank,
		CitizenReports: ward.CitizenReports,
	}
}
