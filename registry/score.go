package registry

import (
	"math"
	"sort"

	"ward_dashboard/models"
)

// AQIStatus maps an AQI reading onto the six CPCB-style severity buckets.
// Used both at generation time and when live updates re-derive air status.
func AQIStatus(aqi int) string {
	switch {
	case aqi <= 50:
		return "Good"
	case aqi <= 100:
		return "Moderate"
	case aqi <= 200:
		return "Poor"
	case aqi <= 300:
		return "Very Poor"
	case aqi <= 400:
		return "Severe"
	default:
		return "Hazardous"
	}
}

// AQIClass maps an AQI reading onto the coarser five display buckets the map
// view colors by. Deliberately a separate function from AQIStatus: the two
// threshold sets differ above 400.
func AQIClass(aqi int) string {
	switch {
	case aqi <= 50:
		return "good"
	case aqi <= 100:
		return "moderate"
	case aqi <= 200:
		return "poor"
	case aqi <= 300:
		return "very-poor"
	default:
		return "severe"
	}
}

// TDSStatus maps total dissolved solids (ppm) onto a water quality label.
func TDSStatus(tds int) string {
	switch {
	case tds <= 300:
		return "Excellent"
	case tds <= 600:
		return "Good"
	case tds <= 900:
		return "Poor"
	default:
		return "Unfit"
	}
}

// NoiseStatus maps a dB level onto a label using the 55/70 thresholds.
func NoiseStatus(level int) string {
	switch {
	case level < 55:
		return "Normal"
	case level < 70:
		return "Moderate"
	default:
		return "High"
	}
}

// ScoreClass buckets a pollution score for display.
func ScoreClass(score int) string {
	switch {
	case score >= 70:
		return "excellent"
	case score >= 50:
		return "good"
	case score >= 30:
		return "moderate"
	default:
		return "poor"
	}
}

// pollutionScore derives the composite 0-100 score (higher is better) from
// the four scored sub-metrics. Each sub-score is clamped to [0,100] so the
// average is always in bounds.
func pollutionScore(aqi, tds, collectionEfficiency, noiseLevel int) int {
	airScore := clampScore(100 - float64(aqi)/5)
	waterScore := clampScore(100 - float64(tds)/20)
	wasteScore := clampScore(float64(collectionEfficiency))
	noiseScore := clampScore(100 - float64(noiseLevel))

	return int(math.Floor((airScore + waterScore + wasteScore + noiseScore) / 4))
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// recomputeScoresAndRanksLocked refreshes every ward's pollutionScore and
// reassigns ranks as a full-registry pass. Ranks form a permutation of 1..N:
// descending by score, ties keeping original creation order thanks to the
// stable sort. Caller must hold the write lock.
func (r *Registry) recomputeScoresAndRanksLocked() {
	for _, w := range r.wards {
		w.PollutionScore = pollutionScore(
			w.Pollution.Air.AQI,
			w.Pollution.Water.TDS,
			w.Pollution.Waste.CollectionEfficiency,
			w.Pollution.Noise.Level,
		)
	}

	sorted := append([]*models.Ward(nil), r.wards...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PollutionScore > sorted[j].PollutionScore
	})
	for i, w := range sorted {
		w.Rank = i + 1
	}
}
