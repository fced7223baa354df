package registry

import (
	"fmt"
	"math"
	"time"

	"ward_dashboard/models"
)

var zones = []string{
	"North", "South", "East", "West", "Central",
	"North East", "North West", "South East", "South West", "New Delhi",
}

var parties = []string{"AAP", "BJP", "INC", "Independent"}

var firstNames = []string{"Rajesh", "Priya", "Amit", "Sunita", "Vikram", "Deepa", "Sanjay", "Meera"}

var lastNames = []string{"Kumar", "Sharma", "Singh", "Verma", "Gupta", "Patel", "Reddy", "Rao"}

var waterSources = []string{"Yamuna", "Municipal Supply", "Ground Water", "Treated Water"}

var initiativeCatalog = []models.Initiative{
	{Name: "Clean Air Drive 2026", Status: "Active"},
	{Name: "Waste Segregation Campaign", Status: "Active"},
	{Name: "Green Belt Development", Status: "Planned"},
	{Name: "Water Conservation Project", Status: "Active"},
	{Name: "Noise Monitoring System", Status: "Planned"},
	{Name: "E-Waste Collection Drive", Status: "Active"},
}

var airTrends = []models.Trend{models.TrendImproving, models.TrendStable, models.TrendWorsening}

// generateWards produces the full synthetic ward set. Ranks and scores are
// left at zero; the caller runs the scoring pass afterwards.
func (r *Registry) generateWards(count int) []*models.Ward {
	wards := make([]*models.Ward, 0, count)

	for i := 1; i <= count; i++ {
		wardID := fmt.Sprintf("%03d", i)
		zone := zones[r.rng.Intn(len(zones))]

		wards = append(wards, &models.Ward{
			WardID:      wardID,
			WardName:    fmt.Sprintf("%s Ward %d", zone, i),
			WardCode:    "WD" + wardID,
			Zone:        zone + " Delhi",
			Coordinates: r.generateCoordinates(),
			Pollution: models.Pollution{
				Air:   r.generateAirData(),
				Water: r.generateWaterData(),
				Soil:  r.generateSoilData(),
				Noise: r.generateNoiseData(),
				Waste: r.generateWasteData(),
			},
			Governance:     r.generateGovernance(wardID),
			Complaints:     []models.Complaint{},
			CitizenReports: r.rng.Intn(50),
		})
	}

	return wards
}

// generateCoordinates samples within Delhi's bounding box,
// roughly 28.4-28.9°N, 76.8-77.3°E.
func (r *Registry) generateCoordinates() models.Coordinates {
	return models.Coordinates{
		Lat: 28.4 + r.rng.Float64()*0.5,
		Lng: 76.8 + r.rng.Float64()*0.5,
	}
}

func (r *Registry) generateAirData() models.AirQuality {
	aqi := 50 + r.rng.Intn(400)
	return models.AirQuality{
		AQI:       aqi,
		PM25:      20 + r.rng.Intn(180),
		PM10:      40 + r.rng.Intn(250),
		NO2:       10 + r.rng.Intn(60),
		SO2:       5 + r.rng.Intn(25),
		CO:        round1(0.5 + r.rng.Float64()*2),
		O3:        15 + r.rng.Intn(50),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Trend:     airTrends[r.rng.Intn(len(airTrends))],
		Status:    AQIStatus(aqi),
	}
}

func (r *Registry) generateWaterData() models.WaterQuality {
	tds := 50 + r.rng.Intn(1500)
	return models.WaterQuality{
		TDS:             tds,
		PH:              round1(6.5 + r.rng.Float64()*2),
		Turbidity:       round1(1 + r.rng.Float64()*5),
		DissolvedOxygen: round1(4 + r.rng.Float64()*4),
		Status:          TDSStatus(tds),
		Sources:         r.pickWaterSources(),
	}
}

func (r *Registry) generateSoilData() models.SoilQuality {
	contaminations := []string{"Low", "Moderate", "High"}
	statuses := []string{"Good", "Moderate", "Poor"}

	return models.SoilQuality{
		Contamination: contaminations[r.rng.Intn(len(contaminations))],
		HeavyMetals: models.HeavyMetals{
			Lead:    10 + r.rng.Intn(100),
			Mercury: round1(0.5 + r.rng.Float64()*5),
			Cadmium: round1(0.3 + r.rng.Float64()*3),
		},
		OrganicPollutants: 5 + r.rng.Intn(50),
		// Sampled independently of Contamination on purpose.
		Status: statuses[r.rng.Intn(len(statuses))],
	}
}

func (r *Registry) generateNoiseData() models.NoiseLevel {
	level := 45 + r.rng.Intn(50)
	return models.NoiseLevel{
		Level:     level,
		Status:    NoiseStatus(level),
		PeakHours: []string{"7-10 AM", "6-9 PM"},
	}
}

func (r *Registry) generateWasteData() models.WasteStatus {
	statuses := []string{"Excellent", "Good", "Needs Improvement"}
	return models.WasteStatus{
		CollectionEfficiency: 60 + r.rng.Intn(40),
		SegregationRate:      20 + r.rng.Intn(60),
		Status:               statuses[r.rng.Intn(len(statuses))],
		LastCollection:       r.randomTimeAgo(),
	}
}

func (r *Registry) generateGovernance(wardID string) models.Governance {
	contact := 1000000000 + r.rng.Int63n(9000000000)

	return models.Governance{
		Councillor: models.Councillor{
			Name:          firstNames[r.rng.Intn(len(firstNames))] + " " + lastNames[r.rng.Intn(len(lastNames))],
			Party:         parties[r.rng.Intn(len(parties))],
			Contact:       fmt.Sprintf("+91-%d", contact),
			Email:         fmt.Sprintf("councillor.%s@delhi.gov.in", wardID),
			OfficeAddress: "Ward Office, " + wardID,
		},
		Initiatives: r.generateInitiatives(),
		Budget: models.Budget{
			Allocated:     3000000 + r.rng.Intn(7000000),
			Utilized:      0,
			Environmental: 0,
		},
	}
}

// generateInitiatives samples 2-4 distinct entries from the catalog, each
// with its own budget display string.
func (r *Registry) generateInitiatives() []models.Initiative {
	picks := r.rng.Perm(len(initiativeCatalog))
	count := 2 + r.rng.Intn(3)

	initiatives := make([]models.Initiative, 0, count)
	for _, idx := range picks[:count] {
		init := initiativeCatalog[idx]
		init.Budget = fmt.Sprintf("₹%d Lakh", 2+r.rng.Intn(8))
		initiatives = append(initiatives, init)
	}
	return initiatives
}

// pickWaterSources draws 1-2 distinct sources from the catalog.
func (r *Registry) pickWaterSources() []string {
	picks := r.rng.Perm(len(waterSources))
	count := 1 + r.rng.Intn(2)

	sources := make([]string, 0, count)
	for _, idx := range picks[:count] {
		sources = append(sources, waterSources[idx])
	}
	return sources
}

func (r *Registry) randomTimeAgo() string {
	hours := r.rng.Intn(24)
	switch hours {
	case 0:
		return "Just now"
	case 1:
		return "1 hour ago"
	default:
		return fmt.Sprintf("%d hours ago", hours)
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
