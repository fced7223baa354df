package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ward_dashboard/models"
)

func TestGeneratedFieldRanges(t *testing.T) {
	r := newTestRegistry(t)

	for _, w := range r.GetAll() {
		air := w.Pollution.Air
		assert.GreaterOrEqual(t, air.AQI, 50)
		assert.Less(t, air.AQI, 450)
		assert.GreaterOrEqual(t, air.PM25, 20)
		assert.Less(t, air.PM25, 200)
		assert.GreaterOrEqual(t, air.PM10, 40)
		assert.Less(t, air.PM10, 290)
		assert.GreaterOrEqual(t, air.NO2, 10)
		assert.Less(t, air.NO2, 70)
		assert.GreaterOrEqual(t, air.SO2, 5)
		assert.Less(t, air.SO2, 30)
		assert.GreaterOrEqual(t, air.CO, 0.5)
		assert.LessOrEqual(t, air.CO, 2.5)
		assert.GreaterOrEqual(t, air.O3, 15)
		assert.Less(t, air.O3, 65)
		assert.Contains(t, []models.Trend{models.TrendImproving, models.TrendStable, models.TrendWorsening}, air.Trend)
		assert.Equal(t, AQIStatus(air.AQI), air.Status)

		water := w.Pollution.Water
		assert.GreaterOrEqual(t, water.TDS, 50)
		assert.Less(t, water.TDS, 1550)
		assert.GreaterOrEqual(t, water.PH, 6.5)
		assert.LessOrEqual(t, water.PH, 8.5)
		assert.Equal(t, TDSStatus(water.TDS), water.Status)

		noise := w.Pollution.Noise
		assert.GreaterOrEqual(t, noise.Level, 45)
		assert.Less(t, noise.Level, 95)
		assert.Equal(t, NoiseStatus(noise.Level), noise.Status)

		waste := w.Pollution.Waste
		assert.GreaterOrEqual(t, waste.CollectionEfficiency, 60)
		assert.Less(t, waste.CollectionEfficiency, 100)
		assert.GreaterOrEqual(t, waste.SegregationRate, 20)
		assert.Less(t, waste.SegregationRate, 80)

		assert.GreaterOrEqual(t, w.CitizenReports, 0)
		assert.Less(t, w.CitizenReports, 50)
		assert.Empty(t, w.Complaints)
	}
}

func TestGeneratedCoordinatesInsideDelhi(t *testing.T) {
	r := newTestRegistry(t)

	for _, w := range r.GetAll() {
		assert.GreaterOrEqual(t, w.Coordinates.Lat, 28.4)
		assert.LessOrEqual(t, w.Coordinates.Lat, 28.9)
		assert.GreaterOrEqual(t, w.Coordinates.Lng, 76.8)
		assert.LessOrEqual(t, w.Coordinates.Lng, 77.3)
	}
}

func TestGeneratedIdentity(t *testing.T) {
	r := newTestRegistry(t)

	wards := r.GetAll()
	first := wards[0]
	assert.Equal(t, "001", first.WardID)
	assert.Equal(t, "WD001", first.WardCode)
	assert.True(t, strings.HasSuffix(first.Zone, " Delhi"))
	assert.Contains(t, first.WardName, "Ward 1")

	validZones := make(map[string]bool)
	for _, z := range zones {
		validZones[z+" Delhi"] = true
	}
	for _, w := range wards {
		assert.True(t, validZones[w.Zone], "unexpected zone %q", w.Zone)
	}
}

func TestGeneratedGovernance(t *testing.T) {
	r := newTestRegistry(t)

	validParties := make(map[string]bool)
	for _, p := range parties {
		validParties[p] = true
	}
	validInitiatives := make(map[string]bool)
	for _, init := range initiativeCatalog {
		validInitiatives[init.Name] = true
	}

	for _, w := range r.GetAll() {
		gov := w.Governance
		assert.True(t, validParties[gov.Councillor.Party], "unexpected party %q", gov.Councillor.Party)
		assert.True(t, strings.HasPrefix(gov.Councillor.Contact, "+91-"))
		assert.Equal(t, "councillor."+w.WardID+"@delhi.gov.in", gov.Councillor.Email)

		require.GreaterOrEqual(t, len(gov.Initiatives), 2)
		require.LessOrEqual(t, len(gov.Initiatives), 4)
		seen := make(map[string]bool)
		for _, init := range gov.Initiatives {
			assert.True(t, validInitiatives[init.Name], "unexpected initiative %q", init.Name)
			assert.False(t, seen[init.Name], "duplicate initiative %q", init.Name)
			seen[init.Name] = true
			assert.True(t, strings.HasPrefix(init.Budget, "₹"))
		}

		assert.GreaterOrEqual(t, gov.Budget.Allocated, 3000000)
		assert.Less(t, gov.Budget.Allocated, 10000000)
		assert.Zero(t, gov.Budget.Utilized)
		assert.Zero(t, gov.Budget.Environmental)
	}
}

func TestGeneratedWaterSources(t *testing.T) {
	r := newTestRegistry(t)

	valid := make(map[string]bool)
	for _, s := range waterSources {
		valid[s] = true
	}
	for _, w := range r.GetAll() {
		sources := w.Pollution.Water.Sources
		require.GreaterOrEqual(t, len(sources), 1)
		require.LessOrEqual(t, len(sources), 2)
		seen := make(map[string]bool)
		for _, s := range sources {
			assert.True(t, valid[s], "unexpected source %q", s)
			assert.False(t, seen[s], "duplicate source %q", s)
			seen[s] = true
		}
	}
}

func TestSeedDeterminism(t *testing.T) {
	a := NewSeeded(25, 7)
	b := NewSeeded(25, 7)

	wardsA := a.GetAll()
	wardsB := b.GetAll()
	require.Equal(t, len(wardsA), len(wardsB))
	for i := range wardsA {
		assert.Equal(t, wardsA[i].WardID, wardsB[i].WardID)
		assert.Equal(t, wardsA[i].Zone, wardsB[i].Zone)
		assert.Equal(t, wardsA[i].Pollution.Air.AQI, wardsB[i].Pollution.Air.AQI)
		assert.Equal(t, wardsA[i].PollutionScore, wardsB[i].PollutionScore)
		assert.Equal(t, wardsA[i].Rank, wardsB[i].Rank)
	}
}
