package models

// Ward represents one of Delhi's administrative wards with its pollution
// readings, governance record and citizen engagement data.
type Ward struct {
	WardID      string      `json:"wardId"`
	WardName    string      `json:"wardName"`
	WardCode    string      `json:"wardCode"`
	Zone        string      `json:"zone"`
	Coordinates Coordinates `json:"coordinates"`

	Pollution  Pollution  `json:"pollution"`
	Governance Governance `json:"governance"`

	Complaints     []Complaint `json:"complaints"`
	PollutionScore int         `json:"pollutionScore"`
	Rank           int         `json:"rank"`
	CitizenReports int         `json:"citizenReports"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Pollution struct {
	Air   AirQuality   `json:"air"`
	Water WaterQuality `json:"water"`
	Soil  SoilQuality  `json:"soil"`
	Noise NoiseLevel   `json:"noise"`
	Waste WasteStatus  `json:"waste"`
}

// Trend describes the short-term direction of a ward's air quality.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendWorsening Trend = "worsening"
)

type AirQuality struct {
	AQI       int     `json:"aqi"`
	PM25      int     `json:"pm25"`
	PM10      int     `json:"pm10"`
	NO2       int     `json:"no2"`
	SO2       int     `json:"so2"`
	CO        float64 `json:"co"`
	O3        int     `json:"o3"`
	Timestamp string  `json:"timestamp"`
	Trend     Trend   `json:"trend"`
	Status    string  `json:"status"`
}

type WaterQuality struct {
	TDS             int      `json:"tds"`
	PH              float64  `json:"ph"`
	Turbidity       float64  `json:"turbidity"`
	DissolvedOxygen float64  `json:"dissolvedOxygen"`
	Status          string   `json:"status"`
	Sources         []string `json:"sources"`
}

type HeavyMetals struct {
	Lead    int     `json:"lead"`
	Mercury float64 `json:"mercury"`
	Cadmium float64 `json:"cadmium"`
}

// SoilQuality's Status is sampled independently of Contamination; the two are
// intentionally decoupled and must not be derived from each other.
type SoilQuality struct {
	Contamination     string      `json:"contamination"`
	HeavyMetals       HeavyMetals `json:"heavyMetals"`
	OrganicPollutants int         `json:"organicPollutants"`
	Status            string      `json:"status"`
}

type NoiseLevel struct {
	Level     int      `json:"level"` // dB
	Status    string   `json:"status"`
	PeakHours []string `json:"peakHours"`
}

type WasteStatus struct {
	CollectionEfficiency int    `json:"collectionEfficiency"` // percentage
	SegregationRate      int    `json:"segregationRate"`
	Status               string `json:"status"`
	LastCollection       string `json:"lastCollection"`
}

type Governance struct {
	Councillor  Councillor   `json:"councillor"`
	Initiatives []Initiative `json:"initiatives"`
	Budget      Budget       `json:"budget"`
}

type Councillor struct {
	Name          string `json:"name"`
	Party         string `json:"party"`
	Contact       string `json:"contact"`
	Email         string `json:"email"`
	OfficeAddress string `json:"officeAddress"`
}

type Initiative struct {
	Name   string `json:"name"`
	Status string `json:"status"` // Active or Planned
	Budget string `json:"budget"` // display string, e.g. "₹5 Lakh"
}

// Budget amounts are in rupees. Utilized and Environmental are initialized to
// zero and no mutation path populates them.
type Budget struct {
	Allocated     int `json:"allocated"`
	Utilized      int `json:"utilized"`
	Environmental int `json:"environmental"`
}

// Clone returns a deep copy of the ward so callers never alias slices owned
// by the registry.
func (w Ward) Clone() Ward {
	c := w
	c.Pollution.Water.Sources = append([]string(nil), w.Pollution.Water.Sources...)
	c.Pollution.Noise.PeakHours = append([]string(nil), w.Pollution.Noise.PeakHours...)
	c.Governance.Initiatives = append([]Initiative(nil), w.Governance.Initiatives...)
	c.Complaints = append([]Complaint(nil), w.Complaints...)
	return c
}
