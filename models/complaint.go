package models

// ComplaintType categorizes a citizen report by pollution domain.
type ComplaintType string

const (
	ComplaintAir   ComplaintType = "air"
	ComplaintWater ComplaintType = "water"
	ComplaintNoise ComplaintType = "noise"
	ComplaintWaste ComplaintType = "waste"
	ComplaintSoil  ComplaintType = "soil"
	ComplaintOther ComplaintType = "other"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type ComplaintStatus string

const (
	StatusOpen       ComplaintStatus = "Open"
	StatusInProgress ComplaintStatus = "In Progress"
	StatusResolved   ComplaintStatus = "Resolved"
)

// Complaint is a citizen-submitted pollution report. Complaints are
// append-only: once created they are mutated in place (status, supports) but
// never deleted.
type Complaint struct {
	ID        string          `json:"id"`
	Type      ComplaintType   `json:"type,omitempty"`
	Severity  Severity        `json:"severity,omitempty"`
	Location  string          `json:"location,omitempty"`
	Text      string          `json:"text"`
	Reporter  string          `json:"reporter"`
	Timestamp string          `json:"timestamp"`
	Status    ComplaintStatus `json:"status"`
	Supports  int             `json:"supports"`
}
