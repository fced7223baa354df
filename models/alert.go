package models

type AlertType string

const (
	AlertCritical AlertType = "critical"
	AlertWarning  AlertType = "warning"
	AlertInfo     AlertType = "info"
)

// Alert is a system-wide advisory derived from the current ward snapshot.
type Alert struct {
	ID        string    `json:"id"`
	Type      AlertType `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Wards     []string  `json:"wards,omitempty"`
	Timestamp string    `json:"timestamp"`
}
