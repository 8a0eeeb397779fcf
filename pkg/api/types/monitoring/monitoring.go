package monitoring

import "time"

// Health status values reported by the backend. Other values may appear.
const (
	HealthNormal  = "normal"
	HealthCaution = "caution"
	HealthDanger  = "danger"
)

type HealthSnapshot struct {
	HeartRate  *int      `json:"heart_rate"`
	Spo2       *int      `json:"spo2"`
	Status     string    `json:"status"`
	MeasuredAt time.Time `json:"measured_at"`
}

type LocationSnapshot struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Accuracy   *float64  `json:"accuracy,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

type Alert struct {
	Id              int             `json:"id"`
	TripId          int             `json:"trip"`
	ParticipantId   int             `json:"participant"`
	ParticipantName string          `json:"participant_name"`
	AlertType       string          `json:"alert_type"`
	Message         string          `json:"message"`
	Snapshot        *HealthSnapshot `json:"health_snapshot,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

type ParticipantLatest struct {
	ParticipantId int               `json:"participant_id"`
	TravelerName  string            `json:"traveler_name"`
	Health        *HealthSnapshot   `json:"health"`
	Location      *LocationSnapshot `json:"location"`
	LastUpdated   *time.Time        `json:"last_updated"`
}

// HealthStatus is the status of the latest health snapshot, or "" if none.
func (p ParticipantLatest) HealthStatus() string {
	if p.Health == nil {
		return ""
	}
	return p.Health.Status
}

type ParticipantHistory struct {
	ParticipantId int                `json:"participant_id"`
	Health        []HealthSnapshot   `json:"health"`
	Locations     []LocationSnapshot `json:"locations"`
}

// DemoResult is the response of demo data generation.
type DemoResult struct {
	Created int    `json:"created"`
	Message string `json:"message,omitempty"`
}
