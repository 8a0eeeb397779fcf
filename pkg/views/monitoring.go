package views

import (
	"slices"
	"time"

	"github.com/hitrip/tripops/pkg/api/types/monitoring"
	"github.com/hitrip/tripops/pkg/api/types/trips"
	"github.com/hitrip/tripops/pkg/utils"
)

// FilterByAlert picks participants whose latest health status is one of statuses.
//
// With no statuses, all participants are returned.
func FilterByAlert(latest []monitoring.ParticipantLatest, statuses ...string) []monitoring.ParticipantLatest {
	if len(statuses) == 0 {
		return slices.Clone(latest)
	}
	return utils.Filter(latest, func(p monitoring.ParticipantLatest) bool {
		return slices.Contains(statuses, p.HealthStatus())
	})
}

// AlertCounts counts alerts for each alert type.
func AlertCounts(alerts []monitoring.Alert) map[string]int {
	counts := map[string]int{}
	for _, a := range alerts {
		counts[a.AlertType]++
	}
	return counts
}

type MonthlyCount struct {
	Month int `json:"month"`
	Count int `json:"count"`
}

// MonthlyBookings counts trips starting in each month of the year.
//
// It always returns 12 months. Trips with malformed start date are skipped.
func MonthlyBookings(ts []trips.Trip, year int) []MonthlyCount {
	counts := make([]MonthlyCount, 12)
	for i := range counts {
		counts[i].Month = i + 1
	}
	for _, t := range ts {
		start, ok := parseDate(t.StartDate)
		if !ok || start.Year() != year {
			continue
		}
		counts[int(start.Month())-1].Count++
	}
	return counts
}

// BookingSummary is MonthlyBookings with the year and the total.
type BookingSummary struct {
	Year   int            `json:"year"`
	Total  int            `json:"total"`
	Months []MonthlyCount `json:"months"`
}

func SummarizeBookings(ts []trips.Trip, year int) BookingSummary {
	months := MonthlyBookings(ts, year)
	total := 0
	for _, m := range months {
		total += m.Count
	}
	return BookingSummary{Year: year, Total: total, Months: months}
}

type HeartRatePoint struct {
	At        time.Time `json:"at"`
	HeartRate int       `json:"heart_rate"`
	Spo2      *int      `json:"spo2,omitempty"`
	Status    string    `json:"status"`
}

// HeartRateSeries makes chart points from health history, ordered by time.
//
// Snapshots without heart rate are skipped.
func HeartRateSeries(history monitoring.ParticipantHistory) []HeartRatePoint {
	points := []HeartRatePoint{}
	for _, h := range history.Health {
		if h.HeartRate == nil {
			continue
		}
		points = append(points, HeartRatePoint{
			At: h.MeasuredAt, HeartRate: *h.HeartRate, Spo2: h.Spo2, Status: h.Status,
		})
	}
	return utils.SortedStable(points, func(a, b HeartRatePoint) bool { return a.At.Before(b.At) })
}
