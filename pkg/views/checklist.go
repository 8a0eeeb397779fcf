package views

import (
	"fmt"
	"time"

	"github.com/hitrip/tripops/pkg/api/types/participants"
	"github.com/hitrip/tripops/pkg/api/types/schedules"
	"github.com/hitrip/tripops/pkg/api/types/trips"
	"github.com/hitrip/tripops/pkg/utils"
)

type ItemStatus string

const (
	Pending    ItemStatus = "pending"
	InProgress ItemStatus = "in-progress"
	Completed  ItemStatus = "completed"
)

// Checklist item keys.
const (
	ItemParticipants = "participants"
	ItemSchedules    = "schedules"
	ItemPlaces       = "places"
)

// ChecklistItem is a preparation task of a trip with its deadline.
type ChecklistItem struct {
	Key        string     `json:"key"`
	Title      string     `json:"title"`
	DaysBefore int        `json:"days_before"`
	DueDate    string     `json:"due_date"`
	DueLabel   string     `json:"due_label"`
	Status     ItemStatus `json:"status"`

	Description string `json:"description"`

	// DenominatorMismatch is set when the description counts fetched records
	// but the trip declares a different number of them.
	DenominatorMismatch bool `json:"denominator_mismatch,omitempty"`
}

func progress(done, target int) ItemStatus {
	switch {
	case done <= 0:
		return Pending
	case target <= done:
		return Completed
	default:
		return InProgress
	}
}

func newItem(key, title string, daysBefore int, trip trips.Trip, today time.Time) ChecklistItem {
	item := ChecklistItem{
		Key:        key,
		Title:      title,
		DaysBefore: daysBefore,
		DueDate:    Placeholder,
		DueLabel:   DueLabel(trip.StartDate, daysBefore, today),
	}
	if due, ok := DueDate(trip.StartDate, daysBefore); ok {
		item.DueDate = due.Format(dateLayout)
	}
	return item
}

// Checklist lists preparation tasks of a trip as of today.
//
//   - participants (D-30): participants joined with invite code.
//     Completed when all of trip's participant_count have joined.
//     Its description counts against participants fetched, which may differ
//     from participant_count; DenominatorMismatch tells it.
//   - schedules (D-14): every day of the trip has at least one schedule.
//   - places (D-7): every schedule is linked to a place.
func Checklist(
	trip trips.Trip,
	ps []participants.TripParticipant,
	ss []schedules.Schedule,
	today time.Time,
) []ChecklistItem {
	return []ChecklistItem{
		participantsItem(trip, ps, today),
		schedulesItem(trip, ss, today),
		placesItem(trip, ss, today),
	}
}

func participantsItem(trip trips.Trip, ps []participants.TripParticipant, today time.Time) ChecklistItem {
	item := newItem(ItemParticipants, "참가자 연락처 확보", 30, trip, today)

	joined := utils.Count(ps, participants.TripParticipant.Joined)
	target := trip.ParticipantCount
	if target <= 0 {
		target = len(ps)
	}
	item.Status = progress(joined, target)
	item.Description = fmt.Sprintf("%d/%d명 연락처 확보", joined, len(ps))
	item.DenominatorMismatch = len(ps) != trip.ParticipantCount
	return item
}

func schedulesItem(trip trips.Trip, ss []schedules.Schedule, today time.Time) ChecklistItem {
	item := newItem(ItemSchedules, "일정 등록", 14, trip, today)

	days, ok := TripDays(trip.StartDate, trip.EndDate)
	if !ok {
		item.Status = progress(len(ss), len(ss)+1)
		item.Description = fmt.Sprintf("%d개 일정 등록", len(ss))
		return item
	}

	covered := 0
	for d := 1; d <= days; d++ {
		if _, ok := utils.First(ss, func(s schedules.Schedule) bool { return s.DayNumber == d }); ok {
			covered++
		}
	}
	item.Status = progress(covered, days)
	item.Description = fmt.Sprintf("%d/%d일 일정 등록", covered, days)
	return item
}

func placesItem(trip trips.Trip, ss []schedules.Schedule, today time.Time) ChecklistItem {
	item := newItem(ItemPlaces, "방문 장소 확정", 7, trip, today)

	linked := utils.Count(ss, func(s schedules.Schedule) bool { return s.PlaceId != nil })
	if len(ss) == 0 {
		item.Status = Pending
	} else {
		item.Status = progress(linked, len(ss))
	}
	item.Description = fmt.Sprintf("%d/%d개 일정 장소 확정", linked, len(ss))
	return item
}

// ResponseRate is the percentage of participants joined against trip's participant_count.
//
// It is 0 when the trip has no participant_count.
func ResponseRate(trip trips.Trip, ps []participants.TripParticipant) int {
	if trip.ParticipantCount <= 0 {
		return 0
	}
	joined := utils.Count(ps, participants.TripParticipant.Joined)
	return (joined*100 + trip.ParticipantCount/2) / trip.ParticipantCount
}

// ChecklistReport is the preparation status of a trip.
type ChecklistReport struct {
	Trip         trips.Trip      `json:"trip"`
	ResponseRate int             `json:"response_rate"`
	Items        []ChecklistItem `json:"items"`
}

// Report makes ChecklistReport of the trip.
func Report(
	trip trips.Trip,
	ps []participants.TripParticipant,
	ss []schedules.Schedule,
	today time.Time,
) ChecklistReport {
	return ChecklistReport{
		Trip:         trip,
		ResponseRate: ResponseRate(trip, ps),
		Items:        Checklist(trip, ps, ss, today),
	}
}
