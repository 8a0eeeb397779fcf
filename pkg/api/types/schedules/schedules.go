package schedules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type Schedule struct {
	Id           int    `json:"id"`
	TripId       int    `json:"trip"`
	DayNumber    int    `json:"day_number"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time,omitempty"`
	MainContent  string `json:"main_content"`
	MeetingPoint string `json:"meeting_point,omitempty"`
	Transport    string `json:"transport,omitempty"`
	Budget       *int   `json:"budget,omitempty"`
	Order        int    `json:"order"`
	PlaceId      *int   `json:"place_id,omitempty"`
	PlaceName    string `json:"place_name,omitempty"`
}

func (s Schedule) Equal(o Schedule) bool {
	return s.Id == o.Id &&
		s.TripId == o.TripId &&
		s.DayNumber == o.DayNumber &&
		s.StartTime == o.StartTime &&
		s.EndTime == o.EndTime &&
		s.MainContent == o.MainContent &&
		s.MeetingPoint == o.MeetingPoint &&
		s.Transport == o.Transport &&
		intPtrEq(s.Budget, o.Budget) &&
		s.Order == o.Order &&
		intPtrEq(s.PlaceId, o.PlaceId) &&
		s.PlaceName == o.PlaceName
}

func intPtrEq(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Create is a payload to register a new Schedule into a Trip.
//
// When Order is nil, callers are expected to fill it before sending
// (see views.NextOrder).
type Create struct {
	DayNumber    int    `json:"day_number" yaml:"day"`
	StartTime    string `json:"start_time" yaml:"start"`
	EndTime      string `json:"end_time,omitempty" yaml:"end,omitempty"`
	MainContent  string `json:"main_content" yaml:"content"`
	MeetingPoint string `json:"meeting_point,omitempty" yaml:"meetingPoint,omitempty"`
	Transport    string `json:"transport,omitempty" yaml:"transport,omitempty"`
	Budget       *int   `json:"budget,omitempty" yaml:"budget,omitempty"`
	Order        *int   `json:"order,omitempty" yaml:"order,omitempty"`
	PlaceId      *int   `json:"place_id,omitempty" yaml:"place,omitempty"`
}

// PlaceRef is a reference to a Place in an Update.
//
// The zero value is "unchanged" and the field is omitted from the payload.
// Clear() sends an explicit null, which unlinks the Place.
type PlaceRef struct {
	set bool
	id  *int
}

func SetPlace(id int) PlaceRef {
	return PlaceRef{set: true, id: &id}
}

func ClearPlace() PlaceRef {
	return PlaceRef{set: true}
}

// ParsePlaceRef reads "none" (or "null") as ClearPlace and a number as SetPlace.
func ParsePlaceRef(s string) (PlaceRef, error) {
	switch s {
	case "none", "null":
		return ClearPlace(), nil
	}
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return PlaceRef{}, fmt.Errorf("place should be a positive number or 'none': %s", s)
	}
	return SetPlace(id), nil
}

func (r PlaceRef) IsSet() bool {
	return r.set
}

func (r PlaceRef) Id() (int, bool) {
	if r.id == nil {
		return 0, false
	}
	return *r.id, true
}

// Update is a partial update of a Schedule. Nil fields are not sent.
type Update struct {
	DayNumber    *int
	StartTime    *string
	EndTime      *string
	MainContent  *string
	MeetingPoint *string
	Transport    *string
	Budget       *int
	Order        *int
	Place        PlaceRef
}

func (u Update) MarshalJSON() ([]byte, error) {
	fields := map[string]any{}
	put := func(key string, v any, present bool) {
		if present {
			fields[key] = v
		}
	}
	put("day_number", u.DayNumber, u.DayNumber != nil)
	put("start_time", u.StartTime, u.StartTime != nil)
	put("end_time", u.EndTime, u.EndTime != nil)
	put("main_content", u.MainContent, u.MainContent != nil)
	put("meeting_point", u.MeetingPoint, u.MeetingPoint != nil)
	put("transport", u.Transport, u.Transport != nil)
	put("budget", u.Budget, u.Budget != nil)
	put("order", u.Order, u.Order != nil)
	if u.Place.set {
		fields["place_id"] = u.Place.id // nil pointer is encoded as null
	}

	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(fields); err != nil {
		return nil, err
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}
