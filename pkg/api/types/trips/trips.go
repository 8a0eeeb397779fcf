package trips

import (
	"encoding/json"
)

// Status is a lifecycle stage of a Trip, assigned by the backend.
type Status string

const (
	Planning  Status = "planning"
	Ongoing   Status = "ongoing"
	Completed Status = "completed"
)

// ParseStatus maps a free-text status to one of the known Status.
//
// "ongoing" and "completed" are taken as is. Anything else is Planning.
func ParseStatus(s string) Status {
	switch st := Status(s); st {
	case Ongoing, Completed:
		return st
	default:
		return Planning
	}
}

func (s Status) String() string {
	return string(s)
}

// UnmarshalJSON accepts any JSON value.
// Non-string or unknown values are read as Planning.
func (s *Status) UnmarshalJSON(b []byte) error {
	var plain string
	if err := json.Unmarshal(b, &plain); err != nil {
		*s = Planning
		return nil
	}
	*s = ParseStatus(plain)
	return nil
}

type Trip struct {
	Id               int    `json:"id"`
	Title            string `json:"title"`
	Destination      string `json:"destination"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	Status           Status `json:"status"`
	ManagerId        *int   `json:"manager,omitempty"`
	ManagerName      string `json:"manager_name,omitempty"`
	ParticipantCount int    `json:"participant_count"`
	InviteCode       string `json:"invite_code,omitempty"`
}

func (t Trip) Equal(o Trip) bool {
	managerEq := (t.ManagerId == nil && o.ManagerId == nil) ||
		(t.ManagerId != nil && o.ManagerId != nil && *t.ManagerId == *o.ManagerId)

	return t.Id == o.Id &&
		t.Title == o.Title &&
		t.Destination == o.Destination &&
		t.StartDate == o.StartDate &&
		t.EndDate == o.EndDate &&
		t.Status == o.Status &&
		managerEq &&
		t.ManagerName == o.ManagerName &&
		t.ParticipantCount == o.ParticipantCount &&
		t.InviteCode == o.InviteCode
}

// Create is a payload to register a new Trip.
type Create struct {
	Title            string `json:"title"`
	Destination      string `json:"destination"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	ManagerId        *int   `json:"manager,omitempty"`
	ParticipantCount *int   `json:"participant_count,omitempty"`
}

// Update is a partial update of a Trip. Nil fields are not sent.
type Update struct {
	Title            *string `json:"title,omitempty"`
	Destination      *string `json:"destination,omitempty"`
	StartDate        *string `json:"start_date,omitempty"`
	EndDate          *string `json:"end_date,omitempty"`
	Status           *Status `json:"status,omitempty"`
	ManagerId        *int    `json:"manager,omitempty"`
	ParticipantCount *int    `json:"participant_count,omitempty"`
}

// Normalized returns a copy of t whose Status is one of the known values,
// also when the backend omitted the field.
func (t Trip) Normalized() Trip {
	t.Status = ParseStatus(string(t.Status))
	return t
}
