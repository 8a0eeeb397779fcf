package views_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/hitrip/tripops/pkg/api/types/monitoring"
	"github.com/hitrip/tripops/pkg/api/types/participants"
	"github.com/hitrip/tripops/pkg/api/types/places"
	"github.com/hitrip/tripops/pkg/api/types/schedules"
	"github.com/hitrip/tripops/pkg/api/types/trips"
	"github.com/hitrip/tripops/pkg/cmp"
	"github.com/hitrip/tripops/pkg/utils"
	"github.com/hitrip/tripops/pkg/views"
)

func TestGroupSchedulesByDay(t *testing.T) {
	ss := []schedules.Schedule{
		{Id: 1, DayNumber: 2, Order: 1},
		{Id: 2, DayNumber: 1, Order: 2},
		{Id: 3, DayNumber: 1, Order: 1},
		{Id: 4, DayNumber: 3, Order: 1},
	}

	groups := views.GroupSchedulesByDay(ss)

	days := utils.Map(groups, func(g views.DayGroup) int { return g.Day })
	if !cmp.SliceEq(days, []int{1, 2, 3}) {
		t.Errorf("days: %v", days)
	}
	ids := utils.Map(groups, func(g views.DayGroup) []int {
		return utils.Map(g.Schedules, func(s schedules.Schedule) int { return s.Id })
	})
	expected := [][]int{{3, 2}, {1}, {4}}
	if !cmp.SliceEqWith(ids, expected, cmp.SliceEq[int]) {
		t.Errorf("ids: %v, expected: %v", ids, expected)
	}

	if ss[1].Id != 2 || ss[2].Id != 3 {
		t.Error("input should not be modified")
	}

	if g := views.GroupSchedulesByDay(nil); len(g) != 0 {
		t.Errorf("groups of nothing: %v", g)
	}
}

func TestNextOrder(t *testing.T) {
	ss := []schedules.Schedule{
		{DayNumber: 1, Order: 1},
		{DayNumber: 1, Order: 4},
		{DayNumber: 2, Order: 9},
	}

	for name, testcase := range map[string]struct {
		day      int
		expected int
	}{
		"max in the day + 1": {day: 1, expected: 5},
		"other day":          {day: 2, expected: 10},
		"empty day":          {day: 3, expected: 1},
	} {
		t.Run(name, func(t *testing.T) {
			if actual := views.NextOrder(ss, testcase.day); actual != testcase.expected {
				t.Errorf("next order: (actual, expected) = (%d, %d)", actual, testcase.expected)
			}
		})
	}
}

func TestDueLabel(t *testing.T) {
	today := time.Date(2026, 10, 19, 15, 30, 0, 0, time.Local)

	theory := func(start string, daysBefore int, expected string) func(*testing.T) {
		return func(t *testing.T) {
			if actual := views.DueLabel(start, daysBefore, today); actual != expected {
				t.Errorf("label: (actual, expected) = (%s, %s)", actual, expected)
			}
		}
	}

	t.Run("due date in the future is D-n", theory("2026-11-30", 30, "D-12"))
	t.Run("due date of today is D-Day", theory("2026-11-18", 30, "D-Day"))
	t.Run("due date in the past is D+n", theory("2026-11-01", 30, "D+17"))
	t.Run("datetime start is accepted", theory("2026-11-02T09:00:00+09:00", 14, "D-Day"))
	t.Run("malformed start is placeholder", theory("someday", 7, views.Placeholder))
	t.Run("empty start is placeholder", theory("", 7, views.Placeholder))
}

func joined(n int, total int) []participants.TripParticipant {
	date := "2026-09-01"
	ps := make([]participants.TripParticipant, 0, total)
	for i := 0; i < total; i++ {
		p := participants.TripParticipant{Id: i + 1}
		if i < n {
			p.JoinedDate = &date
		}
		ps = append(ps, p)
	}
	return ps
}

func TestChecklist(t *testing.T) {
	today := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	t.Run("participants are counted against fetched ones in description", func(t *testing.T) {
		trip := trips.Trip{Id: 1, StartDate: "2026-11-18", EndDate: "2026-11-20", ParticipantCount: 10}

		items := views.Checklist(trip, joined(4, 4), nil, today)
		p, ok := utils.First(items, func(i views.ChecklistItem) bool { return i.Key == views.ItemParticipants })
		if !ok {
			t.Fatal("no participants item")
		}
		if p.Status != views.InProgress {
			t.Errorf("status: %s", p.Status)
		}
		if p.Description != "4/4명 연락처 확보" {
			t.Errorf("description: %s", p.Description)
		}
		if !p.DenominatorMismatch {
			t.Error("mismatch should be flagged")
		}
		if p.DueLabel != "D-Day" || p.DueDate != "2026-10-19" {
			t.Errorf("due: %s %s", p.DueDate, p.DueLabel)
		}
	})

	t.Run("all participants joined is completed", func(t *testing.T) {
		trip := trips.Trip{StartDate: "2026-12-01", EndDate: "2026-12-02", ParticipantCount: 3}
		p := views.Checklist(trip, joined(3, 3), nil, today)[0]
		if p.Status != views.Completed || p.DenominatorMismatch {
			t.Errorf("item: %+v", p)
		}
	})

	t.Run("nobody joined is pending", func(t *testing.T) {
		trip := trips.Trip{StartDate: "2026-12-01", EndDate: "2026-12-02", ParticipantCount: 3}
		p := views.Checklist(trip, joined(0, 3), nil, today)[0]
		if p.Status != views.Pending || p.Description != "0/3명 연락처 확보" {
			t.Errorf("item: %+v", p)
		}
	})

	t.Run("schedules and places are checked per day and per schedule", func(t *testing.T) {
		trip := trips.Trip{StartDate: "2026-12-01", EndDate: "2026-12-03", ParticipantCount: 1}
		place := 5

		for name, testcase := range map[string]struct {
			schedules         []schedules.Schedule
			schedulesStatus   views.ItemStatus
			schedulesDesc     string
			placesStatus      views.ItemStatus
			placesDescription string
		}{
			"no schedules": {
				schedulesStatus: views.Pending, schedulesDesc: "0/3일 일정 등록",
				placesStatus: views.Pending, placesDescription: "0/0개 일정 장소 확정",
			},
			"some days": {
				schedules: []schedules.Schedule{
					{DayNumber: 1, PlaceId: &place}, {DayNumber: 1}, {DayNumber: 3},
				},
				schedulesStatus: views.InProgress, schedulesDesc: "2/3일 일정 등록",
				placesStatus: views.InProgress, placesDescription: "1/3개 일정 장소 확정",
			},
			"every day with places": {
				schedules: []schedules.Schedule{
					{DayNumber: 1, PlaceId: &place}, {DayNumber: 2, PlaceId: &place}, {DayNumber: 3, PlaceId: &place},
				},
				schedulesStatus: views.Completed, schedulesDesc: "3/3일 일정 등록",
				placesStatus: views.Completed, placesDescription: "3/3개 일정 장소 확정",
			},
		} {
			t.Run(name, func(t *testing.T) {
				items := views.Checklist(trip, nil, testcase.schedules, today)
				s, p := items[1], items[2]
				if s.Key != views.ItemSchedules || s.Status != testcase.schedulesStatus || s.Description != testcase.schedulesDesc {
					t.Errorf("schedules item: %+v", s)
				}
				if p.Key != views.ItemPlaces || p.Status != testcase.placesStatus || p.Description != testcase.placesDescription {
					t.Errorf("places item: %+v", p)
				}
				if s.DaysBefore != 14 || p.DaysBefore != 7 {
					t.Errorf("days before: %d, %d", s.DaysBefore, p.DaysBefore)
				}
			})
		}
	})

	t.Run("malformed start date gives placeholders", func(t *testing.T) {
		trip := trips.Trip{StartDate: "TBD", ParticipantCount: 1}
		for _, item := range views.Checklist(trip, nil, nil, today) {
			if item.DueDate != views.Placeholder || item.DueLabel != views.Placeholder {
				t.Errorf("item: %+v", item)
			}
		}
	})
}

func TestResponseRate(t *testing.T) {
	if r := views.ResponseRate(trips.Trip{ParticipantCount: 3}, joined(2, 3)); r != 67 {
		t.Errorf("rate: %d", r)
	}
	if r := views.ResponseRate(trips.Trip{}, joined(2, 3)); r != 0 {
		t.Errorf("rate without count: %d", r)
	}
}

func TestMonitoringViews(t *testing.T) {
	hr := func(v int) *int { return &v }

	t.Run("FilterByAlert", func(t *testing.T) {
		latest := []monitoring.ParticipantLatest{
			{ParticipantId: 1, Health: &monitoring.HealthSnapshot{Status: monitoring.HealthNormal}},
			{ParticipantId: 2, Health: &monitoring.HealthSnapshot{Status: monitoring.HealthDanger}},
			{ParticipantId: 3},
			{ParticipantId: 4, Health: &monitoring.HealthSnapshot{Status: monitoring.HealthCaution}},
		}
		ids := func(ls []monitoring.ParticipantLatest) []int {
			return utils.Map(ls, func(l monitoring.ParticipantLatest) int { return l.ParticipantId })
		}

		if got := ids(views.FilterByAlert(latest, monitoring.HealthDanger, monitoring.HealthCaution)); !cmp.SliceEq(got, []int{2, 4}) {
			t.Errorf("filtered: %v", got)
		}
		if got := ids(views.FilterByAlert(latest)); !cmp.SliceEq(got, []int{1, 2, 3, 4}) {
			t.Errorf("not filtered: %v", got)
		}
	})

	t.Run("AlertCounts", func(t *testing.T) {
		counts := views.AlertCounts([]monitoring.Alert{
			{AlertType: "heart_rate_high"}, {AlertType: "spo2_low"}, {AlertType: "heart_rate_high"},
		})
		if !cmp.MapEq(counts, map[string]int{"heart_rate_high": 2, "spo2_low": 1}) {
			t.Errorf("counts: %v", counts)
		}
	})

	t.Run("MonthlyBookings", func(t *testing.T) {
		counts := views.MonthlyBookings([]trips.Trip{
			{StartDate: "2026-01-10"}, {StartDate: "2026-01-31"}, {StartDate: "2026-12-24"},
			{StartDate: "2025-01-10"}, {StartDate: "broken"},
		}, 2026)
		if len(counts) != 12 {
			t.Fatalf("months: %d", len(counts))
		}
		got := utils.Map(counts, func(c views.MonthlyCount) int { return c.Count })
		if !cmp.SliceEq(got, []int{2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}) {
			t.Errorf("counts: %v", got)
		}
		if counts[0].Month != 1 || counts[11].Month != 12 {
			t.Errorf("months: %v", counts)
		}
	})

	t.Run("HeartRateSeries", func(t *testing.T) {
		base := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
		series := views.HeartRateSeries(monitoring.ParticipantHistory{
			Health: []monitoring.HealthSnapshot{
				{HeartRate: hr(90), MeasuredAt: base.Add(2 * time.Minute)},
				{HeartRate: nil, MeasuredAt: base.Add(time.Minute)},
				{HeartRate: hr(72), MeasuredAt: base},
			},
		})
		got := utils.Map(series, func(p views.HeartRatePoint) int { return p.HeartRate })
		if !cmp.SliceEq(got, []int{72, 90}) {
			t.Errorf("series: %v", got)
		}
	})
}

func TestAlternativeOf(t *testing.T) {
	t.Run("recognized", func(t *testing.T) {
		alt := views.AlternativeOf(places.Place{
			Id:                   1,
			AlternativePlaceInfo: json.RawMessage(`{"name": "Udo", "distance_km": 3}`),
		})
		if !alt.Recognized || alt.Alternative == nil || alt.Alternative.Name != "Udo" || alt.Alternative.Distance != "3km" {
			t.Errorf("unexpected: %+v", alt)
		}
	})

	t.Run("unrecognized keeps raw hint", func(t *testing.T) {
		alt := views.AlternativeOf(places.Place{
			Id:                   1,
			AlternativePlaceInfo: json.RawMessage(`42`),
		})
		if alt.Recognized || alt.Reason == "" || string(alt.Raw) != "42" {
			t.Errorf("unexpected: %+v", alt)
		}
	})

	t.Run("no hint", func(t *testing.T) {
		alt := views.AlternativeOf(places.Place{Id: 1})
		if alt.Recognized || alt.Raw != nil || alt.Reason != "no alternative place" {
			t.Errorf("unexpected: %+v", alt)
		}
	})

	t.Run("null hint is no hint", func(t *testing.T) {
		for _, body := range []string{
			`{"id": 1, "alternative_place_info": null}`,
			`{"id": 1, "alternative_place_info":  null }`,
		} {
			var p places.Place
			if err := json.Unmarshal([]byte(body), &p); err != nil {
				t.Fatal(err)
			}
			alt := views.AlternativeOf(p)
			if alt.Recognized || alt.Raw != nil || alt.Reason != "no alternative place" {
				t.Errorf("%s: unexpected: %+v", body, alt)
			}
		}
	})
}
