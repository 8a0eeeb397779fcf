package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hitrip/tripops/cmd/tripops/queries"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/cmd/tripops/rest/mock"
	"github.com/hitrip/tripops/pkg/api/types/monitoring"
	"github.com/hitrip/tripops/pkg/api/types/schedules"
	"github.com/hitrip/tripops/pkg/api/types/staff"
	"github.com/hitrip/tripops/pkg/api/types/trips"
	"github.com/hitrip/tripops/pkg/monitor"
	"github.com/hitrip/tripops/pkg/query"
	"github.com/hitrip/tripops/pkg/session"
	"github.com/hitrip/tripops/pkg/utils/try"
)

func TestParseID(t *testing.T) {
	for input, expected := range map[string]struct {
		id int
		ok bool
	}{
		"12":  {12, true},
		" 3 ": {3, true},
		"0":   {0, false},
		"-1":  {0, false},
		"abc": {0, false},
		"":    {0, false},
		"1.5": {0, false},
	} {
		id, ok := queries.ParseID(input)
		if id != expected.id || ok != expected.ok {
			t.Errorf("ParseID(%q) = (%d, %v), expected (%d, %v)", input, id, ok, expected.id, expected.ok)
		}
	}
}

func TestQueries_Cache(t *testing.T) {
	ctx := context.Background()

	t.Run("trip list is fetched once while it is fresh", func(t *testing.T) {
		client := mock.New(t)
		client.Impl.ListTrips = func(context.Context) ([]trips.Trip, error) {
			return []trips.Trip{{Id: 1, Status: trips.Planning}}, nil
		}
		testee := queries.New(client, query.New())

		try.To(testee.Trips(ctx)).OrFatal(t)
		try.To(testee.Trips(ctx)).OrFatal(t)
		if len(client.Calls.ListTrips) != 1 {
			t.Errorf("calls: %d", len(client.Calls.ListTrips))
		}
	})

	t.Run("invalid id does not send request", func(t *testing.T) {
		client := mock.New(t)
		testee := queries.New(client, query.New())

		_, err := testee.Trip(ctx, 0)
		if !errors.Is(err, queries.ErrInvalidID) || !errors.Is(err, query.ErrDisabled) {
			t.Errorf("unexpected error: %v", err)
		}
		if _, err := testee.History(ctx, 1, -1, 24); !errors.Is(err, queries.ErrInvalidID) {
			t.Errorf("unexpected error: %v", err)
		}
		if err := testee.DeleteTrip(ctx, 0); !errors.Is(err, queries.ErrInvalidID) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("schedule mutation makes schedules and trips stale", func(t *testing.T) {
		client := mock.New(t)
		client.Impl.ListTrips = func(context.Context) ([]trips.Trip, error) {
			return []trips.Trip{{Id: 1}}, nil
		}
		client.Impl.ListSchedules = func(_ context.Context, tripId int) ([]schedules.Schedule, error) {
			return []schedules.Schedule{{Id: 1, TripId: tripId}}, nil
		}
		client.Impl.CreateSchedule = func(_ context.Context, tripId int, spec schedules.Create) (schedules.Schedule, error) {
			return schedules.Schedule{Id: 2, TripId: tripId, DayNumber: spec.DayNumber}, nil
		}
		testee := queries.New(client, query.New())

		try.To(testee.Trips(ctx)).OrFatal(t)
		try.To(testee.Schedules(ctx, 1)).OrFatal(t)
		try.To(testee.Schedules(ctx, 2)).OrFatal(t)

		try.To(testee.CreateSchedule(ctx, 1, schedules.Create{DayNumber: 1})).OrFatal(t)

		try.To(testee.Trips(ctx)).OrFatal(t)
		try.To(testee.Schedules(ctx, 1)).OrFatal(t)
		try.To(testee.Schedules(ctx, 2)).OrFatal(t)

		if len(client.Calls.ListTrips) != 2 {
			t.Errorf("trips calls: %d", len(client.Calls.ListTrips))
		}
		if len(client.Calls.ListSchedules) != 4 {
			// trips prefix covers schedules of every trip.
			t.Errorf("schedules calls: %v", client.Calls.ListSchedules)
		}
	})

	t.Run("failed mutation does not invalidate", func(t *testing.T) {
		client := mock.New(t)
		client.Impl.ListStaff = func(context.Context, *bool) ([]staff.UserDetail, error) {
			return []staff.UserDetail{{Id: 2}}, nil
		}
		client.Impl.ApproveStaff = func(context.Context, int) (staff.UserDetail, error) {
			return staff.UserDetail{}, errors.New("fake")
		}
		testee := queries.New(client, query.New())

		try.To(testee.Staff(ctx, nil)).OrFatal(t)
		if _, err := testee.ApproveStaff(ctx, 2); err == nil {
			t.Fatal("error is expected")
		}
		try.To(testee.Staff(ctx, nil)).OrFatal(t)
		if len(client.Calls.ListStaff) != 1 {
			t.Errorf("staff calls: %d", len(client.Calls.ListStaff))
		}
	})

	t.Run("demo generation makes monitoring of the trip stale", func(t *testing.T) {
		client := mock.New(t)
		client.Impl.ListLatest = func(context.Context, int) ([]monitoring.ParticipantLatest, error) {
			return []monitoring.ParticipantLatest{}, nil
		}
		client.Impl.GenerateDemo = func(context.Context, int) (monitoring.DemoResult, error) {
			return monitoring.DemoResult{Created: 10}, nil
		}
		testee := queries.New(client, query.New())

		try.To(testee.Latest(ctx, 1)).OrFatal(t)
		try.To(testee.GenerateDemo(ctx, 1)).OrFatal(t)
		try.To(testee.Latest(ctx, 1)).OrFatal(t)
		if len(client.Calls.ListLatest) != 2 {
			t.Errorf("latest calls: %d", len(client.Calls.ListLatest))
		}
	})

	t.Run("monitoring queries declare refetch interval", func(t *testing.T) {
		testee := queries.New(mock.New(t), query.New())
		if q := testee.AlertsQuery(1); q.RefetchInterval != queries.RefetchAlerts || q.StaleTime != queries.StaleAlerts {
			t.Errorf("alerts: %+v", q)
		}
		if q := testee.LatestQuery(1); q.RefetchInterval != queries.RefetchLatest {
			t.Errorf("latest: %+v", q)
		}
		if q := testee.HistoryQuery(1, 2, 24); q.RefetchInterval != queries.RefetchHistory {
			t.Errorf("history: %+v", q)
		}
	})
}

func TestBootstrap(t *testing.T) {
	ctx := context.Background()

	t.Run("user of the session is stored", func(t *testing.T) {
		client := mock.New(t)
		client.Impl.Profile = func(context.Context) (staff.UserDetail, error) {
			return staff.UserDetail{Id: 1, Username: "admin"}, nil
		}
		state := session.New(session.Korean)

		if err := queries.New(client, query.New()).Bootstrap(ctx, state); err != nil {
			t.Fatal(err)
		}
		if snap := state.Snapshot(); !snap.LoggedIn() || snap.User.Username != "admin" {
			t.Errorf("snapshot: %+v", snap)
		}
	})

	t.Run("expired session clears the state", func(t *testing.T) {
		status := 401
		client := mock.New(t)
		client.Impl.Profile = func(context.Context) (staff.UserDetail, error) {
			return staff.UserDetail{}, &rest.APIError{Status: &status}
		}
		state := session.New(session.Korean)
		state.SetUser(staff.UserDetail{Id: 1})

		err := queries.New(client, query.New()).Bootstrap(ctx, state)
		if !rest.IsLoginRequired(err) {
			t.Errorf("unexpected error: %v", err)
		}
		if state.Snapshot().LoggedIn() {
			t.Error("user is left")
		}
	})

	t.Run("other errors keep the state", func(t *testing.T) {
		status := 500
		client := mock.New(t)
		client.Impl.Profile = func(context.Context) (staff.UserDetail, error) {
			return staff.UserDetail{}, &rest.APIError{Status: &status}
		}
		state := session.New(session.Korean)
		state.SetUser(staff.UserDetail{Id: 1})

		if err := queries.New(client, query.New()).Bootstrap(ctx, state); err == nil {
			t.Fatal("error is expected")
		}
		if !state.Snapshot().LoggedIn() {
			t.Error("user is cleared")
		}
	})

	t.Run("login drops cache of the previous session", func(t *testing.T) {
		client := mock.New(t)
		client.Impl.ListTrips = func(context.Context) ([]trips.Trip, error) { return nil, nil }
		client.Impl.Login = func(_ context.Context, cred staff.Login) (staff.UserDetail, error) {
			return staff.UserDetail{Username: cred.Username}, nil
		}
		client.Impl.Logout = func(context.Context) error { return nil }
		cache := query.New()
		testee := queries.New(client, cache)
		state := session.New(session.Korean)

		try.To(testee.Trips(ctx)).OrFatal(t)
		try.To(testee.Login(ctx, state, staff.Login{Username: "kim", Password: "pw"})).OrFatal(t)
		if cache.Len() != 0 {
			t.Errorf("cache: %d", cache.Len())
		}
		if snap := state.Snapshot(); snap.User == nil || snap.User.Username != "kim" {
			t.Errorf("snapshot: %+v", snap)
		}

		if err := testee.Logout(ctx, state); err != nil {
			t.Fatal(err)
		}
		if state.Snapshot().LoggedIn() {
			t.Error("user is left")
		}
	})
}

func TestPollOn(t *testing.T) {
	client := mock.New(t)
	polls := 0
	client.Impl.ListLatest = func(context.Context, int) ([]monitoring.ParticipantLatest, error) {
		polls++
		return []monitoring.ParticipantLatest{{ParticipantId: polls}}, nil
	}
	cache := query.New()
	q := queries.New(client, cache)

	poller := queries.PollOn(q, q.LatestQuery(1), monitor.Every(time.Hour))
	for i := 0; i < 2; i++ {
		snap, ok := poller.Refresh(context.Background())
		if !ok || snap.Err != nil {
			t.Fatalf("unexpected snapshot: %+v (ok=%v)", snap, ok)
		}
	}
	if len(client.Calls.ListLatest) != 2 {
		t.Errorf("each poll should refetch: %v", client.Calls.ListLatest)
	}

	cached, ok := query.Peek[[]monitoring.ParticipantLatest](cache, queries.LatestKey(1))
	if !ok || len(cached) != 1 || cached[0].ParticipantId != 2 {
		t.Errorf("polled value should be cached: %+v (ok=%v)", cached, ok)
	}

	// the value just polled is fresh for readers of the cache.
	if _, err := q.Latest(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	if len(client.Calls.ListLatest) != 2 {
		t.Errorf("cached value should be used: %v", client.Calls.ListLatest)
	}
}
