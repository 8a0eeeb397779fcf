// Package queries declares how each resource of the backend is fetched and cached,
// and which cached resources each mutation makes stale.
package queries

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/pkg/api/types/monitoring"
	"github.com/hitrip/tripops/pkg/api/types/participants"
	"github.com/hitrip/tripops/pkg/api/types/places"
	"github.com/hitrip/tripops/pkg/api/types/schedules"
	"github.com/hitrip/tripops/pkg/api/types/staff"
	"github.com/hitrip/tripops/pkg/api/types/trips"
	"github.com/hitrip/tripops/pkg/monitor"
	"github.com/hitrip/tripops/pkg/query"
	"github.com/robfig/cron/v3"
)

// ErrInvalidID is returned when an id is not a positive integer.
var ErrInvalidID = errors.New("invalid id")

// Stale times and refetch intervals per resource.
const (
	StaleTrips        = 60 * time.Second
	StaleTrip         = 30 * time.Second
	StaleSchedules    = 30 * time.Second
	StaleParticipants = 60 * time.Second
	StalePlaces       = 5 * time.Minute
	StalePlace        = 5 * time.Minute
	StaleCategories   = 30 * time.Minute
	StaleRoles        = 30 * time.Minute
	StaleExpenses     = 60 * time.Second
	StaleCoordinators = 60 * time.Second
	StaleStaff        = 30 * time.Second
	StaleProfile      = 5 * time.Minute

	StaleAlerts    = 5 * time.Second
	RefetchAlerts  = 5 * time.Second
	StaleLatest    = 10 * time.Second
	RefetchLatest  = 10 * time.Second
	StaleHistory   = 30 * time.Second
	RefetchHistory = 60 * time.Second
)

// ParseID reads a positive integer id.
func ParseID(s string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func validID(id int) func() bool {
	return func() bool { return 0 < id }
}

type Queries struct {
	client rest.TripClient
	cache  *query.Cache
}

func New(client rest.TripClient, cache *query.Cache) *Queries {
	return &Queries{client: client, cache: cache}
}

// Cache returns the cache the Queries uses.
func (q *Queries) Cache() *query.Cache {
	return q.cache
}

func fetch[T any](ctx context.Context, q *Queries, qry query.Query[T], ids ...int) (T, error) {
	v, err := query.Fetch(ctx, q.cache, qry)
	if errors.Is(err, query.ErrDisabled) {
		return v, fmt.Errorf("%w (%w): %v", ErrInvalidID, err, ids)
	}
	return v, err
}

func (q *Queries) TripsQuery() query.Query[[]trips.Trip] {
	return query.Query[[]trips.Trip]{
		Key: TripsKey(), Fetch: q.client.ListTrips, StaleTime: StaleTrips,
	}
}

func (q *Queries) Trips(ctx context.Context) ([]trips.Trip, error) {
	return fetch(ctx, q, q.TripsQuery())
}

func (q *Queries) TripQuery(tripId int) query.Query[trips.Trip] {
	return query.Query[trips.Trip]{
		Key: TripKey(tripId),
		Fetch: func(ctx context.Context) (trips.Trip, error) {
			return q.client.GetTrip(ctx, tripId)
		},
		StaleTime: StaleTrip,
		Enabled:   validID(tripId),
	}
}

func (q *Queries) Trip(ctx context.Context, tripId int) (trips.Trip, error) {
	return fetch(ctx, q, q.TripQuery(tripId), tripId)
}

func (q *Queries) SchedulesQuery(tripId int) query.Query[[]schedules.Schedule] {
	return query.Query[[]schedules.Schedule]{
		Key: SchedulesKey(tripId),
		Fetch: func(ctx context.Context) ([]schedules.Schedule, error) {
			return q.client.ListSchedules(ctx, tripId)
		},
		StaleTime: StaleSchedules,
		Enabled:   validID(tripId),
	}
}

func (q *Queries) Schedules(ctx context.Context, tripId int) ([]schedules.Schedule, error) {
	return fetch(ctx, q, q.SchedulesQuery(tripId), tripId)
}

func (q *Queries) ParticipantsQuery(tripId int) query.Query[[]participants.TripParticipant] {
	return query.Query[[]participants.TripParticipant]{
		Key: ParticipantsKey(tripId),
		Fetch: func(ctx context.Context) ([]participants.TripParticipant, error) {
			return q.client.ListParticipants(ctx, tripId)
		},
		StaleTime: StaleParticipants,
		Enabled:   validID(tripId),
	}
}

func (q *Queries) Participants(ctx context.Context, tripId int) ([]participants.TripParticipant, error) {
	return fetch(ctx, q, q.ParticipantsQuery(tripId), tripId)
}

func (q *Queries) ParticipantQuery(tripId, participantId int) query.Query[participants.TripParticipant] {
	return query.Query[participants.TripParticipant]{
		Key: ParticipantKey(tripId, participantId),
		Fetch: func(ctx context.Context) (participants.TripParticipant, error) {
			return q.client.GetParticipant(ctx, tripId, participantId)
		},
		StaleTime: StaleParticipants,
		Enabled:   func() bool { return 0 < tripId && 0 < participantId },
	}
}

func (q *Queries) Participant(ctx context.Context, tripId, participantId int) (participants.TripParticipant, error) {
	return fetch(ctx, q, q.ParticipantQuery(tripId, participantId), tripId, participantId)
}

func (q *Queries) PlacesQuery(params places.ListParams) query.Query[[]places.Place] {
	return query.Query[[]places.Place]{
		Key: PlaceListKey(params),
		Fetch: func(ctx context.Context) ([]places.Place, error) {
			return q.client.ListPlaces(ctx, params)
		},
		StaleTime: StalePlaces,
	}
}

func (q *Queries) Places(ctx context.Context, params places.ListParams) ([]places.Place, error) {
	return fetch(ctx, q, q.PlacesQuery(params))
}

func (q *Queries) PlaceQuery(placeId int) query.Query[places.Place] {
	return query.Query[places.Place]{
		Key: PlaceKey(placeId),
		Fetch: func(ctx context.Context) (places.Place, error) {
			return q.client.GetPlace(ctx, placeId)
		},
		StaleTime: StalePlace,
		Enabled:   validID(placeId),
	}
}

func (q *Queries) Place(ctx context.Context, placeId int) (places.Place, error) {
	return fetch(ctx, q, q.PlaceQuery(placeId), placeId)
}

func (q *Queries) Categories(ctx context.Context) ([]places.Category, error) {
	return fetch(ctx, q, query.Query[[]places.Category]{
		Key: CategoriesKey(), Fetch: q.client.ListPlaceCategories, StaleTime: StaleCategories,
	})
}

func (q *Queries) CoordinatorRoles(ctx context.Context) ([]places.CoordinatorRole, error) {
	return fetch(ctx, q, query.Query[[]places.CoordinatorRole]{
		Key: CoordinatorRolesKey(), Fetch: q.client.ListCoordinatorRoles, StaleTime: StaleRoles,
	})
}

func (q *Queries) Expenses(ctx context.Context, placeId int) ([]places.OptionalExpense, error) {
	return fetch(ctx, q, query.Query[[]places.OptionalExpense]{
		Key: ExpensesKey(placeId),
		Fetch: func(ctx context.Context) ([]places.OptionalExpense, error) {
			return q.client.ListOptionalExpenses(ctx, placeId)
		},
		StaleTime: StaleExpenses,
		Enabled:   validID(placeId),
	}, placeId)
}

func (q *Queries) Coordinators(ctx context.Context, placeId int) ([]places.Coordinator, error) {
	return fetch(ctx, q, query.Query[[]places.Coordinator]{
		Key: CoordinatorsKey(placeId),
		Fetch: func(ctx context.Context) ([]places.Coordinator, error) {
			return q.client.ListPlaceCoordinators(ctx, placeId)
		},
		StaleTime: StaleCoordinators,
		Enabled:   validID(placeId),
	}, placeId)
}

// Staff lists staff. approved narrows them down when it is not nil.
func (q *Queries) Staff(ctx context.Context, approved *bool) ([]staff.UserDetail, error) {
	filter := "all"
	if approved != nil {
		filter = strconv.FormatBool(*approved)
	}
	return fetch(ctx, q, query.Query[[]staff.UserDetail]{
		Key: StaffKey().With(filter),
		Fetch: func(ctx context.Context) ([]staff.UserDetail, error) {
			return q.client.ListStaff(ctx, approved)
		},
		StaleTime: StaleStaff,
	})
}

func (q *Queries) Profile(ctx context.Context) (staff.UserDetail, error) {
	return fetch(ctx, q, query.Query[staff.UserDetail]{
		Key: ProfileKey(), Fetch: q.client.Profile, StaleTime: StaleProfile,
	})
}

func (q *Queries) AlertsQuery(tripId int) query.Query[[]monitoring.Alert] {
	return query.Query[[]monitoring.Alert]{
		Key: AlertsKey(tripId),
		Fetch: func(ctx context.Context) ([]monitoring.Alert, error) {
			return q.client.ListAlerts(ctx, tripId)
		},
		StaleTime:       StaleAlerts,
		RefetchInterval: RefetchAlerts,
		Enabled:         validID(tripId),
	}
}

func (q *Queries) Alerts(ctx context.Context, tripId int) ([]monitoring.Alert, error) {
	return fetch(ctx, q, q.AlertsQuery(tripId), tripId)
}

func (q *Queries) LatestQuery(tripId int) query.Query[[]monitoring.ParticipantLatest] {
	return query.Query[[]monitoring.ParticipantLatest]{
		Key: LatestKey(tripId),
		Fetch: func(ctx context.Context) ([]monitoring.ParticipantLatest, error) {
			return q.client.ListLatest(ctx, tripId)
		},
		StaleTime:       StaleLatest,
		RefetchInterval: RefetchLatest,
		Enabled:         validID(tripId),
	}
}

func (q *Queries) Latest(ctx context.Context, tripId int) ([]monitoring.ParticipantLatest, error) {
	return fetch(ctx, q, q.LatestQuery(tripId), tripId)
}

func (q *Queries) HistoryQuery(tripId, participantId, hours int) query.Query[monitoring.ParticipantHistory] {
	return query.Query[monitoring.ParticipantHistory]{
		Key: HistoryKey(tripId, participantId, hours),
		Fetch: func(ctx context.Context) (monitoring.ParticipantHistory, error) {
			return q.client.GetParticipantHistory(ctx, tripId, participantId, hours)
		},
		StaleTime:       StaleHistory,
		RefetchInterval: RefetchHistory,
		Enabled:         func() bool { return 0 < tripId && 0 < participantId },
	}
}

func (q *Queries) History(ctx context.Context, tripId, participantId, hours int) (monitoring.ParticipantHistory, error) {
	return fetch(ctx, q, q.HistoryQuery(tripId, participantId, hours), tripId, participantId)
}

// Poll makes a Poller refetching qry at its refetch interval through the cache.
//
// qry should have RefetchInterval.
func Poll[T any](q *Queries, qry query.Query[T], options ...monitor.Option) *monitor.Poller[T] {
	interval := qry.RefetchInterval
	if interval < time.Second {
		interval = time.Second
	}
	return PollOn(q, qry, monitor.Every(interval), options...)
}

// PollOn is Poll with explicit schedule.
//
// Each poll refetches qry even if the cached value is fresh, and the result is cached.
func PollOn[T any](q *Queries, qry query.Query[T], schedule cron.Schedule, options ...monitor.Option) *monitor.Poller[T] {
	return monitor.NewPoller(func(ctx context.Context) (T, error) {
		q.cache.Invalidate(qry.Key)
		return query.Fetch(ctx, q.cache, qry)
	}, schedule, options...)
}
