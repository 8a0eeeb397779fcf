package queries

import (
	"context"
	"fmt"

	"github.com/hitrip/tripops/pkg/api/types/monitoring"
	"github.com/hitrip/tripops/pkg/api/types/places"
	"github.com/hitrip/tripops/pkg/api/types/schedules"
	"github.com/hitrip/tripops/pkg/api/types/staff"
	"github.com/hitrip/tripops/pkg/api/types/trips"
	"github.com/hitrip/tripops/pkg/query"
)

func requireID(ids ...int) error {
	for _, id := range ids {
		if id <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidID, id)
		}
	}
	return nil
}

// mutate runs m, and then invalidates keys if m succeeded.
func mutate[T any](q *Queries, m func() (T, error), keys ...query.Key) (T, error) {
	v, err := m()
	if err != nil {
		return v, err
	}
	for _, k := range keys {
		q.cache.Invalidate(k)
	}
	return v, nil
}

func noValue(f func() error) func() (struct{}, error) {
	return func() (struct{}, error) { return struct{}{}, f() }
}

func (q *Queries) CreateTrip(ctx context.Context, spec trips.Create) (trips.Trip, error) {
	return mutate(q, func() (trips.Trip, error) { return q.client.CreateTrip(ctx, spec) }, TripsKey())
}

func (q *Queries) UpdateTrip(ctx context.Context, tripId int, change trips.Update) (trips.Trip, error) {
	if err := requireID(tripId); err != nil {
		return trips.Trip{}, err
	}
	return mutate(q, func() (trips.Trip, error) { return q.client.UpdateTrip(ctx, tripId, change) }, TripsKey())
}

func (q *Queries) DeleteTrip(ctx context.Context, tripId int) error {
	if err := requireID(tripId); err != nil {
		return err
	}
	_, err := mutate(q, noValue(func() error { return q.client.DeleteTrip(ctx, tripId) }), TripsKey())
	if err == nil {
		q.cache.Remove(TripKey(tripId))
		q.cache.Remove(MonitoringKey(tripId))
	}
	return err
}

// schedule mutations make the trip list stale too, because it includes the trip and its schedules.

func (q *Queries) CreateSchedule(ctx context.Context, tripId int, spec schedules.Create) (schedules.Schedule, error) {
	if err := requireID(tripId); err != nil {
		return schedules.Schedule{}, err
	}
	return mutate(q, func() (schedules.Schedule, error) {
		return q.client.CreateSchedule(ctx, tripId, spec)
	}, SchedulesKey(tripId), TripsKey())
}

func (q *Queries) UpdateSchedule(
	ctx context.Context, tripId, scheduleId int, change schedules.Update,
) (schedules.Schedule, error) {
	if err := requireID(tripId, scheduleId); err != nil {
		return schedules.Schedule{}, err
	}
	return mutate(q, func() (schedules.Schedule, error) {
		return q.client.UpdateSchedule(ctx, tripId, scheduleId, change)
	}, SchedulesKey(tripId), TripsKey())
}

func (q *Queries) DeleteSchedule(ctx context.Context, tripId, scheduleId int) error {
	if err := requireID(tripId, scheduleId); err != nil {
		return err
	}
	_, err := mutate(q, noValue(func() error {
		return q.client.DeleteSchedule(ctx, tripId, scheduleId)
	}), SchedulesKey(tripId), TripsKey())
	return err
}

func (q *Queries) CreatePlace(ctx context.Context, spec places.Create) (places.Place, error) {
	return mutate(q, func() (places.Place, error) { return q.client.CreatePlace(ctx, spec) }, PlacesKey())
}

func (q *Queries) UpdatePlace(ctx context.Context, placeId int, change places.Update) (places.Place, error) {
	if err := requireID(placeId); err != nil {
		return places.Place{}, err
	}
	return mutate(q, func() (places.Place, error) {
		return q.client.UpdatePlace(ctx, placeId, change)
	}, PlacesKey())
}

func (q *Queries) DeletePlace(ctx context.Context, placeId int) error {
	if err := requireID(placeId); err != nil {
		return err
	}
	_, err := mutate(q, noValue(func() error { return q.client.DeletePlace(ctx, placeId) }), PlacesKey())
	if err == nil {
		q.cache.Remove(PlaceKey(placeId))
	}
	return err
}

func (q *Queries) RefreshPlaceSummary(ctx context.Context, placeId int) (places.Place, error) {
	if err := requireID(placeId); err != nil {
		return places.Place{}, err
	}
	return mutate(q, func() (places.Place, error) {
		return q.client.RefreshPlaceSummary(ctx, placeId)
	}, PlacesKey())
}

func (q *Queries) CreateExpense(ctx context.Context, placeId int, spec places.ExpenseCreate) (places.OptionalExpense, error) {
	if err := requireID(placeId); err != nil {
		return places.OptionalExpense{}, err
	}
	return mutate(q, func() (places.OptionalExpense, error) {
		return q.client.CreateOptionalExpense(ctx, placeId, spec)
	}, ExpensesKey(placeId))
}

func (q *Queries) UpdateExpense(
	ctx context.Context, placeId, expenseId int, change places.ExpenseUpdate,
) (places.OptionalExpense, error) {
	if err := requireID(placeId, expenseId); err != nil {
		return places.OptionalExpense{}, err
	}
	return mutate(q, func() (places.OptionalExpense, error) {
		return q.client.UpdateOptionalExpense(ctx, placeId, expenseId, change)
	}, ExpensesKey(placeId))
}

func (q *Queries) DeleteExpense(ctx context.Context, placeId, expenseId int) error {
	if err := requireID(placeId, expenseId); err != nil {
		return err
	}
	_, err := mutate(q, noValue(func() error {
		return q.client.DeleteOptionalExpense(ctx, placeId, expenseId)
	}), ExpensesKey(placeId))
	return err
}

// ExpenseTotal asks the backend the total. It is not cached.
func (q *Queries) ExpenseTotal(ctx context.Context, placeId int, expenseIds []int) (places.ExpenseTotal, error) {
	if err := requireID(placeId); err != nil {
		return places.ExpenseTotal{}, err
	}
	return q.client.CalculateExpenseTotal(ctx, placeId, expenseIds)
}

func (q *Queries) CreateCoordinator(ctx context.Context, placeId int, spec places.CoordinatorCreate) (places.Coordinator, error) {
	if err := requireID(placeId); err != nil {
		return places.Coordinator{}, err
	}
	return mutate(q, func() (places.Coordinator, error) {
		return q.client.CreatePlaceCoordinator(ctx, placeId, spec)
	}, CoordinatorsKey(placeId))
}

func (q *Queries) UpdateCoordinator(
	ctx context.Context, placeId, coordinatorId int, change places.CoordinatorUpdate,
) (places.Coordinator, error) {
	if err := requireID(placeId, coordinatorId); err != nil {
		return places.Coordinator{}, err
	}
	return mutate(q, func() (places.Coordinator, error) {
		return q.client.UpdatePlaceCoordinator(ctx, placeId, coordinatorId, change)
	}, CoordinatorsKey(placeId))
}

func (q *Queries) DeleteCoordinator(ctx context.Context, placeId, coordinatorId int) error {
	if err := requireID(placeId, coordinatorId); err != nil {
		return err
	}
	_, err := mutate(q, noValue(func() error {
		return q.client.DeletePlaceCoordinator(ctx, placeId, coordinatorId)
	}), CoordinatorsKey(placeId))
	return err
}

func (q *Queries) ApproveStaff(ctx context.Context, userId int) (staff.UserDetail, error) {
	if err := requireID(userId); err != nil {
		return staff.UserDetail{}, err
	}
	return mutate(q, func() (staff.UserDetail, error) {
		return q.client.ApproveStaff(ctx, userId)
	}, StaffKey())
}

func (q *Queries) GenerateDemo(ctx context.Context, tripId int) (monitoring.DemoResult, error) {
	if err := requireID(tripId); err != nil {
		return monitoring.DemoResult{}, err
	}
	return mutate(q, func() (monitoring.DemoResult, error) {
		return q.client.GenerateDemo(ctx, tripId)
	}, MonitoringKey(tripId))
}
