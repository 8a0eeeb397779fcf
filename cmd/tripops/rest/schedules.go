package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hitrip/tripops/pkg/api/types/schedules"
)

func (c *client) schedulePath(tripId int, scheduleId ...int) string {
	path := []string{"api", "trips", strconv.Itoa(tripId), "schedules"}
	for _, id := range scheduleId {
		path = append(path, strconv.Itoa(id))
	}
	return c.apipath(path...)
}

func (c *client) ListSchedules(ctx context.Context, tripId int) ([]schedules.Schedule, error) {
	return getList[schedules.Schedule](ctx, c, c.schedulePath(tripId), nil)
}

func (c *client) CreateSchedule(ctx context.Context, tripId int, spec schedules.Create) (schedules.Schedule, error) {
	s := schedules.Schedule{}
	if err := c.request(ctx, http.MethodPost, c.schedulePath(tripId), nil, spec, &s); err != nil {
		return schedules.Schedule{}, err
	}
	return s, nil
}

func (c *client) UpdateSchedule(ctx context.Context, tripId int, scheduleId int, change schedules.Update) (schedules.Schedule, error) {
	s := schedules.Schedule{}
	if err := c.request(ctx, http.MethodPatch, c.schedulePath(tripId, scheduleId), nil, change, &s); err != nil {
		return schedules.Schedule{}, err
	}
	return s, nil
}

func (c *client) DeleteSchedule(ctx context.Context, tripId int, scheduleId int) error {
	return c.request(ctx, http.MethodDelete, c.schedulePath(tripId, scheduleId), nil, nil, nil)
}
