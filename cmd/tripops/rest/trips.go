package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hitrip/tripops/pkg/api/types/trips"
	"github.com/hitrip/tripops/pkg/utils"
)

func (c *client) ListTrips(ctx context.Context) ([]trips.Trip, error) {
	ts, err := getList[trips.Trip](ctx, c, c.apipath("api", "trips"), nil)
	if err != nil {
		return nil, err
	}
	return utils.Map(ts, trips.Trip.Normalized), nil
}

func (c *client) GetTrip(ctx context.Context, tripId int) (trips.Trip, error) {
	t := trips.Trip{}
	if err := c.request(ctx, http.MethodGet, c.apipath("api", "trips", strconv.Itoa(tripId)), nil, nil, &t); err != nil {
		return trips.Trip{}, err
	}
	return t.Normalized(), nil
}

func (c *client) CreateTrip(ctx context.Context, spec trips.Create) (trips.Trip, error) {
	t := trips.Trip{}
	if err := c.request(ctx, http.MethodPost, c.apipath("api", "trips"), nil, spec, &t); err != nil {
		return trips.Trip{}, err
	}
	return t.Normalized(), nil
}

func (c *client) UpdateTrip(ctx context.Context, tripId int, change trips.Update) (trips.Trip, error) {
	t := trips.Trip{}
	if err := c.request(ctx, http.MethodPatch, c.apipath("api", "trips", strconv.Itoa(tripId)), nil, change, &t); err != nil {
		return trips.Trip{}, err
	}
	return t.Normalized(), nil
}

func (c *client) DeleteTrip(ctx context.Context, tripId int) error {
	return c.request(ctx, http.MethodDelete, c.apipath("api", "trips", strconv.Itoa(tripId)), nil, nil, nil)
}
