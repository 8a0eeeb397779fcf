package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hitrip/tripops/pkg/api/types/monitoring"
)

func (c *client) monitoringPath(tripId int, sub ...string) string {
	return c.apipath(append([]string{"api", "monitoring", "trips", strconv.Itoa(tripId)}, sub...)...)
}

func (c *client) ListAlerts(ctx context.Context, tripId int) ([]monitoring.Alert, error) {
	return getList[monitoring.Alert](ctx, c, c.monitoringPath(tripId, "alerts"), nil)
}

func (c *client) ListLatest(ctx context.Context, tripId int) ([]monitoring.ParticipantLatest, error) {
	return getList[monitoring.ParticipantLatest](ctx, c, c.monitoringPath(tripId, "latest"), nil)
}

func (c *client) GetParticipantHistory(
	ctx context.Context, tripId int, participantId int, hours int,
) (monitoring.ParticipantHistory, error) {
	q := url.Values{}
	if 0 < hours {
		q.Set("hours", strconv.Itoa(hours))
	}

	h := monitoring.ParticipantHistory{}
	if err := c.request(
		ctx, http.MethodGet,
		c.monitoringPath(tripId, "participants", strconv.Itoa(participantId), "history"),
		q, nil, &h,
	); err != nil {
		return monitoring.ParticipantHistory{}, err
	}
	if h.ParticipantId == 0 {
		h.ParticipantId = participantId
	}
	return h, nil
}

func (c *client) GenerateDemo(ctx context.Context, tripId int) (monitoring.DemoResult, error) {
	r := monitoring.DemoResult{}
	if err := c.request(ctx, http.MethodPost, c.monitoringPath(tripId, "generate-demo"), nil, nil, &r); err != nil {
		return monitoring.DemoResult{}, err
	}
	return r, nil
}
