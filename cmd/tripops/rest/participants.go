package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hitrip/tripops/pkg/api/types/participants"
)

func (c *client) ListParticipants(ctx context.Context, tripId int) ([]participants.TripParticipant, error) {
	return getList[participants.TripParticipant](
		ctx, c, c.apipath("api", "trips", strconv.Itoa(tripId), "participants"), nil,
	)
}

func (c *client) GetParticipant(ctx context.Context, tripId int, participantId int) (participants.TripParticipant, error) {
	p := participants.TripParticipant{}
	if err := c.request(
		ctx, http.MethodGet,
		c.apipath("api", "trips", strconv.Itoa(tripId), "participants", strconv.Itoa(participantId)),
		nil, nil, &p,
	); err != nil {
		return participants.TripParticipant{}, err
	}
	return p, nil
}
