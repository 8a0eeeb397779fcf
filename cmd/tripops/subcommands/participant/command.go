package participant

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hitrip/tripops/cmd/tripops/env"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	"github.com/hitrip/tripops/pkg/api/types/participants"
	"github.com/hitrip/tripops/pkg/utils"
	"github.com/youta-t/flarc"
)

const (
	ARG_TRIP_ID        = "TRIP_ID"
	ARG_PARTICIPANT_ID = "PARTICIPANT_ID"
)

func New() (flarc.Command, error) {
	list, err := NewList()
	if err != nil {
		return nil, err
	}
	show, err := NewShow()
	if err != nil {
		return nil, err
	}
	return flarc.NewCommandGroup(
		"Browse Participants of a Trip.",
		struct{}{},
		flarc.WithSubcommand("list", list),
		flarc.WithSubcommand("show", show),
	)
}

type ListFlags struct {
	Joined  bool `flag:"joined" help:"list only Participants joined with the invite code."`
	Pending bool `flag:"pending" help:"list only Participants not joined yet."`
}

func NewList() (flarc.Command, error) {
	return flarc.NewCommand(
		"List Participants of a Trip.",
		ListFlags{},
		flarc.Args{
			{Name: ARG_TRIP_ID, Required: true, Help: "Id of the Trip."},
		},
		common.NewTask(ListTask),
	)
}

func ListTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[ListFlags],
	params []any,
) error {
	flags := cl.Flags()
	if flags.Joined && flags.Pending {
		return errors.Join(flarc.ErrUsage, errors.New("--joined and --pending are exclusive"))
	}
	tripId, err := common.ID(cl.Args(), ARG_TRIP_ID)
	if err != nil {
		return err
	}

	ps, err := client.ListParticipants(ctx, tripId)
	if err != nil {
		return err
	}
	switch {
	case flags.Joined:
		ps = utils.Filter(ps, participants.TripParticipant.Joined)
	case flags.Pending:
		ps = utils.Filter(ps, func(p participants.TripParticipant) bool { return !p.Joined() })
	}
	return common.Print(cl.Stdout(), ps)
}

func NewShow() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show a Participant of a Trip.",
		struct{}{},
		flarc.Args{
			{Name: ARG_TRIP_ID, Required: true, Help: "Id of the Trip."},
			{Name: ARG_PARTICIPANT_ID, Required: true, Help: "Id of the Participant."},
		},
		common.NewTask(ShowTask),
	)
}

func ShowTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[struct{}],
	params []any,
) error {
	tripId, err := common.ID(cl.Args(), ARG_TRIP_ID)
	if err != nil {
		return err
	}
	participantId, err := common.ID(cl.Args(), ARG_PARTICIPANT_ID)
	if err != nil {
		return err
	}
	p, err := client.GetParticipant(ctx, tripId, participantId)
	if err != nil {
		return fmt.Errorf("%w: Participant Id:%d", err, participantId)
	}
	return common.Print(cl.Stdout(), p)
}
