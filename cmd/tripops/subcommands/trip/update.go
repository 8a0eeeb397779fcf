package trip

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hitrip/tripops/cmd/tripops/env"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	"github.com/hitrip/tripops/pkg/api/types/trips"
	kflag "github.com/hitrip/tripops/pkg/commandline/flag"
	"github.com/youta-t/flarc"
)

type UpdateFlags struct {
	Title        *kflag.OptionalString `flag:"title" alias:"t" help:"new title."`
	Destination  *kflag.OptionalString `flag:"destination" alias:"d" help:"new destination."`
	Start        *kflag.OptionalDate   `flag:"start" metavar:"YYYY-MM-DD" help:"new first day."`
	End          *kflag.OptionalDate   `flag:"end" metavar:"YYYY-MM-DD" help:"new last day."`
	Status       *kflag.OptionalString `flag:"status" alias:"s" metavar:"planning|ongoing|completed" help:"new status."`
	Manager      *kflag.OptionalInt    `flag:"manager" metavar:"USER_ID" help:"user id of the new manager."`
	Participants *kflag.OptionalInt    `flag:"participants" help:"new number of participants expected."`
}

func NewUpdate() (flarc.Command, error) {
	return flarc.NewCommand(
		"Update a Trip. Only passed flags are changed.",
		UpdateFlags{
			Title:        &kflag.OptionalString{},
			Destination:  &kflag.OptionalString{},
			Start:        &kflag.OptionalDate{},
			End:          &kflag.OptionalDate{},
			Status:       &kflag.OptionalString{},
			Manager:      &kflag.OptionalInt{},
			Participants: &kflag.OptionalInt{},
		},
		tripIdArg("Id of the Trip to be updated."),
		common.NewTask(UpdateTask),
	)
}

func UpdateTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[UpdateFlags],
	params []any,
) error {
	tripId, err := common.ID(cl.Args(), ARG_TRIP_ID)
	if err != nil {
		return err
	}

	flags := cl.Flags()
	change := trips.Update{
		Title:            flags.Title.Value(),
		Destination:      flags.Destination.Value(),
		StartDate:        flags.Start.Value(),
		EndDate:          flags.End.Value(),
		ManagerId:        flags.Manager.Value(),
		ParticipantCount: flags.Participants.Value(),
	}
	if s := flags.Status.Value(); s != nil {
		status := trips.Status(*s)
		switch status {
		case trips.Planning, trips.Ongoing, trips.Completed:
		default:
			return errors.Join(flarc.ErrUsage, fmt.Errorf("unknown status: %s", *s))
		}
		change.Status = &status
	}

	updated, err := client.UpdateTrip(ctx, tripId, change)
	if err != nil {
		return fmt.Errorf("%w: Trip Id:%d", err, tripId)
	}
	return common.Print(cl.Stdout(), updated)
}
