package trip

import (
	"context"
	"fmt"
	"log"

	"github.com/hitrip/tripops/cmd/tripops/env"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	"github.com/youta-t/flarc"
)

func NewShow() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show a Trip.",
		struct{}{},
		tripIdArg("Id of the Trip to be shown."),
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
	t, err := client.GetTrip(ctx, tripId)
	if err != nil {
		return fmt.Errorf("%w: Trip Id:%d", err, tripId)
	}
	return common.Print(cl.Stdout(), t)
}
