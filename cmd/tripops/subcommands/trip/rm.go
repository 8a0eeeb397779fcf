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

func NewRm() (flarc.Command, error) {
	return flarc.NewCommand(
		"Delete a Trip.",
		struct{}{},
		tripIdArg("Id of the Trip to be deleted."),
		common.NewTask(RmTask),
	)
}

func RmTask(
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
	if err := client.DeleteTrip(ctx, tripId); err != nil {
		return fmt.Errorf("%w: Trip Id:%d", err, tripId)
	}
	logger.Printf("deleted Trip Id:%d", tripId)
	return nil
}
