package schedule

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
		"Delete a Schedule.",
		struct{}{},
		scheduleArgs(),
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
	scheduleId, err := common.ID(cl.Args(), ARG_SCHEDULE_ID)
	if err != nil {
		return err
	}
	if err := client.DeleteSchedule(ctx, tripId, scheduleId); err != nil {
		return fmt.Errorf("%w: Schedule Id:%d", err, scheduleId)
	}
	logger.Printf("deleted Schedule Id:%d", scheduleId)
	return nil
}
