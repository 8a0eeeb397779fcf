package schedule

import (
	"context"
	"log"

	"github.com/hitrip/tripops/cmd/tripops/env"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	"github.com/hitrip/tripops/pkg/views"
	"github.com/youta-t/flarc"
)

type ListFlags struct {
	Grouped bool `flag:"grouped" alias:"g" help:"group Schedules by day."`
}

func NewList() (flarc.Command, error) {
	return flarc.NewCommand(
		"List Schedules of a Trip.",
		ListFlags{},
		tripArgs(),
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
	tripId, err := common.ID(cl.Args(), ARG_TRIP_ID)
	if err != nil {
		return err
	}
	ss, err := client.ListSchedules(ctx, tripId)
	if err != nil {
		return err
	}
	if cl.Flags().Grouped {
		return common.Print(cl.Stdout(), views.GroupSchedulesByDay(ss))
	}
	return common.Print(cl.Stdout(), ss)
}
