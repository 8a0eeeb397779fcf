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
	"github.com/hitrip/tripops/pkg/utils"
	"github.com/youta-t/flarc"
)

type ListFlags struct {
	Status string `flag:"status" alias:"s" metavar:"planning|ongoing|completed" help:"list only Trips in this status."`
}

func NewList() (flarc.Command, error) {
	return flarc.NewCommand(
		"List Trips.",
		ListFlags{},
		flarc.Args{},
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
	status := cl.Flags().Status
	switch trips.Status(status) {
	case "", trips.Planning, trips.Ongoing, trips.Completed:
	default:
		return errors.Join(flarc.ErrUsage, fmt.Errorf("unknown status: %s", status))
	}

	ts, err := client.ListTrips(ctx)
	if err != nil {
		return err
	}
	if status != "" {
		ts = utils.Filter(ts, func(t trips.Trip) bool { return t.Status == trips.Status(status) })
	}
	return common.Print(cl.Stdout(), ts)
}
