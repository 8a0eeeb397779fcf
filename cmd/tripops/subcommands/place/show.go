package place

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
		"Show a Place.",
		struct{}{},
		placeIdArg("Id of the Place to be shown."),
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
	placeId, err := common.ID(cl.Args(), ARG_PLACE_ID)
	if err != nil {
		return err
	}
	p, err := client.GetPlace(ctx, placeId)
	if err != nil {
		return fmt.Errorf("%w: Place Id:%d", err, placeId)
	}
	return common.Print(cl.Stdout(), p)
}

func NewRefresh() (flarc.Command, error) {
	return flarc.NewCommand(
		"Regenerate AI summary of a Place.",
		struct{}{},
		placeIdArg("Id of the Place."),
		common.NewTask(RefreshTask),
	)
}

func RefreshTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[struct{}],
	params []any,
) error {
	placeId, err := common.ID(cl.Args(), ARG_PLACE_ID)
	if err != nil {
		return err
	}
	p, err := client.RefreshPlaceSummary(ctx, placeId)
	if err != nil {
		return fmt.Errorf("%w: Place Id:%d", err, placeId)
	}
	return common.Print(cl.Stdout(), p)
}

func NewRm() (flarc.Command, error) {
	return flarc.NewCommand(
		"Delete a Place.",
		struct{}{},
		placeIdArg("Id of the Place to be deleted."),
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
	placeId, err := common.ID(cl.Args(), ARG_PLACE_ID)
	if err != nil {
		return err
	}
	if err := client.DeletePlace(ctx, placeId); err != nil {
		return fmt.Errorf("%w: Place Id:%d", err, placeId)
	}
	logger.Printf("deleted Place Id:%d", placeId)
	return nil
}
