package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hitrip/tripops/cmd/tripops/env"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	"github.com/hitrip/tripops/pkg/api/types/places"
	kflag "github.com/hitrip/tripops/pkg/commandline/flag"
	"github.com/youta-t/flarc"
)

const (
	ARG_PLACE_ID       = "PLACE_ID"
	ARG_COORDINATOR_ID = "COORDINATOR_ID"
)

func New() (flarc.Command, error) {
	list, err := flarc.NewCommand(
		"List coordinators of a Place.",
		struct{}{},
		placeArgs(),
		common.NewTask(ListTask),
	)
	if err != nil {
		return nil, err
	}
	add, err := flarc.NewCommand(
		"Add a coordinator into a Place.",
		AddFlags{Role: &kflag.OptionalInt{}},
		placeArgs(),
		common.NewTask(AddTask),
	)
	if err != nil {
		return nil, err
	}
	update, err := flarc.NewCommand(
		"Update a coordinator. Only passed flags are changed.",
		UpdateFlags{
			Name:  &kflag.OptionalString{},
			Phone: &kflag.OptionalString{},
			Role:  &kflag.OptionalInt{},
			Note:  &kflag.OptionalString{},
		},
		coordinatorArgs(),
		common.NewTask(UpdateTask),
	)
	if err != nil {
		return nil, err
	}
	rm, err := flarc.NewCommand(
		"Delete a coordinator.",
		struct{}{},
		coordinatorArgs(),
		common.NewTask(RmTask),
	)
	if err != nil {
		return nil, err
	}
	roles, err := flarc.NewCommand(
		"List roles of coordinators.",
		struct{}{},
		flarc.Args{},
		common.NewTask(RolesTask),
	)
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manipulate coordinators of a Place.",
		struct{}{},
		flarc.WithSubcommand("list", list),
		flarc.WithSubcommand("add", add),
		flarc.WithSubcommand("update", update),
		flarc.WithSubcommand("rm", rm),
		flarc.WithSubcommand("roles", roles),
	)
}

func placeArgs() flarc.Args {
	return flarc.Args{
		{Name: ARG_PLACE_ID, Required: true, Help: "Id of the Place."},
	}
}

func coordinatorArgs() flarc.Args {
	return flarc.Args{
		{Name: ARG_PLACE_ID, Required: true, Help: "Id of the Place."},
		{Name: ARG_COORDINATOR_ID, Required: true, Help: "Id of the coordinator."},
	}
}

func ListTask(
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
	cs, err := client.ListPlaceCoordinators(ctx, placeId)
	if err != nil {
		return err
	}
	return common.Print(cl.Stdout(), cs)
}

type AddFlags struct {
	Name  string             `flag:"name" alias:"n" help:"name of the coordinator. Required."`
	Phone string             `flag:"phone" alias:"p" help:"phone number. Required."`
	Role  *kflag.OptionalInt `flag:"role" alias:"r" metavar:"ROLE_ID" help:"role of the coordinator."`
	Note  string             `flag:"note" help:"note."`
}

func AddTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[AddFlags],
	params []any,
) error {
	placeId, err := common.ID(cl.Args(), ARG_PLACE_ID)
	if err != nil {
		return err
	}
	flags := cl.Flags()

	errs := []error{}
	if flags.Name == "" {
		errs = append(errs, errors.New("--name is required"))
	}
	if flags.Phone == "" {
		errs = append(errs, errors.New("--phone is required"))
	}
	if 0 < len(errs) {
		return errors.Join(append([]error{flarc.ErrUsage}, errs...)...)
	}

	created, err := client.CreatePlaceCoordinator(ctx, placeId, places.CoordinatorCreate{
		Name:   flags.Name,
		Phone:  flags.Phone,
		RoleId: flags.Role.Value(),
		Note:   flags.Note,
	})
	if err != nil {
		return err
	}
	return common.Print(cl.Stdout(), created)
}

type UpdateFlags struct {
	Name  *kflag.OptionalString `flag:"name" alias:"n" help:"new name."`
	Phone *kflag.OptionalString `flag:"phone" alias:"p" help:"new phone number."`
	Role  *kflag.OptionalInt    `flag:"role" alias:"r" metavar:"ROLE_ID" help:"new role."`
	Note  *kflag.OptionalString `flag:"note" help:"new note."`
}

func UpdateTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[UpdateFlags],
	params []any,
) error {
	placeId, err := common.ID(cl.Args(), ARG_PLACE_ID)
	if err != nil {
		return err
	}
	coordinatorId, err := common.ID(cl.Args(), ARG_COORDINATOR_ID)
	if err != nil {
		return err
	}
	flags := cl.Flags()
	updated, err := client.UpdatePlaceCoordinator(ctx, placeId, coordinatorId, places.CoordinatorUpdate{
		Name:   flags.Name.Value(),
		Phone:  flags.Phone.Value(),
		RoleId: flags.Role.Value(),
		Note:   flags.Note.Value(),
	})
	if err != nil {
		return fmt.Errorf("%w: coordinator Id:%d", err, coordinatorId)
	}
	return common.Print(cl.Stdout(), updated)
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
	coordinatorId, err := common.ID(cl.Args(), ARG_COORDINATOR_ID)
	if err != nil {
		return err
	}
	if err := client.DeletePlaceCoordinator(ctx, placeId, coordinatorId); err != nil {
		return fmt.Errorf("%w: coordinator Id:%d", err, coordinatorId)
	}
	logger.Printf("deleted coordinator Id:%d", coordinatorId)
	return nil
}

func RolesTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[struct{}],
	params []any,
) error {
	rs, err := client.ListCoordinatorRoles(ctx)
	if err != nil {
		return err
	}
	return common.Print(cl.Stdout(), rs)
}
