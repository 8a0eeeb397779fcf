package staff

import (
	"context"
	"fmt"
	"log"

	"github.com/hitrip/tripops/cmd/tripops/env"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	"github.com/youta-t/flarc"
)

const ARG_USER_ID = "USER_ID"

func New() (flarc.Command, error) {
	list, err := NewList()
	if err != nil {
		return nil, err
	}
	approve, err := NewApprove()
	if err != nil {
		return nil, err
	}
	return flarc.NewCommandGroup(
		"Manage staff accounts.",
		struct{}{},
		flarc.WithSubcommand("list", list),
		flarc.WithSubcommand("approve", approve),
	)
}

type ListFlags struct {
	Pending bool `flag:"pending" help:"list only staff waiting for approval."`
}

func NewList() (flarc.Command, error) {
	return flarc.NewCommand(
		"List staff accounts.",
		ListFlags{},
		flarc.Args{},
		common.NewTask(ListTask),
		flarc.WithDescription(`
List staff accounts registered to the backend.

Listing staff is allowed only for super admins.
`),
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
	var approved *bool
	if cl.Flags().Pending {
		f := false
		approved = &f
	}
	users, err := client.ListStaff(ctx, approved)
	if err != nil {
		return err
	}
	return common.Print(cl.Stdout(), users)
}

func NewApprove() (flarc.Command, error) {
	return flarc.NewCommand(
		"Approve a staff account.",
		struct{}{},
		flarc.Args{
			{Name: ARG_USER_ID, Required: true, Help: "Id of the user to be approved."},
		},
		common.NewTask(ApproveTask),
	)
}

func ApproveTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[struct{}],
	params []any,
) error {
	userId, err := common.ID(cl.Args(), ARG_USER_ID)
	if err != nil {
		return err
	}
	u, err := client.ApproveStaff(ctx, userId)
	if err != nil {
		return fmt.Errorf("%w: User Id:%d", err, userId)
	}
	logger.Printf("%s is approved", u.DisplayName())
	return common.Print(cl.Stdout(), u)
}
