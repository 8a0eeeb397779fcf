package place

import (
	"context"
	"log"

	"github.com/hitrip/tripops/cmd/tripops/env"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	"github.com/hitrip/tripops/pkg/api/types/places"
	kflag "github.com/hitrip/tripops/pkg/commandline/flag"
	"github.com/youta-t/flarc"
)

type ListFlags struct {
	Search   string             `flag:"search" alias:"q" help:"search Places by name or address."`
	Category *kflag.OptionalInt `flag:"category" alias:"c" metavar:"CATEGORY_ID" help:"list only Places in this category."`
}

func NewList() (flarc.Command, error) {
	return flarc.NewCommand(
		"List Places.",
		ListFlags{Category: &kflag.OptionalInt{}},
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
	flags := cl.Flags()
	ps, err := client.ListPlaces(ctx, places.ListParams{
		Search:     flags.Search,
		CategoryId: flags.Category.Value(),
	})
	if err != nil {
		return err
	}
	return common.Print(cl.Stdout(), ps)
}

func NewCategories() (flarc.Command, error) {
	return flarc.NewCommand(
		"List categories of Places.",
		struct{}{},
		flarc.Args{},
		common.NewTask(CategoriesTask),
	)
}

func CategoriesTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[struct{}],
	params []any,
) error {
	cs, err := client.ListPlaceCategories(ctx)
	if err != nil {
		return err
	}
	return common.Print(cl.Stdout(), cs)
}
