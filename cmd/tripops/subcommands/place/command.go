package place

import (
	"github.com/hitrip/tripops/cmd/tripops/subcommands/place/coordinator"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/place/expense"
	"github.com/youta-t/flarc"
)

const ARG_PLACE_ID = "PLACE_ID"

func New() (flarc.Command, error) {
	list, err := NewList()
	if err != nil {
		return nil, err
	}
	show, err := NewShow()
	if err != nil {
		return nil, err
	}
	create, err := NewCreate()
	if err != nil {
		return nil, err
	}
	update, err := NewUpdate()
	if err != nil {
		return nil, err
	}
	rm, err := NewRm()
	if err != nil {
		return nil, err
	}
	refresh, err := NewRefresh()
	if err != nil {
		return nil, err
	}
	alternative, err := NewAlternative()
	if err != nil {
		return nil, err
	}
	categories, err := NewCategories()
	if err != nil {
		return nil, err
	}
	exp, err := expense.New()
	if err != nil {
		return nil, err
	}
	coord, err := coordinator.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manipulate Places.",
		struct{}{},
		flarc.WithSubcommand("list", list),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("create", create),
		flarc.WithSubcommand("update", update),
		flarc.WithSubcommand("rm", rm),
		flarc.WithSubcommand("refresh", refresh),
		flarc.WithSubcommand("alternative", alternative),
		flarc.WithSubcommand("categories", categories),
		flarc.WithSubcommand("expense", exp),
		flarc.WithSubcommand("coordinator", coord),
	)
}

func placeIdArg(help string) flarc.Args {
	return flarc.Args{
		{Name: ARG_PLACE_ID, Required: true, Help: help},
	}
}
