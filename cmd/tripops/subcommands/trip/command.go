package trip

import (
	"github.com/youta-t/flarc"
)

const ARG_TRIP_ID = "TRIP_ID"

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
	checklist, err := NewChecklist()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manipulate Trips.",
		struct{}{},
		flarc.WithSubcommand("list", list),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("create", create),
		flarc.WithSubcommand("update", update),
		flarc.WithSubcommand("rm", rm),
		flarc.WithSubcommand("checklist", checklist),
	)
}

func tripIdArg(help string) flarc.Args {
	return flarc.Args{
		{Name: ARG_TRIP_ID, Required: true, Help: help},
	}
}
