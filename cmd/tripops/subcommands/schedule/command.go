package schedule

import (
	"github.com/youta-t/flarc"
)

const (
	ARG_TRIP_ID     = "TRIP_ID"
	ARG_SCHEDULE_ID = "SCHEDULE_ID"
	ARG_FILE        = "FILE"
)

func New() (flarc.Command, error) {
	list, err := NewList()
	if err != nil {
		return nil, err
	}
	add, err := NewAdd()
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
	imp, err := NewImport()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manipulate Schedules of a Trip.",
		struct{}{},
		flarc.WithSubcommand("list", list),
		flarc.WithSubcommand("add", add),
		flarc.WithSubcommand("update", update),
		flarc.WithSubcommand("rm", rm),
		flarc.WithSubcommand("import", imp),
	)
}

const (
	tripIdHelp     = "Id of the Trip."
	scheduleIdHelp = "Id of the Schedule."
)

func tripArgs() flarc.Args {
	return flarc.Args{
		{Name: ARG_TRIP_ID, Required: true, Help: tripIdHelp},
	}
}

func scheduleArgs() flarc.Args {
	return flarc.Args{
		{Name: ARG_TRIP_ID, Required: true, Help: tripIdHelp},
		{Name: ARG_SCHEDULE_ID, Required: true, Help: scheduleIdHelp},
	}
}
