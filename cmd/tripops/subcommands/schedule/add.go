package schedule

import (
	"context"
	"errors"
	"log"

	"github.com/hitrip/tripops/cmd/tripops/env"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	"github.com/hitrip/tripops/pkg/api/types/schedules"
	kflag "github.com/hitrip/tripops/pkg/commandline/flag"
	"github.com/hitrip/tripops/pkg/views"
	"github.com/youta-t/flarc"
)

type AddFlags struct {
	Day          *kflag.OptionalInt `flag:"day" alias:"d" help:"day number in the Trip, from 1. Required."`
	Start        string             `flag:"start" metavar:"HH:MM" help:"start time. Required."`
	End          string             `flag:"end" metavar:"HH:MM" help:"end time."`
	Content      string             `flag:"content" alias:"c" help:"what to do. Required."`
	MeetingPoint string             `flag:"meeting-point" help:"where to meet."`
	Transport    string             `flag:"transport" help:"how to move."`
	Budget       *kflag.OptionalInt `flag:"budget" help:"budget in KRW."`
	Place        *kflag.OptionalInt `flag:"place" metavar:"PLACE_ID" help:"Place to visit."`
	Order        *kflag.OptionalInt `flag:"order" help:"order in the day. Default is the last of the day."`
}

func NewAdd() (flarc.Command, error) {
	return flarc.NewCommand(
		"Add a Schedule into a Trip.",
		AddFlags{
			Day:    &kflag.OptionalInt{},
			Budget: &kflag.OptionalInt{},
			Place:  &kflag.OptionalInt{},
			Order:  &kflag.OptionalInt{},
		},
		tripArgs(),
		common.NewTask(AddTask),
	)
}

func AddTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[AddFlags],
	params []any,
) error {
	tripId, err := common.ID(cl.Args(), ARG_TRIP_ID)
	if err != nil {
		return err
	}

	flags := cl.Flags()
	day := 0
	if d := flags.Day.Value(); d != nil {
		day = *d
	}
	spec := schedules.Create{
		DayNumber:    day,
		StartTime:    flags.Start,
		EndTime:      flags.End,
		MainContent:  flags.Content,
		MeetingPoint: flags.MeetingPoint,
		Transport:    flags.Transport,
		Budget:       flags.Budget.Value(),
		PlaceId:      flags.Place.Value(),
		Order:        flags.Order.Value(),
	}
	if err := validate(spec); err != nil {
		return errors.Join(flarc.ErrUsage, err)
	}

	if spec.Order == nil {
		existing, err := client.ListSchedules(ctx, tripId)
		if err != nil {
			return err
		}
		next := views.NextOrder(existing, spec.DayNumber)
		spec.Order = &next
	}

	created, err := client.CreateSchedule(ctx, tripId, spec)
	if err != nil {
		return err
	}
	logger.Printf("Schedule added. Id:%d (day %d, order %d)", created.Id, created.DayNumber, created.Order)
	return common.Print(cl.Stdout(), created)
}

func validate(spec schedules.Create) error {
	errs := []error{}
	if spec.DayNumber <= 0 {
		errs = append(errs, errors.New("day should be 1 or more"))
	}
	if spec.StartTime == "" {
		errs = append(errs, errors.New("start time is required"))
	}
	if spec.MainContent == "" {
		errs = append(errs, errors.New("content is required"))
	}
	if spec.PlaceId != nil && *spec.PlaceId <= 0 {
		errs = append(errs, errors.New("place should be a positive id"))
	}
	return errors.Join(errs...)
}
