package schedule

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hitrip/tripops/cmd/tripops/env"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	"github.com/hitrip/tripops/pkg/api/types/schedules"
	kflag "github.com/hitrip/tripops/pkg/commandline/flag"
	"github.com/youta-t/flarc"
)

type UpdateFlags struct {
	Day          *kflag.OptionalInt    `flag:"day" alias:"d" help:"new day number."`
	Start        *kflag.OptionalString `flag:"start" metavar:"HH:MM" help:"new start time."`
	End          *kflag.OptionalString `flag:"end" metavar:"HH:MM" help:"new end time."`
	Content      *kflag.OptionalString `flag:"content" alias:"c" help:"new content."`
	MeetingPoint *kflag.OptionalString `flag:"meeting-point" help:"new meeting point."`
	Transport    *kflag.OptionalString `flag:"transport" help:"new transport."`
	Budget       *kflag.OptionalInt    `flag:"budget" help:"new budget in KRW."`
	Order        *kflag.OptionalInt    `flag:"order" help:"new order in the day."`
	Place        string                `flag:"place" metavar:"PLACE_ID|none" help:"Place to visit. 'none' unlinks the Place."`
}

func NewUpdate() (flarc.Command, error) {
	return flarc.NewCommand(
		"Update a Schedule. Only passed flags are changed.",
		UpdateFlags{
			Day:          &kflag.OptionalInt{},
			Start:        &kflag.OptionalString{},
			End:          &kflag.OptionalString{},
			Content:      &kflag.OptionalString{},
			MeetingPoint: &kflag.OptionalString{},
			Transport:    &kflag.OptionalString{},
			Budget:       &kflag.OptionalInt{},
			Order:        &kflag.OptionalInt{},
		},
		scheduleArgs(),
		common.NewTask(UpdateTask),
	)
}

func UpdateTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[UpdateFlags],
	params []any,
) error {
	tripId, err := common.ID(cl.Args(), ARG_TRIP_ID)
	if err != nil {
		return err
	}
	scheduleId, err := common.ID(cl.Args(), ARG_SCHEDULE_ID)
	if err != nil {
		return err
	}

	flags := cl.Flags()
	change := schedules.Update{
		DayNumber:    flags.Day.Value(),
		StartTime:    flags.Start.Value(),
		EndTime:      flags.End.Value(),
		MainContent:  flags.Content.Value(),
		MeetingPoint: flags.MeetingPoint.Value(),
		Transport:    flags.Transport.Value(),
		Budget:       flags.Budget.Value(),
		Order:        flags.Order.Value(),
	}
	if change.DayNumber != nil && *change.DayNumber <= 0 {
		return errors.Join(flarc.ErrUsage, errors.New("day should be 1 or more"))
	}
	if flags.Place != "" {
		ref, err := schedules.ParsePlaceRef(flags.Place)
		if err != nil {
			return errors.Join(flarc.ErrUsage, err)
		}
		change.Place = ref
	}

	updated, err := client.UpdateSchedule(ctx, tripId, scheduleId, change)
	if err != nil {
		return fmt.Errorf("%w: Schedule Id:%d", err, scheduleId)
	}
	return common.Print(cl.Stdout(), updated)
}
