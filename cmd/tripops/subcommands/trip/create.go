package trip

import (
	"context"
	"errors"
	"log"

	"github.com/hitrip/tripops/cmd/tripops/env"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	"github.com/hitrip/tripops/pkg/api/types/trips"
	kflag "github.com/hitrip/tripops/pkg/commandline/flag"
	"github.com/youta-t/flarc"
)

type CreateFlags struct {
	Title        string              `flag:"title" alias:"t" help:"title of the Trip. Required."`
	Destination  string              `flag:"destination" alias:"d" help:"destination of the Trip. Required."`
	Start        *kflag.OptionalDate `flag:"start" metavar:"YYYY-MM-DD" help:"the first day of the Trip. Required."`
	End          *kflag.OptionalDate `flag:"end" metavar:"YYYY-MM-DD" help:"the last day of the Trip. Required."`
	Manager      *kflag.OptionalInt  `flag:"manager" metavar:"USER_ID" help:"user id of the manager in charge."`
	Participants *kflag.OptionalInt  `flag:"participants" help:"number of participants expected."`
}

func NewCreate() (flarc.Command, error) {
	return flarc.NewCommand(
		"Register a new Trip.",
		CreateFlags{
			Start:        &kflag.OptionalDate{},
			End:          &kflag.OptionalDate{},
			Manager:      &kflag.OptionalInt{},
			Participants: &kflag.OptionalInt{},
		},
		flarc.Args{},
		common.NewTask(CreateTask),
		flarc.WithDescription(`
Register a new Trip, and print it.

    {{ .Command }} --title "Jeju 3 days" --destination Jeju --start 2026-11-01 --end 2026-11-03
`),
	)
}

func CreateTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[CreateFlags],
	params []any,
) error {
	flags := cl.Flags()
	start, end := flags.Start.Value(), flags.End.Value()

	missing := []error{}
	if flags.Title == "" {
		missing = append(missing, errors.New("--title is required"))
	}
	if flags.Destination == "" {
		missing = append(missing, errors.New("--destination is required"))
	}
	if start == nil {
		missing = append(missing, errors.New("--start is required"))
	}
	if end == nil {
		missing = append(missing, errors.New("--end is required"))
	}
	if 0 < len(missing) {
		return errors.Join(append([]error{flarc.ErrUsage}, missing...)...)
	}
	if *end < *start {
		return errors.Join(flarc.ErrUsage, errors.New("--end should not be before --start"))
	}

	created, err := client.CreateTrip(ctx, trips.Create{
		Title:            flags.Title,
		Destination:      flags.Destination,
		StartDate:        *start,
		EndDate:          *end,
		ManagerId:        flags.Manager.Value(),
		ParticipantCount: flags.Participants.Value(),
	})
	if err != nil {
		return err
	}
	logger.Printf("Trip registered. Id:%d", created.Id)
	return common.Print(cl.Stdout(), created)
}
