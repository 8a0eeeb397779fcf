package stats

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/hitrip/tripops/cmd/tripops/env"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	kflag "github.com/hitrip/tripops/pkg/commandline/flag"
	"github.com/hitrip/tripops/pkg/views"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	bookings, err := NewBookings()
	if err != nil {
		return nil, err
	}
	return flarc.NewCommandGroup(
		"Show statistics of Trips.",
		struct{}{},
		flarc.WithSubcommand("bookings", bookings),
	)
}

type BookingsFlags struct {
	Year *kflag.OptionalInt `flag:"year" metavar:"YYYY" help:"year to be counted. default: this year."`
}

func NewBookings() (flarc.Command, error) {
	return flarc.NewCommand(
		"Count Trips for each month.",
		BookingsFlags{Year: &kflag.OptionalInt{}},
		flarc.Args{},
		common.NewTask(BookingsTask(time.Now)),
		flarc.WithDescription(`
Count Trips by the month of their start date.

Trips with malformed start date are not counted.
`),
	)
}

func BookingsTask(now func() time.Time) common.Task[BookingsFlags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		_ env.TripEnv,
		client rest.TripClient,
		cl flarc.Commandline[BookingsFlags],
		params []any,
	) error {
		year := now().Year()
		if y := cl.Flags().Year.Value(); y != nil {
			if *y <= 0 {
				return errors.Join(flarc.ErrUsage, errors.New("--year should be positive"))
			}
			year = *y
		}

		ts, err := client.ListTrips(ctx)
		if err != nil {
			return err
		}
		return common.Print(cl.Stdout(), views.SummarizeBookings(ts, year))
	}
}
