package trip

import (
	"context"
	"log"
	"time"

	"github.com/hitrip/tripops/cmd/tripops/env"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	"github.com/hitrip/tripops/pkg/api/types/participants"
	"github.com/hitrip/tripops/pkg/api/types/schedules"
	"github.com/hitrip/tripops/pkg/api/types/trips"
	"github.com/hitrip/tripops/pkg/views"
	"github.com/youta-t/flarc"
	"golang.org/x/sync/errgroup"
)

func NewChecklist() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show preparation checklist of a Trip.",
		struct{}{},
		tripIdArg("Id of the Trip."),
		common.NewTask(ChecklistTask(time.Now)),
		flarc.WithDescription(`
Show preparation checklist of a Trip, with deadlines counted from today.

  - participants: D-30. participants joined with the invite code.
  - schedules: D-14. every day of the Trip has schedules.
  - places: D-7. every schedule is linked to a place.
`),
	)
}

func ChecklistTask(now func() time.Time) common.Task[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		_ env.TripEnv,
		client rest.TripClient,
		cl flarc.Commandline[struct{}],
		params []any,
	) error {
		tripId, err := common.ID(cl.Args(), ARG_TRIP_ID)
		if err != nil {
			return err
		}

		var (
			t  trips.Trip
			ps []participants.TripParticipant
			ss []schedules.Schedule
		)
		eg, ctx := errgroup.WithContext(ctx)
		eg.Go(func() (err error) {
			t, err = client.GetTrip(ctx, tripId)
			return
		})
		eg.Go(func() (err error) {
			ps, err = client.ListParticipants(ctx, tripId)
			return
		})
		eg.Go(func() (err error) {
			ss, err = client.ListSchedules(ctx, tripId)
			return
		})
		if err := eg.Wait(); err != nil {
			return err
		}

		report := views.Report(t, ps, ss, now())
		for _, it := range report.Items {
			if it.DenominatorMismatch {
				logger.Printf(
					"Trip Id:%d declares %d participants, but %d are registered",
					tripId, t.ParticipantCount, len(ps),
				)
			}
		}
		return common.Print(cl.Stdout(), report)
	}
}
