package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/hitrip/tripops/cmd/tripops/env"
	"github.com/hitrip/tripops/cmd/tripops/queries"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	kflag "github.com/hitrip/tripops/pkg/commandline/flag"
	"github.com/hitrip/tripops/pkg/monitor"
	"github.com/hitrip/tripops/pkg/query"
	"github.com/youta-t/flarc"
)

const (
	TargetLatest = "latest"
	TargetAlerts = "alerts"
)

type WatchFlags struct {
	Target   string             `flag:"target" alias:"t" metavar:"latest|alerts" help:"resource to be watched."`
	Schedule string             `flag:"schedule" alias:"s" metavar:"SCHEDULE" help:"poll schedule: duration (5s), '@every 5s' or cron spec. default: 10s for latest, 5s for alerts."`
	Count    *kflag.OptionalInt `flag:"count" alias:"n" metavar:"N" help:"stop after N frames. default: until interrupted."`
}

func NewWatch() (flarc.Command, error) {
	return flarc.NewCommand(
		"Poll monitoring of a Trip and print each result.",
		WatchFlags{Target: TargetLatest, Count: &kflag.OptionalInt{}},
		tripArgs(),
		common.NewTask(WatchTask),
		flarc.WithDescription(`
Poll monitoring of a Trip on schedule, and print each result as a JSON frame.

A failed poll is printed with "error", and the value of the last successful poll.
Watching stops when interrupted, N frames are printed, or login is required.
`),
	)
}

func WatchTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[WatchFlags],
	params []any,
) error {
	flags := cl.Flags()
	tripId, err := common.ID(cl.Args(), ARG_TRIP_ID)
	if err != nil {
		return err
	}

	count := 0
	if n := flags.Count.Value(); n != nil {
		if *n <= 0 {
			return errors.Join(flarc.ErrUsage, errors.New("--count should be positive"))
		}
		count = *n
	}

	q := queries.New(client, query.New())
	switch flags.Target {
	case TargetLatest:
		poller, err := newPoller(q, q.LatestQuery(tripId), flags.Schedule, logger)
		if err != nil {
			return err
		}
		return watch(ctx, poller, cl.Stdout(), count)
	case TargetAlerts:
		poller, err := newPoller(q, q.AlertsQuery(tripId), flags.Schedule, logger)
		if err != nil {
			return err
		}
		return watch(ctx, poller, cl.Stdout(), count)
	default:
		return errors.Join(
			flarc.ErrUsage,
			fmt.Errorf("--target should be %s or %s: %s", TargetLatest, TargetAlerts, flags.Target),
		)
	}
}

func newPoller[T any](q *queries.Queries, qry query.Query[T], schedule string, logger *log.Logger) (*monitor.Poller[T], error) {
	if schedule == "" {
		return queries.Poll(q, qry, monitor.WithLogger(logger)), nil
	}
	sched, err := monitor.ParseSchedule(schedule)
	if err != nil {
		return nil, errors.Join(flarc.ErrUsage, err)
	}
	return queries.PollOn(q, qry, sched, monitor.WithLogger(logger)), nil
}

// watch prints snapshots of poller until ctx is done or count frames are printed.
//
// count <= 0 means no limit.
func watch[T any](ctx context.Context, poller *monitor.Poller[T], w io.Writer, count int) error {
	snapshots, unsubscribe := poller.Subscribe()
	defer unsubscribe()

	ctx, cancel := context.WithCancel(ctx)
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		poller.Run(ctx)
	}()
	defer func() {
		cancel()
		<-stopped
	}()

	for printed := 0; count <= 0 || printed < count; printed++ {
		var snap monitor.Snapshot[T]
		select {
		case <-ctx.Done():
			return nil
		case snap = <-snapshots:
		}

		if rest.IsLoginRequired(snap.Err) {
			return snap.Err
		}
		if err := common.Print(w, snap.Frame()); err != nil {
			return err
		}
	}
	return nil
}
