package monitor

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hitrip/tripops/cmd/tripops/env"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	kflag "github.com/hitrip/tripops/pkg/commandline/flag"
	"github.com/hitrip/tripops/pkg/views"
	"github.com/youta-t/flarc"
)

const (
	ARG_TRIP_ID        = "TRIP_ID"
	ARG_PARTICIPANT_ID = "PARTICIPANT_ID"
)

func New() (flarc.Command, error) {
	alerts, err := NewAlerts()
	if err != nil {
		return nil, err
	}
	latest, err := NewLatest()
	if err != nil {
		return nil, err
	}
	history, err := NewHistory()
	if err != nil {
		return nil, err
	}
	watch, err := NewWatch()
	if err != nil {
		return nil, err
	}
	demo, err := NewDemo()
	if err != nil {
		return nil, err
	}
	return flarc.NewCommandGroup(
		"Monitor health and location of Participants during a Trip.",
		struct{}{},
		flarc.WithSubcommand("alerts", alerts),
		flarc.WithSubcommand("latest", latest),
		flarc.WithSubcommand("history", history),
		flarc.WithSubcommand("watch", watch),
		flarc.WithSubcommand("demo", demo),
	)
}

func tripArgs() flarc.Args {
	return flarc.Args{
		{Name: ARG_TRIP_ID, Required: true, Help: "Id of the Trip to be monitored."},
	}
}

type AlertsFlags struct {
	Summary bool `flag:"summary" help:"print the number of alerts for each alert type, instead of alerts."`
}

func NewAlerts() (flarc.Command, error) {
	return flarc.NewCommand(
		"List health alerts of a Trip.",
		AlertsFlags{},
		tripArgs(),
		common.NewTask(AlertsTask),
	)
}

func AlertsTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[AlertsFlags],
	params []any,
) error {
	tripId, err := common.ID(cl.Args(), ARG_TRIP_ID)
	if err != nil {
		return err
	}
	alerts, err := client.ListAlerts(ctx, tripId)
	if err != nil {
		return err
	}
	if cl.Flags().Summary {
		return common.Print(cl.Stdout(), views.AlertCounts(alerts))
	}
	return common.Print(cl.Stdout(), alerts)
}

type LatestFlags struct {
	Status *kflag.Argslice `flag:"status" metavar:"normal|caution|danger" help:"show only Participants in the health status. Repeatable."`
}

func NewLatest() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show the latest health and location of each Participant.",
		LatestFlags{Status: &kflag.Argslice{}},
		tripArgs(),
		common.NewTask(LatestTask),
	)
}

func LatestTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[LatestFlags],
	params []any,
) error {
	tripId, err := common.ID(cl.Args(), ARG_TRIP_ID)
	if err != nil {
		return err
	}
	latest, err := client.ListLatest(ctx, tripId)
	if err != nil {
		return err
	}
	var statuses []string
	if s := cl.Flags().Status; s != nil {
		statuses = *s
	}
	return common.Print(cl.Stdout(), views.FilterByAlert(latest, statuses...))
}

type HistoryFlags struct {
	Hours     *kflag.OptionalInt `flag:"hours" metavar:"HOURS" help:"length of history in hours. default: decided by the backend."`
	HeartRate bool               `flag:"heart-rate" help:"print heart rate series ordered by time, instead of raw history."`
}

func NewHistory() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show health and location history of a Participant.",
		HistoryFlags{Hours: &kflag.OptionalInt{}},
		flarc.Args{
			{Name: ARG_TRIP_ID, Required: true, Help: "Id of the Trip."},
			{Name: ARG_PARTICIPANT_ID, Required: true, Help: "Id of the Participant."},
		},
		common.NewTask(HistoryTask),
	)
}

func HistoryTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[HistoryFlags],
	params []any,
) error {
	flags := cl.Flags()
	hours := 0
	if h := flags.Hours.Value(); h != nil {
		if *h <= 0 {
			return errors.Join(flarc.ErrUsage, errors.New("--hours should be positive"))
		}
		hours = *h
	}
	tripId, err := common.ID(cl.Args(), ARG_TRIP_ID)
	if err != nil {
		return err
	}
	participantId, err := common.ID(cl.Args(), ARG_PARTICIPANT_ID)
	if err != nil {
		return err
	}

	history, err := client.GetParticipantHistory(ctx, tripId, participantId, hours)
	if err != nil {
		return fmt.Errorf("%w: Participant Id:%d", err, participantId)
	}
	if flags.HeartRate {
		return common.Print(cl.Stdout(), views.HeartRateSeries(history))
	}
	return common.Print(cl.Stdout(), history)
}

func NewDemo() (flarc.Command, error) {
	return flarc.NewCommand(
		"Generate demo telemetry for a Trip.",
		struct{}{},
		tripArgs(),
		common.NewTask(DemoTask),
		flarc.WithDescription(`
Ask the backend to generate demo health and location records for Participants of the Trip.

Generated records are visible with "alerts", "latest" and "history".
`),
	)
}

func DemoTask(
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
	r, err := client.GenerateDemo(ctx, tripId)
	if err != nil {
		return err
	}
	if r.Message != "" {
		logger.Println(r.Message)
	}
	return common.Print(cl.Stdout(), r)
}
