package schedule

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/hitrip/tripops/cmd/tripops/env"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	"github.com/hitrip/tripops/pkg/api/types/schedules"
	"github.com/hitrip/tripops/pkg/views"
	"github.com/youta-t/flarc"
	"gopkg.in/yaml.v3"
)

type ImportFlags struct {
	DryRun bool `flag:"dry-run" alias:"n" help:"print Schedules to be added, without adding them."`
}

// ImportResult is the outcome of an import.
type ImportResult struct {
	Added  []schedules.Schedule `json:"added"`
	Failed []ImportFailure      `json:"failed,omitempty"`
}

type ImportFailure struct {
	Index   int              `json:"index"`
	Spec    schedules.Create `json:"spec"`
	Message string           `json:"message"`
}

func NewImport() (flarc.Command, error) {
	return flarc.NewCommand(
		"Add Schedules in a YAML file into a Trip.",
		ImportFlags{},
		flarc.Args{
			{Name: ARG_TRIP_ID, Required: true, Help: tripIdHelp},
			{Name: ARG_FILE, Required: true, Help: "YAML file of Schedules. '-' reads stdin."},
		},
		common.NewTask(ImportTask),
		flarc.WithDescription(`
Add Schedules in a YAML file into a Trip.

The file is a list of Schedules:

    - day: 1
      start: "09:00"
      end: "11:00"
      content: Seongsan Ilchulbong
      meetingPoint: hotel lobby
      transport: bus
      budget: 5000
      place: 12
    - day: 1
      start: "12:00"
      content: lunch

Schedules without "order" are appended to the end of their day.
Schedules failed to be added are reported, and the others are still added.
`),
	)
}

func ImportTask(
	ctx context.Context,
	logger *log.Logger,
	_ env.TripEnv,
	client rest.TripClient,
	cl flarc.Commandline[ImportFlags],
	params []any,
) error {
	tripId, err := common.ID(cl.Args(), ARG_TRIP_ID)
	if err != nil {
		return err
	}

	file := cl.Args()[ARG_FILE][0]
	specs, err := readSpecs(file, cl.Stdin())
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	for n, s := range specs {
		if err := validate(s); err != nil {
			return errors.Join(flarc.ErrUsage, fmt.Errorf("%s: #%d: %w", file, n+1, err))
		}
	}

	existing, err := client.ListSchedules(ctx, tripId)
	if err != nil {
		return err
	}
	specs = assignOrders(existing, specs)
	if cl.Flags().DryRun {
		return common.Print(cl.Stdout(), specs)
	}

	bar := pb.New(len(specs))
	bar.SetWriter(cl.Stderr())
	bar.Start()

	result := ImportResult{Added: []schedules.Schedule{}}
	for n, s := range specs {
		created, err := client.CreateSchedule(ctx, tripId, s)
		bar.Increment()
		if err != nil {
			if errors.Is(err, context.Canceled) || rest.IsLoginRequired(err) {
				bar.Finish()
				return err
			}
			logger.Printf("#%d: failed to add: %s", n+1, err)
			result.Failed = append(result.Failed, ImportFailure{Index: n + 1, Spec: s, Message: err.Error()})
			continue
		}
		result.Added = append(result.Added, created)
	}
	bar.Finish()

	if err := common.Print(cl.Stdout(), result); err != nil {
		return err
	}
	if 0 < len(result.Failed) {
		return fmt.Errorf("%d of %d Schedules are not added", len(result.Failed), len(specs))
	}
	return nil
}

func readSpecs(file string, stdin io.Reader) ([]schedules.Create, error) {
	var r io.Reader
	if file == "-" {
		r = stdin
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	specs := []schedules.Create{}
	if err := yaml.NewDecoder(r).Decode(&specs); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return specs, nil
}

// assignOrders fills missing orders, so that schedules are appended to their day
// in the order of the file.
func assignOrders(existing []schedules.Schedule, specs []schedules.Create) []schedules.Create {
	known := append([]schedules.Schedule{}, existing...)
	ret := make([]schedules.Create, 0, len(specs))
	for _, s := range specs {
		if s.Order == nil {
			next := views.NextOrder(known, s.DayNumber)
			s.Order = &next
		}
		known = append(known, schedules.Schedule{DayNumber: s.DayNumber, Order: *s.Order})
		ret = append(ret, s)
	}
	return ret
}
