package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"

	"github.com/hitrip/tripops/cmd/tripops/subcommands/auth"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	initcmd "github.com/hitrip/tripops/cmd/tripops/subcommands/init"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/logger"
	submonitor "github.com/hitrip/tripops/cmd/tripops/subcommands/monitor"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/participant"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/place"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/schedule"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/serve"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/staff"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/stats"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/trip"
	subver "github.com/hitrip/tripops/cmd/tripops/subcommands/version"
	"github.com/hitrip/tripops/pkg/utils/try"
	"github.com/youta-t/flarc"
)

func main() {
	name := path.Base(os.Args[0])
	logger := logger.Default()
	logger.SetPrefix(fmt.Sprintf("[%s] ", name))

	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, os.Kill,
	)
	defer cancel()

	cf := try.To(common.Flags(".")).OrFatal(logger)
	init := try.To(initcmd.New()).OrFatal(logger)
	login := try.To(auth.NewLogin()).OrFatal(logger)
	logout := try.To(auth.NewLogout()).OrFatal(logger)
	whoami := try.To(auth.NewWhoami()).OrFatal(logger)
	trips := try.To(trip.New()).OrFatal(logger)
	schedules := try.To(schedule.New()).OrFatal(logger)
	participants := try.To(participant.New()).OrFatal(logger)
	places := try.To(place.New()).OrFatal(logger)
	staffs := try.To(staff.New()).OrFatal(logger)
	monitor := try.To(submonitor.New()).OrFatal(logger)
	statistics := try.To(stats.New()).OrFatal(logger)
	dashboard := try.To(serve.New()).OrFatal(logger)
	version := try.To(subver.New()).OrFatal(logger)

	tripops := try.To(
		flarc.NewCommandGroup(
			"Trip operations commandline interface",
			cf,
			flarc.WithSubcommand("init", init),
			flarc.WithSubcommand("login", login),
			flarc.WithSubcommand("logout", logout),
			flarc.WithSubcommand("whoami", whoami),
			flarc.WithSubcommand("trip", trips),
			flarc.WithSubcommand("schedule", schedules),
			flarc.WithSubcommand("participant", participants),
			flarc.WithSubcommand("place", places),
			flarc.WithSubcommand("staff", staffs),
			flarc.WithSubcommand("monitor", monitor),
			flarc.WithSubcommand("stats", statistics),
			flarc.WithSubcommand("serve", dashboard),
			flarc.WithSubcommand("version", version),
		),
	).OrFatal(logger)

	os.Exit(flarc.Run(ctx, tripops, flarc.WithHelp(true)))
}
