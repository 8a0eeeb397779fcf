package serve

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hitrip/tripops/cmd/tripops/dashboard"
	cuierr "github.com/hitrip/tripops/cmd/tripops/errors"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/cmd/tripops/subcommands/common"
	"github.com/hitrip/tripops/pkg/session"
	"github.com/hitrip/tripops/pkg/utils/filewatch"
	"github.com/youta-t/flarc"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type Flags struct {
	Addr         string `flag:"addr" metavar:"HOST:PORT" help:"address to listen."`
	Loglevel     string `flag:"loglevel" metavar:"debug|info|warn|error|off" help:"log level of the dashboard server."`
	AllowOrigins string `flag:"allow-origins" metavar:"ORIGIN,..." help:"comma separated origins allowed to open monitoring streams. default: same origin only."`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Serve the operation dashboard API on local.",
		Flags{Addr: "localhost:8080", Loglevel: "info"},
		flarc.Args{},
		common.NewTaskWithCommonFlag(Task),
		flarc.WithDescription(`
Serve the operation dashboard API on local, with the session of the profile.

Routes:

    GET /api/trips/
    GET /api/trips/{tripId}/
    GET /api/trips/{tripId}/schedules/           schedules grouped by day
    GET /api/trips/{tripId}/checklist/           preparation checklist
    GET /api/trips/{tripId}/monitoring/latest/   ?status=danger ... (repeatable)
    GET /api/trips/{tripId}/monitoring/alerts/
    GET /api/trips/{tripId}/monitoring/stream    websocket of latest telemetry
    GET /api/places/{placeId}/alternative/
    GET /api/stats/bookings/                     ?year=YYYY
    GET /api/session/

The server stops when the profile store is updated. Start it again to apply the change.
`),
	)
}

func Task(
	ctx context.Context,
	logger *log.Logger,
	commonFlag common.CommonFlags,
	cl flarc.Commandline[Flags],
	params []any,
) error {
	flags := cl.Flags()

	conn, err := common.Connect(logger, commonFlag)
	if err != nil {
		return err
	}
	defer func() {
		if err := conn.SaveSession(); err != nil {
			logger.Printf("failed to save session: %s", err)
		}
	}()

	locale, err := session.ParseLocale(conn.Profile.Locale)
	if err != nil {
		logger.Printf("%s. use %s", err, session.Korean)
		locale = session.Korean
	}

	conf := dashboard.Config{
		Addr:         flags.Addr,
		Loglevel:     flags.Loglevel,
		AllowOrigins: splitOrigins(flags.AllowOrigins),
	}

	app := fx.New(
		fx.Provide(
			func() rest.TripClient { return conn.Client },
			func() dashboard.Config { return conf },
			func() session.Locale { return locale },
			func() dashboard.Clock { return time.Now },
			func() *log.Logger { return logger },
		),
		dashboard.Module,
		fx.WithLogger(func() fxevent.Logger {
			if strings.ToLower(flags.Loglevel) == "debug" {
				return &fxevent.ConsoleLogger{W: cl.Stderr()}
			}
			return fxevent.NopLogger
		}),
	)
	if err := app.Err(); err != nil {
		return cuierr.NewCuiError("failed to build dashboard", cuierr.WithCause(err))
	}

	watching, stopWatching := untilProfileUpdated(ctx, logger, commonFlag.ProfileStore)
	defer stopWatching()

	startCtx, cancelStart := context.WithTimeout(ctx, fx.DefaultTimeout)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		return err
	}
	logger.Printf("dashboard is serving on %s", conf.Addr)

	exitCode := 0
	select {
	case <-watching.Done():
		if changed, ok := filewatch.AsChanged(watching); ok {
			logger.Printf("%s. quit to restart dashboard.", changed)
		}
	case sig := <-app.Wait():
		exitCode = sig.ExitCode
		if sig.Signal != nil {
			logger.Printf("stopping by %s", sig.Signal)
		}
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		return fmt.Errorf("dashboard stops with error: %w", err)
	}
	if exitCode != 0 {
		return fmt.Errorf("dashboard stops with exit code %d", exitCode)
	}
	return nil
}

// untilProfileUpdated returns a context done when ctx is done or the profile store is updated.
//
// When the store cannot be watched (for example, it does not exist), only ctx is observed.
func untilProfileUpdated(ctx context.Context, logger *log.Logger, store string) (context.Context, func()) {
	wctx, cancel, err := filewatch.UntilModifyContext(ctx, store)
	if err != nil {
		logger.Printf("profile store (%s) is not watched: %s", store, err)
		return ctx, func() {}
	}
	return wctx, cancel
}

func splitOrigins(s string) []string {
	origins := []string{}
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
