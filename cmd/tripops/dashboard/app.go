package dashboard

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/hitrip/tripops/cmd/tripops/queries"
	"github.com/hitrip/tripops/pkg/api/types/monitoring"
	"github.com/hitrip/tripops/pkg/monitor"
	"github.com/hitrip/tripops/pkg/query"
	"github.com/hitrip/tripops/pkg/session"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Module composes the dashboard.
//
// It requires rest.TripClient, Config, session.Locale, Clock and *log.Logger to be provided.
var Module = fx.Options(
	fx.Provide(
		NewLifetime,
		NewCache,
		queries.New,
		session.New,
		NewRegistry,
		BuildServer,
	),
	fx.Invoke(Start),
)

func NewLifetime(lc fx.Lifecycle) Lifetime {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
	return Lifetime{Context: ctx}
}

func NewCache() *query.Cache {
	return query.New()
}

// NewRegistry makes LatestRegistry polling at the refetch interval of latest telemetry.
func NewRegistry(lc fx.Lifecycle, lifetime Lifetime, q *queries.Queries, logger *log.Logger) *LatestRegistry {
	reg := monitor.NewRegistry(
		lifetime,
		func(tripId int) *monitor.Poller[[]monitoring.ParticipantLatest] {
			return queries.Poll(q, q.LatestQuery(tripId), monitor.WithLogger(logger))
		},
	)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			reg.Close()
			return nil
		},
	})
	return reg
}

// Start makes e listen while the app runs. When it fails to listen, the app is shut down.
func Start(lc fx.Lifecycle, shutdowner fx.Shutdowner, e *echo.Echo, conf Config) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				err := e.Start(conf.Addr)
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					e.Logger.Error("server stops with error: ", err)
					shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			e.Logger.Info("shutting down...")
			return e.Shutdown(ctx)
		},
	})
}
