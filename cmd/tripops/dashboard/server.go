// Package dashboard is a local backend of the operation dashboard.
//
// It serves derived views of the travel-operations backend as JSON under /api/,
// and streams monitoring snapshots over websocket.
package dashboard

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/hitrip/tripops/cmd/tripops/queries"
	"github.com/hitrip/tripops/pkg/echoutil"
	"github.com/hitrip/tripops/pkg/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var API_ROOT = "/api"

func api(subpath string) string {
	if !strings.HasSuffix(subpath, "/") {
		subpath += "/"
	}
	return fmt.Sprintf("%s/%s", API_ROOT, subpath)
}

type Config struct {
	// Address to listen, like "localhost:8080".
	Addr string

	// debug|info|warn|error|off
	Loglevel string

	// Origins allowed to open monitoring streams. Empty means same origin only.
	AllowOrigins []string
}

func BuildServer(
	conf Config,
	q *queries.Queries,
	state *session.State,
	reg *LatestRegistry,
	now Clock,
	lifetime Lifetime,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	echoutil.SetLevel(e, conf.Loglevel)
	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		e.DefaultHTTPErrorHandler(err, ctx)
		e.Logger.Error(err)
	}
	e.Pre(middleware.AddTrailingSlash())
	e.Use(echoutil.LogHandlerFunc)

	tripId := "tripId"
	placeId := "placeId"

	e.GET(api("trips"), GetTripsHandler(q))
	e.GET(api("trips/:tripId"), GetTripHandler(q, tripId))
	e.GET(api("trips/:tripId/schedules"), GetSchedulesHandler(q, tripId))
	e.GET(api("trips/:tripId/checklist"), GetChecklistHandler(q, tripId, now))
	e.GET(api("trips/:tripId/monitoring/latest"), GetLatestHandler(q, tripId))
	e.GET(api("trips/:tripId/monitoring/alerts"), GetAlertsHandler(q, tripId))
	e.GET(
		api("trips/:tripId/monitoring/stream"),
		StreamLatestHandler(reg, tripId, upgrader(conf.AllowOrigins), lifetime),
	)
	e.GET(api("places/:placeId/alternative"), GetAlternativeHandler(q, placeId))
	e.GET(api("stats/bookings"), GetBookingsHandler(q, now))
	e.GET(api("session"), GetSessionHandler(q, state))

	return e
}

func upgrader(allowOrigins []string) websocket.Upgrader {
	u := websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024}
	if len(allowOrigins) == 0 {
		return u
	}
	u.CheckOrigin = func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(allowOrigins, origin)
	}
	return u
}
