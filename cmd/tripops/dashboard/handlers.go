package dashboard

import (
	"net/http"
	"strconv"
	"time"

	"github.com/hitrip/tripops/cmd/tripops/queries"
	"github.com/hitrip/tripops/pkg/api/types/monitoring"
	"github.com/hitrip/tripops/pkg/api/types/participants"
	"github.com/hitrip/tripops/pkg/api/types/schedules"
	"github.com/hitrip/tripops/pkg/api/types/trips"
	"github.com/hitrip/tripops/pkg/echoutil"
	"github.com/hitrip/tripops/pkg/session"
	"github.com/hitrip/tripops/pkg/views"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

// Clock tells the current time. It decides "today" of checklists and "this year" of stats.
type Clock func() time.Time

// pathID reads a path parameter as an id. Invalid ids are read as 0,
// and queries reject them with ErrInvalidID.
func pathID(c echo.Context, param string) int {
	id, _ := queries.ParseID(c.Param(param))
	return id
}

func GetTripsHandler(q *queries.Queries) echo.HandlerFunc {
	return func(c echo.Context) error {
		ts, err := q.Trips(c.Request().Context())
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, ts)
	}
}

func GetTripHandler(q *queries.Queries, tripIdParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		t, err := q.Trip(c.Request().Context(), pathID(c, tripIdParam))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, t)
	}
}

// GetSchedulesHandler responds schedules of a trip grouped by day.
func GetSchedulesHandler(q *queries.Queries, tripIdParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ss, err := q.Schedules(c.Request().Context(), pathID(c, tripIdParam))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, views.GroupSchedulesByDay(ss))
	}
}

func GetChecklistHandler(q *queries.Queries, tripIdParam string, now Clock) echo.HandlerFunc {
	return func(c echo.Context) error {
		tripId := pathID(c, tripIdParam)

		var (
			t  trips.Trip
			ps []participants.TripParticipant
			ss []schedules.Schedule
		)
		eg, ctx := errgroup.WithContext(c.Request().Context())
		eg.Go(func() (err error) {
			t, err = q.Trip(ctx, tripId)
			return
		})
		eg.Go(func() (err error) {
			ps, err = q.Participants(ctx, tripId)
			return
		})
		eg.Go(func() (err error) {
			ss, err = q.Schedules(ctx, tripId)
			return
		})
		if err := eg.Wait(); err != nil {
			return httpError(err)
		}

		report := views.Report(t, ps, ss, now())
		for _, it := range report.Items {
			if it.DenominatorMismatch {
				c.Logger().Warnf(
					"Trip Id:%d declares %d participants, but %d are registered",
					tripId, t.ParticipantCount, len(ps),
				)
			}
		}
		return c.JSON(http.StatusOK, report)
	}
}

// GetLatestHandler responds the latest telemetry of participants.
//
// Query "status" (repeatable) picks participants in the health status.
func GetLatestHandler(q *queries.Queries, tripIdParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		latest, err := q.Latest(c.Request().Context(), pathID(c, tripIdParam))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, views.FilterByAlert(latest, c.QueryParams()["status"]...))
	}
}

type AlertsView struct {
	Alerts []monitoring.Alert `json:"alerts"`
	Counts map[string]int     `json:"counts"`
}

func GetAlertsHandler(q *queries.Queries, tripIdParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		alerts, err := q.Alerts(c.Request().Context(), pathID(c, tripIdParam))
		if err != nil {
			return httpError(err)
		}
		if alerts == nil {
			alerts = []monitoring.Alert{}
		}
		return c.JSON(http.StatusOK, AlertsView{Alerts: alerts, Counts: views.AlertCounts(alerts)})
	}
}

func GetAlternativeHandler(q *queries.Queries, placeIdParam string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := q.Place(c.Request().Context(), pathID(c, placeIdParam))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, views.AlternativeOf(p))
	}
}

// GetBookingsHandler responds monthly count of trips.
//
// Query "year" selects the year. Default is this year.
func GetBookingsHandler(q *queries.Queries, now Clock) echo.HandlerFunc {
	return func(c echo.Context) error {
		year := now().Year()
		if y := c.QueryParam("year"); y != "" {
			parsed, err := strconv.Atoi(y)
			if err != nil || parsed <= 0 {
				return echoutil.NewHTTPError(http.StatusBadRequest, "year should be a positive integer", err)
			}
			year = parsed
		}

		ts, err := q.Trips(c.Request().Context())
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, views.SummarizeBookings(ts, year))
	}
}

// GetSessionHandler responds the user of the current session and the locale.
func GetSessionHandler(q *queries.Queries, state *session.State) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := q.Bootstrap(c.Request().Context(), state); err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, state.Snapshot())
	}
}
