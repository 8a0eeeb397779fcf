package dashboard_test

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hitrip/tripops/cmd/tripops/dashboard"
	"github.com/hitrip/tripops/cmd/tripops/queries"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/cmd/tripops/rest/mock"
	testctx "github.com/hitrip/tripops/internal/testutils/context"
	"github.com/hitrip/tripops/pkg/api/types/monitoring"
	"github.com/hitrip/tripops/pkg/api/types/trips"
	"github.com/hitrip/tripops/pkg/monitor"
	"github.com/hitrip/tripops/pkg/query"
	"github.com/hitrip/tripops/pkg/session"
	"go.uber.org/fx/fxtest"
)

type server struct {
	*httptest.Server
	reg *dashboard.LatestRegistry
}

func newServer(t *testing.T, client rest.TripClient) server {
	t.Helper()
	lc := fxtest.NewLifecycle(t)
	lifetime := dashboard.NewLifetime(lc)
	q := queries.New(client, query.New())
	reg := dashboard.NewRegistry(lc, lifetime, q, log.New(io.Discard, "", 0))
	e := dashboard.BuildServer(
		dashboard.Config{Loglevel: "off"}, q, session.New(session.Korean), reg, clock, lifetime,
	)
	lc.RequireStart()

	svr := httptest.NewServer(e)
	t.Cleanup(func() {
		lc.RequireStop()
		svr.Close()
	})
	return server{Server: svr, reg: reg}
}

func (s server) ws(path string) string {
	return "ws" + strings.TrimPrefix(s.URL, "http") + path
}

// waitActive waits until the number of running pollers becomes n.
func (s server) waitActive(ctx context.Context, t *testing.T, n int) {
	t.Helper()
	for s.reg.Active() != n {
		select {
		case <-ctx.Done():
			t.Fatalf("active pollers: actual = %d, expected = %d", s.reg.Active(), n)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestServer_Routes(t *testing.T) {
	client := mock.New(t)
	client.Impl.ListTrips = func(context.Context) ([]trips.Trip, error) {
		return []trips.Trip{{Id: 1}}, nil
	}
	client.Impl.GetTrip = func(context.Context, int) (trips.Trip, error) {
		return trips.Trip{}, &rest.APIError{Status: ptr(401)}
	}
	svr := newServer(t, client)

	t.Run("path without trailing slash is routed", func(t *testing.T) {
		resp, err := http.Get(svr.URL + "/api/trips")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status: %d", resp.StatusCode)
		}
		body, _ := io.ReadAll(resp.Body)
		if got := decode[[]trips.Trip](t, body); len(got) != 1 {
			t.Errorf("unexpected: %s", body)
		}
	})

	t.Run("login required is responded as 401 with detail", func(t *testing.T) {
		resp, err := http.Get(svr.URL + "/api/trips/1/")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("status: %d", resp.StatusCode)
		}
		body, _ := io.ReadAll(resp.Body)
		got := decode[map[string]string](t, body)
		if got["detail"] == "" {
			t.Errorf("unexpected: %s", body)
		}
	})

	t.Run("unknown path", func(t *testing.T) {
		resp, err := http.Get(svr.URL + "/api/unknown/")
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status: %d", resp.StatusCode)
		}
	})
}

func TestStreamLatestHandler(t *testing.T) {
	ctx, cancel := testctx.WithTest(context.Background(), t)
	defer cancel()

	t.Run("streams frames while connected, and stops polling after disconnected", func(t *testing.T) {
		client := mock.New(t)
		client.Impl.ListLatest = func(_ context.Context, tripId int) ([]monitoring.ParticipantLatest, error) {
			return []monitoring.ParticipantLatest{{ParticipantId: 10 + tripId}}, nil
		}
		svr := newServer(t, client)

		conn, _, err := websocket.DefaultDialer.DialContext(ctx, svr.ws("/api/trips/1/monitoring/stream"), nil)
		if err != nil {
			t.Fatal(err)
		}
		var frame monitor.Frame[[]monitoring.ParticipantLatest]
		if err := conn.ReadJSON(&frame); err != nil {
			t.Fatal(err)
		}
		if frame.FetchedAt == nil || frame.Error != "" || len(frame.Value) != 1 || frame.Value[0].ParticipantId != 11 {
			t.Errorf("unexpected frame: %+v", frame)
		}
		if active := svr.reg.Active(); active != 1 {
			t.Errorf("active pollers: %d", active)
		}

		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
		svr.waitActive(ctx, t, 0)
	})

	t.Run("login required closes the stream", func(t *testing.T) {
		client := mock.New(t)
		client.Impl.ListLatest = func(context.Context, int) ([]monitoring.ParticipantLatest, error) {
			return nil, &rest.APIError{Status: ptr(401)}
		}
		svr := newServer(t, client)

		conn, _, err := websocket.DefaultDialer.DialContext(ctx, svr.ws("/api/trips/2/monitoring/stream/"), nil)
		if err != nil {
			t.Fatal(err)
		}
		defer conn.Close()

		var frame monitor.Frame[[]monitoring.ParticipantLatest]
		if err := conn.ReadJSON(&frame); err != nil {
			t.Fatal(err)
		}
		if frame.Error == "" || frame.FetchedAt != nil {
			t.Errorf("unexpected frame: %+v", frame)
		}

		_, _, err = conn.ReadMessage()
		closeErr := new(websocket.CloseError)
		if !errors.As(err, &closeErr) || closeErr.Code != dashboard.CloseLoginRequired {
			t.Errorf("unexpected: %v", err)
		}
		svr.waitActive(ctx, t, 0)
	})

	t.Run("invalid trip id is rejected before upgrade", func(t *testing.T) {
		client := mock.New(t)
		svr := newServer(t, client)

		_, resp, err := websocket.DefaultDialer.DialContext(ctx, svr.ws("/api/trips/abc/monitoring/stream"), nil)
		if err == nil {
			t.Fatal("expected error")
		}
		if resp == nil || resp.StatusCode != http.StatusBadRequest {
			t.Errorf("unexpected response: %+v", resp)
		}
		if active := svr.reg.Active(); active != 0 {
			t.Errorf("active pollers: %d", active)
		}
	})
}
