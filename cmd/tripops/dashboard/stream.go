package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hitrip/tripops/cmd/tripops/queries"
	"github.com/hitrip/tripops/cmd/tripops/rest"
	"github.com/hitrip/tripops/pkg/api/types/monitoring"
	"github.com/hitrip/tripops/pkg/echoutil"
	"github.com/hitrip/tripops/pkg/monitor"
	"github.com/labstack/echo/v4"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// CloseLoginRequired is the close code of streams stopped because the session is expired.
const CloseLoginRequired = 4401

// LatestRegistry runs a poller of latest telemetry per trip id.
type LatestRegistry = monitor.Registry[int, []monitoring.ParticipantLatest]

// Lifetime is done when the dashboard stops.
type Lifetime struct {
	context.Context
}

// StreamLatestHandler streams latest telemetry of a trip over websocket.
//
// Each message is a monitor.Frame. While at least one stream of a trip is open,
// the trip is polled.
func StreamLatestHandler(
	reg *LatestRegistry, tripIdParam string, upgrader websocket.Upgrader, lifetime Lifetime,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		tripId, ok := queries.ParseID(c.Param(tripIdParam))
		if !ok {
			return echoutil.NewHTTPError(http.StatusBadRequest, "invalid trip id", queries.ErrInvalidID)
		}

		ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			// upgrader has responded the error.
			c.Logger().Warnf("websocket upgrade failed: %s", err)
			return nil
		}
		defer ws.Close()

		poller, detach := reg.Attach(tripId)
		defer detach()
		snapshots, unsubscribe := poller.Subscribe()
		defer unsubscribe()

		closed := make(chan struct{})
		go func() {
			defer close(closed)
			ws.SetReadLimit(maxMessageSize)
			ws.SetReadDeadline(time.Now().Add(pongWait))
			ws.SetPongHandler(func(string) error {
				return ws.SetReadDeadline(time.Now().Add(pongWait))
			})
			for {
				if _, _, err := ws.ReadMessage(); err != nil {
					if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
						c.Logger().Infof("stream of Trip Id:%d is closed: %s", tripId, err)
					}
					return
				}
			}
		}()

		send := func(snap monitor.Snapshot[[]monitoring.ParticipantLatest]) bool {
			ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.WriteJSON(snap.Frame()); err != nil {
				return false
			}
			if rest.IsLoginRequired(snap.Err) {
				closeWith(ws, CloseLoginRequired, "login required")
				return false
			}
			return true
		}

		if snap, ok := poller.Latest(); ok && !send(snap) {
			return nil
		}

		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-closed:
				return nil
			case <-lifetime.Done():
				closeWith(ws, websocket.CloseGoingAway, "dashboard is stopping")
				return nil
			case snap := <-snapshots:
				if !send(snap) {
					return nil
				}
			case <-ticker.C:
				ws.SetWriteDeadline(time.Now().Add(writeWait))
				if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
					return nil
				}
			}
		}
	}
}

func closeWith(ws *websocket.Conn, code int, text string) {
	ws.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, text),
		time.Now().Add(writeWait),
	)
}
