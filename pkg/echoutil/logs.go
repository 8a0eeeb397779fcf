// Package echoutil provides middlewares and error helpers for echo servers.
package echoutil

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// LogHandlerFunc logs each request and its response with a request id.
//
// The id is taken from X-Request-Id of the request, or generated.
// It is echoed back in the response header.
func LogHandlerFunc(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		rid := req.Header.Get(echo.HeaderXRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Response().Header().Set(echo.HeaderXRequestID, rid)

		begin := time.Now()
		c.Logger().Infof("< [%s] %s %s", rid, req.Method, req.URL)

		err := next(c)

		c.Logger().Infof(
			"> [%s] %s %s: status = %d in %v / error = %v",
			rid, req.Method, req.URL, c.Response().Status, time.Since(begin), err,
		)
		return err
	}
}

// SetLevel sets log level of e by name: debug, info, warn, error or off.
//
// Unknown names fall back to warn.
func SetLevel(e *echo.Echo, loglevel string) {
	switch strings.ToLower(loglevel) {
	case "debug":
		e.Logger.SetLevel(log.DEBUG)
	case "info":
		e.Logger.SetLevel(log.INFO)
	case "warn", "":
		e.Logger.SetLevel(log.WARN)
	case "error":
		e.Logger.SetLevel(log.ERROR)
	case "off":
		e.Logger.SetLevel(log.OFF)
	default:
		e.Logger.SetLevel(log.WARN)
		e.Logger.Warnf("unknown loglevel: %s . fall-backed to warn", loglevel)
	}
}
