package middleware // per-route Prometheus metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/contacts-api/internal/metrics"
)

// Metrics records count and latency per route template.  Unmatched paths
// share one label so arbitrary URLs cannot blow up the series count.
func Metrics(m *metrics.HTTP) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			done := m.Begin()

			err := next(c)
			// let the error handler settle the status before reading it; the
			// error still travels up so the request logger can record it
			if err != nil && !c.Response().Committed {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			done(c.Request().Method, route, strconv.Itoa(c.Response().Status), time.Since(start).Seconds())
			return err
		}
	}
}
