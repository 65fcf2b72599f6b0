package middlewares

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/l3montree-dev/depgraph/monitoring"
	"github.com/labstack/echo/v4"
)

var quietRoutes = map[string]struct{}{
	"/api/v1/health/":  {},
	"/api/v1/metrics/": {},
}

func statusClass(status int) string {
	return fmt.Sprintf("%dxx", status/100)
}

// requestLogger records every request in the duration histogram and logs
// the successful ones. Failed requests are logged by the error handler.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)
			elapsed := time.Since(start)

			route := ctx.Path()
			status := ctx.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			} else if err != nil {
				status = 500
			}
			monitoring.HTTPRequestDuration.WithLabelValues(route, statusClass(status)).Observe(elapsed.Seconds())

			if _, quiet := quietRoutes[route]; err == nil && !quiet {
				slog.Info("request", "method", ctx.Request().Method, "route", route, "status", status, "took", elapsed)
			}
			return err
		}
	}
}
