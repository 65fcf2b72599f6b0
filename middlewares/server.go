package middlewares

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

const serviceName = "depgraph"

// errorBody turns the message of an http error into the json body we send.
// Plain strings are wrapped, everything else is sent as is.
func errorBody(he *echo.HTTPError) any {
	if m, ok := he.Message.(string); ok {
		return echo.Map{"message": m}
	}
	return he.Message
}

func handleError(err error, ctx echo.Context) {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		he = echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	attrs := []any{"method", ctx.Request().Method, "route", ctx.Path(), "status", he.Code}
	if he.Code >= 500 {
		slog.Error(err.Error(), attrs...)
	} else {
		slog.Warn(err.Error(), attrs...)
	}

	if ctx.Response().Committed {
		return
	}

	var sendErr error
	if ctx.Request().Method == http.MethodHead {
		sendErr = ctx.NoContent(he.Code)
	} else {
		sendErr = ctx.JSON(he.Code, errorBody(he))
	}
	if sendErr != nil {
		slog.Error("could not send error response", "err", sendErr)
	}
}

func Server() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(99)

	e.Pre(middleware.AddTrailingSlash())
	e.Use(otelecho.Middleware(serviceName))
	e.Use(requestLogger())
	e.Use(recovermiddleware())
	e.HTTPErrorHandler = handleError
	return e
}
