package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestServer(t *testing.T) {
	t.Run("should turn panics into a 500 response", func(t *testing.T) {
		e := Server()
		e.GET("/boom/", func(ctx echo.Context) error {
			panic("boom")
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom/", nil))

		assert.Equal(t, 500, rec.Code)
		assert.JSONEq(t, `{"message":"internal server error"}`, rec.Body.String())
	})

	t.Run("should wrap string messages of http errors", func(t *testing.T) {
		e := Server()
		e.GET("/missing/", func(ctx echo.Context) error {
			return echo.NewHTTPError(404, "could not find project")
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Equal(t, 404, rec.Code)
		assert.JSONEq(t, `{"message":"could not find project"}`, rec.Body.String())
	})

	t.Run("should answer unknown routes with a wrapped not found message", func(t *testing.T) {
		e := Server()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nothing-here/", nil))

		assert.Equal(t, 404, rec.Code)
		assert.JSONEq(t, `{"message":"Not Found"}`, rec.Body.String())
	})

	t.Run("should send no body for failed head requests", func(t *testing.T) {
		e := Server()
		e.HEAD("/missing/", func(ctx echo.Context) error {
			return echo.NewHTTPError(404, "gone")
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/missing/", nil))

		assert.Equal(t, 404, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", statusClass(204))
	assert.Equal(t, "4xx", statusClass(409))
	assert.Equal(t, "5xx", statusClass(503))
}
