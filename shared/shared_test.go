// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shared

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestContext(target string) echo.Context {
	e := echo.New()
	return e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), httptest.NewRecorder())
}

func TestGetEngineConfigFromEnv(t *testing.T) {
	t.Run("should use the defaults", func(t *testing.T) {
		t.Setenv("SAFE_VERSION_MAX_CANDIDATES", "")
		t.Setenv("REGISTRY_MIN_INTERVAL", "")

		cfg := GetEngineConfigFromEnv()
		assert.Equal(t, 50, cfg.SafeVersionMaxCand)
		assert.Equal(t, 2, cfg.SubgraphDepth)
		assert.Equal(t, 150, cfg.SubgraphMaxNodes)
		assert.Equal(t, 600*time.Millisecond, cfg.RegistryMinInterval)
	})

	t.Run("should read overrides and skip invalid values", func(t *testing.T) {
		t.Setenv("SAFE_VERSION_MAX_CANDIDATES", "20")
		t.Setenv("REGISTRY_MIN_INTERVAL", "not-a-duration")
		t.Setenv("POPULATION_CONCURRENCY", "-3")
		t.Setenv("REGISTRY_URL", "http://localhost:4873")

		cfg := GetEngineConfigFromEnv()
		assert.Equal(t, 20, cfg.SafeVersionMaxCand)
		assert.Equal(t, 600*time.Millisecond, cfg.RegistryMinInterval)
		assert.Equal(t, 8, cfg.PopulationConcurrent)
		assert.Equal(t, "http://localhost:4873", cfg.RegistryURL)
	})
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel(""))
}

func TestCacheInvalidationFromPayload(t *testing.T) {
	t.Run("should read a local payload", func(t *testing.T) {
		msg := CacheInvalidationMessage{Keys: []string{"score:express"}, Prefixes: []string{"safe:"}}
		assert.Equal(t, msg, CacheInvalidationFromPayload(msg.GetPayload()))
	})

	t.Run("should read a json decoded payload", func(t *testing.T) {
		msg := CacheInvalidationFromPayload(map[string]any{
			"keys":     []any{"score:express", 42},
			"prefixes": nil,
		})
		assert.Equal(t, []string{"score:express"}, msg.Keys)
		assert.Nil(t, msg.Prefixes)
	})
}

func TestGetUUIDParam(t *testing.T) {
	id := uuid.New()

	t.Run("should parse the param", func(t *testing.T) {
		ctx := newTestContext("/")
		ctx.SetParamNames("projectID")
		ctx.SetParamValues(id.String())

		parsed, err := GetUUIDParam(ctx, "projectID")
		assert.NoError(t, err)
		assert.Equal(t, id, parsed)
	})

	t.Run("should fail for a missing param", func(t *testing.T) {
		_, err := GetUUIDParam(newTestContext("/"), "projectID")
		assert.ErrorContains(t, err, "missing path parameter projectID")
	})

	t.Run("should fail for an invalid uuid", func(t *testing.T) {
		ctx := newTestContext("/")
		ctx.SetParamNames("projectID")
		ctx.SetParamValues("abc")

		_, err := GetUUIDParam(ctx, "projectID")
		assert.ErrorContains(t, err, "invalid path parameter projectID")
	})
}

func TestGetSafeVersionQuery(t *testing.T) {
	t.Run("should signal the project policy without params", func(t *testing.T) {
		_, _, ok, err := GetSafeVersionQuery(newTestContext("/"))
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should default the missing param", func(t *testing.T) {
		severity, excludeBanned, ok, err := GetSafeVersionQuery(newTestContext("/?severity=moderate"))
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, dtos.SeverityMedium, severity)
		assert.True(t, excludeBanned)
	})

	t.Run("should reject invalid values", func(t *testing.T) {
		_, _, _, err := GetSafeVersionQuery(newTestContext("/?severity=extreme"))
		assert.Error(t, err)

		_, _, _, err = GetSafeVersionQuery(newTestContext("/?excludeBanned=maybe"))
		assert.Error(t, err)
	})
}
