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

package vulndb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/l3montree-dev/depgraph/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPackument = `{
	"name": "left-pad",
	"dist-tags": {"latest": "1.2.0", "next": "2.0.0"},
	"versions": {
		"1.0.0": {"name": "left-pad", "version": "1.0.0", "dependencies": {"a": "^1.0.0"}},
		"1.2.0": {"name": "left-pad", "version": "1.2.0", "deprecated": "use 2.x", "scripts": {"postinstall": "node x.js"}},
		"1.3.0-beta.1": {"name": "left-pad", "version": "1.3.0-beta.1"},
		"2.0.0": {"name": "left-pad", "version": "2.0.0"}
	},
	"time": {
		"created": "2020-01-01T00:00:00.000Z",
		"1.0.0": "2020-01-01T00:00:00.000Z",
		"1.2.0": "2021-01-01T00:00:00.000Z",
		"2.0.0": "2022-01-01T00:00:00.000Z",
		"unpublished": {"time": "2023-01-01T00:00:00.000Z"}
	}
}`

func testEngineConfig(url string) shared.EngineConfig {
	return shared.EngineConfig{
		RegistryURL:         url,
		DownloadsURL:        url + "/downloads",
		RegistryMinInterval: time.Millisecond,
		RegistryTimeout:     200 * time.Millisecond,
		RegistryMaxRetries:  3,
		PackumentCacheTTL:   time.Minute,
	}
}

func newTestClient(cfg shared.EngineConfig) *npmRegistryClient {
	return NewNpmRegistryClient(cfg, NewRegistryRateLimiter(cfg))
}

func TestRegistryClientResolve(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/left-pad" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(testPackument)) // nolint:errcheck
	}))
	defer srv.Close()

	client := newTestClient(testEngineConfig(srv.URL))
	ctx := context.Background()

	cases := []struct {
		versionRange string
		expected     string
	}{
		{"^1.0.0", "1.2.0"},
		{"^2.0.0", "2.0.0"},
		{"next", "2.0.0"},
		{"", "1.2.0"},
		{"*", "1.2.0"},
		{"1.0.0", "1.0.0"},
		{"=1.0.0", "1.0.0"},
		{"~1.0.0", "1.0.0"},
		{">=1.0.0 <1.2.0", "1.0.0"},
		{"1.3.0-beta.1", "1.3.0-beta.1"},
		{"1", "1.2.0"},
		{"2", "2.0.0"},
		{"1.0", "1.0.0"},
		{"1.2", "1.2.0"},
		{"1.x", "1.2.0"},
		{"v2.0.0", "2.0.0"},
	}
	for _, c := range cases {
		t.Run("should resolve "+c.versionRange+" to "+c.expected, func(t *testing.T) {
			resolved, err := client.Resolve(ctx, "left-pad", c.versionRange)
			require.NoError(t, err)
			assert.Equal(t, c.expected, resolved.Version)
			assert.Equal(t, "left-pad", resolved.Name)
		})
	}

	t.Run("should fetch the packument only once", func(t *testing.T) {
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("should expose dependencies, deprecation and install scripts", func(t *testing.T) {
		resolved, err := client.Resolve(ctx, "left-pad", "1.0.0")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"a": "^1.0.0"}, resolved.Dependencies)
		assert.Nil(t, resolved.Deprecation)
		assert.False(t, resolved.HasInstallScript)

		resolved, err = client.Resolve(ctx, "left-pad", "1.2.0")
		require.NoError(t, err)
		require.NotNil(t, resolved.Deprecation)
		assert.Equal(t, "use 2.x", *resolved.Deprecation)
		assert.True(t, resolved.HasInstallScript)
	})

	t.Run("should resolve npm aliases to the aliased package", func(t *testing.T) {
		resolved, err := client.Resolve(ctx, "my-pad", "npm:left-pad@^2.0.0")
		require.NoError(t, err)
		assert.Equal(t, "left-pad", resolved.Name)
		assert.Equal(t, "2.0.0", resolved.Version)
	})

	t.Run("should report unsatisfiable ranges as not found", func(t *testing.T) {
		_, err := client.Resolve(ctx, "left-pad", "^3.0.0")
		assert.ErrorIs(t, err, shared.ErrPackageNotFound)
	})

	t.Run("should report non semver references as not found", func(t *testing.T) {
		_, err := client.Resolve(ctx, "left-pad", "git+https://github.com/left-pad/left-pad.git")
		assert.ErrorIs(t, err, shared.ErrPackageNotFound)
	})

	t.Run("should report unknown packages as not found", func(t *testing.T) {
		_, err := client.Resolve(ctx, "does-not-exist", "^1.0.0")
		assert.ErrorIs(t, err, shared.ErrPackageNotFound)
	})

	t.Run("should list all versions in ascending order", func(t *testing.T) {
		versions, err := client.Versions(ctx, "left-pad")
		require.NoError(t, err)
		raw := make([]string, 0, len(versions))
		for _, v := range versions {
			raw = append(raw, v.Version)
		}
		assert.Equal(t, []string{"1.0.0", "1.2.0", "1.3.0-beta.1", "2.0.0"}, raw)
		assert.Equal(t, 2021, versions[1].PublishedAt.Year())
		assert.True(t, versions[2].PublishedAt.IsZero())
	})
}

func TestRegistryClientRateLimiting(t *testing.T) {
	t.Run("should space consecutive requests by the minimum interval", func(t *testing.T) {
		var mu sync.Mutex
		var times []time.Time
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			times = append(times, time.Now())
			mu.Unlock()
			w.Write([]byte(`{"name": "x", "versions": {}}`)) // nolint:errcheck
		}))
		defer srv.Close()

		cfg := testEngineConfig(srv.URL)
		cfg.RegistryMinInterval = 50 * time.Millisecond
		client := newTestClient(cfg)

		var wg sync.WaitGroup
		for _, name := range []string{"a", "b", "c", "d"} {
			wg.Add(1)
			go func(name string) {
				defer wg.Done()
				_, _ = client.Versions(context.Background(), name)
			}(name)
		}
		wg.Wait()

		require.Len(t, times, 4)
		for i := 1; i < len(times); i++ {
			assert.GreaterOrEqual(t, times[i].Sub(times[i-1]), 40*time.Millisecond)
		}
	})

	t.Run("should give up after the configured number of retries on 429", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client := newTestClient(testEngineConfig(srv.URL))
		_, err := client.Resolve(context.Background(), "left-pad", "^1.0.0")
		assert.ErrorIs(t, err, shared.ErrPackageNotFound)
		assert.Equal(t, int32(4), hits.Load())
	})

	t.Run("should succeed if a retry succeeds", func(t *testing.T) {
		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if hits.Add(1) == 1 {
				w.Header().Set("Retry-After", "0")
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.Write([]byte(testPackument)) // nolint:errcheck
		}))
		defer srv.Close()

		client := newTestClient(testEngineConfig(srv.URL))
		resolved, err := client.Resolve(context.Background(), "left-pad", "^1.0.0")
		require.NoError(t, err)
		assert.Equal(t, "1.2.0", resolved.Version)
		assert.Equal(t, int32(2), hits.Load())
	})

	t.Run("should report timeouts as not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}))
		defer srv.Close()

		client := newTestClient(testEngineConfig(srv.URL))
		_, err := client.Resolve(context.Background(), "left-pad", "^1.0.0")
		assert.ErrorIs(t, err, shared.ErrPackageNotFound)
	})

	t.Run("should report server errors as not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := newTestClient(testEngineConfig(srv.URL))
		_, err := client.WeeklyDownloads(context.Background(), "left-pad")
		assert.ErrorIs(t, err, shared.ErrPackageNotFound)
	})

	t.Run("should return the context error if the caller gave up", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(testPackument)) // nolint:errcheck
		}))
		defer srv.Close()

		client := newTestClient(testEngineConfig(srv.URL))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := client.Resolve(ctx, "left-pad", "^1.0.0")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRegistryClientWeeklyDownloads(t *testing.T) {
	t.Run("should read the download count of scoped packages", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.True(t, strings.HasPrefix(r.URL.Path, "/downloads/@types/"))
			w.Write([]byte(`{"downloads": 1234, "package": "@types/node"}`)) // nolint:errcheck
		}))
		defer srv.Close()

		client := newTestClient(testEngineConfig(srv.URL))
		downloads, err := client.WeeklyDownloads(context.Background(), "@types/node")
		require.NoError(t, err)
		assert.Equal(t, int64(1234), downloads)
	})
}

func TestEscapePackageName(t *testing.T) {
	t.Run("should escape the slash of scoped packages", func(t *testing.T) {
		assert.Equal(t, "@types%2Fnode", escapePackageName("@types/node"))
		assert.Equal(t, "lodash", escapePackageName("lodash"))
	})
}

func TestRetryAfter(t *testing.T) {
	t.Run("should use the header value in seconds", func(t *testing.T) {
		assert.Equal(t, 2*time.Second, retryAfter("2", time.Second))
	})
	t.Run("should fall back on invalid headers", func(t *testing.T) {
		assert.Equal(t, time.Second, retryAfter("Wed, 21 Oct 2015 07:28:00 GMT", time.Second))
	})
	t.Run("should cap long waits", func(t *testing.T) {
		assert.Equal(t, maxRetryAfter, retryAfter("3600", time.Second))
	})
}
