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
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	mmsemver "github.com/Masterminds/semver/v3"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/l3montree-dev/depgraph/monitoring"
	"github.com/l3montree-dev/depgraph/normalize"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const (
	packumentCacheSize = 2048
	maxRetryAfter      = 30 * time.Second
	npmAliasPrefix     = "npm:"
)

var errTooManyRequests = errors.New("registry kept responding with 429")

// NewRegistryRateLimiter returns the limiter shared by every registry call
// of the process. There is no burst: two calls are always at least
// minInterval apart.
func NewRegistryRateLimiter(cfg shared.EngineConfig) *rate.Limiter {
	return rate.NewLimiter(rate.Every(cfg.RegistryMinInterval), 1)
}

type npmRegistryClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	cfg        shared.EngineConfig
	packuments *expirable.LRU[string, dtos.NpmPackument]
	inflight   singleflight.Group
}

var _ shared.RegistryClient = (*npmRegistryClient)(nil)

func NewNpmRegistryClient(cfg shared.EngineConfig, limiter *rate.Limiter) *npmRegistryClient {
	return &npmRegistryClient{
		httpClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		limiter:    limiter,
		cfg:        cfg,
		packuments: expirable.NewLRU[string, dtos.NpmPackument](packumentCacheSize, nil, cfg.PackumentCacheTTL),
	}
}

// Resolve picks the version of name that npm would install for versionRange.
// Every failure to do so is reported as shared.ErrPackageNotFound unless the
// caller's context is done.
func (c *npmRegistryClient) Resolve(ctx context.Context, name, versionRange string) (dtos.ResolvedPackage, error) {
	// "npm:other@^1.0.0" installs another package under this name
	if alias, ok := strings.CutPrefix(strings.TrimSpace(versionRange), npmAliasPrefix); ok {
		at := strings.LastIndex(alias, "@")
		if at <= 0 {
			name, versionRange = alias, "latest"
		} else {
			name, versionRange = alias[:at], alias[at+1:]
		}
	}

	packument, err := c.packument(ctx, name)
	if err != nil {
		return dtos.ResolvedPackage{}, err
	}

	version, ok := resolveVersion(packument, versionRange)
	if !ok {
		return dtos.ResolvedPackage{}, fmt.Errorf("%w: no version of %s satisfies %q", shared.ErrPackageNotFound, name, versionRange)
	}

	manifest := packument.Versions[version]
	return dtos.ResolvedPackage{
		Name:             name,
		Version:          version,
		Dependencies:     manifest.Dependencies,
		Deprecation:      manifest.DeprecationMessage(),
		HasInstallScript: manifest.HasInstallScript(),
	}, nil
}

// Versions returns every published semantic version of name in ascending order.
func (c *npmRegistryClient) Versions(ctx context.Context, name string) ([]dtos.PublishedVersion, error) {
	packument, err := c.packument(ctx, name)
	if err != nil {
		return nil, err
	}

	raw := make([]string, 0, len(packument.Versions))
	for version := range packument.Versions {
		raw = append(raw, version)
	}

	sorted := normalize.SortVersionsAscending(raw)
	versions := make([]dtos.PublishedVersion, 0, len(sorted))
	for _, version := range sorted {
		publishedAt, _ := packument.PublishedAt(version)
		versions = append(versions, dtos.PublishedVersion{Version: version, PublishedAt: publishedAt})
	}
	return versions, nil
}

func (c *npmRegistryClient) WeeklyDownloads(ctx context.Context, name string) (int64, error) {
	body, err := c.get(ctx, strings.TrimSuffix(c.cfg.DownloadsURL, "/")+"/"+escapePackageName(name))
	if err != nil {
		return 0, c.notFound(ctx, name, err)
	}
	var response dtos.NpmDownloadsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return 0, fmt.Errorf("%w: could not decode downloads of %s", shared.ErrPackageNotFound, name)
	}
	return response.Downloads, nil
}

func (c *npmRegistryClient) packument(ctx context.Context, name string) (dtos.NpmPackument, error) {
	if p, ok := c.packuments.Get(name); ok {
		return p, nil
	}

	result, err, _ := c.inflight.Do(name, func() (any, error) {
		body, err := c.get(ctx, strings.TrimSuffix(c.cfg.RegistryURL, "/")+"/"+escapePackageName(name))
		if err != nil {
			return nil, err
		}
		var packument dtos.NpmPackument
		if err := json.Unmarshal(body, &packument); err != nil {
			return nil, errors.Wrap(err, "could not decode packument")
		}
		c.packuments.Add(name, packument)
		return packument, nil
	})
	if err != nil {
		return dtos.NpmPackument{}, c.notFound(ctx, name, err)
	}
	return result.(dtos.NpmPackument), nil
}

func (c *npmRegistryClient) notFound(ctx context.Context, name string, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, shared.ErrPackageNotFound) {
		return err
	}
	slog.Debug("registry lookup failed", "package", name, "err", err)
	return fmt.Errorf("%w: %s: %s", shared.ErrPackageNotFound, name, err.Error())
}

// get performs a rate limited GET request. A 429 response is retried at most
// RegistryMaxRetries times, honoring Retry-After.
func (c *npmRegistryClient) get(ctx context.Context, u string) ([]byte, error) {
	start := time.Now()
	defer func() {
		monitoring.RegistryRequestDuration.Observe(time.Since(start).Seconds())
	}()

	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		status, header, body, err := c.doOnce(ctx, u)
		if err != nil {
			monitoring.RegistryRequestsTotal.WithLabelValues("error").Inc()
			return nil, err
		}

		switch {
		case status == http.StatusTooManyRequests:
			monitoring.RegistryRequestsTotal.WithLabelValues("rate_limited").Inc()
			if attempt >= c.cfg.RegistryMaxRetries {
				return nil, errTooManyRequests
			}
			wait := retryAfter(header.Get("Retry-After"), time.Duration(attempt+1)*time.Second)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
			continue
		case status == http.StatusNotFound:
			monitoring.RegistryRequestsTotal.WithLabelValues("not_found").Inc()
			return nil, shared.ErrPackageNotFound
		case status < 200 || status > 299:
			monitoring.RegistryRequestsTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("registry responded with status %d", status)
		}

		monitoring.RegistryRequestsTotal.WithLabelValues("ok").Inc()
		return body, nil
	}
}

func (c *npmRegistryClient) doOnce(ctx context.Context, u string) (int, http.Header, []byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.RegistryTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, u, nil)
	if err != nil {
		return 0, nil, nil, errors.Wrap(err, "could not create request")
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, nil, errors.Wrap(err, "could not send request")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, nil, nil, errors.Wrap(err, "could not read response body")
	}
	return res.StatusCode, res.Header, body, nil
}

// retryAfter parses the seconds form of the Retry-After header.
func retryAfter(header string, fallback time.Duration) time.Duration {
	wait := fallback
	if header != "" {
		if seconds, err := strconv.Atoi(strings.TrimSpace(header)); err == nil && seconds >= 0 {
			wait = time.Duration(seconds) * time.Second
		}
	}
	return min(wait, maxRetryAfter)
}

// escapePackageName keeps the scope marker but escapes the slash of scoped
// packages, the way the npm registry expects it.
func escapePackageName(name string) string {
	return strings.ReplaceAll(url.PathEscape(name), "%40", "@")
}

// resolveVersion mirrors the npm install choice: a dist-tag, an exact version
// or the highest version satisfying the range. The latest dist-tag wins if it
// satisfies the range.
func resolveVersion(packument dtos.NpmPackument, versionRange string) (string, bool) {
	versionRange = strings.TrimSpace(versionRange)
	if versionRange == "" || versionRange == "*" || versionRange == "x" {
		versionRange = "latest"
	}

	if tagged, ok := packument.DistTags[versionRange]; ok {
		_, exists := packument.Versions[tagged]
		return tagged, exists
	}

	if _, ok := packument.Versions[versionRange]; ok {
		return versionRange, true
	}
	if exact, ok := normalize.ParseExactVersion(versionRange); ok {
		for version := range packument.Versions {
			if v, ok := normalize.ParseVersion(version); ok && v.Equal(exact) {
				return version, true
			}
		}
		return "", false
	}

	constraint, err := mmsemver.NewConstraint(versionRange)
	if err != nil {
		return "", false
	}

	if latest, ok := packument.DistTags["latest"]; ok {
		if v, ok := normalize.ParseVersion(latest); ok && constraint.Check(v) {
			if _, exists := packument.Versions[latest]; exists {
				return latest, true
			}
		}
	}

	var best *mmsemver.Version
	bestRaw := ""
	for version := range packument.Versions {
		v, ok := normalize.ParseVersion(version)
		if !ok || !constraint.Check(v) {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
			bestRaw = version
		}
	}
	return bestRaw, best != nil
}
