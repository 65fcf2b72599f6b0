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
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

var ErrInsightNotFound = errors.New("deps.dev does not know the requested entity")

type openSourceInsightService struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
}

var _ shared.OpenSourceInsightService = (*openSourceInsightService)(nil)

func NewOpenSourceInsightService(cfg shared.EngineConfig) *openSourceInsightService {
	return &openSourceInsightService{
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   cfg.RegistryTimeout,
		},
		rateLimiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 5),
		baseURL:     strings.TrimSuffix(cfg.DepsDevURL, "/"),
	}
}

func (s *openSourceInsightService) GetProject(ctx context.Context, projectID string) (dtos.OpenSourceInsightsProjectResponse, error) {
	var response dtos.OpenSourceInsightsProjectResponse
	// the projectID is usually a repository url like github.com/lodash/lodash
	err := s.getJSON(ctx, fmt.Sprintf("%s/projects/%s", s.baseURL, url.PathEscape(projectID)), &response)
	return response, err
}

func translateEcosystem(ecosystem string) (string, error) {
	switch strings.ToLower(ecosystem) {
	case "npm":
		return "npm", nil
	case "golang", "go":
		return "go", nil
	case "pypi":
		return "pypi", nil
	case "cargo":
		return "cargo", nil
	}
	return "", fmt.Errorf("ecosystem %s is not supported", ecosystem)
}

func (s *openSourceInsightService) GetVersion(ctx context.Context, ecosystem, packageName, version string) (dtos.OpenSourceInsightsVersionResponse, error) {
	system, err := translateEcosystem(ecosystem)
	if err != nil {
		return dtos.OpenSourceInsightsVersionResponse{}, err
	}

	var response dtos.OpenSourceInsightsVersionResponse
	err = s.getJSON(ctx, fmt.Sprintf("%s/systems/%s/packages/%s/versions/%s", s.baseURL, system, url.PathEscape(packageName), url.PathEscape(version)), &response)
	return response, err
}

func (s *openSourceInsightService) getJSON(ctx context.Context, u string, v any) error {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return errors.Wrap(err, "could not create request")
	}

	res, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "could not reach deps.dev")
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return ErrInsightNotFound
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("could not get information from deps.dev: %s", res.Status)
	}

	return json.NewDecoder(res.Body).Decode(v)
}
