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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// maxOSVPages bounds the pagination of a single package query
const maxOSVPages = 20

type osvService struct {
	httpClient *http.Client
	baseURL    string
}

var _ shared.OSVService = (*osvService)(nil)

func NewOSVService(cfg shared.EngineConfig) *osvService {
	return &osvService{
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   cfg.RegistryTimeout * 3,
		},
		baseURL: strings.TrimSuffix(cfg.OSVURL, "/"),
	}
}

// QueryPackage returns all advisories OSV knows for the package. Withdrawn
// advisories are dropped.
func (s *osvService) QueryPackage(ctx context.Context, ecosystem, packageName string) ([]dtos.OSV, error) {
	request := dtos.OSVQueryRequest{
		Package: dtos.Package{
			Name:      packageName,
			Ecosystem: ecosystem,
		},
	}

	result := make([]dtos.OSV, 0)
	for page := 0; page < maxOSVPages; page++ {
		response, err := s.query(ctx, request)
		if err != nil {
			return nil, err
		}
		for _, entry := range response.Vulns {
			if entry.Withdrawn != nil {
				continue
			}
			result = append(result, entry)
		}
		if response.NextPageToken == "" {
			return result, nil
		}
		request.PageToken = response.NextPageToken
	}
	return result, nil
}

func (s *osvService) query(ctx context.Context, request dtos.OSVQueryRequest) (dtos.OSVQueryResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return dtos.OSVQueryResponse{}, errors.Wrap(err, "could not marshal osv query")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/query", bytes.NewReader(body))
	if err != nil {
		return dtos.OSVQueryResponse{}, errors.Wrap(err, "could not create request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.httpClient.Do(req)
	if err != nil {
		return dtos.OSVQueryResponse{}, errors.Wrap(err, "could not query osv")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return dtos.OSVQueryResponse{}, fmt.Errorf("osv responded with status %s", res.Status)
	}

	var response dtos.OSVQueryResponse
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return dtos.OSVQueryResponse{}, errors.Wrap(err, "could not decode osv response")
	}
	return response, nil
}
