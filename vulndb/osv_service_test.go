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
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSVService(t *testing.T) {
	t.Run("should follow pagination and drop withdrawn advisories", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/query", r.URL.Path)
			var request dtos.OSVQueryRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
			assert.Equal(t, "npm", request.Package.Ecosystem)
			assert.Equal(t, "lodash", request.Package.Name)

			withdrawn := time.Now()
			response := dtos.OSVQueryResponse{}
			if request.PageToken == "" {
				response.Vulns = []dtos.OSV{{ID: "GHSA-1"}, {ID: "GHSA-2", Withdrawn: &withdrawn}}
				response.NextPageToken = "next"
			} else {
				response.Vulns = []dtos.OSV{{ID: "GHSA-3"}}
			}
			json.NewEncoder(w).Encode(response) // nolint:errcheck
		}))
		defer srv.Close()

		service := NewOSVService(shared.EngineConfig{OSVURL: srv.URL, RegistryTimeout: time.Second})
		entries, err := service.QueryPackage(context.Background(), "npm", "lodash")
		require.NoError(t, err)
		ids := make([]string, 0, len(entries))
		for _, e := range entries {
			ids = append(ids, e.ID)
		}
		assert.Equal(t, []string{"GHSA-1", "GHSA-3"}, ids)
	})

	t.Run("should return an error on failing requests", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		service := NewOSVService(shared.EngineConfig{OSVURL: srv.URL, RegistryTimeout: time.Second})
		_, err := service.QueryPackage(context.Background(), "npm", "lodash")
		assert.Error(t, err)
	})
}

func TestOpenSourceInsightService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/systems/npm/packages/lodash/versions/4.17.21":
			w.Write([]byte(`{"licenses": ["MIT"], "slsaProvenances": [{"verified": true}], "relatedProjects": [{"projectKey": {"id": "github.com/lodash/lodash"}, "relationType": "SOURCE_REPO"}]}`)) // nolint:errcheck
		case "/projects/github.com/lodash/lodash":
			w.Write([]byte(`{"scorecard": {"overallScore": 6.5}}`)) // nolint:errcheck
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	service := NewOpenSourceInsightService(shared.EngineConfig{DepsDevURL: srv.URL, RegistryTimeout: time.Second})
	ctx := context.Background()

	t.Run("should read the version information", func(t *testing.T) {
		version, err := service.GetVersion(ctx, "npm", "lodash", "4.17.21")
		require.NoError(t, err)
		assert.Equal(t, []string{"MIT"}, version.Licenses)
		assert.Equal(t, 3, *version.SlsaLevel())
		repository, ok := version.SourceRepository()
		assert.True(t, ok)
		assert.Equal(t, "github.com/lodash/lodash", repository)
	})

	t.Run("should read the scorecard of the project", func(t *testing.T) {
		project, err := service.GetProject(ctx, "github.com/lodash/lodash")
		require.NoError(t, err)
		require.NotNil(t, project.Scorecard)
		assert.Equal(t, 6.5, project.Scorecard.OverallScore)
	})

	t.Run("should report unknown entities", func(t *testing.T) {
		_, err := service.GetVersion(ctx, "npm", "unknown", "1.0.0")
		assert.ErrorIs(t, err, ErrInsightNotFound)
	})

	t.Run("should reject unsupported ecosystems", func(t *testing.T) {
		_, err := service.GetVersion(ctx, "cobol", "x", "1.0.0")
		assert.Error(t, err)
	})
}
