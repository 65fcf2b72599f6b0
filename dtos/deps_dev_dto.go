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

package dtos

import "time"

type OpenSourceInsightsVersionResponse struct {
	VersionKey struct {
		System  string `json:"system"`
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"versionKey"`
	PublishedAt  time.Time `json:"publishedAt"`
	IsDefault    bool      `json:"isDefault"`
	Licenses     []string  `json:"licenses"`
	AdvisoryKeys []struct {
		ID string `json:"id"`
	} `json:"advisoryKeys"`
	Links []struct {
		Label string `json:"label"`
		URL   string `json:"url"`
	} `json:"links"`
	SlsaProvenances []SlsaProvenance `json:"slsaProvenances"`
	Registries      []string         `json:"registries"`
	RelatedProjects []struct {
		ProjectKey struct {
			ID string `json:"id"`
		} `json:"projectKey"`
		RelationProvenance string `json:"relationProvenance"`
		RelationType       string `json:"relationType"`
	} `json:"relatedProjects"`
}

type SlsaProvenance struct {
	SourceRepository string `json:"sourceRepository"`
	Commit           string `json:"commit"`
	URL              string `json:"url"`
	Verified         bool   `json:"verified"`
}

// SourceRepository returns the project key of the SOURCE_REPO relation, if any.
func (v OpenSourceInsightsVersionResponse) SourceRepository() (string, bool) {
	for _, p := range v.RelatedProjects {
		if p.RelationType == "SOURCE_REPO" && p.ProjectKey.ID != "" {
			return p.ProjectKey.ID, true
		}
	}
	return "", false
}

// SlsaLevel derives a provenance level from the attestations deps.dev knows:
// a verified provenance counts as level 3, an unverified one as level 1.
func (v OpenSourceInsightsVersionResponse) SlsaLevel() *int {
	if len(v.SlsaProvenances) == 0 {
		return nil
	}
	level := 1
	for _, p := range v.SlsaProvenances {
		if p.Verified {
			level = 3
			break
		}
	}
	return &level
}

type OpenSourceInsightsProjectResponse struct {
	ProjectKey struct {
		ID string `json:"id"`
	} `json:"projectKey"`
	OpenIssuesCount int        `json:"openIssuesCount"`
	StarsCount      int        `json:"starsCount"`
	ForksCount      int        `json:"forksCount"`
	License         string     `json:"license"`
	Description     string     `json:"description"`
	Homepage        string     `json:"homepage"`
	Scorecard       *Scorecard `json:"scorecard"`
}

type Scorecard struct {
	Date       time.Time `json:"date"`
	Repository struct {
		Name   string `json:"name"`
		Commit string `json:"commit"`
	} `json:"repository"`
	Checks []struct {
		Name   string `json:"name"`
		Score  int    `json:"score"`
		Reason string `json:"reason"`
	} `json:"checks"`
	OverallScore float64 `json:"overallScore"`
}
