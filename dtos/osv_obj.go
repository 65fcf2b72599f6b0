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

import (
	"strings"
	"time"
)

type Package struct {
	Name      string `json:"name"`
	Ecosystem string `json:"ecosystem"`
	Purl      string `json:"purl"`
}

type SemverEvent struct {
	Introduced   string `json:"introduced,omitempty"`
	Fixed        string `json:"fixed,omitempty"`
	LastAffected string `json:"last_affected,omitempty"`
}

type Range struct {
	Type   string        `json:"type"`
	Repo   string        `json:"repo"`
	Events []SemverEvent `json:"events"`
}

type Affected struct {
	Package           Package        `json:"package"`
	Ranges            []Range        `json:"ranges"`
	Versions          []string       `json:"versions"`
	DatabaseSpecific  map[string]any `json:"database_specific"`
	EcosystemSpecific map[string]any `json:"ecosystem_specific"`
}

type OSVSeverity struct {
	Type  string `json:"type"`
	Score string `json:"score"`
}

type OSV struct {
	ID               string         `json:"id"`
	Summary          string         `json:"summary"`
	Details          string         `json:"details"`
	Modified         time.Time      `json:"modified"`
	Published        time.Time      `json:"published"`
	Withdrawn        *time.Time     `json:"withdrawn,omitempty"`
	Aliases          []string       `json:"aliases"`
	Affected         []Affected     `json:"affected"`
	Severity         []OSVSeverity  `json:"severity"`
	DatabaseSpecific map[string]any `json:"database_specific"`
}

// IsMalware reports whether the advisory classifies the package as malicious.
// The ossf/malicious-packages feed publishes those under the MAL- prefix.
func (osv OSV) IsMalware() bool {
	return strings.HasPrefix(osv.ID, "MAL-")
}

// CVSSVector returns the first CVSS v3 or v4 vector of the advisory.
func (osv OSV) CVSSVector() (string, bool) {
	for _, s := range osv.Severity {
		if strings.HasPrefix(s.Type, "CVSS_V3") || strings.HasPrefix(s.Type, "CVSS_V4") {
			return s.Score, true
		}
	}
	return "", false
}

// DatabaseSeverity returns the textual severity some databases (GHSA) attach.
func (osv OSV) DatabaseSeverity() string {
	if osv.DatabaseSpecific == nil {
		return ""
	}
	if s, ok := osv.DatabaseSpecific["severity"].(string); ok {
		return s
	}
	return ""
}

type OSVQueryRequest struct {
	Package   Package `json:"package"`
	Version   string  `json:"version,omitempty"`
	PageToken string  `json:"page_token,omitempty"`
}

type OSVQueryResponse struct {
	Vulns         []OSV  `json:"vulns"`
	NextPageToken string `json:"next_page_token"`
}
