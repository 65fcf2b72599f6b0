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
	"time"

	"github.com/google/uuid"
)

type VulnCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

func (c *VulnCounts) Add(severity Severity) {
	switch severity {
	case SeverityCritical:
		c.Critical++
	case SeverityHigh:
		c.High++
	case SeverityLow:
		c.Low++
	default:
		c.Medium++
	}
}

type EnrichedDependency struct {
	ProjectDependencyID uuid.UUID  `json:"projectDependencyId"`
	DependencyID        uuid.UUID  `json:"dependencyId"`
	Name                string     `json:"name"`
	Version             string     `json:"version"`
	IsDirect            bool       `json:"isDirect"`
	Source              string     `json:"source"`
	Score               *int       `json:"score"`
	Licenses            []string   `json:"licenses"`
	VulnCounts          VulnCounts `json:"vulnCounts"`
	Deprecation         *string    `json:"deprecation,omitempty"`
	IsBanned            bool       `json:"isBanned"`
}

// ScoreSignals are the raw inputs of the reputation score. A nil field is
// unknown and receives the default penalty.
type ScoreSignals struct {
	ScorecardScore       *float64 `json:"scorecardScore"`
	WeeklyDownloads      *int64   `json:"weeklyDownloads"`
	ReleasesLast12Months *int     `json:"releasesLast12Months"`
	SLSALevel            *int     `json:"slsaLevel"`
	IsMalicious          bool     `json:"isMalicious"`
}

type ScoreBreakdown struct {
	OpenSSFPenalty      float64 `json:"openssfPenalty"`
	PopularityPenalty   float64 `json:"popularityPenalty"`
	MaintenancePenalty  float64 `json:"maintenancePenalty"`
	SLSAMultiplier      float64 `json:"slsaMultiplier"`
	MaliciousMultiplier float64 `json:"maliciousMultiplier"`
}

type ScoreResult struct {
	Score     int            `json:"score"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

type ScoreResponse struct {
	DependencyID uuid.UUID    `json:"dependencyId"`
	Name         string       `json:"name"`
	Signals      ScoreSignals `json:"signals"`
	ScoreResult
	UpdatedAt *time.Time `json:"updatedAt"`
}
