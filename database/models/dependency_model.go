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

package models

import (
	"time"

	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/lib/pq"
)

// Dependency is the global identity of a package. It carries the raw
// reputation signals and the score derived from them.
type Dependency struct {
	Model
	Name          string         `json:"name" gorm:"type:text;not null;uniqueIndex"`
	Purl          string         `json:"purl" gorm:"type:text"`
	LatestVersion *string        `json:"latestVersion" gorm:"type:text"`
	RepositoryURL *string        `json:"repositoryUrl" gorm:"type:text"`
	Licenses      pq.StringArray `json:"licenses" gorm:"type:text[]"`

	ScorecardScore       *float64 `json:"scorecardScore"`
	WeeklyDownloads      *int64   `json:"weeklyDownloads"`
	ReleasesLast12Months *int     `json:"releasesLast12Months" gorm:"column:releases_last_12_months"`
	SLSALevel            *int     `json:"slsaLevel" gorm:"column:slsa_level"`
	IsMalicious          bool     `json:"isMalicious" gorm:"not null;default:false"`

	Score              *int       `json:"score"`
	OpenSSFPenalty     *float64   `json:"openssfPenalty" gorm:"column:openssf_penalty"`
	PopularityPenalty  *float64   `json:"popularityPenalty"`
	MaintenancePenalty *float64   `json:"maintenancePenalty"`
	ScoreUpdatedAt     *time.Time `json:"scoreUpdatedAt"`
}

func (Dependency) TableName() string {
	return "dependencies"
}

func (d Dependency) Signals() dtos.ScoreSignals {
	return dtos.ScoreSignals{
		ScorecardScore:       d.ScorecardScore,
		WeeklyDownloads:      d.WeeklyDownloads,
		ReleasesLast12Months: d.ReleasesLast12Months,
		SLSALevel:            d.SLSALevel,
		IsMalicious:          d.IsMalicious,
	}
}

// ApplyScore stores the signals and the result of a score calculation.
func (d *Dependency) ApplyScore(signals dtos.ScoreSignals, result dtos.ScoreResult, at time.Time) {
	d.ScorecardScore = signals.ScorecardScore
	d.WeeklyDownloads = signals.WeeklyDownloads
	d.ReleasesLast12Months = signals.ReleasesLast12Months
	d.SLSALevel = signals.SLSALevel
	d.IsMalicious = signals.IsMalicious

	score := result.Score
	openssf := result.Breakdown.OpenSSFPenalty
	popularity := result.Breakdown.PopularityPenalty
	maintenance := result.Breakdown.MaintenancePenalty
	d.Score = &score
	d.OpenSSFPenalty = &openssf
	d.PopularityPenalty = &popularity
	d.MaintenancePenalty = &maintenance
	d.ScoreUpdatedAt = &at
}

func (d Dependency) LicenseList() []string {
	if d.Licenses == nil {
		return []string{}
	}
	return []string(d.Licenses)
}
