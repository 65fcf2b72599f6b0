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
	"strings"

	"github.com/l3montree-dev/depgraph/dtos"
	gocvss30 "github.com/pandatix/go-cvss/30"
	gocvss31 "github.com/pandatix/go-cvss/31"
	gocvss40 "github.com/pandatix/go-cvss/40"
)

// SeverityFromCVSSVector computes the base score of a CVSS 3.0, 3.1 or 4.0
// vector and maps it to the qualitative rating.
func SeverityFromCVSSVector(vector string) (dtos.Severity, bool) {
	var score float64
	switch {
	case strings.HasPrefix(vector, "CVSS:3.0/"):
		cvss, err := gocvss30.ParseVector(vector)
		if err != nil {
			return dtos.SeverityUnknown, false
		}
		score = cvss.BaseScore()
	case strings.HasPrefix(vector, "CVSS:3.1/"):
		cvss, err := gocvss31.ParseVector(vector)
		if err != nil {
			return dtos.SeverityUnknown, false
		}
		score = cvss.BaseScore()
	case strings.HasPrefix(vector, "CVSS:4.0/"):
		cvss, err := gocvss40.ParseVector(vector)
		if err != nil {
			return dtos.SeverityUnknown, false
		}
		score = cvss.Score()
	default:
		return dtos.SeverityUnknown, false
	}
	return severityFromScore(score), true
}

func severityFromScore(score float64) dtos.Severity {
	switch {
	case score >= 9.0:
		return dtos.SeverityCritical
	case score >= 7.0:
		return dtos.SeverityHigh
	case score >= 4.0:
		return dtos.SeverityMedium
	case score > 0:
		return dtos.SeverityLow
	}
	return dtos.SeverityUnknown
}

// SeverityOf rates an advisory by its CVSS vector and falls back to the
// rating of the publishing database.
func SeverityOf(entry dtos.OSV) dtos.Severity {
	if vector, ok := entry.CVSSVector(); ok {
		if severity, ok := SeverityFromCVSSVector(vector); ok {
			return severity
		}
	}
	if severity, ok := dtos.ParseSeverity(entry.DatabaseSeverity()); ok {
		return severity
	}
	return dtos.SeverityUnknown
}
