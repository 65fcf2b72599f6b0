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

import "github.com/google/uuid"

type VulnerabilityDTO struct {
	OsvID         string   `json:"osvId"`
	Severity      Severity `json:"severity"`
	Summary       string   `json:"summary"`
	FixedVersions []string `json:"fixedVersions"`
}

type SupplyChainNode struct {
	DependencyVersionID uuid.UUID          `json:"dependencyVersionId"`
	DependencyID        uuid.UUID          `json:"dependencyId"`
	Name                string             `json:"name"`
	Version             string             `json:"version"`
	Score               *int               `json:"score"`
	Licenses            []string           `json:"licenses"`
	IsDirect            bool               `json:"isDirect"`
	Vulnerabilities     []VulnerabilityDTO `json:"vulnerabilities"`
}

type SupplyChainResponse struct {
	Parent            SupplyChainNode     `json:"parent"`
	Children          []SupplyChainNode   `json:"children"`
	Ancestors         [][]SupplyChainNode `json:"ancestors"`
	AvailableVersions []string            `json:"availableVersions"`
}

type LatestSafeVersionResponse struct {
	SafeVersion *string `json:"safeVersion"`
	Reason      string  `json:"reason"`
}

type EdgeCountResponse struct {
	EdgeCount int `json:"edgeCount"`
}
