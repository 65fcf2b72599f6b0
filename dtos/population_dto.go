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

// BatchItemResult reports the outcome of one item of a batch operation.
type BatchItemResult struct {
	Name    string  `json:"name"`
	Success bool    `json:"success"`
	Error   *string `json:"error,omitempty"`
}

func NewBatchItemResult(name string, err error) BatchItemResult {
	if err != nil {
		msg := err.Error()
		return BatchItemResult{Name: name, Success: false, Error: &msg}
	}
	return BatchItemResult{Name: name, Success: true}
}

type PopulateScoresRequest struct {
	Names []string `json:"names" validate:"dive,required"`
}

type BackfillEdgesRequest struct {
	Limit int `json:"limit" validate:"gte=0,lte=10000"`
}

type BanVersionRequest struct {
	OrganizationID uuid.UUID  `json:"organizationId" validate:"required"`
	TeamID         *uuid.UUID `json:"teamId"`
	DependencyID   uuid.UUID  `json:"dependencyId" validate:"required"`
	BannedVersion  string     `json:"bannedVersion" validate:"required"`
	BumpToVersion  *string    `json:"bumpToVersion"`
}
