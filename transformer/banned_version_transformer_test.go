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

package transformer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/l3montree-dev/depgraph/utils"
	"github.com/stretchr/testify/assert"
)

func TestBanVersionRequestToModel(t *testing.T) {
	t.Run("should trim the versions", func(t *testing.T) {
		ban := BanVersionRequestToModel(dtos.BanVersionRequest{
			OrganizationID: uuid.New(),
			DependencyID:   uuid.New(),
			BannedVersion:  " ^1.1.0 ",
			BumpToVersion:  utils.Ptr(" 1.2.0"),
		})
		assert.Equal(t, "^1.1.0", ban.BannedVersion)
		assert.Equal(t, utils.Ptr("1.2.0"), ban.BumpToVersion)
	})

	t.Run("should drop an empty bump version", func(t *testing.T) {
		ban := BanVersionRequestToModel(dtos.BanVersionRequest{BannedVersion: "1.0.0", BumpToVersion: utils.Ptr("  ")})
		assert.Nil(t, ban.BumpToVersion)
	})
}
