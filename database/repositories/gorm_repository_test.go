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

package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/l3montree-dev/depgraph/database"
	"github.com/l3montree-dev/depgraph/database/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsIgnorableUpsertError(t *testing.T) {
	t.Run("should ignore foreign key violations", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23503"}
		assert.True(t, database.IsIgnorableUpsertError(pgErr))
		assert.True(t, database.IsIgnorableUpsertError(fmt.Errorf("%w", pgErr)))
	})

	t.Run("should ignore unique violations", func(t *testing.T) {
		assert.True(t, database.IsIgnorableUpsertError(&pgconn.PgError{Code: "23505"}))
		assert.True(t, database.IsDuplicateKeyError(&pgconn.PgError{Code: "23505"}))
	})

	t.Run("should not ignore other errors", func(t *testing.T) {
		assert.False(t, database.IsIgnorableUpsertError(nil))
		assert.False(t, database.IsIgnorableUpsertError(errors.New("some other error")))
		assert.False(t, database.IsIgnorableUpsertError(errors.New("extended protocol limited to 65535 parameters")))
		assert.False(t, database.IsDuplicateKeyError(&pgconn.PgError{Code: "23503"}))
	})
}

func TestListChunked(t *testing.T) {
	t.Run("should return an empty slice without querying if there are no keys", func(t *testing.T) {
		// a nil db would panic if it was used
		var db *gorm.DB
		result, err := listChunked[string, models.Dependency](context.Background(), db, "name", nil)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
}
