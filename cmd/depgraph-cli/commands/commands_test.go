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

package commands

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depgraph/database/models"
	"github.com/l3montree-dev/depgraph/mocks"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestScorePackages(t *testing.T) {
	t.Run("should score every package and report failures per package", func(t *testing.T) {
		dependencyRepository := mocks.NewDependencyRepository(t)
		scoreService := mocks.NewScoreService(t)

		express := models.Dependency{Model: models.Model{ID: uuid.New()}, Name: "express"}
		dependencyRepository.On("PutIfAbsent", mock.Anything, "express").Return(express, nil)
		dependencyRepository.On("PutIfAbsent", mock.Anything, "broken").Return(models.Dependency{}, fmt.Errorf("db down"))
		scoreService.On("RefreshScore", mock.Anything, express).Return(express, nil)

		cmd := &cobra.Command{}
		cmd.SetContext(context.Background())

		results := scorePackages(cmd, dependencyRepository, scoreService, []string{" express ", "broken"})

		assert.Len(t, results, 2)
		assert.Equal(t, "express", results[0].Name)
		assert.True(t, results[0].Success)
		assert.Equal(t, "broken", results[1].Name)
		assert.False(t, results[1].Success)
		assert.Equal(t, "db down", *results[1].Error)
	})
}

func TestBindFlags(t *testing.T) {
	t.Cleanup(viper.Reset)

	t.Run("should apply config values to flags which were not set", func(t *testing.T) {
		cmd := newEdgesBackfillCommand()
		viper.Set("limit", 42)

		bindFlags(cmd)

		limit, err := cmd.Flags().GetInt("limit")
		assert.NoError(t, err)
		assert.Equal(t, 42, limit)
	})

	t.Run("should keep explicitly set flags", func(t *testing.T) {
		cmd := newEdgesBackfillCommand()
		assert.NoError(t, cmd.Flags().Set("limit", "7"))
		viper.Set("limit", 42)

		bindFlags(cmd)

		limit, err := cmd.Flags().GetInt("limit")
		assert.NoError(t, err)
		assert.Equal(t, 7, limit)
	})
}
