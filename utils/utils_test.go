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

package utils

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunk(t *testing.T) {
	t.Run("should split into chunks of at most size elements", func(t *testing.T) {
		assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, Chunk([]int{1, 2, 3, 4, 5}, 2))
	})

	t.Run("should return a single chunk for a non positive size", func(t *testing.T) {
		assert.Equal(t, [][]int{{1, 2, 3}}, Chunk([]int{1, 2, 3}, 0))
	})

	t.Run("should return nil for an empty slice", func(t *testing.T) {
		assert.Nil(t, Chunk([]int{}, 3))
	})
}

func TestUniqBy(t *testing.T) {
	type pkg struct {
		name    string
		version string
	}
	in := []pkg{{"express", "4.18.2"}, {"lodash", "4.17.21"}, {"express", "4.19.0"}}

	out := UniqBy(in, func(p pkg) string { return p.name })
	assert.Equal(t, []pkg{{"express", "4.18.2"}, {"lodash", "4.17.21"}}, out)
}

func TestSliceHelpers(t *testing.T) {
	nums := []int{1, 2, 3, 4}

	assert.Equal(t, []int{2, 4}, Filter(nums, func(n int) bool { return n%2 == 0 }))
	assert.Equal(t, []string{"1", "2", "3", "4"}, Map(nums, func(n int) string { return fmt.Sprint(n) }))
	assert.Equal(t, 10, Reduce(nums, func(acc, n int) int { return acc + n }, 0))
	assert.Equal(t, []int{1, 2, 3}, Flat([][]int{{1}, {2, 3}}))
	assert.True(t, Any(nums, func(n int) bool { return n > 3 }))
	assert.False(t, Contains(nums, 5))
}

func TestErrGroup(t *testing.T) {
	t.Run("should collect all results", func(t *testing.T) {
		g := ErrGroup[int](2)
		for i := range 5 {
			g.Go(func() (int, error) { return i * i, nil })
		}

		res, err := g.WaitAndCollect()
		assert.NoError(t, err)
		sort.Ints(res)
		assert.Equal(t, []int{0, 1, 4, 9, 16}, res)
	})

	t.Run("should return the first error", func(t *testing.T) {
		g := ErrGroup[int](0)
		g.Go(func() (int, error) { return 1, nil })
		g.Go(func() (int, error) { return 0, fmt.Errorf("registry unavailable") })

		res, err := g.WaitAndCollect()
		assert.ErrorContains(t, err, "registry unavailable")
		assert.Nil(t, res)
	})
}

func TestConcurrently(t *testing.T) {
	res := Concurrently(
		func() any { return "versions" },
		func() any { return 42 },
	)
	assert.Equal(t, []any{"versions", 42}, res)
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, "high", OrDefault(nil, "high"))
	assert.Equal(t, "low", OrDefault(Ptr("low"), "high"))
	assert.Nil(t, EmptyThenNil(""))
	assert.Equal(t, "", SafeDereference(nil))
}
