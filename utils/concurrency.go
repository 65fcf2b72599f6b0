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
	"sync"

	"golang.org/x/sync/errgroup"
)

type errGroup[T any] struct {
	group   errgroup.Group
	mu      sync.Mutex
	results []T
}

// ErrGroup runs functions concurrently with at most limit goroutines and
// collects their results. A limit <= 0 means no limit.
func ErrGroup[T any](limit int) *errGroup[T] {
	g := &errGroup[T]{}
	if limit > 0 {
		g.group.SetLimit(limit)
	}
	return g
}

func (g *errGroup[T]) Go(fn func() (T, error)) {
	g.group.Go(func() error {
		res, err := fn()
		if err != nil {
			return err
		}
		g.mu.Lock()
		g.results = append(g.results, res)
		g.mu.Unlock()
		return nil
	})
}

// WaitAndCollect blocks until all functions returned. The order of the
// results is not the order of the Go calls.
func (g *errGroup[T]) WaitAndCollect() ([]T, error) {
	if err := g.group.Wait(); err != nil {
		return nil, err
	}
	return g.results, nil
}

type concurrentResult struct {
	index int
	value any
}

// Concurrently runs all fns in parallel and returns their results in the
// order of fns.
func Concurrently(fns ...func() any) []any {
	ch := make(chan concurrentResult, len(fns))
	for i, fn := range fns {
		go func(i int, fn func() any) {
			ch <- concurrentResult{i, fn()}
		}(i, fn)
	}

	res := make([]any, len(fns))
	for range fns {
		r := <-ch
		res[r.index] = r.value
	}
	return res
}

type FireAndForgetSynchronizer interface {
	FireAndForget(fn func())
}

type asyncFireAndForgetSynchronizer struct{}

func (asyncFireAndForgetSynchronizer) FireAndForget(fn func()) {
	go fn()
}

func NewFireAndForgetSynchronizer() FireAndForgetSynchronizer {
	return asyncFireAndForgetSynchronizer{}
}

// syncFireAndForgetSynchronizer runs the function inline. Used in tests to
// make side effects observable right after the call returned.
type syncFireAndForgetSynchronizer struct{}

func (syncFireAndForgetSynchronizer) FireAndForget(fn func()) {
	fn()
}

func NewSyncFireAndForgetSynchronizer() FireAndForgetSynchronizer {
	return syncFireAndForgetSynchronizer{}
}
