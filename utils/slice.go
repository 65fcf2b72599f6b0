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

import "slices"

func Filter[T any](s []T, f func(T) bool) []T {
	r := make([]T, 0, len(s))
	for _, v := range s {
		if f(v) {
			r = append(r, v)
		}
	}
	return r
}

func Map[T, U any](s []T, f func(T) U) []U {
	r := make([]U, len(s))
	for i, v := range s {
		r[i] = f(v)
	}
	return r
}

func Reduce[T, U any](s []T, f func(U, T) U, init U) U {
	r := init
	for _, v := range s {
		r = f(r, v)
	}
	return r
}

func Flat[T any](s [][]T) []T {
	var r []T
	for _, v := range s {
		r = append(r, v...)
	}
	return r
}

func Any[T any](s []T, f func(T) bool) bool {
	return slices.ContainsFunc(s, f)
}

func UniqBy[T any, K comparable](s []T, f func(T) K) []T {
	seen := make(map[K]struct{}, len(s))
	r := make([]T, 0, len(s))
	for _, v := range s {
		k := f(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		r = append(r, v)
	}
	return r
}

func Contains[T comparable](s []T, el T) bool {
	return slices.Contains(s, el)
}

// Chunk splits s into consecutive slices of at most size elements.
// The last chunk may be shorter. A size <= 0 returns s as a single chunk.
func Chunk[T any](s []T, size int) [][]T {
	if len(s) == 0 {
		return nil
	}
	if size <= 0 || len(s) <= size {
		return [][]T{s}
	}

	chunks := make([][]T, 0, (len(s)+size-1)/size)
	for start := 0; start < len(s); start += size {
		end := min(start+size, len(s))
		chunks = append(chunks, s[start:end])
	}
	return chunks
}
