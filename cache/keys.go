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

package cache

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/depgraph/dtos"
)

// DataClass groups keys with the same lifetime.
type DataClass string

const (
	SafeVersionClass DataClass = "safe-version"
	SupplyChainClass DataClass = "supply-chain"
	ChildrenClass    DataClass = "children"
	EnrichedClass    DataClass = "enriched"
	ScoreClass       DataClass = "score"
)

var AllClasses = []DataClass{SafeVersionClass, SupplyChainClass, ChildrenClass, EnrichedClass, ScoreClass}

// DefaultTTLs of the data classes
var DefaultTTLs = map[DataClass]time.Duration{
	SafeVersionClass: time.Hour,
	SupplyChainClass: 30 * time.Minute,
	ChildrenClass:    6 * time.Hour,
	EnrichedClass:    10 * time.Minute,
	ScoreClass:       24 * time.Hour,
}

const separator = ":"

// Key builds "class:part1:part2".
func Key(class DataClass, parts ...string) string {
	return string(class) + separator + strings.Join(parts, separator)
}

// ClassPrefix matches every key of the class.
func ClassPrefix(class DataClass) string {
	return string(class) + separator
}

func ClassOf(key string) DataClass {
	class, _, _ := strings.Cut(key, separator)
	return DataClass(class)
}

func SafeVersionKey(projectDependencyID uuid.UUID, severity dtos.Severity, excludeBanned bool) string {
	return Key(SafeVersionClass, projectDependencyID.String(), string(severity), strconv.FormatBool(excludeBanned))
}

// SafeVersionKeys returns every key a safe version lookup of the project
// dependency can be stored under.
func SafeVersionKeys(projectDependencyID uuid.UUID) []string {
	keys := make([]string, 0, 2*len(dtos.AllSeverities))
	for _, severity := range dtos.AllSeverities {
		for _, excludeBanned := range []bool{true, false} {
			keys = append(keys, SafeVersionKey(projectDependencyID, severity, excludeBanned))
		}
	}
	return keys
}

func SupplyChainKey(projectDependencyID uuid.UUID) string {
	return Key(SupplyChainClass, projectDependencyID.String())
}

func ChildrenKey(dependencyVersionID uuid.UUID) string {
	return Key(ChildrenClass, dependencyVersionID.String())
}

func EnrichedKey(projectID uuid.UUID) string {
	return Key(EnrichedClass, projectID.String())
}

func ScoreKey(dependencyID uuid.UUID) string {
	return Key(ScoreClass, dependencyID.String())
}
