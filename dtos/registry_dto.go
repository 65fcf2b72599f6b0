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

import (
	"encoding/json"
	"time"
)

// NpmPackument is the subset of the npm registry package document we use.
type NpmPackument struct {
	Name     string                       `json:"name"`
	DistTags map[string]string            `json:"dist-tags"`
	Versions map[string]NpmPackageVersion `json:"versions"`
	// version -> publish time, plus "created" and "modified". Unpublished
	// packages carry an object under "unpublished".
	Time map[string]json.RawMessage `json:"time"`
}

func (p NpmPackument) PublishedAt(version string) (time.Time, bool) {
	raw, ok := p.Time[version]
	if !ok {
		return time.Time{}, false
	}
	var t time.Time
	if err := json.Unmarshal(raw, &t); err != nil {
		return time.Time{}, false
	}
	return t, true
}

type NpmPackageVersion struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Dependencies map[string]string `json:"dependencies"`
	License      json.RawMessage   `json:"license"`
	Deprecated   json.RawMessage   `json:"deprecated"`
	Scripts      map[string]string `json:"scripts"`
	Repository   json.RawMessage   `json:"repository"`
}

// DeprecationMessage returns the deprecation notice. npm uses a string, but
// some old packages carry a boolean.
func (v NpmPackageVersion) DeprecationMessage() *string {
	if len(v.Deprecated) == 0 {
		return nil
	}
	var msg string
	if err := json.Unmarshal(v.Deprecated, &msg); err == nil {
		if msg == "" {
			return nil
		}
		return &msg
	}
	var flag bool
	if err := json.Unmarshal(v.Deprecated, &flag); err == nil && flag {
		msg = "deprecated"
		return &msg
	}
	return nil
}

func (v NpmPackageVersion) HasInstallScript() bool {
	for _, name := range []string{"preinstall", "install", "postinstall"} {
		if _, ok := v.Scripts[name]; ok {
			return true
		}
	}
	return false
}

type NpmDownloadsResponse struct {
	Downloads int64  `json:"downloads"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Package   string `json:"package"`
}

// ResolvedPackage is a concrete package version with its declared
// dependency ranges.
type ResolvedPackage struct {
	Name             string
	Version          string
	Dependencies     map[string]string
	Deprecation      *string
	HasInstallScript bool
}

type PublishedVersion struct {
	Version     string    `json:"version"`
	PublishedAt time.Time `json:"publishedAt"`
}
