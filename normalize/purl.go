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

package normalize

import (
	"strings"

	"github.com/package-url/packageurl-go"
)

// NpmPurl renders the package url of an npm package. Scoped packages
// ("@scope/name") carry the scope as namespace.
func NpmPurl(name, version string) string {
	namespace := ""
	if strings.HasPrefix(name, "@") {
		if idx := strings.Index(name, "/"); idx != -1 {
			namespace = name[:idx]
			name = name[idx+1:]
		}
	}
	return packageurl.NewPackageURL(packageurl.TypeNPM, namespace, name, version, nil, "").ToString()
}
