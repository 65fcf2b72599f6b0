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

package services

import (
	"context"
	"log/slog"

	"github.com/l3montree-dev/depgraph/database/models"
	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/l3montree-dev/depgraph/monitoring"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/l3montree-dev/depgraph/transformer"
	"github.com/l3montree-dev/depgraph/utils"
	"github.com/pkg/errors"
)

const npmEcosystem = "npm"

type VulnerabilitySyncService struct {
	osvService               shared.OSVService
	maliciousPackageChecker  shared.MaliciousPackageChecker
	vulnerabilityRepository  shared.VulnerabilityRepository
	cacheInvalidationService shared.CacheInvalidationService
}

var _ shared.VulnerabilitySyncService = (*VulnerabilitySyncService)(nil)

func NewVulnerabilitySyncService(osvService shared.OSVService, maliciousPackageChecker shared.MaliciousPackageChecker, vulnerabilityRepository shared.VulnerabilityRepository, cacheInvalidationService shared.CacheInvalidationService) *VulnerabilitySyncService {
	return &VulnerabilitySyncService{
		osvService:               osvService,
		maliciousPackageChecker:  maliciousPackageChecker,
		vulnerabilityRepository:  vulnerabilityRepository,
		cacheInvalidationService: cacheInvalidationService,
	}
}

// SyncDependency overwrites the stored advisories of the dependency with the
// current state of OSV and returns the number of advisories written.
func (s *VulnerabilitySyncService) SyncDependency(ctx context.Context, dependency models.Dependency) (int, error) {
	entries, err := s.osvService.QueryPackage(ctx, npmEcosystem, dependency.Name)
	if err != nil {
		return 0, errors.Wrap(err, "could not query osv")
	}

	if malicious, entry := s.maliciousPackageChecker.IsMalicious(npmEcosystem, dependency.Name, ""); malicious && entry != nil {
		known := utils.Any(entries, func(e dtos.OSV) bool { return e.ID == entry.ID })
		if !known {
			entries = append(entries, *entry)
		}
	}

	vulns := make([]models.Vulnerability, 0, len(entries))
	for _, entry := range entries {
		vulns = append(vulns, transformer.OSVToVulnerability(dependency, entry))
	}
	if len(vulns) == 0 {
		return 0, nil
	}

	if err := s.vulnerabilityRepository.Upsert(ctx, vulns); err != nil {
		return 0, errors.Wrap(err, "could not save vulnerabilities")
	}
	slog.Debug("synced vulnerabilities", "dependency", dependency.Name, "count", len(vulns))
	monitoring.VulnerabilitiesSyncedTotal.Add(float64(len(vulns)))
	s.cacheInvalidationService.InvalidateForVulnerabilities(ctx, dependency.ID)
	return len(vulns), nil
}
