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

package vulndb

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/l3montree-dev/depgraph/monitoring"
	"github.com/l3montree-dev/depgraph/normalize"
	"github.com/l3montree-dev/depgraph/shared"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultMaliciousPackageRepo = "https://github.com/ossf/malicious-packages/archive/refs/heads/main.tar.gz"
	DefaultUpdateInterval       = 2 * time.Hour
	cacheFileName               = "malicious-packages.cache.gob.gz"
)

func init() {
	// database_specific fields hold arbitrary json
	gob.Register(map[string]any{})
	gob.Register([]any{})
}

// MaliciousPackageChecker checks packages against the ossf malicious package database
type MaliciousPackageChecker struct {
	mu             sync.RWMutex
	packages       map[string]map[string]*dtos.OSV // ecosystem -> package name -> entry
	dbPath         string
	repoURL        string
	ecosystems     []string
	httpClient     *http.Client
	lastUpdate     time.Time
	updateInterval time.Duration
	leaderElector  shared.LeaderElector
}

var _ shared.MaliciousPackageChecker = (*MaliciousPackageChecker)(nil)

func NewMaliciousPackageChecker(leaderElector shared.LeaderElector) (*MaliciousPackageChecker, error) {
	dbPath := os.Getenv("MALICIOUS_PACKAGE_DATABASE_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(os.TempDir(), "depgraph-malicious-packages")
	}
	if err := os.MkdirAll(dbPath, 0750); err != nil {
		return nil, fmt.Errorf("failed to create db path: %w", err)
	}

	repoURL := os.Getenv("MALICIOUS_PACKAGE_REPO_URL")
	if repoURL == "" {
		repoURL = DefaultMaliciousPackageRepo
	}

	checker := &MaliciousPackageChecker{
		packages:       make(map[string]map[string]*dtos.OSV),
		dbPath:         dbPath,
		repoURL:        repoURL,
		ecosystems:     []string{"npm"},
		httpClient:     &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		updateInterval: DefaultUpdateInterval,
		leaderElector:  leaderElector,
	}

	if err := checker.loadDatabase(); err != nil {
		slog.Info("no cached malicious package database found", "path", dbPath, "err", err)
	}
	return checker, nil
}

// IsReady returns true if the malicious package database has been loaded
func (c *MaliciousPackageChecker) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.lastUpdate.IsZero()
}

// Start keeps the database fresh until ctx is done. The leader downloads the
// archive, every other instance reloads the shared cache file.
func (c *MaliciousPackageChecker) Start(ctx context.Context) {
	if !c.IsReady() {
		if err := c.DownloadDBAndSaveCache(ctx); err != nil {
			slog.Error("could not download malicious package database", "err", err)
		}
	}

	ticker := time.NewTicker(c.updateInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if c.leaderElector.IsLeader() {
			if err := c.DownloadDBAndSaveCache(ctx); err != nil {
				monitoring.Alert("could not update malicious package database", err)
			}
			continue
		}
		if err := c.loadDatabase(); err != nil {
			slog.Error("could not load malicious package database", "err", err)
		}
	}
}

// DownloadDBAndSaveCache streams the repository archive and keeps the entries
// of the configured ecosystems.
func (c *MaliciousPackageChecker) DownloadDBAndSaveCache(ctx context.Context) error {
	slog.Info("downloading malicious package database", "url", c.repoURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.repoURL, nil)
	if err != nil {
		return errors.Wrap(err, "could not create request")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download archive: HTTP %d", resp.StatusCode)
	}

	packages, err := c.readArchive(resp.Body)
	if err != nil {
		return err
	}

	if err := c.saveCache(packages); err != nil {
		slog.Warn("failed to save malicious package cache", "error", err)
	}
	c.swap(packages)
	return nil
}

func (c *MaliciousPackageChecker) readArchive(r io.Reader) (map[string]map[string]*dtos.OSV, error) {
	gzr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzr.Close()

	tr := tar.NewReader(gzr)
	packages := make(map[string]map[string]*dtos.OSV)
	total := 0

	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read tar: %w", err)
		}

		if header.Typeflag != tar.TypeReg || !strings.HasSuffix(header.Name, ".json") || !c.isTargetEcosystem(header.Name) {
			continue
		}

		data, err := io.ReadAll(tr)
		if err != nil {
			slog.Debug("failed to read file from tar", "name", header.Name, "error", err)
			continue
		}

		var entry dtos.OSV
		if err := json.Unmarshal(data, &entry); err != nil {
			slog.Debug("failed to unmarshal malicious package entry", "name", header.Name, "error", err)
			continue
		}

		loadEntry(packages, entry)
		total++
	}

	slog.Info("processed malicious packages from archive", "total", total)
	return packages, nil
}

func (c *MaliciousPackageChecker) isTargetEcosystem(path string) bool {
	for _, ecosystem := range c.ecosystems {
		if strings.Contains(path, "/osv/malicious/"+ecosystem+"/") {
			return true
		}
	}
	return false
}

func (c *MaliciousPackageChecker) swap(packages map[string]map[string]*dtos.OSV) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.packages = packages
	c.lastUpdate = time.Now()
}

func (c *MaliciousPackageChecker) loadDatabase() error {
	file, err := os.Open(filepath.Join(c.dbPath, cacheFileName))
	if err != nil {
		return err
	}
	defer file.Close()

	gz, err := gzip.NewReader(file)
	if err != nil {
		return err
	}
	defer gz.Close()

	packages := make(map[string]map[string]*dtos.OSV)
	if err := gob.NewDecoder(gz).Decode(&packages); err != nil {
		return errors.Wrap(err, "could not load database from cache")
	}

	c.swap(packages)
	slog.Info("malicious package database loaded from cache", "npm", len(packages["npm"]))
	return nil
}

func (c *MaliciousPackageChecker) saveCache(packages map[string]map[string]*dtos.OSV) error {
	file, err := os.Create(filepath.Join(c.dbPath, cacheFileName))
	if err != nil {
		return err
	}
	defer file.Close()

	gz := gzip.NewWriter(file)
	defer gz.Close()

	return gob.NewEncoder(gz).Encode(packages)
}

func loadEntry(packages map[string]map[string]*dtos.OSV, entry dtos.OSV) {
	for _, affected := range entry.Affected {
		ecosystem := strings.ToLower(affected.Package.Ecosystem)
		name := strings.ToLower(affected.Package.Name)

		if packages[ecosystem] == nil {
			packages[ecosystem] = make(map[string]*dtos.OSV)
		}
		packages[ecosystem][name] = &entry
	}
}

// IsMalicious reports whether the given version is listed. An empty version
// matches any listed version of the package.
func (c *MaliciousPackageChecker) IsMalicious(ecosystem, packageName, version string) (bool, *dtos.OSV) {
	c.mu.RLock()
	entry, ok := c.packages[strings.ToLower(ecosystem)][strings.ToLower(packageName)]
	c.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if version == "" {
		return true, entry
	}

	for _, affected := range entry.Affected {
		if !strings.EqualFold(affected.Package.Name, packageName) {
			continue
		}
		// no versions and no ranges means every version
		if len(affected.Versions) == 0 && len(affected.Ranges) == 0 {
			return true, entry
		}
		spec, fixed := normalize.AffectedSpecFromOSV(*entry, affected.Package.Name)
		if normalize.HasVulnerability(version, spec, fixed) {
			return true, entry
		}
		return false, nil
	}
	return false, nil
}
