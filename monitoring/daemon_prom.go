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

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EdgeBackfillDaemonDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "depgraph_daemon_edge_backfill_duration_minutes",
	Help:    "Duration of the edge backfill daemon in minutes",
	Buckets: prometheus.DefBuckets,
})

var ScoreRefreshDaemonDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "depgraph_daemon_score_refresh_duration_minutes",
	Help:    "Duration of the score refresh daemon in minutes",
	Buckets: prometheus.DefBuckets,
})

var VulnerabilitySyncDaemonDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "depgraph_daemon_vulnerability_sync_duration_minutes",
	Help:    "Duration of the vulnerability sync daemon in minutes",
	Buckets: prometheus.DefBuckets,
})

var VulnerabilitiesSyncedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "depgraph_vulnerabilities_synced_total",
	Help: "The total number of vulnerability records written by the sync",
})

var MaliciousPackagesDetectedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "depgraph_malicious_packages_detected_total",
	Help: "The total number of dependencies flagged as malicious",
})

var DaemonErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "depgraph_daemon_errors_total",
	Help: "The total number of daemon runs which failed, partitioned by daemon",
}, []string{"daemon"})
