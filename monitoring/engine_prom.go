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

var RegistryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "depgraph_registry_requests_total",
	Help: "The total number of requests sent to the package registry, partitioned by outcome",
}, []string{"outcome"})

var RegistryRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "depgraph_registry_request_duration_seconds",
	Help:    "Duration of package registry requests in seconds, including rate limit waits",
	Buckets: prometheus.DefBuckets,
})

var EdgesInsertedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "depgraph_edges_inserted_total",
	Help: "The total number of dependency version edges inserted",
})

var CacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "depgraph_cache_hits_total",
	Help: "The total number of cache hits, partitioned by data class",
}, []string{"class"})

var CacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "depgraph_cache_misses_total",
	Help: "The total number of cache misses, partitioned by data class",
}, []string{"class"})

var CacheInvalidationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "depgraph_cache_invalidations_total",
	Help: "The total number of cache invalidations, partitioned by trigger",
}, []string{"trigger"})

var SafeVersionCandidatesEvaluated = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "depgraph_safe_version_candidates_evaluated",
	Help:    "Number of candidate versions evaluated per safe version lookup",
	Buckets: []float64{1, 2, 5, 10, 20, 50},
})

var ScoresComputedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "depgraph_scores_computed_total",
	Help: "The total number of health scores computed",
})

var PopulationJobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "depgraph_population_job_duration_minutes",
	Help:    "Duration of population jobs in minutes",
	Buckets: prometheus.DefBuckets,
}, []string{"job"})

var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "depgraph_http_request_duration_seconds",
	Help:    "Duration of handled HTTP requests by route and status class",
	Buckets: prometheus.DefBuckets,
}, []string{"route", "status"})
