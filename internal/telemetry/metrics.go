package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ConsolidationsTotal counts canonical location records built and persisted.
var ConsolidationsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "lagona_location_consolidations_total",
	Help: "Number of location records consolidated and persisted.",
})

// ContainmentQueriesTotal counts territory containment lookups served.
var ContainmentQueriesTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "lagona_territory_containment_queries_total",
	Help: "Number of territory containment queries served.",
})

// CacheHitsTotal counts hub location reads answered from the cache.
var CacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "lagona_hub_cache_hits_total",
	Help: "Number of hub location lookups served from the cache.",
})
