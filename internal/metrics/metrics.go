package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup results
const (
	LookupHit  = "hit"
	LookupMiss = "miss"
)

// Refresh outcomes
const (
	RefreshRefreshed = "refreshed"
	RefreshUpToDate  = "up_to_date"
	RefreshCleared   = "cleared"
	RefreshError     = "error"
)

var (
	// Mod lookups served from the cached export
	ExportLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "export_cache_lookups_total",
			Help: "Total number of mod lookups against the export cache",
		},
		[]string{"result"},
	)

	// Refresh cycles by outcome
	ExportRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "export_cache_refresh_total",
			Help: "Total number of export refresh cycles",
		},
		[]string{"outcome"},
	)

	ExportRefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "export_cache_refresh_duration_seconds",
			Help:    "Duration of export refresh cycles",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Snapshot gauges
	ExportEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "export_cache_entries",
			Help: "Number of mods in the cached export",
		},
	)

	ExportLastUpdated = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "export_cache_last_updated_timestamp_seconds",
			Help: "Last-modified time of the cached export, 0 when empty",
		},
	)
)

// RecordLookup records a mod lookup
func RecordLookup(found bool) {
	if found {
		ExportLookups.WithLabelValues(LookupHit).Inc()
		return
	}
	ExportLookups.WithLabelValues(LookupMiss).Inc()
}

// RecordRefresh records the outcome of a refresh cycle
func RecordRefresh(outcome string) {
	ExportRefreshes.WithLabelValues(outcome).Inc()
}

// UpdateSnapshot updates the snapshot gauges. A zero lastUpdated resets the
// timestamp gauge.
func UpdateSnapshot(entries int, lastUpdated time.Time) {
	ExportEntries.Set(float64(entries))
	if lastUpdated.IsZero() {
		ExportLastUpdated.Set(0)
		return
	}
	ExportLastUpdated.Set(float64(lastUpdated.Unix()))
}

// TimeRefresh returns a timer function for measuring a refresh cycle
func TimeRefresh() func() {
	timer := prometheus.NewTimer(ExportRefreshDuration)
	return func() {
		timer.ObserveDuration()
	}
}
