// Package metrics registers the Prometheus collectors for enrichment runs
// and the lookup service.
//
// Batch runs have no scrape endpoint, so WriteTextfile dumps the default
// registry for the node exporter textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecordsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atcmap_records_total",
			Help: "Medication records processed, by mapping result",
		},
		[]string{"result"},
	)

	EnrichmentDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "atcmap_enrichment_duration_seconds",
			Help:    "Wall time of a full enrichment run",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	DiseaseCodesUnique = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "atcmap_disease_codes_unique",
			Help: "Distinct disease codes assigned by the last run",
		},
	)

	LastRunTimestamp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "atcmap_last_run_timestamp_seconds",
			Help: "Unix time of the last successful run",
		},
	)

	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	RateLimitedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_limited_requests_total",
			Help: "Requests rejected by the rate limiter",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RecordsTotal,
		EnrichmentDuration,
		DiseaseCodesUnique,
		LastRunTimestamp,
		HTTPRequestTotals,
		HTTPRequestDuration,
		HTTPRequestInFlight,
		RateLimitedTotal,
	)
}

// ObserveRun records the outcome of one enrichment run.
func ObserveRun(mapped, unmapped, uniqueCodes int, duration time.Duration, finished time.Time) {
	RecordsTotal.WithLabelValues("mapped").Add(float64(mapped))
	RecordsTotal.WithLabelValues("unmapped").Add(float64(unmapped))
	EnrichmentDuration.Observe(duration.Seconds())
	DiseaseCodesUnique.Set(float64(uniqueCodes))
	LastRunTimestamp.Set(float64(finished.Unix()))
}

// WriteTextfile writes the default registry to path in the text exposition
// format. An empty path is a no-op.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
