package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FetchTotal counts asset fetches by source and outcome
	// (ok, unavailable, transport_error).
	FetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "asset_atlas_fetch_total",
			Help: "Number of asset fetches by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "asset_atlas_fetch_duration_seconds",
			Help:    "Duration of asset fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	// StaleResponsesTotal counts loads whose result was discarded because a
	// newer load had been started.
	StaleResponsesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "asset_atlas_stale_responses_total",
			Help: "Number of asset loads discarded as stale",
		},
	)

	AssetsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "asset_atlas_assets_loaded",
			Help: "Number of assets in the current view",
		},
	)
)
