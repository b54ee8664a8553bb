package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var metricRefreshes = promauto.NewCounter(prometheus.CounterOpts{
	Name: "oledstat_refreshes_total",
	Help: "The number of refreshes that found at least one dirty page",
})

var metricCleanRefreshes = promauto.NewCounter(prometheus.CounterOpts{
	Name: "oledstat_clean_refreshes_total",
	Help: "The number of refreshes skipped because nothing changed",
})

var metricPagesTx = promauto.NewCounter(prometheus.CounterOpts{
	Name: "oledstat_pages_tx_total",
	Help: "The total number of display pages transmitted",
})

var metricTransportErrors = promauto.NewCounter(prometheus.CounterOpts{
	Name: "oledstat_transport_errors_total",
	Help: "The total number of failed transport writes",
})

var metricRenderSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "oledstat_render_seconds",
	Help:    "How long one status screen redraw plus refresh takes",
	Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
})
