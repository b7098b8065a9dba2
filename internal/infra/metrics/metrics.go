// Package metrics defines the Prometheus instrumentation of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the collectors the handlers and the browser core report to.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	NodeExpansionsTotal   prometheus.Counter
	SearchesTotal         prometheus.Counter
	StaleDiscardsTotal    prometheus.Counter
	HistoryPagesTotal     prometheus.Counter
	ActiveBrowserSessions prometheus.Gauge
}

// New registers the collectors on the default registry.
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "refboard",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests processed, by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "refboard",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency, by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		NodeExpansionsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "refboard",
			Subsystem: "browser",
			Name:      "node_expansions_total",
			Help:      "Referral tree nodes expanded with a children fetch.",
		}),
		SearchesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "refboard",
			Subsystem: "browser",
			Name:      "searches_total",
			Help:      "Flat searches executed after the debounce window.",
		}),
		StaleDiscardsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "refboard",
			Subsystem: "browser",
			Name:      "stale_discards_total",
			Help:      "Fetch results discarded because the view changed while in flight.",
		}),
		HistoryPagesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "refboard",
			Subsystem: "history",
			Name:      "pages_total",
			Help:      "Invoice history pages served.",
		}),
		ActiveBrowserSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "refboard",
			Subsystem: "browser",
			Name:      "active_sessions",
			Help:      "Browser sessions currently held in memory.",
		}),
	}
}
