package resolver

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	lookupDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dns_lookup_duration_seconds",
			Help:    "Time taken for upstream DNS lookups.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"resolver", "rtype", "status"},
	)

	lookupTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dns_lookup_total",
			Help: "Total number of upstream DNS lookups.",
		},
		[]string{"resolver", "status"},
	)
)

func init() {
	prometheus.MustRegister(lookupDuration, lookupTotal)
}

func observeLookup(resolverName, recordType, status string, start time.Time) {
	lookupDuration.WithLabelValues(resolverName, recordType, status).Observe(time.Since(start).Seconds())
	lookupTotal.WithLabelValues(resolverName, status).Inc()
}
