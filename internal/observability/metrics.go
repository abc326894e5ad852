// Package observability holds the service's prometheus collectors.
package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities",
		Subsystem: "roster",
		Name:      "signups_total",
		Help:      "Accepted signups per activity.",
	}, []string{"activity"})
	removalsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities",
		Subsystem: "roster",
		Name:      "removals_total",
		Help:      "Accepted participant removals per activity.",
	}, []string{"activity"})
	rosterSize = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activities",
		Subsystem: "roster",
		Name:      "size",
		Help:      "Current roster size per activity.",
	}, []string{"activity"})
	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by status code and method.",
	}, []string{"code", "method"})
)

func init() {
	prometheus.MustRegister(signupsTotal, removalsTotal, rosterSize, httpRequestsTotal)
}

// RecordSignup counts an accepted signup and updates the roster gauge.
func RecordSignup(activity string, participants int) {
	signupsTotal.WithLabelValues(activity).Inc()
	rosterSize.WithLabelValues(activity).Set(float64(participants))
}

// RecordRemoval counts an accepted removal and updates the roster gauge.
func RecordRemoval(activity string, participants int) {
	removalsTotal.WithLabelValues(activity).Inc()
	rosterSize.WithLabelValues(activity).Set(float64(participants))
}

// RecordHTTPRequest counts one completed request. Paths are not a label;
// emails in the URL would explode cardinality.
func RecordHTTPRequest(status int, method string) {
	httpRequestsTotal.WithLabelValues(strconv.Itoa(status), method).Inc()
}
