// Package metrics defines and registers all custom Prometheus metrics for the
// directory API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at package
// init via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "directory"

// BusinessesCreatedTotal counts newly created listings.
// Label:
//   - category: the listing category as submitted by the owner
var BusinessesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "businesses_created_total",
		Help:      "Total number of business listings created, by category.",
	},
	[]string{"category"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// MediaUploadsTotal counts image uploads to the media host.
// Label:
//   - result: "success" or "failure"
var MediaUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "media_uploads_total",
		Help:      "Total number of media host uploads, by result.",
	},
	[]string{"result"},
)

// SearchesTotal counts category/location searches.
var SearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of listing searches.",
	},
)
