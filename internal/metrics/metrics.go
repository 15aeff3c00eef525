// Package metrics registers the Prometheus collectors for the store and
// suggestion collaborators.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	StoreRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "talkwave_store_requests_total",
		Help: "Requests issued to the decentralized store, by operation.",
	}, []string{"op"})

	StoreErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "talkwave_store_errors_total",
		Help: "Failed decentralized store requests, by operation.",
	}, []string{"op"})

	SuggestionRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "talkwave_suggestion_requests_total",
		Help: "Completion requests sent to the text-generation endpoint.",
	})

	SuggestionErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "talkwave_suggestion_errors_total",
		Help: "Failed completion requests.",
	})
)

func init() {
	prometheus.MustRegister(
		StoreRequests,
		StoreErrors,
		SuggestionRequests,
		SuggestionErrors,
	)
}
