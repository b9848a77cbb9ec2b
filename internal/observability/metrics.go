// Package observability holds the Prometheus collectors exported on /metrics.
package observability

import "github.com/prometheus/client_golang/prometheus"

const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationImport = "import"
	OperationLoad   = "load"
	OperationDelete = "delete"
)

const (
	AuthResultSuccess     = "success"
	AuthResultRegistered  = "registered"
	AuthResultInvalid     = "invalid"
	AuthResultCaptcha     = "captcha_failed"
	AuthResultRateLimited = "rate_limited"
)

var (
	entriesSaved = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "headlog",
		Subsystem: "entries",
		Name:      "saved_total",
		Help:      "Entries written to the entry store, by operation.",
	}, []string{"operation"})
	entriesDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "headlog",
		Subsystem: "entries",
		Name:      "deleted_total",
		Help:      "Entries removed from the entry store.",
	})
	storeFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "headlog",
		Subsystem: "store",
		Name:      "failures_total",
		Help:      "Entry store calls that returned an error, by operation.",
	}, []string{"operation"})
	authAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "headlog",
		Subsystem: "auth",
		Name:      "attempts_total",
		Help:      "Sign-in and sign-up attempts, by result.",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(entriesSaved, entriesDeleted, storeFailures, authAttempts)
}

func RecordEntrySaved(operation string) {
	entriesSaved.WithLabelValues(operation).Inc()
}

func RecordEntryDeleted() {
	entriesDeleted.Inc()
}

// RecordStoreFailure counts a failed entry store call.
func RecordStoreFailure(operation string) {
	storeFailures.WithLabelValues(operation).Inc()
}

func RecordAuthAttempt(result string) {
	authAttempts.WithLabelValues(result).Inc()
}
