package csvstream

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	sessionsStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "shape",
		Subsystem: "csv_stream",
		Name:      "sessions_started_total",
		Help:      "Total count of tokenizing sessions begun.",
	})
	sessionsCompleted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "shape",
		Subsystem: "csv_stream",
		Name:      "sessions_completed_total",
		Help:      "Total count of sessions that received end-of-input.",
	})
	sessionsAborted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "shape",
		Subsystem: "csv_stream",
		Name:      "sessions_aborted_total",
		Help:      "Total count of sessions aborted before end-of-input.",
	})
	rowsEmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "shape",
		Subsystem: "csv_stream",
		Name:      "rows_emitted_total",
		Help:      "Total count of rows handed to consumers.",
	})
	charactersProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "shape",
		Subsystem: "csv_stream",
		Name:      "characters_processed_total",
		Help:      "Total count of characters fed to sessions.",
	})
	charactersDiscarded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "shape",
		Subsystem: "csv_stream",
		Name:      "characters_discarded_total",
		Help:      "Total count of characters dropped by quote handling.",
	})
)

func init() {
	prometheus.MustRegister(sessionsStarted)
	prometheus.MustRegister(sessionsCompleted)
	prometheus.MustRegister(sessionsAborted)
	prometheus.MustRegister(rowsEmitted)
	prometheus.MustRegister(charactersProcessed)
	prometheus.MustRegister(charactersDiscarded)
}
