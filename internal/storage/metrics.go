package storage

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecordsStoredTotal tracks execution records written to storage.
	RecordsStoredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "excelsior_storage_records_stored_total",
		Help: "Total number of execution records stored",
	})

	// RecordStoreFailuresTotal tracks failed storage writes.
	RecordStoreFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "excelsior_storage_record_failures_total",
		Help: "Total number of failed execution record writes",
	})
)
