// Package metrics holds the Prometheus instruments for the import service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	RowsAccepted prometheus.Counter
	RowsRejected prometheus.Counter
	RowsInserted prometheus.Counter
}

// New creates and registers all metrics on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RowsAccepted: factory.NewCounter(prometheus.CounterOpts{
			Name: "employee_import_rows_accepted_total",
			Help: "Total number of CSV rows that passed validation",
		}),
		RowsRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "employee_import_rows_rejected_total",
			Help: "Total number of CSV rows rejected by validation",
		}),
		RowsInserted: factory.NewCounter(prometheus.CounterOpts{
			Name: "employee_import_rows_inserted_total",
			Help: "Total number of employee records written to storage",
		}),
	}
}
