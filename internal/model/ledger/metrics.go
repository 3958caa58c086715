package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var mutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "finances",
		Subsystem: "ledger",
		Name:      "changes_total",
		Help:      "Ledger changes by kind.",
	},
	[]string{"kind"},
)

func observeMutation(kind EventKind) {
	mutationsTotal.WithLabelValues(string(kind)).Inc()
}
