package messages

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	responseSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "finances",
			Subsystem: "telegram",
			Name:      "response_time_seconds",
			Help:      "Time to answer one chat message.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"command"},
	)
	failedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "finances",
			Subsystem: "telegram",
			Name:      "failed_messages_total",
			Help:      "Chat messages that ended with an error.",
		},
		[]string{"command"},
	)
)

func observeResponse(command string, elapsed time.Duration, failed bool) {
	responseSeconds.WithLabelValues(command).Observe(elapsed.Seconds())
	if failed {
		failedTotal.WithLabelValues(command).Inc()
	}
}

// commandLabel keeps label cardinality bounded: free text and unknown
// commands share one label each.
func commandLabel(text string) string {
	cmd, _ := parseCommand(text)
	switch {
	case cmd == "":
		return "text"
	case knownCommands[cmd]:
		return cmd
	default:
		return "unknown"
	}
}

var knownCommands = map[string]bool{
	startCommand:   true,
	helpCommand:    true,
	loginCommand:   true,
	logoutCommand:  true,
	whoamiCommand:  true,
	addCommand:     true,
	removeCommand:  true,
	monthCommand:   true,
	dateCommand:    true,
	monthsCommand:  true,
	listCommand:    true,
	balanceCommand: true,
}
