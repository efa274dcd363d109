package ssm

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric outcome constants.
const (
	outcomeCommitted = "committed"
	outcomeCancelled = "cancelled"
	outcomeError     = "error"
)

// Metric definitions with appropriate labels.
var (
	// transitionsTotal tracks guarded calls that found a legal transition,
	// by event, edge, and outcome (committed, cancelled, or error).
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ssm_transitions_total",
		Help: "Total number of guarded transitions by event, from_state, to_state, and outcome",
	}, []string{"event", "from_state", "to_state", "outcome"})

	// illegalTransitionsTotal tracks events fired from states with no
	// registered destination.
	illegalTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ssm_illegal_transitions_total",
		Help: "Total number of rejected transitions by event and state",
	}, []string{"event", "state"})

	// transitionDuration tracks time spent inside guarded behaviors.
	transitionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ssm_transition_duration_seconds",
		Help:    "Duration of guarded behavior execution by event and outcome",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
	}, []string{"event", "outcome"})
)

func observeTransition(event, from, to, outcome string, elapsed time.Duration) {
	transitionsTotal.WithLabelValues(
		sanitizeLabel(event),
		sanitizeLabel(from),
		sanitizeLabel(to),
		outcome,
	).Inc()

	transitionDuration.WithLabelValues(
		sanitizeLabel(event),
		outcome,
	).Observe(elapsed.Seconds())
}

// sanitizeLabel keeps metric labels non-empty.
func sanitizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}

	return value
}
