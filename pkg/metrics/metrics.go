// Package metrics provides Prometheus instrumentation for goseq components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for goseq components.
type Registry struct {
	// Sequence Metrics
	RoundsTotal       *prometheus.CounterVec
	TimelagSeconds    *prometheus.HistogramVec
	SequenceAlive     *prometheus.GaugeVec
	SequencesFinished *prometheus.CounterVec

	// Command Metrics
	CommandsRun       *prometheus.CounterVec
	CommandsCompleted *prometheus.CounterVec
	CommandsFailed    *prometheus.CounterVec
	CommandDuration   *prometheus.HistogramVec
}

// DefaultRegistry is the default metrics registry used by goseq components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		// Sequence Metrics
		RoundsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goseq",
				Subsystem: "sequence",
				Name:      "rounds_total",
				Help:      "Total number of passes started",
			},
			[]string{"sequence_name"},
		),

		TimelagSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "goseq",
				Subsystem: "sequence",
				Name:      "timelag_seconds",
				Help:      "Tick overrun beyond the latency tolerance",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"sequence_name"},
		),

		SequenceAlive: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "goseq",
				Subsystem: "sequence",
				Name:      "alive",
				Help:      "Whether the pass loop is currently running",
			},
			[]string{"sequence_name"},
		),

		SequencesFinished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goseq",
				Subsystem: "sequence",
				Name:      "finished_total",
				Help:      "Total number of completed sequence runs",
			},
			[]string{"sequence_name"},
		),

		// Command Metrics
		CommandsRun: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goseq",
				Subsystem: "command",
				Name:      "run_total",
				Help:      "Total number of command executions started",
			},
			[]string{"sequence_name", "command_name"},
		),

		CommandsCompleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goseq",
				Subsystem: "command",
				Name:      "completed_total",
				Help:      "Total number of command executions completed successfully",
			},
			[]string{"sequence_name", "command_name"},
		),

		CommandsFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "goseq",
				Subsystem: "command",
				Name:      "failed_total",
				Help:      "Total number of command executions that failed",
			},
			[]string{"sequence_name", "command_name"},
		),

		CommandDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "goseq",
				Subsystem: "command",
				Name:      "duration_seconds",
				Help:      "Time spent executing commands",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"sequence_name", "command_name"},
		),
	}
}
