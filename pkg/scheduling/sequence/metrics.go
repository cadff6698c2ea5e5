package sequence

import (
	"sync"
	"time"

	"github.com/vnykmshr/goseq/pkg/metrics"
)

// MetricsObserver records sequence events to a Prometheus registry and
// forwards them to a wrapped observer.
type MetricsObserver struct {
	next     Observer
	name     string
	registry *metrics.Registry

	mu      sync.Mutex
	started map[string]time.Time
}

// NewMetricsObserver creates an observer recording under the given
// sequence name. Events are forwarded to next, which may be nil. With
// metrics disabled the wrapped observer is returned unchanged.
func NewMetricsObserver(name string, next Observer, config metrics.Config) Observer {
	if next == nil {
		next = NopObserver{}
	}
	if !config.Enabled {
		return next
	}

	registry := metrics.DefaultRegistry
	if config.Registry != nil {
		registry = metrics.NewRegistry(config.Registry)
	}

	return &MetricsObserver{
		next:     next,
		name:     name,
		registry: registry,
		started:  make(map[string]time.Time),
	}
}

func (m *MetricsObserver) RoundStarted(counter int, interval time.Duration) {
	m.registry.RoundsTotal.WithLabelValues(m.name).Inc()
	m.registry.SequenceAlive.WithLabelValues(m.name).Set(1)
	m.next.RoundStarted(counter, interval)
}

func (m *MetricsObserver) LatencyWarning(lag time.Duration) {
	m.registry.TimelagSeconds.WithLabelValues(m.name).Observe(lag.Seconds())
	m.next.LatencyWarning(lag)
}

func (m *MetricsObserver) CommandRun(name string) {
	m.registry.CommandsRun.WithLabelValues(m.name, name).Inc()

	// Overlapping executions of the same command share one slot; the
	// duration then measures the most recent start.
	m.mu.Lock()
	m.started[name] = time.Now()
	m.mu.Unlock()

	m.next.CommandRun(name)
}

func (m *MetricsObserver) CommandDone(name string) {
	m.registry.CommandsCompleted.WithLabelValues(m.name, name).Inc()
	m.observeDuration(name)
	m.next.CommandDone(name)
}

func (m *MetricsObserver) CommandError(name string, err error) {
	m.registry.CommandsFailed.WithLabelValues(m.name, name).Inc()
	m.observeDuration(name)
	m.next.CommandError(name, err)
}

func (m *MetricsObserver) SequenceFinished() {
	m.registry.SequencesFinished.WithLabelValues(m.name).Inc()
	m.registry.SequenceAlive.WithLabelValues(m.name).Set(0)
	m.next.SequenceFinished()
}

func (m *MetricsObserver) observeDuration(name string) {
	m.mu.Lock()
	start, ok := m.started[name]
	if ok {
		delete(m.started, name)
	}
	m.mu.Unlock()

	if ok {
		m.registry.CommandDuration.WithLabelValues(m.name, name).Observe(time.Since(start).Seconds())
	}
}
