// Package metrics provides Prometheus instrumentation for goseq components.
//
// # Overview
//
// The metrics package instruments the sequence pass loop and its
// commands:
//   - Passes (rounds started, tick overrun, sequences finished, alive gauge)
//   - Commands (runs, completions, failures, execution duration)
//
// # Quick Start
//
// Wrap the sequence observer with a metrics observer:
//
//	obs := sequence.NewMetricsObserver("jobs", nil, metrics.DefaultConfig())
//	seq, err := sequence.NewWithConfig(sequence.Config{
//		Timer:    tmr,
//		Observer: obs,
//	})
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//
// # Available Metrics
//
//   - goseq_sequence_rounds_total: Total number of passes started
//   - goseq_sequence_timelag_seconds: Tick overrun beyond the latency tolerance
//   - goseq_sequence_alive: Whether the pass loop is currently running
//   - goseq_sequence_finished_total: Total number of completed sequence runs
//   - goseq_command_run_total: Total number of command executions started
//   - goseq_command_completed_total: Total number of command executions completed
//   - goseq_command_failed_total: Total number of command executions that failed
//   - goseq_command_duration_seconds: Time spent executing commands
//
// # Labels
//
//   - sequence_name: User-provided name for the sequence instance
//   - command_name: The command's name
//
// # Performance
//
// Metrics collection is designed for minimal overhead:
//   - Metrics are updated only when events occur
//   - No background goroutines or timers
package metrics
