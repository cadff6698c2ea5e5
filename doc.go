/*
Package goseq provides a periodic pass-execution engine: a sequence
drives repeated passes at a configurable cadence and runs a set of
commands concurrently on each pass, with per-command gating, delays,
throttling, and selective serialization.

Scheduling (pkg/scheduling):
  - timer: drift-free pass timer with snap alignment and overrun detection
  - daytime: time-of-day values and interval tables
  - sequence: pass loop, command gating and stall protocol
  - spawn: spawn/join execution primitive

Support:
  - pkg/logx: zerolog-based structured observer
  - pkg/metrics: Prometheus instrumentation

Example usage:

	import (
		"github.com/vnykmshr/goseq/pkg/scheduling/sequence"
		"github.com/vnykmshr/goseq/pkg/scheduling/timer"
	)

	tmr, _ := timer.NewWithConfig(timer.Config{Interval: time.Second, MaxPasses: 10})
	cmd, _ := sequence.NewCmd("report", reportFunc)
	seq, _ := sequence.New(tmr, cmd)

	seq.Run() // blocks until the last pass drains
*/
package goseq
