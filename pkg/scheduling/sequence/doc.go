/*
Package sequence implements the pass loop that drives a timer and runs
commands on every tick.

A Sequence owns a timer.Timer and a set of commands. On each tick it
evaluates every command's gate in order and spawns the accepted ones
concurrently; a joined command serializes the pass until it returns,
while detached commands are drained before the sequence finishes.

Commands are usually built with NewCmd, which wires a plain function
into the gating protocol (nth-pass filter, time-of-day windows, fixed
wait, aligned delay, post-run stall):

	cmd, err := sequence.NewCmdWithConfig("report", report, sequence.CmdConfig{
		NthTime: 5,
		Stall:   2 * time.Second,
	})

Progress is reported through an Observer; see pkg/logx for a zerolog
sink and NewMetricsObserver for Prometheus instrumentation.
*/
package sequence
