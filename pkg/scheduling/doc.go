/*
Package scheduling provides the pass-execution primitives of goseq.

This package groups the components that drive periodic passes:

  - timer: drift-free pass timer with snap alignment and overrun detection
  - daytime: time-of-day values and interval schedules
  - sequence: pass loop, command gating and stall protocol
  - spawn: spawn/join execution primitive

Timer:

The timer tracks the cadence of a pass loop without accumulating drift:

	tmr, err := timer.NewWithConfig(timer.Config{
		Interval: time.Minute,
		Snap:     true,
	})

	time.Sleep(tmr.Start())
	for tmr.RunCheck() {
		if tmr.Check() == timer.Tick {
			// a new pass has begun
		}
		time.Sleep(2 * time.Millisecond)
	}

Daytime schedules:

A schedule varies the interval over the day and plugs into the timer as
its interval source:

	sched, err := daytime.NewSchedule([]daytime.Entry{
		{At: daytime.At(6, 0, 0), Interval: time.Minute},
		{At: daytime.At(22, 0, 0), Interval: 15 * time.Minute},
	})
	tmr, err := timer.NewWithConfig(timer.Config{Source: sched})

Sequence:

A sequence runs commands on every tick, detached by default, joined on
request, with per-command gating:

	cmd, err := sequence.NewCmdWithConfig("report", report, sequence.CmdConfig{
		NthTime: 5,
	})
	seq, err := sequence.New(tmr, cmd)
	seq.Run()

All scheduling components are thread-safe; command executions receive a
context for cancellation.
*/
package scheduling
