/*
Package timer provides the pass timer that drives a sequence.

A Timer divides time into passes of a fixed or dynamically recomputed
interval. The owning loop arms it once with Start, then polls Check:
the first poll after Start reports a tick, and every later tick fires
when the interval since the staged point has elapsed. The staged point
advances by exactly one interval per tick, never to "now", so passes
cannot drift even when individual polls are late. A late poll beyond
the latency tolerance is surfaced as a timelag.

With Snap enabled, Start aligns the first tick to the next wall-clock
boundary that is a multiple of the interval, so independently started
timers sharing an interval tick in phase:

	tmr, _ := timer.NewWithConfig(timer.Config{
		Interval: time.Minute,
		Snap:     true,
	})
	time.Sleep(tmr.Start()) // sleep onto the boundary

	for tmr.RunCheck() {
		if tmr.Check() == timer.Tick {
			// run the pass
		}
		time.Sleep(2 * time.Millisecond)
	}

An IntervalSource makes the interval dynamic: it is consulted on Start
and on every tick evaluation. A source returning zero pauses the timer
until it reports a nonzero interval again.
*/
package timer
