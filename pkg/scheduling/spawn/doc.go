/*
Package spawn provides the concurrent-execution primitive used by the
sequence pass loop: spawn a unit of work, optionally join it, and probe
whether it is still running.

The default Go spawner runs each unit on its own goroutine:

	var sp spawn.Go
	h := sp.Spawn(func() { work() })
	if h.IsRunning() {
		h.Join()
	}

Handles are safe for concurrent use and Join may be called more than
once.
*/
package spawn
