package sequence

import "time"

// Observer receives progress events from a running sequence. Methods
// are called from the pass loop goroutine except CommandRun,
// CommandDone and CommandError, which are called from the spawned
// command goroutines; implementations must be safe for concurrent use.
type Observer interface {
	// RoundStarted is emitted on every tick, before any command of the
	// pass is evaluated.
	RoundStarted(counter int, interval time.Duration)

	// LatencyWarning is emitted after RoundStarted when the tick
	// overran its staged point beyond the timer's tolerance.
	LatencyWarning(lag time.Duration)

	// CommandRun is emitted when a command starts executing, after its
	// pre-execution wait.
	CommandRun(name string)

	// CommandDone is emitted when a command returns without error.
	CommandDone(name string)

	// CommandError is emitted when a command returns an error or
	// panics. The failure never propagates past the observer.
	CommandError(name string, err error)

	// SequenceFinished is emitted once the loop has exited and all
	// detached commands have been drained.
	SequenceFinished()
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) RoundStarted(int, time.Duration) {}
func (NopObserver) LatencyWarning(time.Duration)    {}
func (NopObserver) CommandRun(string)               {}
func (NopObserver) CommandDone(string)              {}
func (NopObserver) CommandError(string, error)      {}
func (NopObserver) SequenceFinished()               {}

// MultiObserver fans every event out to each wrapped observer in order.
type MultiObserver []Observer

func (m MultiObserver) RoundStarted(counter int, interval time.Duration) {
	for _, o := range m {
		o.RoundStarted(counter, interval)
	}
}

func (m MultiObserver) LatencyWarning(lag time.Duration) {
	for _, o := range m {
		o.LatencyWarning(lag)
	}
}

func (m MultiObserver) CommandRun(name string) {
	for _, o := range m {
		o.CommandRun(name)
	}
}

func (m MultiObserver) CommandDone(name string) {
	for _, o := range m {
		o.CommandDone(name)
	}
}

func (m MultiObserver) CommandError(name string, err error) {
	for _, o := range m {
		o.CommandError(name, err)
	}
}

func (m MultiObserver) SequenceFinished() {
	for _, o := range m {
		o.SequenceFinished()
	}
}
