package timer

import (
	"sync"
	"time"

	"github.com/vnykmshr/goseq/pkg/common/validation"
	"github.com/vnykmshr/goseq/pkg/scheduling/daytime"
)

// TickState is the tri-state result of a Check call.
type TickState int

const (
	// NotRunning means the timer was never started or has been reset.
	NotRunning TickState = iota

	// NoTick means the current pass has not finished yet.
	NoTick

	// Tick means a new pass has begun.
	Tick
)

func (s TickState) String() string {
	switch s {
	case NotRunning:
		return "not-running"
	case NoTick:
		return "no-tick"
	case Tick:
		return "tick"
	default:
		return "unknown"
	}
}

// IntervalSource recomputes the timer's interval. It is consulted once
// per Start and once per tick evaluation. Returning zero pauses the
// timer until a later call reports a nonzero interval.
//
// The source is invoked while the timer's lock is held and must not
// call back into the Timer.
type IntervalSource interface {
	Interval() time.Duration
}

// IntervalFunc adapts a plain function to an IntervalSource.
type IntervalFunc func() time.Duration

// Interval implements IntervalSource.
func (f IntervalFunc) Interval() time.Duration { return f() }

// DefaultLatencyTolerance is the overrun below which no timelag is reported.
const DefaultLatencyTolerance = 10 * time.Millisecond

// Config holds configuration options for creating a Timer.
type Config struct {
	// Interval is the pass length. Zero means paused; a Source can
	// unpause it later. Must not be negative.
	Interval time.Duration

	// MaxPasses bounds the number of ticks. Zero means unlimited.
	MaxPasses int

	// Snap aligns the first tick to the next wall-clock boundary that
	// is a multiple of Interval.
	Snap bool

	// LatencyTolerance is the overrun below which no timelag is
	// recorded. Defaults to DefaultLatencyTolerance.
	LatencyTolerance time.Duration

	// Source, if set, recomputes Interval on Start and on every tick
	// evaluation.
	Source IntervalSource

	// Clock provides the current time. If nil, the system clock is used.
	Clock daytime.Clock
}

// Timer tracks the pass cadence for a sequence: the staged start of the
// current pass, the pass counter, and any overrun beyond the latency
// tolerance. All methods are safe for concurrent use; the sequence loop
// is the only mutator, while command goroutines read counter, interval
// and runtime through it.
type Timer struct {
	mu               sync.Mutex
	interval         time.Duration
	maxPasses        int
	snap             bool
	latencyTolerance time.Duration
	source           IntervalSource
	clock            daytime.Clock

	stage     time.Time
	counter   int
	timelag   time.Duration
	lagged    bool
	stopped   bool
	firstPass bool
}

// New creates a Timer with the given interval and default settings.
// It panics on a negative interval; use NewWithConfig to get an error.
func New(interval time.Duration) *Timer {
	t, err := NewWithConfig(Config{Interval: interval})
	if err != nil {
		panic(err)
	}
	return t
}

// NewWithConfig creates a Timer from cfg, validating it up front.
func NewWithConfig(cfg Config) (*Timer, error) {
	if err := validation.ValidateNonNegativeDuration("timer", "interval", cfg.Interval); err != nil {
		return nil, err
	}
	if err := validation.ValidateNonNegative("timer", "maxPasses", cfg.MaxPasses); err != nil {
		return nil, err
	}
	if err := validation.ValidateNonNegativeDuration("timer", "latencyTolerance", cfg.LatencyTolerance); err != nil {
		return nil, err
	}

	tolerance := cfg.LatencyTolerance
	if tolerance == 0 {
		tolerance = DefaultLatencyTolerance
	}
	clock := cfg.Clock
	if clock == nil {
		clock = daytime.SystemClock{}
	}

	return &Timer{
		interval:         cfg.Interval,
		maxPasses:        cfg.MaxPasses,
		snap:             cfg.Snap,
		latencyTolerance: tolerance,
		source:           cfg.Source,
		clock:            clock,
	}, nil
}

// Start arms the timer and returns how long the caller should sleep
// before the first Check. Without Snap the staged point is "now" and
// the returned wait is zero. With Snap the staged point is the next
// boundary that is a multiple of the interval, and the returned wait in
// [0, interval) carries the caller onto that boundary, so restarted
// timers snap back into the same rhythm.
func (t *Timer) Start() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.startLocked()
}

func (t *Timer) startLocked() time.Duration {
	t.actualizeLocked()
	t.firstPass = true

	now := t.clock.Now()
	if !t.snap || t.interval <= 0 {
		t.stage = now
		return 0
	}

	rem := time.Duration(now.UnixNano()) % t.interval
	if rem == 0 {
		t.stage = now
		return 0
	}
	wait := t.interval - rem
	t.stage = now.Add(wait)
	return wait
}

func (t *Timer) actualizeLocked() {
	if t.source != nil {
		t.interval = t.source.Interval()
	}
}

// Check reports whether a new pass has begun, advancing the counter and
// the staged point on a tick. The first call after Start always ticks
// once the staged point has been reached; the timer was armed outside
// the loop, so the first opportunity must count.
func (t *Timer) Check() TickState {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stage.IsZero() {
		return NotRunning
	}

	if t.interval == 0 {
		// Paused. Ask the source for a new interval and re-arm when it
		// unpauses; the armed first tick fires once the (possibly
		// snapped) staged point is reached.
		t.actualizeLocked()
		if t.interval != 0 {
			t.startLocked()
		}
		return NoTick
	}

	now := t.clock.Now()

	if t.firstPass {
		if now.Before(t.stage) {
			return NoTick
		}
		t.firstPass = false
		t.counter++
		return Tick
	}

	elapsed := now.Sub(t.stage)
	if elapsed < t.interval {
		return NoTick
	}

	lag := elapsed - t.interval
	if lag > t.latencyTolerance {
		t.timelag = lag
		t.lagged = true
	} else {
		t.timelag = 0
		t.lagged = false
	}

	t.actualizeLocked()
	if t.interval == 0 {
		return NoTick
	}

	t.counter++
	t.stage = t.stage.Add(t.interval)
	return Tick
}

// RunCheck reports whether the pass loop should keep going. A pending
// Stop is honored here, after the in-flight pass finished: the timer is
// reset and RunCheck returns false. Reaching MaxPasses ends the loop
// the same way, as a normal termination.
func (t *Timer) RunCheck() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		t.resetLocked()
	}
	if t.stage.IsZero() {
		return false
	}
	return t.maxPasses == 0 || t.counter < t.maxPasses
}

// Stop requests termination. It takes effect on the next RunCheck call,
// letting the in-flight pass finish.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

// Reset returns the timer to its initial state so it can be reused.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resetLocked()
}

func (t *Timer) resetLocked() {
	t.counter = 0
	t.stage = time.Time{}
	t.stopped = false
	t.timelag = 0
	t.lagged = false
	t.firstPass = false
}

// Alive reports whether the timer has been started and not yet reset.
func (t *Timer) Alive() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.stage.IsZero()
}

// Counter returns the number of passes begun so far.
func (t *Timer) Counter() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counter
}

// Interval returns the currently active interval.
func (t *Timer) Interval() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.interval
}

// Timelag returns the overrun of the latest tick evaluation and whether
// it exceeded the latency tolerance. It is cleared on every tick whose
// overrun stays within tolerance.
func (t *Timer) Timelag() (time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timelag, t.lagged
}

// Runtime returns how long the current pass has lasted, measured from
// the staged pass start rather than from the last Check call. It is
// zero when the timer is not alive and can be negative before a
// snapped first tick has been reached.
func (t *Timer) Runtime() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stage.IsZero() {
		return 0
	}
	return t.clock.Now().Sub(t.stage)
}
