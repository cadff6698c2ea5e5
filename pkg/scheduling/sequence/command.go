package sequence

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/vnykmshr/goseq/pkg/common/validation"
	"github.com/vnykmshr/goseq/pkg/scheduling/daytime"
)

// Func is the unit of work a command executes. Bind arguments with a
// closure.
type Func func(ctx context.Context) error

// Command is one entry in a sequence's pass. On every tick the loop
// calls Check; accepted commands are spawned, sleep their Preexec
// duration, execute, and sleep their Postexec duration. Join reports
// whether the pass must wait for the command before spawning the next
// one.
type Command interface {
	Name() string
	Check(s *Sequence) bool
	Preexec(s *Sequence) time.Duration
	Postexec(s *Sequence) time.Duration
	Join() bool
	Execute(ctx context.Context) error
}

// CmdConfig holds the gating options for a Cmd.
type CmdConfig struct {
	// Join serializes the pass on this command: the loop waits for it
	// to finish before spawning the next command.
	Join bool

	// Wait is a fixed sleep before every execution.
	Wait time.Duration

	// Stall is a fixed sleep after every execution. A joined command
	// holds the pass for its stall as well.
	Stall time.Duration

	// Delay aligns the execution at Delay past the pass start: the
	// command sleeps whatever remains of it when spawned.
	Delay time.Duration

	// NthTime runs the command on every nth pass only. Zero means
	// every pass.
	NthTime int

	// Times restricts execution to passes whose start falls inside a
	// one-interval window beginning at any of these times of day.
	// Empty means no restriction.
	Times []daytime.DayTime

	// Clock provides the current time for the Times filter. If nil,
	// the system clock is used.
	Clock daytime.Clock
}

// Cmd is the standard Command implementation: a named function behind
// the full gating protocol.
type Cmd struct {
	name    string
	fn      Func
	join    bool
	wait    time.Duration
	stall   time.Duration
	delay   time.Duration
	nthTime int
	times   []daytime.DayTime
	clock   daytime.Clock

	invocations int64
}

// NewCmd creates a Cmd that runs fn on every pass.
func NewCmd(name string, fn Func) (*Cmd, error) {
	return NewCmdWithConfig(name, fn, CmdConfig{})
}

// NewCmdWithConfig creates a Cmd from cfg, validating it up front.
func NewCmdWithConfig(name string, fn Func, cfg CmdConfig) (*Cmd, error) {
	if err := validation.ValidateNotEmpty("command", "name", name); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, validation.ValidateNotNil("command", "fn", nil)
	}
	if err := validation.ValidateNonNegative("command", "nthTime", cfg.NthTime); err != nil {
		return nil, err
	}
	if err := validation.ValidateNonNegativeDuration("command", "wait", cfg.Wait); err != nil {
		return nil, err
	}
	if err := validation.ValidateNonNegativeDuration("command", "stall", cfg.Stall); err != nil {
		return nil, err
	}
	if err := validation.ValidateNonNegativeDuration("command", "delay", cfg.Delay); err != nil {
		return nil, err
	}

	nthTime := cfg.NthTime
	if nthTime == 0 {
		nthTime = 1
	}
	clock := cfg.Clock
	if clock == nil {
		clock = daytime.SystemClock{}
	}

	times := make([]daytime.DayTime, len(cfg.Times))
	copy(times, cfg.Times)

	return &Cmd{
		name:    name,
		fn:      fn,
		join:    cfg.Join,
		wait:    cfg.Wait,
		stall:   cfg.Stall,
		delay:   cfg.Delay,
		nthTime: nthTime,
		times:   times,
		clock:   clock,
	}, nil
}

// Name returns the command's name.
func (c *Cmd) Name() string { return c.name }

// Join reports whether the pass serializes on this command.
func (c *Cmd) Join() bool { return c.join }

// Check applies the time-of-day window filter and the nth-pass filter.
// Both must accept for the command to run.
func (c *Cmd) Check(s *Sequence) bool {
	tmr := s.Timer()

	if len(c.times) > 0 {
		d := daytime.Now(c.clock)
		interval := tmr.Interval()
		inWindow := false
		for _, at := range c.times {
			if !d.Before(at) && d.Sub(at) < interval {
				inWindow = true
				break
			}
		}
		if !inWindow {
			return false
		}
	}

	return tmr.Counter()%c.nthTime == 0
}

// Preexec returns how long the command sleeps before executing: the
// fixed wait plus whatever remains of the aligned delay. A pass that
// already ran longer than the delay gets the wait alone.
func (c *Cmd) Preexec(s *Sequence) time.Duration {
	d := c.wait
	if remaining := c.delay - s.Timer().Runtime(); remaining > 0 {
		d += remaining
	}
	return d
}

// Postexec returns how long the command sleeps after executing.
func (c *Cmd) Postexec(s *Sequence) time.Duration {
	return c.stall
}

// Execute runs the bound function, counting the invocation.
func (c *Cmd) Execute(ctx context.Context) error {
	atomic.AddInt64(&c.invocations, 1)
	return c.fn(ctx)
}

// Invocations returns how many times Execute has been called.
func (c *Cmd) Invocations() int64 {
	return atomic.LoadInt64(&c.invocations)
}
