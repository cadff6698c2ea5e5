package sequence

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	gserrors "github.com/vnykmshr/goseq/pkg/common/errors"
	"github.com/vnykmshr/goseq/pkg/common/validation"
	"github.com/vnykmshr/goseq/pkg/scheduling/spawn"
	"github.com/vnykmshr/goseq/pkg/scheduling/timer"
)

// DefaultPoll is the sleep between tick evaluations of the pass loop.
const DefaultPoll = 2 * time.Millisecond

// Config holds configuration options for creating a Sequence.
type Config struct {
	// Timer drives the pass cadence. Required.
	Timer *timer.Timer

	// Commands are evaluated in order on every pass. The slice is
	// copied; later changes to it do not affect the sequence.
	Commands []Command

	// Observer receives progress events. Defaults to NopObserver.
	Observer Observer

	// Spawner runs accepted commands. Defaults to the goroutine
	// spawner.
	Spawner spawn.Spawner

	// Poll is the sleep between tick evaluations. Defaults to
	// DefaultPoll. Must not be negative.
	Poll time.Duration

	// Context is passed to command executions and, when canceled,
	// stops the loop after the in-flight pass. Defaults to
	// context.Background().
	Context context.Context
}

// Sequence drives a timer and runs its commands on every tick.
type Sequence struct {
	timer    *timer.Timer
	observer Observer
	spawner  spawn.Spawner
	poll     time.Duration
	ctx      context.Context

	mu       sync.Mutex
	commands []Command
	running  bool
	done     chan struct{}
}

// New creates a Sequence over tmr with default settings.
func New(tmr *timer.Timer, commands ...Command) (*Sequence, error) {
	return NewWithConfig(Config{Timer: tmr, Commands: commands})
}

// NewWithConfig creates a Sequence from cfg, validating it up front.
func NewWithConfig(cfg Config) (*Sequence, error) {
	if cfg.Timer == nil {
		return nil, validation.ValidateNotNil("sequence", "timer", nil)
	}
	if err := validation.ValidateNonNegativeDuration("sequence", "poll", cfg.Poll); err != nil {
		return nil, err
	}

	observer := cfg.Observer
	if observer == nil {
		observer = NopObserver{}
	}
	spawner := cfg.Spawner
	if spawner == nil {
		spawner = spawn.Go{}
	}
	poll := cfg.Poll
	if poll == 0 {
		poll = DefaultPoll
	}
	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}

	commands := make([]Command, len(cfg.Commands))
	copy(commands, cfg.Commands)

	return &Sequence{
		timer:    cfg.Timer,
		observer: observer,
		spawner:  spawner,
		poll:     poll,
		ctx:      ctx,
		commands: commands,
	}, nil
}

// Add appends a command. It fails once the sequence is running.
func (s *Sequence) Add(cmd Command) error {
	if cmd == nil {
		return validation.ValidateNotNil("sequence", "command", nil)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return gserrors.NewOperationError("sequence", "add", gserrors.ErrAlreadyRunning)
	}
	s.commands = append(s.commands, cmd)
	return nil
}

// Timer returns the driving timer.
func (s *Sequence) Timer() *timer.Timer { return s.timer }

// Commands returns a copy of the command list.
func (s *Sequence) Commands() []Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Command, len(s.commands))
	copy(out, s.commands)
	return out
}

// Alive reports whether the pass loop is running.
func (s *Sequence) Alive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Run executes the pass loop on the calling goroutine, blocking until
// the timer stops, its pass limit is reached, or the context is
// canceled. The final pass is always completed and its detached
// commands drained before Run returns.
func (s *Sequence) Run() error {
	done, err := s.begin()
	if err != nil {
		return err
	}
	s.loop(done)
	return nil
}

// Start executes the pass loop on its own goroutine. Use Stop to end
// it; only a cooperative stop guarantees the last pass completes.
func (s *Sequence) Start() error {
	done, err := s.begin()
	if err != nil {
		return err
	}
	go s.loop(done)
	return nil
}

// Stop requests termination, letting the in-flight pass finish. With
// wait set it blocks until the loop has exited and stragglers are
// drained. Stopping a sequence that is not running is a no-op.
func (s *Sequence) Stop(wait bool) {
	s.mu.Lock()
	running := s.running
	done := s.done
	s.mu.Unlock()

	s.timer.Stop()

	if wait && running {
		<-done
	}
}

func (s *Sequence) begin() (chan struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil, gserrors.NewOperationError("sequence", "run", gserrors.ErrAlreadyRunning)
	}
	s.running = true
	s.done = make(chan struct{})
	return s.done, nil
}

func (s *Sequence) loop(done chan struct{}) {
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
		close(done)
	}()

	time.Sleep(s.timer.Start())

	var stragglers []spawn.Handle
	for s.timer.RunCheck() {
		select {
		case <-s.ctx.Done():
			s.timer.Stop()
			continue
		default:
		}

		if s.timer.Check() == timer.Tick {
			s.observer.RoundStarted(s.timer.Counter(), s.timer.Interval())
			if lag, lagged := s.timer.Timelag(); lagged {
				s.observer.LatencyWarning(lag)
			}

			// Handles from earlier passes that have since finished are
			// pruned; only live ones are kept for the final drain.
			stragglers = spawn.Running(stragglers)

			s.mu.Lock()
			commands := s.commands
			s.mu.Unlock()

			for _, cmd := range commands {
				if !cmd.Check(s) {
					continue
				}
				h := s.spawner.Spawn(s.invoker(cmd))
				if cmd.Join() {
					h.Join()
				} else {
					stragglers = append(stragglers, h)
				}
			}
		}

		time.Sleep(s.poll)
	}

	spawn.JoinAll(stragglers)
	s.timer.Reset()
	s.observer.SequenceFinished()
}

// invoker wraps a command execution: pre-execution sleep, run, events,
// post-execution sleep. Errors and panics end at the observer.
func (s *Sequence) invoker(cmd Command) func() {
	return func() {
		name := cmd.Name()
		defer func() {
			if r := recover(); r != nil {
				s.observer.CommandError(name, fmt.Errorf("panic: %v\n%s", r, debug.Stack()))
			}
		}()

		if d := cmd.Preexec(s); d > 0 {
			time.Sleep(d)
		}

		s.observer.CommandRun(name)
		if err := cmd.Execute(s.ctx); err != nil {
			s.observer.CommandError(name, err)
		} else {
			s.observer.CommandDone(name)
		}

		if d := cmd.Postexec(s); d > 0 {
			time.Sleep(d)
		}
	}
}
