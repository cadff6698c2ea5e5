package daytime

import (
	"sort"
	"time"

	gserrors "github.com/vnykmshr/goseq/pkg/common/errors"
	"github.com/vnykmshr/goseq/pkg/common/validation"
)

// Entry pairs a day-time threshold with the interval that applies from
// that threshold on.
type Entry struct {
	At       DayTime
	Interval time.Duration
}

// Schedule is a sorted table of (day time, interval) pairs. It resolves
// the active interval for the current time of day: the interval of the
// greatest threshold before now, or the first entry's interval before
// any threshold has been crossed. A zero interval pauses the timer
// until the next threshold.
//
// Schedule implements the timer package's IntervalSource.
type Schedule struct {
	entries []Entry
	clock   Clock
}

// NewSchedule creates a Schedule from the given entries, using the
// system clock. The entries are copied and sorted ascending by time of
// day; the table must be non-empty, without duplicate thresholds or
// negative intervals.
func NewSchedule(entries []Entry) (*Schedule, error) {
	return NewScheduleWithClock(entries, SystemClock{})
}

// NewScheduleWithClock is like NewSchedule with an explicit clock.
func NewScheduleWithClock(entries []Entry, clock Clock) (*Schedule, error) {
	if len(entries) == 0 {
		return nil, gserrors.NewValidationError("daytime", "entries", len(entries), "cannot be empty").
			WithHint("provide at least one (time, interval) pair")
	}
	if clock == nil {
		clock = SystemClock{}
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].At < sorted[j].At })

	for i, e := range sorted {
		if err := validation.ValidateNonNegativeDuration("daytime", "interval", e.Interval); err != nil {
			return nil, err
		}
		if i > 0 && sorted[i-1].At == e.At {
			return nil, gserrors.NewValidationError("daytime", "entries", e.At.String(), "duplicate threshold")
		}
	}

	return &Schedule{entries: sorted, clock: clock}, nil
}

// Interval resolves the active interval for the current time of day.
func (s *Schedule) Interval() time.Duration {
	now := Now(s.clock)
	interval := s.entries[0].Interval
	for _, e := range s.entries {
		if e.At.Before(now) {
			interval = e.Interval
		}
	}
	return interval
}

// Entries returns a copy of the sorted table.
func (s *Schedule) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries in the table.
func (s *Schedule) Len() int { return len(s.entries) }
