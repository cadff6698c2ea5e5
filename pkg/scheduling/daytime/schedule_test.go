package daytime

import (
	"testing"
	"time"

	"github.com/vnykmshr/goseq/internal/testutil"
)

func canonicalTable() []Entry {
	return []Entry{
		{At: At(6, 0, 0), Interval: 60 * time.Second},
		{At: At(12, 0, 0), Interval: 300 * time.Second},
		{At: At(22, 0, 0), Interval: 900 * time.Second},
	}
}

func TestScheduleResolution(t *testing.T) {
	tests := []struct {
		clock string
		want  time.Duration
	}{
		{"08:00", 60 * time.Second},
		{"14:00", 300 * time.Second},
		{"23:00", 900 * time.Second},
		{"02:00", 60 * time.Second}, // before the first threshold
	}

	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			at := MustParse(tt.clock)
			clock := testutil.NewMockClock(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).
				Add(at.Duration()))

			s, err := NewScheduleWithClock(canonicalTable(), clock)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, s.Interval(), tt.want)
		})
	}
}

func TestScheduleExactThreshold(t *testing.T) {
	// Thresholds are strict: at exactly 06:00 the pre-threshold default
	// (the first entry's interval) still applies; one instant later the
	// 06:00 entry wins.
	base := time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC)
	clock := testutil.NewMockClock(base)

	s, err := NewScheduleWithClock(canonicalTable(), clock)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, s.Interval(), 60*time.Second)

	clock.Advance(time.Nanosecond)
	testutil.AssertEqual(t, s.Interval(), 60*time.Second)

	clock.Set(base.Add(6 * time.Hour)) // 12:00:00.0
	testutil.AssertEqual(t, s.Interval(), 60*time.Second)
	clock.Advance(time.Second)
	testutil.AssertEqual(t, s.Interval(), 300*time.Second)
}

func TestScheduleSortsEntries(t *testing.T) {
	entries := []Entry{
		{At: At(22, 0, 0), Interval: 900 * time.Second},
		{At: At(6, 0, 0), Interval: 60 * time.Second},
		{At: At(12, 0, 0), Interval: 300 * time.Second},
	}
	s, err := NewSchedule(entries)
	testutil.AssertNoError(t, err)

	got := s.Entries()
	testutil.AssertEqual(t, len(got), 3)
	testutil.AssertEqual(t, got[0].At, At(6, 0, 0))
	testutil.AssertEqual(t, got[2].At, At(22, 0, 0))

	// the caller's slice must stay untouched
	testutil.AssertEqual(t, entries[0].At, At(22, 0, 0))
}

func TestScheduleValidation(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{"empty table", nil},
		{"negative interval", []Entry{{At: At(6, 0, 0), Interval: -time.Second}}},
		{"duplicate threshold", []Entry{
			{At: At(6, 0, 0), Interval: time.Second},
			{At: At(6, 0, 0), Interval: 2 * time.Second},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSchedule(tt.entries); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestScheduleZeroIntervalEntry(t *testing.T) {
	// A zero interval is a valid entry: it pauses the timer during that span.
	clock := testutil.NewMockClock(time.Date(2024, 5, 1, 3, 0, 0, 0, time.UTC))
	s, err := NewScheduleWithClock([]Entry{
		{At: At(1, 0, 0), Interval: 0},
		{At: At(6, 0, 0), Interval: time.Minute},
	}, clock)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, s.Interval(), time.Duration(0))

	clock.Set(time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC))
	testutil.AssertEqual(t, s.Interval(), time.Minute)
}
