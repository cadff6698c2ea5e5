package daytime

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	gserrors "github.com/vnykmshr/goseq/pkg/common/errors"
)

// Clock provides the current time. It can be mocked for testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system time.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// DayTime is a time of day: the duration elapsed since midnight in the
// local representation of a wall-clock time. It carries no date, so
// comparing and subtracting two DayTime values is plain duration
// arithmetic.
type DayTime time.Duration

// At returns the DayTime for the given clock reading.
// Values outside their natural ranges are not normalized.
func At(hour, min, sec int) DayTime {
	return DayTime(time.Duration(hour)*time.Hour +
		time.Duration(min)*time.Minute +
		time.Duration(sec)*time.Second)
}

// Of extracts the time of day from t, including sub-second precision.
func Of(t time.Time) DayTime {
	h, m, s := t.Clock()
	return At(h, m, s) + DayTime(t.Nanosecond())
}

// Now returns the current time of day as reported by clock.
// A nil clock falls back to the system clock.
func Now(clock Clock) DayTime {
	if clock == nil {
		clock = SystemClock{}
	}
	return Of(clock.Now())
}

// Parse reads a DayTime from "HH:MM" or "HH:MM:SS".
func Parse(s string) (DayTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, gserrors.NewValidationError("daytime", "value", s, "expected HH:MM or HH:MM:SS")
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, gserrors.NewValidationError("daytime", "hour", parts[0], "must be in [0, 23]")
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, gserrors.NewValidationError("daytime", "minute", parts[1], "must be in [0, 59]")
	}
	sec := 0
	if len(parts) == 3 {
		sec, err = strconv.Atoi(parts[2])
		if err != nil || sec < 0 || sec > 59 {
			return 0, gserrors.NewValidationError("daytime", "second", parts[2], "must be in [0, 59]")
		}
	}
	return At(h, m, sec), nil
}

// MustParse is like Parse but panics on malformed input.
// Intended for static tables in configuration code.
func MustParse(s string) DayTime {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Before reports whether d is earlier in the day than o.
func (d DayTime) Before(o DayTime) bool { return d < o }

// After reports whether d is later in the day than o.
func (d DayTime) After(o DayTime) bool { return d > o }

// Sub returns the elapsed duration from o to d.
func (d DayTime) Sub(o DayTime) time.Duration { return time.Duration(d - o) }

// Duration returns d as a duration since midnight.
func (d DayTime) Duration() time.Duration { return time.Duration(d) }

func (d DayTime) String() string {
	total := time.Duration(d)
	h := total / time.Hour
	m := (total % time.Hour) / time.Minute
	s := (total % time.Minute) / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
