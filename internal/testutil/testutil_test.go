package testutil

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestMockClock(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := NewMockClock(start)

	AssertEqual(t, clock.Now(), start)

	clock.Advance(90 * time.Second)
	AssertEqual(t, clock.Now(), start.Add(90*time.Second))

	later := start.Add(time.Hour)
	clock.Set(later)
	AssertEqual(t, clock.Now(), later)
}

func TestEventually(t *testing.T) {
	var n int32
	go func() {
		time.Sleep(10 * time.Millisecond)
		atomic.StoreInt32(&n, 1)
	}()
	Eventually(t, func() bool { return atomic.LoadInt32(&n) == 1 }, time.Second, time.Millisecond)
}

func TestWaitForInt32(t *testing.T) {
	var n int32
	go func() {
		atomic.AddInt32(&n, 2)
	}()
	WaitForInt32(t, &n, 2, time.Second)
}
