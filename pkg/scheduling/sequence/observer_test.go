package sequence

import (
	"errors"
	"testing"
	"time"

	"github.com/vnykmshr/goseq/internal/testutil"
)

func TestMultiObserver_FansOut(t *testing.T) {
	a := newRecorder()
	b := newRecorder()
	multi := MultiObserver{a, b}

	multi.RoundStarted(1, time.Second)
	multi.LatencyWarning(50 * time.Millisecond)
	multi.CommandRun("cmd")
	multi.CommandDone("cmd")
	multi.CommandError("other", errors.New("boom"))
	multi.SequenceFinished()

	for _, rec := range []*recorder{a, b} {
		rounds, runs, dones, finished := rec.snapshot()
		testutil.AssertEqual(t, rounds, 1)
		testutil.AssertEqual(t, len(runs), 1)
		testutil.AssertEqual(t, len(dones), 1)
		testutil.AssertEqual(t, finished, 1)
		testutil.AssertError(t, rec.errFor("other"))
	}
}

func TestNopObserver_ImplementsObserver(t *testing.T) {
	var obs Observer = NopObserver{}
	obs.RoundStarted(1, time.Second)
	obs.LatencyWarning(time.Millisecond)
	obs.CommandRun("cmd")
	obs.CommandDone("cmd")
	obs.CommandError("cmd", errors.New("boom"))
	obs.SequenceFinished()
}
