package logx

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vnykmshr/goseq/internal/testutil"
)

func TestNew_WritesStructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, zerolog.InfoLevel)

	log.Info().Str("cmd", "report").Msg("command done")

	out := buf.String()
	if !strings.Contains(out, `"cmd":"report"`) {
		t.Errorf("missing field in output: %s", out)
	}
	if !strings.Contains(out, `"message":"command done"`) {
		t.Errorf("missing message in output: %s", out)
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, zerolog.WarnLevel)

	log.Info().Msg("suppressed")
	testutil.AssertEqual(t, buf.Len(), 0)

	log.Warn().Msg("emitted")
	if buf.Len() == 0 {
		t.Error("warn output was suppressed")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"WARNING", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{" Info ", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		testutil.AssertEqual(t, ParseLevel(tt.name), tt.want)
	}
}

func TestObserver_EmitsEvents(t *testing.T) {
	var buf bytes.Buffer
	obs := NewObserver(New(&buf, zerolog.InfoLevel))

	obs.RoundStarted(3, time.Second)
	obs.LatencyWarning(50 * time.Millisecond)
	obs.CommandRun("report")
	obs.CommandDone("report")
	obs.CommandError("report", errors.New("boom"))
	obs.SequenceFinished()

	out := buf.String()
	for _, want := range []string{
		`"round":3`,
		`"level":"warn"`,
		`"cmd":"report"`,
		`"error":"boom"`,
		"sequence finished",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestNop_DiscardsEverything(t *testing.T) {
	log := Nop()
	log.Error().Msg("dropped")
}
