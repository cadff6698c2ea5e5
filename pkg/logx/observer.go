package logx

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/vnykmshr/goseq/pkg/scheduling/sequence"
)

// Observer reports sequence events through a zerolog.Logger.
type Observer struct {
	log zerolog.Logger
}

var _ sequence.Observer = (*Observer)(nil)

// NewObserver creates a sequence observer logging to log.
func NewObserver(log zerolog.Logger) *Observer {
	return &Observer{log: log}
}

func (o *Observer) RoundStarted(counter int, interval time.Duration) {
	o.log.Info().
		Int("round", counter).
		Dur("interval", interval).
		Msg("round started")
}

func (o *Observer) LatencyWarning(lag time.Duration) {
	o.log.Warn().
		Dur("lag", lag).
		Msg("tick overran its staged point")
}

func (o *Observer) CommandRun(name string) {
	o.log.Info().
		Str("cmd", name).
		Msg("command running")
}

func (o *Observer) CommandDone(name string) {
	o.log.Info().
		Str("cmd", name).
		Msg("command done")
}

func (o *Observer) CommandError(name string, err error) {
	o.log.Error().
		Str("cmd", name).
		Err(err).
		Msg("command failed")
}

func (o *Observer) SequenceFinished() {
	o.log.Info().Msg("sequence finished")
}
