package axis

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RelEmitter ticks at a configured rate (Hz) until its context is
// cancelled or emit reports that it is done, invoking emit once per
// tick. AbsToRelHandler drives it to emit REL ticks at rel_rate Hz.
type RelEmitter struct {
	limiter *rate.Limiter
	hz      float64
}

// NewRelEmitter returns an emitter ticking at hz times per second. hz
// must be > 0, enforced by the shaping_params validation upstream.
func NewRelEmitter(hz float64) *RelEmitter {
	return &RelEmitter{
		limiter: rate.NewLimiter(rate.Limit(hz), 1),
		hz:      hz,
	}
}

// Run calls emit once per tick until ctx is cancelled or emit returns
// false (the mapping's release condition became true). It returns the
// reason Run stopped: nil for ctx cancellation, or emit's own error.
func (e *RelEmitter) Run(ctx context.Context, emit func() (keepGoing bool, err error)) error {
	for {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil
		}

		keepGoing, err := emit()
		if err != nil {
			return err
		}

		if !keepGoing {
			return nil
		}
	}
}

// TickInterval returns the nominal period between ticks, useful for
// callers that need to reason about wall-clock budgets without driving
// the limiter directly.
func (e *RelEmitter) TickInterval() time.Duration {
	return time.Duration(float64(time.Second) / e.hz)
}
