package handler

import (
	"context"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/inputremapd/inputremapd"
	"github.com/inputremapd/inputremapd/axis"
	"github.com/inputremapd/inputremapd/model"
)

// AbsToAbsHandler shapes one ABS input sample into an ABS output
// sample: normalize into [-1,1] using the input axis's declared
// range, apply deadzone/expo/gain, then denormalize into the output
// axis's declared range.
type AbsToAbsHandler struct {
	Out              Output
	OutType, OutCode uint16
	InMin, InMax     int32
	OutMin, OutMax   int32
	Shaping          model.ShapingParams
	Log              *slog.Logger

	// Gate is non-nil when this axis is the analog member of a
	// combination also gated by held keys; HandleEvent is a no-op
	// while it reports false.
	Gate *atomic.Bool
}

func (h *AbsToAbsHandler) HandleEvent(ev inputremapd.Event) Verdict {
	if h.Gate != nil && !h.Gate.Load() {
		return Consumed
	}

	normalized := axis.NormalizeAbs(ev.Value, h.InMin, h.InMax)
	shaped := axis.Shape(normalized, h.Shaping.Deadzone, h.Shaping.Expo, h.Shaping.Gain)

	mid := (float64(h.OutMin) + float64(h.OutMax)) / 2
	half := (float64(h.OutMax) - float64(h.OutMin)) / 2
	out := int32(mid + shaped*half)

	if err := h.Out.Emit(h.OutType, h.OutCode, out); err != nil && h.Log != nil {
		h.Log.Error("abs-to-abs emit failed", "err", err)
	}

	return Consumed
}

// AbsToRelHandler converts an ABS position into a speed and emits REL
// ticks at shaping.RelRate Hz while the normalized input sits outside
// the deadzone.
type AbsToRelHandler struct {
	Out          Output
	OutType      uint16
	OutCode      uint16
	InMin, InMax int32
	Shaping      model.ShapingParams
	Log          *slog.Logger

	current atomic.Uint64 // math.Float64bits of the last normalized sample
	cancel  context.CancelFunc

	// Gate is non-nil when this axis is the analog member of a
	// combination also gated by held keys.
	Gate *atomic.Bool
}

func (h *AbsToRelHandler) loadCurrent() float64 {
	return math.Float64frombits(h.current.Load())
}

func (h *AbsToRelHandler) storeCurrent(v float64) {
	h.current.Store(math.Float64bits(v))
}

// HandleEvent updates the handler's current normalized position; the
// emission loop it owns reads this on its own ticker, since AbsToRel
// is a continuous-motion handler rather than an edge-triggered one.
// Start must be called once before any ABS samples arrive.
func (h *AbsToRelHandler) HandleEvent(ev inputremapd.Event) Verdict {
	h.storeCurrent(axis.NormalizeAbs(ev.Value, h.InMin, h.InMax))

	return Consumed
}

// Start launches the handler's background tick loop, stopped by ctx's
// cancellation or by calling Stop.
func (h *AbsToRelHandler) Start(ctx context.Context) {
	ctx, h.cancel = context.WithCancel(ctx)
	acc := &axis.RelAccumulator{}

	emitter := axis.NewRelEmitter(h.Shaping.RelRate)

	go emitter.Run(ctx, func() (bool, error) {
		if h.Gate != nil && !h.Gate.Load() {
			return true, nil
		}

		x := h.loadCurrent()

		normalized := axis.Deadzone(x, h.Shaping.Deadzone)
		if normalized == 0 {
			return true, nil
		}

		shaped := axis.Shape(normalized, 0, h.Shaping.Expo, h.Shaping.Gain)

		delta := acc.Tick(shaped)
		if delta == 0 {
			return true, nil
		}

		return true, h.Out.Emit(h.OutType, h.OutCode, delta)
	})
}

// Stop ends the handler's background tick loop.
func (h *AbsToRelHandler) Stop() {
	if h.cancel != nil {
		h.cancel()
	}
}

// RelToAbsHandler accumulates REL ticks into a virtual absolute
// position clamped to the output axis range, and recenters after
// release_timeout without further motion.
type RelToAbsHandler struct {
	Out            Output
	OutType        uint16
	OutCode        uint16
	OutMin, OutMax int32
	Shaping        model.ShapingParams
	Log            *slog.Logger

	acc      *axis.AbsAccumulator
	lastMove time.Time

	// Gate is non-nil when this axis is the analog member of a
	// combination also gated by held keys.
	Gate *atomic.Bool
}

// NewRelToAbsHandler returns a ready RelToAbsHandler.
func NewRelToAbsHandler(out Output, outType, outCode uint16, outMin, outMax int32, shaping model.ShapingParams, log *slog.Logger) *RelToAbsHandler {
	return &RelToAbsHandler{
		Out: out, OutType: outType, OutCode: outCode,
		OutMin: outMin, OutMax: outMax, Shaping: shaping, Log: log,
		acc: axis.NewAbsAccumulator(outMin, outMax),
	}
}

func (h *RelToAbsHandler) HandleEvent(ev inputremapd.Event) Verdict {
	if h.Gate != nil && !h.Gate.Load() {
		return Consumed
	}

	if !h.lastMove.IsZero() {
		timeout := time.Duration(h.Shaping.ReleaseTimeoutMillis) * time.Millisecond
		if time.Since(h.lastMove) > timeout {
			h.acc.Center()
		}
	}

	h.lastMove = time.Now()

	normalized := axis.NormalizeRel(ev.Value, h.Shaping.RelToAbsInputCutoff)
	shaped := axis.Shape(normalized, h.Shaping.Deadzone, h.Shaping.Expo, h.Shaping.Gain)

	pos := h.acc.Add(shaped * (float64(h.OutMax) - float64(h.OutMin)) / 2)

	if err := h.Out.Emit(h.OutType, h.OutCode, pos); err != nil && h.Log != nil {
		h.Log.Error("rel-to-abs emit failed", "err", err)
	}

	return Consumed
}

// RelToKeyHandler fires a synthetic key press when a REL axis's
// magnitude crosses analog_threshold in the configured direction, and
// a release once it falls below a 75% hysteresis band or
// release_timeout elapses without further motion.
type RelToKeyHandler struct {
	Out              Output
	OutType, OutCode uint16
	Threshold        float64
	ReleaseTimeout   time.Duration
	Log              *slog.Logger

	pressed  bool
	lastMove time.Time
}

func (h *RelToKeyHandler) HandleEvent(ev inputremapd.Event) Verdict {
	now := time.Now()

	if h.pressed && h.ReleaseTimeout > 0 && !h.lastMove.IsZero() && now.Sub(h.lastMove) > h.ReleaseTimeout {
		h.release()
	}

	h.lastMove = now

	magnitude := float64(ev.Value)
	hysteresis := h.Threshold * 0.75

	switch {
	case !h.pressed && crosses(magnitude, h.Threshold):
		h.pressed = true

		if err := h.Out.Emit(h.OutType, h.OutCode, 1); err != nil && h.Log != nil {
			h.Log.Error("rel-to-key press failed", "err", err)
		}
	case h.pressed && !crosses(magnitude, hysteresis):
		h.release()
	}

	return Consumed
}

func (h *RelToKeyHandler) release() {
	h.pressed = false

	if err := h.Out.Emit(h.OutType, h.OutCode, 0); err != nil && h.Log != nil {
		h.Log.Error("rel-to-key release failed", "err", err)
	}
}

// AbsToKeyHandler is RelToKeyHandler's ABS-input counterpart: the
// threshold is a percentage of the input axis's normalized range
// rather than a raw REL magnitude.
type AbsToKeyHandler struct {
	Out              Output
	OutType, OutCode uint16
	InMin, InMax     int32
	ThresholdPercent float64
	ReleaseTimeout   time.Duration
	Log              *slog.Logger

	pressed  bool
	lastMove time.Time
}

func (h *AbsToKeyHandler) HandleEvent(ev inputremapd.Event) Verdict {
	now := time.Now()

	if h.pressed && h.ReleaseTimeout > 0 && !h.lastMove.IsZero() && now.Sub(h.lastMove) > h.ReleaseTimeout {
		h.release()
	}

	h.lastMove = now

	normalized := axis.NormalizeAbs(ev.Value, h.InMin, h.InMax) * 100
	threshold := h.ThresholdPercent
	hysteresis := threshold * 0.75

	switch {
	case !h.pressed && crosses(normalized, threshold):
		h.pressed = true

		if err := h.Out.Emit(h.OutType, h.OutCode, 1); err != nil && h.Log != nil {
			h.Log.Error("abs-to-key press failed", "err", err)
		}
	case h.pressed && !crosses(normalized, hysteresis):
		h.release()
	}

	return Consumed
}

func (h *AbsToKeyHandler) release() {
	h.pressed = false

	if err := h.Out.Emit(h.OutType, h.OutCode, 0); err != nil && h.Log != nil {
		h.Log.Error("abs-to-key release failed", "err", err)
	}
}

// crosses reports whether magnitude has reached threshold in
// threshold's own sign direction.
func crosses(magnitude, threshold float64) bool {
	if threshold >= 0 {
		return magnitude >= threshold
	}

	return magnitude <= threshold
}
