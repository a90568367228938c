package handler

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/inputremapd/inputremapd"
	"github.com/inputremapd/inputremapd/combination"
	"github.com/inputremapd/inputremapd/model"
)

// CombinationHandler tracks one mapping's combination membership and
// reports satisfaction/desatisfaction transitions to the shared
// combination.Resolver, which decides when this mapping's output
// actually fires. One CombinationHandler is bound to every (type,
// code) pair in its InputConfig list.
type CombinationHandler struct {
	mapping  *model.Mapping
	resolver *combination.Resolver

	out     Output
	macro   *macroTrigger
	forward *Forwarder
	log     *slog.Logger

	thresholds map[configIdentity]threshold

	// gate is shared with an analog shaping handler when the mapping's
	// combination pairs gating keys with an analog-axis member: it
	// reports whether the gating keys are currently held, so the
	// analog handler knows when to shape and emit. nil for
	// single-member combinations, which have no separate gate.
	gate *atomic.Bool
}

type configIdentity struct {
	evType, code uint16
	origin       uint64
}

func identityOf(c model.InputConfig) configIdentity {
	return configIdentity{evType: c.Type, code: c.Code, origin: c.OriginHash}
}

// threshold captures one InputConfig's satisfaction rule, resolved
// once at handler construction so HandleEvent never recomputes it.
type threshold struct {
	cfg       model.InputConfig
	satisfied bool
}

// NewCombinationHandler returns a CombinationHandler for mapping,
// wired into resolver. out is this mapping's resolved output device;
// for Macro output, mt carries the macro and writes to that same device.
// gate is nil unless mapping's output is an analog axis gated by the
// rest of the combination, in which case it is shared with that
// analog handler.
func NewCombinationHandler(mapping *model.Mapping, resolver *combination.Resolver, out Output, mt *macroTrigger, forward *Forwarder, gate *atomic.Bool, log *slog.Logger) *CombinationHandler {
	h := &CombinationHandler{
		mapping:    mapping,
		resolver:   resolver,
		out:        out,
		macro:      mt,
		forward:    forward,
		gate:       gate,
		log:        log,
		thresholds: make(map[configIdentity]threshold, len(mapping.Combination)),
	}

	for _, cfg := range mapping.Combination {
		h.thresholds[identityOf(cfg)] = threshold{cfg: cfg}
	}

	return h
}

func (h *CombinationHandler) HandleEvent(ev inputremapd.Event) Verdict {
	id := configIdentity{evType: ev.Type, code: ev.Code, origin: ev.Origin}

	t, ok := h.thresholds[id]
	if !ok {
		// Bound for a differently-originated instance of this
		// (type, code); no origin constraint on this mapping's config
		// means it still matches by (type, code) alone.
		for candidate, cand := range h.thresholds {
			if candidate.evType == ev.Type && candidate.code == ev.Code && candidate.origin == 0 {
				t = cand
				id = candidate
				ok = true

				break
			}
		}
	}

	if !ok {
		return Deferred
	}

	nowSatisfied := isSatisfied(t.cfg, ev)

	if nowSatisfied == t.satisfied {
		return Deferred
	}

	t.satisfied = nowSatisfied
	h.thresholds[id] = t

	if nowSatisfied {
		h.resolver.Satisfy(t.cfg)
	} else {
		h.resolver.Desatisfy(t.cfg)
	}

	return Deferred
}

// isSatisfied applies the InputConfig's threshold regime from the data
// model: absent/zero threshold (IsAnalogAxis) never gates a
// combination key — an analog axis config instead holds the final
// mapping value while already-satisfied — a plain KEY config is
// satisfied by a nonzero value, and a thresholded ABS/REL config is
// satisfied once its signed magnitude crosses the threshold.
func isSatisfied(cfg model.InputConfig, ev inputremapd.Event) bool {
	if cfg.Type == evKey {
		return ev.Value != 0
	}

	if cfg.IsAnalogAxis() {
		return true
	}

	if cfg.AnalogThreshold >= 0 {
		return float64(ev.Value) >= cfg.AnalogThreshold
	}

	return float64(ev.Value) <= cfg.AnalogThreshold
}

// activate and release are registered as the shared Resolver's
// Activate/Release/ReleaseResidual callbacks by whoever builds the
// Graph (one set of closures per mapping, capturing its own
// CombinationHandler).
func (h *CombinationHandler) activate(ctx context.Context, trigger model.InputConfig) {
	switch h.mapping.OutputKind {
	case model.OutputKey:
		if err := h.out.Emit(h.mapping.OutputType, h.mapping.OutputCode, 1); err != nil && h.log != nil {
			h.log.Error("combination output emit failed", "err", err)
		}
	case model.OutputMacro:
		h.macro.pressKey(ctx)
	case model.OutputAnalogAxis:
		// The analog handler itself emits; this only opens the gate.
		if h.gate != nil {
			h.gate.Store(true)
		}
	}
}

func (h *CombinationHandler) release() {
	switch h.mapping.OutputKind {
	case model.OutputKey:
		if err := h.out.Emit(h.mapping.OutputType, h.mapping.OutputCode, 0); err != nil && h.log != nil {
			h.log.Error("combination output release failed", "err", err)
		}
	case model.OutputMacro:
		h.macro.releaseKey()
	case model.OutputAnalogAxis:
		if h.gate != nil {
			h.gate.Store(false)
		}
	}
}

func (h *CombinationHandler) releaseResidual(cfg model.InputConfig) {
	if h.forward == nil {
		return
	}

	if err := h.forward.EmitRelease(cfg.Type, cfg.Code); err != nil && h.log != nil {
		h.log.Error("residual release failed", "err", err, "code", cfg.Code)
	}
}
