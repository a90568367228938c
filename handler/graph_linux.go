//go:build linux

package handler

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/inputremapd/inputremapd"
	"github.com/inputremapd/inputremapd/combination"
	rcontext "github.com/inputremapd/inputremapd/context"
	"github.com/inputremapd/inputremapd/linux/uinput"
	"github.com/inputremapd/inputremapd/macro"
	"github.com/inputremapd/inputremapd/model"
	"github.com/inputremapd/inputremapd/producer"
)

func millisToDuration(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// inputRanges resolves an input sub-device's declared ABS range by
// origin hash, so analog handlers can normalize a raw sample before
// shaping. Built from the injection's live Producers, one per grabbed
// sub-device.
type inputRanges struct {
	byOrigin map[uint64]*producer.Producer
}

func newInputRanges(producers []*producer.Producer) *inputRanges {
	byOrigin := make(map[uint64]*producer.Producer, len(producers))
	for _, p := range producers {
		byOrigin[p.Origin()] = p
	}

	return &inputRanges{byOrigin: byOrigin}
}

// absRange returns the [min, max] range the sub-device that produced
// cfg declares for cfg.Code. When cfg carries no OriginHash (it
// matches any sub-device of the group) and exactly one Producer is
// live, that Producer is used; an ambiguous match with more than one
// candidate is a configuration error the caller reports.
func (r *inputRanges) absRange(cfg model.InputConfig) (min, max int32, err error) {
	if cfg.OriginHash != 0 {
		p, ok := r.byOrigin[cfg.OriginHash]
		if !ok {
			return 0, 0, fmt.Errorf("no live producer for origin %d", cfg.OriginHash)
		}

		info, err := p.AbsInfo(cfg.Code)
		if err != nil {
			return 0, 0, err
		}

		return info.Minimum, info.Maximum, nil
	}

	if len(r.byOrigin) != 1 {
		return 0, 0, fmt.Errorf("config has no origin and %d producers are live; ambiguous", len(r.byOrigin))
	}

	for _, p := range r.byOrigin {
		info, err := p.AbsInfo(cfg.Code)
		if err != nil {
			return 0, 0, err
		}

		return info.Minimum, info.Maximum, nil
	}

	return 0, 0, fmt.Errorf("no live producers")
}

// Build wires a validated preset's mappings into a Graph, binding each
// mapping's handlers into the routing table on the InputConfigs of its
// combination. A single KEY trigger gets a simple key or macro handler;
// a single thresholded REL/ABS trigger gets a RelToKeyHandler or
// AbsToKeyHandler; a single member with analog-axis output gets one
// shaping handler. Every other mapping gets a CombinationHandler
// registered with resolver and, for analog-axis output, a second,
// gated shaping handler bound on the analog member. Handlers that own a
// background tick loop (AbsToRelHandler) are started under runCtx.
//
// producers supplies the live Event Producers for this injection, used
// only to read input-side ABS ranges; forwardOut is the device the
// Forwarder and residual-key releases write to. onMacroError, if
// non-nil, is called alongside logging whenever a mapping's macro task
// ends in error, for a caller keeping a per-mapping error count.
func Build(preset *model.Preset, rc *rcontext.Context, resolver *combination.Resolver, runtime *macro.Runtime, producers []*producer.Producer, forwardOut Output, log *slog.Logger, runCtx context.Context, onMacroError func(mappingID string, err error)) (*Graph, error) {
	ranges := newInputRanges(producers)
	fwd := NewForwarder(forwardOut)
	graph := NewGraph(fwd)

	combos := make(map[*model.Mapping]*CombinationHandler)

	for i := range preset.Mappings {
		m := &preset.Mappings[i]

		out, outOK := resolveOutput(rc, m)

		var ast *macro.Node
		if m.OutputKind == model.OutputMacro {
			parsed, err := macro.Parse(m.MacroText)
			if err != nil {
				log.Error("skipping mapping with unparsable macro", "target", m.TargetUinput, "err", err)
				continue
			}

			ast = parsed
		}

		if len(m.Combination) == 1 && m.Combination[0].Type == evKey {
			bindSimple(graph, runtime, runCtx, m, ast, out, outOK, onMacroError, log)
			continue
		}

		if len(m.Combination) == 1 && !m.Combination[0].IsAnalogAxis() && m.OutputKind != model.OutputAnalogAxis {
			bindThresholdedAnalog(graph, m, ranges, out, outOK, log)
			continue
		}

		if len(m.Combination) == 1 && m.OutputKind == model.OutputAnalogAxis {
			h, err := buildAnalogHandler(m, rc, ranges, out, outOK, nil, log)
			if err != nil {
				log.Error("skipping analog mapping", "target", m.TargetUinput, "err", err)
				continue
			}

			graph.Bind(h, asEvents(m.Combination)...)

			if started, ok := h.(interface{ Start(context.Context) }); ok {
				started.Start(runCtx)
			}

			continue
		}

		if !outOK {
			log.Error("skipping combination mapping with unresolved output", "target", m.TargetUinput)
			continue
		}

		// A combination with more than one member: CombinationHandler
		// gates it through the shared Resolver.
		var gate *atomic.Bool
		if m.OutputKind == model.OutputAnalogAxis {
			gate = &atomic.Bool{}
		}

		var mt *macroTrigger
		if m.OutputKind == model.OutputMacro {
			mt = newMacroTrigger(runtime, ast, m.Shaping.RelRate, m.MacroKeySleepMillis, out, m.TargetUinput, m.Combination, log)

			if onMacroError != nil {
				mt.onError = func(err error) { onMacroError(m.TargetUinput, err) }
			}

			graph.registerMacroTrigger(mt)
		}

		ch := NewCombinationHandler(m, resolver, out, mt, fwd, gate, log)
		combos[m] = ch

		if err := resolver.Register(i, m); err != nil {
			log.Error("skipping combination mapping", "target", m.TargetUinput, "err", err)
			delete(combos, m)
			continue
		}

		graph.Bind(ch, asEvents(m.Combination)...)

		if m.OutputKind == model.OutputAnalogAxis {
			analogCfg, ok := analogMember(m.Combination)
			if !ok {
				continue
			}

			ah, err := buildAnalogHandler(m, rc, ranges, out, outOK, gate, log)
			if err != nil {
				log.Error("skipping gated analog mapping", "target", m.TargetUinput, "err", err)
				continue
			}

			graph.Bind(ah, inputremapd.Event{Type: analogCfg.Type, Code: analogCfg.Code})

			if started, ok := ah.(interface{ Start(context.Context) }); ok {
				started.Start(runCtx)
			}
		}
	}

	wireResolverCallbacks(resolver, combos, runCtx)

	return graph, nil
}

// resolveOutput resolves the mapping's target_uinput to its write
// surface. Every mapping needs this, including Macro: its key()/
// event() nodes still write through the mapping's own target device.
func resolveOutput(rc *rcontext.Context, m *model.Mapping) (Output, bool) {
	dev, ok := rc.Output(uinput.Name(m.TargetUinput))
	if !ok {
		return nil, false
	}

	return AsOutput(dev), true
}

func asEvents(combo model.InputCombination) []inputremapd.Event {
	evs := make([]inputremapd.Event, len(combo))
	for i, cfg := range combo {
		evs[i] = inputremapd.Event{Type: cfg.Type, Code: cfg.Code}
	}

	return evs
}

func analogMember(combo model.InputCombination) (model.InputConfig, bool) {
	for _, cfg := range combo {
		if cfg.IsAnalogAxis() {
			return cfg, true
		}
	}

	return model.InputConfig{}, false
}

// bindSimple handles the common case: a single KEY-type trigger mapped
// directly to a key edge or a macro, with no combination arbitration
// needed.
func bindSimple(graph *Graph, runtime *macro.Runtime, runCtx context.Context, m *model.Mapping, ast *macro.Node, out Output, outOK bool, onMacroError func(mappingID string, err error), log *slog.Logger) {
	if !outOK {
		log.Error("skipping mapping with unresolved output", "target", m.TargetUinput)
		return
	}

	switch m.OutputKind {
	case model.OutputKey:
		graph.Bind(NewKeyHandler(out, m.OutputType, m.OutputCode, log), asEvents(m.Combination)...)
	case model.OutputMacro:
		mt := newMacroTrigger(runtime, ast, m.Shaping.RelRate, m.MacroKeySleepMillis, out, m.TargetUinput, m.Combination, log)

		if onMacroError != nil {
			mt.onError = func(err error) { onMacroError(m.TargetUinput, err) }
		}

		graph.registerMacroTrigger(mt)
		graph.Bind(NewMacroHandler(runCtx, mt), asEvents(m.Combination)...)
	}
}

// bindThresholdedAnalog handles a single analog axis used directly as
// a button (no gating modifiers): RelToKeyHandler/AbsToKeyHandler. A
// thresholded axis driving a macro rather than a key is not currently
// supported; macros only hear press/release through pressKey/releaseKey.
func bindThresholdedAnalog(graph *Graph, m *model.Mapping, ranges *inputRanges, out Output, outOK bool, log *slog.Logger) {
	if m.OutputKind != model.OutputKey {
		log.Error("thresholded-analog trigger only supports key output", "target", m.TargetUinput, "output_kind", m.OutputKind)
		return
	}

	if !outOK {
		log.Error("skipping thresholded-analog mapping with unresolved output", "target", m.TargetUinput)
		return
	}

	cfg := m.Combination[0]
	timeout := millisToDuration(m.Shaping.ReleaseTimeoutMillis)

	switch cfg.Type {
	case evRel:
		graph.Bind(&RelToKeyHandler{
			Out: out, OutType: m.OutputType, OutCode: m.OutputCode,
			Threshold: cfg.AnalogThreshold, ReleaseTimeout: timeout, Log: log,
		}, inputremapd.Event{Type: cfg.Type, Code: cfg.Code})
	case evAbs:
		min, max, err := ranges.absRange(cfg)
		if err != nil {
			log.Error("skipping thresholded-analog mapping", "target", m.TargetUinput, "err", err)
			return
		}

		graph.Bind(&AbsToKeyHandler{
			Out: out, OutType: m.OutputType, OutCode: m.OutputCode,
			InMin: min, InMax: max, ThresholdPercent: cfg.AnalogThreshold,
			ReleaseTimeout: timeout, Log: log,
		}, inputremapd.Event{Type: cfg.Type, Code: cfg.Code})
	}
}

// buildAnalogHandler constructs the continuous-shaping handler for an
// OutputAnalogAxis mapping, chosen by (input type, output type). gate
// is nil for an ungated single-member combination.
func buildAnalogHandler(m *model.Mapping, rc *rcontext.Context, ranges *inputRanges, out Output, outOK bool, gate *atomic.Bool, log *slog.Logger) (Handler, error) {
	if !outOK {
		return nil, fmt.Errorf("unresolved output device %q", m.TargetUinput)
	}

	cfg, ok := analogMember(m.Combination)
	if !ok {
		cfg = m.Combination[0]
	}

	switch {
	case cfg.Type == evAbs && m.OutputType == evAbs:
		inMin, inMax, err := ranges.absRange(cfg)
		if err != nil {
			return nil, err
		}

		outMin, outMax, ok := rc.AbsRange(m.TargetUinput, m.OutputCode)
		if !ok {
			return nil, fmt.Errorf("output %q does not advertise ABS code %d", m.TargetUinput, m.OutputCode)
		}

		return &AbsToAbsHandler{
			Out: out, OutType: m.OutputType, OutCode: m.OutputCode,
			InMin: inMin, InMax: inMax, OutMin: outMin, OutMax: outMax,
			Shaping: m.Shaping, Gate: gate, Log: log,
		}, nil
	case cfg.Type == evAbs && m.OutputType == evRel:
		inMin, inMax, err := ranges.absRange(cfg)
		if err != nil {
			return nil, err
		}

		return &AbsToRelHandler{
			Out: out, OutType: m.OutputType, OutCode: m.OutputCode,
			InMin: inMin, InMax: inMax, Shaping: m.Shaping, Gate: gate, Log: log,
		}, nil
	case cfg.Type == evRel && m.OutputType == evAbs:
		outMin, outMax, ok := rc.AbsRange(m.TargetUinput, m.OutputCode)
		if !ok {
			return nil, fmt.Errorf("output %q does not advertise ABS code %d", m.TargetUinput, m.OutputCode)
		}

		h := NewRelToAbsHandler(out, m.OutputType, m.OutputCode, outMin, outMax, m.Shaping, log)
		h.Gate = gate

		return h, nil
	}

	return nil, fmt.Errorf("unsupported analog handler for input type %d -> output type %d", cfg.Type, m.OutputType)
}

// wireResolverCallbacks installs the Resolver's shared
// Activate/Release/ReleaseResidual callbacks, routing each call to the
// CombinationHandler that owns the winning mapping.
func wireResolverCallbacks(resolver *combination.Resolver, combos map[*model.Mapping]*CombinationHandler, runCtx context.Context) {
	resolver.Activate = func(m *model.Mapping, trigger model.InputConfig) {
		if h, ok := combos[m]; ok {
			h.activate(runCtx, trigger)
		}
	}

	resolver.Release = func(m *model.Mapping) {
		if h, ok := combos[m]; ok {
			h.release()
		}
	}

	resolver.ReleaseResidual = func(m *model.Mapping, residual model.InputConfig) {
		if h, ok := combos[m]; ok {
			h.releaseResidual(residual)
		}
	}
}
