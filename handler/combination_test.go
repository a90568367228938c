package handler

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/inputremapd/inputremapd"
	"github.com/inputremapd/inputremapd/combination"
	"github.com/inputremapd/inputremapd/model"
)

func key(code uint16) model.InputConfig {
	return model.InputConfig{Type: evKey, Code: code}
}

func TestCombinationHandlerActivatesOnFullSatisfaction(t *testing.T) {
	var activated []string

	resolver := combination.New()
	resolver.Activate = func(m *model.Mapping, trig model.InputConfig) { activated = append(activated, m.TargetUinput) }

	mapping := &model.Mapping{
		TargetUinput: "combo",
		Combination:  model.InputCombination{key(29), key(56)},
		OutputKind:   model.OutputKey,
		OutputType:   evKey,
		OutputCode:   30,
	}

	if err := resolver.Register(0, mapping); err != nil {
		t.Fatalf("Register = %v", err)
	}

	out := &fakeOutput{}
	h := NewCombinationHandler(mapping, resolver, out, nil, nil, nil, nil)
	resolver.Activate = func(m *model.Mapping, trig model.InputConfig) {
		activated = append(activated, m.TargetUinput)
		h.activate(context.Background(), trig)
	}

	if v := h.HandleEvent(inputremapd.Event{Type: evKey, Code: 29, Value: 1}); v != Deferred {
		t.Fatalf("HandleEvent verdict = %v, want Deferred", v)
	}

	if len(activated) != 0 {
		t.Fatalf("activated = %v before both keys held", activated)
	}

	if v := h.HandleEvent(inputremapd.Event{Type: evKey, Code: 56, Value: 1}); v != Deferred {
		t.Fatalf("HandleEvent verdict = %v, want Deferred", v)
	}

	if len(activated) != 1 || activated[0] != "combo" {
		t.Fatalf("activated = %v, want [combo]", activated)
	}

	if len(out.edges) != 1 || out.edges[0].Value != 1 {
		t.Fatalf("out.edges = %v, want one press edge", out.edges)
	}
}

func TestCombinationHandlerIgnoresRepeatWithNoTransition(t *testing.T) {
	resolver := combination.New()

	mapping := &model.Mapping{
		TargetUinput: "combo",
		Combination:  model.InputCombination{key(29)},
		OutputKind:   model.OutputKey,
	}
	if err := resolver.Register(0, mapping); err != nil {
		t.Fatalf("Register = %v", err)
	}

	h := NewCombinationHandler(mapping, resolver, &fakeOutput{}, nil, nil, nil, nil)

	h.HandleEvent(inputremapd.Event{Type: evKey, Code: 29, Value: 1})

	var satisfyCount int
	resolver.Activate = func(m *model.Mapping, trig model.InputConfig) { satisfyCount++ }

	// A repeat (value 2) carries no satisfied-state transition.
	if v := h.HandleEvent(inputremapd.Event{Type: evKey, Code: 29, Value: 2}); v != Deferred {
		t.Fatalf("HandleEvent verdict = %v, want Deferred", v)
	}

	if satisfyCount != 0 {
		t.Fatalf("Activate fired %d times on a repeat with no transition, want 0", satisfyCount)
	}
}

func TestCombinationHandlerGateOpensAnalogOutputOnActivate(t *testing.T) {
	resolver := combination.New()

	mapping := &model.Mapping{
		TargetUinput: "gamepad",
		Combination:  model.InputCombination{key(29), {Type: evAbs, Code: 0}},
		OutputKind:   model.OutputAnalogAxis,
	}
	if err := resolver.Register(0, mapping); err != nil {
		t.Fatalf("Register = %v", err)
	}

	gate := &atomic.Bool{}
	h := NewCombinationHandler(mapping, resolver, nil, nil, nil, gate, nil)
	resolver.Activate = func(m *model.Mapping, trig model.InputConfig) { h.activate(context.Background(), trig) }
	resolver.Release = func(m *model.Mapping) { h.release() }

	// The analog axis member is considered satisfied the first time
	// any sample is observed from it, per isSatisfied's rule for
	// IsAnalogAxis configs.
	h.HandleEvent(inputremapd.Event{Type: evAbs, Code: 0, Value: 500})
	h.HandleEvent(inputremapd.Event{Type: evKey, Code: 29, Value: 1})

	if !gate.Load() {
		t.Fatalf("gate should open once the modifier key and analog axis are both satisfied")
	}

	h.HandleEvent(inputremapd.Event{Type: evKey, Code: 29, Value: 0})

	if gate.Load() {
		t.Fatalf("gate should close once the modifier key releases")
	}
}
