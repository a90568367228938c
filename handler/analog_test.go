package handler

import (
	"sync/atomic"
	"testing"

	"github.com/inputremapd/inputremapd"
	"github.com/inputremapd/inputremapd/model"
)

func TestAbsToAbsHandlerDenormalizesIntoOutputRange(t *testing.T) {
	out := &fakeOutput{}
	h := &AbsToAbsHandler{
		Out: out, OutType: evAbs, OutCode: 0,
		InMin: -32768, InMax: 32767,
		OutMin: -100, OutMax: 100,
		Shaping: model.ShapingParams{Deadzone: 0, Expo: 0, Gain: 1},
	}

	h.HandleEvent(inputremapd.Event{Type: evAbs, Code: 0, Value: 32767})

	if len(out.edges) != 1 {
		t.Fatalf("edges = %v, want one", out.edges)
	}

	if got := out.edges[0].Value; got < 95 {
		t.Fatalf("full-deflection output = %d, want close to OutMax (100)", got)
	}
}

func TestAbsToAbsHandlerGateSuppressesEmission(t *testing.T) {
	out := &fakeOutput{}
	gate := newBoolGate(false)

	h := &AbsToAbsHandler{
		Out: out, OutType: evAbs, OutCode: 0,
		InMin: -32768, InMax: 32767, OutMin: -100, OutMax: 100,
		Shaping: model.ShapingParams{Gain: 1}, Gate: gate,
	}

	h.HandleEvent(inputremapd.Event{Type: evAbs, Code: 0, Value: 32767})

	if len(out.edges) != 0 {
		t.Fatalf("edges = %v, want none while gate is closed", out.edges)
	}
}

func TestRelToKeyHandlerPressesAndReleasesWithHysteresis(t *testing.T) {
	out := &fakeOutput{}
	h := &RelToKeyHandler{Out: out, OutType: evKey, OutCode: 30, Threshold: 10}

	h.HandleEvent(inputremapd.Event{Type: evRel, Code: 8, Value: 5})
	if len(out.edges) != 0 {
		t.Fatalf("edges = %v, want no press below threshold", out.edges)
	}

	h.HandleEvent(inputremapd.Event{Type: evRel, Code: 8, Value: 12})
	if len(out.edges) != 1 || out.edges[0].Value != 1 {
		t.Fatalf("edges = %v, want one press", out.edges)
	}

	// Inside the hysteresis band (below 10 but still >= 7.5): stays held.
	h.HandleEvent(inputremapd.Event{Type: evRel, Code: 8, Value: 8})
	if len(out.edges) != 1 {
		t.Fatalf("edges = %v, want still held inside hysteresis band", out.edges)
	}

	h.HandleEvent(inputremapd.Event{Type: evRel, Code: 8, Value: 2})
	if len(out.edges) != 2 || out.edges[1].Value != 0 {
		t.Fatalf("edges = %v, want a release once below the hysteresis band", out.edges)
	}
}

func TestAbsToKeyHandlerUsesPercentThreshold(t *testing.T) {
	out := &fakeOutput{}
	h := &AbsToKeyHandler{
		Out: out, OutType: evKey, OutCode: 30,
		InMin: 0, InMax: 255, ThresholdPercent: 50,
	}

	// Raw 192 normalizes to ~0.5059 -> *100 ~= 50.6%, above threshold.
	h.HandleEvent(inputremapd.Event{Type: evAbs, Code: 3, Value: 192})

	if len(out.edges) != 1 || out.edges[0].Value != 1 {
		t.Fatalf("edges = %v, want one press once past 50%%", out.edges)
	}
}

func newBoolGate(open bool) *atomic.Bool {
	g := &atomic.Bool{}
	g.Store(open)
	return g
}
