package handler

import (
	"testing"

	"github.com/inputremapd/inputremapd"
)

func TestForwarderForwardsRawEdge(t *testing.T) {
	out := &fakeOutput{}
	fwd := NewForwarder(out)

	if err := fwd.Forward(inputremapd.Event{Type: evKey, Code: 30, Value: 1}); err != nil {
		t.Fatalf("Forward = %v", err)
	}

	if len(out.edges) != 1 || out.edges[0].Code != 30 || out.edges[0].Value != 1 {
		t.Fatalf("edges = %v, want one forwarded edge", out.edges)
	}
}

func TestForwarderEmitReleaseForcesZero(t *testing.T) {
	out := &fakeOutput{}
	fwd := NewForwarder(out)

	if err := fwd.EmitRelease(evKey, 42); err != nil {
		t.Fatalf("EmitRelease = %v", err)
	}

	if len(out.edges) != 1 || out.edges[0].Value != 0 {
		t.Fatalf("edges = %v, want a zero-value release", out.edges)
	}
}
