package handler

import (
	"testing"

	"github.com/inputremapd/inputremapd"
)

type fakeOutput struct {
	edges []inputremapd.Event
}

func (o *fakeOutput) Emit(evType, code uint16, value int32) error {
	o.edges = append(o.edges, inputremapd.Event{Type: evType, Code: code, Value: value})
	return nil
}

type fixedHandler struct {
	verdict Verdict
	seen    []inputremapd.Event
}

func (h *fixedHandler) HandleEvent(ev inputremapd.Event) Verdict {
	h.seen = append(h.seen, ev)
	return h.verdict
}

func TestDispatchForwardsUnboundEvent(t *testing.T) {
	out := &fakeOutput{}
	graph := NewGraph(NewForwarder(out))

	if err := graph.Dispatch(inputremapd.Event{Type: evKey, Code: 30, Value: 1}); err != nil {
		t.Fatalf("Dispatch = %v", err)
	}

	if len(out.edges) != 1 {
		t.Fatalf("edges = %v, want one forwarded edge", out.edges)
	}
}

func TestDispatchConsumedDoesNotForward(t *testing.T) {
	out := &fakeOutput{}
	graph := NewGraph(NewForwarder(out))

	h := &fixedHandler{verdict: Consumed}
	graph.Bind(h, inputremapd.Event{Type: evKey, Code: 30})

	if err := graph.Dispatch(inputremapd.Event{Type: evKey, Code: 30, Value: 1}); err != nil {
		t.Fatalf("Dispatch = %v", err)
	}

	if len(out.edges) != 0 {
		t.Fatalf("edges = %v, want none forwarded", out.edges)
	}

	if len(h.seen) != 1 {
		t.Fatalf("handler saw %d events, want 1", len(h.seen))
	}
}

func TestDispatchPassthroughStillForwards(t *testing.T) {
	out := &fakeOutput{}
	graph := NewGraph(NewForwarder(out))

	h := &fixedHandler{verdict: Passthrough}
	graph.Bind(h, inputremapd.Event{Type: evKey, Code: 30})

	if err := graph.Dispatch(inputremapd.Event{Type: evKey, Code: 30, Value: 1}); err != nil {
		t.Fatalf("Dispatch = %v", err)
	}

	if len(out.edges) != 1 {
		t.Fatalf("edges = %v, want one forwarded edge", out.edges)
	}
}

func TestDispatchDeferredWithholdsForward(t *testing.T) {
	out := &fakeOutput{}
	graph := NewGraph(NewForwarder(out))

	h := &fixedHandler{verdict: Deferred}
	graph.Bind(h, inputremapd.Event{Type: evKey, Code: 42})

	if err := graph.Dispatch(inputremapd.Event{Type: evKey, Code: 42, Value: 1}); err != nil {
		t.Fatalf("Dispatch = %v", err)
	}

	if len(out.edges) != 0 {
		t.Fatalf("edges = %v, want none forwarded while deferred", out.edges)
	}
}

func TestDispatchSYNAlwaysForwardsBypassingRoutes(t *testing.T) {
	out := &fakeOutput{}
	graph := NewGraph(NewForwarder(out))

	h := &fixedHandler{verdict: Consumed}
	graph.Bind(h, inputremapd.Event{Type: evSYN, Code: 0})

	if err := graph.Dispatch(inputremapd.Event{Type: evSYN, Code: 0, Value: 0}); err != nil {
		t.Fatalf("Dispatch = %v", err)
	}

	if len(out.edges) != 1 {
		t.Fatalf("edges = %v, want SYN forwarded unconditionally", out.edges)
	}

	if len(h.seen) != 0 {
		t.Fatalf("handler should never see SYN, saw %d events", len(h.seen))
	}
}

func TestDispatchMultipleHandlersAnyConsumedWithholdsForward(t *testing.T) {
	out := &fakeOutput{}
	graph := NewGraph(NewForwarder(out))

	a := &fixedHandler{verdict: Passthrough}
	b := &fixedHandler{verdict: Consumed}
	graph.Bind(a, inputremapd.Event{Type: evKey, Code: 30})
	graph.Bind(b, inputremapd.Event{Type: evKey, Code: 30})

	if err := graph.Dispatch(inputremapd.Event{Type: evKey, Code: 30, Value: 1}); err != nil {
		t.Fatalf("Dispatch = %v", err)
	}

	if len(out.edges) != 0 {
		t.Fatalf("edges = %v, want none forwarded", out.edges)
	}

	if len(a.seen) != 1 || len(b.seen) != 1 {
		t.Fatalf("both handlers should see the event: a=%d b=%d", len(a.seen), len(b.seen))
	}
}
