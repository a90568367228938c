package handler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/inputremapd/inputremapd"
	rcontext "github.com/inputremapd/inputremapd/context"
	"github.com/inputremapd/inputremapd/macro"
)

type recordingEmitter struct {
	mu    sync.Mutex
	edges []inputremapd.Event
}

func (e *recordingEmitter) Emit(evType, code uint16, value int32) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.edges = append(e.edges, inputremapd.Event{Type: evType, Code: code, Value: value})

	return nil
}

func (e *recordingEmitter) snapshot() []inputremapd.Event {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]inputremapd.Event(nil), e.edges...)
}

type fixedSymbols struct{}

func (fixedSymbols) Code(name string) (evType, code uint16, ok bool) {
	if name == "KEY_A" {
		return evKey, 30, true
	}

	return 0, 0, false
}

func newTestMacroRuntime(emitter *recordingEmitter) *macro.Runtime {
	return &macro.Runtime{
		Emitter:        emitter,
		Symbols:        fixedSymbols{},
		Store:          rcontext.NewStore(),
		KeySleepMillis: 1,
	}
}

func TestMacroHandlerPressRunsMacroUntilRelease(t *testing.T) {
	ast, err := macro.Parse("hold(key(KEY_A))")
	if err != nil {
		t.Fatalf("Parse = %v", err)
	}

	emitter := &recordingEmitter{}
	rt := newTestMacroRuntime(emitter)
	trigger := newMacroTrigger(rt, ast, 60, 2, emitter, "test-mapping", nil, nil)
	h := NewMacroHandler(context.Background(), trigger)

	if v := h.HandleEvent(inputremapd.Event{Type: evKey, Code: 1, Value: 1}); v != Consumed {
		t.Fatalf("HandleEvent verdict = %v, want Consumed", v)
	}

	time.Sleep(30 * time.Millisecond)

	if v := h.HandleEvent(inputremapd.Event{Type: evKey, Code: 1, Value: 0}); v != Consumed {
		t.Fatalf("HandleEvent verdict = %v, want Consumed", v)
	}

	time.Sleep(30 * time.Millisecond)

	edges := emitter.snapshot()
	if len(edges) == 0 {
		t.Fatalf("expected at least one KEY_A edge emitted while held")
	}

	for _, e := range edges {
		if e.Code != 30 {
			t.Fatalf("edge %v, want only KEY_A (code 30) edges", e)
		}
	}
}

// mapSymbols resolves several fixed KEY_* names to distinct codes, for
// tests that need more than one output symbol.
type mapSymbols map[string][2]uint16

func (m mapSymbols) Code(name string) (evType, code uint16, ok bool) {
	pair, ok := m[name]
	return pair[0], pair[1], ok
}

// TestGraphInterruptsMacroOnForeignKeyPress exercises the Handler
// Graph's role in if_single: a key press unrelated to the macro's own
// trigger, observed while the trigger is held, must route through to
// the else branch even though the trigger is released before its
// timeout.
func TestGraphInterruptsMacroOnForeignKeyPress(t *testing.T) {
	const (
		triggerCode = 10
		foreignCode = 11
	)

	ast, err := macro.Parse("if_single(key(KEY_TAP), key(KEY_HOLD), 5000)")
	if err != nil {
		t.Fatalf("Parse = %v", err)
	}

	emitter := &recordingEmitter{}
	rt := &macro.Runtime{
		Emitter: emitter,
		Symbols: mapSymbols{
			"KEY_TAP":  {evKey, 40},
			"KEY_HOLD": {evKey, 41},
		},
		Store:          rcontext.NewStore(),
		KeySleepMillis: 1,
	}

	trigger := newMacroTrigger(rt, ast, 60, 1, emitter, "test-mapping", nil, nil)

	graph := NewGraph(NewForwarder(emitter))
	graph.registerMacroTrigger(trigger)
	graph.Bind(NewMacroHandler(context.Background(), trigger), inputremapd.Event{Type: evKey, Code: triggerCode})
	graph.Bind(&KeyHandler{Out: emitter, OutType: evKey, OutCode: 50}, inputremapd.Event{Type: evKey, Code: foreignCode})

	if err := graph.Dispatch(inputremapd.Event{Type: evKey, Code: triggerCode, Value: 1}); err != nil {
		t.Fatalf("Dispatch press = %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if err := graph.Dispatch(inputremapd.Event{Type: evKey, Code: foreignCode, Value: 1}); err != nil {
		t.Fatalf("Dispatch foreign press = %v", err)
	}

	if err := graph.Dispatch(inputremapd.Event{Type: evKey, Code: triggerCode, Value: 0}); err != nil {
		t.Fatalf("Dispatch release = %v", err)
	}

	time.Sleep(30 * time.Millisecond)

	edges := emitter.snapshot()

	var sawHold, sawTap bool
	for _, e := range edges {
		switch e.Code {
		case 41:
			sawHold = true
		case 40:
			sawTap = true
		}
	}

	if !sawHold {
		t.Fatal("expected the else branch (KEY_HOLD) to fire after a foreign key press interrupted the hold")
	}

	if sawTap {
		t.Fatal("did not expect the then branch (KEY_TAP) to fire once the hold was interrupted")
	}
}
