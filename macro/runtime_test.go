package macro

import (
	"context"
	"sync"
	"testing"
	"time"

	rcontext "github.com/inputremapd/inputremapd/context"
)

type edge struct {
	evType, code uint16
	value        int32
}

type fakeEmitter struct {
	mu    sync.Mutex
	edges []edge
}

func (f *fakeEmitter) Emit(evType, code uint16, value int32) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.edges = append(f.edges, edge{evType, code, value})

	return nil
}

func (f *fakeEmitter) snapshot() []edge {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]edge, len(f.edges))
	copy(out, f.edges)

	return out
}

type fakeSymbols struct{}

func (fakeSymbols) Code(name string) (uint16, uint16, bool) {
	switch name {
	case "KEY_A":
		return 1, 30, true
	case "KEY_LEFTCTRL":
		return 1, 29, true
	default:
		return 0, 0, false
	}
}

type fakeLEDs struct {
	caps, num bool
}

func (f fakeLEDs) LEDs() (bool, bool, error) {
	return f.caps, f.num, nil
}

func newTestRuntime() *Runtime {
	return &Runtime{
		Emitter:        &fakeEmitter{},
		Symbols:        fakeSymbols{},
		Store:          rcontext.NewStore(),
		LEDs:           fakeLEDs{},
		KeySleepMillis: 2,
	}
}

func TestRuntimeKeyEmitsPressAndRelease(t *testing.T) {
	rt := newTestRuntime()

	root, err := Parse(`key(KEY_A)`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	task, done, errCh := rt.Start(context.Background(), root, 0, 0, nil)
	task.SetHeld(false)

	select {
	case <-done:
	case err := <-errCh:
		t.Fatalf("run error: %v", err)
	case <-time.After(time.Second):
		t.Fatal("timed out")
	}

	got := rt.Emitter.(*fakeEmitter).snapshot()
	if len(got) != 2 || got[0].value != 1 || got[1].value != 0 {
		t.Fatalf("got %+v", got)
	}
}

func TestRuntimeRepeatRunsExactCount(t *testing.T) {
	rt := newTestRuntime()

	root, err := Parse(`repeat(3, key(KEY_A))`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	_, done, errCh := rt.Start(context.Background(), root, 0, 0, nil)

	select {
	case <-done:
	case err := <-errCh:
		t.Fatalf("run error: %v", err)
	case <-time.After(time.Second):
		t.Fatal("timed out")
	}

	got := rt.Emitter.(*fakeEmitter).snapshot()
	if len(got) != 6 {
		t.Fatalf("want 6 edges (3 key presses), got %d: %+v", len(got), got)
	}
}

func TestRuntimeRepeatZeroIsNoop(t *testing.T) {
	rt := newTestRuntime()

	root, err := Parse(`repeat(0, key(KEY_A))`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	_, done, errCh := rt.Start(context.Background(), root, 0, 0, nil)

	select {
	case <-done:
	case err := <-errCh:
		t.Fatalf("run error: %v", err)
	case <-time.After(time.Second):
		t.Fatal("timed out")
	}

	if got := rt.Emitter.(*fakeEmitter).snapshot(); len(got) != 0 {
		t.Fatalf("want no edges, got %+v", got)
	}
}

func TestRuntimeHoldRunsUntilReleased(t *testing.T) {
	rt := newTestRuntime()

	root, err := Parse(`hold(key(KEY_A))`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	task, done, errCh := rt.Start(context.Background(), root, 0, 0, nil)

	time.Sleep(20 * time.Millisecond)
	task.SetHeld(false)

	select {
	case <-done:
	case err := <-errCh:
		t.Fatalf("run error: %v", err)
	case <-time.After(time.Second):
		t.Fatal("timed out")
	}

	got := rt.Emitter.(*fakeEmitter).snapshot()
	if len(got) == 0 || len(got)%2 != 0 {
		t.Fatalf("expected a nonzero even number of edges, got %d", len(got))
	}
}

func TestRuntimeSetAndIfEq(t *testing.T) {
	rt := newTestRuntime()

	root, err := Parse(`set(mode, 1).if_eq($mode, 1, key(KEY_A), key(KEY_LEFTCTRL))`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	_, done, errCh := rt.Start(context.Background(), root, 0, 0, nil)

	select {
	case <-done:
	case err := <-errCh:
		t.Fatalf("run error: %v", err)
	case <-time.After(time.Second):
		t.Fatal("timed out")
	}

	got := rt.Emitter.(*fakeEmitter).snapshot()
	if len(got) != 2 || got[0].code != 30 {
		t.Fatalf("expected KEY_A's code 30 to fire, got %+v", got)
	}
}

func TestRuntimeAddAccumulates(t *testing.T) {
	rt := newTestRuntime()

	root, err := Parse(`add(counter, 5).add(counter, 5)`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	_, done, errCh := rt.Start(context.Background(), root, 0, 0, nil)

	select {
	case <-done:
	case err := <-errCh:
		t.Fatalf("run error: %v", err)
	case <-time.After(time.Second):
		t.Fatal("timed out")
	}

	v, ok := rt.Store.Get("counter")
	if !ok || v.Int != 10 {
		t.Fatalf("got %+v, ok=%v", v, ok)
	}
}

func TestRuntimeIfCapslockBranches(t *testing.T) {
	rt := newTestRuntime()
	rt.LEDs = fakeLEDs{caps: true}

	root, err := Parse(`if_capslock(key(KEY_A), key(KEY_LEFTCTRL))`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	_, done, errCh := rt.Start(context.Background(), root, 0, 0, nil)

	select {
	case <-done:
	case err := <-errCh:
		t.Fatalf("run error: %v", err)
	case <-time.After(time.Second):
		t.Fatal("timed out")
	}

	got := rt.Emitter.(*fakeEmitter).snapshot()
	if len(got) != 2 || got[0].code != 30 {
		t.Fatalf("expected the capslock-on branch (KEY_A), got %+v", got)
	}
}
