package macro

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/inputremapd/inputremapd/errs"
	rcontext "github.com/inputremapd/inputremapd/context"
)

// macroTickHz is the rate mouse/mouse_xy/wheel nodes emit REL ticks at
// when Start is given no positive rel_rate; otherwise they tick at the
// mapping's own rel_rate.
const macroTickHz = 60

// holdPollInterval is how often hold_keys/mod_tap/if_tap/if_single
// re-check the task's held flag while waiting on a release.
const holdPollInterval = 5 * time.Millisecond

// Emitter writes one raw (type, code, value) edge to the mapping's
// target virtual output.
type Emitter interface {
	Emit(evType, code uint16, value int32) error
}

// Symbols resolves a symbol-table name to its (type, code) pair.
type Symbols interface {
	Code(name string) (evType, code uint16, ok bool)
}

// LEDs reports the host keyboard's CapsLock/NumLock indicator state.
type LEDs interface {
	LEDs() (capsLock, numLock bool, err error)
}

// Task is one running macro invocation: one press of a MacroHandler's
// trigger spawns exactly one Task, keyed by the handler at
// (mapping_id, press_instance). Many Tasks run concurrently across
// mappings; within a single Task only one AST node executes at a
// time, since evaluation is a synchronous recursive walk in the
// Task's own goroutine.
type Task struct {
	held        atomic.Bool
	interrupted atomic.Bool

	// relRateHz is the rate mouse/mouse_xy/wheel nodes tick at for this
	// task, taken from the owning mapping's shaping_params.rel_rate so
	// a macro's motion matches the rest of that mapping's analog feel.
	relRateHz float64

	// keySleepMillis is the owning mapping's macro_key_sleep_ms, halved
	// on either side of a key() node's press/release edge.
	keySleepMillis int64

	// emitter is where this task's key()/event() nodes write, taken
	// from the owning mapping's own target_uinput so one shared
	// Runtime can still fan macros out to the right device each.
	emitter Emitter

	rt *Runtime
}

// SetHeld updates whether the trigger key/combination is still
// considered held; the next suspension point observes this.
func (t *Task) SetHeld(held bool) {
	t.held.Store(held)
}

// Interrupt marks that another key was pressed while this task's
// trigger was held, used by if_single to distinguish a clean single
// tap from one interrupted by another key.
func (t *Task) Interrupt() {
	t.interrupted.Store(true)
}

// Runtime evaluates macro ASTs. One Runtime is shared by every Task in
// an injection; it carries the dependencies every node kind needs:
// where to emit edges, how to resolve symbol names, the Shared
// Variable Store, and the host's LED state.
type Runtime struct {
	// Emitter is the fallback used when a Task is started with a nil
	// emitter. Individual mappings normally supply their own target
	// device to Start instead.
	Emitter Emitter
	Symbols Symbols
	Store   *rcontext.Store
	LEDs    LEDs

	// KeySleepMillis is the fallback macro_key_sleep_ms used when a
	// Task is started with keySleepMillis <= 0. Individual mappings
	// normally supply their own value to Start instead.
	KeySleepMillis int64
}

// Start spawns a new Task executing root, returning immediately. The
// returned Task's SetHeld/Interrupt are called by the owning
// MacroHandler as the triggering key's state changes. relRateHz sets
// the tick rate for any mouse/mouse_xy/wheel node in root, taken from
// the mapping's shaping_params.rel_rate (0 or negative falls back to
// macroTickHz). keySleepMillis is the mapping's macro_key_sleep_ms,
// halved on either side of a key() node's press/release edge (0 or
// negative falls back to rt.KeySleepMillis). emitter is where this
// task writes key()/event() output, taken from the mapping's own
// target_uinput (nil falls back to rt.Emitter). done is closed when
// the task finishes (successfully, on cancellation, or on error, which
// is sent on errCh first).
func (rt *Runtime) Start(ctx context.Context, root *Node, relRateHz float64, keySleepMillis int64, emitter Emitter) (task *Task, done <-chan struct{}, errCh <-chan error) {
	if relRateHz <= 0 {
		relRateHz = macroTickHz
	}

	if keySleepMillis <= 0 {
		keySleepMillis = rt.KeySleepMillis
	}

	if emitter == nil {
		emitter = rt.Emitter
	}

	task = &Task{rt: rt, relRateHz: relRateHz, keySleepMillis: keySleepMillis, emitter: emitter}
	task.held.Store(true)

	doneCh := make(chan struct{})
	errCh := make(chan error, 1)

	go func() {
		defer close(doneCh)

		if err := rt.run(ctx, task, root); err != nil {
			errCh <- err
		}
	}()

	return task, doneCh, errCh
}

func (rt *Runtime) run(ctx context.Context, task *Task, n *Node) error {
	if n == nil {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return nil
	}

	switch n.Kind {
	case Seq:
		for _, child := range n.Children {
			if err := rt.run(ctx, task, child); err != nil {
				return err
			}
		}

		return nil

	case Key:
		return rt.runKey(ctx, task, n)

	case KeyDown:
		return rt.emitSym(task, n.Sym, 1)

	case KeyUp:
		return rt.emitSym(task, n.Sym, 0)

	case Wait:
		return rt.runWait(ctx, n)

	case Repeat:
		return rt.runRepeat(ctx, task, n)

	case Modify:
		return rt.runModify(ctx, task, n)

	case Hold:
		return rt.runHold(ctx, task, n)

	case HoldKeys:
		return rt.runHoldKeys(ctx, task, n)

	case ModTap:
		return rt.runModTap(ctx, task, n)

	case Mouse:
		return rt.runMouse(ctx, task, n)

	case MouseXY:
		return rt.runMouseXY(ctx, task, n)

	case Wheel:
		return rt.runWheel(ctx, task, n)

	case Event:
		return rt.runEvent(task, n)

	case Set:
		return rt.runSet(n)

	case Add:
		return rt.runAdd(n)

	case IfEq:
		return rt.runIfEq(ctx, task, n)

	case IfTap:
		return rt.runIfTap(ctx, task, n)

	case IfSingle:
		return rt.runIfSingle(ctx, task, n)

	case IfCapslock:
		return rt.runIfLED(ctx, task, n, true)

	case IfNumlock:
		return rt.runIfLED(ctx, task, n, false)

	default:
		return &errs.MacroRuntime{Message: fmt.Sprintf("unhandled node kind %v", n.Kind)}
	}
}

func (rt *Runtime) runKey(ctx context.Context, task *Task, n *Node) error {
	half := time.Duration(task.keySleepMillis/2) * time.Millisecond

	if err := rt.emitSym(task, n.Sym, 1); err != nil {
		return err
	}

	if err := sleep(ctx, half); err != nil {
		return nil
	}

	if err := rt.emitSym(task, n.Sym, 0); err != nil {
		return err
	}

	return sleep(ctx, half)
}

func (rt *Runtime) runWait(ctx context.Context, n *Node) error {
	lo, err := rt.resolveInt(n.Args[0])
	if err != nil {
		return err
	}

	ms := lo

	if len(n.Args) == 2 {
		hi, err := rt.resolveInt(n.Args[1])
		if err != nil {
			return err
		}

		if hi > lo {
			ms = lo + rand.Int63n(hi-lo+1)
		}
	}

	return sleep(ctx, time.Duration(ms)*time.Millisecond)
}

func (rt *Runtime) runRepeat(ctx context.Context, task *Task, n *Node) error {
	count, err := rt.resolveInt(n.Args[0])
	if err != nil {
		return err
	}

	for i := int64(0); i < count; i++ {
		if ctx.Err() != nil {
			return nil
		}

		if err := rt.run(ctx, task, n.Body); err != nil {
			return err
		}
	}

	return nil
}

func (rt *Runtime) runModify(ctx context.Context, task *Task, n *Node) error {
	if err := rt.emitSym(task, n.Sym, 1); err != nil {
		return err
	}

	defer rt.emitSym(task, n.Sym, 0)

	return rt.run(ctx, task, n.Body)
}

func (rt *Runtime) runHold(ctx context.Context, task *Task, n *Node) error {
	for task.held.Load() {
		if ctx.Err() != nil {
			return nil
		}

		if err := rt.run(ctx, task, n.Body); err != nil {
			return err
		}
	}

	return nil
}

func (rt *Runtime) runHoldKeys(ctx context.Context, task *Task, n *Node) error {
	for _, sym := range n.Syms {
		if err := rt.emitSym(task, sym, 1); err != nil {
			return err
		}
	}

	waitForRelease(ctx, task)

	for i := len(n.Syms) - 1; i >= 0; i-- {
		if err := rt.emitSym(task, n.Syms[i], 0); err != nil {
			return err
		}
	}

	return nil
}

func (rt *Runtime) runModTap(ctx context.Context, task *Task, n *Node) error {
	term := 200 * time.Millisecond

	if len(n.Args) == 1 {
		ms, err := rt.resolveInt(n.Args[0])
		if err != nil {
			return err
		}

		term = time.Duration(ms) * time.Millisecond
	}

	released := waitForReleaseWithTimeout(ctx, task, term)

	if released && !task.interrupted.Load() {
		if err := rt.emitSym(task, n.Sym, 1); err != nil {
			return err
		}

		return rt.emitSym(task, n.Sym, 0)
	}

	if err := rt.emitSym(task, n.Sym2, 1); err != nil {
		return err
	}

	waitForRelease(ctx, task)

	return rt.emitSym(task, n.Sym2, 0)
}

func (rt *Runtime) runEvent(task *Task, n *Node) error {
	evType, err := rt.resolveInt(n.Args[0])
	if err != nil {
		return err
	}

	code, err := rt.resolveInt(n.Args[1])
	if err != nil {
		return err
	}

	value, err := rt.resolveInt(n.Args[2])
	if err != nil {
		return err
	}

	return task.emitter.Emit(uint16(evType), uint16(code), int32(value))
}

func (rt *Runtime) runSet(n *Node) error {
	name := n.Args[0].Str

	v := n.Args[1]
	if v.IsString {
		rt.Store.Set(name, rcontext.StringValue(v.Str))
		return nil
	}

	resolved, err := rt.resolveInt(v)
	if err != nil {
		return err
	}

	rt.Store.Set(name, rcontext.IntValue(resolved))

	return nil
}

func (rt *Runtime) runAdd(n *Node) error {
	name := n.Args[0].Str

	delta, err := rt.resolveInt(n.Args[1])
	if err != nil {
		return err
	}

	rt.Store.Add(name, delta)

	return nil
}

func (rt *Runtime) runIfEq(ctx context.Context, task *Task, n *Node) error {
	a, err := rt.resolveComparable(n.Args[0])
	if err != nil {
		return err
	}

	b, err := rt.resolveComparable(n.Args[1])
	if err != nil {
		return err
	}

	if a == b {
		return rt.run(ctx, task, n.Then)
	}

	return rt.run(ctx, task, n.Else)
}

func (rt *Runtime) runIfTap(ctx context.Context, task *Task, n *Node) error {
	ms, err := rt.resolveInt(n.Args[0])
	if err != nil {
		return err
	}

	if waitForReleaseWithTimeout(ctx, task, time.Duration(ms)*time.Millisecond) {
		return rt.run(ctx, task, n.Then)
	}

	return rt.run(ctx, task, n.Else)
}

func (rt *Runtime) runIfSingle(ctx context.Context, task *Task, n *Node) error {
	timeout := time.Duration(0)

	if len(n.Args) == 1 {
		ms, err := rt.resolveInt(n.Args[0])
		if err != nil {
			return err
		}

		timeout = time.Duration(ms) * time.Millisecond
	}

	var released bool

	if timeout > 0 {
		released = waitForReleaseWithTimeout(ctx, task, timeout)
	} else {
		waitForRelease(ctx, task)
		released = true
	}

	if released && !task.interrupted.Load() {
		return rt.run(ctx, task, n.Then)
	}

	return rt.run(ctx, task, n.Else)
}

func (rt *Runtime) runIfLED(ctx context.Context, task *Task, n *Node, capslock bool) error {
	capsLock, numLock, err := rt.LEDs.LEDs()
	if err != nil {
		return &errs.MacroRuntime{Message: err.Error()}
	}

	on := numLock
	if capslock {
		on = capsLock
	}

	if on {
		return rt.run(ctx, task, n.Then)
	}

	return rt.run(ctx, task, n.Else)
}

func (rt *Runtime) emitSym(task *Task, sym string, value int32) error {
	evType, code, ok := rt.Symbols.Code(sym)
	if !ok {
		return &errs.MacroRuntime{Message: fmt.Sprintf("unresolvable symbol %q", sym)}
	}

	return task.emitter.Emit(evType, code, value)
}

// sleep blocks for d or until ctx is cancelled, whichever comes first.
// It does not observe the task's held flag: wait() always completes in
// full even if the trigger releases mid-wait, per the runtime's
// timer-accurate tail guarantee.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return nil
	}
}

// waitForRelease blocks until task.held goes false or ctx is
// cancelled.
func waitForRelease(ctx context.Context, task *Task) {
	waitForReleaseWithTimeout(ctx, task, 0)
}

// waitForReleaseWithTimeout blocks until task.held goes false, ctx is
// cancelled, or timeout elapses (if timeout > 0), returning true only
// when release was observed before the timeout.
func waitForReleaseWithTimeout(ctx context.Context, task *Task, timeout time.Duration) bool {
	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	ticker := time.NewTicker(holdPollInterval)
	defer ticker.Stop()

	for {
		if !task.held.Load() {
			return true
		}

		if !deadline.IsZero() && time.Now().After(deadline) {
			return false
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return false
		}
	}
}
