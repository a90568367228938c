package handler

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/inputremapd/inputremapd/macro"
	"github.com/inputremapd/inputremapd/model"
)

// macroTrigger runs one mapping's compiled macro AST, spawning a fresh
// macro.Task per press and releasing it on the matching release. Both
// MacroHandler and CombinationHandler (for a Macro-kind output) embed
// one of these rather than duplicating the press/release bookkeeping.
type macroTrigger struct {
	runtime        *macro.Runtime
	ast            *macro.Node
	relRateHz      float64
	keySleepMillis int64
	emitter        macro.Emitter
	mappingID      string
	log            *slog.Logger

	// own is this trigger's combination, used to tell a press
	// belonging to its own activation apart from a foreign key press
	// that should interrupt any task currently held.
	own model.InputCombination

	mu           sync.Mutex
	tasks        map[int64]*macro.Task
	nextInstance int64

	// current holds the most recent press instance, for callers (a
	// simple single-key MacroHandler) that only ever have one
	// outstanding activation at a time and don't track instances
	// themselves.
	current atomic.Int64

	// onError, if set, is called in addition to logging whenever a
	// task started from this trigger ends in error, for callers that
	// keep a per-mapping error count.
	onError func(err error)
}

func newMacroTrigger(runtime *macro.Runtime, ast *macro.Node, relRateHz float64, keySleepMillis int64, emitter macro.Emitter, mappingID string, own model.InputCombination, log *slog.Logger) *macroTrigger {
	return &macroTrigger{
		runtime:        runtime,
		ast:            ast,
		relRateHz:      relRateHz,
		keySleepMillis: keySleepMillis,
		emitter:        emitter,
		mappingID:      mappingID,
		own:            own,
		log:            log,
		tasks:          make(map[int64]*macro.Task),
	}
}

// notifyForeignPress interrupts every task currently live on this
// trigger when (evType, code) isn't part of its own combination — a
// key press belonging to another mapping (or an unrelated passthrough
// key) observed while this trigger's macro is held. if_single and
// mod_tap read the resulting Task.Interrupt() state to tell a clean
// hold from an interrupted one.
func (m *macroTrigger) notifyForeignPress(evType, code uint16) {
	for _, cfg := range m.own {
		if cfg.Type == evType && cfg.Code == code {
			return
		}
	}

	m.mu.Lock()
	tasks := make([]*macro.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		tasks = append(tasks, t)
	}
	m.mu.Unlock()

	for _, t := range tasks {
		t.Interrupt()
	}
}

// press spawns a new task keyed by an incrementing press instance and
// returns that instance so the caller can pair it with the release
// that ends this activation.
func (m *macroTrigger) press(ctx context.Context) int64 {
	instance := atomic.AddInt64(&m.nextInstance, 1)

	task, done, errCh := m.runtime.Start(ctx, m.ast, m.relRateHz, m.keySleepMillis, m.emitter)

	m.mu.Lock()
	m.tasks[instance] = task
	m.mu.Unlock()

	go func() {
		select {
		case <-done:
		case err := <-errCh:
			if m.log != nil {
				m.log.Error("macro runtime error", "mapping", m.mappingID, "err", err)
			}

			if m.onError != nil {
				m.onError(err)
			}
		}

		m.mu.Lock()
		delete(m.tasks, instance)
		m.mu.Unlock()
	}()

	return instance
}

// release signals the task spawned by press(instance) that its
// trigger has let go; the task observes this at its next suspension
// point.
func (m *macroTrigger) release(instance int64) {
	m.mu.Lock()
	task := m.tasks[instance]
	m.mu.Unlock()

	if task != nil {
		task.SetHeld(false)
	}
}

// pressKey is the single-key convenience path MacroHandler uses: it
// doesn't need its own instance bookkeeping since one key can only
// have one outstanding press at a time.
func (m *macroTrigger) pressKey(ctx context.Context) {
	m.current.Store(m.press(ctx))
}

// releaseKey signals the most recent pressKey's task to stop.
func (m *macroTrigger) releaseKey() {
	m.release(m.current.Load())
}
