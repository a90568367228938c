// Package supervisor implements the Injection Supervisor: it turns a
// validated preset and a device-group key into a running injection —
// grabbing every sub-device in the group, building that injection's
// Event Producers, Handler Graph, Combination Resolver, and Macro
// Runtime, and fanning producer output into the graph's single
// dispatch point — and tears all of that down again on Stop.
//
//go:build linux

package supervisor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/inputremapd/inputremapd"
	"github.com/inputremapd/inputremapd/combination"
	rcontext "github.com/inputremapd/inputremapd/context"
	"github.com/inputremapd/inputremapd/device"
	"github.com/inputremapd/inputremapd/errs"
	"github.com/inputremapd/inputremapd/handler"
	"github.com/inputremapd/inputremapd/linux/uinput"
	"github.com/inputremapd/inputremapd/macro"
	"github.com/inputremapd/inputremapd/model"
	"github.com/inputremapd/inputremapd/producer"
	"github.com/inputremapd/inputremapd/symbol"
	"golang.org/x/sync/errgroup"
)

// eventBufferSize is the capacity of the channel every Producer of one
// injection writes tagged events into; the single dispatch goroutine
// is the only reader. It only needs to absorb a short dispatch stall,
// not hold a backlog indefinitely.
const eventBufferSize = 256

// fallbackKeySleepMillis is the Macro Runtime's key-sleep value for a
// mapping that leaves macro_key_sleep_ms unset; mirrors the data
// model's zero-means-unset convention.
const fallbackKeySleepMillis = 10

// State is an injection's lifecycle stage.
type State int

const (
	Starting State = iota
	Running
	Stopped
	Failed
)

func (s State) String() string {
	switch s {
	case Starting:
		return "starting"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Status reports one injection's current lifecycle stage plus the
// failure reason, when State is Failed.
type Status struct {
	State  State
	Reason string
}

// Stats reports the supplemented per-injection error counters: how
// many times each mapping's macro task has ended in error, and how
// many of the injection's Event Producers have stopped on an error.
type Stats struct {
	ProducerErrors int64
	MacroErrors    map[string]int64
}

// macroValidator adapts macro.Parse to model.MacroValidator: it
// compiles the macro text and reports only whether that succeeded,
// discarding the resulting AST. Build's own call to macro.Parse is
// what actually keeps the AST each mapping runs.
type macroValidator struct{}

func (macroValidator) Validate(macroText string) error {
	_, err := macro.Parse(macroText)
	return err
}

// ledsFromProducers answers macro.LEDs by trying each live Producer in
// turn until one reports successfully; only a keyboard-capable
// sub-device answers EVIOCGLED meaningfully, and an injection's group
// may include several sub-devices none of which are that keyboard.
type ledsFromProducers struct {
	producers []*producer.Producer
}

func (l ledsFromProducers) LEDs() (capsLock, numLock bool, err error) {
	var lastErr error

	for _, p := range l.producers {
		capsLock, numLock, err = p.LEDs()
		if err == nil {
			return capsLock, numLock, nil
		}

		lastErr = err
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("supervisor: injection has no live producers")
	}

	return false, false, lastErr
}

// injection is one running (or stopped/failed) group_key's state:
// everything Start assembled and Stop must tear down.
type injection struct {
	groupKey string

	mu     sync.Mutex
	status Status

	cancel         context.CancelFunc
	rc             *rcontext.Context
	producers      []*producer.Producer
	releaseTimeout time.Duration

	producerErrors atomic.Int64

	macroErrMu  sync.Mutex
	macroErrors map[string]int64

	producersDone chan struct{}
	dispatchDone  chan struct{}
}

func (inj *injection) setStatus(st Status) {
	inj.mu.Lock()
	inj.status = st
	inj.mu.Unlock()
}

func (inj *injection) Status() Status {
	inj.mu.Lock()
	defer inj.mu.Unlock()

	return inj.status
}

func (inj *injection) recordMacroError(mappingID string, _ error) {
	inj.macroErrMu.Lock()
	defer inj.macroErrMu.Unlock()

	if inj.macroErrors == nil {
		inj.macroErrors = make(map[string]int64)
	}

	inj.macroErrors[mappingID]++
}

func (inj *injection) stats() Stats {
	inj.macroErrMu.Lock()
	defer inj.macroErrMu.Unlock()

	macroErrors := make(map[string]int64, len(inj.macroErrors))
	for k, v := range inj.macroErrors {
		macroErrors[k] = v
	}

	return Stats{
		ProducerErrors: inj.producerErrors.Load(),
		MacroErrors:    macroErrors,
	}
}

// Supervisor owns every running injection for one daemon instance. The
// Virtual Output Registry and Device Inventory it holds are shared
// across every injection's lifetime and outlive any one of them; only
// the Macro Runtime, Combination Resolver, and Handler Graph are
// rebuilt per injection.
type Supervisor struct {
	mu         sync.Mutex
	injections map[string]*injection

	inventory *device.Inventory
	registry  *uinput.Registry
	symbols   *symbol.Table
	store     *rcontext.Store
	log       *slog.Logger
}

// New returns a Supervisor over the given engine-lifetime singletons.
func New(inventory *device.Inventory, registry *uinput.Registry, symbols *symbol.Table, store *rcontext.Store, log *slog.Logger) *Supervisor {
	return &Supervisor{
		injections: make(map[string]*injection),
		inventory:  inventory,
		registry:   registry,
		symbols:    symbols,
		store:      store,
		log:        log,
	}
}

// Start begins an injection for preset.GroupKey: resolves the group to
// its sub-device nodes, grabs each one, validates the preset against
// the Virtual Output Registry's capabilities, and materializes the
// Handler Graph. It returns *errs.NoDevicesFound, *errs.PermissionDenied,
// or *errs.InvalidPreset on the failures the specification names;
// starting a group that already has a Starting or Running injection is
// also rejected.
func (s *Supervisor) Start(preset *model.Preset) error {
	groupKey := preset.GroupKey

	if err := s.reserve(groupKey); err != nil {
		return err
	}

	paths, err := s.inventory.Resolve(groupKey)
	if err != nil || len(paths) == 0 {
		return &errs.NoDevicesFound{GroupKey: groupKey}
	}

	// rc's HasCapability adapts uinput.Name for model.CapabilityChecker;
	// its Preset field is repointed at the validated mapping list below
	// once Validate has filtered it.
	rc := rcontext.New(preset, s.symbols, s.registry, s.store)

	report, err := preset.Validate(rc, macroValidator{})
	if err != nil {
		return err
	}

	validated := &model.Preset{Name: preset.Name, GroupKey: preset.GroupKey, Mappings: report.Valid}
	rc.Preset = validated

	inj := &injection{groupKey: groupKey, releaseTimeout: maxReleaseTimeout(validated)}
	inj.setStatus(Status{State: Starting})

	s.mu.Lock()
	s.injections[groupKey] = inj
	s.mu.Unlock()

	producers, out, err := openProducers(paths, s.log)
	if err != nil {
		inj.setStatus(Status{State: Failed, Reason: err.Error()})
		return err
	}
	graph, runCtx, cancel, err := s.buildGraph(rc, validated, producers, inj.recordMacroError)
	if err != nil {
		for _, p := range producers {
			p.Close()
		}

		inj.setStatus(Status{State: Failed, Reason: err.Error()})
		return err
	}
	inj.producers = producers
	inj.rc = rc
	inj.cancel = cancel

	s.run(runCtx, inj, graph, out)

	inj.setStatus(Status{State: Running})

	return nil
}

// reserve rejects Start if groupKey already has a live injection, and
// otherwise leaves the supervisor free for the caller to register one.
func (s *Supervisor) reserve(groupKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if inj, ok := s.injections[groupKey]; ok {
		switch inj.Status().State {
		case Starting, Running:
			return fmt.Errorf("supervisor: injection for group %q is already %s", groupKey, inj.Status().State)
		}
	}

	return nil
}

// openProducers grabs every path in order, releasing any already-open
// producer and returning *errs.PermissionDenied on the first failure —
// a single sub-device grab failure aborts the start, per specification.
// The returned channel is the single merge point every opened Producer
// writes tagged events into.
func openProducers(paths []string, log *slog.Logger) ([]*producer.Producer, chan inputremapd.Event, error) {
	out := make(chan inputremapd.Event, eventBufferSize)

	producers := make([]*producer.Producer, 0, len(paths))

	for _, path := range paths {
		p, err := producer.New(path, out, log)
		if err != nil {
			for _, opened := range producers {
				opened.Close()
			}

			return nil, nil, &errs.PermissionDenied{Path: path, Err: err}
		}

		producers = append(producers, p)
	}

	return producers, out, nil
}

// buildGraph assembles the per-injection Combination Resolver, Macro
// Runtime, and Handler Graph over an already-grabbed producer set.
func (s *Supervisor) buildGraph(rc *rcontext.Context, preset *model.Preset, producers []*producer.Producer, onMacroError func(mappingID string, err error)) (*handler.Graph, context.Context, context.CancelFunc, error) {
	forwardDev, ok := rc.Output(uinput.Forwarded)
	if !ok {
		return nil, nil, nil, fmt.Errorf("supervisor: forwarded output unavailable")
	}

	resolver := combination.New()

	runtime := &macro.Runtime{
		Symbols:        s.symbols,
		Store:          s.store,
		LEDs:           ledsFromProducers{producers: producers},
		KeySleepMillis: fallbackKeySleepMillis,
	}

	runCtx, cancel := context.WithCancel(context.Background())

	graph, err := handler.Build(preset, rc, resolver, runtime, producers, handler.AsOutput(forwardDev), s.log, runCtx, onMacroError)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}

	return graph, runCtx, cancel, nil
}

// run starts one goroutine per Producer and the single dispatch
// goroutine that reads out — the channel every Producer of this
// injection shares — and feeds graph, recording the channels Stop
// waits on.
func (s *Supervisor) run(runCtx context.Context, inj *injection, graph *handler.Graph, out chan inputremapd.Event) {
	eg, egCtx := errgroup.WithContext(runCtx)

	producers := inj.producers

	for _, p := range producers {
		p := p

		eg.Go(func() error {
			if err := p.Run(egCtx); err != nil {
				inj.producerErrors.Add(1)
				s.log.Error("producer stopped", "group", inj.groupKey, "err", err)
			}

			// A producer's runtime error must not abort the rest of the
			// injection's producers, so Run's own error never reaches
			// errgroup's cancellation.
			return nil
		})
	}

	producersDone := make(chan struct{})
	go func() {
		eg.Wait()
		close(producersDone)
	}()
	inj.producersDone = producersDone

	dispatchDone := make(chan struct{})
	go func() {
		defer close(dispatchDone)

		for {
			select {
			case ev := <-out:
				if err := graph.Dispatch(ev); err != nil {
					s.log.Error("dispatch failed", "group", inj.groupKey, "err", err)
				}
			case <-runCtx.Done():
				drainPending(out, graph, s.log, inj.groupKey)
				return
			}
		}
	}()
	inj.dispatchDone = dispatchDone
}

// drainPending flushes whatever is already buffered in out once the
// injection's context is cancelled, so events a Producer wrote just
// before Stop observed ActiveHandlers() == 0 aren't silently dropped.
func drainPending(out <-chan inputremapd.Event, graph *handler.Graph, log *slog.Logger, groupKey string) {
	for {
		select {
		case ev := <-out:
			if err := graph.Dispatch(ev); err != nil {
				log.Error("dispatch failed", "group", groupKey, "err", err)
			}
		default:
			return
		}
	}
}

func maxReleaseTimeout(preset *model.Preset) time.Duration {
	var maxMillis int64

	for _, m := range preset.Mappings {
		if m.Shaping.ReleaseTimeoutMillis > maxMillis {
			maxMillis = m.Shaping.ReleaseTimeoutMillis
		}
	}

	if maxMillis == 0 {
		maxMillis = model.DefaultShaping().ReleaseTimeoutMillis
	}

	return time.Duration(maxMillis) * time.Millisecond
}

// Stop signals cancellation, waits for in-flight handlers to drain
// (bounded by the largest release_timeout among the preset's mappings
// plus 100ms), and releases every sub-device grab. Stopping a group
// that isn't running, or has already stopped, is a no-op.
func (s *Supervisor) Stop(groupKey string) error {
	s.mu.Lock()
	inj, ok := s.injections[groupKey]
	s.mu.Unlock()

	if !ok {
		return nil
	}

	if st := inj.Status(); st.State == Stopped {
		return nil
	}

	if inj.cancel != nil {
		inj.cancel()
	}

	deadline := inj.releaseTimeout + 100*time.Millisecond

	waitBounded(inj.producersDone, deadline)
	waitBounded(inj.dispatchDone, deadline)

	if inj.rc != nil {
		drainDeadline := time.Now().Add(deadline)
		for inj.rc.ActiveHandlers() > 0 && time.Now().Before(drainDeadline) {
			time.Sleep(5 * time.Millisecond)
		}
	}

	for _, p := range inj.producers {
		if err := p.Close(); err != nil {
			s.log.Error("producer close failed", "group", groupKey, "err", err)
		}
	}

	inj.setStatus(Status{State: Stopped})

	return nil
}

func waitBounded(ch <-chan struct{}, d time.Duration) {
	if ch == nil {
		return
	}

	select {
	case <-ch:
	case <-time.After(d):
	}
}

// Status reports groupKey's current lifecycle stage, or false if no
// injection has ever been started for it.
func (s *Supervisor) Status(groupKey string) (Status, bool) {
	s.mu.Lock()
	inj, ok := s.injections[groupKey]
	s.mu.Unlock()

	if !ok {
		return Status{}, false
	}

	return inj.Status(), true
}

// Stats reports groupKey's accumulated per-mapping macro error counts
// and producer error count, or false if no injection has ever been
// started for it.
func (s *Supervisor) Stats(groupKey string) (Stats, bool) {
	s.mu.Lock()
	inj, ok := s.injections[groupKey]
	s.mu.Unlock()

	if !ok {
		return Stats{}, false
	}

	return inj.stats(), true
}
