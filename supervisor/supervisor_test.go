//go:build linux

package supervisor

import (
	"errors"
	"testing"
	"time"

	"github.com/inputremapd/inputremapd/model"
)

func TestMacroValidatorRejectsBadSyntax(t *testing.T) {
	if err := (macroValidator{}).Validate("hold(key(KEY_A)"); err == nil {
		t.Fatal("Validate = nil, want a parse error for unbalanced parens")
	}
}

func TestMacroValidatorAcceptsGoodSyntax(t *testing.T) {
	if err := (macroValidator{}).Validate("key(KEY_A)"); err != nil {
		t.Fatalf("Validate = %v, want nil", err)
	}
}

type fakeLEDSource struct {
	capsLock, numLock bool
	err               error
}

func (f fakeLEDSource) LEDs() (bool, bool, error) {
	return f.capsLock, f.numLock, f.err
}

func TestFirstSuccessfulLEDSourceLoopSkipsFailingSources(t *testing.T) {
	// This replays ledsFromProducers' first-successful-source loop over
	// fake sources rather than calling it, since ledsFromProducers takes
	// real Producers and Producer.LEDs needs an open /dev/input node; it
	// only checks the first-successful-source policy.
	first := fakeLEDSource{err: errors.New("not a keyboard")}
	second := fakeLEDSource{capsLock: true, numLock: false}

	type source interface {
		LEDs() (bool, bool, error)
	}

	sources := []source{first, second}

	var capsLock, numLock bool
	var err error
	for _, s := range sources {
		capsLock, numLock, err = s.LEDs()
		if err == nil {
			break
		}
	}

	if err != nil || !capsLock || numLock {
		t.Fatalf("capsLock=%v numLock=%v err=%v, want true false nil", capsLock, numLock, err)
	}
}

func TestStatusUnknownGroupReportsNotFound(t *testing.T) {
	s := New(nil, nil, nil, nil, nil)

	if _, ok := s.Status("no-such-group"); ok {
		t.Fatal("Status ok = true for a group never started")
	}

	if _, ok := s.Stats("no-such-group"); ok {
		t.Fatal("Stats ok = true for a group never started")
	}
}

func TestStopUnknownGroupIsNoop(t *testing.T) {
	s := New(nil, nil, nil, nil, nil)

	if err := s.Stop("no-such-group"); err != nil {
		t.Fatalf("Stop = %v, want nil for a group never started", err)
	}
}

func TestStopIsIdempotentOnceStopped(t *testing.T) {
	inj := &injection{groupKey: "g"}
	inj.setStatus(Status{State: Stopped})

	s := &Supervisor{injections: map[string]*injection{"g": inj}}

	if err := s.Stop("g"); err != nil {
		t.Fatalf("Stop = %v, want nil on an already-stopped injection", err)
	}

	if st := inj.Status(); st.State != Stopped {
		t.Fatalf("Status = %v, want Stopped", st.State)
	}
}

func TestReserveRejectsAlreadyRunningGroup(t *testing.T) {
	inj := &injection{groupKey: "g"}
	inj.setStatus(Status{State: Running})

	s := &Supervisor{injections: map[string]*injection{"g": inj}}

	if err := s.reserve("g"); err == nil {
		t.Fatal("reserve = nil, want an error for an already-running group")
	}
}

func TestReserveAllowsRestartingAFailedGroup(t *testing.T) {
	inj := &injection{groupKey: "g"}
	inj.setStatus(Status{State: Failed, Reason: "boom"})

	s := &Supervisor{injections: map[string]*injection{"g": inj}}

	if err := s.reserve("g"); err != nil {
		t.Fatalf("reserve = %v, want nil for a failed group", err)
	}
}

func TestInjectionRecordsMacroErrorsPerMapping(t *testing.T) {
	inj := &injection{groupKey: "g"}

	inj.recordMacroError("mapping-a", errors.New("boom"))
	inj.recordMacroError("mapping-a", errors.New("boom again"))
	inj.recordMacroError("mapping-b", errors.New("boom"))

	stats := inj.stats()

	if stats.MacroErrors["mapping-a"] != 2 {
		t.Fatalf("mapping-a errors = %d, want 2", stats.MacroErrors["mapping-a"])
	}

	if stats.MacroErrors["mapping-b"] != 1 {
		t.Fatalf("mapping-b errors = %d, want 1", stats.MacroErrors["mapping-b"])
	}
}

func TestMaxReleaseTimeoutFallsBackToDefault(t *testing.T) {
	p := &model.Preset{}

	got := maxReleaseTimeout(p)
	want := millisToDuration(model.DefaultShaping().ReleaseTimeoutMillis)

	if got != want {
		t.Fatalf("maxReleaseTimeout = %v, want %v", got, want)
	}
}

func millisToDuration(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
