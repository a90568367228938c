package combination

import (
	"testing"

	"github.com/inputremapd/inputremapd/model"
)

func cfg(code uint16) model.InputConfig {
	return model.InputConfig{Type: 1, Code: code}
}

func TestLongestMatchWins(t *testing.T) {
	var activated, released []string

	r := New()
	r.Activate = func(m *model.Mapping, trig model.InputConfig) { activated = append(activated, m.TargetUinput) }
	r.Release = func(m *model.Mapping) { released = append(released, m.TargetUinput) }

	single := &model.Mapping{TargetUinput: "single", Combination: model.InputCombination{cfg(30)}}
	combo := &model.Mapping{TargetUinput: "combo", Combination: model.InputCombination{cfg(42), cfg(30)}}

	if err := r.Register(0, single); err != nil {
		t.Fatalf("Register(single) = %v", err)
	}
	if err := r.Register(1, combo); err != nil {
		t.Fatalf("Register(combo) = %v", err)
	}

	r.Satisfy(cfg(30))

	if len(activated) != 1 || activated[0] != "single" {
		t.Fatalf("after holding 30 alone, activated = %v, want [single]", activated)
	}

	r.Satisfy(cfg(42))

	if len(activated) != 2 || activated[1] != "combo" {
		t.Fatalf("after holding 42+30, activated = %v, want [single combo]", activated)
	}

	if len(released) != 1 || released[0] != "single" {
		t.Fatalf("after combo won, released = %v, want [single] (the subsumed shorter combo)", released)
	}
}

func TestReleaseReactivatesShorterCombination(t *testing.T) {
	var activated, released []string

	r := New()
	r.Activate = func(m *model.Mapping, trig model.InputConfig) { activated = append(activated, m.TargetUinput) }
	r.Release = func(m *model.Mapping) { released = append(released, m.TargetUinput) }

	single := &model.Mapping{TargetUinput: "single", Combination: model.InputCombination{cfg(30)}}
	combo := &model.Mapping{TargetUinput: "combo", Combination: model.InputCombination{cfg(42), cfg(30)}}

	r.Register(0, single)
	r.Register(1, combo)

	r.Satisfy(cfg(30))
	r.Satisfy(cfg(42))

	activated = nil
	released = nil

	r.Desatisfy(cfg(42))

	if len(released) != 1 || released[0] != "combo" {
		t.Fatalf("after releasing 42, released = %v, want [combo]", released)
	}

	if len(activated) != 1 || activated[0] != "single" {
		t.Fatalf("after releasing 42 with 30 still held, activated = %v, want [single] to re-trigger", activated)
	}
}

func TestReleaseResidualKeysCalledBeforeActivate(t *testing.T) {
	var order []string

	r := New()
	r.ReleaseResidual = func(m *model.Mapping, residual model.InputConfig) { order = append(order, "residual") }
	r.Activate = func(m *model.Mapping, trig model.InputConfig) { order = append(order, "activate") }

	combo := &model.Mapping{
		TargetUinput:           "combo",
		Combination:            model.InputCombination{cfg(42), cfg(30)},
		ReleaseCombinationKeys: true,
	}

	r.Register(0, combo)

	r.Satisfy(cfg(42))
	r.Satisfy(cfg(30))

	if len(order) != 2 || order[0] != "residual" || order[1] != "activate" {
		t.Fatalf("order = %v, want [residual activate]", order)
	}
}
