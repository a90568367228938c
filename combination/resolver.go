// Package combination implements the Combination Resolver: arbitration
// between overlapping InputCombinations so that when a longer
// combination activates, any shorter combination triggered by one of
// its proper subsets is released, and the "release residual keys"
// policy is applied before the winning output is emitted.
package combination

import (
	"fmt"
	"sort"

	"github.com/google/btree"
	"github.com/inputremapd/inputremapd/model"
)

// configKey identifies one InputConfig for held/subset membership
// purposes. Threshold state is tracked by the caller (the
// CombinationHandler evaluating an analog axis); the resolver only
// needs to know which (type, code, origin) identities are currently
// satisfied.
type configKey struct {
	evType uint16
	code   uint16
	origin uint64
}

func keyOf(c model.InputConfig) configKey {
	return configKey{evType: c.Type, code: c.Code, origin: c.OriginHash}
}

// entry is one registered combination.
type entry struct {
	id      int
	mapping *model.Mapping
	keys    map[configKey]struct{}
}

func (e *entry) length() int {
	return len(e.keys)
}

// subsetOf reports whether e is a proper subset of other: fewer keys
// than other, every one of them also in other.
func (e *entry) subsetOf(other *entry) bool {
	if len(e.keys) >= len(other.keys) {
		return false
	}

	for k := range e.keys {
		if _, ok := other.keys[k]; !ok {
			return false
		}
	}

	return true
}

func (e *entry) satisfiedBy(held map[configKey]struct{}) bool {
	for k := range e.keys {
		if _, ok := held[k]; !ok {
			return false
		}
	}

	return true
}

// ActivateFunc is called when a combination newly wins arbitration.
// trigger is the InputConfig whose satisfaction completed the match.
type ActivateFunc func(mapping *model.Mapping, trigger model.InputConfig)

// ReleaseFunc is called when a previously-triggered combination's
// output must be released, either because one of its keys let go or
// because a longer combination subsuming it just won.
type ReleaseFunc func(mapping *model.Mapping)

// ReleaseResidualFunc is called, before Activate, for every
// non-trigger key of the winning combination when that mapping has
// ReleaseCombinationKeys set.
type ReleaseResidualFunc func(mapping *model.Mapping, residual model.InputConfig)

// Resolver arbitrates a preset's combinations. One Resolver instance
// is shared by every CombinationHandler in an injection.
type Resolver struct {
	tree      *btree.BTreeG[*entry]
	byID      map[int]*entry
	triggered map[int]bool
	held      map[configKey]struct{}

	Activate        ActivateFunc
	Release         ReleaseFunc
	ReleaseResidual ReleaseResidualFunc
}

// New returns a Resolver with no combinations registered. Callers set
// Activate/Release/ReleaseResidual before the first Satisfy call.
func New() *Resolver {
	return &Resolver{
		tree: btree.NewG(32, func(a, b *entry) bool {
			if a.length() != b.length() {
				return a.length() > b.length()
			}

			return a.id < b.id
		}),
		byID:      make(map[int]*entry),
		triggered: make(map[int]bool),
		held:      make(map[configKey]struct{}),
	}
}

// Register adds one mapping's combination to the registry. id must be
// unique within this Resolver (the mapping's index within its preset
// is the natural choice).
func (r *Resolver) Register(id int, mapping *model.Mapping) error {
	if len(mapping.Combination) == 0 {
		return fmt.Errorf("combination.Register: mapping %d has an empty combination", id)
	}

	keys := make(map[configKey]struct{}, len(mapping.Combination))
	for _, cfg := range mapping.Combination {
		keys[keyOf(cfg)] = struct{}{}
	}

	e := &entry{id: id, mapping: mapping, keys: keys}

	r.tree.ReplaceOrInsert(e)
	r.byID[id] = e

	return nil
}

// Satisfy marks key as currently satisfied (a key held, or an axis
// beyond its threshold) and re-evaluates arbitration. key, the
// InputConfig that just became satisfied, is passed through to
// Activate as the trigger event.
func (r *Resolver) Satisfy(key model.InputConfig) {
	r.held[keyOf(key)] = struct{}{}
	r.evaluate(key)
}

// Desatisfy marks key as no longer satisfied and releases any
// combination that depended on it, then re-evaluates the remaining
// held keys so shorter combinations may re-activate.
func (r *Resolver) Desatisfy(key model.InputConfig) {
	delete(r.held, keyOf(key))

	k := keyOf(key)

	r.tree.Ascend(func(e *entry) bool {
		if !r.triggered[e.id] {
			return true
		}

		if _, has := e.keys[k]; has {
			r.triggered[e.id] = false

			if r.Release != nil {
				r.Release(e.mapping)
			}
		}

		return true
	})

	r.reactivateShorter()
}

// evaluate finds the longest combination fully satisfied by the
// current held set. If it differs from what's already triggered, it
// releases any subsumed shorter combination, emits residual releases,
// and activates the winner.
func (r *Resolver) evaluate(trigger model.InputConfig) {
	var winner *entry

	r.tree.Ascend(func(e *entry) bool {
		if e.satisfiedBy(r.held) {
			winner = e
			return false
		}

		return true
	})

	if winner == nil || r.triggered[winner.id] {
		return
	}

	r.tree.Ascend(func(e *entry) bool {
		if e.id == winner.id {
			return true
		}

		if r.triggered[e.id] && e.subsetOf(winner) {
			r.triggered[e.id] = false

			if r.Release != nil {
				r.Release(e.mapping)
			}
		}

		return true
	})

	if winner.mapping.ReleaseCombinationKeys && r.ReleaseResidual != nil {
		for _, cfg := range winner.mapping.Combination {
			if keyOf(cfg) != keyOf(trigger) {
				r.ReleaseResidual(winner.mapping, cfg)
			}
		}
	}

	r.triggered[winner.id] = true

	if r.Activate != nil {
		r.Activate(winner.mapping, trigger)
	}
}

// reactivateShorter re-runs arbitration for whichever combination now
// matches best after a release, without a specific trigger event (the
// trigger argument passed to Activate in this path is the zero value,
// since no single key newly became satisfied — the held set simply
// shrank and a shorter combination may already have been fully
// satisfied all along).
func (r *Resolver) reactivateShorter() {
	var winner *entry

	r.tree.Ascend(func(e *entry) bool {
		if e.satisfiedBy(r.held) {
			winner = e
			return false
		}

		return true
	})

	if winner == nil || r.triggered[winner.id] {
		return
	}

	r.triggered[winner.id] = true

	if r.Activate != nil {
		var zero model.InputConfig
		r.Activate(winner.mapping, zero)
	}
}

// activeIDsSortedByLength is exposed for tests; production code never
// needs to enumerate triggered state directly.
func (r *Resolver) activeIDsSortedByLength() []int {
	ids := make([]int, 0, len(r.triggered))

	for id, on := range r.triggered {
		if on {
			ids = append(ids, id)
		}
	}

	sort.Slice(ids, func(i, j int) bool { return r.byID[ids[i]].length() > r.byID[ids[j]].length() })

	return ids
}
