// Package handler implements the Handler Graph: the per-mapping state
// machines that sit between Event Producers and the virtual outputs,
// and the entry routing table that dispatches one tagged input event
// to every handler registered for its (type, code).
package handler

import (
	"github.com/inputremapd/inputremapd"
)

// Verdict is a handler's disposition for one event: whether the
// Forwarder should still see it.
type Verdict int

const (
	// Consumed means the event produced an output on its own and must
	// not reach the forwarded device.
	Consumed Verdict = iota

	// Passthrough means the event is unrelated to this handler's
	// mapping and should still reach the forwarded device.
	Passthrough

	// Deferred means the handler has not yet reached a decision (e.g.
	// a CombinationHandler still waiting on other keys) and the event
	// should not be forwarded while the combination is pending.
	Deferred
)

// Handler is one mapping's runtime state machine. HandleEvent is
// called once per matching event, in the order the owning Event
// Producer observed it.
type Handler interface {
	HandleEvent(ev inputremapd.Event) Verdict
}

// routeKey indexes the entry routing table by the event's (type, code)
// pair, ignoring origin so a combination spanning two sub-devices of
// one group still dispatches correctly.
type routeKey struct {
	evType, code uint16
}

// Graph is the entry routing table: `{(type, code) -> [handler, ...]}`.
// One Graph serves one injection.
type Graph struct {
	routes    map[routeKey][]Handler
	forwarder *Forwarder
	macros    []*macroTrigger
}

// NewGraph returns an empty Graph that forwards any event with no
// matching handler, or whose handlers all return Passthrough, to fw.
func NewGraph(fw *Forwarder) *Graph {
	return &Graph{routes: make(map[routeKey][]Handler), forwarder: fw}
}

// registerMacroTrigger adds mt to the set notified on every KEY press
// that falls outside its own combination, so its live tasks can tell
// an interrupted hold from a clean one.
func (g *Graph) registerMacroTrigger(mt *macroTrigger) {
	g.macros = append(g.macros, mt)
}

// Bind registers h to fire on every (evType, code) pair in keys. A
// CombinationHandler binds once per InputConfig in its combination; a
// KeyHandler or analog handler binds once for its single input.
func (g *Graph) Bind(h Handler, keys ...inputremapd.Event) {
	for _, k := range keys {
		rk := routeKey{evType: k.Type, code: k.Code}
		g.routes[rk] = append(g.routes[rk], h)
	}
}

// Dispatch routes ev to every bound handler and forwards it if no
// handler consumed it. SYN and MSC events are never routed to
// handlers — they flush batched motion and are always forwarded.
func (g *Graph) Dispatch(ev inputremapd.Event) error {
	if ev.Type == evSYN || ev.Type == evMSC {
		return g.forwarder.Forward(ev)
	}

	if ev.Type == evKey && ev.Value == 1 {
		for _, mt := range g.macros {
			mt.notifyForeignPress(ev.Type, ev.Code)
		}
	}

	rk := routeKey{evType: ev.Type, code: ev.Code}

	handlers := g.routes[rk]
	if len(handlers) == 0 {
		return g.forwarder.Forward(ev)
	}

	forward := true

	for _, h := range handlers {
		switch h.HandleEvent(ev) {
		case Consumed:
			forward = false
		case Deferred:
			forward = false
		case Passthrough:
		}
	}

	if !forward {
		return nil
	}

	return g.forwarder.Forward(ev)
}

// evSYN and evMSC mirror linux/input's EV_SYN/EV_MSC without importing
// the Linux-only package; Graph itself has no build tag so it can be
// unit tested on any platform.
const (
	evSYN uint16 = 0x00
	evMSC uint16 = 0x04
)
