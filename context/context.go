//go:build linux

package context

import (
	"sync/atomic"

	"github.com/inputremapd/inputremapd/linux/uinput"
	"github.com/inputremapd/inputremapd/model"
	"github.com/inputremapd/inputremapd/symbol"
)

// Context is the per-injection immutable bundle every handler, the
// Combination Resolver, and the Macro Runtime hold a reference to. It
// is built once when an injection starts and destroyed when the
// Supervisor terminates that injection; nothing in it changes for the
// lifetime of the injection except the active-handler counter and
// whatever the Shared Variable Store holds (which outlives any one
// Context, by design).
type Context struct {
	Preset  *model.Preset
	Symbols *symbol.Table
	Store   *Store

	registry *uinput.Registry

	active atomic.Int64
}

// New builds a Context over an already-validated preset. registry and
// symbols are shared across every injection the daemon runs; store is
// the single process-wide Shared Variable Store.
func New(preset *model.Preset, symbols *symbol.Table, registry *uinput.Registry, store *Store) *Context {
	return &Context{
		Preset:   preset,
		Symbols:  symbols,
		Store:    store,
		registry: registry,
	}
}

// Output returns the named virtual output this injection is allowed to
// write to. Handlers never reach into the registry directly so that
// every emission is attributable to a Context.
func (c *Context) Output(name uinput.Name) (*uinput.Device, bool) {
	return c.registry.Device(name)
}

// HasCapability reports whether the named output advertises
// (evType, code); Mapping validation uses this through
// model.CapabilityChecker.
func (c *Context) HasCapability(target string, evType, code uint16) bool {
	return c.registry.HasCapability(uinput.Name(target), evType, code)
}

// AbsRange returns the [min, max] range the named output advertises
// for an ABS code, used by AbsToAbsHandler/RelToAbsHandler to
// denormalize a shaped value back into device units.
func (c *Context) AbsRange(target string, code uint16) (min, max int32, ok bool) {
	return c.registry.AbsRange(uinput.Name(target), code)
}

// EnterHandler increments the active-handler counter; a handler calls
// this when it begins processing an event and DoneHandler when it
// finishes, so Stop can observe quiescence before tearing down the
// Macro Runtime.
func (c *Context) EnterHandler() {
	c.active.Add(1)
}

// DoneHandler decrements the active-handler counter.
func (c *Context) DoneHandler() {
	c.active.Add(-1)
}

// ActiveHandlers returns the current count of in-flight handler
// invocations, used by the Supervisor's drain-on-stop wait.
func (c *Context) ActiveHandlers() int64 {
	return c.active.Load()
}
