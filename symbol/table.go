// Package symbol implements name<->code lookups for the kernel
// event-code space (EV_KEY/EV_REL/EV_ABS and their siblings), including
// layout-specific aliases harvested from the host keyboard layout.
//
//go:build linux

package symbol

import (
	"fmt"
	"sync"

	"golang.org/x/text/cases"
)

// typeCode identifies one kernel event code within its EV_* namespace.
type typeCode struct {
	evType uint16
	code   uint16
}

// Table resolves symbol names to (type, code) pairs and back. The
// builtin kernel names are fixed at compile time; xmodmap overrides and
// any other host-specific aliases loaded from config are layered on top
// and take priority over the builtin table.
//
// A Table is safe for concurrent use: it is read-only after Load, and
// Load itself is guarded by a mutex so config reloads never race a
// lookup.
type Table struct {
	mu        sync.RWMutex
	fold      cases.Caser
	overrides map[string]typeCode
}

// NewTable returns an empty Table backed by the builtin kernel name
// space. Call Load to layer xmodmap overrides on top.
func NewTable() *Table {
	return &Table{
		fold: cases.Fold(),
	}
}

// Alias is one override entry: a user- or layout-supplied Name standing
// in for the kernel code normally reached via (Type, Code).
type Alias struct {
	Name string
	Type uint16
	Code uint16
}

// Load replaces the Table's override layer with aliases. It is safe to
// call repeatedly (e.g. on daemon restart after the reader service
// re-harvests xmodmap.json); each call fully replaces the prior set
// rather than merging, since overrides represent a snapshot of one
// host's keyboard layout.
func (t *Table) Load(aliases []Alias) {
	overrides := make(map[string]typeCode, len(aliases))

	for _, alias := range aliases {
		overrides[t.fold.String(alias.Name)] = typeCode{alias.Type, alias.Code}
	}

	t.mu.Lock()
	t.overrides = overrides
	t.mu.Unlock()
}

// Code resolves a symbol name to its (type, code) pair. Overrides are
// consulted first and matched case- and width-insensitively (folded
// via [cases.Fold]) so that layout aliases harvested from different
// locales still match user-typed preset text; the builtin kernel table
// is then matched by exact name.
func (t *Table) Code(name string) (evType uint16, code uint16, ok bool) {
	var (
		tc     typeCode
		folded string
	)

	folded = t.fold.String(name)

	t.mu.RLock()
	tc, ok = t.overrides[folded]
	t.mu.RUnlock()

	if ok {
		return tc.evType, tc.code, true
	}

	tc, ok = builtinNameToCode[name]
	if ok {
		return tc.evType, tc.code, true
	}

	return 0, 0, false
}

// Name resolves a (type, code) pair back to its canonical kernel name.
// Override aliases are not consulted in reverse since several alias
// names may legitimately map to the same code; Name always reports the
// stable kernel symbol.
func (t *Table) Name(evType, code uint16) (string, bool) {
	name, ok := builtinCodeToName[typeCode{evType, code}]
	return name, ok
}

// MustCode is like Code but panics on an unresolvable name. It is not
// for preset validation, which must always handle the failure case
// explicitly.
func (t *Table) MustCode(name string) (evType, code uint16) {
	var ok bool

	evType, code, ok = t.Code(name)
	if !ok {
		panic(fmt.Sprintf("symbol: unresolvable builtin name %q", name))
	}

	return evType, code
}
