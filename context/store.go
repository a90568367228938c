// Package context implements the per-injection Context bundle and the
// process-wide Shared Variable Store macros read and write through.
//
// (The package is named after the domain term from the data model, a
// per-injection context object — not Go's context.Context. It does not
// implement that interface and is never imported under the name
// "context" alongside the standard library package in the same file.)
package context

import "sync"

// Value is a Shared Variable Store value: either an integer or a short
// string, per the data model.
type Value struct {
	Int    int64
	Str    string
	IsInt  bool
}

// IntValue returns an integer Value.
func IntValue(v int64) Value {
	return Value{Int: v, IsInt: true}
}

// StringValue returns a string Value.
func StringValue(v string) Value {
	return Value{Str: v}
}

// Store is the process-wide Shared Variable Store: a serialized map
// from variable name to Value, readable and writable by macros running
// in any injection. It is initialized empty when the daemon starts and
// reset only on daemon restart — there is deliberately no TTL or
// per-injection scoping here.
type Store struct {
	mu   sync.Mutex
	vars map[string]Value
}

// NewStore returns an empty Shared Variable Store.
func NewStore() *Store {
	return &Store{vars: make(map[string]Value)}
}

// Get returns the current value of name and whether it has ever been
// set. Readers observe a consistent last write; there are no torn
// reads because the whole map access is under one lock.
func (s *Store) Get(name string) (Value, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vars[name]

	return v, ok
}

// Set writes name unconditionally, replacing any prior value and type.
func (s *Store) Set(name string, v Value) {
	s.mu.Lock()
	s.vars[name] = v
	s.mu.Unlock()
}

// Add atomically increments the integer value stored at name by delta,
// treating a missing or non-integer prior value as 0. It returns the
// value after the increment.
func (s *Store) Add(name string, delta int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.vars[name]

	var base int64
	if cur.IsInt {
		base = cur.Int
	}

	next := base + delta
	s.vars[name] = IntValue(next)

	return next
}
