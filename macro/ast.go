// Package macro implements the macro language's lexer, parser, and
// cooperative runtime: the domain-specific language a Mapping's
// output can run instead of a single key edge.
package macro

// Kind identifies one AST node's semantics; see the component design
// table this package implements for each kind's arity and behavior.
type Kind int

const (
	Seq Kind = iota
	Key
	KeyDown
	KeyUp
	Wait
	Repeat
	Modify
	Hold
	HoldKeys
	ModTap
	Mouse
	MouseXY
	Wheel
	Event
	Set
	Add
	IfEq
	IfTap
	IfSingle
	IfCapslock
	IfNumlock
)

// Value is a macro argument: a literal integer, a literal string, or a
// late-bound reference to a Shared Variable Store entry (resolved at
// the point of use, not at parse time).
type Value struct {
	IsVar bool
	Var   string

	IsString bool
	Str      string

	Int int64
}

// IntValue returns a literal integer Value.
func IntValue(v int64) Value { return Value{Int: v} }

// StringValue returns a literal string Value.
func StringValue(v string) Value { return Value{IsString: true, Str: v} }

// VarValue returns a Value that resolves against the Shared Variable
// Store at the point of use.
func VarValue(name string) Value { return Value{IsVar: true, Var: name} }

// Node is one macro AST node. Not every field applies to every Kind;
// see build in builder.go for which fields each Kind sets.
type Node struct {
	Kind Kind
	Pos  int

	// Sym is the symbol-table name argument for Key, KeyDown, KeyUp,
	// the mod argument of Modify, and the default/mod arguments of
	// ModTap (Sym is "default", Sym2 is "mod").
	Sym  string
	Sym2 string

	// Syms lists the ordered symbol names for HoldKeys.
	Syms []string

	// Args holds the node's positional numeric/string/var arguments,
	// in the order given by the component design's arity column.
	Args []Value

	// Body is the nested macro for Repeat, Modify, and Hold.
	Body *Node

	// Then/Else are the branch macros for IfEq, IfTap, IfSingle,
	// IfCapslock, and IfNumlock. Either may be nil (documented default:
	// no-op).
	Then *Node
	Else *Node

	// Children holds the sequence of nodes for Kind == Seq.
	Children []*Node
}
