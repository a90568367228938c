package macro

import "fmt"

// build assembles one parsed call into a typed Node, validating arity
// and argument kinds against the function name.
func build(name string, pos int, args []rawArg) (*Node, error) {
	switch name {
	case "key":
		return buildSym(Key, pos, args, 1)
	case "key_down":
		return buildSym(KeyDown, pos, args, 1)
	case "key_up":
		return buildSym(KeyUp, pos, args, 1)

	case "wait":
		return buildValueArgs(Wait, pos, args, 1, 2)

	case "repeat":
		if len(args) != 2 {
			return nil, argCountErr(pos, name, 2, len(args))
		}

		if args[1].node == nil {
			return nil, fmt.Errorf("position %d: repeat's second argument must be a macro", pos)
		}

		return &Node{Kind: Repeat, Pos: pos, Args: []Value{args[0].value}, Body: args[1].node}, nil

	case "modify":
		if len(args) != 2 {
			return nil, argCountErr(pos, name, 2, len(args))
		}

		if args[1].node == nil {
			return nil, fmt.Errorf("position %d: modify's second argument must be a macro", pos)
		}

		return &Node{Kind: Modify, Pos: pos, Sym: args[0].value.Str, Body: args[1].node}, nil

	case "hold":
		if len(args) != 1 || args[0].node == nil {
			return nil, fmt.Errorf("position %d: hold takes exactly one macro argument", pos)
		}

		return &Node{Kind: Hold, Pos: pos, Body: args[0].node}, nil

	case "hold_keys":
		if len(args) == 0 {
			return nil, fmt.Errorf("position %d: hold_keys requires at least one symbol", pos)
		}

		syms := make([]string, len(args))
		for i, a := range args {
			syms[i] = a.value.Str
		}

		return &Node{Kind: HoldKeys, Pos: pos, Syms: syms}, nil

	case "mod_tap":
		if len(args) < 2 || len(args) > 3 {
			return nil, fmt.Errorf("position %d: mod_tap takes 2 or 3 arguments, got %d", pos, len(args))
		}

		n := &Node{Kind: ModTap, Pos: pos, Sym: args[0].value.Str, Sym2: args[1].value.Str}

		if len(args) == 3 {
			n.Args = []Value{args[2].value}
		}

		return n, nil

	case "mouse":
		return buildValueArgs(Mouse, pos, args, 2, 3)

	case "mouse_xy":
		return buildValueArgs(MouseXY, pos, args, 2, 3)

	case "wheel":
		return buildValueArgs(Wheel, pos, args, 2, 2)

	case "event":
		return buildValueArgs(Event, pos, args, 3, 3)

	case "set":
		return buildValueArgs(Set, pos, args, 2, 2)

	case "add":
		return buildValueArgs(Add, pos, args, 2, 2)

	case "if_eq":
		if len(args) < 2 || len(args) > 4 {
			return nil, fmt.Errorf("position %d: if_eq takes 2 to 4 arguments, got %d", pos, len(args))
		}

		n := &Node{Kind: IfEq, Pos: pos, Args: []Value{args[0].value, args[1].value}}

		if len(args) >= 3 {
			n.Then = args[2].node
		}

		if len(args) == 4 {
			n.Else = args[3].node
		}

		return n, nil

	case "if_tap":
		return buildIfBranch(IfTap, pos, args, true)

	case "if_single":
		return buildIfBranch(IfSingle, pos, args, false)

	case "if_capslock":
		return buildIfBranch(IfCapslock, pos, args, false)

	case "if_numlock":
		return buildIfBranch(IfNumlock, pos, args, false)

	default:
		return nil, fmt.Errorf("position %d: unknown macro function %q", pos, name)
	}
}

func buildSym(kind Kind, pos int, args []rawArg, want int) (*Node, error) {
	if len(args) != want {
		return nil, argCountErr(pos, kind.String(), want, len(args))
	}

	return &Node{Kind: kind, Pos: pos, Sym: args[0].value.Str}, nil
}

// buildValueArgs builds a Node whose arguments are all plain Values
// (no nested macros), used by every leaf node except the ones with
// explicit branch/body handling above.
func buildValueArgs(kind Kind, pos int, args []rawArg, min, max int) (*Node, error) {
	if len(args) < min || len(args) > max {
		return nil, fmt.Errorf("position %d: %s takes %d to %d arguments, got %d", pos, kind.String(), min, max, len(args))
	}

	values := make([]Value, len(args))
	for i, a := range args {
		if a.node != nil {
			return nil, fmt.Errorf("position %d: %s does not take a macro argument", pos, kind.String())
		}

		values[i] = a.value
	}

	return &Node{Kind: kind, Pos: pos, Args: values}, nil
}

// buildIfBranch builds if_tap/if_single/if_capslock/if_numlock, whose
// shape is (then?, else?, timeout?) with then/else as optional nested
// macros and an optional trailing integer timeout. requireTimeout
// enforces if_tap's mandatory timeout argument.
func buildIfBranch(kind Kind, pos int, args []rawArg, requireTimeout bool) (*Node, error) {
	n := &Node{Kind: kind, Pos: pos}

	var values []Value

	for _, a := range args {
		if a.node != nil {
			if n.Then == nil {
				n.Then = a.node
			} else if n.Else == nil {
				n.Else = a.node
			} else {
				return nil, fmt.Errorf("position %d: %s takes at most two macro branches", pos, kind.String())
			}

			continue
		}

		values = append(values, a.value)
	}

	n.Args = values

	if requireTimeout && len(values) == 0 {
		return nil, fmt.Errorf("position %d: %s requires a timeout argument", pos, kind.String())
	}

	return n, nil
}

func argCountErr(pos int, name string, want, got int) error {
	return fmt.Errorf("position %d: %s takes %d argument(s), got %d", pos, name, want, got)
}

func (k Kind) String() string {
	switch k {
	case Seq:
		return "seq"
	case Key:
		return "key"
	case KeyDown:
		return "key_down"
	case KeyUp:
		return "key_up"
	case Wait:
		return "wait"
	case Repeat:
		return "repeat"
	case Modify:
		return "modify"
	case Hold:
		return "hold"
	case HoldKeys:
		return "hold_keys"
	case ModTap:
		return "mod_tap"
	case Mouse:
		return "mouse"
	case MouseXY:
		return "mouse_xy"
	case Wheel:
		return "wheel"
	case Event:
		return "event"
	case Set:
		return "set"
	case Add:
		return "add"
	case IfEq:
		return "if_eq"
	case IfTap:
		return "if_tap"
	case IfSingle:
		return "if_single"
	case IfCapslock:
		return "if_capslock"
	case IfNumlock:
		return "if_numlock"
	default:
		return "unknown"
	}
}
