package macro

import "testing"

func TestParseSingleCall(t *testing.T) {
	root, err := Parse(`key(KEY_A)`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if root.Kind != Key || root.Sym != "KEY_A" {
		t.Fatalf("got %+v", root)
	}
}

func TestParseChainedSequence(t *testing.T) {
	root, err := Parse(`key_down(KEY_LEFTSHIFT).key(KEY_A).key_up(KEY_LEFTSHIFT)`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if root.Kind != Seq || len(root.Children) != 3 {
		t.Fatalf("got %+v", root)
	}

	if root.Children[0].Kind != KeyDown || root.Children[1].Kind != Key || root.Children[2].Kind != KeyUp {
		t.Fatalf("got %+v", root.Children)
	}
}

func TestParseNestedMacroArgument(t *testing.T) {
	root, err := Parse(`modify(KEY_LEFTCTRL, key(KEY_C))`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if root.Kind != Modify || root.Sym != "KEY_LEFTCTRL" {
		t.Fatalf("got %+v", root)
	}

	if root.Body == nil || root.Body.Kind != Key || root.Body.Sym != "KEY_C" {
		t.Fatalf("got body %+v", root.Body)
	}
}

func TestParseRepeatRejectsNonMacroBody(t *testing.T) {
	if _, err := Parse(`repeat(3, KEY_A)`); err == nil {
		t.Fatal("expected an error for a non-macro repeat body")
	}
}

func TestParseVarAndNumberArgs(t *testing.T) {
	root, err := Parse(`if_eq($counter, 3, key(KEY_A), key(KEY_B))`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if root.Kind != IfEq {
		t.Fatalf("got %+v", root)
	}

	if !root.Args[0].IsVar || root.Args[0].Var != "counter" {
		t.Fatalf("arg0 = %+v", root.Args[0])
	}

	if root.Args[1].IsVar || root.Args[1].Int != 3 {
		t.Fatalf("arg1 = %+v", root.Args[1])
	}

	if root.Then == nil || root.Else == nil {
		t.Fatalf("expected both branches, got %+v", root)
	}
}

func TestParseHoldKeysCollectsSymbolsInOrder(t *testing.T) {
	root, err := Parse(`hold_keys(KEY_LEFTCTRL, KEY_LEFTSHIFT, KEY_A)`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := []string{"KEY_LEFTCTRL", "KEY_LEFTSHIFT", "KEY_A"}

	if len(root.Syms) != len(want) {
		t.Fatalf("got %+v", root.Syms)
	}

	for i, s := range want {
		if root.Syms[i] != s {
			t.Fatalf("Syms[%d] = %q, want %q", i, root.Syms[i], s)
		}
	}
}

func TestParseUnknownFunctionFails(t *testing.T) {
	if _, err := Parse(`bogus(KEY_A)`); err == nil {
		t.Fatal("expected an error for an unknown macro function")
	}
}

func TestParseArityErrors(t *testing.T) {
	cases := []string{
		`key()`,
		`key(KEY_A, KEY_B)`,
		`wait()`,
		`wait(1, 2, 3)`,
		`event(1, 2)`,
		`mod_tap(KEY_A)`,
	}

	for _, src := range cases {
		if _, err := Parse(src); err == nil {
			t.Fatalf("Parse(%q): expected an arity error", src)
		}
	}
}

// TestParseSameSourceTwiceGivesSameShape parses the same source twice
// and checks both trees describe the same sequence of node kinds. The
// package has no macro printer, so no parse/re-print round-trip is
// checked here.
func TestParseSameSourceTwiceGivesSameShape(t *testing.T) {
	src := `key_down(KEY_LEFTCTRL).repeat(2, key(KEY_A)).key_up(KEY_LEFTCTRL)`

	first, err := Parse(src)
	if err != nil {
		t.Fatalf("first Parse: %v", err)
	}

	second, err := Parse(src)
	if err != nil {
		t.Fatalf("second Parse: %v", err)
	}

	if !sameShape(first, second) {
		t.Fatalf("shape mismatch:\n%+v\n%+v", first, second)
	}
}

func sameShape(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.Kind != b.Kind || a.Sym != b.Sym || a.Sym2 != b.Sym2 {
		return false
	}

	if len(a.Children) != len(b.Children) || len(a.Syms) != len(b.Syms) || len(a.Args) != len(b.Args) {
		return false
	}

	for i := range a.Children {
		if !sameShape(a.Children[i], b.Children[i]) {
			return false
		}
	}

	return sameShape(a.Body, b.Body) && sameShape(a.Then, b.Then) && sameShape(a.Else, b.Else)
}
