package handler

import (
	"testing"

	"github.com/inputremapd/inputremapd"
)

func TestKeyHandlerMirrorsValue(t *testing.T) {
	out := &fakeOutput{}
	h := NewKeyHandler(out, evKey, 56, nil)

	if v := h.HandleEvent(inputremapd.Event{Type: evKey, Code: 30, Value: 1}); v != Consumed {
		t.Fatalf("HandleEvent verdict = %v, want Consumed", v)
	}

	if v := h.HandleEvent(inputremapd.Event{Type: evKey, Code: 30, Value: 0}); v != Consumed {
		t.Fatalf("HandleEvent verdict = %v, want Consumed", v)
	}

	want := []inputremapd.Event{{Type: evKey, Code: 56, Value: 1}, {Type: evKey, Code: 56, Value: 0}}

	if len(out.edges) != len(want) {
		t.Fatalf("edges = %v, want %v", out.edges, want)
	}

	for i, e := range want {
		if out.edges[i] != e {
			t.Fatalf("edge[%d] = %v, want %v", i, out.edges[i], e)
		}
	}
}
