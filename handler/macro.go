package handler

import (
	"context"

	"github.com/inputremapd/inputremapd"
)

// MacroHandler triggers a mapping's compiled macro program on a single
// key's press and signals cancellation on its release. Combinations
// with more than one InputConfig route through CombinationHandler
// instead, even when their output_kind is also Macro.
type MacroHandler struct {
	trigger *macroTrigger
	ctx     context.Context
}

// NewMacroHandler returns a MacroHandler that runs t's macro on each
// press, using ctx as the cancellation signal shared by the owning
// injection.
func NewMacroHandler(ctx context.Context, t *macroTrigger) *MacroHandler {
	return &MacroHandler{trigger: t, ctx: ctx}
}

func (h *MacroHandler) HandleEvent(ev inputremapd.Event) Verdict {
	if ev.Value != 0 {
		h.trigger.pressKey(h.ctx)
	} else {
		h.trigger.releaseKey()
	}

	return Consumed
}
