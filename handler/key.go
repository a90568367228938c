package handler

import (
	"log/slog"

	"github.com/inputremapd/inputremapd"
)

// Event type constants mirroring linux/input's EV_* without importing
// the Linux-only package, so this package stays buildable and testable
// on every platform.
const (
	evKey uint16 = 0x01
	evRel uint16 = 0x02
	evAbs uint16 = 0x03
)

// KeyHandler maps one input key 1-to-1 onto an output key, mirroring
// the input's press/hold/release value.
type KeyHandler struct {
	Out     Output
	OutType uint16
	OutCode uint16
	Log     *slog.Logger
}

// NewKeyHandler returns a KeyHandler emitting outType/outCode on out.
func NewKeyHandler(out Output, outType, outCode uint16, log *slog.Logger) *KeyHandler {
	return &KeyHandler{Out: out, OutType: outType, OutCode: outCode, Log: log}
}

func (h *KeyHandler) HandleEvent(ev inputremapd.Event) Verdict {
	if err := h.Out.Emit(h.OutType, h.OutCode, ev.Value); err != nil && h.Log != nil {
		h.Log.Error("key handler emit failed", "err", err, "code", h.OutCode)
	}

	return Consumed
}
