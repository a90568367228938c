package handler

import "github.com/inputremapd/inputremapd"

// Output is the narrow write surface a Forwarder or analog handler
// needs from a virtual output device: one atomic (type, code, value)
// emission, synced with a trailing SYN_REPORT by the implementation.
type Output interface {
	Emit(evType, code uint16, value int32) error
}

// Forwarder receives every Passthrough-verdict event and every SYN/MSC
// marker, and writes them to the forwarded uinput device in the order
// it receives them, per one sub-device's ordering guarantee.
type Forwarder struct {
	out Output
}

// NewForwarder returns a Forwarder writing to out.
func NewForwarder(out Output) *Forwarder {
	return &Forwarder{out: out}
}

// Forward writes ev to the forwarded device.
func (f *Forwarder) Forward(ev inputremapd.Event) error {
	return f.out.Emit(ev.Type, ev.Code, ev.Value)
}

// EmitRelease writes a synthetic release (value 0) for (evType, code),
// used by CombinationHandler to release the non-terminal keys of a
// combination when release_combination_keys is set.
func (f *Forwarder) EmitRelease(evType, code uint16) error {
	return f.out.Emit(evType, code, 0)
}
