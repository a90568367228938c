//go:build linux

package handler

import "github.com/inputremapd/inputremapd/linux/uinput"

// deviceOutput adapts a uinput.Device's Write method to the Output
// interface the handler variants and Forwarder depend on, so they
// never import the Linux-only uinput package directly.
type deviceOutput struct {
	dev *uinput.Device
}

// AsOutput wraps dev as an Output.
func AsOutput(dev *uinput.Device) Output {
	return deviceOutput{dev: dev}
}

func (o deviceOutput) Emit(evType, code uint16, value int32) error {
	return o.dev.Write(evType, code, value)
}
