//go:build linux

package uinput

import (
	"fmt"

	"github.com/inputremapd/inputremapd/linux/input"
)

// Name identifies one of the fixed virtual outputs the engine creates
// once per daemon lifetime.
type Name string

const (
	Keyboard      Name = "keyboard"
	Mouse         Name = "mouse"
	Gamepad       Name = "gamepad"
	Stylus        Name = "stylus"
	KeyboardMouse Name = "keyboard+mouse"
	Forwarded     Name = "forwarded"
	Mapped        Name = "mapped"
)

// Registry owns the fixed set of virtual output devices, created once
// at engine startup and shared by every injection's Handler Graph and
// Forwarder.
type Registry struct {
	devices map[Name]*Device
	caps    map[Name]Capabilities
}

// keyboardKeys is every code up to KEY_MAX except the span BTN_MISC
// through BTN_TRIGGER_HAPPY40, so the keyboard output claims no
// BTN_* code at all; the KEY_* codes numbered inside that span
// (KEY_OK and up, below BTN_TRIGGER_HAPPY) are left out with it.
func keyboardKeys() []uint16 {
	keys := make([]uint16, 0, input.KEY_MAX)

	for code := uint16(0); code < input.BTN_MISC; code++ {
		keys = append(keys, code)
	}

	for code := uint16(input.BTN_TRIGGER_HAPPY40 + 1); code <= input.KEY_MAX; code++ {
		keys = append(keys, code)
	}

	return keys
}

func mouseCaps() Capabilities {
	return Capabilities{
		Keys: []uint16{
			input.BTN_LEFT, input.BTN_RIGHT, input.BTN_MIDDLE,
			input.BTN_SIDE, input.BTN_EXTRA, input.BTN_FORWARD, input.BTN_BACK,
		},
		Rels: []uint16{
			input.REL_X, input.REL_Y, input.REL_WHEEL, input.REL_HWHEEL,
		},
	}
}

func gamepadCaps() Capabilities {
	return Capabilities{
		Keys: []uint16{
			input.BTN_SOUTH, input.BTN_EAST, input.BTN_NORTH, input.BTN_WEST,
			input.BTN_TL, input.BTN_TR, input.BTN_TL2, input.BTN_TR2,
			input.BTN_SELECT, input.BTN_START, input.BTN_MODE,
			input.BTN_THUMBL, input.BTN_THUMBR,
		},
		Abs: []AbsAxis{
			{Code: input.ABS_X, Min: -32768, Max: 32767},
			{Code: input.ABS_Y, Min: -32768, Max: 32767},
			{Code: input.ABS_Z, Min: -32768, Max: 32767},
			{Code: input.ABS_RX, Min: -32768, Max: 32767},
			{Code: input.ABS_RY, Min: -32768, Max: 32767},
			{Code: input.ABS_RZ, Min: -32768, Max: 32767},
			{Code: input.ABS_HAT0X, Min: -1, Max: 1},
			{Code: input.ABS_HAT0Y, Min: -1, Max: 1},
		},
	}
}

func stylusCaps() Capabilities {
	return Capabilities{
		Keys: []uint16{input.BTN_TOOL_PEN, input.BTN_TOUCH, input.BTN_STYLUS},
		Abs: []AbsAxis{
			{Code: input.ABS_X, Min: 0, Max: 32767},
			{Code: input.ABS_Y, Min: 0, Max: 32767},
			{Code: input.ABS_PRESSURE, Min: 0, Max: 4095},
		},
	}
}

// mergeCaps unions several capability sets, used for the composite
// keyboard+mouse output and the catch-all forwarded/mapped outputs.
func mergeCaps(sets ...Capabilities) Capabilities {
	var merged Capabilities

	for _, set := range sets {
		merged.Keys = append(merged.Keys, set.Keys...)
		merged.Rels = append(merged.Rels, set.Rels...)
		merged.Abs = append(merged.Abs, set.Abs...)
	}

	return merged
}

// OpenRegistry creates every fixed virtual output device. Failures here
// are reported as permission/availability errors by the caller, since
// the most common cause is a missing uinput group membership.
func OpenRegistry() (*Registry, error) {
	reg := &Registry{
		devices: make(map[Name]*Device, 7),
		caps:    make(map[Name]Capabilities, 7),
	}

	kb := Capabilities{Keys: keyboardKeys()}
	mouse := mouseCaps()
	gamepad := gamepadCaps()
	stylus := stylusCaps()
	everything := mergeCaps(kb, mouse, gamepad, stylus)

	specs := []struct {
		name Name
		caps Capabilities
	}{
		{Keyboard, kb},
		{Mouse, mouse},
		{Gamepad, gamepad},
		{Stylus, stylus},
		{KeyboardMouse, mergeCaps(kb, mouse)},
		{Forwarded, everything},
		{Mapped, everything},
	}

	for _, spec := range specs {
		dev, err := Open(string(spec.name), spec.caps)
		if err != nil {
			reg.Close()
			return nil, fmt.Errorf("uinput.OpenRegistry: open %s: %w", spec.name, err)
		}

		reg.devices[spec.name] = dev
		reg.caps[spec.name] = spec.caps
	}

	return reg, nil
}

// Device returns the named virtual output, or false if name is not one
// of the fixed registry members.
func (reg *Registry) Device(name Name) (*Device, bool) {
	dev, ok := reg.devices[name]
	return dev, ok
}

// HasCapability reports whether the named output advertises
// (evType, code), used to validate that an analog-axis mapping's
// output target actually supports the axis or key it's configured to
// produce.
func (reg *Registry) HasCapability(name Name, evType, code uint16) bool {
	caps, ok := reg.caps[name]
	if !ok {
		return false
	}

	switch evType {
	case input.EV_KEY:
		for _, k := range caps.Keys {
			if k == code {
				return true
			}
		}
	case input.EV_REL:
		for _, r := range caps.Rels {
			if r == code {
				return true
			}
		}
	case input.EV_ABS:
		for _, a := range caps.Abs {
			if a.Code == code {
				return true
			}
		}
	}

	return false
}

// AbsRange returns the [min, max] range name advertises for code, for
// handlers that denormalize a shaped value back into device units.
func (reg *Registry) AbsRange(name Name, code uint16) (min, max int32, ok bool) {
	caps, ok := reg.caps[name]
	if !ok {
		return 0, 0, false
	}

	for _, a := range caps.Abs {
		if a.Code == code {
			return a.Min, a.Max, true
		}
	}

	return 0, 0, false
}

// Close destroys every virtual output device.
func (reg *Registry) Close() error {
	var firstErr error

	for _, dev := range reg.devices {
		if err := dev.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
