// Package inputremapd defines the types shared across the injection
// engine: the cross-platform device/capability vocabulary the Linux
// evdev backend implements, and the (type, code, value) event triple
// that flows from Event Producers through the Handler Graph.
package inputremapd

// InputEvent identifies an event type in the kernel event-code space
// (EV_KEY, EV_REL, EV_ABS, ...).
type InputEvent = uint16

// InputCode identifies one code within an InputEvent's namespace (a
// specific key, relative axis, or absolute axis).
type InputCode = uint16

// InputDevice is the narrow surface the Device Inventory and Event
// Producers need from a platform-specific device handle. The Linux
// backend (linux/input.Device) is the only implementation built here;
// the interface exists so the inventory and producer code never touch
// ioctls directly.
type InputDevice interface {
	// Name returns the device's human-readable name.
	Name() (string, error)

	// ID returns a platform-specific device identifier, stable across
	// reconnects of the same physical hardware.
	ID() (string, error)

	// Events returns the event types (EV_KEY, EV_REL, EV_ABS, ...)
	// this device reports.
	Events() ([]InputEvent, error)

	// Codes returns the codes this device reports within eventType.
	Codes(eventType InputEvent) ([]InputCode, error)

	// Close releases the underlying device handle.
	Close() error
}

// Device represents a physical or virtual input device, independent of
// the sub-device node it was discovered through. The Device Inventory
// uses this as the per-group summary handed to ListGroups.
type Device struct {
	// Name is the human-readable name (e.g. "Xbox Controller",
	// "Logitech Dual Action").
	Name string

	// ID is a platform-specific identifier: on Linux it is a
	// "/dev/input/eventN" path.
	ID string

	// Capabilities describes the features this device supports.
	Capabilities Capabilities
}

// Capabilities describes the feature set supported by an input device,
// used to decide how raw sub-devices get grouped and which handler
// variants a mapping against this device can legally target.
type Capabilities struct {
	// HasAbsoluteAxes reports whether the device provides absolute
	// axis input (EV_ABS).
	HasAbsoluteAxes bool

	// HasRelativeAxes reports whether the device provides relative
	// axis input (EV_REL), e.g. a mouse.
	HasRelativeAxes bool

	// HasButtons reports whether the device provides button or
	// key input (EV_KEY).
	HasButtons bool

	// IsJoystick reports whether the device is considered a joystick or
	// gamepad. It is true when the device has both absolute axes and
	// buttons.
	IsJoystick bool
}

// Event is one (type, code, value) triple tagged with the sub-device it
// originated from, per the data model: type is EV_KEY/EV_REL/EV_ABS/
// EV_SYN/EV_MSC/EV_FF, code identifies the key or axis, and value
// carries press state, relative delta, or absolute position depending
// on type. Origin is the hash of the sub-device that produced it.
type Event struct {
	Type   InputEvent
	Code   InputCode
	Value  int32
	Origin uint64
}

// evKey mirrors linux/input.EV_KEY without importing the linux-only
// package (which carries a go:build linux tag); Event itself must stay
// buildable on every platform the model/macro packages are tested on.
const evKey InputEvent = 0x01

// IsKeyPress reports whether this is an EV_KEY event in the pressed or
// held state (value 1 or 2).
func (e Event) IsKeyPress() bool {
	return e.Type == evKey && e.Value != 0
}

// IsKeyRelease reports whether this is an EV_KEY event in the released
// state (value 0).
func (e Event) IsKeyRelease() bool {
	return e.Type == evKey && e.Value == 0
}
