// Package uinput implements the userspace side of the Linux uinput.h
// interface: creating virtual input devices and writing synthesized
// events to them.
//
//go:build linux

package uinput

import "github.com/inputremapd/inputremapd/linux/ioctl"

const (
	// maxNameSize is the fixed size of the Name field in [setup],
	// matching UINPUT_MAX_NAME_SIZE.
	maxNameSize = 80

	// busVirtual is the synthetic bus type used for devices this
	// package creates; there is no physical bus involved.
	busVirtual = 0x06
)

var (
	// uiDevCreate instructs the kernel to instantiate the device
	// described by the preceding UI_DEV_SETUP/UI_SET_*BIT calls.
	uiDevCreate = ioctl.IO('U', 1)

	// uiDevDestroy tears down a previously created virtual device.
	uiDevDestroy = ioctl.IO('U', 2)

	// uiSetEvBit enables one event type (EV_KEY, EV_REL, EV_ABS, ...)
	// on the device being configured.
	uiSetEvBit = ioctl.IOW('U', 100, int(0))

	// uiSetKeyBit enables one KEY_*/BTN_* code.
	uiSetKeyBit = ioctl.IOW('U', 101, int(0))

	// uiSetRelBit enables one REL_* code.
	uiSetRelBit = ioctl.IOW('U', 102, int(0))

	// uiSetAbsBit enables one ABS_* code.
	uiSetAbsBit = ioctl.IOW('U', 103, int(0))

	// uiDevSetup configures the device identity and name.
	uiDevSetup = ioctl.IOW('U', 3, setup{})

	// uiAbsSetup configures the [min, max] range (and other AbsInfo
	// fields) for one ABS axis; must precede UI_DEV_CREATE.
	uiAbsSetup = ioctl.IOW('U', 4, absSetup{})
)

// devID mirrors struct input_id as embedded in struct uinput_setup.
type devID struct {
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

// setup mirrors struct uinput_setup, the argument to UI_DEV_SETUP.
type setup struct {
	ID          devID
	Name        [maxNameSize]byte
	FFEffectsMax uint32
}

// absSetup mirrors struct uinput_abs_setup, the argument to
// UI_ABS_SETUP.
type absSetup struct {
	Code uint16
	_    [2]byte // struct alignment padding before AbsInfo
	Abs  absInfo
}

// absInfo mirrors struct input_absinfo for the purposes of UI_ABS_SETUP.
type absInfo struct {
	Value      int32
	Minimum    int32
	Maximum    int32
	Fuzz       int32
	Flat       int32
	Resolution int32
}

// wireEvent mirrors struct input_event on 64-bit Linux: two 8-byte
// timeval fields followed by type/code/value, 24 bytes total with no
// trailing padding. Device.Write stamps Sec/Usec with wall-clock time
// itself rather than relying on the kernel to fill them in.
type wireEvent struct {
	Sec   uint64
	Usec  uint64
	Type  uint16
	Code  uint16
	Value int32
}
