//go:build linux

package input

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/inputremapd/inputremapd/linux/ioctl"
	"golang.org/x/sys/unix"
)

// pollTimeout bounds how long ReadEvent blocks before re-checking for
// cancellation. It mirrors the "short poll tick (<=50ms)" the Event
// Producer contract allows between a stop signal and the reader
// actually unblocking.
const pollTimeout = 50 * time.Millisecond

// ErrPollTimeout is returned by ReadEvent when no event arrived within
// pollTimeout. Callers use it to re-check a cancellation signal between
// blocking reads rather than as a genuine failure.
var ErrPollTimeout = errors.New("input: poll timeout")

// Grab requests or releases an exclusive grab on the device via
// EVIOCGRAB. While grabbed, the kernel stops delivering this device's
// events to any other reader, including the host's own input stack.
func (dev *Device) Grab(grab bool) error {
	var (
		arg int32
		err error
	)

	if grab {
		arg = 1
	}

	err = ioctl.Any(dev.fd, EVIOCGRAB(), &arg)
	if err != nil {
		return fmt.Errorf("Device.Grab: %w", err)
	}

	return nil
}

// ReadEvent blocks until one input_event is available, pollTimeout
// elapses (returning [ErrPollTimeout]), or the read fails. Producers
// call this in a loop, checking their cancellation signal on
// [ErrPollTimeout] so a stop request is observed within one tick.
func (dev *Device) ReadEvent() (Event, error) {
	var (
		buf    [24]byte
		pfd    []unix.PollFd
		n      int
		ev     Event
		err    error
	)

	pfd = []unix.PollFd{{Fd: int32(dev.fd), Events: unix.POLLIN}}

	n, err = unix.Poll(pfd, int(pollTimeout.Milliseconds()))
	if err != nil {
		return Event{}, fmt.Errorf("Device.ReadEvent: %w", err)
	}

	if n == 0 {
		return Event{}, ErrPollTimeout
	}

	_, err = dev.file.Read(buf[:])
	if err != nil {
		return Event{}, fmt.Errorf("Device.ReadEvent: %w", err)
	}

	ev.Sec = binary.LittleEndian.Uint64(buf[0:8])
	ev.Usec = binary.LittleEndian.Uint64(buf[8:16])
	ev.Type = binary.LittleEndian.Uint16(buf[16:18])
	ev.Code = binary.LittleEndian.Uint16(buf[18:20])
	ev.Value = int32(binary.LittleEndian.Uint32(buf[20:24]))

	return ev, nil
}

// AbsInfo reads the [min, max] range and jitter parameters of one ABS
// axis via EVIOCGABS.
func (dev *Device) AbsInfo(code uint16) (AbsInfo, error) {
	var (
		info AbsInfo
		err  error
	)

	err = ioctl.Any(dev.fd, EVIOCGABS(uint(code)), &info)
	if err != nil {
		return AbsInfo{}, fmt.Errorf("Device.AbsInfo: %w", err)
	}

	return info, nil
}

// LEDs reports the current state of the CapsLock and NumLock LED
// indicators via EVIOCGLED.
func (dev *Device) LEDs() (capsLock, numLock bool, err error) {
	var buf [(LED_MAX + 7) / 8]byte

	err = ioctl.Any(dev.fd, EVIOCGLED(uint(len(buf))), &buf[0])
	if err != nil {
		return false, false, fmt.Errorf("Device.LEDs: %w", err)
	}

	return TestBit(buf[:], LED_CAPSL), TestBit(buf[:], LED_NUML), nil
}

// Fd exposes the raw file descriptor.
func (dev *Device) Fd() uintptr {
	return dev.fd
}

// Phys returns the device's physical topology string via EVIOCGPHYS,
// e.g. "usb-0000:00:14.0-1/input0". Sub-device nodes produced by one
// piece of hardware share everything up to the trailing "/inputN", so
// this is the signal the Device Inventory uses to tell two otherwise
// identical physical devices apart.
func (dev *Device) Phys() (string, error) {
	var (
		buf []byte
		err error
	)

	buf = make([]byte, 256)

	err = ioctl.Any(dev.fd, EVIOCGPHYS(256), &buf[0])
	if err != nil {
		return "", fmt.Errorf("Device.Phys: %w", err)
	}

	return unix.ByteSliceToString(buf), nil
}
