//go:build linux

package uinput

import (
	"encoding/binary"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/inputremapd/inputremapd/linux/ioctl"
)

// AbsAxis declares one ABS_* capability and the range the virtual
// device should advertise for it.
type AbsAxis struct {
	Code       uint16
	Min, Max   int32
	Fuzz, Flat int32
}

// Capabilities lists the event codes one virtual device advertises,
// computed once at engine startup.
type Capabilities struct {
	Keys []uint16
	Rels []uint16
	Abs  []AbsAxis
}

// Device is one named virtual uinput sink. Concurrent writers are
// serialized by mu, since several injections may share the same
// virtual output and their writes must not interleave mid-event.
type Device struct {
	mu   sync.Mutex
	file *os.File
}

// Open creates a virtual input device named name with the given
// capabilities. It enables every requested event code via
// UI_SET_*BIT, configures ABS ranges via UI_ABS_SETUP, then issues
// UI_DEV_SETUP and UI_DEV_CREATE. The device node appears under
// /dev/input once this returns.
func Open(name string, caps Capabilities) (*Device, error) {
	var (
		file *os.File
		dev  *Device
		err  error
	)

	file, err = os.OpenFile("/dev/uinput", os.O_WRONLY|os.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("uinput.Open: %w", err)
	}

	dev = &Device{file: file}

	err = dev.configure(name, caps)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("uinput.Open: %w", err)
	}

	return dev, nil
}

func (dev *Device) configure(name string, caps Capabilities) error {
	var (
		fd  = dev.file.Fd()
		err error
	)

	if len(caps.Keys) > 0 {
		err = ioctl.Any(fd, uiSetEvBit, ptr(int(evKey)))
		if err != nil {
			return fmt.Errorf("EV_KEY: %w", err)
		}

		for _, code := range caps.Keys {
			err = ioctl.Any(fd, uiSetKeyBit, ptr(int(code)))
			if err != nil {
				return fmt.Errorf("KEY/BTN %d: %w", code, err)
			}
		}
	}

	if len(caps.Rels) > 0 {
		err = ioctl.Any(fd, uiSetEvBit, ptr(int(evRel)))
		if err != nil {
			return fmt.Errorf("EV_REL: %w", err)
		}

		for _, code := range caps.Rels {
			err = ioctl.Any(fd, uiSetRelBit, ptr(int(code)))
			if err != nil {
				return fmt.Errorf("REL %d: %w", code, err)
			}
		}
	}

	if len(caps.Abs) > 0 {
		err = ioctl.Any(fd, uiSetEvBit, ptr(int(evAbs)))
		if err != nil {
			return fmt.Errorf("EV_ABS: %w", err)
		}

		for _, axis := range caps.Abs {
			err = ioctl.Any(fd, uiSetAbsBit, ptr(int(axis.Code)))
			if err != nil {
				return fmt.Errorf("ABS %d: %w", axis.Code, err)
			}

			err = ioctl.Any(fd, uiAbsSetup, &absSetup{
				Code: axis.Code,
				Abs: absInfo{
					Minimum: axis.Min,
					Maximum: axis.Max,
					Fuzz:    axis.Fuzz,
					Flat:    axis.Flat,
				},
			})
			if err != nil {
				return fmt.Errorf("ABS_SETUP %d: %w", axis.Code, err)
			}
		}
	}

	var s setup

	s.ID = devID{Bustype: busVirtual, Vendor: 0x1d6b, Product: 0x0101, Version: 1}
	copy(s.Name[:], name)

	err = ioctl.Any(fd, uiDevSetup, &s)
	if err != nil {
		return fmt.Errorf("DEV_SETUP: %w", err)
	}

	err = ioctl.Any[int](fd, uiDevCreate, nil)
	if err != nil {
		return fmt.Errorf("DEV_CREATE: %w", err)
	}

	time.Sleep(20 * time.Millisecond)

	return nil
}

// Write emits one (type, code, value) event followed by a SYN_REPORT.
// A single Write call is one atomic emission under the device's lock;
// callers needing a batch that must not interleave with another
// writer's events should use WriteBatch instead.
func (dev *Device) Write(evType, code uint16, value int32) error {
	dev.mu.Lock()
	defer dev.mu.Unlock()

	return dev.writeLocked(evType, code, value)
}

// Emission is one (type, code, value) triple queued for WriteBatch.
type Emission struct {
	Type, Code uint16
	Value      int32
}

// WriteBatch emits a sequence of Emissions under a single lock
// acquisition, each followed by its own SYN_REPORT.
func (dev *Device) WriteBatch(events []Emission) error {
	dev.mu.Lock()
	defer dev.mu.Unlock()

	for _, ev := range events {
		err := dev.writeLocked(ev.Type, ev.Code, ev.Value)
		if err != nil {
			return err
		}
	}

	return nil
}

func (dev *Device) writeLocked(evType, code uint16, value int32) error {
	var (
		now = time.Now()
		buf [24]byte
	)

	encode(&buf, wireEvent{
		Sec:   uint64(now.Unix()),
		Usec:  uint64(now.Nanosecond() / 1000),
		Type:  evType,
		Code:  code,
		Value: value,
	})

	if _, err := dev.file.Write(buf[:]); err != nil {
		return fmt.Errorf("Device.Write: %w", err)
	}

	encode(&buf, wireEvent{Sec: uint64(now.Unix()), Usec: uint64(now.Nanosecond() / 1000), Type: evSyn, Code: synReport})

	if _, err := dev.file.Write(buf[:]); err != nil {
		return fmt.Errorf("Device.Write: sync: %w", err)
	}

	return nil
}

func encode(buf *[24]byte, ev wireEvent) {
	binary.LittleEndian.PutUint64(buf[0:8], ev.Sec)
	binary.LittleEndian.PutUint64(buf[8:16], ev.Usec)
	binary.LittleEndian.PutUint16(buf[16:18], ev.Type)
	binary.LittleEndian.PutUint16(buf[18:20], ev.Code)
	binary.LittleEndian.PutUint32(buf[20:24], uint32(ev.Value))
}

// Close destroys the virtual device and closes the uinput handle.
func (dev *Device) Close() error {
	dev.mu.Lock()
	defer dev.mu.Unlock()

	ioctl.Any[int](dev.file.Fd(), uiDevDestroy, nil)

	if err := dev.file.Close(); err != nil {
		return fmt.Errorf("Device.Close: %w", err)
	}

	return nil
}

const (
	evKey     = 0x01
	evRel     = 0x02
	evAbs     = 0x03
	evSyn     = 0x00
	synReport = 0
)

func ptr(v int) *int {
	return &v
}
