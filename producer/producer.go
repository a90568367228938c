// Package producer implements one Event Producer per sub-device: it
// grabs a single /dev/input/eventN node exclusively, reads events in
// kernel order, tags each with the sub-device's origin hash, and
// delivers them in order to a single per-injection merge point so the
// Handler Graph sees one total order per injection.
//
//go:build linux

package producer

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"

	"github.com/inputremapd/inputremapd"
	"github.com/inputremapd/inputremapd/linux/input"
)

// originHash derives a stable per-sub-device tag from its node path.
// It only needs to be stable for the lifetime of one injection, so
// hashing the path (rather than the kernel's bus/vendor/product/phys
// identity the Device Inventory uses for grouping) is sufficient and
// keeps this package decoupled from the device package.
func originHash(path string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(path))

	return h.Sum64()
}

// Producer reads one sub-device and delivers tagged events to Out
// until Run's context is cancelled or the device errors out.
type Producer struct {
	dev    *input.Device
	path   string
	origin uint64
	log    *slog.Logger

	Out chan<- inputremapd.Event
}

// New opens and exclusively grabs the device at path. The caller owns
// the returned Producer's lifecycle: Run blocks until ctx is done or
// the device fails, and Close always releases the grab and closes the
// node, even after a Run error.
func New(path string, out chan<- inputremapd.Event, log *slog.Logger) (*Producer, error) {
	dev, err := input.NewDevice(path)
	if err != nil {
		return nil, fmt.Errorf("producer.New: %w", err)
	}

	if err := dev.Grab(true); err != nil {
		dev.Close()
		return nil, fmt.Errorf("producer.New: %w", err)
	}

	return &Producer{
		dev:    dev,
		path:   path,
		origin: originHash(path),
		log:    log,
		Out:    out,
	}, nil
}

// Run reads events until ctx is cancelled or a non-timeout read error
// occurs. SYN and MSC events are tagged and forwarded like any other
// event; the Handler Graph's routing table is responsible for treating
// them as pass-through markers rather than Run itself, since Run has
// no notion of "handler" at all.
func (p *Producer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		ev, err := p.dev.ReadEvent()
		if errors.Is(err, input.ErrPollTimeout) {
			continue
		}

		if err != nil {
			p.log.Error("producer read failed", "path", p.path, "error", err)
			return fmt.Errorf("Producer.Run: %w", err)
		}

		select {
		case p.Out <- inputremapd.Event{Type: ev.Type, Code: ev.Code, Value: ev.Value, Origin: p.origin}:
		case <-ctx.Done():
			return nil
		}
	}
}

// Origin returns this sub-device's origin hash, for matching a
// mapping's InputConfig.OriginHash and for AbsInfo lookups when the
// Handler Graph is built.
func (p *Producer) Origin() uint64 {
	return p.origin
}

// AbsInfo returns the input device's declared [min, max] range for an
// ABS code, used to normalize samples before shaping.
func (p *Producer) AbsInfo(code uint16) (input.AbsInfo, error) {
	return p.dev.AbsInfo(code)
}

// LEDs reports this sub-device's CapsLock/NumLock indicator state,
// satisfying macro.LEDs for whichever sub-device the Supervisor picks
// to answer if_capslock/if_numlock.
func (p *Producer) LEDs() (capsLock, numLock bool, err error) {
	return p.dev.LEDs()
}

// Close releases the device grab and closes the underlying node.
func (p *Producer) Close() error {
	p.dev.Grab(false)

	if err := p.dev.Close(); err != nil {
		return fmt.Errorf("Producer.Close: %w", err)
	}

	return nil
}
