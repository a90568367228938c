// Package device implements the Device Inventory: it groups the raw
// /dev/input/eventN nodes evdev exposes into stable device groups, one
// per physical piece of hardware, and lets the rest of the engine
// refer to a group by a short, reconnect-stable key instead of a node
// path that the kernel is free to renumber.
//
//go:build linux

package device

import (
	"errors"
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
	"sync"

	"github.com/inputremapd/inputremapd"
	"github.com/inputremapd/inputremapd/linux/input"
)

// Group is one physical device: every sub-device node the kernel
// exposes for it, merged into one capability summary.
type Group struct {
	// Key is a stable identifier derived from the device's product
	// identity, independent of which eventN number the kernel assigned
	// it this boot.
	Key string

	// Name is the device's human-readable name, as reported by its
	// first sub-device.
	Name string

	// Paths lists every /dev/input/eventN node belonging to this
	// group, sorted for deterministic iteration.
	Paths []string

	// Capabilities is the union of every sub-device's feature set.
	Capabilities inputremapd.Capabilities
}

// Inventory is the set of device groups currently present on the
// system. It is rebuilt wholesale by Scan; Resolve and ListGroups read
// a point-in-time snapshot.
type Inventory struct {
	mu     sync.RWMutex
	groups map[string]*Group
}

// Scan enumerates every /dev/input/eventN node, opens each one just
// long enough to read its identity and capabilities, and groups them
// into an Inventory. A device that fails to open (permission denied,
// vanished between glob and open) is skipped rather than failing the
// whole scan, since sibling nodes of unrelated devices must not be
// blocked by one bad node.
func Scan() (*Inventory, error) {
	var (
		devices []*input.Device
		groups  = make(map[string]*Group)
		err     error
	)

	devices, err = input.Devices()
	if err != nil {
		return nil, fmt.Errorf("device.Scan: %w", err)
	}

	defer func() {
		for _, dev := range devices {
			dev.Close()
		}
	}()

	for _, dev := range devices {
		key, name, caps, err := describe(dev)
		if err != nil {
			continue
		}

		group, ok := groups[key]
		if !ok {
			group = &Group{Key: key, Name: name}
			groups[key] = group
		}

		group.Paths = append(group.Paths, dev.Path())
		group.Capabilities = mergeCapabilities(group.Capabilities, caps)
	}

	for _, group := range groups {
		sort.Strings(group.Paths)
	}

	return &Inventory{groups: groups}, nil
}

// describe reads the identity, physical topology, and capability set
// of one sub-device and computes the group key it belongs to.
func describe(dev *input.Device) (key, name string, caps inputremapd.Capabilities, err error) {
	name, err = dev.Name()
	if err != nil {
		return "", "", caps, fmt.Errorf("device.describe: %w", err)
	}

	id, err := dev.ID()
	if err != nil {
		return "", "", caps, fmt.Errorf("device.describe: %w", err)
	}

	phys, err := dev.Phys()
	if err != nil {
		// Not every device exposes a phys string (some virtual
		// devices omit it); fall back to identity alone rather than
		// failing the scan over a cosmetic tie-breaker.
		phys = ""
	}

	key = groupKey(name, id, phys)

	caps, err = capabilitiesOf(dev)
	if err != nil {
		return "", "", caps, fmt.Errorf("device.describe: %w", err)
	}

	return key, name, caps, nil
}

// groupKey hashes the device's product identity and physical port
// path (with the trailing "/inputN" component stripped, since that's
// what differs between a keyboard's key interface and its LED/consumer
// interface) into a stable string. Two otherwise-identical devices
// plugged into different ports get different keys because their phys
// strings differ upstream of that trailing component.
func groupKey(name, id, phys string) string {
	var (
		h  = fnv.New64a()
		sb strings.Builder
	)

	if slash := strings.LastIndex(phys, "/"); slash >= 0 {
		phys = phys[:slash]
	}

	sb.WriteString(name)
	sb.WriteByte('\x00')
	sb.WriteString(id)
	sb.WriteByte('\x00')
	sb.WriteString(phys)

	h.Write([]byte(sb.String()))

	return fmt.Sprintf("%016x", h.Sum64())
}

func capabilitiesOf(dev *input.Device) (inputremapd.Capabilities, error) {
	var (
		caps   inputremapd.Capabilities
		events []inputremapd.InputEvent
		err    error
	)

	events, err = dev.Events()
	if err != nil {
		return caps, fmt.Errorf("capabilitiesOf: %w", err)
	}

	for _, ev := range events {
		switch ev {
		case input.EV_ABS:
			caps.HasAbsoluteAxes = true
		case input.EV_REL:
			caps.HasRelativeAxes = true
		case input.EV_KEY:
			caps.HasButtons = true
		}
	}

	caps.IsJoystick = caps.HasAbsoluteAxes && caps.HasButtons

	return caps, nil
}

func mergeCapabilities(a, b inputremapd.Capabilities) inputremapd.Capabilities {
	a.HasAbsoluteAxes = a.HasAbsoluteAxes || b.HasAbsoluteAxes
	a.HasRelativeAxes = a.HasRelativeAxes || b.HasRelativeAxes
	a.HasButtons = a.HasButtons || b.HasButtons
	a.IsJoystick = a.HasAbsoluteAxes && a.HasButtons

	return a
}

// ListGroups returns every known device group, sorted by Key for
// deterministic output.
func (inv *Inventory) ListGroups() []Group {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	groups := make([]Group, 0, len(inv.groups))
	for _, group := range inv.groups {
		groups = append(groups, *group)
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })

	return groups
}

// ErrGroupNotFound is returned by Resolve when groupKey names no
// currently-present device group; the Injection Supervisor maps this
// to its own NoDevicesFound failure.
var ErrGroupNotFound = errors.New("device: group not found")

// Resolve returns the sub-device paths belonging to groupKey.
func (inv *Inventory) Resolve(groupKey string) ([]string, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	group, ok := inv.groups[groupKey]
	if !ok {
		return nil, fmt.Errorf("device.Resolve: %q: %w", groupKey, ErrGroupNotFound)
	}

	paths := make([]string, len(group.Paths))
	copy(paths, group.Paths)

	return paths, nil
}

// Diff describes how an Inventory changed between two scans.
type Diff struct {
	Added   []string
	Removed []string
}

// Rescan replaces the Inventory's contents with a fresh scan and
// reports which group keys appeared or disappeared, so the Injection
// Supervisor can terminate producers for a group that vanished
// mid-run without tearing down unrelated injections.
func (inv *Inventory) Rescan() (Diff, error) {
	next, err := Scan()
	if err != nil {
		return Diff{}, fmt.Errorf("Inventory.Rescan: %w", err)
	}

	inv.mu.Lock()
	prev := inv.groups
	inv.groups = next.groups
	inv.mu.Unlock()

	var diff Diff

	for key := range next.groups {
		if _, ok := prev[key]; !ok {
			diff.Added = append(diff.Added, key)
		}
	}

	for key := range prev {
		if _, ok := next.groups[key]; !ok {
			diff.Removed = append(diff.Removed, key)
		}
	}

	sort.Strings(diff.Added)
	sort.Strings(diff.Removed)

	return diff, nil
}
