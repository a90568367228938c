//go:build linux

package device

import (
	"testing"

	"github.com/inputremapd/inputremapd"
)

func TestGroupKeyStableAcrossSameIdentity(t *testing.T) {
	a := groupKey("Logitech USB Mouse", "bus 0x3 vendor 0x46d product 0xc52b version 0x111", "usb-0000:00:14.0-1/input0")
	b := groupKey("Logitech USB Mouse", "bus 0x3 vendor 0x46d product 0xc52b version 0x111", "usb-0000:00:14.0-1/input1")

	if a != b {
		t.Fatalf("sub-device nodes of one physical device got different keys: %q vs %q", a, b)
	}
}

func TestGroupKeyDistinguishesSameModelDifferentPort(t *testing.T) {
	a := groupKey("Logitech USB Mouse", "bus 0x3 vendor 0x46d product 0xc52b version 0x111", "usb-0000:00:14.0-1/input0")
	b := groupKey("Logitech USB Mouse", "bus 0x3 vendor 0x46d product 0xc52b version 0x111", "usb-0000:00:14.0-2/input0")

	if a == b {
		t.Fatalf("two identical mice in different ports collapsed to the same key %q", a)
	}
}

func TestGroupKeyMissingPhysStillDistinguishesByIdentity(t *testing.T) {
	a := groupKey("Virtual Keyboard", "bus 0x6 vendor 0x1d6b product 0x101 version 0x1", "")
	b := groupKey("Virtual Mouse", "bus 0x6 vendor 0x1d6b product 0x101 version 0x1", "")

	if a == b {
		t.Fatalf("different device names collapsed to the same key %q", a)
	}
}

func TestMergeCapabilitiesUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b inputremapd.Capabilities
		want inputremapd.Capabilities
	}{
		{
			name: "keys then abs yields joystick",
			a:    inputremapd.Capabilities{HasButtons: true},
			b:    inputremapd.Capabilities{HasAbsoluteAxes: true},
			want: inputremapd.Capabilities{HasButtons: true, HasAbsoluteAxes: true, IsJoystick: true},
		},
		{
			name: "rel only stays a plain pointer",
			a:    inputremapd.Capabilities{HasButtons: true},
			b:    inputremapd.Capabilities{HasRelativeAxes: true},
			want: inputremapd.Capabilities{HasButtons: true, HasRelativeAxes: true},
		},
		{
			name: "disjoint merges without losing either side",
			a:    inputremapd.Capabilities{},
			b:    inputremapd.Capabilities{HasButtons: true},
			want: inputremapd.Capabilities{HasButtons: true},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := mergeCapabilities(test.a, test.b)
			if got != test.want {
				t.Errorf("mergeCapabilities(%+v, %+v) = %+v, want %+v", test.a, test.b, got, test.want)
			}
		})
	}
}

func TestInventoryResolveUnknownGroup(t *testing.T) {
	inv := &Inventory{groups: map[string]*Group{}}

	_, err := inv.Resolve("nonexistent")
	if err == nil {
		t.Fatal("Resolve on an unknown group key returned no error")
	}
}

func TestInventoryListGroupsSortedByKey(t *testing.T) {
	inv := &Inventory{groups: map[string]*Group{
		"b": {Key: "b", Name: "second"},
		"a": {Key: "a", Name: "first"},
	}}

	groups := inv.ListGroups()
	if len(groups) != 2 || groups[0].Key != "a" || groups[1].Key != "b" {
		t.Fatalf("ListGroups() = %+v, want sorted by Key", groups)
	}
}
