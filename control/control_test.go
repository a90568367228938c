//go:build linux

package control

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inputremapd/inputremapd/device"
	"github.com/inputremapd/inputremapd/supervisor"
)

func TestAutoloadReportsDeviceNotPresentWithoutStopping(t *testing.T) {
	dir := t.TempDir()

	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatalf("MkdirAll = %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{
		"autoload": {"Zeta Keyboard": "default", "Alpha Mouse": "default"}
	}`), 0o600); err != nil {
		t.Fatalf("WriteFile = %v", err)
	}

	d := NewDaemon(supervisor.New(nil, nil, nil, nil, nil), &device.Inventory{}, nil, dir)

	results, err := d.Autoload()
	if err != nil {
		t.Fatalf("Autoload = %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}

	// Sorted by device name: "Alpha Mouse" before "Zeta Keyboard".
	if results[0].DeviceName != "Alpha Mouse" || results[1].DeviceName != "Zeta Keyboard" {
		t.Fatalf("order = %q, %q; want Alpha Mouse, Zeta Keyboard", results[0].DeviceName, results[1].DeviceName)
	}

	for _, r := range results {
		if r.Accepted {
			t.Fatalf("result %+v Accepted = true, want false (no device present)", r)
		}

		if r.Reason != "device not present" {
			t.Fatalf("Reason = %q, want %q", r.Reason, "device not present")
		}
	}
}

func TestConfigDirRoundTripsThroughSetConfigDir(t *testing.T) {
	d := NewDaemon(nil, &device.Inventory{}, nil, "/etc/inputremapd")

	if got := d.ConfigDir(); got != "/etc/inputremapd" {
		t.Fatalf("ConfigDir = %q, want /etc/inputremapd", got)
	}

	d.SetConfigDir("/tmp/other")

	if got := d.ConfigDir(); got != "/tmp/other" {
		t.Fatalf("ConfigDir = %q, want /tmp/other", got)
	}
}

func TestHelloReportsReady(t *testing.T) {
	d := NewDaemon(nil, &device.Inventory{}, nil, "")

	if !d.Hello().Ready {
		t.Fatal("Hello().Ready = false, want true")
	}
}
