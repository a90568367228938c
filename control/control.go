// Package control implements the operations the control surface names
// in the specification — Hello, ListGroups, StartInjection,
// StopInjection, Autoload, SetConfigDir — as plain Go methods over the
// engine's in-process singletons. The IPC transport that would carry
// these calls between a separate remapctl process and a running
// remapd is out of scope; Daemon is the interface a transport would
// wrap, and today's cmd/remapctl calls it directly in-process.
//
//go:build linux

package control

import (
	"sort"
	"sync"

	"github.com/inputremapd/inputremapd/config"
	"github.com/inputremapd/inputremapd/device"
	"github.com/inputremapd/inputremapd/supervisor"
	"github.com/inputremapd/inputremapd/symbol"
)

// Hello is the health-probe response.
type Hello struct {
	Ready bool
}

// GroupInfo is one entry of ListGroups' result.
type GroupInfo struct {
	GroupKey       string
	HumanName      string
	SubDevicePaths []string
}

// StartResult reports whether StartInjection accepted the request.
type StartResult struct {
	Accepted bool
	Reason   string
}

// AutoloadResult reports one config.json autoload entry's outcome.
type AutoloadResult struct {
	DeviceName string
	PresetName string
	GroupKey   string
	Accepted   bool
	Reason     string
}

// Daemon owns the engine-lifetime singletons and the current config
// directory, and implements every control-surface operation over
// them.
type Daemon struct {
	Supervisor *supervisor.Supervisor
	Inventory  *device.Inventory
	Symbols    *symbol.Table

	mu     sync.Mutex
	cfgDir string
}

// NewDaemon returns a Daemon rooted at cfgDir.
func NewDaemon(sup *supervisor.Supervisor, inv *device.Inventory, symbols *symbol.Table, cfgDir string) *Daemon {
	return &Daemon{Supervisor: sup, Inventory: inv, Symbols: symbols, cfgDir: cfgDir}
}

// Hello answers the health probe.
func (d *Daemon) Hello() Hello {
	return Hello{Ready: true}
}

// ConfigDir reports the directory SetConfigDir last set, or the one
// NewDaemon was constructed with.
func (d *Daemon) ConfigDir() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.cfgDir
}

// SetConfigDir changes the directory subsequent StartInjection/
// Autoload calls read presets and config.json from.
func (d *Daemon) SetConfigDir(path string) {
	d.mu.Lock()
	d.cfgDir = path
	d.mu.Unlock()
}

// ListGroups reports every currently-present device group.
func (d *Daemon) ListGroups() []GroupInfo {
	groups := d.Inventory.ListGroups()

	out := make([]GroupInfo, len(groups))
	for i, g := range groups {
		out[i] = GroupInfo{GroupKey: g.Key, HumanName: g.Name, SubDevicePaths: g.Paths}
	}

	return out
}

// StartInjection loads groupKey's named preset from the current config
// directory and starts it. A load failure or a Supervisor.Start
// failure both report as Rejected rather than propagating the
// underlying error, matching the specification's
// {Accepted | Rejected(reason)} response shape.
func (d *Daemon) StartInjection(groupKey, presetName string) StartResult {
	preset, err := config.LoadPreset(d.ConfigDir(), groupKey, presetName, d.Symbols)
	if err != nil {
		return StartResult{Reason: err.Error()}
	}

	preset.GroupKey = groupKey

	if err := d.Supervisor.Start(preset); err != nil {
		return StartResult{Reason: err.Error()}
	}

	return StartResult{Accepted: true}
}

// StopInjection stops groupKey's running injection, if any.
func (d *Daemon) StopInjection(groupKey string) error {
	return d.Supervisor.Stop(groupKey)
}

// Autoload iterates config.json's device-name -> preset-name map in a
// stable order (sorted by device name) and starts each present
// device's injection, reporting every entry's outcome rather than
// stopping at the first failure.
func (d *Daemon) Autoload() ([]AutoloadResult, error) {
	cfg, err := config.LoadConfig(d.ConfigDir())
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(cfg.Autoload))
	for name := range cfg.Autoload {
		names = append(names, name)
	}

	sort.Strings(names)

	groupKeyByName := make(map[string]string, len(names))
	for _, g := range d.Inventory.ListGroups() {
		groupKeyByName[g.Name] = g.Key
	}

	results := make([]AutoloadResult, 0, len(names))

	for _, name := range names {
		presetName := cfg.Autoload[name]

		groupKey, ok := groupKeyByName[name]
		if !ok {
			results = append(results, AutoloadResult{DeviceName: name, PresetName: presetName, Reason: "device not present"})
			continue
		}

		r := d.StartInjection(groupKey, presetName)
		results = append(results, AutoloadResult{
			DeviceName: name,
			PresetName: presetName,
			GroupKey:   groupKey,
			Accepted:   r.Accepted,
			Reason:     r.Reason,
		})
	}

	return results, nil
}
