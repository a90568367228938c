package main

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/inputremapd/inputremapd/config"
	rcontext "github.com/inputremapd/inputremapd/context"
	"github.com/inputremapd/inputremapd/control"
	"github.com/inputremapd/inputremapd/device"
	"github.com/inputremapd/inputremapd/linux/uinput"
	"github.com/inputremapd/inputremapd/supervisor"
	"github.com/inputremapd/inputremapd/symbol"
	"github.com/inputremapd/inputremapd/xdg"
)

// defaultConfigDir mirrors remapd's own resolution so both binaries
// agree on where config.json lives without either one hard-coding a
// path.
func defaultConfigDir() string {
	f, err := xdg.ConfigFile(filepath.Join("inputremapd", "config.json"))
	if err != nil {
		return "."
	}

	defer f.Close()

	return filepath.Dir(f.Name())
}

// newDaemon builds a control.Daemon the same way remapd does, except
// quietly: subcommands that only read presets (dump) don't need a live
// uinput registry, so a registry open failure is tolerated and
// degrades to a Daemon that can list groups and load presets but not
// start injections.
func newDaemon(configDir string) (*control.Daemon, func(), error) {
	inv, err := device.Scan()
	if err != nil {
		return nil, nil, err
	}

	symbols := symbol.NewTable()

	if aliases, err := config.LoadXmodmap(configDir); err == nil {
		symbols.Load(aliases)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	registry, err := uinput.OpenRegistry()
	if err != nil {
		store := rcontext.NewStore()
		sup := supervisor.New(inv, nil, symbols, store, log)

		return control.NewDaemon(sup, inv, symbols, configDir), func() {}, nil
	}

	store := rcontext.NewStore()
	sup := supervisor.New(inv, registry, symbols, store, log)

	return control.NewDaemon(sup, inv, symbols, configDir), func() { registry.Close() }, nil
}
