package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/inputremapd/inputremapd/config"
	rcontext "github.com/inputremapd/inputremapd/context"
	"github.com/inputremapd/inputremapd/control"
	"github.com/inputremapd/inputremapd/device"
	"github.com/inputremapd/inputremapd/linux/uinput"
	"github.com/inputremapd/inputremapd/supervisor"
	"github.com/inputremapd/inputremapd/symbol"
	"github.com/inputremapd/inputremapd/xdg"
)

// cliConfig holds the environment §6 names: a standard user config
// directory overridable by a flag, and a debug-verbosity activation
// flag.
type cliConfig struct {
	configDir string
	debug     bool
}

func (c cliConfig) logLevel() slog.Level {
	if c.debug {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

func parseFlags() cliConfig {
	var c cliConfig

	flag.StringVar(&c.configDir, "config-dir", defaultConfigDir(), "configuration directory (config.json, presets/, xmodmap.json)")
	flag.BoolVar(&c.debug, "debug", false, "enable debug verbosity")
	flag.Parse()

	return c
}

// defaultConfigDir resolves the standard user config directory via
// xdg.ConfigFile's own XDG_CONFIG_HOME/HOME fallback rule: it opens
// inputremapd/config.json under that base (xdg.ConfigFile creates the
// file and its directories when missing), closes it, and takes that
// path's directory.
func defaultConfigDir() string {
	f, err := xdg.ConfigFile(filepath.Join("inputremapd", "config.json"))
	if err != nil {
		return "."
	}

	defer f.Close()

	return filepath.Dir(f.Name())
}

// newDaemon performs every pre-flight step: scanning evdev devices and
// opening the uinput virtual output registry. Either failing is a
// pre-flight failure (exit code 11); cleanup releases the registry.
func newDaemon(configDir string, log *slog.Logger) (*control.Daemon, func(), error) {
	inv, err := device.Scan()
	if err != nil {
		return nil, nil, fmt.Errorf("device scan: %w", err)
	}

	registry, err := uinput.OpenRegistry()
	if err != nil {
		return nil, nil, fmt.Errorf("uinput registry: %w", err)
	}

	symbols := symbol.NewTable()

	if aliases, err := config.LoadXmodmap(configDir); err != nil {
		log.Warn("xmodmap not loaded", "config_dir", configDir, "err", err)
	} else {
		symbols.Load(aliases)
	}

	store := rcontext.NewStore()
	sup := supervisor.New(inv, registry, symbols, store, log)
	daemon := control.NewDaemon(sup, inv, symbols, configDir)

	return daemon, func() { registry.Close() }, nil
}

// waitForSignal blocks until SIGINT or SIGTERM.
func waitForSignal() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}
