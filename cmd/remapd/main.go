// Command remapd is the injection daemon: it scans the evdev devices
// present on the system, opens the virtual output registry, autoloads
// whatever config.json configures, and then keeps those injections
// running until signalled.
//
// Exit codes: 0 normal, 11 a pre-flight step failed (device scan or
// uinput registry open), non-zero otherwise with the reason logged.
package main

import (
	"log/slog"
	"os"
)

const (
	exitOK        = 0
	exitPreflight = 11
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := parseFlags()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.logLevel()}))

	daemon, cleanup, err := newDaemon(cfg.configDir, log)
	if err != nil {
		log.Error("pre-flight failed", "err", err)
		return exitPreflight
	}
	defer cleanup()

	results, err := daemon.Autoload()
	if err != nil {
		log.Warn("autoload config not read", "config_dir", cfg.configDir, "err", err)
	}

	for _, r := range results {
		if r.Accepted {
			log.Info("autoload started injection", "device", r.DeviceName, "preset", r.PresetName, "group_key", r.GroupKey)
		} else {
			log.Warn("autoload rejected", "device", r.DeviceName, "preset", r.PresetName, "reason", r.Reason)
		}
	}

	waitForSignal()
	log.Info("signalled, shutting down")

	return exitOK
}
