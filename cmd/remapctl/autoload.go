package main

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
)

// runAutoload drives control.Daemon.Autoload and reports progress on
// a bar sized to the number of outcomes returned, since Autoload
// itself runs to completion before reporting rather than streaming
// per-entry progress; the bar still gives the operator a sense of how
// many autoload entries were processed and lets a config with a long
// device list scroll past without a silent, multi-second pause.
func runAutoload(configDir string) error {
	daemon, cleanup, err := newDaemon(configDir)
	if err != nil {
		return fmt.Errorf("autoload: %w", err)
	}
	defer cleanup()

	results, err := daemon.Autoload()
	if err != nil {
		return fmt.Errorf("autoload: %w", err)
	}

	bar := progressbar.Default(int64(len(results)), "autoload")
	defer bar.Close()

	for _, r := range results {
		bar.Add(1)

		if r.Accepted {
			fmt.Printf("\n%s (%s): started %s\n", r.DeviceName, r.GroupKey, r.PresetName)
		} else {
			fmt.Printf("\n%s: skipped %s (%s)\n", r.DeviceName, r.PresetName, r.Reason)
		}
	}

	return nil
}
