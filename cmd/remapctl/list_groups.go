package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"
)

// runListGroups prints every currently-present device group as an
// aligned table: group key, human name, sub-device count. Device
// names come from arbitrary keyboard/mouse firmware and are not
// guaranteed single-width, so the NAME column is padded by
// go-runewidth's display width rather than byte or rune count, the
// way a terminal actually lays the glyphs out.
func runListGroups(configDir string) error {
	daemon, cleanup, err := newDaemon(configDir)
	if err != nil {
		return fmt.Errorf("list-groups: %w", err)
	}
	defer cleanup()

	groups := daemon.ListGroups()

	nameWidth := runewidth.StringWidth("NAME")
	for _, g := range groups {
		if w := runewidth.StringWidth(g.HumanName); w > nameWidth {
			nameWidth = w
		}
	}

	fmt.Printf("GROUP KEY         %s  SUB-DEVICES\n", runewidth.FillRight("NAME", nameWidth))

	for _, g := range groups {
		fmt.Printf("%-16s  %s  %d\n", g.GroupKey, runewidth.FillRight(g.HumanName, nameWidth), len(g.SubDevicePaths))
	}

	return nil
}
