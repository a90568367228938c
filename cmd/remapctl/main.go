// Command remapctl is the local control CLI: it drives the same
// config/control/supervisor packages remapd runs on, in-process,
// since the IPC transport that would let it talk to a separately
// running remapd is out of scope here (spec.md §1). Subcommands:
// list-groups, dump, autoload, watch.
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		usage()
		return 2
	}

	sub := args[0]
	rest := args[1:]

	var configDir string

	cmdFlags := flag.NewFlagSet(sub, flag.ContinueOnError)
	cmdFlags.StringVar(&configDir, "config-dir", "", "configuration directory (defaults to the standard user config directory)")

	if err := cmdFlags.Parse(rest); err != nil {
		return 2
	}

	dir := configDir
	if dir == "" {
		dir = defaultConfigDir()
	}

	var err error

	switch sub {
	case "list-groups":
		err = runListGroups(dir)
	case "dump":
		err = runDump(dir, cmdFlags.Args())
	case "autoload":
		err = runAutoload(dir)
	case "watch":
		err = runWatch(dir, cmdFlags.Args())
	default:
		usage()
		return 2
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "remapctl:", err)
		return 1
	}

	return 0
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: remapctl <list-groups|dump|autoload|watch> [-config-dir dir] [args]")
}
