package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
	"github.com/inputremapd/inputremapd"
	"github.com/inputremapd/inputremapd/producer"
)

// runWatch grabs every sub-device of a group and prints its raw event
// stream until stdin delivers 'q' or Ctrl-C. It puts stdin into raw
// mode so a single keystroke ends the session without waiting for
// Enter, which makes restoring the previous terminal state on every
// exit path (including a producer read error) mandatory, not
// optional.
func runWatch(configDir string, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("watch: usage: remapctl watch <group-key>")
	}

	groupKey := args[0]

	daemon, cleanup, err := newDaemon(configDir)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer cleanup()

	paths, err := daemon.Inventory.Resolve(groupKey)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	fd := int(os.Stdin.Fd())

	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("watch: %w", err)
		}

		defer term.Restore(fd, state)
	}

	esc := string(byte(ansi.ESC))

	fmt.Print(esc + "[?25l")
	defer fmt.Print(esc + "[?25h")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	events := make(chan inputremapd.Event, 64)

	var producers []*producer.Producer

	for _, path := range paths {
		p, err := producer.New(path, events, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "watch: %s: %v\r\n", path, err)
			continue
		}

		producers = append(producers, p)

		go p.Run(ctx)
	}

	defer func() {
		for _, p := range producers {
			p.Close()
		}
	}()

	go watchQuitKey(ctx, cancel, os.Stdin)

	fmt.Printf("watching %s, press q to quit\r\n", groupKey)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			printEvent(ev)
		}
	}
}

// watchQuitKey reads single raw bytes from in and cancels on 'q' or
// Ctrl-C (0x03), which a raw terminal otherwise would not deliver as a
// signal.
func watchQuitKey(ctx context.Context, cancel context.CancelFunc, in *os.File) {
	buf := make([]byte, 1)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		n, err := in.Read(buf)
		if err != nil || n == 0 {
			cancel()
			return
		}

		if buf[0] == 'q' || buf[0] == 0x03 {
			cancel()
			return
		}
	}
}

// printEvent renders one event, erasing the line first (CSI 2K) so a
// fast stream of ABS samples doesn't leave partial lines from a
// previous, longer render behind it.
func printEvent(ev inputremapd.Event) {
	eraseLine := string(byte(ansi.ESC)) + "[2K"

	fmt.Printf("%stype=%d code=%d value=%d origin=%x\r\n", eraseLine, ev.Type, ev.Code, ev.Value, ev.Origin)
}
