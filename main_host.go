//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/marf41/3keys-1knob/app"
	"github.com/marf41/3keys-1knob/hal"
	"github.com/marf41/3keys-1knob/pad"
)

func main() {
	var (
		eeprom   = flag.String("eeprom", "", "Keymap image to load (overrides PAD_EEPROM_PATH).")
		headless = flag.Bool("headless", false, "Run without a window.")
		cfg      hal.HeadlessConfig
	)
	flag.IntVar(&cfg.Hz, "hz", 200, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Parse()

	h := hal.New()
	if *eeprom != "" {
		if err := h.LoadEEPROM(*eeprom); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	step, err := app.New(h)
	if err != nil {
		exit(err)
	}

	if *headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, h, step, cfg)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	} else {
		err = hal.RunWindow(h, step)
	}
	exit(err)
}

// exit maps the simulated firmware's terminal conditions onto process
// exits: bootloader entry is what the hardware chords are for, so it
// leaves with status 0.
func exit(err error) {
	if err == nil {
		os.Exit(0)
	}
	if errors.Is(err, pad.ErrBootloader) {
		fmt.Println("bootloader entry requested")
		os.Exit(0)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
