// Package app assembles a keypad from a board HAL and drives its loop.
package app

import (
	"github.com/marf41/3keys-1knob/hal"
	"github.com/marf41/3keys-1knob/pad"
)

// New boots a keypad on the given board and returns its per-tick step
// function. The bootloader interlock surfaces as pad.ErrBootloader.
func New(h hal.HAL) (func() error, error) {
	p := pad.New(h)
	if err := p.Boot(); err != nil {
		return nil, err
	}
	return p.Tick, nil
}

// Run boots the keypad and steps it at the loop cadence (firmware
// entrypoint). It never returns: terminal conditions halt in place and the
// board restarts through the bootloader or the watchdog.
func Run(h hal.HAL) {
	defer haltOnPanic(h)

	bootTrace(h, "hal ready")
	step, err := New(h)
	if err != nil {
		halt(h, err)
	}
	bootTrace(h, "keypad booted")

	for {
		if err := step(); err != nil {
			halt(h, err)
		}
		h.System().DelayMillis(pad.TickMillis)
	}
}
