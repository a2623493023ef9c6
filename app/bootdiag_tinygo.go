//go:build tinygo && bootdebug

package app

import "github.com/marf41/3keys-1knob/hal"

// bootTrace marks early boot progress on the UART logger. USB HID only
// enumerates after boot finishes, so this is the one channel that can show
// where a bricked board got stuck. Built in only with the bootdebug tag.
func bootTrace(h hal.HAL, msg string) {
	if l := h.Logger(); l != nil {
		l.WriteLineString("boot: " + msg)
	}
}
