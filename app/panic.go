package app

import (
	"errors"
	"fmt"

	"github.com/marf41/3keys-1knob/hal"
	"github.com/marf41/3keys-1knob/pad"
)

// halt parks the loop after a terminal condition. Bootloader entry is the
// expected exit; on hardware EnterBootloader has already rebooted the chip
// before we get here. Anything else is a fault: log it, paint the
// indicators red and let the unfed watchdog restart the board.
func halt(h hal.HAL, err error) {
	if errors.Is(err, pad.ErrBootloader) {
		h.Logger().WriteLineString("app: halted for bootloader")
		select {}
	}
	h.Logger().WriteLineString("app: fault: " + err.Error())
	showFault(h)
	select {}
}

// haltOnPanic turns a panic anywhere in the loop into the same red fault
// indication as an error halt.
func haltOnPanic(h hal.HAL) {
	v := recover()
	if v == nil {
		return
	}
	h.Logger().WriteLineString(fmt.Sprintf("app: panic: %v", v))
	showFault(h)
	select {}
}

func showFault(h hal.HAL) {
	px := h.Pixels()
	for i := 0; i < hal.NumPixels; i++ {
		px.Set(i, 255, 0, 0)
	}
	px.Latch()
}
