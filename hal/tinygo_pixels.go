//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"
	"runtime/interrupt"

	"tinygo.org/x/drivers/ws2812"
)

// strip drives the WS2812 indicators. Set stages into a local frame; Latch
// writes the whole frame with interrupts masked so the bitstream timing
// holds.
type strip struct {
	dev   ws2812.Device
	frame [NumPixels]color.RGBA
}

func newStrip(pin machine.Pin) *strip {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &strip{dev: ws2812.NewWS2812(pin)}
}

func (s *strip) Set(i int, r, g, b uint8) {
	if i < 0 || i >= NumPixels {
		return
	}
	s.frame[i] = color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

func (s *strip) Latch() {
	mask := interrupt.Disable()
	_ = s.dev.WriteColors(s.frame[:])
	interrupt.Restore(mask)
}
