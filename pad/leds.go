package pad

import (
	"github.com/marf41/3keys-1knob/hal"
	"github.com/marf41/3keys-1knob/keymap"
)

type rgb struct{ r, g, b uint8 }

// appearance owns the indicator colors and their animation. Colors are
// mutated between renders; render pushes the whole frame in one latched
// batch so the USB interrupt never sees a torn update.
type appearance struct {
	px  hal.Pixels
	neo [hal.NumPixels]rgb
}

func (a *appearance) set(i int, c rgb) {
	if i < 0 || i >= len(a.neo) {
		return
	}
	a.neo[i] = c
}

func (a *appearance) setAll(c rgb) {
	for i := range a.neo {
		a.neo[i] = c
	}
}

func (a *appearance) render() {
	for i, c := range a.neo {
		a.px.Set(i, c.r, c.g, c.b)
	}
	a.px.Latch()
}

// fade decays every indicator toward the layer background, one step per
// channel per tick, saturating at the background floor.
func (a *appearance) fade(bg, step keymap.RGB) {
	for i := range a.neo {
		a.neo[i].r = fadeChannel(a.neo[i].r, step.R, bg.R)
		a.neo[i].g = fadeChannel(a.neo[i].g, step.G, bg.G)
		a.neo[i].b = fadeChannel(a.neo[i].b, step.B, bg.B)
	}
}

// fadeChannel moves one channel toward floor by at most step. Values at or
// below the floor are lifted to it; the subtraction never underflows.
func fadeChannel(from, step, floor uint8) uint8 {
	if from <= floor {
		return floor
	}
	if from-floor <= step {
		return floor
	}
	return from - step
}
