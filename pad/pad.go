// Package pad implements the decision core of the macro keypad: it turns
// pin levels into resolved chord and rotation events, tracks the active
// layer, dispatches the configured macros over USB HID and drives the
// indicator animation.
//
// Everything runs on one cooperative loop. Boot performs the power-up
// sequence once; Tick advances the whole machine by one fixed-period step.
package pad

import (
	"errors"

	"github.com/marf41/3keys-1knob/hal"
	"github.com/marf41/3keys-1knob/keymap"
)

// ErrBootloader reports that the keypad decided to reboot into the
// bootloader. It is a terminal condition for the run loop, not a failure.
var ErrBootloader = errors.New("pad: bootloader entry")

const (
	// TickMillis is the loop cadence the timing constants below assume.
	TickMillis = 5

	longHoldTicks      = 200 // ~1 s of held ticks
	blinkTicks         = 60  // layer indicator flash duration
	bootloaderWhite    = 127
	warningPhaseMillis = 200
)

// Pad owns the complete runtime state of the keypad between ticks.
type Pad struct {
	logger hal.Logger
	pins   hal.Pins
	mem    hal.DataFlash
	sys    hal.System
	disp   dispatcher
	look   appearance

	m      keymap.Map
	layers layerState

	keys [3]edgeLatch
	sw   edgeLatch
	enc  encoder

	press       uint8 // sticky union of keys seen down this episode
	all         uint8 // consecutive ticks all three keys stayed held
	knob        uint8 // consecutive held switch ticks since the last change
	blink       uint8 // layer indicator ticks remaining
	modeChanged bool  // the current switch hold already acted
}

// New wires a pad to the board. Call Boot before the first Tick.
func New(h hal.HAL) *Pad {
	p := &Pad{
		logger: h.Logger(),
		pins:   h.Pins(),
		mem:    h.DataFlash(),
		sys:    h.System(),
	}
	p.disp = dispatcher{kbd: h.Keyboard(), m: &p.m}
	p.look = appearance{px: h.Pixels()}
	return p
}

// Boot runs the power-up sequence: the key1 bootloader interlock, watchdog
// arming, keymap load, the empty-keymap warning blink and the initial
// indicator colors. It returns ErrBootloader when the interlock fired.
// The interlock samples the raw pin before any configuration byte is read.
func (p *Pad) Boot() error {
	if !p.pins.Read(hal.PinKey1) {
		p.logger.WriteLineString("pad: key1 held at power-up, entering bootloader")
		p.bootloader()
		return ErrBootloader
	}

	p.sys.StartWatchdog()
	p.m = keymap.Load(p.mem)
	p.layers = newLayerState(p.m.MaxLayers)

	l0 := &p.m.Layers[0]
	if l0.Slots[keymap.Key1].Key|l0.Slots[keymap.Key2].Key|l0.Slots[keymap.Key3].Key == 0 {
		p.warnEmptyKeymap()
	}

	p.look.setAll(p.fg())
	return nil
}

// Tick advances the keypad by one loop step. The order mirrors the
// hardware loop: key latching and highlights, chord resolution, the
// all-keys bootloader chord, switch edges, quadrature decode, rotation
// handling, render, fade, blink overlay, watchdog feed.
func (p *Pad) Tick() error {
	var hold uint8
	for i := range p.keys {
		p.keys[i].sample(p.pins.Read(hal.PinKey1 + hal.Pin(i)))
		if p.keys[i].down {
			hold |= 1 << i
			p.press |= 1 << i
			p.look.set(i, p.fg())
		}
	}

	if hold == 0 {
		switch p.press {
		case 1:
			p.disp.dispatch(keymap.Key1, p.layers.active)
		case 2:
			p.disp.dispatch(keymap.Key2, p.layers.active)
		case 4:
			p.disp.dispatch(keymap.Key3, p.layers.active)
		case 3:
			p.disp.dispatch(keymap.Key12, p.layers.active)
		case 5:
			p.disp.dispatch(keymap.Key13, p.layers.active)
		case 6:
			p.disp.dispatch(keymap.Key23, p.layers.active)
		}
		p.press = 0
	}
	if hold == 7 {
		p.all++
		if p.all > longHoldTicks {
			p.logger.WriteLineString("pad: all keys held, entering bootloader")
			p.bootloader()
			return ErrBootloader
		}
	} else {
		p.all = 0
	}

	swPressed, swReleased := p.sw.sample(p.pins.Read(hal.PinEncoderSwitch))
	if swPressed {
		p.modeChanged = false
	}
	if swReleased && !p.modeChanged {
		// A plain click: fire the switch macro at the layer it was clicked
		// on, then drop back to layer 0.
		p.disp.dispatch(keymap.EncoderSwitch, p.layers.active)
		if p.m.MaxLayers > 0 && p.layers.reset() {
			p.blink = blinkTicks
		}
	}

	dir := p.enc.feed(p.pins.Read(hal.PinEncoderA), p.pins.Read(hal.PinEncoderB))

	if p.sw.down {
		if dir != 0 {
			p.modeChanged = true
			if p.m.MaxLayers > 0 {
				p.layers.rotate(dir)
			} else if dir > 0 {
				p.disp.dispatch(keymap.EncoderSwitchCCW, p.layers.active)
			} else {
				p.disp.dispatch(keymap.EncoderSwitchCW, p.layers.active)
			}
		}
		if p.m.MaxLayers > 0 {
			if p.knob > longHoldTicks {
				p.layers.reset()
				p.modeChanged = true
			}
			if p.modeChanged {
				p.blink = blinkTicks
				p.knob = 0
			} else {
				p.knob++
			}
		}
	} else {
		if dir > 0 {
			p.disp.dispatch(keymap.EncoderCCW, p.layers.active)
		} else if dir < 0 {
			p.disp.dispatch(keymap.EncoderCW, p.layers.active)
		}
		p.knob = 0
	}

	p.look.render()
	l := &p.m.Layers[p.layers.active]
	p.look.fade(l.Background, l.Fade)
	if p.blink > 0 {
		p.blink--
		p.look.setAll(p.fg())
	}

	p.sys.ResetWatchdog()
	return nil
}

// Keymap returns the active keymap. It is fixed after Boot.
func (p *Pad) Keymap() keymap.Map { return p.m }

// ActiveLayer returns the layer the next event would resolve against.
func (p *Pad) ActiveLayer() uint8 { return p.layers.active }

func (p *Pad) fg() rgb {
	f := p.m.Layers[p.layers.active].Foreground
	return rgb{f.R, f.G, f.B}
}

// bootloader lights every indicator and asks the system to reboot into the
// bootloader. On hardware the call does not return.
func (p *Pad) bootloader() {
	p.look.setAll(rgb{bootloaderWhite, bootloaderWhite, bootloaderWhite})
	p.look.render()
	p.sys.EnterBootloader()
}

// warnEmptyKeymap flashes the first indicator red five times, 200 ms per
// phase, when layer 0 binds none of the three keys. It blocks until the
// last phase ends, well inside the watchdog window.
func (p *Pad) warnEmptyKeymap() {
	p.logger.WriteLineString("pad: layer 0 key slots are empty, check the keymap image")
	on := true
	for i := 0; i < 5; i++ {
		c := rgb{}
		if on {
			c.r = 255
		}
		p.look.set(0, c)
		p.look.render()
		p.sys.DelayMillis(warningPhaseMillis)
		on = !on
	}
}
