package pad

import (
	"github.com/marf41/3keys-1knob/hal"
	"github.com/marf41/3keys-1knob/keymap"
)

// dispatcher turns resolved events into USB HID emissions.
type dispatcher struct {
	kbd hal.Keyboard
	m   *keymap.Map
}

// dispatch emits the slot bound to ev on the given layer. Events resolved
// on layer 0 additionally chain across the sequence tail: layer 1 when at
// most two layers rotate, then 2, then 3, so one chord can type a multi
// keystroke sequence.
func (d *dispatcher) dispatch(ev keymap.Event, layer uint8) {
	d.emit(ev, layer)
	if layer != 0 || d.m.MaxLayers >= 3 {
		return
	}
	if d.m.MaxLayers <= 2 {
		d.emit(ev, 1)
	}
	if d.m.MaxLayers <= 1 {
		d.emit(ev, 2)
	}
	if d.m.MaxLayers == 0 {
		d.emit(ev, 3)
	}
}

// emit sends one slot: either a consumer control code, or the keystroke
// wrapped in its modifiers, pressed low bit to high and released high bit
// to low. An unbound slot is a no-op.
func (d *dispatcher) emit(ev keymap.Event, layer uint8) {
	s := d.m.Layers[layer].Slots[ev]
	if s.Key == 0 {
		return
	}
	if s.IsConsumer() {
		d.kbd.TypeConsumer(s.Key)
		return
	}
	for bit := uint8(0); bit < 8; bit++ {
		if s.Mod&(1<<bit) != 0 {
			d.kbd.Press(hal.Keycode(0xE0 + bit))
		}
	}
	d.kbd.TypeChar(s.Key)
	for bit := int8(7); bit >= 0; bit-- {
		if s.Mod&(1<<uint8(bit)) != 0 {
			d.kbd.Release(hal.Keycode(0xE0 + uint8(bit)))
		}
	}
}
