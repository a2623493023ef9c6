// Package keymap defines the persisted macro keymap: four layers of macro
// slots plus indicator colors, packed into a fixed 128-byte blob in data
// flash. The firmware decodes the blob once at boot; the padcfg tool builds
// and inspects it on the host.
package keymap

// Event identifies one logical input the keypad can resolve. Each layer
// carries exactly one macro slot per event.
type Event uint8

const (
	Key1 Event = iota
	Key2
	Key3
	EncoderSwitch
	EncoderCW
	EncoderCCW
	Key12
	Key23
	Key13
	EncoderSwitchCW
	EncoderSwitchCCW

	NumEvents
)

func (e Event) String() string {
	switch e {
	case Key1:
		return "key1"
	case Key2:
		return "key2"
	case Key3:
		return "key3"
	case EncoderSwitch:
		return "switch"
	case EncoderCW:
		return "cw"
	case EncoderCCW:
		return "ccw"
	case Key12:
		return "key12"
	case Key23:
		return "key23"
	case Key13:
		return "key13"
	case EncoderSwitchCW:
		return "switch_cw"
	case EncoderSwitchCCW:
		return "switch_ccw"
	default:
		return "unknown"
	}
}

// ModConsumer in a slot's modifier byte marks the keycode as a
// consumer-control usage (volume, playback, ...) instead of a character.
const ModConsumer = 0xFF

// Slot is one macro binding: a modifier byte plus a keycode.
//
// Modifier bit i (0..7) selects {LeftCtrl, LeftShift, LeftAlt, LeftGui,
// RightCtrl, RightShift, RightAlt, RightGui}. A zero keycode means the slot
// is unbound and dispatch skips it silently.
type Slot struct {
	Mod uint8
	Key uint8
}

// Bound reports whether the slot emits anything at all.
func (s Slot) Bound() bool { return s.Key != 0 }

// IsConsumer reports whether the slot's keycode is a consumer-control usage.
func (s Slot) IsConsumer() bool { return s.Mod == ModConsumer }

// RGB is an 8-bit-per-channel indicator color.
type RGB struct {
	R, G, B uint8
}

// Layer is one of the four macro/appearance configurations.
type Layer struct {
	Slots      [NumEvents]Slot
	Foreground RGB
	Background RGB
	Fade       RGB
}

// Map is a fully decoded keymap.
//
// MaxLayers is the sequence mode: how many layers chain keystrokes for a
// single chord versus how many layers are reachable by rotation. It is
// persisted in layer 0 only; the corresponding byte of layers 1..3 is
// reserved.
type Map struct {
	Layers    [NumLayers]Layer
	MaxLayers uint8
}

// Default colors applied when a persisted triple is all zero.
var (
	DefaultForeground = RGB{R: 0xFF, G: 0x16}
	DefaultBackground = RGB{R: 0x0C, G: 0x01}
)
