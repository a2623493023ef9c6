package hal

// Pin identifies one of the keypad's input signals.
type Pin uint8

const (
	PinKey1 Pin = iota
	PinKey2
	PinKey3
	PinEncoderA
	PinEncoderB
	PinEncoderSwitch
	NumPins
)

// NumPixels is the number of indicator LEDs on the board.
const NumPixels = 3

// Keycode is a USB HID usage ID. Modifier usages occupy 0xE0..0xE7.
type Keycode uint8

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
}

// Pins reports electrical pin levels. All keypad inputs idle high behind
// pull-ups and read low while pressed.
type Pins interface {
	Read(p Pin) bool
}

// Keyboard emits USB HID traffic to the attached host.
type Keyboard interface {
	Press(k Keycode)
	Release(k Keycode)
	TypeChar(c byte)
	TypeConsumer(usage byte)
}

// Pixels drives the indicator LEDs. Set stages a color; Latch presents the
// staged batch atomically.
type Pixels interface {
	Set(i int, r, g, b uint8)
	Latch()
}

// DataFlash exposes the persisted keymap image.
type DataFlash interface {
	ReadByte(off int) byte
}

// System groups timing and lifecycle controls.
type System interface {
	DelayMillis(ms int)
	StartWatchdog()
	ResetWatchdog()
	EnterBootloader()
}

// HAL is the only contact point between the firmware core and the board.
type HAL interface {
	Logger() Logger
	Pins() Pins
	Keyboard() Keyboard
	Pixels() Pixels
	DataFlash() DataFlash
	System() System
}
