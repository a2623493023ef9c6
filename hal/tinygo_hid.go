//go:build tinygo && baremetal

package hal

import kb "machine/usb/hid/keyboard"

// usbKeyboard adapts the TinyGo USB HID port. The port encodes keycodes in
// the Teensy scheme: modifiers as 0xE000|bit, consumer usages as
// 0xE400|usage, plain usages as 0xF000|usage.
type usbKeyboard struct{}

func teensyKeycode(code Keycode) kb.Keycode {
	if code >= 0xE0 && code <= 0xE7 {
		return kb.Keycode(0xE000 | uint16(1)<<(code-0xE0))
	}
	return kb.Keycode(0xF000 | uint16(code))
}

func (usbKeyboard) Press(code Keycode)   { _ = kb.Port().Down(teensyKeycode(code)) }
func (usbKeyboard) Release(code Keycode) { _ = kb.Port().Up(teensyKeycode(code)) }

func (usbKeyboard) TypeChar(c byte) {
	_, _ = kb.Port().Write([]byte{c})
}

func (usbKeyboard) TypeConsumer(usage byte) {
	_ = kb.Port().Press(kb.Keycode(0xE400 | uint16(usage)))
}
