//go:build !tinygo

package hal

import (
	"fmt"
	"sync"
)

// hostKeyboard logs HID traffic instead of sending it to a USB host and
// keeps a short readout of recent emissions for the simulator window.
type hostKeyboard struct {
	mu     sync.Mutex
	logger *hostLogger
	mods   []Keycode
	recent []string
}

var modNames = map[Keycode]string{
	0xE0: "ctrl", 0xE1: "shift", 0xE2: "alt", 0xE3: "gui",
	0xE4: "rctrl", 0xE5: "rshift", 0xE6: "ralt", 0xE7: "rgui",
}

func (k *hostKeyboard) Press(code Keycode) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.mods = append(k.mods, code)
	k.logger.WriteLineString("hid: press " + keycodeName(code))
}

func (k *hostKeyboard) Release(code Keycode) {
	k.mu.Lock()
	defer k.mu.Unlock()
	for i := len(k.mods) - 1; i >= 0; i-- {
		if k.mods[i] == code {
			k.mods = append(k.mods[:i], k.mods[i+1:]...)
			break
		}
	}
	k.logger.WriteLineString("hid: release " + keycodeName(code))
}

func (k *hostKeyboard) TypeChar(c byte) {
	k.mu.Lock()
	defer k.mu.Unlock()
	entry := ""
	for _, m := range k.mods {
		entry += keycodeName(m) + "+"
	}
	entry += charName(c)
	k.remember(entry)
	k.logger.WriteLineString("hid: type " + entry)
}

func (k *hostKeyboard) TypeConsumer(usage byte) {
	k.mu.Lock()
	defer k.mu.Unlock()
	entry := fmt.Sprintf("consumer 0x%02X", usage)
	k.remember(entry)
	k.logger.WriteLineString("hid: " + entry)
}

func (k *hostKeyboard) remember(entry string) {
	k.recent = append(k.recent, entry)
	if len(k.recent) > 5 {
		k.recent = k.recent[len(k.recent)-5:]
	}
}

func (k *hostKeyboard) Recent() []string {
	k.mu.Lock()
	defer k.mu.Unlock()
	out := make([]string, len(k.recent))
	copy(out, k.recent)
	return out
}

func keycodeName(code Keycode) string {
	if n, ok := modNames[code]; ok {
		return n
	}
	return fmt.Sprintf("0x%02X", uint8(code))
}

func charName(c byte) string {
	if c >= 0x20 && c <= 0x7E {
		return fmt.Sprintf("%q", c)
	}
	return fmt.Sprintf("0x%02X", c)
}
