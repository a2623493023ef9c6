package mapfile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/marf41/3keys-1knob/keymap"
)

// Map converts the definition into its runtime form. It must be called
// only after Validate; fields that would not validate convert as zero.
func (f *File) Map() keymap.Map {
	var m keymap.Map
	m.MaxLayers = uint8(f.MaxLayers)
	for i := range f.Layers {
		if i >= keymap.NumLayers {
			break
		}
		src := &f.Layers[i]
		dst := &m.Layers[i]
		dst.Foreground, _ = parseColor(src.Foreground)
		dst.Background, _ = parseColor(src.Background)
		dst.Fade, _ = parseColor(src.Fade)
		for name, s := range src.Slots {
			ev, ok := eventNames[name]
			if !ok {
				continue
			}
			dst.Slots[ev], _ = convertSlot(s)
		}
	}
	return m
}

// Modifier bit positions, left block first, matching the HID usages
// 0xE0..0xE7. The bare names mean the left-hand key.
var modBits = map[string]uint8{
	"ctrl": 0, "lctrl": 0,
	"shift": 1, "lshift": 1,
	"alt": 2, "lalt": 2,
	"gui": 3, "lgui": 3,
	"rctrl":  4,
	"rshift": 5,
	"ralt":   6,
	"rgui":   7,
}

// Consumer-control usages the firmware can emit, by common name.
var consumerCodes = map[string]uint8{
	"next_track":  0xB5,
	"prev_track":  0xB6,
	"stop":        0xB7,
	"play_pause":  0xCD,
	"mute":        0xE2,
	"volume_up":   0xE9,
	"volume_down": 0xEA,
}

var namedColors = map[string]keymap.RGB{
	"off":     {},
	"black":   {},
	"white":   {R: 255, G: 255, B: 255},
	"red":     {R: 255},
	"green":   {G: 255},
	"blue":    {B: 255},
	"yellow":  {R: 255, G: 255},
	"cyan":    {G: 255, B: 255},
	"magenta": {R: 255, B: 255},
	"orange":  {R: 255, G: 64},
}

func convertSlot(s SlotConfig) (keymap.Slot, error) {
	hasChar := s.Char != ""
	hasCode := s.Code != 0
	hasConsumer := s.Consumer != ""

	switch {
	case hasConsumer && (hasChar || hasCode):
		return keymap.Slot{}, errors.New("consumer excludes char and code")
	case hasChar && hasCode:
		return keymap.Slot{}, errors.New("char and code are alternatives, give one")
	case !hasChar && !hasCode && !hasConsumer:
		return keymap.Slot{}, errors.New("one of char, code or consumer is required")
	}

	if hasConsumer {
		if len(s.Mods) > 0 {
			return keymap.Slot{}, errors.New("a consumer slot takes no mods")
		}
		code, err := parseConsumer(s.Consumer)
		if err != nil {
			return keymap.Slot{}, err
		}
		return keymap.Slot{Mod: keymap.ModConsumer, Key: code}, nil
	}

	var mod uint8
	for _, name := range s.Mods {
		bit, ok := modBits[strings.ToLower(name)]
		if !ok {
			return keymap.Slot{}, fmt.Errorf("unknown modifier %q", name)
		}
		mod |= 1 << bit
	}
	if mod == keymap.ModConsumer {
		return keymap.Slot{}, errors.New("all eight modifiers at once collide with the consumer marker")
	}

	if hasChar {
		if len(s.Char) != 1 || s.Char[0] == 0 || s.Char[0] > 0x7F {
			return keymap.Slot{}, fmt.Errorf("char %q must be one ASCII character", s.Char)
		}
		return keymap.Slot{Mod: mod, Key: s.Char[0]}, nil
	}

	if s.Code < 1 || s.Code > 255 {
		return keymap.Slot{}, fmt.Errorf("code %d out of range 1..255", s.Code)
	}
	return keymap.Slot{Mod: mod, Key: uint8(s.Code)}, nil
}

func parseConsumer(v string) (uint8, error) {
	if code, ok := consumerCodes[strings.ToLower(v)]; ok {
		return code, nil
	}
	n, err := strconv.ParseUint(v, 0, 8)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("unknown consumer control %q", v)
	}
	return uint8(n), nil
}

func parseColor(v string) (keymap.RGB, error) {
	if v == "" {
		return keymap.RGB{}, nil
	}
	if c, ok := namedColors[strings.ToLower(v)]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(v, "#")
	if len(hex) == 6 {
		if n, err := strconv.ParseUint(hex, 16, 32); err == nil {
			return keymap.RGB{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
		}
	}
	return keymap.RGB{}, fmt.Errorf("color %q is not RRGGBB or a known name", v)
}
