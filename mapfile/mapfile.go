// Package mapfile reads human-editable keymap definitions and converts
// them to the persisted form. A definition is YAML:
//
//	max_layers: 2
//	layers:
//	  - foreground: "FF1600"
//	    background: black
//	    fade: "020202"
//	    slots:
//	      key1:   {char: "a", mods: [ctrl, shift]}
//	      key12:  {code: 27}
//	      cw:     {consumer: volume_down}
//	      ccw:    {consumer: volume_up}
//
// Slot keys are key1, key2, key3, switch, cw, ccw, key12, key23, key13,
// switch_cw and switch_ccw. Colors are RRGGBB hex (optionally with a
// leading '#') or a named color; an omitted color stays zero and the
// firmware substitutes its defaults at decode time.
package mapfile

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/marf41/3keys-1knob/keymap"
)

// File is a parsed keymap definition. Layers beyond the fourth are
// rejected by Validate; missing layers stay unbound.
type File struct {
	MaxLayers int           `yaml:"max_layers"`
	Layers    []LayerConfig `yaml:"layers"`
}

// LayerConfig holds one layer's colors and macro slots.
type LayerConfig struct {
	Foreground string                `yaml:"foreground"`
	Background string                `yaml:"background"`
	Fade       string                `yaml:"fade"`
	Slots      map[string]SlotConfig `yaml:"slots"`
}

// SlotConfig is one macro binding. Exactly one of Char, Code or Consumer
// selects what the slot emits; Mods wraps Char or Code in modifiers.
// Consumer takes a control name ("volume_up") or a numeric usage; quote
// hex values ("0xE9") so YAML keeps them as strings.
type SlotConfig struct {
	Char     string   `yaml:"char"`
	Code     int      `yaml:"code"`
	Consumer string   `yaml:"consumer"`
	Mods     []string `yaml:"mods"`
}

// Load reads and parses a keymap definition from disk.
func Load(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: %w", err)
	}
	return Parse(b)
}

// Parse decodes a keymap definition. Unknown fields are errors so typos
// do not silently produce unbound slots.
func Parse(b []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("mapfile: parse: %w", err)
	}
	return &f, nil
}

var eventNames = map[string]keymap.Event{
	"key1":       keymap.Key1,
	"key2":       keymap.Key2,
	"key3":       keymap.Key3,
	"switch":     keymap.EncoderSwitch,
	"cw":         keymap.EncoderCW,
	"ccw":        keymap.EncoderCCW,
	"key12":      keymap.Key12,
	"key23":      keymap.Key23,
	"key13":      keymap.Key13,
	"switch_cw":  keymap.EncoderSwitchCW,
	"switch_ccw": keymap.EncoderSwitchCCW,
}
