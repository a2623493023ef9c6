package mapfile

import (
	"strings"
	"testing"

	"github.com/marf41/3keys-1knob/keymap"
)

const sample = `
max_layers: 2
layers:
  - foreground: "FF1600"
    background: black
    fade: "020203"
    slots:
      key1:   {char: "a", mods: [ctrl, shift]}
      key12:  {code: 27}
      cw:     {consumer: volume_down}
      ccw:    {consumer: "0xE9"}
      switch: {char: " "}
  - foreground: "#00FF00"
    slots:
      key1: {char: "b", mods: [ralt]}
`

func parseValid(t *testing.T, src string) *File {
	t.Helper()
	f, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := Validate(f); err != nil {
		t.Fatalf("validate: %v", err)
	}
	return f
}

func TestMapFromSample(t *testing.T) {
	m := parseValid(t, sample).Map()

	if m.MaxLayers != 2 {
		t.Fatalf("max layers = %d, want 2", m.MaxLayers)
	}

	l0 := m.Layers[0]
	if l0.Foreground != (keymap.RGB{R: 0xFF, G: 0x16}) {
		t.Fatalf("foreground = %+v", l0.Foreground)
	}
	if l0.Background != (keymap.RGB{}) {
		t.Fatalf("background = %+v", l0.Background)
	}
	if l0.Fade != (keymap.RGB{R: 2, G: 2, B: 3}) {
		t.Fatalf("fade = %+v", l0.Fade)
	}

	if got := l0.Slots[keymap.Key1]; got != (keymap.Slot{Mod: 0b11, Key: 'a'}) {
		t.Fatalf("key1 = %+v", got)
	}
	if got := l0.Slots[keymap.Key12]; got != (keymap.Slot{Key: 27}) {
		t.Fatalf("key12 = %+v", got)
	}
	if got := l0.Slots[keymap.EncoderCW]; got != (keymap.Slot{Mod: keymap.ModConsumer, Key: 0xEA}) {
		t.Fatalf("cw = %+v", got)
	}
	if got := l0.Slots[keymap.EncoderCCW]; got != (keymap.Slot{Mod: keymap.ModConsumer, Key: 0xE9}) {
		t.Fatalf("ccw = %+v", got)
	}
	if got := l0.Slots[keymap.EncoderSwitch]; got != (keymap.Slot{Key: ' '}) {
		t.Fatalf("switch = %+v", got)
	}
	if got := l0.Slots[keymap.Key2]; got != (keymap.Slot{}) {
		t.Fatalf("unbound key2 = %+v", got)
	}

	l1 := m.Layers[1]
	if got := l1.Slots[keymap.Key1]; got != (keymap.Slot{Mod: 1 << 6, Key: 'b'}) {
		t.Fatalf("layer 1 key1 = %+v", got)
	}
}

func TestMapMatchesHandBuiltBlob(t *testing.T) {
	m := parseValid(t, sample).Map()

	var want keymap.Map
	want.MaxLayers = 2
	want.Layers[0].Foreground = keymap.RGB{R: 0xFF, G: 0x16}
	want.Layers[0].Fade = keymap.RGB{R: 2, G: 2, B: 3}
	want.Layers[0].Slots[keymap.Key1] = keymap.Slot{Mod: 0b11, Key: 'a'}
	want.Layers[0].Slots[keymap.Key12] = keymap.Slot{Key: 27}
	want.Layers[0].Slots[keymap.EncoderCW] = keymap.Slot{Mod: 0xFF, Key: 0xEA}
	want.Layers[0].Slots[keymap.EncoderCCW] = keymap.Slot{Mod: 0xFF, Key: 0xE9}
	want.Layers[0].Slots[keymap.EncoderSwitch] = keymap.Slot{Key: ' '}
	want.Layers[1].Foreground = keymap.RGB{G: 0xFF}
	want.Layers[1].Slots[keymap.Key1] = keymap.Slot{Mod: 1 << 6, Key: 'b'}

	if keymap.Encode(m) != keymap.Encode(want) {
		t.Fatal("packed blob differs from the hand-built equivalent")
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("max_layerz: 1\n"))
	if err == nil {
		t.Fatal("typo in a field name must fail parsing")
	}
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			"max layers out of range",
			"max_layers: 4\n",
			"max_layers",
		},
		{
			"too many layers",
			"layers: [{}, {}, {}, {}, {}]\n",
			"the device holds",
		},
		{
			"unknown slot",
			"layers:\n  - slots:\n      key9: {char: \"a\"}\n",
			"unknown slot",
		},
		{
			"unknown modifier",
			"layers:\n  - slots:\n      key1: {char: \"a\", mods: [hyper]}\n",
			"unknown modifier",
		},
		{
			"char and consumer",
			"layers:\n  - slots:\n      key1: {char: \"a\", consumer: mute}\n",
			"consumer excludes",
		},
		{
			"char and code",
			"layers:\n  - slots:\n      key1: {char: \"a\", code: 13}\n",
			"alternatives",
		},
		{
			"empty slot",
			"layers:\n  - slots:\n      key1: {}\n",
			"required",
		},
		{
			"consumer with mods",
			"layers:\n  - slots:\n      cw: {consumer: mute, mods: [ctrl]}\n",
			"takes no mods",
		},
		{
			"unknown consumer",
			"layers:\n  - slots:\n      cw: {consumer: louder}\n",
			"unknown consumer",
		},
		{
			"multibyte char",
			"layers:\n  - slots:\n      key1: {char: \"ab\"}\n",
			"one ASCII character",
		},
		{
			"code out of range",
			"layers:\n  - slots:\n      key1: {code: 300}\n",
			"out of range",
		},
		{
			"bad color",
			"layers:\n  - foreground: \"FF16\"\n",
			"foreground",
		},
		{
			"bad color name",
			"layers:\n  - background: reddish\n",
			"background",
		},
	}
	for _, tc := range cases {
		f, err := Parse([]byte(tc.src))
		if err != nil {
			t.Fatalf("%s: parse: %v", tc.name, err)
		}
		err = Validate(f)
		if err == nil {
			t.Fatalf("%s: validation passed", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestValidateAllowsEmptyFile(t *testing.T) {
	f := parseValid(t, "max_layers: 0\n")
	m := f.Map()
	if m != (keymap.Map{}) {
		t.Fatalf("empty definition = %+v", m)
	}
}

func TestParseColorForms(t *testing.T) {
	cases := []struct {
		in   string
		want keymap.RGB
	}{
		{"", keymap.RGB{}},
		{"off", keymap.RGB{}},
		{"White", keymap.RGB{R: 255, G: 255, B: 255}},
		{"0C0100", keymap.RGB{R: 0x0C, G: 0x01}},
		{"#FF1600", keymap.RGB{R: 0xFF, G: 0x16}},
	}
	for _, tc := range cases {
		got, err := parseColor(tc.in)
		if err != nil {
			t.Fatalf("parseColor(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parseColor(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}
