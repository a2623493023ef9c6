package mapfile

import (
	"fmt"

	"github.com/marf41/3keys-1knob/keymap"
)

// Validate checks a parsed definition for convertibility. It is
// declarative only and does not mutate the file.
func Validate(f *File) error {
	if f.MaxLayers < 0 || f.MaxLayers > 3 {
		return fmt.Errorf("mapfile: max_layers %d out of range 0..3", f.MaxLayers)
	}
	if len(f.Layers) > keymap.NumLayers {
		return fmt.Errorf("mapfile: %d layers, the device holds %d", len(f.Layers), keymap.NumLayers)
	}
	for i := range f.Layers {
		if err := validateLayer(&f.Layers[i]); err != nil {
			return fmt.Errorf("mapfile: layer %d: %w", i, err)
		}
	}
	return nil
}

func validateLayer(l *LayerConfig) error {
	colors := []struct{ name, val string }{
		{"foreground", l.Foreground},
		{"background", l.Background},
		{"fade", l.Fade},
	}
	for _, c := range colors {
		if _, err := parseColor(c.val); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
	}
	for name, s := range l.Slots {
		if _, ok := eventNames[name]; !ok {
			return fmt.Errorf("unknown slot %q", name)
		}
		if _, err := convertSlot(s); err != nil {
			return fmt.Errorf("slot %s: %w", name, err)
		}
	}
	return nil
}
