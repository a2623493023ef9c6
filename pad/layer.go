package pad

// layerState implements the sequence-mode layer selection. active never
// leaves {0..3}; rotation never lands on 0.
type layerState struct {
	active uint8
	max    uint8
}

func newLayerState(max uint8) layerState {
	if max > 3 {
		max = 3
	}
	return layerState{max: max}
}

// rotate applies one rotation detent taken while the encoder switch is
// held. dir must be +1 or -1.
func (l *layerState) rotate(dir int8) {
	switch l.max {
	case 0:
		l.active = 0
	case 1:
		l.active = 3
	case 2:
		if dir > 0 {
			l.active = 2
		} else {
			l.active = 3
		}
	case 3:
		// Unsigned wrap first, then clamp back into {1..3}. From layer 0
		// either direction lands on 1.
		l.active += uint8(dir)
		if l.active > 3 {
			l.active = 1
		}
		if l.active < 1 {
			l.active = 3
		}
	}
}

// reset forces layer 0 and reports whether that changed anything.
func (l *layerState) reset() bool {
	if l.active == 0 {
		return false
	}
	l.active = 0
	return true
}
