package pad

// edgeLatch tracks one active-low input. The logical state toggles whenever
// the sampled level disagrees with it. There is no timed debounce: the tick
// rate and the hardware filtering carry that.
type edgeLatch struct {
	down bool
}

// sample feeds one electrical level and reports rising and falling edges of
// the logical (pressed) state.
func (l *edgeLatch) sample(level bool) (pressed, released bool) {
	logical := !level
	if logical == l.down {
		return false, false
	}
	l.down = logical
	if l.down {
		return true, false
	}
	return false, true
}

// encoderSteps maps a packed quadrature transition to a signed step. The
// index is (previous logical A/B pair) | currentA<<2 | currentB<<3. Illegal
// two-edge jumps count double toward the direction that re-syncs the
// decoder.
var encoderSteps = [16]int8{0, 1, -1, 2, -1, 0, -2, 1, 1, -2, 0, -1, 2, -1, 1, 0}

// encoder accumulates quadrature transitions into whole detents. Four
// steps make one detent.
type encoder struct {
	state uint8 // previous logical A/B pair
	value int8
}

// feed consumes one sample of the electrical A/B levels and reports the
// resolved rotation: +1, -1 or 0. The accumulator stays within (-4,4)
// after every resolution.
func (e *encoder) feed(levelA, levelB bool) int8 {
	var a, b uint8
	if !levelA {
		a = 1
	}
	if !levelB {
		b = 1
	}
	idx := (e.state & 3) | a<<2 | b<<3
	e.state = idx >> 2
	e.value += encoderSteps[idx]
	switch {
	case e.value >= 4:
		e.value -= 4
		return -1
	case e.value <= -4:
		e.value += 4
		return 1
	}
	return 0
}
