//go:build !tinygo

package hal

import "sync"

// quadPhases holds the logical (pressed-is-true) A/B pair for each
// quarter-detent position, A in bit 0 and B in bit 1, in clockwise order.
// A leads on a clockwise turn, which the decoder resolves as +1.
var quadPhases = [4]uint8{0b00, 0b01, 0b11, 0b10}

// hostEncoder synthesizes quadrature waveforms for queued detents, one
// transition at a time.
type hostEncoder struct {
	mu      sync.Mutex
	phase   int
	pending int // signed quarter-detent transitions still to present
}

func (e *hostEncoder) spin(detents int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending += detents * 4
}

// step presents at most one quadrature transition. It reports the logical
// A/B pair after the step and whether anything moved.
func (e *hostEncoder) step() (a, b, moved bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case e.pending > 0:
		e.phase = (e.phase + 1) & 3
		e.pending--
	case e.pending < 0:
		e.phase = (e.phase + 3) & 3
		e.pending++
	default:
		return false, false, false
	}
	v := quadPhases[e.phase]
	return v&1 != 0, v&2 != 0, true
}
