//go:build !tinygo

package hal

import "sync"

// hostPixels double-buffers the indicator colors: Set writes the staged
// frame, Latch publishes it for the window to draw.
type hostPixels struct {
	mu     sync.Mutex
	staged [NumPixels][3]uint8
	shown  [NumPixels][3]uint8
}

func (p *hostPixels) Set(i int, r, g, b uint8) {
	if i < 0 || i >= NumPixels {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.staged[i] = [3]uint8{r, g, b}
}

func (p *hostPixels) Latch() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shown = p.staged
}

func (p *hostPixels) Snapshot() [NumPixels][3]uint8 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.shown
}
