//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Host is the no-hardware backend used by the simulator window, the headless
// runner and tests. Inputs are poked through SetKey, SetEncoderSwitch and
// Spin; HID traffic and lifecycle events come out on the logger.
type Host struct {
	logger *hostLogger
	pins   *hostPins
	enc    *hostEncoder
	kbd    *hostKeyboard
	px     *hostPixels
	mem    *hostEEPROM
	sys    *hostSystem
}

// New returns a host HAL implementation. The keymap image is read from
// $PAD_EEPROM_PATH (default "pad.eeprom"); a missing file reads as zeroes,
// which decodes to the default keymap.
func New() *Host {
	logger := &hostLogger{w: os.Stdout}
	return &Host{
		logger: logger,
		pins:   newHostPins(),
		enc:    &hostEncoder{},
		kbd:    &hostKeyboard{logger: logger},
		px:     &hostPixels{},
		mem:    newHostEEPROM(logger),
		sys:    &hostSystem{logger: logger},
	}
}

func (h *Host) Logger() Logger       { return h.logger }
func (h *Host) Pins() Pins           { return h.pins }
func (h *Host) Keyboard() Keyboard   { return h.kbd }
func (h *Host) Pixels() Pixels       { return h.px }
func (h *Host) DataFlash() DataFlash { return h.mem }
func (h *Host) System() System       { return h.sys }

// LoadEEPROM replaces the keymap image with the contents of path.
func (h *Host) LoadEEPROM(path string) error { return h.mem.load(path) }

// SetKey drives the electrical level of key i (0..2). held pulls the pin low.
func (h *Host) SetKey(i int, held bool) {
	if i < 0 || i > 2 {
		return
	}
	h.pins.set(PinKey1+Pin(i), !held)
}

// SetEncoderSwitch drives the encoder push switch. held pulls the pin low.
func (h *Host) SetEncoderSwitch(held bool) {
	h.pins.set(PinEncoderSwitch, !held)
}

// Spin queues rotation detents. Positive is clockwise.
func (h *Host) Spin(detents int) { h.enc.spin(detents) }

// PixelSnapshot returns the last latched indicator frame.
func (h *Host) PixelSnapshot() [NumPixels][3]uint8 { return h.px.Snapshot() }

// RecentEmissions returns the most recent HID emissions, oldest first.
func (h *Host) RecentEmissions() []string { return h.kbd.Recent() }

// BootloaderRequested reports whether the firmware asked to reboot into the
// bootloader.
func (h *Host) BootloaderRequested() bool { return h.sys.bootloaderRequested() }

// step advances the virtual hardware by one tick. At most one quadrature
// transition is presented per tick so the decoder never skips an edge.
func (h *Host) step() {
	a, b, moved := h.enc.step()
	if moved {
		h.pins.set(PinEncoderA, !a)
		h.pins.set(PinEncoderB, !b)
	}
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

type hostPins struct {
	mu     sync.Mutex
	levels [NumPins]bool
}

func newHostPins() *hostPins {
	p := &hostPins{}
	for i := range p.levels {
		p.levels[i] = true // pull-ups idle high
	}
	return p
}

func (p *hostPins) Read(pin Pin) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if pin >= NumPins {
		return true
	}
	return p.levels[pin]
}

func (p *hostPins) set(pin Pin, level bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if pin >= NumPins {
		return
	}
	p.levels[pin] = level
}
