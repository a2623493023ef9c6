//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

const watchdogTimeoutMillis = 2000

type padHAL struct {
	logger *uartLogger
	pins   *machinePins
	kbd    usbKeyboard
	px     *strip
	mem    *mcuFlash
	sys    mcuSystem
}

// New returns the RP2040 board HAL.
//
// Wiring: keys on GP2/GP3/GP4, encoder A/B on GP10/GP11, encoder switch on
// GP12, WS2812 indicators on GP16. UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	return &padHAL{
		logger: &uartLogger{uart: uart},
		pins:   newMachinePins(),
		px:     newStrip(machine.GP16),
		mem:    &mcuFlash{},
	}
}

func (h *padHAL) Logger() Logger       { return h.logger }
func (h *padHAL) Pins() Pins           { return h.pins }
func (h *padHAL) Keyboard() Keyboard   { return h.kbd }
func (h *padHAL) Pixels() Pixels       { return h.px }
func (h *padHAL) DataFlash() DataFlash { return h.mem }
func (h *padHAL) System() System       { return h.sys }

type machinePins struct {
	pins [NumPins]machine.Pin
}

func newMachinePins() *machinePins {
	p := &machinePins{pins: [NumPins]machine.Pin{
		PinKey1:          machine.GP2,
		PinKey2:          machine.GP3,
		PinKey3:          machine.GP4,
		PinEncoderA:      machine.GP10,
		PinEncoderB:      machine.GP11,
		PinEncoderSwitch: machine.GP12,
	}}
	for _, pin := range p.pins {
		pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	return p
}

func (p *machinePins) Read(pin Pin) bool {
	if pin >= NumPins {
		return true
	}
	return p.pins[pin].Get()
}

type mcuSystem struct{}

func (mcuSystem) DelayMillis(ms int) {
	if ms > 0 {
		time.Sleep(time.Duration(ms) * time.Millisecond)
	}
}

func (mcuSystem) StartWatchdog() {
	_ = machine.Watchdog.Configure(machine.WatchdogConfig{
		TimeoutMillis: watchdogTimeoutMillis,
	})
	_ = machine.Watchdog.Start()
}

func (mcuSystem) ResetWatchdog() { machine.Watchdog.Update() }

func (mcuSystem) EnterBootloader() { machine.EnterBootloader() }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}
