//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

const (
	hostEEPROMDefaultPath = "pad.eeprom"
	hostEEPROMBytes       = 128
)

// hostEEPROM is a file-backed stand-in for the MCU's 128-byte data flash.
type hostEEPROM struct {
	mu  sync.Mutex
	buf [hostEEPROMBytes]byte
}

func newHostEEPROM(logger *hostLogger) *hostEEPROM {
	m := &hostEEPROM{}
	path := os.Getenv("PAD_EEPROM_PATH")
	if path == "" {
		path = hostEEPROMDefaultPath
	}
	if err := m.load(path); err != nil {
		logger.WriteLineString(err.Error() + "; using zeroes")
	}
	return m
}

func (m *hostEEPROM) load(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("eeprom: read %s: %w", path, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buf = [hostEEPROMBytes]byte{}
	copy(m.buf[:], b)
	return nil
}

func (m *hostEEPROM) ReadByte(off int) byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	if off < 0 || off >= len(m.buf) {
		return 0
	}
	return m.buf[off]
}
