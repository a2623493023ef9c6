//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

type hostSystem struct {
	logger *hostLogger
	mu     sync.Mutex
	resets uint64
	armed  bool
	boot   bool
}

func (s *hostSystem) DelayMillis(ms int) {
	if ms <= 0 {
		return
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

func (s *hostSystem) StartWatchdog() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.armed {
		return
	}
	s.armed = true
	s.logger.WriteLineString("system: watchdog armed")
}

func (s *hostSystem) ResetWatchdog() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resets++
}

func (s *hostSystem) EnterBootloader() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.boot {
		return
	}
	s.boot = true
	s.logger.WriteLineString("system: bootloader entry requested")
}

func (s *hostSystem) bootloaderRequested() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.boot
}
