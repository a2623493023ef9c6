//go:build tinygo && baremetal

package hal

import "machine"

const dataFlashBytes = 128

// mcuFlash reads the keymap image from the start of the MCU's flash data
// area (the space left after the program image). The image is cached on
// first access; the keymap is only read at boot.
type mcuFlash struct {
	buf    [dataFlashBytes]byte
	cached bool
}

func (f *mcuFlash) ReadByte(off int) byte {
	if off < 0 || off >= dataFlashBytes {
		return 0
	}
	if !f.cached {
		_, _ = machine.Flash.ReadAt(f.buf[:], 0)
		f.cached = true
	}
	return f.buf[off]
}
