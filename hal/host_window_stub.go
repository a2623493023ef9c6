//go:build !tinygo && !cgo

package hal

import "errors"

func RunWindow(_ *Host, _ func() error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
