//go:build tinygo && baremetal

package main

import (
	"github.com/marf41/3keys-1knob/app"
	"github.com/marf41/3keys-1knob/hal"
)

func main() {
	app.Run(hal.New())
}
