//go:build !tinygo || !bootdebug

package app

import "github.com/marf41/3keys-1knob/hal"

func bootTrace(hal.HAL, string) {}
