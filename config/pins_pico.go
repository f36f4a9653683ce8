//go:build rp2040

package config

import "machine"

var (
	LED          = machine.LED
	LEDActiveLow = false

	DisplayBus = machine.I2C0
	DisplaySDA = machine.GP4
	DisplaySCL = machine.GP5

	Button  = machine.GP28
	ButtonA = machine.GP7
	ButtonB = machine.GP6
)
