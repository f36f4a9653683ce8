//go:build tinygo

package dev

import "machine"

// ConfigureLED sets pin up as an output and returns the LED switched off.
func ConfigureLED(pin machine.Pin, activeLow bool) (*LED, error) {
	if pin == machine.NoPin {
		return nil, ErrInvalidPin
	}
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	led := NewLED(pin, activeLow)
	led.Low()
	return led, nil
}
