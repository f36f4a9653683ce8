//go:build rp2040

package dev

import (
	"machine"
	"time"
)

// ConfigureButton sets pin up as an input with the given mode.
func ConfigureButton(pin machine.Pin, mode machine.PinMode, debounce time.Duration) (*Button, error) {
	if pin == machine.NoPin {
		return nil, ErrInvalidPin
	}
	if mode != machine.PinInput && mode != machine.PinInputPulldown && mode != machine.PinInputPullup {
		return nil, ErrInvalidPinMode
	}
	pin.Configure(machine.PinConfig{Mode: mode})

	return NewButton(pin, mode == machine.PinInputPullup, debounce)
}
