//go:build esp8266

package config

import "machine"

var (
	// D4 on NodeMCU boards, the LED lights when the pin is low.
	LED          = machine.GPIO2
	LEDActiveLow = true
)
