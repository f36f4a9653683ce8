//go:build tinygo && esp8266

package main

import (
	"github.com/itohio/morselight/config"
	"github.com/itohio/morselight/morse"
)

// run sends the startup message once and lets the task end.
func run(tx *morse.Transmitter) {
	send(tx, config.DefaultMessage)
}
