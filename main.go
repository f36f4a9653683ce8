//go:build tinygo

package main

import (
	"strconv"
	"sync/atomic"

	"github.com/itohio/morselight/config"
	"github.com/itohio/morselight/dev"
	"github.com/itohio/morselight/morse"
)

//go:generate tinygo flash -target=pico

type job struct {
	msg     string
	symbols []byte
}

var (
	buf     [config.Capacity]byte
	current atomic.Pointer[job]
)

func main() {
	led, err := dev.ConfigureLED(config.LED, config.LEDActiveLow)
	if err != nil {
		println("LED failed: " + err.Error())
		return
	}

	tx := morse.NewTransmitter(led,
		morse.WithErrorCallback(func(offset int, err error) {
			println("TX ! " + err.Error())
		}),
	)

	run(tx)
}

// send encodes msg into the shared buffer and blinks it. It returns when
// the transmission is over.
func send(tx *morse.Transmitter, msg string) {
	enc, err := morse.AppendEncoded(buf[:0], msg, len(buf))
	if err != nil {
		println("ENC ! " + err.Error())
	}
	if enc.Truncated {
		println("ENC truncated after " + strconv.Itoa(enc.Consumed) + " of " + strconv.Itoa(len(msg)) + " chars")
	}
	symbols := enc.Symbols
	current.Store(&job{msg: msg, symbols: symbols})

	println("TX " + msg + ": " + string(symbols))
	rep, err := tx.Transmit(symbols)
	if err != nil {
		return
	}
	println("TX done " + strconv.Itoa(rep.Pulses) + " pulses in " + rep.Elapsed.String())
}
