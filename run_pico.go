//go:build tinygo && rp2040

package main

import (
	"machine"
	"time"

	"github.com/itohio/morselight/config"
	"github.com/itohio/morselight/dev"
	"github.com/itohio/morselight/morse"
	"github.com/itohio/morselight/status"
	"tinygo.org/x/drivers/encoders"
	"tinygo.org/x/drivers/ssd1306"
)

// run sends the startup message, then lets the rotary encoder pick a preset
// and the button send it. Progress is shown on the OLED.
func run(tx *morse.Transmitter) {
	encoder := encoders.NewQuadratureViaInterrupt(config.ButtonA, config.ButtonB)
	encoder.Configure(encoders.QuadratureConfig{Precision: 1})

	button, err := dev.ConfigureButton(config.Button, machine.PinInputPullup, 20*time.Millisecond)
	if err != nil {
		println("Button failed: " + err.Error())
	}

	machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       config.DisplaySDA,
		SCL:       config.DisplaySCL,
	})
	// the delay is needed for display start from a cold reboot
	time.Sleep(time.Second)
	display := ssd1306.NewI2C(config.DisplayBus)
	cfg := ssd1306.Config{Width: 128, Height: 64, Address: 0x3C, VccState: ssd1306.SWITCHCAPVCC}
	display.Configure(cfg)
	display.ClearDisplay()
	screen := status.NewScreen(&display, status.White)

	// A single task owns the LED; requests queue up one deep.
	requests := make(chan string, 1)
	go func() {
		for msg := range requests {
			send(tx, msg)
		}
	}()
	requests <- config.DefaultMessage

	machine.Watchdog.Configure(machine.WatchdogConfig{
		TimeoutMillis: 3000,
	})
	machine.Watchdog.Start()

	var preview job
	start := time.Now()
	ticker := time.NewTicker(time.Millisecond * 50)
	for range ticker.C {
		selected := config.Preset(encoder.Position())
		busy := tx.State() == morse.Processing

		if button != nil && button.Poll(time.Since(start)) && !busy {
			select {
			case requests <- selected:
			default:
				println("TX ! request dropped")
			}
		}

		st := previewStatus(&preview, selected, tx)
		if busy {
			if j := current.Load(); j != nil {
				st = status.Snapshot(j.msg, j.symbols, tx)
			}
		}

		display.ClearBuffer()
		if err := screen.Draw(st); err != nil {
			println("Display ! " + err.Error())
		}
		machine.Watchdog.Update()
	}
}

// previewStatus shows the selected preset while nothing is being sent.
func previewStatus(preview *job, selected string, tx *morse.Transmitter) status.Status {
	if preview.msg != selected || preview.symbols == nil {
		enc, err := morse.Encode(selected, config.Capacity)
		if err != nil {
			println("ENC ! " + err.Error())
		}
		preview.msg, preview.symbols = selected, enc.Symbols
	}
	st := status.Snapshot(preview.msg, preview.symbols, tx)
	pt, _ := morse.Plan(preview.symbols)
	st.Position = -1
	st.Remaining = pt.Duration()
	return st
}
