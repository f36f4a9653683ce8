// Command morsesim previews a Morse message on the terminal instead of an LED.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/itohio/morselight/morse"
)

func main() {
	var (
		configFile  = flag.String("config", "", "Path to YAML config")
		msg         = flag.String("msg", "", "Message to send (lowercase letters and spaces)")
		capacity    = flag.Int("capacity", 0, "Encoded buffer capacity in bytes")
		speed       = flag.Float64("speed", 0, "Playback speed-up factor")
		repeat      = flag.Int("repeat", 0, "Number of times to send the message")
		dry         = flag.Bool("dry", false, "Print the symbols and timing plan without blinking")
		verbose     = flag.Bool("v", false, "Log every symbol")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *msg != "" {
		cfg.Message = *msg
	}
	if *capacity != 0 {
		cfg.Capacity = *capacity
	}
	if *speed != 0 {
		cfg.Speed = *speed
	}
	if *repeat != 0 {
		cfg.Repeat = *repeat
	}
	if err := cfg.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		SetLogger(l)
		defer l.Sync()
	}

	if *interactive {
		if err := runInteractive(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *dry {
		err = plan(os.Stdout, cfg)
	} else {
		err = run(os.Stdout, cfg, scaledSleep(cfg.Speed))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func encode(cfg Config) (morse.Encoded, error) {
	enc, err := morse.Encode(cfg.Message, cfg.Capacity)
	if err != nil {
		return enc, fmt.Errorf("encode %q: %w", cfg.Message, err)
	}
	if enc.Truncated {
		Logger().Warn("message truncated",
			zap.Int("capacity", cfg.Capacity),
			zap.Int("consumed", enc.Consumed),
			zap.Int("length", len(cfg.Message)))
	}
	return enc, nil
}

// plan prints the encoded symbols and the pulse train without sleeping.
func plan(w io.Writer, cfg Config) error {
	enc, err := encode(cfg)
	if err != nil {
		return err
	}
	pt, err := morse.Plan(enc.Symbols)
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}

	fmt.Fprintf(w, "%s\n", symbolStyle.Render(fmt.Sprintf("%q", enc.Symbols)))
	fmt.Fprintf(w, "bytes: %d/%d truncated: %v\n", enc.Written, cfg.Capacity, enc.Truncated)
	for i, d := range pt.Durations() {
		if d == 0 {
			continue
		}
		fmt.Fprintf(w, "%s %v\n", lamp(i%2 == 1), d)
	}
	fmt.Fprintf(w, "pulses: %d total: %v\n", pt.Pulses(), pt.Duration())
	return nil
}

// run blinks the message on the terminal cfg.Repeat times.
func run(w io.Writer, cfg Config, sleep func(time.Duration)) error {
	enc, err := encode(cfg)
	if err != nil {
		return err
	}

	log := Logger().With(zap.String("message", cfg.Message))
	tx := morse.NewTransmitter(&terminalPin{w: w},
		morse.WithSleep(sleep),
		morse.WithSymbolCallback(func(offset int, s byte) {
			log.Debug("symbol", zap.Int("offset", offset), zap.String("symbol", string(s)))
		}),
		morse.WithErrorCallback(func(offset int, err error) {
			log.Error("transmission stopped", zap.Int("offset", offset), zap.Error(err))
		}),
	)

	fmt.Fprintf(w, "%s\n", symbolStyle.Render(string(enc.Symbols)))
	for i := 0; i < cfg.Repeat; i++ {
		rep, err := tx.Transmit(enc.Symbols)
		if err != nil {
			fmt.Fprintf(w, "\r%s\n", errorStyle.Render(err.Error()))
			return fmt.Errorf("transmit: %w", err)
		}
		log.Info("transmission done",
			zap.Int("round", i+1),
			zap.Int("symbols", rep.Symbols),
			zap.Int("pulses", rep.Pulses),
			zap.Duration("elapsed", rep.Elapsed))
		fmt.Fprintf(w, "\r%s\n", doneStyle.Render(fmt.Sprintf("sent %d pulses in %v", rep.Pulses, rep.Elapsed)))
	}
	return nil
}
