package morse

import (
	"sync/atomic"
	"time"
)

const (
	Idle       State = iota // nothing sent yet
	Processing              // walking the symbols
	Done                    // reached the end of the buffer
	Failed                  // stopped on an unknown symbol
)

type State uint8

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Processing:
		return "sending"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Pin is a digital output. machine.Pin satisfies it.
type Pin interface {
	High()
	Low()
}

// Report summarises a transmission.
type Report struct {
	Symbols int           // symbols consumed from the buffer
	Pulses  int           // times the pin went active
	Elapsed time.Duration // nominal time spent, pulses and pauses
}

// Transmitter drives a pin to blink encoded Morse symbols.
type Transmitter struct {
	pin            Pin
	sleep          func(time.Duration)
	state          atomic.Int32
	position       atomic.Int32
	symbolCallback func(int, byte)  // called before each symbol is sent (offset, symbol)
	errorCallback  func(int, error) // called when transmission stops on a bad symbol
}

type Option func(*Transmitter)

// WithSleep replaces time.Sleep as the way the transmitter waits.
func WithSleep(sleep func(time.Duration)) Option {
	return func(t *Transmitter) { t.sleep = sleep }
}

func WithSymbolCallback(cb func(offset int, symbol byte)) Option {
	return func(t *Transmitter) { t.symbolCallback = cb }
}

func WithErrorCallback(cb func(offset int, err error)) Option {
	return func(t *Transmitter) { t.errorCallback = cb }
}

// NewTransmitter creates a transmitter for a pin that is already configured
// as an output.
func NewTransmitter(pin Pin, opts ...Option) *Transmitter {
	ret := &Transmitter{
		pin:   pin,
		sleep: time.Sleep,
	}
	for _, opt := range opts {
		opt(ret)
	}
	ret.setState(Idle, -1)
	return ret
}

// Transmit blinks symbols left to right and returns when it reaches the end
// of the slice or a NUL byte. Each dot or dash holds the pin active for its
// duration, releases it and then pauses for GapDuration; a space only
// pauses. Any other symbol stops the transmission with a *SymbolError.
//
// Transmit blocks the calling goroutine; the waits yield to the scheduler.
func (t *Transmitter) Transmit(symbols []byte) (Report, error) {
	if s := t.state.Load(); s == int32(Processing) || !t.state.CompareAndSwap(s, int32(Processing)) {
		if t.errorCallback != nil {
			t.errorCallback(-1, ErrBusy)
		}
		return Report{}, ErrBusy
	}
	t.position.Store(0)

	var rep Report
	for i, s := range symbols {
		if s == 0 {
			break
		}
		on, ok := pulseFor(s)
		if !ok {
			err := &SymbolError{Symbol: s, Offset: i}
			t.setState(Failed, i)
			if t.errorCallback != nil {
				t.errorCallback(i, err)
			}
			return rep, err
		}

		t.position.Store(int32(i))
		if t.symbolCallback != nil {
			t.symbolCallback(i, s)
		}
		if on > 0 {
			t.pulse(on)
			rep.Pulses++
			rep.Elapsed += on
		}
		t.sleep(GapDuration)
		rep.Elapsed += GapDuration
		rep.Symbols++
	}

	t.setState(Done, -1)
	return rep, nil
}

// pulse holds the pin active for d.
func (t *Transmitter) pulse(d time.Duration) {
	t.pin.High()
	t.sleep(d)
	t.pin.Low()
}

func (t *Transmitter) setState(s State, pos int) {
	t.position.Store(int32(pos))
	t.state.Store(int32(s))
}

// State returns the current state of the transmitter
func (t *Transmitter) State() State {
	return State(t.state.Load())
}

// Position returns the offset of the symbol being sent, or the offending
// symbol after a failure. It is -1 otherwise.
func (t *Transmitter) Position() int {
	return int(t.position.Load())
}
