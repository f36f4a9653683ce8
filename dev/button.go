package dev

import "time"

// Input is a digital input level. machine.Pin satisfies it.
type Input interface {
	Get() bool
}

// Button turns a bouncing input into single presses. It is polled, the
// caller supplies the time of each poll.
type Button struct {
	in         Input
	activeLow  bool
	debounce   time.Duration
	stable     bool
	last       bool
	lastChange time.Duration
}

func NewButton(in Input, activeLow bool, debounce time.Duration) (*Button, error) {
	if debounce < 0 {
		return nil, ErrInvalidDebounce
	}
	return &Button{
		in:        in,
		activeLow: activeLow,
		debounce:  debounce,
	}, nil
}

func (b *Button) pressed() bool {
	return b.in.Get() != b.activeLow
}

// Poll samples the input at now and reports whether the button has just
// been pressed. The level has to hold for the debounce interval to count.
func (b *Button) Poll(now time.Duration) bool {
	v := b.pressed()
	if v != b.last {
		b.last = v
		b.lastChange = now
	}
	if v == b.stable || now-b.lastChange < b.debounce {
		return false
	}
	b.stable = v
	return v
}
