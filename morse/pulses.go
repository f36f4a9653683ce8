package morse

import "time"

const (
	DotDuration  = 250 * time.Millisecond
	DashDuration = 3 * DotDuration
	// GapDuration is the pause after every symbol, spaces included.
	GapDuration = DotDuration
)

// PulseTrain is a transmission timeline. Even entries are time with the pin
// inactive, odd entries are time with the pin active.
type PulseTrain struct {
	durations []time.Duration
}

// Plan converts encoded symbols into the pulse train a Transmitter produces
// for them. It stops at the first NUL. An unknown symbol ends the plan
// there and is returned as a *SymbolError alongside the partial train.
func Plan(symbols []byte) (PulseTrain, error) {
	pt := PulseTrain{durations: []time.Duration{0}}
	for i, s := range symbols {
		on, ok := pulseFor(s)
		if !ok {
			if s == 0 {
				break
			}
			return pt, &SymbolError{Symbol: s, Offset: i}
		}
		if on > 0 {
			pt.durations = append(pt.durations, on, 0)
		}
		pt.durations[len(pt.durations)-1] += GapDuration
	}
	return pt, nil
}

// pulseFor returns how long the pin is active for a symbol.
func pulseFor(s byte) (time.Duration, bool) {
	switch s {
	case Dot:
		return DotDuration, true
	case Dash:
		return DashDuration, true
	case Space:
		return 0, true
	}
	return 0, false
}

func (pt PulseTrain) Durations() []time.Duration {
	return pt.durations
}

// Pulses returns the number of times the pin goes active.
func (pt PulseTrain) Pulses() int {
	return len(pt.durations) / 2
}

// Duration returns the total length of the train.
func (pt PulseTrain) Duration() time.Duration {
	var total time.Duration
	for _, d := range pt.durations {
		total += d
	}
	return total
}
