package dev

// Line is a digital output level. machine.Pin satisfies it.
type Line interface {
	Set(high bool)
}

// LED is a single light on an output line. Boards that sink the LED current
// into the pin (like the ESP8266 D4 LED) are active low.
type LED struct {
	line      Line
	activeLow bool
	on        bool
}

func NewLED(line Line, activeLow bool) *LED {
	return &LED{
		line:      line,
		activeLow: activeLow,
	}
}

// High turns the LED on.
func (l *LED) High() {
	l.line.Set(!l.activeLow)
	l.on = true
}

// Low turns the LED off.
func (l *LED) Low() {
	l.line.Set(l.activeLow)
	l.on = false
}

func (l *LED) IsOn() bool {
	return l.on
}
