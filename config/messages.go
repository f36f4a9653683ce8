package config

import "time"

const (
	// Capacity is the size of the encoded message buffer.
	Capacity = 500

	DefaultMessage = "hola mundo"

	// Delay between repeated transmissions of a preset.
	RepeatDelay = 3 * time.Second
)

// Presets are the messages selectable with the rotary encoder.
var Presets = []string{
	DefaultMessage,
	"sos",
	"hello world",
	"the quick brown fox jumps over the lazy dog",
}

// Preset returns the preset at index i, wrapping around in both directions.
func Preset(i int) string {
	n := len(Presets)
	return Presets[((i%n)+n)%n]
}
