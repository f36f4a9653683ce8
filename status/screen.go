// Package status draws the progress of a Morse transmission on a small
// monochrome display.
package status

import (
	"fmt"
	"image/color"
	"time"

	"github.com/itohio/morselight/morse"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	White = color.RGBA{255, 255, 255, 255}
	Black = color.RGBA{0, 0, 0, 0}
)

// Status is a snapshot of a transmission.
type Status struct {
	Message   string
	Symbols   []byte
	Position  int
	State     morse.State
	Remaining time.Duration
}

// Snapshot reads the progress of tx through symbols.
func Snapshot(msg string, symbols []byte, tx *morse.Transmitter) Status {
	st := Status{
		Message:  msg,
		Symbols:  symbols,
		Position: tx.Position(),
		State:    tx.State(),
	}
	switch st.State {
	case morse.Idle:
		st.Remaining = remaining(symbols, 0)
	case morse.Processing:
		st.Remaining = remaining(symbols, st.Position)
	}
	return st
}

func remaining(symbols []byte, pos int) time.Duration {
	if pos < 0 || pos > len(symbols) {
		return 0
	}
	pt, _ := morse.Plan(symbols[pos:])
	return pt.Duration()
}

// Screen renders a Status as text lines.
type Screen struct {
	display    drivers.Displayer
	font       tinyfont.Fonter
	color      color.RGBA
	lineHeight int16
	columns    int
}

func NewScreen(display drivers.Displayer, c color.RGBA) *Screen {
	ret := &Screen{
		display:    display,
		font:       &proggy.TinySZ8pt7b,
		color:      c,
		lineHeight: 9,
	}
	w, _ := display.Size()
	_, glyph := tinyfont.LineWidth(ret.font, "-")
	if glyph == 0 {
		glyph = 1
	}
	ret.columns = int(w) / int(glyph)
	return ret
}

// Columns is the number of characters that fit on one line.
func (s *Screen) Columns() int {
	return s.columns
}

// Lines formats st for a display that fits columns characters per line.
func Lines(st Status, columns int) []string {
	lines := []string{
		clip(st.Message, columns),
		fmt.Sprintf("%v %d/%d", st.State, max(st.Position, 0), len(st.Symbols)),
		clip(window(st.Symbols, st.Position, columns), columns),
		fmt.Sprintf("eta %v", st.Remaining.Round(100*time.Millisecond)),
	}
	return lines
}

// Draw writes st to the display buffer and flushes it. The caller clears
// the buffer beforehand.
func (s *Screen) Draw(st Status) error {
	for i, line := range Lines(st, s.columns) {
		tinyfont.WriteLine(s.display, s.font, 0, s.lineHeight*int16(i+1), line, s.color)
	}
	return s.display.Display()
}

// window returns the symbols starting at pos, or the start when nothing is
// being sent.
func window(symbols []byte, pos, n int) string {
	if pos < 0 || pos >= len(symbols) {
		pos = 0
	}
	end := min(pos+n, len(symbols))
	return string(symbols[pos:end])
}

func clip(s string, n int) string {
	if n >= 0 && len(s) > n {
		return s[:n]
	}
	return s
}
