package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	lampOnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD700"))

	lampOffStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#444444"))

	symbolStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func lamp(on bool) string {
	if on {
		return lampOnStyle.Render("●")
	}
	return lampOffStyle.Render("○")
}

// event is a pin edge seen by the simulator.
type event struct {
	on bool
}

// terminalPin is a simulated output pin. It redraws a lamp on w and
// forwards every edge to events when that channel is set.
type terminalPin struct {
	w      io.Writer
	events chan<- event
	on     bool
}

func (p *terminalPin) High() { p.set(true) }
func (p *terminalPin) Low()  { p.set(false) }

func (p *terminalPin) set(on bool) {
	p.on = on
	if p.w != nil {
		fmt.Fprintf(p.w, "\r%s ", lamp(on))
	}
	if p.events != nil {
		p.events <- event{on: on}
	}
}

// scaledSleep returns a sleep that runs speed times faster than real time.
func scaledSleep(speed float64) func(time.Duration) {
	return func(d time.Duration) {
		time.Sleep(time.Duration(float64(d) / speed))
	}
}
