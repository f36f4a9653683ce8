package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/itohio/morselight/morse"
	"github.com/itohio/morselight/status"
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1)

const statusColumns = 48

type modelState int

const (
	stateEditing modelState = iota
	stateSending
)

type (
	pinMsg  event
	tickMsg time.Time
	doneMsg struct {
		rep morse.Report
		err error
	}
)

type interactiveModel struct {
	err     error
	tx      *morse.Transmitter
	events  chan event
	cfg     Config
	msg     string
	result  string
	symbols []byte
	input   textinput.Model
	state   modelState
	lit     bool
}

func newInteractiveModel(cfg Config) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "lowercase letters and spaces"
	ti.SetValue(cfg.Message)
	ti.CharLimit = cfg.Capacity
	ti.Width = statusColumns
	ti.Focus()

	m := &interactiveModel{
		cfg:    cfg,
		input:  ti,
		events: make(chan event, 16),
	}
	pin := &terminalPin{events: m.events}
	m.tx = morse.NewTransmitter(pin,
		morse.WithSleep(scaledSleep(cfg.Speed)),
		morse.WithErrorCallback(func(offset int, err error) {
			Logger().Error("transmission stopped", zap.Int("offset", offset), zap.Error(err))
		}),
	)
	return m
}

func runInteractive(cfg Config) error {
	p := tea.NewProgram(newInteractiveModel(cfg))
	_, err := p.Run()
	return err
}

func (m *interactiveModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitEvent())
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.state == stateSending {
				return m, nil
			}
			return m, m.start()
		}
	case pinMsg:
		m.lit = msg.on
		return m, m.waitEvent()
	case tickMsg:
		if m.state != stateSending {
			return m, nil
		}
		return m, tick()
	case doneMsg:
		m.state = stateEditing
		m.lit = false
		m.err = msg.err
		if msg.err == nil {
			m.result = fmt.Sprintf("sent %d pulses in %v", msg.rep.Pulses, msg.rep.Elapsed)
		}
		m.input.Focus()
		return m, nil
	}

	if m.state == stateSending {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// start encodes the input and launches the transmission.
func (m *interactiveModel) start() tea.Cmd {
	m.err, m.result = nil, ""
	cfg := m.cfg
	cfg.Message = m.input.Value()

	enc, err := encode(cfg)
	if err != nil {
		m.err = err
		return nil
	}
	m.msg, m.symbols = cfg.Message, enc.Symbols
	m.state = stateSending
	m.input.Blur()

	tx, symbols := m.tx, m.symbols
	transmit := func() tea.Msg {
		rep, err := tx.Transmit(symbols)
		return doneMsg{rep: rep, err: err}
	}
	return tea.Batch(transmit, tick())
}

// waitEvent forwards the next pin edge. Exactly one is pending at a time.
func (m *interactiveModel) waitEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		return pinMsg(<-events)
	}
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("morsesim"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(lamp(m.lit))
	b.WriteString("\n\n")
	if m.symbols != nil {
		st := status.Snapshot(m.msg, m.symbols, m.tx)
		for _, line := range status.Lines(st, statusColumns) {
			b.WriteString(symbolStyle.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	} else if m.result != "" {
		b.WriteString(doneStyle.Render(m.result))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter: send • esc: quit"))
	b.WriteString("\n")
	return b.String()
}
