package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectorModel struct {
	err        error
	output     string
	current    string // sample shown in the result view
	currentHex string // hex input shown in the result view
	names      []string
	hexInput   textinput.Model
	selected   int
	limit      int
	state      modelState
}

type modelState int

const (
	stateBrowse modelState = iota
	stateHexInput
	stateShowResult
)

func newInspectorModel(limit int) *inspectorModel {
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)

	ti := textinput.New()
	ti.Placeholder = "0e 02 06 0f 01"
	ti.Prompt = "hex: "
	ti.Width = 48

	return &inspectorModel{
		names:    names,
		hexInput: ti,
		limit:    limit,
		state:    stateBrowse,
	}
}

func (m *inspectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.state == stateHexInput {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			m.state = stateBrowse
			m.hexInput.Blur()
			return m, nil

		case "enter":
			m.current = ""
			m.currentHex = m.hexInput.Value()
			m.refresh()
			m.state = stateShowResult
			m.hexInput.Blur()
			return m, nil
		}

		var cmd tea.Cmd
		m.hexInput, cmd = m.hexInput.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.state == stateBrowse && m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.state == stateBrowse && m.selected < len(m.names)-1 {
			m.selected++
		}

	case "enter":
		switch m.state {
		case stateBrowse:
			m.current = m.names[m.selected]
			m.currentHex = ""
			m.refresh()
			m.state = stateShowResult
		case stateShowResult:
			m.state = stateBrowse
			m.output = ""
			m.err = nil
		}

	case "h":
		if m.state == stateBrowse {
			m.state = stateHexInput
			m.hexInput.SetValue("")
			m.hexInput.Focus()
			return m, textinput.Blink
		}

	case "t":
		if m.limit == 0 {
			m.limit = 7
		} else {
			m.limit = 0
		}
		if m.state == stateShowResult {
			m.refresh()
		}

	case "esc":
		if m.state == stateShowResult {
			m.state = stateBrowse
			m.output = ""
			m.err = nil
		}
	}

	return m, nil
}

// refresh re-runs the last inspection so limit toggles update the result
// in place.
func (m *inspectorModel) refresh() {
	var b strings.Builder
	var err error
	switch {
	case m.current != "":
		err = inspectSample(&b, m.current, m.limit)
	case m.currentHex != "":
		err = inspectHex(&b, m.currentHex, m.limit)
	default:
		return
	}

	m.err = err
	m.output = b.String()
	if err != nil {
		m.output = ""
	}
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Shape Inspector"))
	if m.limit > 0 {
		b.WriteString(" ")
		b.WriteString(kindStyle.Render(fmt.Sprintf("arity limit %d", m.limit)))
	}
	b.WriteString("\n\n")

	switch m.state {
	case stateBrowse:
		b.WriteString("Select a sample type:\n\n")
		for i, name := range m.names {
			line := fmt.Sprintf("%-12s %s", name, samples[name])
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter inspect • h decode hex • t toggle limit • q quit"))

	case stateHexInput:
		b.WriteString("Decode an encoded descriptor:\n\n")
		b.WriteString(m.hexInput.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter decode • esc back"))

	case stateShowResult:
		if m.current != "" {
			b.WriteString(fmt.Sprintf("Sample %s:\n\n", nameStyle.Render(m.current)))
		}
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.output))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter back • t toggle limit • q quit"))
	}

	return b.String()
}

func runInteractive(limit int) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal")
	}

	p := tea.NewProgram(newInspectorModel(limit), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
