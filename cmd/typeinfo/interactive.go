package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/oiio-go/typedesc"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const historyLimit = 12

type entry struct {
	input  string
	output string
	isErr  bool
}

type interactiveModel struct {
	input   textinput.Model
	history []entry
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "float[3], point, or: merge int8 uint16"
	ti.Prompt = "> "
	ti.Width = 48
	ti.Focus()
	return &interactiveModel{input: ti}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			if line == "" {
				return m, nil
			}
			if line == "q" || line == "quit" {
				return m, tea.Quit
			}
			out, err := evaluate(line)
			e := entry{input: line, output: out}
			if err != nil {
				e.output = err.Error()
				e.isErr = true
			}
			m.history = append(m.history, e)
			if len(m.history) > historyLimit {
				m.history = m.history[len(m.history)-historyLimit:]
			}
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// evaluate interprets one line: either a promotion request of the form
// "merge a b [c]" or a type name to describe.
func evaluate(line string) (string, error) {
	if rest, ok := strings.CutPrefix(line, "merge "); ok {
		return evalMerge(rest)
	}
	return evalType(line)
}

func evalMerge(rest string) (string, error) {
	parts := strings.Fields(rest)
	if len(parts) != 2 && len(parts) != 3 {
		return "", fmt.Errorf("merge wants two or three base types")
	}
	bases := make([]typedesc.BaseType, len(parts))
	for i, p := range parts {
		t, n := typedesc.ParseType(p)
		if n == 0 {
			return "", fmt.Errorf("unknown base type %q", p)
		}
		bases[i] = t.BaseType
	}
	var result typedesc.BaseType
	if len(bases) == 2 {
		result = typedesc.MergeBase(bases[0], bases[1])
	} else {
		result = typedesc.MergeBase3(bases[0], bases[1], bases[2])
	}
	return result.String(), nil
}

func evalType(line string) (string, error) {
	t, n := typedesc.ParseType(line)
	if n == 0 {
		return "", fmt.Errorf("no valid type at the front of %q", line)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s = %s %s %s arraylen=%d",
		t,
		fieldStyle.Render(t.BaseType.String()),
		fieldStyle.Render(t.Aggregate.String()),
		fieldStyle.Render(t.VecSemantics.String()),
		t.ArrayLen)
	if sz, err := t.Size(); err == nil {
		fmt.Fprintf(&b, "  (%d bytes)", sz)
	} else {
		b.WriteString("  (size undefined)")
	}
	return b.String(), nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Type Explorer"))
	b.WriteString("\n\n")

	for _, e := range m.history {
		b.WriteString(inputStyle.Render("> " + e.input))
		b.WriteString("\n  ")
		if e.isErr {
			b.WriteString(errorStyle.Render(e.output))
		} else {
			b.WriteString(resultStyle.Render(e.output))
		}
		b.WriteString("\n")
	}
	if len(m.history) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter evaluate • esc quit"))
	b.WriteString("\n")
	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
