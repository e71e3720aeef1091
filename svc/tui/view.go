package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const helpStatusHeight = 3

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	passwordStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

func (m *model) View() string {
	var b strings.Builder
	switch m.state {
	case generatorScreen:
		b.WriteString(m.viewGenerator())
	case historyScreen:
		b.WriteString(m.entryList.View())
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}
	b.WriteString("\n" + helpStyle.Render(helpFor(m.state)))
	return m.docStyle.Render(b.String())
}

func (m *model) viewGenerator() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("passmint") + "\n\n")
	b.WriteString(checkbox("1", "uppercase (A-Z)", m.opts.Upper) + "\n")
	b.WriteString(checkbox("2", "lowercase (a-z)", m.opts.Lower) + "\n")
	b.WriteString(checkbox("3", "digits (0-9)", m.opts.Digits) + "\n")
	b.WriteString(checkbox("4", "symbols", m.opts.Symbols) + "\n\n")

	if m.lengthInput.Focused() {
		b.WriteString("length: " + m.lengthInput.View() + "\n")
	} else {
		b.WriteString("length: " + strconv.Itoa(m.opts.Length) +
			dimStyle.Render("  (e to edit)") + "\n")
	}

	if m.errText != "" {
		b.WriteString("\n" + errorStyle.Render(m.errText) + "\n")
	}
	if m.current != "" {
		b.WriteString("\n" + passwordStyle.Render(m.current) + "\n")
	}
	return b.String()
}

func checkbox(key, label string, on bool) string {
	mark := " "
	if on {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s %s", mark, key, label)
}

func helpFor(state screenState) string {
	switch state {
	case generatorScreen:
		return "1-4 toggle classes | e length | g/enter generate | c copy | tab history | q quit"
	case historyScreen:
		return "up/down select | c copy | d delete | tab generator | q quit"
	}
	return ""
}
