package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"passmint/pkg/domain"
	"passmint/svc/gen"
	"passmint/svc/util"
)

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := m.docStyle.GetFrameSize()
		m.width, m.height = msg.Width, msg.Height
		m.entryList.SetSize(msg.Width-h, msg.Height-v-helpStatusHeight)
		return m, nil

	case persistedMsg:
		return m.setStatus("saved")
	case persistErrorMsg:
		util.Error().Err(msg.err).Msg("persist failed")
		return m.setStatus("save failed: " + msg.err.Error())
	case copiedMsg:
		return m.setStatus("copied to clipboard")
	case copyErrorMsg:
		return m.setStatus("copy failed: " + msg.err.Error())
	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case keyTab:
			if m.state == generatorScreen {
				m.state = historyScreen
			} else {
				m.state = generatorScreen
			}
			return m, nil
		}
	}

	switch m.state {
	case generatorScreen:
		return m.updateGenerator(msg)
	case historyScreen:
		return m.updateHistory(msg)
	}
	return m, nil
}

func (m *model) updateGenerator(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.lengthInput.Focused() {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case keyEnter:
				m.commitLength()
				m.lengthInput.Blur()
				return m, nil
			case keyEsc:
				m.lengthInput.SetValue(strconv.Itoa(m.opts.Length))
				m.lengthInput.Blur()
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.lengthInput, cmd = m.lengthInput.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case keyQuit:
		return m, tea.Quit
	case "1":
		m.opts.Upper = !m.opts.Upper
	case "2":
		m.opts.Lower = !m.opts.Lower
	case "3":
		m.opts.Digits = !m.opts.Digits
	case "4":
		m.opts.Symbols = !m.opts.Symbols
	case keyLength:
		m.lengthInput.Focus()
		return m, textinput.Blink
	case keyCopy:
		if m.current != "" {
			return m, copyCmd(m.current)
		}
	case keyGen, keyEnter:
		return m.generate()
	}
	return m, nil
}

func (m *model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.entryList.SettingFilter() {
		switch keyMsg.String() {
		case keyQuit:
			return m, tea.Quit
		case keyDelete:
			if item, ok := m.entryList.SelectedItem().(entryItem); ok {
				m.entries = m.history.Remove(m.entries, item.entry.ID)
				m.entryList.SetItems(itemsFor(m.entries))
				return m, persistCmd(m.history, m.entries)
			}
			return m, nil
		case keyCopy:
			if item, ok := m.entryList.SelectedItem().(entryItem); ok {
				return m, copyCmd(item.entry.Value)
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.entryList, cmd = m.entryList.Update(msg)
	return m, cmd
}

// commitLength applies the edited length, clamped to the allowed range.
// Garbage input falls back to the previous value.
func (m *model) commitLength() {
	v, err := strconv.Atoi(m.lengthInput.Value())
	if err != nil {
		v = m.opts.Length
	}
	m.opts.Length = domain.ClampLength(v)
	m.lengthInput.SetValue(strconv.Itoa(m.opts.Length))
}

// generate runs one draw and, on success, appends the result to history.
// A validation failure only shows a message: neither the history nor the
// current password changes.
func (m *model) generate() (tea.Model, tea.Cmd) {
	value, err := gen.Generate(m.opts)
	if err != nil {
		if domain.IsValidation(err) {
			m.errText = err.Error()
			return m, nil
		}
		util.Error().Err(err).Msg("generate failed")
		return m.setStatus("generate failed: " + err.Error())
	}
	m.errText = ""
	m.current = value

	next, err := m.history.Append(m.entries, value)
	if err != nil {
		util.Error().Err(err).Msg("append failed")
		return m.setStatus("history update failed: " + err.Error())
	}
	m.entries = next
	m.entryList.SetItems(itemsFor(m.entries))
	util.Info().Int("length", len(value)).Str("value", util.RedactPassword(value)).Msg("password generated")
	return m, persistCmd(m.history, m.entries)
}

func (m *model) setStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, clearStatusCmd(statusTimeout)
}
