package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"passmint/pkg/domain"
	"passmint/svc/hist"
)

type persistedMsg struct{}

type persistErrorMsg struct {
	err error
}

type copiedMsg struct{}

type copyErrorMsg struct {
	err error
}

type clearStatusMsg struct{}

// persistCmd writes the given snapshot of the collection to storage. The
// slice is passed by value; the model keeps exclusive ownership of its
// own copy.
func persistCmd(h *hist.History, entries []domain.Entry) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.Persist(ctx, entries); err != nil {
			return persistErrorMsg{err: err}
		}
		return persistedMsg{}
	}
}

func copyCmd(value string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(value); err != nil {
			return copyErrorMsg{err: err}
		}
		return copiedMsg{}
	}
}

func clearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
