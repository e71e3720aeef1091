package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"passmint/cfg"
	"passmint/svc/hist"
)

// Run starts the interactive surface and blocks until the user quits. It
// owns the terminal; logging must already be pointed away from stderr.
func Run(c *cfg.Cfg, h *hist.History) error {
	entries := h.Load(context.Background())
	m := newModel(c, h, entries)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return errors.Wrap(err, "run tui")
}
