package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"passmint/cfg"
	"passmint/pkg/domain"
	"passmint/svc/hist"
)

// Screens of the application.
type screenState int

const (
	generatorScreen screenState = iota
	historyScreen
)

const (
	defaultListWidth  = 80
	defaultListHeight = 24

	keyQuit   = "q"
	keyTab    = "tab"
	keyEnter  = "enter"
	keyEsc    = "esc"
	keyGen    = "g"
	keyCopy   = "c"
	keyDelete = "d"
	keyLength = "e"
)

const statusTimeout = 3 * time.Second

// entryItem adapts a history entry to the bubbles list.
type entryItem struct {
	entry domain.Entry
}

func (i entryItem) Title() string { return i.entry.Value }

// Description formats the creation time for display. The stored
// timestamp string itself is never altered.
func (i entryItem) Description() string {
	t, ok := i.entry.Created()
	if !ok {
		return i.entry.CreatedAt
	}
	return t.Local().Format("2006-01-02 15:04")
}

func (i entryItem) FilterValue() string { return i.entry.Value }

// model holds the whole TUI state. The entries slice is the single owned
// copy of the in-memory history; every mutation goes through the three
// hist operations and is followed by an explicit persist command.
type model struct {
	state       screenState
	cfg         *cfg.Cfg
	history     *hist.History
	entries     []domain.Entry
	opts        domain.Options
	lengthInput textinput.Model
	entryList   list.Model
	current     string // last generated password, shown on the generator screen
	errText     string // validation message, cleared by the next successful generate
	status      string
	width       int
	height      int
	docStyle    lipgloss.Style
}

func newModel(c *cfg.Cfg, h *hist.History, entries []domain.Entry) *model {
	opts := domain.DefaultOptions()
	opts.Length = c.DefaultLength

	li := textinput.New()
	li.SetValue(strconv.Itoa(opts.Length))
	li.CharLimit = 2
	li.Width = 4

	el := list.New(itemsFor(entries), list.NewDefaultDelegate(), defaultListWidth, defaultListHeight)
	el.Title = "History (last 30 days)"
	el.SetShowStatusBar(false)

	return &model{
		state:       generatorScreen,
		cfg:         c,
		history:     h,
		entries:     entries,
		opts:        opts,
		lengthInput: li,
		entryList:   el,
		docStyle:    lipgloss.NewStyle().Margin(1, 2),
	}
}

func itemsFor(entries []domain.Entry) []list.Item {
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, entryItem{entry: e})
	}
	return items
}
