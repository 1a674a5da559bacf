package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mantra-journal/mantra/internal/journal"
)

// KeyMap defines the dashboard keybindings
type KeyMap struct {
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns the keybindings shown in the help bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Quit}
}

// FullHelp returns all keybindings
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle, k.Quit}}
}

var defaultKeys = KeyMap{
	Toggle: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "toggle intention"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model is the dashboard state: a read-mostly view over the journal store
// with a single mutation (the intention toggle).
type Model struct {
	store *journal.Store
	keys  KeyMap
	help  help.Model
	width int
}

// NewModel builds the dashboard over a loaded store.
func NewModel(store *journal.Store) Model {
	return Model{
		store: store,
		keys:  defaultKeys,
		help:  help.New(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the dashboard program.
func Run(store *journal.Store) error {
	_, err := tea.NewProgram(NewModel(store)).Run()
	return err
}
