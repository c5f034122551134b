package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap lists the bindings summarized in the footer. The input modes do
// the actual dispatch; these only describe it.
type keyMap struct {
	CycleMode     key.Binding
	CycleSort     key.Binding
	CyclePageSize key.Binding
	PrevPage      key.Binding
	NextPage      key.Binding
	FirstPage     key.Binding
	LastPage      key.Binding
	JumpPage      key.Binding
	Pager         key.Binding
	Help          key.Binding
	Clear         key.Binding
	Quit          key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		CycleMode: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "mode"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "sort"),
		),
		CyclePageSize: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "page size"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "next page"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("ctrl+pgup"),
			key.WithHelp("ctrl+pgup", "first page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys("ctrl+pgdown"),
			key.WithHelp("ctrl+pgdn", "last page"),
		),
		JumpPage: key.NewBinding(
			key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9"),
			key.WithHelp("alt+1-9", "go to page"),
		),
		Pager: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "open in pager"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear/quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CycleMode, k.CycleSort, k.PrevPage, k.NextPage, k.Help, k.Clear}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.CycleMode, k.CycleSort, k.CyclePageSize},
		{k.PrevPage, k.NextPage, k.FirstPage, k.LastPage, k.JumpPage},
		{k.Pager, k.Help, k.Clear, k.Quit},
	}
}
