package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds every binding the app reacts to
type KeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Pager     key.Binding

	// login
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding

	// onboarding
	Previous key.Binding
	Next     key.Binding
	Done     key.Binding
	Skip     key.Binding

	// home
	Logout key.Binding
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Pager:     key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "key reference")),

		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "previous field")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "sign in")),

		Previous: key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/h", "previous")),
		Next:     key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/l", "next")),
		Done:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		Skip:     key.NewBinding(key.WithKeys("s", "esc"), key.WithHelp("s/esc", "skip")),

		Logout: key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter/o", "logout")),
	}
}

// screenKeys adapts a set of bindings to help.KeyMap
type screenKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k screenKeys) ShortHelp() []key.Binding  { return k.short }
func (k screenKeys) FullHelp() [][]key.Binding { return k.full }

// forScreen returns the bindings shown in the help line for s
func (k KeyMap) forScreen(s screen) screenKeys {
	switch s {
	case screenOnboarding:
		return screenKeys{
			short: []key.Binding{k.Previous, k.Next, k.Done, k.Skip, k.Help},
			full: [][]key.Binding{
				{k.Previous, k.Next, k.Done, k.Skip},
				{k.Pager, k.Quit, k.ForceQuit},
			},
		}
	case screenHome:
		return screenKeys{
			short: []key.Binding{k.Logout, k.Quit, k.Help},
			full: [][]key.Binding{
				{k.Logout},
				{k.Pager, k.Quit, k.ForceQuit},
			},
		}
	default:
		return screenKeys{
			short: []key.Binding{k.NextField, k.Submit, k.ForceQuit},
			full: [][]key.Binding{
				{k.NextField, k.PrevField, k.Submit},
				{k.Pager, k.ForceQuit},
			},
		}
	}
}
