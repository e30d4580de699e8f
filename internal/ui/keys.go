package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the picker's key bindings. Printable keys always go to the
// query input, so every command sits on a control or function key.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	NextMotion key.Binding
	PrevMotion key.Binding
	Trigger    key.Binding
	Reduced    key.Binding
	Override   key.Binding
	Sort       key.Binding
	Copy       key.Binding
	Choose     key.Binding
	Help       key.Binding
	Rescan     key.Binding
	Clear      key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/C-p", "previous icon"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/C-n", "next icon"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "page down"),
		),
		NextMotion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next motion"),
		),
		PrevMotion: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-Tab", "previous motion"),
		),
		Trigger: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "cycle trigger"),
		),
		Reduced: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "toggle reduced motion"),
		),
		Override: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("C-a", "cycle animated override"),
		),
		Sort: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "cycle sort"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "copy snippet"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "copy and quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "help"),
		),
		Rescan: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("F5", "rescan icons dir"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "clear / quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextMotion, k.Trigger, k.Override, k.Choose, k.Help, k.Clear}
}

// FullHelp returns the bindings grouped for the help pager
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.NextMotion, k.PrevMotion, k.Trigger, k.Reduced, k.Override},
		{k.Sort, k.Copy, k.Choose},
		{k.Help, k.Rescan, k.Clear, k.Quit},
	}
}
