package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/thenoetrevino/lista/internal/config"
)

// KeyMap holds the bindings built from the configured key mappings
type KeyMap struct {
	Add          key.Binding
	Delete       key.Binding
	Clear        key.Binding
	Open         key.Binding
	Back         key.Binding
	Next         key.Binding
	Prev         key.Binding
	Scratch      key.Binding
	Confirm      key.Binding
	Cancel       key.Binding
	Submit       key.Binding
	ClearAllData key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// NewKeyMap builds bindings from the config. Arrow keys and ctrl+c always work.
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		Add:          key.NewBinding(key.WithKeys(km.Add), key.WithHelp(km.Add, "add")),
		Delete:       key.NewBinding(key.WithKeys(km.Delete), key.WithHelp(km.Delete, "delete")),
		Clear:        key.NewBinding(key.WithKeys(km.Clear), key.WithHelp(km.Clear, "clear list")),
		Open:         key.NewBinding(key.WithKeys(km.Open), key.WithHelp(km.Open, "open")),
		Back:         key.NewBinding(key.WithKeys(km.Back), key.WithHelp(km.Back, "back")),
		Next:         key.NewBinding(key.WithKeys(km.Next, "down"), key.WithHelp(km.Next+"/↓", "down")),
		Prev:         key.NewBinding(key.WithKeys(km.Prev, "up"), key.WithHelp(km.Prev+"/↑", "up")),
		Scratch:      key.NewBinding(key.WithKeys(km.Scratch), key.WithHelp(km.Scratch, "grocery list")),
		Confirm:      key.NewBinding(key.WithKeys(km.Confirm), key.WithHelp(km.Confirm, "confirm")),
		Cancel:       key.NewBinding(key.WithKeys(km.Cancel, "esc"), key.WithHelp(km.Cancel, "cancel")),
		Submit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		ClearAllData: key.NewBinding(key.WithKeys(km.ClearAllData), key.WithHelp(km.ClearAllData, "clear all data")),
		Help:         key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:         key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// ListsHelp returns the bindings shown on the lists overview
func (k KeyMap) ListsHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Open, k.Add, k.Delete, k.Scratch, k.ClearAllData, k.Help, k.Quit}
}

// DetailHelp returns the bindings shown on a list
func (k KeyMap) DetailHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Add, k.Delete, k.Clear, k.Back, k.Help, k.Quit}
}
