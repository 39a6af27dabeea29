package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	add     key.Binding
	delete  key.Binding
	edit    key.Binding
	refresh key.Binding
	train   key.Binding
	copy    key.Binding
	logout  key.Binding
	reveal  key.Binding
	next    key.Binding

	nextField key.Binding
	prevField key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),
	add:     key.NewBinding(key.WithKeys("a")),
	delete:  key.NewBinding(key.WithKeys("d")),
	edit:    key.NewBinding(key.WithKeys("e")),
	refresh: key.NewBinding(key.WithKeys("r")),
	train:   key.NewBinding(key.WithKeys("t")),
	copy:    key.NewBinding(key.WithKeys("c")),
	logout:  key.NewBinding(key.WithKeys("l")),
	// training reads free text, so its actions live on control keys
	reveal: key.NewBinding(key.WithKeys("ctrl+r")),
	next:   key.NewBinding(key.WithKeys("ctrl+n", "enter")),

	// forms: j/k must stay typeable
	nextField: key.NewBinding(key.WithKeys("tab", "down")),
	prevField: key.NewBinding(key.WithKeys("shift+tab", "up")),
}
