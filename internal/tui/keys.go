package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	confirm key.Binding
	quit    key.Binding
}

var keys = keyMap{
	confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	quit:    key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
}

func (k keyMap) helpLine() string {
	confirm, quit := k.confirm.Help(), k.quit.Help()
	return confirm.Key + ": " + confirm.Desc + " │ " + quit.Key + ": " + quit.Desc
}
