// Package view holds the screens of the Xylo terminal client: the analyze
// form and the decision log browser.
package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// CommonModel carries the terminal dimensions shared by every screen.
type CommonModel struct {
	Width  int
	Height int
}

// BackMsg signals the root model to return to the menu.
type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}
