package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/lunchtray/internal/menu"
)

type StatusMsg struct {
	Text  string
	IsErr bool
}

// menuLoadedMsg carries the items for one menu stage.
type menuLoadedMsg struct {
	Category menu.Category
	Items    []menu.Item
	Err      error
}

// StatusCmd shows text on the status bar.
func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

// ErrorCmd shows err on the status bar in the error style.
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
