package widgets

import "github.com/charmbracelet/lipgloss"

type Box struct {
	Title       string
	Content     string
	BorderColor lipgloss.TerminalColor
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(max(1, width-2)).Height(max(1, height-2))
	if b.BorderColor != nil {
		style = style.BorderForeground(b.BorderColor)
	}
	body := b.Content
	if b.Title != "" {
		body = "[" + b.Title + "]\n" + body
	}
	return style.Render(FitHeight(body, max(1, height-2)))
}
