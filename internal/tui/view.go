package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/lunchtray/internal/order"
	"github.com/jask/lunchtray/internal/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := renderHeader(m)
	status := renderStatusBar(m)
	footer := renderFooter(m)
	bodyHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))
	var body string
	if bodyHeight > 0 {
		body = m.activeScreen().View(&m, max(1, m.width-2), bodyHeight)
	}
	body = widgets.FitHeight(body, bodyHeight)
	view := strings.Join([]string{header, status, body, footer}, "\n")
	view = widgets.FitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func renderHeader(m Model) string {
	left := ""
	if m.session.CanNavigateBack() {
		left = headerBackStyle.Render("← ")
	}
	left += headerTitleStyle.Render(m.session.Stage().Title())
	right := headerTotalStyle.Render("Total " + order.Money(m.currency, m.session.Order().Total))
	gap := max(1, m.width-ansi.StringWidth(left)-ansi.StringWidth(right))
	line := left + headerBarStyle.Render(strings.Repeat(" ", gap)) + right
	return renderBar(headerBarStyle, max(1, m.width), line)
}

func renderStatusBar(m Model) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	if m.statusErr {
		return renderBar(statusErrBarStyle, max(1, m.width), msg)
	}
	return renderBar(statusBarStyle, max(1, m.width), msg)
}

func renderFooter(m Model) string {
	bindings := m.keys.BindingsForScope(m.ActiveScope())
	space := footerStyle.Render(" ")
	sep := footerStyle.Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(displayKey(b.Keys[0]), b.Description))
		h := kb.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+helpDescStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = helpDescStyle.Render("No shortcuts")
	}
	return renderBar(footerStyle, max(1, m.width), line)
}

func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func renderBar(style lipgloss.Style, width int, text string) string {
	return style.Width(width).MaxWidth(width).Render(widgets.PadLine(text, width))
}
