package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha.
const (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorPeach    lipgloss.Color = "#fab387"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	headerTitleStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Background(colorMantle).
				Bold(true)
	headerBackStyle = lipgloss.NewStyle().
			Foreground(colorPeach).
			Background(colorMantle)
	headerTotalStyle = lipgloss.NewStyle().
				Foreground(colorSuccess).
				Background(colorMantle)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	keyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)

	priceStyle    = lipgloss.NewStyle().Foreground(colorPeach)
	selectedStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	totalStyle    = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
)
