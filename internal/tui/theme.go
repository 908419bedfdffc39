package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorBorder  lipgloss.Color = "#585b70"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorError   lipgloss.Color = "#f38ba8"
	colorEdit    lipgloss.Color = "#f9e2af"
	colorMantle  lipgloss.Color = "#181825"
	colorSurface lipgloss.Color = "#313244"
)

var (
	titleStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	mutedStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	editBadgeStyle  = lipgloss.NewStyle().Foreground(colorEdit).Bold(true)
	statusBarStyle  = lipgloss.NewStyle().Foreground(colorSuccess).Background(colorSurface)
	statusErrStyle  = lipgloss.NewStyle().Foreground(colorError).Background(colorSurface)
	footerStyle     = lipgloss.NewStyle().Background(colorMantle)
	footerKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	footerDescStyle = lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)

	paneBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)
	paneFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorAccent)
	paneEditingStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorEdit)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)

	cursorRowStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
)
