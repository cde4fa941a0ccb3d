package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#a6adc8"
	colorBorder   lipgloss.Color = "#585b70"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	sectionStyle = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	rowStyle     = lipgloss.NewStyle().Foreground(colorText)
	cursorStyle  = lipgloss.NewStyle().Foreground(colorAccent).Background(colorSurface0).Bold(true)
	selectedMark = lipgloss.NewStyle().Foreground(colorSuccess).Render("✓")
	menuStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(colorSuccess).Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().Background(colorMantle)
	emptyStyle  = lipgloss.NewStyle().Foreground(colorMuted)
)
