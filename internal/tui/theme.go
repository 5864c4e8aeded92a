package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the form uses.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorBase     lipgloss.Color = "#1e1e2e"
)

const (
	colorBrand   = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorBrand)
	labelStyle   = lipgloss.NewStyle().Foreground(colorText).Width(16)
	focusLabel   = labelStyle.Foreground(colorFocus).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).PaddingLeft(16)
	hintStyle    = lipgloss.NewStyle().Foreground(colorWarning).Italic(true).PaddingLeft(16)
	helpStyle    = lipgloss.NewStyle().Foreground(colorOverlay0)
	statusStyle  = lipgloss.NewStyle().Foreground(colorWarning)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)

	buttonEnabled = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorBlue).
			Padding(0, 2)
	buttonDisabled = lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Background(colorSurface1).
			Padding(0, 2)
)
