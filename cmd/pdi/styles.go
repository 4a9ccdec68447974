package main

import "github.com/charmbracelet/lipgloss"

var (
	colorMuted  = lipgloss.Color("#636B78")
	colorRed    = lipgloss.Color("#E06C75")
	colorGreen  = lipgloss.Color("#98C379")
	colorYellow = lipgloss.Color("#E5C07B")
	colorBlue   = lipgloss.Color("#61AFEF")
	colorCyan   = lipgloss.Color("#56B6C2")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	okStyle      = lipgloss.NewStyle().Foreground(colorGreen)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	warnStyle    = lipgloss.NewStyle().Foreground(colorYellow)
	userStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	botStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	sectionStyle = lipgloss.NewStyle().Foreground(colorYellow)
)
