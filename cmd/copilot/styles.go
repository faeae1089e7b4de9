package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/salescopilot/copilot/internal/planner"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	gapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	riskLowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	riskMediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB000"))
	riskHighStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")).Bold(true)
)

// riskStyle picks the render style for a risk level.
func riskStyle(level planner.RiskLevel) lipgloss.Style {
	switch level {
	case planner.RiskLevelHigh:
		return riskHighStyle
	case planner.RiskLevelMedium:
		return riskMediumStyle
	default:
		return riskLowStyle
	}
}
