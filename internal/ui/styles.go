package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ilearncom/ilearncom/internal/curriculum"
)

var (
	appTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))

	sidebarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Width(24)

	sidebarItemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	sidebarActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("33")).
				Padding(0, 1)

	mainStyle = lipgloss.NewStyle().Padding(1, 3)

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))

	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)

	cardFocusStyle = cardStyle.
			BorderForeground(lipgloss.Color("33"))

	badgeStyle = lipgloss.NewStyle().Padding(0, 1)

	correctStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("35"))
	incorrectStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160"))

	explanationStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39")).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(lipgloss.Color("39")).
				PaddingLeft(1)

	optionStyle         = lipgloss.NewStyle().PaddingLeft(2)
	optionSelectedStyle = lipgloss.NewStyle().PaddingLeft(2).Bold(true).Foreground(lipgloss.Color("33"))

	tutorReplyStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// difficultyBadge renders a colored badge for a question's difficulty.
func difficultyBadge(d curriculum.Difficulty) string {
	switch d {
	case curriculum.Easy:
		return badgeStyle.Foreground(lipgloss.Color("35")).Render("easy")
	case curriculum.Medium:
		return badgeStyle.Foreground(lipgloss.Color("214")).Render("medium")
	case curriculum.Hard:
		return badgeStyle.Foreground(lipgloss.Color("160")).Render("hard")
	default:
		return badgeStyle.Render(string(d))
	}
}
