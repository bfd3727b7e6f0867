package tui

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"}
	muted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	border  = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}
	danger  = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}

	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(primary).Padding(0, 1).Underline(true)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(muted).Padding(0, 1)
	labelStyle       = lipgloss.NewStyle().Foreground(muted).Width(10)
	codeStyle        = lipgloss.NewStyle().Bold(true)
	mutedStyle       = lipgloss.NewStyle().Foreground(muted)
	captionStyle     = lipgloss.NewStyle().Foreground(muted).Italic(true)
	noticeTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(danger)
)

func cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

func noticeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(danger).
		Padding(0, 1)
}
