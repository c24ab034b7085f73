package tui

import "github.com/charmbracelet/lipgloss"

// Theme collects the lipgloss styles used across screens.
type Theme struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Help       lipgloss.Style
	Error      lipgloss.Style
	Status     lipgloss.Style
	Label      lipgloss.Style
	Message    lipgloss.Style
	Reply      lipgloss.Style
	Meta       lipgloss.Style
	Selected   lipgloss.Style
	AdBanner   lipgloss.Style
	PremiumTag lipgloss.Style
	Container  lipgloss.Style
}

func defaultTheme() Theme {
	pink := lipgloss.AdaptiveColor{Light: "#D6336C", Dark: "#FF6B9D"}
	subtle := lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#8A8A8A"}
	gold := lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFD700"}

	return Theme{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(pink),
		Subtitle: lipgloss.NewStyle().
			Foreground(subtle),
		Help: lipgloss.NewStyle().
			Foreground(subtle).
			MarginTop(1),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#C00020", Dark: "#FF5F5F"}),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#006644", Dark: "#5FD7A7"}),
		Label: lipgloss.NewStyle().
			Bold(true),
		Message: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 1),
		Reply: lipgloss.NewStyle().
			Foreground(pink).
			PaddingLeft(2),
		Meta: lipgloss.NewStyle().
			Foreground(subtle).
			PaddingLeft(2),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(pink),
		AdBanner: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(subtle).
			Foreground(subtle).
			Padding(0, 1).
			MarginTop(1),
		PremiumTag: lipgloss.NewStyle().
			Bold(true).
			Foreground(gold),
		Container: lipgloss.NewStyle().
			Padding(1, 2),
	}
}
