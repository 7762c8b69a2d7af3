package tui

import "github.com/charmbracelet/lipgloss"

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	dayHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	selectedDayStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Padding(0, 1).
				Bold(true)

	cursorBlockStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("236")).
				Bold(true)

	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true).
			Padding(0, 1)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	docStyle = lipgloss.NewStyle().Padding(1, 2)

	// Terminal palette cycled by zone ID so every zone keeps a stable color
	// across tabs and redraws.
	zonePalette = []lipgloss.Color{"203", "114", "75", "179", "140", "80"}
)

func zoneStyle(zoneID int) lipgloss.Style {
	color := zonePalette[((zoneID%len(zonePalette))+len(zonePalette))%len(zonePalette)]
	return lipgloss.NewStyle().Foreground(color)
}
