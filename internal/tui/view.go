package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sremy91/intuis-schedule-card/internal/constants"
	"github.com/sremy91/intuis-schedule-card/internal/schedule"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateWeek:
		content = docStyle.Render(m.viewWeek())
	case StateZones:
		content = docStyle.Render(m.viewZones())
	case StateSchedules:
		content = docStyle.Render(m.viewSchedules())
	case StateEditing:
		content = m.form.View()
	}

	var banner string
	if m.validationWarning != "" && m.state == StateWeek {
		banner = warningStyle.Render(m.validationWarning)
	}

	var status string
	if m.formError != "" {
		status = errorStyle.Render(m.formError)
	} else if m.status != "" {
		status = statusStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		banner,
		content,
		status,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Week", "Zones", "Schedules"}
	for i, title := range tabTitles {
		if m.state == SessionState(i) || (m.state == StateEditing && m.previousState == SessionState(i)) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	tabs = append(tabs, clockStyle.Render(m.clock.Format("Mon 15:04:05")))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewWeek() string {
	var days []string
	for d := 0; d < constants.DaysPerWeek; d++ {
		name := strings.ToUpper(m.dayName(d)[:3])
		if d == m.day {
			days = append(days, selectedDayStyle.Render(name))
		} else {
			days = append(days, dayHeaderStyle.Render(name))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, days...)

	blocks := m.dayBlocks()
	if len(blocks) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, "", "No schedule for this day.")
	}

	rows := make([]string, 0, len(blocks)+2)
	rows = append(rows, header, "")
	for i, block := range blocks {
		line := fmt.Sprintf("%s - %s  %s (%s)",
			block.StartTime,
			schedule.EndDisplay(block.EndMinutes),
			zoneStyle(block.Zone.ID).Render(block.Zone.Name),
			formatDuration(block.Duration()),
		)
		if i == m.row {
			line = cursorBlockStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}

	if active := m.activeNow(); active != "" {
		rows = append(rows, "", clockStyle.Render("Active now: "+active))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewZones() string {
	if len(m.catalog) == 0 {
		return "No zones defined."
	}

	rows := make([]string, 0, len(m.catalog))
	for _, zone := range m.catalog {
		line := zoneStyle(zone.ID).Render(zone.Name)
		if len(zone.RoomTemperatures) > 0 {
			var temps []string
			for room, temp := range zone.RoomTemperatures {
				temps = append(temps, fmt.Sprintf("%s %.1f°", room, temp))
			}
			line += clockStyle.Render(strings.Join(temps, ", "))
		}
		rows = append(rows, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewSchedules() string {
	if len(m.schedules.Names) == 0 {
		return "No schedules available."
	}

	rows := make([]string, 0, len(m.schedules.Names))
	for i, name := range m.schedules.Names {
		marker := "  "
		if name == m.schedules.Selected {
			marker = "* "
		}
		line := marker + name
		if i == m.sel && m.state == StateSchedules {
			line = cursorBlockStyle.Render(line)
		}
		rows = append(rows, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// activeNow resolves the zone currently heating according to the wall
// clock, using Monday-based day indexing.
func (m Model) activeNow() string {
	weekday := (int(m.clock.Weekday()) + 6) % constants.DaysPerWeek
	minute := m.clock.Hour()*60 + m.clock.Minute()
	blocks := m.blocks[weekday]
	zone := schedule.ActiveZoneAt(blocks, minute)
	if zone == nil {
		return ""
	}
	return zoneStyle(zone.ID).Render(zone.Name)
}

func formatDuration(minutes int) string {
	h, mi := minutes/60, minutes%60
	if mi == 0 {
		return fmt.Sprintf("%dh", h)
	}
	if h == 0 {
		return fmt.Sprintf("%dm", mi)
	}
	return fmt.Sprintf("%dh%02dm", h, mi)
}
