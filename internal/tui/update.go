package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/sremy91/intuis-schedule-card/internal/constants"
	"github.com/sremy91/intuis-schedule-card/internal/models"
	"github.com/sremy91/intuis-schedule-card/internal/reconciler"
	"github.com/sremy91/intuis-schedule-card/internal/schedule"
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type dataMsg struct {
	timetable models.WeeklyTimetable
	zones     []models.Zone
	schedules models.ScheduleInfo
	err       error
}

type applyDoneMsg struct {
	err error
}

type refreshDoneMsg struct {
	err error
}

func (m Model) loadData() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx := context.Background()
		tt, err := svc.Timetable(ctx)
		if err != nil {
			return dataMsg{err: err}
		}
		zones, err := svc.Zones(ctx)
		if err != nil {
			return dataMsg{err: err}
		}
		schedules, err := svc.Schedules(ctx)
		if err != nil {
			return dataMsg{err: err}
		}
		return dataMsg{timetable: tt, zones: zones, schedules: schedules}
	}
}

func (m Model) applyEdit(session *reconciler.Session) tea.Cmd {
	proto := m.protocol
	return func() tea.Msg {
		return applyDoneMsg{err: session.Apply(context.Background(), proto)}
	}
}

func (m Model) refresh() tea.Cmd {
	rec := m.rec
	return func() tea.Msg {
		return refreshDoneMsg{err: rec.Refresh(context.Background())}
	}
}

func (m Model) selectSchedule(name string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		if err := svc.SelectSchedule(context.Background(), name); err != nil {
			return dataMsg{err: err}
		}
		return m.loadData()()
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.clock = time.Time(msg)
		if m.state != StateEditing {
			return m, tick()
		}
		cmds = append(cmds, tick())

	case dataMsg:
		if msg.err != nil {
			m.status = ""
			m.formError = fmt.Sprintf("Failed to load schedule: %v", msg.err)
			return m, nil
		}
		m.timetable = msg.timetable
		m.catalog = schedule.Catalog(msg.zones)
		m.schedules = msg.schedules
		m.formError = ""
		m.reExpand()
		m.updateValidationStatus()
		return m, nil

	case applyDoneMsg:
		m.session = nil
		if msg.err != nil {
			m.status = ""
			m.formError = fmt.Sprintf("Schedule update failed: %v", msg.err)
			return m, nil
		}
		m.status = "Schedule updated"
		m.formError = ""
		return m, m.loadData()

	case refreshDoneMsg:
		if msg.err != nil {
			m.formError = fmt.Sprintf("Refresh failed: %v", msg.err)
			return m, nil
		}
		m.status = "Schedules refreshed"
		return m, m.loadData()
	}

	if m.state == StateEditing {
		return m.updateEditing(msg, cmds)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if cmd, handled := m.handleKeys(msg); handled {
			return m, cmd
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit, true

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil, true

	case key.Matches(msg, m.keys.Tab):
		m.state = (m.state + 1) % 3
		return nil, true

	case key.Matches(msg, m.keys.ShiftTab):
		m.state = (m.state + 2) % 3
		return nil, true

	case key.Matches(msg, m.keys.Left):
		if m.state == StateWeek {
			m.day = schedule.PrevDay(m.day)
			m.row = 0
		}
		return nil, true

	case key.Matches(msg, m.keys.Right):
		if m.state == StateWeek {
			m.day = schedule.NextDay(m.day)
			m.row = 0
		}
		return nil, true

	case key.Matches(msg, m.keys.Up):
		switch m.state {
		case StateWeek:
			if m.row > 0 {
				m.row--
			}
		case StateSchedules:
			if m.sel > 0 {
				m.sel--
			}
		}
		return nil, true

	case key.Matches(msg, m.keys.Down):
		switch m.state {
		case StateWeek:
			if m.row < len(m.dayBlocks())-1 {
				m.row++
			}
		case StateSchedules:
			if m.sel < len(m.schedules.Names)-1 {
				m.sel++
			}
		}
		return nil, true

	case key.Matches(msg, m.keys.Refresh):
		return m.refresh(), true

	case key.Matches(msg, m.keys.Enter):
		switch m.state {
		case StateWeek:
			m.openEditor()
			return nil, true
		case StateSchedules:
			if m.sel < len(m.schedules.Names) {
				return m.selectSchedule(m.schedules.Names[m.sel]), true
			}
		}
		return nil, true
	}
	return nil, false
}

// openEditor expands the cursor block into its full span and builds the
// edit form around it.
func (m *Model) openEditor() {
	blocks := m.dayBlocks()
	if m.row >= len(blocks) {
		return
	}
	block := blocks[m.row]
	span := schedule.DetectSpan(m.timetable, m.catalog, m.day, block)

	session := reconciler.NewSession(m.rec)
	session.Open(span, block.Zone)
	m.session = session

	m.spanForm = &SpanFormModel{
		Zone:      block.Zone.Name,
		StartDay:  span.StartDayName(),
		StartTime: span.StartTime,
		EndDay:    span.EndDayName(),
		EndTime:   span.EndTime,
	}

	zoneOptions := make([]huh.Option[string], len(m.catalog))
	for i, zone := range m.catalog {
		zoneOptions[i] = huh.NewOption(zone.Name, zone.Name)
	}
	dayOptions := make([]huh.Option[string], constants.DaysPerWeek)
	for d := 0; d < constants.DaysPerWeek; d++ {
		name := schedule.DayName(d)
		dayOptions[d] = huh.NewOption(m.dayName(d), name)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Zone").
				Options(zoneOptions...).
				Value(&m.spanForm.Zone),
			huh.NewSelect[string]().
				Title("Start day").
				Options(dayOptions...).
				Value(&m.spanForm.StartDay),
			huh.NewInput().
				Title("Start time (HH:MM)").
				Value(&m.spanForm.StartTime),
			huh.NewSelect[string]().
				Title("End day").
				Options(dayOptions...).
				Value(&m.spanForm.EndDay),
			huh.NewInput().
				Title("End time (HH:MM or 24:00)").
				Value(&m.spanForm.EndTime),
		),
	)
	m.previousState = m.state
	m.state = StateEditing
	m.status = ""
	m.formError = ""
}

func (m Model) updateEditing(msg tea.Msg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		if m.session != nil {
			m.session.Cancel()
			m.session = nil
		}
		m.state = m.previousState
		return m, tea.Batch(cmds...)
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		cmd, err := m.commitForm()
		if err != nil {
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}
		m.state = m.previousState
		cmds = append(cmds, cmd)
	case huh.StateAborted:
		if m.session != nil {
			m.session.Cancel()
			m.session = nil
		}
		m.state = m.previousState
	}
	return m, tea.Batch(cmds...)
}

// commitForm pushes the form values into the session and kicks off the
// apply command.
func (m *Model) commitForm() (tea.Cmd, error) {
	if m.session == nil {
		return nil, fmt.Errorf("no edit in progress")
	}

	zone, ok := m.catalog.ByName(strings.TrimSpace(m.spanForm.Zone))
	if !ok {
		return nil, fmt.Errorf("unknown zone %q", m.spanForm.Zone)
	}

	startDay, ok := schedule.DayIndex(m.spanForm.StartDay)
	if !ok {
		return nil, fmt.Errorf("unknown day %q", m.spanForm.StartDay)
	}
	endDay, ok := schedule.DayIndex(m.spanForm.EndDay)
	if !ok {
		return nil, fmt.Errorf("unknown day %q", m.spanForm.EndDay)
	}

	startTime := strings.TrimSpace(m.spanForm.StartTime)
	endTime := strings.TrimSpace(m.spanForm.EndTime)
	if schedule.ToMinutes(startTime) >= constants.MinutesPerDay {
		return nil, fmt.Errorf("start time %q is outside the day", startTime)
	}

	if err := m.session.SetZone(zone); err != nil {
		return nil, err
	}
	if err := m.session.SetStart(startDay, startTime); err != nil {
		return nil, err
	}
	if err := m.session.SetEnd(endDay, endTime); err != nil {
		return nil, err
	}
	return m.applyEdit(m.session), nil
}
