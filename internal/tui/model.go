package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/sremy91/intuis-schedule-card/internal/constants"
	"github.com/sremy91/intuis-schedule-card/internal/hub"
	"github.com/sremy91/intuis-schedule-card/internal/models"
	"github.com/sremy91/intuis-schedule-card/internal/reconciler"
	"github.com/sremy91/intuis-schedule-card/internal/schedule"
	"github.com/sremy91/intuis-schedule-card/internal/validation"
)

type SessionState int

const (
	StateWeek SessionState = iota
	StateZones
	StateSchedules
	StateEditing
)

// SpanFormModel holds the raw edit form values before they are pushed
// into the reconciler session.
type SpanFormModel struct {
	Zone      string
	StartDay  string
	StartTime string
	EndDay    string
	EndTime   string
}

type Model struct {
	svc      hub.Service
	rec      *reconciler.Reconciler
	protocol reconciler.Protocol

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	timetable models.WeeklyTimetable
	catalog   schedule.Catalog
	blocks    [constants.DaysPerWeek][]models.Block
	schedules models.ScheduleInfo

	day int // cursor day
	row int // cursor block within the day
	sel int // cursor on the schedules tab

	session  *reconciler.Session
	form     *huh.Form
	spanForm *SpanFormModel

	now      func() time.Time
	dayName  func(int) string
	clock    time.Time
	quitting bool
	width    int
	height   int

	status    string
	formError string

	validationWarning   string
	validationConflicts []validation.Conflict
}

func NewModel(svc hub.Service, protocol reconciler.Protocol) Model {
	m := Model{
		svc:      svc,
		rec:      reconciler.New(svc),
		protocol: protocol,
		state:    StateWeek,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		now:      time.Now,
		dayName:  schedule.DayName,
	}
	m.clock = m.now()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateWeek:
		keys = append(keys, m.keys.Enter, m.keys.Refresh)
	case StateSchedules:
		keys = append(keys, m.keys.Enter)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.loadData())
}

// dayBlocks returns the expanded blocks for the cursor day.
func (m Model) dayBlocks() []models.Block {
	if m.day < 0 || m.day >= constants.DaysPerWeek {
		return nil
	}
	return m.blocks[m.day]
}

func (m *Model) reExpand() {
	for d := 0; d < constants.DaysPerWeek; d++ {
		m.blocks[d] = schedule.Expand(m.timetable, m.catalog, d)
	}
	if m.row >= len(m.dayBlocks()) {
		m.row = 0
	}
}

// updateValidationStatus runs validation and updates the warning banner
func (m *Model) updateValidationStatus() {
	validator := validation.New()
	zoneResult := validator.ValidateZones(m.catalog)
	ttResult := validator.ValidateTimetable(m.timetable, m.catalog)

	allConflicts := append(zoneResult.Conflicts, ttResult.Conflicts...)
	m.validationConflicts = allConflicts

	if len(allConflicts) > 0 {
		m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s)", len(allConflicts))
	} else {
		m.validationWarning = ""
	}
}
