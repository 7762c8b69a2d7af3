package storage

import "github.com/sremy91/intuis-schedule-card/internal/models"

// Provider is the gateway-side schedule store backing the local gateway.
// It owns the weekly timetable, zone catalog, and schedule list; the card
// core never touches it directly.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Timetable
	Timetable() (models.WeeklyTimetable, error)
	SaveTimetable(models.WeeklyTimetable) error
	// UpsertEntry inserts or replaces the entry at (day, time). This is the
	// storage form of one multi-call slot event.
	UpsertEntry(day int, timeStr, zoneName string) error

	// Zones
	Zones() ([]models.Zone, error)
	SaveZones([]models.Zone) error
	ZoneByID(id int) (models.Zone, error)

	// Schedules
	Schedules() (models.ScheduleInfo, error)
	SaveSchedules(models.ScheduleInfo) error
	SelectSchedule(name string) error

	// Utils
	GetConfigPath() string
}
