package hub

import (
	"context"
	"fmt"

	"github.com/sremy91/intuis-schedule-card/internal/models"
	"github.com/sremy91/intuis-schedule-card/internal/schedule"
	"github.com/sremy91/intuis-schedule-card/internal/storage"
)

// Local is a gateway backed by a local schedule store, used for offline
// operation, demos, and round-trip tests. It implements the same update
// semantics a real gateway applies: a slot event replaces the entry at its
// exact (day, time) position.
type Local struct {
	store storage.Provider
}

func NewLocal(store storage.Provider) *Local {
	return &Local{store: store}
}

func (l *Local) Timetable(ctx context.Context) (models.WeeklyTimetable, error) {
	return l.store.Timetable()
}

func (l *Local) Zones(ctx context.Context) ([]models.Zone, error) {
	return l.store.Zones()
}

func (l *Local) Schedules(ctx context.Context) (models.ScheduleInfo, error) {
	return l.store.Schedules()
}

func (l *Local) SelectSchedule(ctx context.Context, name string) error {
	return l.store.SelectSchedule(name)
}

func (l *Local) SetScheduleSlot(ctx context.Context, day int, startTime string, zoneID int) error {
	zone, err := l.store.ZoneByID(zoneID)
	if err != nil {
		return fmt.Errorf("slot update rejected: %w", err)
	}
	return l.store.UpsertEntry(day, startTime, zone.Name)
}

// SetScheduleSpan applies a whole edit natively: the new zone at the span
// start, at 00:00 of every further covered day, and, unless the span runs
// through midnight, whatever zone was active at the end minute before the
// edit re-established at the end time.
func (l *Local) SetScheduleSpan(ctx context.Context, startDay, endDay int, startTime, endTime, zoneName string) error {
	zones, err := l.store.Zones()
	if err != nil {
		return err
	}
	catalog := schedule.Catalog(zones)
	if _, ok := catalog.ByName(zoneName); !ok {
		return fmt.Errorf("span update rejected: unknown zone %q", zoneName)
	}

	// Resolve the restore zone against the pre-edit timetable.
	var restore string
	if endTime != "00:00" {
		tt, err := l.store.Timetable()
		if err != nil {
			return err
		}
		blocks := schedule.Expand(tt, catalog, endDay)
		if zone := schedule.ActiveZoneAt(blocks, schedule.ToMinutes(endTime)); zone != nil {
			restore = zone.Name
		}
	}

	if err := l.store.UpsertEntry(startDay, startTime, zoneName); err != nil {
		return err
	}
	if startDay != endDay {
		for d := schedule.NextDay(startDay); d != endDay; d = schedule.NextDay(d) {
			if err := l.store.UpsertEntry(d, "00:00", zoneName); err != nil {
				return err
			}
		}
		if err := l.store.UpsertEntry(endDay, "00:00", zoneName); err != nil {
			return err
		}
	}
	if endTime != "00:00" && restore != "" {
		if err := l.store.UpsertEntry(endDay, endTime, restore); err != nil {
			return err
		}
	}
	return nil
}

// RefreshSchedules is a no-op for a local store: reads are always fresh.
func (l *Local) RefreshSchedules(ctx context.Context) error {
	return nil
}
