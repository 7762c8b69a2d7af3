package hub

import (
	"context"

	"github.com/sremy91/intuis-schedule-card/internal/models"
)

// Service is the gateway boundary. The gateway owns the weekly timetable
// and zone catalog; the card reads fresh snapshots per invocation and
// writes edits back through the slot/span calls, after which the gateway
// is expected to re-supply an updated timetable.
type Service interface {
	// Timetable returns the current weekly timetable snapshot.
	Timetable(ctx context.Context) (models.WeeklyTimetable, error)

	// Zones returns the zone catalog in gateway order.
	Zones(ctx context.Context) ([]models.Zone, error)

	// Schedules lists the gateway's alternative schedule names and the
	// selected one. Read-only pass-through.
	Schedules(ctx context.Context) (models.ScheduleInfo, error)

	// SelectSchedule switches the gateway's active schedule.
	SelectSchedule(ctx context.Context, name string) error

	// SetScheduleSlot sets the zone starting at startTime on day
	// (multi-call protocol). day is a 0-6 index, Monday=0.
	SetScheduleSlot(ctx context.Context, day int, startTime string, zoneID int) error

	// SetScheduleSpan applies a whole edit in one call (single-call
	// protocol). endTime must already be normalized: "through end of day"
	// is transmitted as "00:00".
	SetScheduleSpan(ctx context.Context, startDay, endDay int, startTime, endTime, zoneName string) error

	// RefreshSchedules asks the gateway to re-read and re-publish its
	// schedule state. Stateless convenience trigger.
	RefreshSchedules(ctx context.Context) error
}
