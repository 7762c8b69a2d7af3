package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/sremy91/intuis-schedule-card/internal/hub"
	"github.com/sremy91/intuis-schedule-card/internal/models"
	"github.com/sremy91/intuis-schedule-card/internal/reconciler"
	"github.com/sremy91/intuis-schedule-card/internal/schedule"
	"github.com/sremy91/intuis-schedule-card/internal/storage"
)

type Context struct {
	Svc      hub.Service
	Store    storage.Provider // nil when talking to a remote gateway
	Protocol reconciler.Protocol
}

// ensureLoaded opens the local store before a command touches schedule
// data. Remote gateways carry no store and need no opening.
func (c *Context) ensureLoaded() error {
	if c.Store == nil {
		return nil
	}
	return c.Store.Load()
}

// loadWeek fetches the timetable and zone catalog in one go.
func loadWeek(ctx context.Context, svc hub.Service) (models.WeeklyTimetable, schedule.Catalog, error) {
	tt, err := svc.Timetable(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load timetable: %w", err)
	}
	zones, err := svc.Zones(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load zones: %w", err)
	}
	return tt, schedule.Catalog(zones), nil
}

func parseDay(s string) (int, error) {
	day, ok := schedule.DayIndex(strings.TrimSpace(s))
	if !ok {
		return 0, fmt.Errorf("unknown day %q, use monday..sunday or mon..sun", s)
	}
	return day, nil
}

func formatBlock(block models.Block) string {
	return fmt.Sprintf("%s-%s  %-12s %s",
		block.StartTime,
		schedule.EndDisplay(block.EndMinutes),
		block.Zone.Name,
		formatDuration(block.Duration()),
	)
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

func formatSpan(span models.Span) string {
	if !span.MultiDay() {
		return fmt.Sprintf("%s %s-%s", span.StartDayName(), span.StartTime, span.EndTime)
	}
	return fmt.Sprintf("%s %s through %s %s",
		span.StartDayName(), span.StartTime, span.EndDayName(), span.EndTime)
}
