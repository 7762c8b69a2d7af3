package cli

import (
	"context"
	"fmt"

	"github.com/sremy91/intuis-schedule-card/internal/constants"
	"github.com/sremy91/intuis-schedule-card/internal/models"
	"github.com/sremy91/intuis-schedule-card/internal/reconciler"
	"github.com/sremy91/intuis-schedule-card/internal/schedule"
)

type SetCmd struct {
	Zone      string `arg:"" help:"Zone name to apply."`
	StartDay  string `arg:"" help:"Start day (monday..sunday)."`
	StartTime string `arg:"" help:"Start time (HH:MM)."`
	EndDay    string `arg:"" help:"End day (monday..sunday)."`
	EndTime   string `arg:"" help:"End time (HH:MM or 24:00)."`
}

func (c *SetCmd) Run(appCtx *Context) error {
	if err := appCtx.ensureLoaded(); err != nil {
		return err
	}
	startDay, err := parseDay(c.StartDay)
	if err != nil {
		return err
	}
	endDay, err := parseDay(c.EndDay)
	if err != nil {
		return err
	}
	if schedule.ToMinutes(c.StartTime) >= constants.MinutesPerDay {
		return fmt.Errorf("start time %q is outside the day", c.StartTime)
	}

	ctx := context.Background()
	tt, catalog, err := loadWeek(ctx, appCtx.Svc)
	if err != nil {
		return err
	}

	zone, ok := catalog.ByName(c.Zone)
	if !ok {
		return fmt.Errorf("unknown zone %q", c.Zone)
	}

	// The zone heating at the end boundary before the edit is what gets
	// restored after the span.
	original := zone
	if c.EndTime != constants.EndOfDay {
		endBlocks := schedule.Expand(tt, catalog, endDay)
		if z := schedule.ActiveZoneAt(endBlocks, schedule.ToMinutes(c.EndTime)); z != nil {
			original = *z
		}
	}

	span := models.Span{
		StartDay:  startDay,
		EndDay:    endDay,
		StartTime: c.StartTime,
		EndTime:   c.EndTime,
		ZoneID:    zone.ID,
	}

	session := reconciler.NewSession(reconciler.New(appCtx.Svc))
	session.Open(span, original)
	if err := session.SetZone(zone); err != nil {
		return err
	}
	if err := session.Apply(ctx, appCtx.Protocol); err != nil {
		return err
	}

	fmt.Printf("Applied %s to %s.\n", zone.Name, formatSpan(span))
	return nil
}
