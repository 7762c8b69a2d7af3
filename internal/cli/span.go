package cli

import (
	"context"
	"fmt"

	"github.com/sremy91/intuis-schedule-card/internal/constants"
	"github.com/sremy91/intuis-schedule-card/internal/schedule"
)

type SpanCmd struct {
	Day  string `arg:"" help:"Day of the block (monday..sunday)."`
	Time string `arg:"" help:"Any time inside the block (HH:MM)."`
}

func (c *SpanCmd) Run(appCtx *Context) error {
	if err := appCtx.ensureLoaded(); err != nil {
		return err
	}
	day, err := parseDay(c.Day)
	if err != nil {
		return err
	}
	minute := schedule.ToMinutes(c.Time)
	if minute >= constants.MinutesPerDay {
		return fmt.Errorf("time %q is outside the day", c.Time)
	}

	tt, catalog, err := loadWeek(context.Background(), appCtx.Svc)
	if err != nil {
		return err
	}

	blocks := schedule.Expand(tt, catalog, day)
	for _, block := range blocks {
		if minute < block.StartMinutes || minute >= block.EndMinutes {
			continue
		}
		span := schedule.DetectSpan(tt, catalog, day, block)
		fmt.Printf("%s: %s\n", block.Zone.Name, formatSpan(span))
		return nil
	}

	fmt.Printf("No block on %s at %s.\n", schedule.DayName(day), c.Time)
	return nil
}
