package cli

import (
	"context"
	"fmt"

	"github.com/sremy91/intuis-schedule-card/internal/constants"
	"github.com/sremy91/intuis-schedule-card/internal/schedule"
)

type AtCmd struct {
	Day  string `arg:"" help:"Day to query (monday..sunday)."`
	Time string `arg:"" help:"Time to query (HH:MM)."`
}

func (c *AtCmd) Run(appCtx *Context) error {
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
	zone := schedule.ActiveZoneAt(blocks, minute)
	if zone == nil {
		fmt.Printf("No zone active on %s at %s.\n", schedule.DayName(day), c.Time)
		return nil
	}
	fmt.Printf("%s at %s: %s\n", schedule.DayName(day), c.Time, zone.Name)
	return nil
}
