package cli

import (
	"context"
	"fmt"

	"github.com/sremy91/intuis-schedule-card/internal/constants"
	"github.com/sremy91/intuis-schedule-card/internal/schedule"
	"github.com/sremy91/intuis-schedule-card/internal/validation"
)

type WeekCmd struct {
	Day string `arg:"" optional:"" help:"Show a single day (monday..sunday)."`
}

func (c *WeekCmd) Run(appCtx *Context) error {
	if err := appCtx.ensureLoaded(); err != nil {
		return err
	}
	ctx := context.Background()
	tt, catalog, err := loadWeek(ctx, appCtx.Svc)
	if err != nil {
		return err
	}

	first, last := 0, constants.DaysPerWeek-1
	if c.Day != "" {
		day, err := parseDay(c.Day)
		if err != nil {
			return err
		}
		first, last = day, day
	}

	for day := first; day <= last; day++ {
		fmt.Printf("%s:\n", schedule.DayName(day))
		blocks := schedule.Expand(tt, catalog, day)
		if len(blocks) == 0 {
			fmt.Println("  no schedule")
			continue
		}
		for _, block := range blocks {
			fmt.Printf("  %s\n", formatBlock(block))
		}
	}

	result := validation.New().ValidateTimetable(tt, catalog)
	if result.HasConflicts() {
		fmt.Println()
		fmt.Print(result.FormatReport())
	}
	return nil
}
