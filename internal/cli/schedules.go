package cli

import (
	"context"
	"fmt"
)

type SchedulesCmd struct {
	Select string `help:"Switch to the named schedule." optional:""`
}

func (c *SchedulesCmd) Run(appCtx *Context) error {
	if err := appCtx.ensureLoaded(); err != nil {
		return err
	}
	ctx := context.Background()

	if c.Select != "" {
		if err := appCtx.Svc.SelectSchedule(ctx, c.Select); err != nil {
			return fmt.Errorf("failed to select schedule: %w", err)
		}
		fmt.Printf("Selected schedule %q.\n", c.Select)
	}

	info, err := appCtx.Svc.Schedules(ctx)
	if err != nil {
		return fmt.Errorf("failed to load schedules: %w", err)
	}
	if len(info.Names) == 0 {
		fmt.Println("No schedules available.")
		return nil
	}
	for _, name := range info.Names {
		marker := " "
		if name == info.Selected {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, name)
	}
	return nil
}
