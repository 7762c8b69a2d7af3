package cli

import (
	"context"
	"fmt"

	"github.com/sremy91/intuis-schedule-card/internal/reconciler"
)

type RefreshCmd struct{}

func (c *RefreshCmd) Run(appCtx *Context) error {
	if err := appCtx.ensureLoaded(); err != nil {
		return err
	}
	if err := reconciler.New(appCtx.Svc).Refresh(context.Background()); err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}
	fmt.Println("Schedules refreshed.")
	return nil
}
