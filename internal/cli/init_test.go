package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sremy91/intuis-schedule-card/internal/hub"
	"github.com/sremy91/intuis-schedule-card/internal/reconciler"
	"github.com/sremy91/intuis-schedule-card/internal/schedule"
	"github.com/sremy91/intuis-schedule-card/internal/storage"
)

func setupTestContext(t *testing.T) (*Context, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "gateway.db")
	store := storage.NewSQLiteStore(dbPath)
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return &Context{
		Svc:      hub.NewLocal(store),
		Store:    store,
		Protocol: reconciler.ProtocolMultiCall,
	}, dbPath
}

func TestInitCmd_Success(t *testing.T) {
	ctx, dbPath := setupTestContext(t)

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("init command failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file was not created at %s", dbPath)
	}
}

func TestInitCmd_Idempotent(t *testing.T) {
	ctx, _ := setupTestContext(t)

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("second init failed: %v", err)
	}
}

func TestInitCmd_DemoSeedsData(t *testing.T) {
	ctx, _ := setupTestContext(t)

	cmd := &InitCmd{Demo: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("init --demo failed: %v", err)
	}

	zones, err := ctx.Store.Zones()
	if err != nil {
		t.Fatalf("failed to read zones: %v", err)
	}
	if len(zones) == 0 {
		t.Error("demo init should seed zones")
	}

	tt, catalog, err := loadWeek(context.Background(), ctx.Svc)
	if err != nil {
		t.Fatalf("failed to load week: %v", err)
	}

	// The seeded week must expand gap-free on every day.
	for day := 0; day < 7; day++ {
		blocks := schedule.Expand(tt, catalog, day)
		if len(blocks) == 0 {
			t.Fatalf("%s: demo timetable expanded to no blocks", schedule.DayName(day))
		}
		if blocks[0].StartMinutes != 0 || blocks[len(blocks)-1].EndMinutes != 1440 {
			t.Errorf("%s: blocks do not cover the full day", schedule.DayName(day))
		}
	}
}

func TestInitCmd_RequiresLocalStore(t *testing.T) {
	ctx := &Context{
		Svc:      hub.NewClient("http://gateway.local", ""),
		Protocol: reconciler.ProtocolMultiCall,
	}

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err == nil {
		t.Error("init against a remote gateway should fail")
	}
}

func TestWeekCmd_OpensStoreInFreshProcess(t *testing.T) {
	ctx, dbPath := setupTestContext(t)
	if err := (&InitCmd{Demo: true}).Run(ctx); err != nil {
		t.Fatalf("init --demo failed: %v", err)
	}

	// A later invocation gets a brand-new store on the same path with no
	// prior Init call; data commands must open it themselves.
	fresh := storage.NewSQLiteStore(dbPath)
	t.Cleanup(func() {
		if err := fresh.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	freshCtx := &Context{
		Svc:      hub.NewLocal(fresh),
		Store:    fresh,
		Protocol: reconciler.ProtocolMultiCall,
	}

	if err := (&WeekCmd{}).Run(freshCtx); err != nil {
		t.Errorf("week command failed on an initialized database: %v", err)
	}
	if err := (&ZonesCmd{}).Run(freshCtx); err != nil {
		t.Errorf("zones command failed on an initialized database: %v", err)
	}
	if err := (&AtCmd{Day: "monday", Time: "07:00"}).Run(freshCtx); err != nil {
		t.Errorf("at command failed on an initialized database: %v", err)
	}
}

func TestWeekCmd_UninitializedStoreErrors(t *testing.T) {
	ctx, _ := setupTestContext(t)

	// No init has run, so the database file does not exist. The command
	// must return the guidance error instead of panicking.
	err := (&WeekCmd{}).Run(ctx)
	if err == nil {
		t.Fatal("week command on a missing database should fail")
	}
	if !strings.Contains(err.Error(), "intuisched init") {
		t.Errorf("error %q should point at the init command", err)
	}
}

func TestSetCmd_AppliesSpan(t *testing.T) {
	ctx, _ := setupTestContext(t)
	if err := (&InitCmd{Demo: true}).Run(ctx); err != nil {
		t.Fatalf("init --demo failed: %v", err)
	}

	cmd := &SetCmd{
		Zone:      "Eco",
		StartDay:  "monday",
		StartTime: "10:00",
		EndDay:    "monday",
		EndTime:   "12:00",
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("set command failed: %v", err)
	}

	tt, catalog, err := loadWeek(context.Background(), ctx.Svc)
	if err != nil {
		t.Fatal(err)
	}
	blocks := schedule.Expand(tt, catalog, 0)
	zone := schedule.ActiveZoneAt(blocks, 11*60)
	if zone == nil || zone.Name != "Eco" {
		t.Errorf("monday 11:00 zone = %v, want Eco", zone)
	}
	restored := schedule.ActiveZoneAt(blocks, 13*60)
	if restored == nil || restored.Name != "Eco" {
		// 08:30-17:00 is Eco in the demo data, so the restore keeps Eco.
		t.Errorf("monday 13:00 zone = %v, want Eco", restored)
	}
}

func TestSetCmd_RejectsUnknownInputs(t *testing.T) {
	ctx, _ := setupTestContext(t)
	if err := (&InitCmd{Demo: true}).Run(ctx); err != nil {
		t.Fatalf("init --demo failed: %v", err)
	}

	if err := (&SetCmd{Zone: "Party", StartDay: "monday", StartTime: "10:00", EndDay: "monday", EndTime: "12:00"}).Run(ctx); err == nil {
		t.Error("unknown zone should fail")
	}
	if err := (&SetCmd{Zone: "Eco", StartDay: "someday", StartTime: "10:00", EndDay: "monday", EndTime: "12:00"}).Run(ctx); err == nil {
		t.Error("unknown day should fail")
	}
	if err := (&SetCmd{Zone: "Eco", StartDay: "monday", StartTime: "25:00", EndDay: "monday", EndTime: "26:00"}).Run(ctx); err == nil {
		t.Error("out-of-day start time should fail")
	}
}
