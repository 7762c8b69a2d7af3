package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/sremy91/intuis-schedule-card/internal/constants"
	"github.com/sremy91/intuis-schedule-card/internal/keyring"
	"github.com/sremy91/intuis-schedule-card/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(appCtx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	gatewayReachable := false

	// Check 1: gateway reachable
	if err := checkGateway(appCtx); err != nil {
		fmt.Printf("❌ Gateway reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Gateway reachable: OK\n")
		gatewayReachable = true
	}

	// Check 2: schedule validation (only if gateway is reachable)
	if gatewayReachable {
		if err := checkScheduleData(appCtx); err != nil {
			fmt.Printf("⚠ Schedule validation: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Schedule validation: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schedule validation: SKIPPED (gateway not reachable)\n")
	}

	// Check 3: keyring availability (warning only, tokens can come from flags)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   Keyring unavailable, pass the gateway token with --token instead\n")
	}

	// Check 4: duplicate process
	if err := checkDuplicateProcess(); err != nil {
		fmt.Printf("⚠ Single instance: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single instance: OK\n")
	}

	// Check 5: clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

func checkGateway(appCtx *Context) error {
	if appCtx.Store != nil {
		if err := appCtx.Store.Load(); err != nil {
			return fmt.Errorf("failed to load store: %w", err)
		}
	}
	if _, err := appCtx.Svc.Zones(context.Background()); err != nil {
		return fmt.Errorf("failed to query zones: %w", err)
	}
	return nil
}

func checkScheduleData(appCtx *Context) error {
	tt, catalog, err := loadWeek(context.Background(), appCtx.Svc)
	if err != nil {
		return err
	}

	validator := validation.New()
	zoneResult := validator.ValidateZones(catalog)
	ttResult := validator.ValidateTimetable(tt, catalog)
	conflicts := len(zoneResult.Conflicts) + len(ttResult.Conflicts)
	if conflicts > 0 {
		return fmt.Errorf("%d validation conflict(s), run 'intuisched week' for details", conflicts)
	}
	return nil
}

func checkDuplicateProcess() error {
	processes, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	self := os.Getpid()
	for _, proc := range processes {
		if proc.Pid() != self && proc.Executable() == constants.AppName {
			return fmt.Errorf("another %s instance is running (pid %d)", constants.AppName, proc.Pid())
		}
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	_, offset := now.Zone()
	if offset == 0 && now.Location() == time.UTC {
		fmt.Printf("   Note: timezone is UTC\n")
	}
	return nil
}
