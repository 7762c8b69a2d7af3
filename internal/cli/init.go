package cli

import (
	"errors"
	"fmt"

	"github.com/sremy91/intuis-schedule-card/internal/models"
)

type InitCmd struct {
	Demo bool `help:"Seed a demo zone catalog and timetable."`
}

func (c *InitCmd) Run(appCtx *Context) error {
	if appCtx.Store == nil {
		return errors.New("init requires a local store, not a remote gateway URL")
	}
	if err := appCtx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized schedule store at: %s\n", appCtx.Store.GetConfigPath())

	if !c.Demo {
		return nil
	}

	zones := []models.Zone{
		{ID: 1, Name: "Comfort", Type: 0, RoomTemperatures: map[string]float64{"living": 21.0, "bedroom": 20.0}},
		{ID: 2, Name: "Eco", Type: 5, RoomTemperatures: map[string]float64{"living": 19.0, "bedroom": 18.0}},
		{ID: 3, Name: "Night", Type: 1, RoomTemperatures: map[string]float64{"living": 17.0, "bedroom": 17.0}},
		{ID: 4, Name: "Frost guard", Type: 8, RoomTemperatures: map[string]float64{"living": 7.0, "bedroom": 7.0}},
	}
	if err := appCtx.Store.SaveZones(zones); err != nil {
		return fmt.Errorf("failed to seed zones: %w", err)
	}

	weekday := []models.TimetableEntry{
		{Time: "00:00", Zone: "Night"},
		{Time: "06:30", Zone: "Comfort"},
		{Time: "08:30", Zone: "Eco"},
		{Time: "17:00", Zone: "Comfort"},
		{Time: "22:00", Zone: "Night"},
	}
	weekend := []models.TimetableEntry{
		{Time: "00:00", Zone: "Night"},
		{Time: "08:00", Zone: "Comfort"},
		{Time: "23:00", Zone: "Night"},
	}
	tt := models.WeeklyTimetable{
		"monday":    weekday,
		"tuesday":   weekday,
		"wednesday": weekday,
		"thursday":  weekday,
		"friday":    weekday,
		"saturday":  weekend,
		"sunday":    weekend,
	}
	if err := appCtx.Store.SaveTimetable(tt); err != nil {
		return fmt.Errorf("failed to seed timetable: %w", err)
	}

	schedules := models.ScheduleInfo{
		Names:    []string{"Winter", "Summer", "Away"},
		Selected: "Winter",
	}
	if err := appCtx.Store.SaveSchedules(schedules); err != nil {
		return fmt.Errorf("failed to seed schedules: %w", err)
	}

	fmt.Println("Seeded demo zones, timetable, and schedules.")
	return nil
}
