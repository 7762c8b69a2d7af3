package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

type ZonesCmd struct{}

func (c *ZonesCmd) Run(appCtx *Context) error {
	if err := appCtx.ensureLoaded(); err != nil {
		return err
	}
	zones, err := appCtx.Svc.Zones(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load zones: %w", err)
	}
	if len(zones) == 0 {
		fmt.Println("No zones defined.")
		return nil
	}

	for _, zone := range zones {
		line := fmt.Sprintf("%-3d %s", zone.ID, zone.Name)
		if len(zone.RoomTemperatures) > 0 {
			rooms := make([]string, 0, len(zone.RoomTemperatures))
			for room := range zone.RoomTemperatures {
				rooms = append(rooms, room)
			}
			sort.Strings(rooms)
			temps := make([]string, len(rooms))
			for i, room := range rooms {
				temps[i] = fmt.Sprintf("%s %.1f°C", room, zone.RoomTemperatures[room])
			}
			line += "  " + strings.Join(temps, ", ")
		}
		fmt.Println(line)
	}
	return nil
}
