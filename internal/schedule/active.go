package schedule

import "github.com/sremy91/intuis-schedule-card/internal/models"

// ActiveZoneAt returns the zone active at the given minute of day, or nil
// when no block covers it. Expanded block lists are total over [0,1440), so
// nil normally means "no data for this day", which is a valid empty answer,
// not an error. Cross-midnight continuation is the span detector's concern;
// a block stored with start > end is never matched here.
func ActiveZoneAt(blocks []models.Block, minute int) *models.Zone {
	for i := range blocks {
		b := blocks[i]
		if b.StartMinutes > b.EndMinutes {
			continue
		}
		if b.StartMinutes <= minute && minute < b.EndMinutes {
			return &blocks[i].Zone
		}
	}
	return nil
}
