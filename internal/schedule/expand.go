package schedule

import (
	"sort"

	"github.com/sremy91/intuis-schedule-card/internal/constants"
	"github.com/sremy91/intuis-schedule-card/internal/models"
)

// transition is one "switch to this zone at this minute" point inside a day.
type transition struct {
	minute int
	zone   string
}

// Expand converts one day's sparse entries, plus the carry-over state from
// the previous day, into a sorted contiguous sequence of zone blocks
// covering [00:00, 24:00). It is pure: the timetable and catalog are read
// for this call only.
//
// A transition naming a zone absent from the catalog drops its block.
// When two transitions share a minute the later one in input order wins;
// the earlier one collapses to zero width and is discarded.
func Expand(tt models.WeeklyTimetable, catalog Catalog, day int) []models.Block {
	entries := sortedEntries(tt[DayName(day)])

	transitions := make([]transition, 0, len(entries)+1)
	if len(entries) == 0 || ToMinutes(entries[0].Time) != 0 {
		if zone, ok := carryOverZone(tt, day, entries); ok {
			transitions = append(transitions, transition{minute: 0, zone: zone})
		}
	}
	for _, e := range entries {
		transitions = append(transitions, transition{minute: ToMinutes(e.Time), zone: e.Zone})
	}
	sort.SliceStable(transitions, func(i, j int) bool {
		return transitions[i].minute < transitions[j].minute
	})

	blocks := make([]models.Block, 0, len(transitions))
	for i, tr := range transitions {
		end := constants.MinutesPerDay
		if i+1 < len(transitions) {
			end = transitions[i+1].minute
		}
		if end <= tr.minute {
			continue
		}
		zone, ok := catalog.ByName(tr.zone)
		if !ok {
			continue
		}
		blocks = append(blocks, models.Block{
			Zone:         zone,
			StartMinutes: tr.minute,
			EndMinutes:   end,
			StartTime:    MinutesToTime(tr.minute),
			EndTime:      MinutesToTime(end),
		})
	}

	return mergeAdjacent(blocks)
}

// carryOverZone determines the zone active entering the day: the
// chronologically last entry of the most recent preceding day that has any,
// walking back through empty days up to a full week. When every other day
// is empty it falls back to this day's own first entry, so only a week with
// no events at all expands to an empty result.
func carryOverZone(tt models.WeeklyTimetable, day int, todays []models.TimetableEntry) (string, bool) {
	d := day
	for step := 1; step < constants.DaysPerWeek; step++ {
		d = PrevDay(d)
		if prev := sortedEntries(tt[DayName(d)]); len(prev) > 0 {
			return prev[len(prev)-1].Zone, true
		}
	}
	if len(todays) > 0 {
		return todays[0].Zone, true
	}
	return "", false
}

// sortedEntries returns a day's entries ordered by time of day. The sort is
// stable so entries sharing a minute keep their input order.
func sortedEntries(entries []models.TimetableEntry) []models.TimetableEntry {
	sorted := make([]models.TimetableEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return ToMinutes(sorted[i].Time) < ToMinutes(sorted[j].Time)
	})
	return sorted
}

// mergeAdjacent coalesces consecutive blocks bound to the same zone, so a
// synthesized carry-over transition that matches the day's first entry does
// not leave a degenerate seam.
func mergeAdjacent(blocks []models.Block) []models.Block {
	merged := blocks[:0]
	for _, b := range blocks {
		if n := len(merged); n > 0 && merged[n-1].Zone.ID == b.Zone.ID && merged[n-1].EndMinutes == b.StartMinutes {
			merged[n-1].EndMinutes = b.EndMinutes
			merged[n-1].EndTime = b.EndTime
			continue
		}
		merged = append(merged, b)
	}
	return merged
}
