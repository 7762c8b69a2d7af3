package schedule

import (
	"github.com/sremy91/intuis-schedule-card/internal/constants"
	"github.com/sremy91/intuis-schedule-card/internal/models"
)

// DetectSpan finds the maximal contiguous run of the clicked block's zone
// across day boundaries, the unit the editing surface operates on. Clicking
// anywhere inside a multi-day run yields the same span.
//
// The backward scan only runs when the clicked block starts at 00:00 and
// the forward scan only when it runs to end of day; each walks at most one
// full week. A scan that arrives back at the clicked day proves the entire
// week is one uniform run, in which case the canonical Monday 00:00 →
// Sunday 24:00 span is returned so the week is covered exactly once
// regardless of where the click landed.
func DetectSpan(tt models.WeeklyTimetable, catalog Catalog, day int, block models.Block) models.Span {
	span := models.Span{
		StartDay:  day,
		EndDay:    day,
		StartTime: block.StartTime,
		EndTime:   EndDisplay(block.EndMinutes),
		ZoneID:    block.Zone.ID,
	}

	// A scan wraps only if every other day is a full-day block of the same
	// zone. If the clicked block covers its whole day too, the entire week
	// is one run; otherwise the wrapped scan stops with what it has (the
	// run ends inside the clicked day).
	wholeDay := block.StartMinutes == 0 && block.EndMinutes == constants.MinutesPerDay

	if block.StartMinutes == 0 {
		d := day
		for step := 0; step < constants.DaysPerWeek; step++ {
			prev := PrevDay(d)
			if prev == day {
				if wholeDay {
					return weekSpan(block.Zone.ID)
				}
				break
			}
			blocks := Expand(tt, catalog, prev)
			if len(blocks) == 0 {
				break
			}
			last := blocks[len(blocks)-1]
			if last.EndMinutes != constants.MinutesPerDay || last.Zone.ID != block.Zone.ID {
				break
			}
			span.StartDay = prev
			span.StartTime = last.StartTime
			if last.StartMinutes != 0 {
				break
			}
			d = prev
		}
	}

	if block.EndMinutes == constants.MinutesPerDay {
		d := day
		for step := 0; step < constants.DaysPerWeek; step++ {
			next := NextDay(d)
			if next == day {
				if wholeDay {
					return weekSpan(block.Zone.ID)
				}
				break
			}
			blocks := Expand(tt, catalog, next)
			if len(blocks) == 0 {
				break
			}
			first := blocks[0]
			if first.StartMinutes != 0 || first.Zone.ID != block.Zone.ID {
				break
			}
			span.EndDay = next
			span.EndTime = EndDisplay(first.EndMinutes)
			if first.EndMinutes != constants.MinutesPerDay {
				break
			}
			d = next
		}
	}

	return span
}

// weekSpan is the span for a week that is one uniform zone run.
func weekSpan(zoneID int) models.Span {
	return models.Span{
		StartDay:  0,
		EndDay:    constants.DaysPerWeek - 1,
		StartTime: "00:00",
		EndTime:   constants.EndOfDay,
		ZoneID:    zoneID,
	}
}
