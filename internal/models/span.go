package models

import "github.com/sremy91/intuis-schedule-card/internal/constants"

// Span is a user-facing, possibly multi-day, contiguous run of one zone,
// used as the unit of edit. Day fields are indices (Monday=0). An EndTime
// of "24:00" signals "through end of day" to the editing surface.
type Span struct {
	StartDay  int    `json:"start_day"`
	EndDay    int    `json:"end_day"`
	StartTime string `json:"start_time"` // HH:MM format
	EndTime   string `json:"end_time"`   // HH:MM or "24:00"
	ZoneID    int    `json:"zone_id"`
}

// StartDayName returns the canonical day key for the span start.
func (s Span) StartDayName() string {
	return constants.DayNames[s.StartDay]
}

// EndDayName returns the canonical day key for the span end.
func (s Span) EndDayName() string {
	return constants.DayNames[s.EndDay]
}

// MultiDay reports whether the span crosses at least one day boundary.
func (s Span) MultiDay() bool {
	return s.StartDay != s.EndDay
}

// SpanEdit is a span together with the replacement zone chosen by the
// user. OriginalZone is the zone that occupied the clicked block before
// editing; the multi-call protocol re-emits it on partial-day edits.
type SpanEdit struct {
	Span         Span
	NewZone      Zone
	OriginalZone Zone
}
