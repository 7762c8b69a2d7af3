package models

// TimetableEntry is one sparse event: "at this time, switch to this zone".
// Entries for a day are not guaranteed sorted or to include a 00:00 entry.
type TimetableEntry struct {
	Time string `json:"time"` // HH:MM format
	Zone string `json:"zone"` // zone name, resolved against the catalog
}

// WeeklyTimetable maps canonical lowercase day names ("monday".."sunday")
// to that day's entries. Days may be absent or empty. The timetable is
// owned by the gateway; the engine reads it per invocation and never
// caches it across refreshes.
type WeeklyTimetable map[string][]TimetableEntry

// Block is a derived, gap-free time interval bound to one zone.
// StartMinutes is in [0,1440), EndMinutes in (0,1440]. EndTime is the
// display form and reads "00:00" when EndMinutes is 1440.
type Block struct {
	Zone         Zone   `json:"zone"`
	StartMinutes int    `json:"start_minutes"`
	EndMinutes   int    `json:"end_minutes"`
	StartTime    string `json:"start_time"` // HH:MM format
	EndTime      string `json:"end_time"`   // HH:MM format
}

// Duration returns the block length in minutes.
func (b Block) Duration() int {
	return b.EndMinutes - b.StartMinutes
}
