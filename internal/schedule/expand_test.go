package schedule

import (
	"testing"

	"github.com/sremy91/intuis-schedule-card/internal/constants"
	"github.com/sremy91/intuis-schedule-card/internal/models"
)

func testCatalog() Catalog {
	return Catalog{
		{ID: 1, Name: "Comfort", Type: 0, RoomTemperatures: map[string]float64{"living": 21.0}},
		{ID: 2, Name: "Eco", Type: 0, RoomTemperatures: map[string]float64{"living": 19.0}},
		{ID: 3, Name: "Night", Type: 1, RoomTemperatures: map[string]float64{"living": 17.0}},
		{ID: 4, Name: "Frost", Type: 2, RoomTemperatures: map[string]float64{"living": 7.0}},
	}
}

// assertCoverage checks the total-coverage invariant: blocks concatenated in
// order cover exactly [0,1440) with no gaps or overlaps.
func assertCoverage(t *testing.T, blocks []models.Block) {
	t.Helper()
	if len(blocks) == 0 {
		t.Fatal("expected at least one block")
	}
	if blocks[0].StartMinutes != 0 {
		t.Errorf("first block starts at %d, want 0", blocks[0].StartMinutes)
	}
	for i := 1; i < len(blocks); i++ {
		if blocks[i].StartMinutes != blocks[i-1].EndMinutes {
			t.Errorf("gap or overlap between block %d (ends %d) and block %d (starts %d)",
				i-1, blocks[i-1].EndMinutes, i, blocks[i].StartMinutes)
		}
	}
	if last := blocks[len(blocks)-1]; last.EndMinutes != constants.MinutesPerDay {
		t.Errorf("last block ends at %d, want %d", last.EndMinutes, constants.MinutesPerDay)
	}
}

func TestExpand_TotalCoverage(t *testing.T) {
	tt := models.WeeklyTimetable{
		"monday":    {{Time: "00:00", Zone: "Night"}, {Time: "07:00", Zone: "Comfort"}, {Time: "22:00", Zone: "Night"}},
		"tuesday":   {{Time: "06:30", Zone: "Comfort"}, {Time: "21:00", Zone: "Eco"}},
		"wednesday": {},
		"saturday":  {{Time: "08:00", Zone: "Comfort"}},
		"sunday":    {{Time: "00:00", Zone: "Eco"}, {Time: "23:00", Zone: "Night"}},
	}
	for day := 0; day < constants.DaysPerWeek; day++ {
		blocks := Expand(tt, testCatalog(), day)
		assertCoverage(t, blocks)
	}
}

func TestExpand_CarryOverFromPreviousDay(t *testing.T) {
	// Monday has no 00:00 entry; Sunday's chronologically last entry is
	// Night, so Monday must open with a Night block.
	tt := models.WeeklyTimetable{
		"monday": {{Time: "07:00", Zone: "Comfort"}},
		"sunday": {{Time: "23:00", Zone: "Night"}, {Time: "08:00", Zone: "Comfort"}},
	}
	blocks := Expand(tt, testCatalog(), 0)
	assertCoverage(t, blocks)
	if blocks[0].Zone.Name != "Night" {
		t.Errorf("Monday's first block zone = %q, want Night", blocks[0].Zone.Name)
	}
	if blocks[0].EndMinutes != 420 {
		t.Errorf("Monday's first block ends at %d, want 420", blocks[0].EndMinutes)
	}
}

func TestExpand_CarryOverUsesChronologicallyLastEntry(t *testing.T) {
	// Sunday's list is out of order; the carry-over zone is the entry
	// latest in the day, not the last element of the list.
	tt := models.WeeklyTimetable{
		"monday": {{Time: "09:00", Zone: "Comfort"}},
		"sunday": {{Time: "22:00", Zone: "Night"}, {Time: "06:00", Zone: "Eco"}},
	}
	blocks := Expand(tt, testCatalog(), 0)
	if blocks[0].Zone.Name != "Night" {
		t.Errorf("carry-over zone = %q, want Night", blocks[0].Zone.Name)
	}
}

func TestExpand_FallbackToOwnFirstEntry(t *testing.T) {
	// Every other day is empty: the carry-over falls back to the day's own
	// first entry, and the seam merges into a single block.
	tt := models.WeeklyTimetable{
		"tuesday": {{Time: "07:00", Zone: "Comfort"}, {Time: "22:00", Zone: "Night"}},
	}
	blocks := Expand(tt, testCatalog(), 1)
	assertCoverage(t, blocks)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].Zone.Name != "Comfort" || blocks[0].EndMinutes != 1320 {
		t.Errorf("first block = %s [%d,%d), want Comfort [0,1320)",
			blocks[0].Zone.Name, blocks[0].StartMinutes, blocks[0].EndMinutes)
	}
}

func TestExpand_CarryOverSkipsEmptyDays(t *testing.T) {
	// Only Monday has entries. Every other day inherits Monday's last zone
	// through however many empty days sit in between, so each one expands
	// to a single full-day Night block.
	tt := models.WeeklyTimetable{
		"monday": {{Time: "00:00", Zone: "Comfort"}, {Time: "22:00", Zone: "Night"}},
	}
	for day := 1; day < constants.DaysPerWeek; day++ {
		blocks := Expand(tt, testCatalog(), day)
		assertCoverage(t, blocks)
		if len(blocks) != 1 || blocks[0].Zone.Name != "Night" {
			t.Errorf("day %d: got %+v, want one full-day Night block", day, blocks)
		}
	}
}

func TestExpand_EmptyWeek(t *testing.T) {
	// No entries anywhere in the week: no carry-over zone is determinable
	// and the result is empty, not an error.
	tt := models.WeeklyTimetable{}
	for day := 0; day < constants.DaysPerWeek; day++ {
		if blocks := Expand(tt, testCatalog(), day); len(blocks) != 0 {
			t.Errorf("day %d: got %d blocks for an empty week, want 0", day, len(blocks))
		}
	}
}

func TestExpand_UnsortedEntries(t *testing.T) {
	tt := models.WeeklyTimetable{
		"friday": {{Time: "22:00", Zone: "Night"}, {Time: "00:00", Zone: "Eco"}, {Time: "07:00", Zone: "Comfort"}},
	}
	blocks := Expand(tt, testCatalog(), 4)
	assertCoverage(t, blocks)
	want := []string{"Eco", "Comfort", "Night"}
	if len(blocks) != len(want) {
		t.Fatalf("got %d blocks, want %d", len(blocks), len(want))
	}
	for i, name := range want {
		if blocks[i].Zone.Name != name {
			t.Errorf("block %d zone = %q, want %q", i, blocks[i].Zone.Name, name)
		}
	}
}

func TestExpand_UnknownZoneDropped(t *testing.T) {
	// A transition naming a zone absent from the catalog drops its block,
	// leaving a gap. Documented behavior, surfaced by validation instead.
	tt := models.WeeklyTimetable{
		"monday": {{Time: "00:00", Zone: "Comfort"}, {Time: "12:00", Zone: "Party"}, {Time: "18:00", Zone: "Night"}},
	}
	blocks := Expand(tt, testCatalog(), 0)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].EndMinutes != 720 || blocks[1].StartMinutes != 1080 {
		t.Errorf("expected a gap [720,1080), got [%d..%d)", blocks[0].EndMinutes, blocks[1].StartMinutes)
	}
}

func TestExpand_DuplicateMinuteLastEntryWins(t *testing.T) {
	// Two entries at the same minute: the stable sort keeps input order and
	// the earlier one collapses to zero width.
	tt := models.WeeklyTimetable{
		"monday": {{Time: "00:00", Zone: "Comfort"}, {Time: "08:00", Zone: "Eco"}, {Time: "08:00", Zone: "Night"}},
	}
	blocks := Expand(tt, testCatalog(), 0)
	assertCoverage(t, blocks)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[1].Zone.Name != "Night" || blocks[1].StartMinutes != 480 {
		t.Errorf("block at 08:00 = %q, want Night", blocks[1].Zone.Name)
	}
}

func TestExpand_EndOfDayDisplayForm(t *testing.T) {
	tt := models.WeeklyTimetable{
		"thursday": {{Time: "00:00", Zone: "Eco"}},
	}
	blocks := Expand(tt, testCatalog(), 3)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	last := blocks[0]
	if last.EndTime != "00:00" {
		t.Errorf("end display = %q, want \"00:00\"", last.EndTime)
	}
	if last.EndMinutes != constants.MinutesPerDay {
		t.Errorf("end minutes = %d, want %d (integer form is not normalized)", last.EndMinutes, constants.MinutesPerDay)
	}
}

func TestExpand_MergesCarryOverSeam(t *testing.T) {
	// Carry-over zone equals the day's first real entry: no degenerate
	// adjacent same-zone blocks may survive.
	tt := models.WeeklyTimetable{
		"monday":  {{Time: "10:00", Zone: "Night"}},
		"tuesday": {{Time: "06:00", Zone: "Night"}, {Time: "09:00", Zone: "Comfort"}},
	}
	blocks := Expand(tt, testCatalog(), 1)
	assertCoverage(t, blocks)
	for i := 1; i < len(blocks); i++ {
		if blocks[i].Zone.ID == blocks[i-1].Zone.ID {
			t.Errorf("adjacent blocks %d and %d share zone %q", i-1, i, blocks[i].Zone.Name)
		}
	}
}
