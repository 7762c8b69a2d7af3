package constants

const (
	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// EndOfDay is the display sentinel for "through midnight". It never appears
	// as a real timetable entry time, only as an expansion or span boundary.
	EndOfDay = "24:00"

	// MinutesPerDay is 24 hours * 60 minutes.
	MinutesPerDay = 1440

	// DaysPerWeek is the number of days per week.
	DaysPerWeek = 7
)

// DayNames maps day index (Monday=0 .. Sunday=6) to the canonical lowercase
// day key used by the weekly timetable. The mapping is fixed and total.
var DayNames = [DaysPerWeek]string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}
