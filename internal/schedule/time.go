package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sremy91/intuis-schedule-card/internal/constants"
)

// ToMinutes converts an "HH:MM" string to minutes from midnight. The
// end-of-day sentinel "24:00" maps to 1440. Times are assumed
// pre-validated by the input surface; a malformed string parses to 0.
func ToMinutes(timeStr string) int {
	h, m, ok := strings.Cut(timeStr, ":")
	if !ok {
		return 0
	}
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	return hours*60 + minutes
}

// MinutesToTime converts minutes from midnight to canonical "HH:MM" form.
// 1440 is normalized to "00:00"; the integer value is the caller's to keep.
func MinutesToTime(minutes int) string {
	minutes %= constants.MinutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// EndDisplay formats a block end for the editing surface: an end of 1440
// reads "24:00" to signal "through end of day".
func EndDisplay(minutes int) string {
	if minutes == constants.MinutesPerDay {
		return constants.EndOfDay
	}
	return MinutesToTime(minutes)
}

// PrevDay returns the day index before d, wrapping Sunday to Monday.
func PrevDay(d int) int {
	return (d + constants.DaysPerWeek - 1) % constants.DaysPerWeek
}

// NextDay returns the day index after d, wrapping Sunday to Monday.
func NextDay(d int) int {
	return (d + 1) % constants.DaysPerWeek
}

// DayName returns the canonical lowercase day key for a day index.
func DayName(d int) string {
	return constants.DayNames[d]
}

// DayIndex resolves a day name (any case) to its index, Monday=0.
func DayIndex(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range constants.DayNames {
		if n == name || n[:3] == name {
			return i, true
		}
	}
	return 0, false
}
