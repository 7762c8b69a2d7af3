package validation

import (
	"fmt"
	"sort"
	"time"

	"github.com/sremy91/intuis-schedule-card/internal/constants"
	"github.com/sremy91/intuis-schedule-card/internal/models"
	"github.com/sremy91/intuis-schedule-card/internal/schedule"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictInvalidTime    ConflictType = "invalid_time"
	ConflictUnknownZone    ConflictType = "unknown_zone"
	ConflictUnknownDay     ConflictType = "unknown_day"
	ConflictDuplicateSlot  ConflictType = "duplicate_slot"
	ConflictDuplicateZone  ConflictType = "duplicate_zone"
	ConflictEmptyZoneName  ConflictType = "empty_zone_name"
	ConflictNoActiveWeek   ConflictType = "no_active_week"
)

// Conflict represents a detected issue in a timetable or zone catalog
type Conflict struct {
	Type        ConflictType
	Description string
	Day         string   // day name (if applicable)
	Items       []string // zone names or times involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks timetables and zone catalogs for conflicts
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateTimetable checks every entry of a weekly timetable against the
// zone catalog. Entries flagged here are dropped during expansion, so the
// report explains exactly why a day renders with gaps.
func (v *Validator) ValidateTimetable(tt models.WeeklyTimetable, catalog schedule.Catalog) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	knownDays := make(map[string]bool, constants.DaysPerWeek)
	for _, name := range constants.DayNames {
		knownDays[name] = true
	}

	days := make([]string, 0, len(tt))
	for day := range tt {
		days = append(days, day)
	}
	sort.Strings(days)

	populated := false
	for _, day := range days {
		entries := tt[day]
		if !knownDays[day] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownDay,
				Description: fmt.Sprintf("Timetable references unknown day %q", day),
				Day:         day,
			})
			continue
		}
		if len(entries) > 0 {
			populated = true
		}

		seen := make(map[int]string, len(entries))
		for _, entry := range entries {
			if !isValidTimeFormat(entry.Time) {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictInvalidTime,
					Description: fmt.Sprintf("%s: entry has invalid time %q", day, entry.Time),
					Day:         day,
					Items:       []string{entry.Time},
				})
				continue
			}

			minute := schedule.ToMinutes(entry.Time)
			if prev, dup := seen[minute]; dup {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictDuplicateSlot,
					Description: fmt.Sprintf("%s %s: %q and %q share the same slot, last one wins", day, entry.Time, prev, entry.Zone),
					Day:         day,
					Items:       []string{prev, entry.Zone},
				})
			}
			seen[minute] = entry.Zone

			if _, ok := catalog.ByName(entry.Zone); !ok {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictUnknownZone,
					Description: fmt.Sprintf("%s %s: references unknown zone %q", day, entry.Time, entry.Zone),
					Day:         day,
					Items:       []string{entry.Zone},
				})
			}
		}
	}

	if !populated {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictNoActiveWeek,
			Description: "Timetable has no entries on any day",
		})
	}

	return result
}

// isValidTimeFormat reports whether timeStr is a well-formed "HH:MM"
// time within the day. The "24:00" sentinel is not accepted here since
// stored entries mark starts, never ends.
func isValidTimeFormat(timeStr string) bool {
	_, err := time.Parse(constants.TimeFormat, timeStr)
	return err == nil
}

// ValidateZones checks the zone catalog for duplicate or unusable definitions.
func (v *Validator) ValidateZones(zones []models.Zone) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	byName := make(map[string][]int)
	byID := make(map[int][]string)
	for _, zone := range zones {
		if zone.Name == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictEmptyZoneName,
				Description: fmt.Sprintf("Zone %d has an empty name", zone.ID),
			})
			continue
		}
		byName[zone.Name] = append(byName[zone.Name], zone.ID)
		byID[zone.ID] = append(byID[zone.ID], zone.Name)
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if ids := byName[name]; len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateZone,
				Description: fmt.Sprintf("Duplicate zone name %q (IDs: %v)", name, ids),
				Items:       []string{name},
			})
		}
	}
	for id, zoneNames := range byID {
		if len(zoneNames) > 1 {
			sort.Strings(zoneNames)
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateZone,
				Description: fmt.Sprintf("Zone ID %d is shared by %v", id, zoneNames),
				Items:       zoneNames,
			})
		}
	}

	return result
}
