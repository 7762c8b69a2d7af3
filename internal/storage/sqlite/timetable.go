package sqlite

import (
	"fmt"

	"github.com/sremy91/intuis-schedule-card/internal/constants"
	"github.com/sremy91/intuis-schedule-card/internal/models"
)

func (s *Store) Timetable() (models.WeeklyTimetable, error) {
	rows, err := s.db.Query(`SELECT day, time, zone FROM timetable ORDER BY day, time`)
	if err != nil {
		return nil, fmt.Errorf("failed to read timetable: %w", err)
	}
	defer rows.Close()

	tt := models.WeeklyTimetable{}
	for rows.Next() {
		var day int
		var entry models.TimetableEntry
		if err := rows.Scan(&day, &entry.Time, &entry.Zone); err != nil {
			return nil, err
		}
		if day < 0 || day >= constants.DaysPerWeek {
			continue
		}
		name := constants.DayNames[day]
		tt[name] = append(tt[name], entry)
	}
	return tt, rows.Err()
}

func (s *Store) SaveTimetable(tt models.WeeklyTimetable) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM timetable`); err != nil {
		return err
	}
	for day, name := range constants.DayNames {
		for _, entry := range tt[name] {
			if _, err := tx.Exec(
				`INSERT OR REPLACE INTO timetable (day, time, zone) VALUES (?, ?, ?)`,
				day, entry.Time, entry.Zone,
			); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

func (s *Store) UpsertEntry(day int, timeStr, zoneName string) error {
	if day < 0 || day >= constants.DaysPerWeek {
		return fmt.Errorf("invalid day index %d", day)
	}
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO timetable (day, time, zone) VALUES (?, ?, ?)`,
		day, timeStr, zoneName,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert timetable entry: %w", err)
	}
	return nil
}
