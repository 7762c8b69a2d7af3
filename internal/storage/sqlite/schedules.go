package sqlite

import (
	"fmt"

	"github.com/sremy91/intuis-schedule-card/internal/models"
)

func (s *Store) Schedules() (models.ScheduleInfo, error) {
	rows, err := s.db.Query(`SELECT name, selected FROM schedules ORDER BY name`)
	if err != nil {
		return models.ScheduleInfo{}, fmt.Errorf("failed to read schedules: %w", err)
	}
	defer rows.Close()

	var info models.ScheduleInfo
	for rows.Next() {
		var name string
		var selected bool
		if err := rows.Scan(&name, &selected); err != nil {
			return models.ScheduleInfo{}, err
		}
		info.Names = append(info.Names, name)
		if selected {
			info.Selected = name
		}
	}
	return info, rows.Err()
}

func (s *Store) SaveSchedules(info models.ScheduleInfo) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM schedules`); err != nil {
		return err
	}
	for _, name := range info.Names {
		if _, err := tx.Exec(
			`INSERT INTO schedules (name, selected) VALUES (?, ?)`,
			name, name == info.Selected,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) SelectSchedule(name string) error {
	var exists bool
	if err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM schedules WHERE name = ?)`, name).Scan(&exists); err != nil {
		return fmt.Errorf("failed to select schedule: %w", err)
	}
	if !exists {
		return fmt.Errorf("schedule %q not found", name)
	}
	if _, err := s.db.Exec(`UPDATE schedules SET selected = (name = ?)`, name); err != nil {
		return fmt.Errorf("failed to select schedule: %w", err)
	}
	return nil
}
