package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/sremy91/intuis-schedule-card/internal/constants"
	"github.com/sremy91/intuis-schedule-card/internal/models"
)

type Store struct {
	connStr string
	db      *sql.DB
}

func New(connStr string) *Store {
	return &Store{connStr: connStr}
}

func (s *Store) Init() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := s.ensureSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}
	return s.Init()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.connStr
}

func (s *Store) ensureSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS zones (
			id INTEGER PRIMARY KEY,
			name TEXT UNIQUE NOT NULL,
			type INTEGER NOT NULL DEFAULT 0,
			room_temperatures TEXT NOT NULL DEFAULT '{}'
		)`,
		`CREATE TABLE IF NOT EXISTS timetable (
			day INTEGER NOT NULL,
			time TEXT NOT NULL,
			zone TEXT NOT NULL,
			PRIMARY KEY (day, time)
		)`,
		`CREATE TABLE IF NOT EXISTS schedules (
			name TEXT PRIMARY KEY,
			selected BOOLEAN NOT NULL DEFAULT FALSE
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

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
				`INSERT INTO timetable (day, time, zone) VALUES ($1, $2, $3)
				 ON CONFLICT (day, time) DO UPDATE SET zone = EXCLUDED.zone`,
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
		`INSERT INTO timetable (day, time, zone) VALUES ($1, $2, $3)
		 ON CONFLICT (day, time) DO UPDATE SET zone = EXCLUDED.zone`,
		day, timeStr, zoneName,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert timetable entry: %w", err)
	}
	return nil
}

func (s *Store) Zones() ([]models.Zone, error) {
	rows, err := s.db.Query(`SELECT id, name, type, room_temperatures FROM zones ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to read zones: %w", err)
	}
	defer rows.Close()

	var zones []models.Zone
	for rows.Next() {
		var z models.Zone
		var temps string
		if err := rows.Scan(&z.ID, &z.Name, &z.Type, &temps); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(temps), &z.RoomTemperatures); err != nil {
			return nil, fmt.Errorf("corrupt room temperatures for zone %d: %w", z.ID, err)
		}
		zones = append(zones, z)
	}
	return zones, rows.Err()
}

func (s *Store) ZoneByID(id int) (models.Zone, error) {
	var z models.Zone
	var temps string
	err := s.db.QueryRow(`SELECT id, name, type, room_temperatures FROM zones WHERE id = $1`, id).
		Scan(&z.ID, &z.Name, &z.Type, &temps)
	if err == sql.ErrNoRows {
		return models.Zone{}, fmt.Errorf("zone %d not found", id)
	}
	if err != nil {
		return models.Zone{}, err
	}
	if err := json.Unmarshal([]byte(temps), &z.RoomTemperatures); err != nil {
		return models.Zone{}, fmt.Errorf("corrupt room temperatures for zone %d: %w", z.ID, err)
	}
	return z, nil
}

func (s *Store) SaveZones(zones []models.Zone) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM zones`); err != nil {
		return err
	}
	for _, z := range zones {
		temps, err := json.Marshal(z.RoomTemperatures)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(
			`INSERT INTO zones (id, name, type, room_temperatures) VALUES ($1, $2, $3, $4)`,
			z.ID, z.Name, z.Type, string(temps),
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

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
			`INSERT INTO schedules (name, selected) VALUES ($1, $2)`,
			name, name == info.Selected,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) SelectSchedule(name string) error {
	var exists bool
	if err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM schedules WHERE name = $1)`, name).Scan(&exists); err != nil {
		return fmt.Errorf("failed to select schedule: %w", err)
	}
	if !exists {
		return fmt.Errorf("schedule %q not found", name)
	}
	if _, err := s.db.Exec(`UPDATE schedules SET selected = (name = $1)`, name); err != nil {
		return fmt.Errorf("failed to select schedule: %w", err)
	}
	return nil
}
